package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Habit is a daily checklist item managed by the nutritionist.
type Habit struct {
	ent.Schema
}

func (Habit) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Habit) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty().
			MaxLen(255),

		field.Text("description").
			Optional().
			Nillable(),

		field.Int("position").
			Default(0).
			Comment("Display order in the checklist"),

		field.Bool("is_active").
			Default(true).
			Comment("Inactive habits are hidden and excluded from completion checks"),
	}
}
