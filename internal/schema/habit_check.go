package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// HabitCheck marks one habit as done by one patient on one day.
// Unchecking deletes the row.
type HabitCheck struct {
	ent.Schema
}

func (HabitCheck) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (HabitCheck) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.UUID("habit_id", uuid.UUID{}).
			Comment("FK → habits.id"),

		field.String("day").
			NotEmpty().
			MaxLen(10).
			Comment(`Calendar day in the practice timezone, "2006-01-02"`),
	}
}

func (HabitCheck) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "habit_id", "day").Unique(),
		index.Fields("patient_id", "day"),
	}
}
