package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// AppSetting is a key-value content entry the nutritionist edits
// (welcome text, guideline document keys, tier imagery keys).
type AppSetting struct {
	ent.Schema
}

func (AppSetting) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (AppSetting) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty().
			MaxLen(128),

		field.Text("value"),
	}
}
