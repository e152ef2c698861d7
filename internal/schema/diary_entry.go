package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// DiaryEntry is one food diary record for a patient.
type DiaryEntry struct {
	ent.Schema
}

func (DiaryEntry) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (DiaryEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.String("day").
			NotEmpty().
			MaxLen(10).
			Comment(`Calendar day in the practice timezone, "2006-01-02"`),

		field.Enum("meal").
			Values("breakfast", "lunch", "dinner", "snack"),

		field.Text("description").
			NotEmpty(),

		field.String("media_key").
			Optional().
			Nillable().
			Comment("Object storage key for a meal photo"),
	}
}

func (DiaryEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "day"),
	}
}
