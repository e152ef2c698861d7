package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Anamnesis is the patient's structured intake questionnaire.
// One record per patient, upserted on submission.
type Anamnesis struct {
	ent.Schema
}

func (Anamnesis) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Anamnesis) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id"),

		field.Text("payload").
			Sensitive().
			Comment("AES-256-GCM ciphertext of the JSON answers; health data is never stored in plaintext"),

		field.Time("submitted_at"),
	}
}
