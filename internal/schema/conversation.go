package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Conversation is the direct messaging thread between one patient and
// the nutritionist. Exactly one per patient, created lazily on first
// message.
type Conversation struct {
	ent.Schema
}

func (Conversation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id"),

		field.Time("last_message_at").
			Optional().
			Nillable(),
	}
}
