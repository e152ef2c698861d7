package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// EarnedPin is an append-only record of a tier unlock. The unique index
// is what makes TierUnlocked events at-most-once per (tier, type).
type EarnedPin struct {
	ent.Schema
}

func (EarnedPin) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (EarnedPin) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.String("tier_name").
			NotEmpty().
			MaxLen(64),

		field.Enum("tier_type").
			Values("hydration", "task"),
	}
}

func (EarnedPin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "tier_name", "tier_type").Unique(),
		index.Fields("patient_id", "tier_type"),
	}
}
