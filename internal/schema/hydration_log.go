package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// HydrationLog is one patient's water intake for one calendar day.
type HydrationLog struct {
	ent.Schema
}

func (HydrationLog) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (HydrationLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.String("day").
			NotEmpty().
			MaxLen(10).
			Comment(`Calendar day in the practice timezone, "2006-01-02"`),

		field.Int("intake_ml").
			Default(0).
			NonNegative(),

		field.Int("goal_ml").
			Positive().
			Comment("Snapshotted from the patient's current goal when the day record is created"),

		field.Bool("goal_met").
			Default(false).
			Comment("Set once per day the first time intake reaches the goal; never unset"),
	}
}

func (HydrationLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "day").Unique(),
	}
}
