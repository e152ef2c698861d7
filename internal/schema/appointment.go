package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a confirmed booking of one nutritionist slot by one
// patient. Cancellation is modeled as deletion, which frees the slot,
// so the unique index on start_time is the single arbiter against
// double booking.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.String("patient_name").
			MaxLen(200).
			Comment("Snapshotted at booking time"),

		field.String("patient_email").
			MaxLen(255).
			Comment("Snapshotted at booking time"),

		field.Time("start_time").
			Comment("Slot start in the practice timezone"),

		field.Int("duration_minutes").
			Default(50),

		field.Enum("status").
			Values("confirmed").
			Default("confirmed"),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		// no two appointments may share a start time
		index.Fields("start_time").Unique(),
		index.Fields("patient_id", "start_time"),
	}
}

func (Appointment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("patient", User.Type).
			Unique().
			Required().
			Field("patient_id"),
	}
}
