package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// AvailabilityWindow is the set of bookable start times the nutritionist
// has declared for one calendar date. Upserted keyed on date; an empty
// time set is deleted rather than stored.
type AvailabilityWindow struct {
	ent.Schema
}

func (AvailabilityWindow) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (AvailabilityWindow) Fields() []ent.Field {
	return []ent.Field{
		field.String("date").
			Unique().
			NotEmpty().
			MaxLen(10).
			Comment(`Calendar date in the practice timezone, "2006-01-02"`),

		field.JSON("times", []string{}).
			Comment(`Declared start times, "15:04", unique per date`),
	}
}
