package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// GamificationState holds one patient's reward counters. One row per
// patient; the engine reads it, applies an update, and writes it back.
type GamificationState struct {
	ent.Schema
}

func (GamificationState) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (GamificationState) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id"),

		field.Int("total_goal_met_days").
			Default(0).
			NonNegative().
			Comment("Lifetime count of days the hydration goal was met; drives the hydration tier"),

		field.String("week_key").
			Default("").
			MaxLen(8).
			Comment(`ISO week the streak below belongs to, "2025-W28"`),

		field.Int("weekly_streak_count").
			Default(0).
			NonNegative().
			Comment("Days this week all tasks were done; resets on reaching 5 and on week change"),

		field.Int("total_task_tiers_completed").
			Default(0).
			NonNegative().
			Comment("Count of completed 5-day streaks; drives the task tier"),

		field.String("all_done_day").
			Default("").
			MaxLen(10).
			Comment("Last day all tasks were done, used as the once-per-day guard"),
	}
}
