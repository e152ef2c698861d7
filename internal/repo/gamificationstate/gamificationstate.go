// Code generated by ent, DO NOT EDIT.

package gamificationstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the gamificationstate type in the database.
	Label = "gamification_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldTotalGoalMetDays holds the string denoting the total_goal_met_days field in the database.
	FieldTotalGoalMetDays = "total_goal_met_days"
	// FieldWeekKey holds the string denoting the week_key field in the database.
	FieldWeekKey = "week_key"
	// FieldWeeklyStreakCount holds the string denoting the weekly_streak_count field in the database.
	FieldWeeklyStreakCount = "weekly_streak_count"
	// FieldTotalTaskTiersCompleted holds the string denoting the total_task_tiers_completed field in the database.
	FieldTotalTaskTiersCompleted = "total_task_tiers_completed"
	// FieldAllDoneDay holds the string denoting the all_done_day field in the database.
	FieldAllDoneDay = "all_done_day"
	// Table holds the table name of the gamificationstate in the database.
	Table = "gamification_states"
)

// Columns holds all SQL columns for gamificationstate fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPatientID,
	FieldTotalGoalMetDays,
	FieldWeekKey,
	FieldWeeklyStreakCount,
	FieldTotalTaskTiersCompleted,
	FieldAllDoneDay,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultTotalGoalMetDays holds the default value on creation for the "total_goal_met_days" field.
	DefaultTotalGoalMetDays int
	// TotalGoalMetDaysValidator is a validator for the "total_goal_met_days" field. It is called by the builders before save.
	TotalGoalMetDaysValidator func(int) error
	// DefaultWeekKey holds the default value on creation for the "week_key" field.
	DefaultWeekKey string
	// WeekKeyValidator is a validator for the "week_key" field. It is called by the builders before save.
	WeekKeyValidator func(string) error
	// DefaultWeeklyStreakCount holds the default value on creation for the "weekly_streak_count" field.
	DefaultWeeklyStreakCount int
	// WeeklyStreakCountValidator is a validator for the "weekly_streak_count" field. It is called by the builders before save.
	WeeklyStreakCountValidator func(int) error
	// DefaultTotalTaskTiersCompleted holds the default value on creation for the "total_task_tiers_completed" field.
	DefaultTotalTaskTiersCompleted int
	// TotalTaskTiersCompletedValidator is a validator for the "total_task_tiers_completed" field. It is called by the builders before save.
	TotalTaskTiersCompletedValidator func(int) error
	// DefaultAllDoneDay holds the default value on creation for the "all_done_day" field.
	DefaultAllDoneDay string
	// AllDoneDayValidator is a validator for the "all_done_day" field. It is called by the builders before save.
	AllDoneDayValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the GamificationState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByTotalGoalMetDays orders the results by the total_goal_met_days field.
func ByTotalGoalMetDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalGoalMetDays, opts...).ToFunc()
}

// ByWeekKey orders the results by the week_key field.
func ByWeekKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeekKey, opts...).ToFunc()
}

// ByWeeklyStreakCount orders the results by the weekly_streak_count field.
func ByWeeklyStreakCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeeklyStreakCount, opts...).ToFunc()
}

// ByTotalTaskTiersCompleted orders the results by the total_task_tiers_completed field.
func ByTotalTaskTiersCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTaskTiersCompleted, opts...).ToFunc()
}

// ByAllDoneDay orders the results by the all_done_day field.
func ByAllDoneDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAllDoneDay, opts...).ToFunc()
}
