// Code generated by ent, DO NOT EDIT.

package hydrationlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the hydrationlog type in the database.
	Label = "hydration_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldDay holds the string denoting the day field in the database.
	FieldDay = "day"
	// FieldIntakeMl holds the string denoting the intake_ml field in the database.
	FieldIntakeMl = "intake_ml"
	// FieldGoalMl holds the string denoting the goal_ml field in the database.
	FieldGoalMl = "goal_ml"
	// FieldGoalMet holds the string denoting the goal_met field in the database.
	FieldGoalMet = "goal_met"
	// Table holds the table name of the hydrationlog in the database.
	Table = "hydration_logs"
)

// Columns holds all SQL columns for hydrationlog fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPatientID,
	FieldDay,
	FieldIntakeMl,
	FieldGoalMl,
	FieldGoalMet,
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
	// DayValidator is a validator for the "day" field. It is called by the builders before save.
	DayValidator func(string) error
	// DefaultIntakeMl holds the default value on creation for the "intake_ml" field.
	DefaultIntakeMl int
	// IntakeMlValidator is a validator for the "intake_ml" field. It is called by the builders before save.
	IntakeMlValidator func(int) error
	// GoalMlValidator is a validator for the "goal_ml" field. It is called by the builders before save.
	GoalMlValidator func(int) error
	// DefaultGoalMet holds the default value on creation for the "goal_met" field.
	DefaultGoalMet bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the HydrationLog queries.
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

// ByDay orders the results by the day field.
func ByDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDay, opts...).ToFunc()
}

// ByIntakeMl orders the results by the intake_ml field.
func ByIntakeMl(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntakeMl, opts...).ToFunc()
}

// ByGoalMl orders the results by the goal_ml field.
func ByGoalMl(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoalMl, opts...).ToFunc()
}

// ByGoalMet orders the results by the goal_met field.
func ByGoalMet(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoalMet, opts...).ToFunc()
}
