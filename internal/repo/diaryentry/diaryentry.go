// Code generated by ent, DO NOT EDIT.

package diaryentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the diaryentry type in the database.
	Label = "diary_entry"
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
	// FieldMeal holds the string denoting the meal field in the database.
	FieldMeal = "meal"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldMediaKey holds the string denoting the media_key field in the database.
	FieldMediaKey = "media_key"
	// Table holds the table name of the diaryentry in the database.
	Table = "diary_entries"
)

// Columns holds all SQL columns for diaryentry fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPatientID,
	FieldDay,
	FieldMeal,
	FieldDescription,
	FieldMediaKey,
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
	// DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	DescriptionValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Meal defines the type for the "meal" enum field.
type Meal string

// Meal values.
const (
	MealBreakfast Meal = "breakfast"
	MealLunch     Meal = "lunch"
	MealDinner    Meal = "dinner"
	MealSnack     Meal = "snack"
)

func (m Meal) String() string {
	return string(m)
}

// MealValidator is a validator for the "meal" field enum values. It is called by the builders before save.
func MealValidator(m Meal) error {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return nil
	default:
		return fmt.Errorf("diaryentry: invalid enum value for meal field: %q", m)
	}
}

// OrderOption defines the ordering options for the DiaryEntry queries.
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

// ByMeal orders the results by the meal field.
func ByMeal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeal, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByMediaKey orders the results by the media_key field.
func ByMediaKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMediaKey, opts...).ToFunc()
}
