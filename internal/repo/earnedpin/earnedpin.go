// Code generated by ent, DO NOT EDIT.

package earnedpin

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the earnedpin type in the database.
	Label = "earned_pin"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldTierName holds the string denoting the tier_name field in the database.
	FieldTierName = "tier_name"
	// FieldTierType holds the string denoting the tier_type field in the database.
	FieldTierType = "tier_type"
	// Table holds the table name of the earnedpin in the database.
	Table = "earned_pins"
)

// Columns holds all SQL columns for earnedpin fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldPatientID,
	FieldTierName,
	FieldTierType,
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
	// TierNameValidator is a validator for the "tier_name" field. It is called by the builders before save.
	TierNameValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// TierType defines the type for the "tier_type" enum field.
type TierType string

// TierType values.
const (
	TierTypeHydration TierType = "hydration"
	TierTypeTask      TierType = "task"
)

func (tt TierType) String() string {
	return string(tt)
}

// TierTypeValidator is a validator for the "tier_type" field enum values. It is called by the builders before save.
func TierTypeValidator(tt TierType) error {
	switch tt {
	case TierTypeHydration, TierTypeTask:
		return nil
	default:
		return fmt.Errorf("earnedpin: invalid enum value for tier_type field: %q", tt)
	}
}

// OrderOption defines the ordering options for the EarnedPin queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByTierName orders the results by the tier_name field.
func ByTierName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTierName, opts...).ToFunc()
}

// ByTierType orders the results by the tier_type field.
func ByTierType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTierType, opts...).ToFunc()
}
