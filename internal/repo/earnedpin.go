// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nutrivida/nutrivida_backend/internal/repo/earnedpin"
)

// EarnedPin is the model entity for the EarnedPin schema.
type EarnedPin struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → users.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// TierName holds the value of the "tier_name" field.
	TierName string `json:"tier_name,omitempty"`
	// TierType holds the value of the "tier_type" field.
	TierType     earnedpin.TierType `json:"tier_type,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EarnedPin) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case earnedpin.FieldTierName, earnedpin.FieldTierType:
			values[i] = new(sql.NullString)
		case earnedpin.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case earnedpin.FieldID, earnedpin.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EarnedPin fields.
func (_m *EarnedPin) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case earnedpin.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case earnedpin.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case earnedpin.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case earnedpin.FieldTierName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier_name", values[i])
			} else if value.Valid {
				_m.TierName = value.String
			}
		case earnedpin.FieldTierType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier_type", values[i])
			} else if value.Valid {
				_m.TierType = earnedpin.TierType(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EarnedPin.
// This includes values selected through modifiers, order, etc.
func (_m *EarnedPin) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EarnedPin.
// Note that you need to call EarnedPin.Unwrap() before calling this method if this EarnedPin
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EarnedPin) Update() *EarnedPinUpdateOne {
	return NewEarnedPinClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EarnedPin entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EarnedPin) Unwrap() *EarnedPin {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: EarnedPin is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EarnedPin) String() string {
	var builder strings.Builder
	builder.WriteString("EarnedPin(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("tier_name=")
	builder.WriteString(_m.TierName)
	builder.WriteString(", ")
	builder.WriteString("tier_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.TierType))
	builder.WriteByte(')')
	return builder.String()
}

// EarnedPins is a parsable slice of EarnedPin.
type EarnedPins []*EarnedPin
