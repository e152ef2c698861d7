// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nutrivida/nutrivida_backend/internal/repo/habitcheck"
)

// HabitCheck is the model entity for the HabitCheck schema.
type HabitCheck struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → users.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// FK → habits.id
	HabitID uuid.UUID `json:"habit_id,omitempty"`
	// Calendar day in the practice timezone, "2006-01-02"
	Day          string `json:"day,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HabitCheck) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case habitcheck.FieldDay:
			values[i] = new(sql.NullString)
		case habitcheck.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case habitcheck.FieldID, habitcheck.FieldPatientID, habitcheck.FieldHabitID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HabitCheck fields.
func (_m *HabitCheck) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case habitcheck.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case habitcheck.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case habitcheck.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case habitcheck.FieldHabitID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field habit_id", values[i])
			} else if value != nil {
				_m.HabitID = *value
			}
		case habitcheck.FieldDay:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field day", values[i])
			} else if value.Valid {
				_m.Day = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HabitCheck.
// This includes values selected through modifiers, order, etc.
func (_m *HabitCheck) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this HabitCheck.
// Note that you need to call HabitCheck.Unwrap() before calling this method if this HabitCheck
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HabitCheck) Update() *HabitCheckUpdateOne {
	return NewHabitCheckClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HabitCheck entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HabitCheck) Unwrap() *HabitCheck {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: HabitCheck is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HabitCheck) String() string {
	var builder strings.Builder
	builder.WriteString("HabitCheck(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("habit_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.HabitID))
	builder.WriteString(", ")
	builder.WriteString("day=")
	builder.WriteString(_m.Day)
	builder.WriteByte(')')
	return builder.String()
}

// HabitChecks is a parsable slice of HabitCheck.
type HabitChecks []*HabitCheck
