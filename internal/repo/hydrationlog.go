// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nutrivida/nutrivida_backend/internal/repo/hydrationlog"
)

// HydrationLog is the model entity for the HydrationLog schema.
type HydrationLog struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// Calendar day in the practice timezone, "2006-01-02"
	Day string `json:"day,omitempty"`
	// IntakeMl holds the value of the "intake_ml" field.
	IntakeMl int `json:"intake_ml,omitempty"`
	// Snapshotted from the patient's current goal when the day record is created
	GoalMl int `json:"goal_ml,omitempty"`
	// Set once per day the first time intake reaches the goal; never unset
	GoalMet      bool `json:"goal_met,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HydrationLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case hydrationlog.FieldGoalMet:
			values[i] = new(sql.NullBool)
		case hydrationlog.FieldIntakeMl, hydrationlog.FieldGoalMl:
			values[i] = new(sql.NullInt64)
		case hydrationlog.FieldDay:
			values[i] = new(sql.NullString)
		case hydrationlog.FieldCreatedAt, hydrationlog.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case hydrationlog.FieldID, hydrationlog.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HydrationLog fields.
func (_m *HydrationLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case hydrationlog.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case hydrationlog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case hydrationlog.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case hydrationlog.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case hydrationlog.FieldDay:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field day", values[i])
			} else if value.Valid {
				_m.Day = value.String
			}
		case hydrationlog.FieldIntakeMl:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field intake_ml", values[i])
			} else if value.Valid {
				_m.IntakeMl = int(value.Int64)
			}
		case hydrationlog.FieldGoalMl:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field goal_ml", values[i])
			} else if value.Valid {
				_m.GoalMl = int(value.Int64)
			}
		case hydrationlog.FieldGoalMet:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field goal_met", values[i])
			} else if value.Valid {
				_m.GoalMet = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HydrationLog.
// This includes values selected through modifiers, order, etc.
func (_m *HydrationLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this HydrationLog.
// Note that you need to call HydrationLog.Unwrap() before calling this method if this HydrationLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HydrationLog) Update() *HydrationLogUpdateOne {
	return NewHydrationLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HydrationLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HydrationLog) Unwrap() *HydrationLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: HydrationLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HydrationLog) String() string {
	var builder strings.Builder
	builder.WriteString("HydrationLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("day=")
	builder.WriteString(_m.Day)
	builder.WriteString(", ")
	builder.WriteString("intake_ml=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntakeMl))
	builder.WriteString(", ")
	builder.WriteString("goal_ml=")
	builder.WriteString(fmt.Sprintf("%v", _m.GoalMl))
	builder.WriteString(", ")
	builder.WriteString("goal_met=")
	builder.WriteString(fmt.Sprintf("%v", _m.GoalMet))
	builder.WriteByte(')')
	return builder.String()
}

// HydrationLogs is a parsable slice of HydrationLog.
type HydrationLogs []*HydrationLog
