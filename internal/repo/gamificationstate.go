// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nutrivida/nutrivida_backend/internal/repo/gamificationstate"
)

// GamificationState is the model entity for the GamificationState schema.
type GamificationState struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// Lifetime count of days the hydration goal was met; drives the hydration tier
	TotalGoalMetDays int `json:"total_goal_met_days,omitempty"`
	// ISO week the streak below belongs to, "2025-W28"
	WeekKey string `json:"week_key,omitempty"`
	// Days this week all tasks were done; resets on reaching 5 and on week change
	WeeklyStreakCount int `json:"weekly_streak_count,omitempty"`
	// Count of completed 5-day streaks; drives the task tier
	TotalTaskTiersCompleted int `json:"total_task_tiers_completed,omitempty"`
	// Last day all tasks were done, used as the once-per-day guard
	AllDoneDay   string `json:"all_done_day,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GamificationState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gamificationstate.FieldTotalGoalMetDays, gamificationstate.FieldWeeklyStreakCount, gamificationstate.FieldTotalTaskTiersCompleted:
			values[i] = new(sql.NullInt64)
		case gamificationstate.FieldWeekKey, gamificationstate.FieldAllDoneDay:
			values[i] = new(sql.NullString)
		case gamificationstate.FieldCreatedAt, gamificationstate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case gamificationstate.FieldID, gamificationstate.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GamificationState fields.
func (_m *GamificationState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gamificationstate.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case gamificationstate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case gamificationstate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case gamificationstate.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case gamificationstate.FieldTotalGoalMetDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_goal_met_days", values[i])
			} else if value.Valid {
				_m.TotalGoalMetDays = int(value.Int64)
			}
		case gamificationstate.FieldWeekKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field week_key", values[i])
			} else if value.Valid {
				_m.WeekKey = value.String
			}
		case gamificationstate.FieldWeeklyStreakCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field weekly_streak_count", values[i])
			} else if value.Valid {
				_m.WeeklyStreakCount = int(value.Int64)
			}
		case gamificationstate.FieldTotalTaskTiersCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_task_tiers_completed", values[i])
			} else if value.Valid {
				_m.TotalTaskTiersCompleted = int(value.Int64)
			}
		case gamificationstate.FieldAllDoneDay:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field all_done_day", values[i])
			} else if value.Valid {
				_m.AllDoneDay = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GamificationState.
// This includes values selected through modifiers, order, etc.
func (_m *GamificationState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GamificationState.
// Note that you need to call GamificationState.Unwrap() before calling this method if this GamificationState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GamificationState) Update() *GamificationStateUpdateOne {
	return NewGamificationStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GamificationState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GamificationState) Unwrap() *GamificationState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: GamificationState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GamificationState) String() string {
	var builder strings.Builder
	builder.WriteString("GamificationState(")
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
	builder.WriteString("total_goal_met_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalGoalMetDays))
	builder.WriteString(", ")
	builder.WriteString("week_key=")
	builder.WriteString(_m.WeekKey)
	builder.WriteString(", ")
	builder.WriteString("weekly_streak_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeeklyStreakCount))
	builder.WriteString(", ")
	builder.WriteString("total_task_tiers_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTaskTiersCompleted))
	builder.WriteString(", ")
	builder.WriteString("all_done_day=")
	builder.WriteString(_m.AllDoneDay)
	builder.WriteByte(')')
	return builder.String()
}

// GamificationStates is a parsable slice of GamificationState.
type GamificationStates []*GamificationState
