// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nutrivida/nutrivida_backend/internal/repo/diaryentry"
)

// DiaryEntry is the model entity for the DiaryEntry schema.
type DiaryEntry struct {
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
	// Meal holds the value of the "meal" field.
	Meal diaryentry.Meal `json:"meal,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Object storage key for a meal photo
	MediaKey     *string `json:"media_key,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DiaryEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case diaryentry.FieldDay, diaryentry.FieldMeal, diaryentry.FieldDescription, diaryentry.FieldMediaKey:
			values[i] = new(sql.NullString)
		case diaryentry.FieldCreatedAt, diaryentry.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case diaryentry.FieldID, diaryentry.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DiaryEntry fields.
func (_m *DiaryEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case diaryentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case diaryentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case diaryentry.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case diaryentry.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case diaryentry.FieldDay:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field day", values[i])
			} else if value.Valid {
				_m.Day = value.String
			}
		case diaryentry.FieldMeal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meal", values[i])
			} else if value.Valid {
				_m.Meal = diaryentry.Meal(value.String)
			}
		case diaryentry.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case diaryentry.FieldMediaKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field media_key", values[i])
			} else if value.Valid {
				_m.MediaKey = new(string)
				*_m.MediaKey = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DiaryEntry.
// This includes values selected through modifiers, order, etc.
func (_m *DiaryEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DiaryEntry.
// Note that you need to call DiaryEntry.Unwrap() before calling this method if this DiaryEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DiaryEntry) Update() *DiaryEntryUpdateOne {
	return NewDiaryEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DiaryEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DiaryEntry) Unwrap() *DiaryEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: DiaryEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DiaryEntry) String() string {
	var builder strings.Builder
	builder.WriteString("DiaryEntry(")
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
	builder.WriteString("meal=")
	builder.WriteString(fmt.Sprintf("%v", _m.Meal))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	if v := _m.MediaKey; v != nil {
		builder.WriteString("media_key=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// DiaryEntries is a parsable slice of DiaryEntry.
type DiaryEntries []*DiaryEntry
