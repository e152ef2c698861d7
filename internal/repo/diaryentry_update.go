// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/nutrivida/nutrivida_backend/internal/repo/diaryentry"
	"github.com/nutrivida/nutrivida_backend/internal/repo/predicate"
)

// DiaryEntryUpdate is the builder for updating DiaryEntry entities.
type DiaryEntryUpdate struct {
	config
	hooks    []Hook
	mutation *DiaryEntryMutation
}

// Where appends a list predicates to the DiaryEntryUpdate builder.
func (_u *DiaryEntryUpdate) Where(ps ...predicate.DiaryEntry) *DiaryEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DiaryEntryUpdate) SetUpdatedAt(v time.Time) *DiaryEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *DiaryEntryUpdate) SetPatientID(v uuid.UUID) *DiaryEntryUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *DiaryEntryUpdate) SetNillablePatientID(v *uuid.UUID) *DiaryEntryUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *DiaryEntryUpdate) SetDay(v string) *DiaryEntryUpdate {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *DiaryEntryUpdate) SetNillableDay(v *string) *DiaryEntryUpdate {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetMeal sets the "meal" field.
func (_u *DiaryEntryUpdate) SetMeal(v diaryentry.Meal) *DiaryEntryUpdate {
	_u.mutation.SetMeal(v)
	return _u
}

// SetNillableMeal sets the "meal" field if the given value is not nil.
func (_u *DiaryEntryUpdate) SetNillableMeal(v *diaryentry.Meal) *DiaryEntryUpdate {
	if v != nil {
		_u.SetMeal(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *DiaryEntryUpdate) SetDescription(v string) *DiaryEntryUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DiaryEntryUpdate) SetNillableDescription(v *string) *DiaryEntryUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetMediaKey sets the "media_key" field.
func (_u *DiaryEntryUpdate) SetMediaKey(v string) *DiaryEntryUpdate {
	_u.mutation.SetMediaKey(v)
	return _u
}

// SetNillableMediaKey sets the "media_key" field if the given value is not nil.
func (_u *DiaryEntryUpdate) SetNillableMediaKey(v *string) *DiaryEntryUpdate {
	if v != nil {
		_u.SetMediaKey(*v)
	}
	return _u
}

// ClearMediaKey clears the value of the "media_key" field.
func (_u *DiaryEntryUpdate) ClearMediaKey() *DiaryEntryUpdate {
	_u.mutation.ClearMediaKey()
	return _u
}

// Mutation returns the DiaryEntryMutation object of the builder.
func (_u *DiaryEntryUpdate) Mutation() *DiaryEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DiaryEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiaryEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DiaryEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiaryEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DiaryEntryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := diaryentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiaryEntryUpdate) check() error {
	if v, ok := _u.mutation.Day(); ok {
		if err := diaryentry.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`repo: validator failed for field "DiaryEntry.day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Meal(); ok {
		if err := diaryentry.MealValidator(v); err != nil {
			return &ValidationError{Name: "meal", err: fmt.Errorf(`repo: validator failed for field "DiaryEntry.meal": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := diaryentry.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`repo: validator failed for field "DiaryEntry.description": %w`, err)}
		}
	}
	return nil
}

func (_u *DiaryEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diaryentry.Table, diaryentry.Columns, sqlgraph.NewFieldSpec(diaryentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(diaryentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(diaryentry.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(diaryentry.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.Meal(); ok {
		_spec.SetField(diaryentry.FieldMeal, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(diaryentry.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.MediaKey(); ok {
		_spec.SetField(diaryentry.FieldMediaKey, field.TypeString, value)
	}
	if _u.mutation.MediaKeyCleared() {
		_spec.ClearField(diaryentry.FieldMediaKey, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diaryentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DiaryEntryUpdateOne is the builder for updating a single DiaryEntry entity.
type DiaryEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DiaryEntryMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DiaryEntryUpdateOne) SetUpdatedAt(v time.Time) *DiaryEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *DiaryEntryUpdateOne) SetPatientID(v uuid.UUID) *DiaryEntryUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *DiaryEntryUpdateOne) SetNillablePatientID(v *uuid.UUID) *DiaryEntryUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *DiaryEntryUpdateOne) SetDay(v string) *DiaryEntryUpdateOne {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *DiaryEntryUpdateOne) SetNillableDay(v *string) *DiaryEntryUpdateOne {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetMeal sets the "meal" field.
func (_u *DiaryEntryUpdateOne) SetMeal(v diaryentry.Meal) *DiaryEntryUpdateOne {
	_u.mutation.SetMeal(v)
	return _u
}

// SetNillableMeal sets the "meal" field if the given value is not nil.
func (_u *DiaryEntryUpdateOne) SetNillableMeal(v *diaryentry.Meal) *DiaryEntryUpdateOne {
	if v != nil {
		_u.SetMeal(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *DiaryEntryUpdateOne) SetDescription(v string) *DiaryEntryUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DiaryEntryUpdateOne) SetNillableDescription(v *string) *DiaryEntryUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetMediaKey sets the "media_key" field.
func (_u *DiaryEntryUpdateOne) SetMediaKey(v string) *DiaryEntryUpdateOne {
	_u.mutation.SetMediaKey(v)
	return _u
}

// SetNillableMediaKey sets the "media_key" field if the given value is not nil.
func (_u *DiaryEntryUpdateOne) SetNillableMediaKey(v *string) *DiaryEntryUpdateOne {
	if v != nil {
		_u.SetMediaKey(*v)
	}
	return _u
}

// ClearMediaKey clears the value of the "media_key" field.
func (_u *DiaryEntryUpdateOne) ClearMediaKey() *DiaryEntryUpdateOne {
	_u.mutation.ClearMediaKey()
	return _u
}

// Mutation returns the DiaryEntryMutation object of the builder.
func (_u *DiaryEntryUpdateOne) Mutation() *DiaryEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the DiaryEntryUpdate builder.
func (_u *DiaryEntryUpdateOne) Where(ps ...predicate.DiaryEntry) *DiaryEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DiaryEntryUpdateOne) Select(field string, fields ...string) *DiaryEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DiaryEntry entity.
func (_u *DiaryEntryUpdateOne) Save(ctx context.Context) (*DiaryEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiaryEntryUpdateOne) SaveX(ctx context.Context) *DiaryEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DiaryEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiaryEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DiaryEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := diaryentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiaryEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Day(); ok {
		if err := diaryentry.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`repo: validator failed for field "DiaryEntry.day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Meal(); ok {
		if err := diaryentry.MealValidator(v); err != nil {
			return &ValidationError{Name: "meal", err: fmt.Errorf(`repo: validator failed for field "DiaryEntry.meal": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := diaryentry.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`repo: validator failed for field "DiaryEntry.description": %w`, err)}
		}
	}
	return nil
}

func (_u *DiaryEntryUpdateOne) sqlSave(ctx context.Context) (_node *DiaryEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diaryentry.Table, diaryentry.Columns, sqlgraph.NewFieldSpec(diaryentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "DiaryEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, diaryentry.FieldID)
		for _, f := range fields {
			if !diaryentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != diaryentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(diaryentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(diaryentry.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(diaryentry.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.Meal(); ok {
		_spec.SetField(diaryentry.FieldMeal, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(diaryentry.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.MediaKey(); ok {
		_spec.SetField(diaryentry.FieldMediaKey, field.TypeString, value)
	}
	if _u.mutation.MediaKeyCleared() {
		_spec.ClearField(diaryentry.FieldMediaKey, field.TypeString)
	}
	_node = &DiaryEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diaryentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
