// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/nutrivida/nutrivida_backend/internal/repo/habitcheck"
	"github.com/nutrivida/nutrivida_backend/internal/repo/predicate"
)

// HabitCheckUpdate is the builder for updating HabitCheck entities.
type HabitCheckUpdate struct {
	config
	hooks    []Hook
	mutation *HabitCheckMutation
}

// Where appends a list predicates to the HabitCheckUpdate builder.
func (_u *HabitCheckUpdate) Where(ps ...predicate.HabitCheck) *HabitCheckUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *HabitCheckUpdate) SetPatientID(v uuid.UUID) *HabitCheckUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *HabitCheckUpdate) SetNillablePatientID(v *uuid.UUID) *HabitCheckUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetHabitID sets the "habit_id" field.
func (_u *HabitCheckUpdate) SetHabitID(v uuid.UUID) *HabitCheckUpdate {
	_u.mutation.SetHabitID(v)
	return _u
}

// SetNillableHabitID sets the "habit_id" field if the given value is not nil.
func (_u *HabitCheckUpdate) SetNillableHabitID(v *uuid.UUID) *HabitCheckUpdate {
	if v != nil {
		_u.SetHabitID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *HabitCheckUpdate) SetDay(v string) *HabitCheckUpdate {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *HabitCheckUpdate) SetNillableDay(v *string) *HabitCheckUpdate {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// Mutation returns the HabitCheckMutation object of the builder.
func (_u *HabitCheckUpdate) Mutation() *HabitCheckMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HabitCheckUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HabitCheckUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HabitCheckUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HabitCheckUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HabitCheckUpdate) check() error {
	if v, ok := _u.mutation.Day(); ok {
		if err := habitcheck.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`repo: validator failed for field "HabitCheck.day": %w`, err)}
		}
	}
	return nil
}

func (_u *HabitCheckUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(habitcheck.Table, habitcheck.Columns, sqlgraph.NewFieldSpec(habitcheck.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(habitcheck.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.HabitID(); ok {
		_spec.SetField(habitcheck.FieldHabitID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(habitcheck.FieldDay, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{habitcheck.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HabitCheckUpdateOne is the builder for updating a single HabitCheck entity.
type HabitCheckUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HabitCheckMutation
}

// SetPatientID sets the "patient_id" field.
func (_u *HabitCheckUpdateOne) SetPatientID(v uuid.UUID) *HabitCheckUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *HabitCheckUpdateOne) SetNillablePatientID(v *uuid.UUID) *HabitCheckUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetHabitID sets the "habit_id" field.
func (_u *HabitCheckUpdateOne) SetHabitID(v uuid.UUID) *HabitCheckUpdateOne {
	_u.mutation.SetHabitID(v)
	return _u
}

// SetNillableHabitID sets the "habit_id" field if the given value is not nil.
func (_u *HabitCheckUpdateOne) SetNillableHabitID(v *uuid.UUID) *HabitCheckUpdateOne {
	if v != nil {
		_u.SetHabitID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *HabitCheckUpdateOne) SetDay(v string) *HabitCheckUpdateOne {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *HabitCheckUpdateOne) SetNillableDay(v *string) *HabitCheckUpdateOne {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// Mutation returns the HabitCheckMutation object of the builder.
func (_u *HabitCheckUpdateOne) Mutation() *HabitCheckMutation {
	return _u.mutation
}

// Where appends a list predicates to the HabitCheckUpdate builder.
func (_u *HabitCheckUpdateOne) Where(ps ...predicate.HabitCheck) *HabitCheckUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HabitCheckUpdateOne) Select(field string, fields ...string) *HabitCheckUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HabitCheck entity.
func (_u *HabitCheckUpdateOne) Save(ctx context.Context) (*HabitCheck, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HabitCheckUpdateOne) SaveX(ctx context.Context) *HabitCheck {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HabitCheckUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HabitCheckUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HabitCheckUpdateOne) check() error {
	if v, ok := _u.mutation.Day(); ok {
		if err := habitcheck.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`repo: validator failed for field "HabitCheck.day": %w`, err)}
		}
	}
	return nil
}

func (_u *HabitCheckUpdateOne) sqlSave(ctx context.Context) (_node *HabitCheck, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(habitcheck.Table, habitcheck.Columns, sqlgraph.NewFieldSpec(habitcheck.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "HabitCheck.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, habitcheck.FieldID)
		for _, f := range fields {
			if !habitcheck.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != habitcheck.FieldID {
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
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(habitcheck.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.HabitID(); ok {
		_spec.SetField(habitcheck.FieldHabitID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(habitcheck.FieldDay, field.TypeString, value)
	}
	_node = &HabitCheck{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{habitcheck.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
