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
	"github.com/nutrivida/nutrivida_backend/internal/repo/hydrationlog"
	"github.com/nutrivida/nutrivida_backend/internal/repo/predicate"
)

// HydrationLogUpdate is the builder for updating HydrationLog entities.
type HydrationLogUpdate struct {
	config
	hooks    []Hook
	mutation *HydrationLogMutation
}

// Where appends a list predicates to the HydrationLogUpdate builder.
func (_u *HydrationLogUpdate) Where(ps ...predicate.HydrationLog) *HydrationLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HydrationLogUpdate) SetUpdatedAt(v time.Time) *HydrationLogUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *HydrationLogUpdate) SetPatientID(v uuid.UUID) *HydrationLogUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *HydrationLogUpdate) SetNillablePatientID(v *uuid.UUID) *HydrationLogUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *HydrationLogUpdate) SetDay(v string) *HydrationLogUpdate {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *HydrationLogUpdate) SetNillableDay(v *string) *HydrationLogUpdate {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetIntakeMl sets the "intake_ml" field.
func (_u *HydrationLogUpdate) SetIntakeMl(v int) *HydrationLogUpdate {
	_u.mutation.ResetIntakeMl()
	_u.mutation.SetIntakeMl(v)
	return _u
}

// SetNillableIntakeMl sets the "intake_ml" field if the given value is not nil.
func (_u *HydrationLogUpdate) SetNillableIntakeMl(v *int) *HydrationLogUpdate {
	if v != nil {
		_u.SetIntakeMl(*v)
	}
	return _u
}

// AddIntakeMl adds value to the "intake_ml" field.
func (_u *HydrationLogUpdate) AddIntakeMl(v int) *HydrationLogUpdate {
	_u.mutation.AddIntakeMl(v)
	return _u
}

// SetGoalMl sets the "goal_ml" field.
func (_u *HydrationLogUpdate) SetGoalMl(v int) *HydrationLogUpdate {
	_u.mutation.ResetGoalMl()
	_u.mutation.SetGoalMl(v)
	return _u
}

// SetNillableGoalMl sets the "goal_ml" field if the given value is not nil.
func (_u *HydrationLogUpdate) SetNillableGoalMl(v *int) *HydrationLogUpdate {
	if v != nil {
		_u.SetGoalMl(*v)
	}
	return _u
}

// AddGoalMl adds value to the "goal_ml" field.
func (_u *HydrationLogUpdate) AddGoalMl(v int) *HydrationLogUpdate {
	_u.mutation.AddGoalMl(v)
	return _u
}

// SetGoalMet sets the "goal_met" field.
func (_u *HydrationLogUpdate) SetGoalMet(v bool) *HydrationLogUpdate {
	_u.mutation.SetGoalMet(v)
	return _u
}

// SetNillableGoalMet sets the "goal_met" field if the given value is not nil.
func (_u *HydrationLogUpdate) SetNillableGoalMet(v *bool) *HydrationLogUpdate {
	if v != nil {
		_u.SetGoalMet(*v)
	}
	return _u
}

// Mutation returns the HydrationLogMutation object of the builder.
func (_u *HydrationLogUpdate) Mutation() *HydrationLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HydrationLogUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HydrationLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HydrationLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HydrationLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HydrationLogUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := hydrationlog.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HydrationLogUpdate) check() error {
	if v, ok := _u.mutation.Day(); ok {
		if err := hydrationlog.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`repo: validator failed for field "HydrationLog.day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntakeMl(); ok {
		if err := hydrationlog.IntakeMlValidator(v); err != nil {
			return &ValidationError{Name: "intake_ml", err: fmt.Errorf(`repo: validator failed for field "HydrationLog.intake_ml": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GoalMl(); ok {
		if err := hydrationlog.GoalMlValidator(v); err != nil {
			return &ValidationError{Name: "goal_ml", err: fmt.Errorf(`repo: validator failed for field "HydrationLog.goal_ml": %w`, err)}
		}
	}
	return nil
}

func (_u *HydrationLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hydrationlog.Table, hydrationlog.Columns, sqlgraph.NewFieldSpec(hydrationlog.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(hydrationlog.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(hydrationlog.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(hydrationlog.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntakeMl(); ok {
		_spec.SetField(hydrationlog.FieldIntakeMl, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntakeMl(); ok {
		_spec.AddField(hydrationlog.FieldIntakeMl, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GoalMl(); ok {
		_spec.SetField(hydrationlog.FieldGoalMl, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGoalMl(); ok {
		_spec.AddField(hydrationlog.FieldGoalMl, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GoalMet(); ok {
		_spec.SetField(hydrationlog.FieldGoalMet, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hydrationlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HydrationLogUpdateOne is the builder for updating a single HydrationLog entity.
type HydrationLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HydrationLogMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HydrationLogUpdateOne) SetUpdatedAt(v time.Time) *HydrationLogUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *HydrationLogUpdateOne) SetPatientID(v uuid.UUID) *HydrationLogUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *HydrationLogUpdateOne) SetNillablePatientID(v *uuid.UUID) *HydrationLogUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *HydrationLogUpdateOne) SetDay(v string) *HydrationLogUpdateOne {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *HydrationLogUpdateOne) SetNillableDay(v *string) *HydrationLogUpdateOne {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetIntakeMl sets the "intake_ml" field.
func (_u *HydrationLogUpdateOne) SetIntakeMl(v int) *HydrationLogUpdateOne {
	_u.mutation.ResetIntakeMl()
	_u.mutation.SetIntakeMl(v)
	return _u
}

// SetNillableIntakeMl sets the "intake_ml" field if the given value is not nil.
func (_u *HydrationLogUpdateOne) SetNillableIntakeMl(v *int) *HydrationLogUpdateOne {
	if v != nil {
		_u.SetIntakeMl(*v)
	}
	return _u
}

// AddIntakeMl adds value to the "intake_ml" field.
func (_u *HydrationLogUpdateOne) AddIntakeMl(v int) *HydrationLogUpdateOne {
	_u.mutation.AddIntakeMl(v)
	return _u
}

// SetGoalMl sets the "goal_ml" field.
func (_u *HydrationLogUpdateOne) SetGoalMl(v int) *HydrationLogUpdateOne {
	_u.mutation.ResetGoalMl()
	_u.mutation.SetGoalMl(v)
	return _u
}

// SetNillableGoalMl sets the "goal_ml" field if the given value is not nil.
func (_u *HydrationLogUpdateOne) SetNillableGoalMl(v *int) *HydrationLogUpdateOne {
	if v != nil {
		_u.SetGoalMl(*v)
	}
	return _u
}

// AddGoalMl adds value to the "goal_ml" field.
func (_u *HydrationLogUpdateOne) AddGoalMl(v int) *HydrationLogUpdateOne {
	_u.mutation.AddGoalMl(v)
	return _u
}

// SetGoalMet sets the "goal_met" field.
func (_u *HydrationLogUpdateOne) SetGoalMet(v bool) *HydrationLogUpdateOne {
	_u.mutation.SetGoalMet(v)
	return _u
}

// SetNillableGoalMet sets the "goal_met" field if the given value is not nil.
func (_u *HydrationLogUpdateOne) SetNillableGoalMet(v *bool) *HydrationLogUpdateOne {
	if v != nil {
		_u.SetGoalMet(*v)
	}
	return _u
}

// Mutation returns the HydrationLogMutation object of the builder.
func (_u *HydrationLogUpdateOne) Mutation() *HydrationLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the HydrationLogUpdate builder.
func (_u *HydrationLogUpdateOne) Where(ps ...predicate.HydrationLog) *HydrationLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HydrationLogUpdateOne) Select(field string, fields ...string) *HydrationLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HydrationLog entity.
func (_u *HydrationLogUpdateOne) Save(ctx context.Context) (*HydrationLog, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HydrationLogUpdateOne) SaveX(ctx context.Context) *HydrationLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HydrationLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HydrationLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HydrationLogUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := hydrationlog.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HydrationLogUpdateOne) check() error {
	if v, ok := _u.mutation.Day(); ok {
		if err := hydrationlog.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`repo: validator failed for field "HydrationLog.day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntakeMl(); ok {
		if err := hydrationlog.IntakeMlValidator(v); err != nil {
			return &ValidationError{Name: "intake_ml", err: fmt.Errorf(`repo: validator failed for field "HydrationLog.intake_ml": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GoalMl(); ok {
		if err := hydrationlog.GoalMlValidator(v); err != nil {
			return &ValidationError{Name: "goal_ml", err: fmt.Errorf(`repo: validator failed for field "HydrationLog.goal_ml": %w`, err)}
		}
	}
	return nil
}

func (_u *HydrationLogUpdateOne) sqlSave(ctx context.Context) (_node *HydrationLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hydrationlog.Table, hydrationlog.Columns, sqlgraph.NewFieldSpec(hydrationlog.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "HydrationLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hydrationlog.FieldID)
		for _, f := range fields {
			if !hydrationlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != hydrationlog.FieldID {
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
		_spec.SetField(hydrationlog.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(hydrationlog.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(hydrationlog.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntakeMl(); ok {
		_spec.SetField(hydrationlog.FieldIntakeMl, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntakeMl(); ok {
		_spec.AddField(hydrationlog.FieldIntakeMl, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GoalMl(); ok {
		_spec.SetField(hydrationlog.FieldGoalMl, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGoalMl(); ok {
		_spec.AddField(hydrationlog.FieldGoalMl, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GoalMet(); ok {
		_spec.SetField(hydrationlog.FieldGoalMet, field.TypeBool, value)
	}
	_node = &HydrationLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hydrationlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
