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
	"github.com/nutrivida/nutrivida_backend/internal/repo/gamificationstate"
	"github.com/nutrivida/nutrivida_backend/internal/repo/predicate"
)

// GamificationStateUpdate is the builder for updating GamificationState entities.
type GamificationStateUpdate struct {
	config
	hooks    []Hook
	mutation *GamificationStateMutation
}

// Where appends a list predicates to the GamificationStateUpdate builder.
func (_u *GamificationStateUpdate) Where(ps ...predicate.GamificationState) *GamificationStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GamificationStateUpdate) SetUpdatedAt(v time.Time) *GamificationStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *GamificationStateUpdate) SetPatientID(v uuid.UUID) *GamificationStateUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *GamificationStateUpdate) SetNillablePatientID(v *uuid.UUID) *GamificationStateUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetTotalGoalMetDays sets the "total_goal_met_days" field.
func (_u *GamificationStateUpdate) SetTotalGoalMetDays(v int) *GamificationStateUpdate {
	_u.mutation.ResetTotalGoalMetDays()
	_u.mutation.SetTotalGoalMetDays(v)
	return _u
}

// SetNillableTotalGoalMetDays sets the "total_goal_met_days" field if the given value is not nil.
func (_u *GamificationStateUpdate) SetNillableTotalGoalMetDays(v *int) *GamificationStateUpdate {
	if v != nil {
		_u.SetTotalGoalMetDays(*v)
	}
	return _u
}

// AddTotalGoalMetDays adds value to the "total_goal_met_days" field.
func (_u *GamificationStateUpdate) AddTotalGoalMetDays(v int) *GamificationStateUpdate {
	_u.mutation.AddTotalGoalMetDays(v)
	return _u
}

// SetWeekKey sets the "week_key" field.
func (_u *GamificationStateUpdate) SetWeekKey(v string) *GamificationStateUpdate {
	_u.mutation.SetWeekKey(v)
	return _u
}

// SetNillableWeekKey sets the "week_key" field if the given value is not nil.
func (_u *GamificationStateUpdate) SetNillableWeekKey(v *string) *GamificationStateUpdate {
	if v != nil {
		_u.SetWeekKey(*v)
	}
	return _u
}

// SetWeeklyStreakCount sets the "weekly_streak_count" field.
func (_u *GamificationStateUpdate) SetWeeklyStreakCount(v int) *GamificationStateUpdate {
	_u.mutation.ResetWeeklyStreakCount()
	_u.mutation.SetWeeklyStreakCount(v)
	return _u
}

// SetNillableWeeklyStreakCount sets the "weekly_streak_count" field if the given value is not nil.
func (_u *GamificationStateUpdate) SetNillableWeeklyStreakCount(v *int) *GamificationStateUpdate {
	if v != nil {
		_u.SetWeeklyStreakCount(*v)
	}
	return _u
}

// AddWeeklyStreakCount adds value to the "weekly_streak_count" field.
func (_u *GamificationStateUpdate) AddWeeklyStreakCount(v int) *GamificationStateUpdate {
	_u.mutation.AddWeeklyStreakCount(v)
	return _u
}

// SetTotalTaskTiersCompleted sets the "total_task_tiers_completed" field.
func (_u *GamificationStateUpdate) SetTotalTaskTiersCompleted(v int) *GamificationStateUpdate {
	_u.mutation.ResetTotalTaskTiersCompleted()
	_u.mutation.SetTotalTaskTiersCompleted(v)
	return _u
}

// SetNillableTotalTaskTiersCompleted sets the "total_task_tiers_completed" field if the given value is not nil.
func (_u *GamificationStateUpdate) SetNillableTotalTaskTiersCompleted(v *int) *GamificationStateUpdate {
	if v != nil {
		_u.SetTotalTaskTiersCompleted(*v)
	}
	return _u
}

// AddTotalTaskTiersCompleted adds value to the "total_task_tiers_completed" field.
func (_u *GamificationStateUpdate) AddTotalTaskTiersCompleted(v int) *GamificationStateUpdate {
	_u.mutation.AddTotalTaskTiersCompleted(v)
	return _u
}

// SetAllDoneDay sets the "all_done_day" field.
func (_u *GamificationStateUpdate) SetAllDoneDay(v string) *GamificationStateUpdate {
	_u.mutation.SetAllDoneDay(v)
	return _u
}

// SetNillableAllDoneDay sets the "all_done_day" field if the given value is not nil.
func (_u *GamificationStateUpdate) SetNillableAllDoneDay(v *string) *GamificationStateUpdate {
	if v != nil {
		_u.SetAllDoneDay(*v)
	}
	return _u
}

// Mutation returns the GamificationStateMutation object of the builder.
func (_u *GamificationStateUpdate) Mutation() *GamificationStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GamificationStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GamificationStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GamificationStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GamificationStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GamificationStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := gamificationstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GamificationStateUpdate) check() error {
	if v, ok := _u.mutation.TotalGoalMetDays(); ok {
		if err := gamificationstate.TotalGoalMetDaysValidator(v); err != nil {
			return &ValidationError{Name: "total_goal_met_days", err: fmt.Errorf(`repo: validator failed for field "GamificationState.total_goal_met_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WeekKey(); ok {
		if err := gamificationstate.WeekKeyValidator(v); err != nil {
			return &ValidationError{Name: "week_key", err: fmt.Errorf(`repo: validator failed for field "GamificationState.week_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WeeklyStreakCount(); ok {
		if err := gamificationstate.WeeklyStreakCountValidator(v); err != nil {
			return &ValidationError{Name: "weekly_streak_count", err: fmt.Errorf(`repo: validator failed for field "GamificationState.weekly_streak_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalTaskTiersCompleted(); ok {
		if err := gamificationstate.TotalTaskTiersCompletedValidator(v); err != nil {
			return &ValidationError{Name: "total_task_tiers_completed", err: fmt.Errorf(`repo: validator failed for field "GamificationState.total_task_tiers_completed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AllDoneDay(); ok {
		if err := gamificationstate.AllDoneDayValidator(v); err != nil {
			return &ValidationError{Name: "all_done_day", err: fmt.Errorf(`repo: validator failed for field "GamificationState.all_done_day": %w`, err)}
		}
	}
	return nil
}

func (_u *GamificationStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gamificationstate.Table, gamificationstate.Columns, sqlgraph.NewFieldSpec(gamificationstate.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(gamificationstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(gamificationstate.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TotalGoalMetDays(); ok {
		_spec.SetField(gamificationstate.FieldTotalGoalMetDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalGoalMetDays(); ok {
		_spec.AddField(gamificationstate.FieldTotalGoalMetDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeekKey(); ok {
		_spec.SetField(gamificationstate.FieldWeekKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeeklyStreakCount(); ok {
		_spec.SetField(gamificationstate.FieldWeeklyStreakCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeeklyStreakCount(); ok {
		_spec.AddField(gamificationstate.FieldWeeklyStreakCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTaskTiersCompleted(); ok {
		_spec.SetField(gamificationstate.FieldTotalTaskTiersCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTaskTiersCompleted(); ok {
		_spec.AddField(gamificationstate.FieldTotalTaskTiersCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AllDoneDay(); ok {
		_spec.SetField(gamificationstate.FieldAllDoneDay, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gamificationstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GamificationStateUpdateOne is the builder for updating a single GamificationState entity.
type GamificationStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GamificationStateMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GamificationStateUpdateOne) SetUpdatedAt(v time.Time) *GamificationStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *GamificationStateUpdateOne) SetPatientID(v uuid.UUID) *GamificationStateUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *GamificationStateUpdateOne) SetNillablePatientID(v *uuid.UUID) *GamificationStateUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetTotalGoalMetDays sets the "total_goal_met_days" field.
func (_u *GamificationStateUpdateOne) SetTotalGoalMetDays(v int) *GamificationStateUpdateOne {
	_u.mutation.ResetTotalGoalMetDays()
	_u.mutation.SetTotalGoalMetDays(v)
	return _u
}

// SetNillableTotalGoalMetDays sets the "total_goal_met_days" field if the given value is not nil.
func (_u *GamificationStateUpdateOne) SetNillableTotalGoalMetDays(v *int) *GamificationStateUpdateOne {
	if v != nil {
		_u.SetTotalGoalMetDays(*v)
	}
	return _u
}

// AddTotalGoalMetDays adds value to the "total_goal_met_days" field.
func (_u *GamificationStateUpdateOne) AddTotalGoalMetDays(v int) *GamificationStateUpdateOne {
	_u.mutation.AddTotalGoalMetDays(v)
	return _u
}

// SetWeekKey sets the "week_key" field.
func (_u *GamificationStateUpdateOne) SetWeekKey(v string) *GamificationStateUpdateOne {
	_u.mutation.SetWeekKey(v)
	return _u
}

// SetNillableWeekKey sets the "week_key" field if the given value is not nil.
func (_u *GamificationStateUpdateOne) SetNillableWeekKey(v *string) *GamificationStateUpdateOne {
	if v != nil {
		_u.SetWeekKey(*v)
	}
	return _u
}

// SetWeeklyStreakCount sets the "weekly_streak_count" field.
func (_u *GamificationStateUpdateOne) SetWeeklyStreakCount(v int) *GamificationStateUpdateOne {
	_u.mutation.ResetWeeklyStreakCount()
	_u.mutation.SetWeeklyStreakCount(v)
	return _u
}

// SetNillableWeeklyStreakCount sets the "weekly_streak_count" field if the given value is not nil.
func (_u *GamificationStateUpdateOne) SetNillableWeeklyStreakCount(v *int) *GamificationStateUpdateOne {
	if v != nil {
		_u.SetWeeklyStreakCount(*v)
	}
	return _u
}

// AddWeeklyStreakCount adds value to the "weekly_streak_count" field.
func (_u *GamificationStateUpdateOne) AddWeeklyStreakCount(v int) *GamificationStateUpdateOne {
	_u.mutation.AddWeeklyStreakCount(v)
	return _u
}

// SetTotalTaskTiersCompleted sets the "total_task_tiers_completed" field.
func (_u *GamificationStateUpdateOne) SetTotalTaskTiersCompleted(v int) *GamificationStateUpdateOne {
	_u.mutation.ResetTotalTaskTiersCompleted()
	_u.mutation.SetTotalTaskTiersCompleted(v)
	return _u
}

// SetNillableTotalTaskTiersCompleted sets the "total_task_tiers_completed" field if the given value is not nil.
func (_u *GamificationStateUpdateOne) SetNillableTotalTaskTiersCompleted(v *int) *GamificationStateUpdateOne {
	if v != nil {
		_u.SetTotalTaskTiersCompleted(*v)
	}
	return _u
}

// AddTotalTaskTiersCompleted adds value to the "total_task_tiers_completed" field.
func (_u *GamificationStateUpdateOne) AddTotalTaskTiersCompleted(v int) *GamificationStateUpdateOne {
	_u.mutation.AddTotalTaskTiersCompleted(v)
	return _u
}

// SetAllDoneDay sets the "all_done_day" field.
func (_u *GamificationStateUpdateOne) SetAllDoneDay(v string) *GamificationStateUpdateOne {
	_u.mutation.SetAllDoneDay(v)
	return _u
}

// SetNillableAllDoneDay sets the "all_done_day" field if the given value is not nil.
func (_u *GamificationStateUpdateOne) SetNillableAllDoneDay(v *string) *GamificationStateUpdateOne {
	if v != nil {
		_u.SetAllDoneDay(*v)
	}
	return _u
}

// Mutation returns the GamificationStateMutation object of the builder.
func (_u *GamificationStateUpdateOne) Mutation() *GamificationStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the GamificationStateUpdate builder.
func (_u *GamificationStateUpdateOne) Where(ps ...predicate.GamificationState) *GamificationStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GamificationStateUpdateOne) Select(field string, fields ...string) *GamificationStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GamificationState entity.
func (_u *GamificationStateUpdateOne) Save(ctx context.Context) (*GamificationState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GamificationStateUpdateOne) SaveX(ctx context.Context) *GamificationState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GamificationStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GamificationStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GamificationStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := gamificationstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GamificationStateUpdateOne) check() error {
	if v, ok := _u.mutation.TotalGoalMetDays(); ok {
		if err := gamificationstate.TotalGoalMetDaysValidator(v); err != nil {
			return &ValidationError{Name: "total_goal_met_days", err: fmt.Errorf(`repo: validator failed for field "GamificationState.total_goal_met_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WeekKey(); ok {
		if err := gamificationstate.WeekKeyValidator(v); err != nil {
			return &ValidationError{Name: "week_key", err: fmt.Errorf(`repo: validator failed for field "GamificationState.week_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WeeklyStreakCount(); ok {
		if err := gamificationstate.WeeklyStreakCountValidator(v); err != nil {
			return &ValidationError{Name: "weekly_streak_count", err: fmt.Errorf(`repo: validator failed for field "GamificationState.weekly_streak_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalTaskTiersCompleted(); ok {
		if err := gamificationstate.TotalTaskTiersCompletedValidator(v); err != nil {
			return &ValidationError{Name: "total_task_tiers_completed", err: fmt.Errorf(`repo: validator failed for field "GamificationState.total_task_tiers_completed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AllDoneDay(); ok {
		if err := gamificationstate.AllDoneDayValidator(v); err != nil {
			return &ValidationError{Name: "all_done_day", err: fmt.Errorf(`repo: validator failed for field "GamificationState.all_done_day": %w`, err)}
		}
	}
	return nil
}

func (_u *GamificationStateUpdateOne) sqlSave(ctx context.Context) (_node *GamificationState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gamificationstate.Table, gamificationstate.Columns, sqlgraph.NewFieldSpec(gamificationstate.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "GamificationState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gamificationstate.FieldID)
		for _, f := range fields {
			if !gamificationstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != gamificationstate.FieldID {
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
		_spec.SetField(gamificationstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(gamificationstate.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TotalGoalMetDays(); ok {
		_spec.SetField(gamificationstate.FieldTotalGoalMetDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalGoalMetDays(); ok {
		_spec.AddField(gamificationstate.FieldTotalGoalMetDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeekKey(); ok {
		_spec.SetField(gamificationstate.FieldWeekKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeeklyStreakCount(); ok {
		_spec.SetField(gamificationstate.FieldWeeklyStreakCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeeklyStreakCount(); ok {
		_spec.AddField(gamificationstate.FieldWeeklyStreakCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTaskTiersCompleted(); ok {
		_spec.SetField(gamificationstate.FieldTotalTaskTiersCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTaskTiersCompleted(); ok {
		_spec.AddField(gamificationstate.FieldTotalTaskTiersCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AllDoneDay(); ok {
		_spec.SetField(gamificationstate.FieldAllDoneDay, field.TypeString, value)
	}
	_node = &GamificationState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gamificationstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
