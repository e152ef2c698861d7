// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/nutrivida/nutrivida_backend/internal/repo/gamificationstate"
)

// GamificationStateCreate is the builder for creating a GamificationState entity.
type GamificationStateCreate struct {
	config
	mutation *GamificationStateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *GamificationStateCreate) SetCreatedAt(v time.Time) *GamificationStateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GamificationStateCreate) SetNillableCreatedAt(v *time.Time) *GamificationStateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *GamificationStateCreate) SetUpdatedAt(v time.Time) *GamificationStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *GamificationStateCreate) SetNillableUpdatedAt(v *time.Time) *GamificationStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *GamificationStateCreate) SetPatientID(v uuid.UUID) *GamificationStateCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetTotalGoalMetDays sets the "total_goal_met_days" field.
func (_c *GamificationStateCreate) SetTotalGoalMetDays(v int) *GamificationStateCreate {
	_c.mutation.SetTotalGoalMetDays(v)
	return _c
}

// SetNillableTotalGoalMetDays sets the "total_goal_met_days" field if the given value is not nil.
func (_c *GamificationStateCreate) SetNillableTotalGoalMetDays(v *int) *GamificationStateCreate {
	if v != nil {
		_c.SetTotalGoalMetDays(*v)
	}
	return _c
}

// SetWeekKey sets the "week_key" field.
func (_c *GamificationStateCreate) SetWeekKey(v string) *GamificationStateCreate {
	_c.mutation.SetWeekKey(v)
	return _c
}

// SetNillableWeekKey sets the "week_key" field if the given value is not nil.
func (_c *GamificationStateCreate) SetNillableWeekKey(v *string) *GamificationStateCreate {
	if v != nil {
		_c.SetWeekKey(*v)
	}
	return _c
}

// SetWeeklyStreakCount sets the "weekly_streak_count" field.
func (_c *GamificationStateCreate) SetWeeklyStreakCount(v int) *GamificationStateCreate {
	_c.mutation.SetWeeklyStreakCount(v)
	return _c
}

// SetNillableWeeklyStreakCount sets the "weekly_streak_count" field if the given value is not nil.
func (_c *GamificationStateCreate) SetNillableWeeklyStreakCount(v *int) *GamificationStateCreate {
	if v != nil {
		_c.SetWeeklyStreakCount(*v)
	}
	return _c
}

// SetTotalTaskTiersCompleted sets the "total_task_tiers_completed" field.
func (_c *GamificationStateCreate) SetTotalTaskTiersCompleted(v int) *GamificationStateCreate {
	_c.mutation.SetTotalTaskTiersCompleted(v)
	return _c
}

// SetNillableTotalTaskTiersCompleted sets the "total_task_tiers_completed" field if the given value is not nil.
func (_c *GamificationStateCreate) SetNillableTotalTaskTiersCompleted(v *int) *GamificationStateCreate {
	if v != nil {
		_c.SetTotalTaskTiersCompleted(*v)
	}
	return _c
}

// SetAllDoneDay sets the "all_done_day" field.
func (_c *GamificationStateCreate) SetAllDoneDay(v string) *GamificationStateCreate {
	_c.mutation.SetAllDoneDay(v)
	return _c
}

// SetNillableAllDoneDay sets the "all_done_day" field if the given value is not nil.
func (_c *GamificationStateCreate) SetNillableAllDoneDay(v *string) *GamificationStateCreate {
	if v != nil {
		_c.SetAllDoneDay(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GamificationStateCreate) SetID(v uuid.UUID) *GamificationStateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GamificationStateCreate) SetNillableID(v *uuid.UUID) *GamificationStateCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the GamificationStateMutation object of the builder.
func (_c *GamificationStateCreate) Mutation() *GamificationStateMutation {
	return _c.mutation
}

// Save creates the GamificationState in the database.
func (_c *GamificationStateCreate) Save(ctx context.Context) (*GamificationState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GamificationStateCreate) SaveX(ctx context.Context) *GamificationState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GamificationStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GamificationStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GamificationStateCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := gamificationstate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := gamificationstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.TotalGoalMetDays(); !ok {
		v := gamificationstate.DefaultTotalGoalMetDays
		_c.mutation.SetTotalGoalMetDays(v)
	}
	if _, ok := _c.mutation.WeekKey(); !ok {
		v := gamificationstate.DefaultWeekKey
		_c.mutation.SetWeekKey(v)
	}
	if _, ok := _c.mutation.WeeklyStreakCount(); !ok {
		v := gamificationstate.DefaultWeeklyStreakCount
		_c.mutation.SetWeeklyStreakCount(v)
	}
	if _, ok := _c.mutation.TotalTaskTiersCompleted(); !ok {
		v := gamificationstate.DefaultTotalTaskTiersCompleted
		_c.mutation.SetTotalTaskTiersCompleted(v)
	}
	if _, ok := _c.mutation.AllDoneDay(); !ok {
		v := gamificationstate.DefaultAllDoneDay
		_c.mutation.SetAllDoneDay(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := gamificationstate.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GamificationStateCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "GamificationState.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "GamificationState.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "GamificationState.patient_id"`)}
	}
	if _, ok := _c.mutation.TotalGoalMetDays(); !ok {
		return &ValidationError{Name: "total_goal_met_days", err: errors.New(`repo: missing required field "GamificationState.total_goal_met_days"`)}
	}
	if v, ok := _c.mutation.TotalGoalMetDays(); ok {
		if err := gamificationstate.TotalGoalMetDaysValidator(v); err != nil {
			return &ValidationError{Name: "total_goal_met_days", err: fmt.Errorf(`repo: validator failed for field "GamificationState.total_goal_met_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WeekKey(); !ok {
		return &ValidationError{Name: "week_key", err: errors.New(`repo: missing required field "GamificationState.week_key"`)}
	}
	if v, ok := _c.mutation.WeekKey(); ok {
		if err := gamificationstate.WeekKeyValidator(v); err != nil {
			return &ValidationError{Name: "week_key", err: fmt.Errorf(`repo: validator failed for field "GamificationState.week_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WeeklyStreakCount(); !ok {
		return &ValidationError{Name: "weekly_streak_count", err: errors.New(`repo: missing required field "GamificationState.weekly_streak_count"`)}
	}
	if v, ok := _c.mutation.WeeklyStreakCount(); ok {
		if err := gamificationstate.WeeklyStreakCountValidator(v); err != nil {
			return &ValidationError{Name: "weekly_streak_count", err: fmt.Errorf(`repo: validator failed for field "GamificationState.weekly_streak_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalTaskTiersCompleted(); !ok {
		return &ValidationError{Name: "total_task_tiers_completed", err: errors.New(`repo: missing required field "GamificationState.total_task_tiers_completed"`)}
	}
	if v, ok := _c.mutation.TotalTaskTiersCompleted(); ok {
		if err := gamificationstate.TotalTaskTiersCompletedValidator(v); err != nil {
			return &ValidationError{Name: "total_task_tiers_completed", err: fmt.Errorf(`repo: validator failed for field "GamificationState.total_task_tiers_completed": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AllDoneDay(); !ok {
		return &ValidationError{Name: "all_done_day", err: errors.New(`repo: missing required field "GamificationState.all_done_day"`)}
	}
	if v, ok := _c.mutation.AllDoneDay(); ok {
		if err := gamificationstate.AllDoneDayValidator(v); err != nil {
			return &ValidationError{Name: "all_done_day", err: fmt.Errorf(`repo: validator failed for field "GamificationState.all_done_day": %w`, err)}
		}
	}
	return nil
}

func (_c *GamificationStateCreate) sqlSave(ctx context.Context) (*GamificationState, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GamificationStateCreate) createSpec() (*GamificationState, *sqlgraph.CreateSpec) {
	var (
		_node = &GamificationState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gamificationstate.Table, sqlgraph.NewFieldSpec(gamificationstate.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(gamificationstate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(gamificationstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(gamificationstate.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.TotalGoalMetDays(); ok {
		_spec.SetField(gamificationstate.FieldTotalGoalMetDays, field.TypeInt, value)
		_node.TotalGoalMetDays = value
	}
	if value, ok := _c.mutation.WeekKey(); ok {
		_spec.SetField(gamificationstate.FieldWeekKey, field.TypeString, value)
		_node.WeekKey = value
	}
	if value, ok := _c.mutation.WeeklyStreakCount(); ok {
		_spec.SetField(gamificationstate.FieldWeeklyStreakCount, field.TypeInt, value)
		_node.WeeklyStreakCount = value
	}
	if value, ok := _c.mutation.TotalTaskTiersCompleted(); ok {
		_spec.SetField(gamificationstate.FieldTotalTaskTiersCompleted, field.TypeInt, value)
		_node.TotalTaskTiersCompleted = value
	}
	if value, ok := _c.mutation.AllDoneDay(); ok {
		_spec.SetField(gamificationstate.FieldAllDoneDay, field.TypeString, value)
		_node.AllDoneDay = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GamificationState.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GamificationStateUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *GamificationStateCreate) OnConflict(opts ...sql.ConflictOption) *GamificationStateUpsertOne {
	_c.conflict = opts
	return &GamificationStateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GamificationState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GamificationStateCreate) OnConflictColumns(columns ...string) *GamificationStateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GamificationStateUpsertOne{
		create: _c,
	}
}

type (
	// GamificationStateUpsertOne is the builder for "upsert"-ing
	//  one GamificationState node.
	GamificationStateUpsertOne struct {
		create *GamificationStateCreate
	}

	// GamificationStateUpsert is the "OnConflict" setter.
	GamificationStateUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *GamificationStateUpsert) SetUpdatedAt(v time.Time) *GamificationStateUpsert {
	u.Set(gamificationstate.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GamificationStateUpsert) UpdateUpdatedAt() *GamificationStateUpsert {
	u.SetExcluded(gamificationstate.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *GamificationStateUpsert) SetPatientID(v uuid.UUID) *GamificationStateUpsert {
	u.Set(gamificationstate.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *GamificationStateUpsert) UpdatePatientID() *GamificationStateUpsert {
	u.SetExcluded(gamificationstate.FieldPatientID)
	return u
}

// SetTotalGoalMetDays sets the "total_goal_met_days" field.
func (u *GamificationStateUpsert) SetTotalGoalMetDays(v int) *GamificationStateUpsert {
	u.Set(gamificationstate.FieldTotalGoalMetDays, v)
	return u
}

// UpdateTotalGoalMetDays sets the "total_goal_met_days" field to the value that was provided on create.
func (u *GamificationStateUpsert) UpdateTotalGoalMetDays() *GamificationStateUpsert {
	u.SetExcluded(gamificationstate.FieldTotalGoalMetDays)
	return u
}

// AddTotalGoalMetDays adds v to the "total_goal_met_days" field.
func (u *GamificationStateUpsert) AddTotalGoalMetDays(v int) *GamificationStateUpsert {
	u.Add(gamificationstate.FieldTotalGoalMetDays, v)
	return u
}

// SetWeekKey sets the "week_key" field.
func (u *GamificationStateUpsert) SetWeekKey(v string) *GamificationStateUpsert {
	u.Set(gamificationstate.FieldWeekKey, v)
	return u
}

// UpdateWeekKey sets the "week_key" field to the value that was provided on create.
func (u *GamificationStateUpsert) UpdateWeekKey() *GamificationStateUpsert {
	u.SetExcluded(gamificationstate.FieldWeekKey)
	return u
}

// SetWeeklyStreakCount sets the "weekly_streak_count" field.
func (u *GamificationStateUpsert) SetWeeklyStreakCount(v int) *GamificationStateUpsert {
	u.Set(gamificationstate.FieldWeeklyStreakCount, v)
	return u
}

// UpdateWeeklyStreakCount sets the "weekly_streak_count" field to the value that was provided on create.
func (u *GamificationStateUpsert) UpdateWeeklyStreakCount() *GamificationStateUpsert {
	u.SetExcluded(gamificationstate.FieldWeeklyStreakCount)
	return u
}

// AddWeeklyStreakCount adds v to the "weekly_streak_count" field.
func (u *GamificationStateUpsert) AddWeeklyStreakCount(v int) *GamificationStateUpsert {
	u.Add(gamificationstate.FieldWeeklyStreakCount, v)
	return u
}

// SetTotalTaskTiersCompleted sets the "total_task_tiers_completed" field.
func (u *GamificationStateUpsert) SetTotalTaskTiersCompleted(v int) *GamificationStateUpsert {
	u.Set(gamificationstate.FieldTotalTaskTiersCompleted, v)
	return u
}

// UpdateTotalTaskTiersCompleted sets the "total_task_tiers_completed" field to the value that was provided on create.
func (u *GamificationStateUpsert) UpdateTotalTaskTiersCompleted() *GamificationStateUpsert {
	u.SetExcluded(gamificationstate.FieldTotalTaskTiersCompleted)
	return u
}

// AddTotalTaskTiersCompleted adds v to the "total_task_tiers_completed" field.
func (u *GamificationStateUpsert) AddTotalTaskTiersCompleted(v int) *GamificationStateUpsert {
	u.Add(gamificationstate.FieldTotalTaskTiersCompleted, v)
	return u
}

// SetAllDoneDay sets the "all_done_day" field.
func (u *GamificationStateUpsert) SetAllDoneDay(v string) *GamificationStateUpsert {
	u.Set(gamificationstate.FieldAllDoneDay, v)
	return u
}

// UpdateAllDoneDay sets the "all_done_day" field to the value that was provided on create.
func (u *GamificationStateUpsert) UpdateAllDoneDay() *GamificationStateUpsert {
	u.SetExcluded(gamificationstate.FieldAllDoneDay)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.GamificationState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(gamificationstate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GamificationStateUpsertOne) UpdateNewValues() *GamificationStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(gamificationstate.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(gamificationstate.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GamificationState.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GamificationStateUpsertOne) Ignore() *GamificationStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GamificationStateUpsertOne) DoNothing() *GamificationStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GamificationStateCreate.OnConflict
// documentation for more info.
func (u *GamificationStateUpsertOne) Update(set func(*GamificationStateUpsert)) *GamificationStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GamificationStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GamificationStateUpsertOne) SetUpdatedAt(v time.Time) *GamificationStateUpsertOne {
	return u.Update(func(s *GamificationStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GamificationStateUpsertOne) UpdateUpdatedAt() *GamificationStateUpsertOne {
	return u.Update(func(s *GamificationStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *GamificationStateUpsertOne) SetPatientID(v uuid.UUID) *GamificationStateUpsertOne {
	return u.Update(func(s *GamificationStateUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *GamificationStateUpsertOne) UpdatePatientID() *GamificationStateUpsertOne {
	return u.Update(func(s *GamificationStateUpsert) {
		s.UpdatePatientID()
	})
}

// SetTotalGoalMetDays sets the "total_goal_met_days" field.
func (u *GamificationStateUpsertOne) SetTotalGoalMetDays(v int) *GamificationStateUpsertOne {
	return u.Update(func(s *GamificationStateUpsert) {
		s.SetTotalGoalMetDays(v)
	})
}

// AddTotalGoalMetDays adds v to the "total_goal_met_days" field.
func (u *GamificationStateUpsertOne) AddTotalGoalMetDays(v int) *GamificationStateUpsertOne {
	return u.Update(func(s *GamificationStateUpsert) {
		s.AddTotalGoalMetDays(v)
	})
}

// UpdateTotalGoalMetDays sets the "total_goal_met_days" field to the value that was provided on create.
func (u *GamificationStateUpsertOne) UpdateTotalGoalMetDays() *GamificationStateUpsertOne {
	return u.Update(func(s *GamificationStateUpsert) {
		s.UpdateTotalGoalMetDays()
	})
}

// SetWeekKey sets the "week_key" field.
func (u *GamificationStateUpsertOne) SetWeekKey(v string) *GamificationStateUpsertOne {
	return u.Update(func(s *GamificationStateUpsert) {
		s.SetWeekKey(v)
	})
}

// UpdateWeekKey sets the "week_key" field to the value that was provided on create.
func (u *GamificationStateUpsertOne) UpdateWeekKey() *GamificationStateUpsertOne {
	return u.Update(func(s *GamificationStateUpsert) {
		s.UpdateWeekKey()
	})
}

// SetWeeklyStreakCount sets the "weekly_streak_count" field.
func (u *GamificationStateUpsertOne) SetWeeklyStreakCount(v int) *GamificationStateUpsertOne {
	return u.Update(func(s *GamificationStateUpsert) {
		s.SetWeeklyStreakCount(v)
	})
}

// AddWeeklyStreakCount adds v to the "weekly_streak_count" field.
func (u *GamificationStateUpsertOne) AddWeeklyStreakCount(v int) *GamificationStateUpsertOne {
	return u.Update(func(s *GamificationStateUpsert) {
		s.AddWeeklyStreakCount(v)
	})
}

// UpdateWeeklyStreakCount sets the "weekly_streak_count" field to the value that was provided on create.
func (u *GamificationStateUpsertOne) UpdateWeeklyStreakCount() *GamificationStateUpsertOne {
	return u.Update(func(s *GamificationStateUpsert) {
		s.UpdateWeeklyStreakCount()
	})
}

// SetTotalTaskTiersCompleted sets the "total_task_tiers_completed" field.
func (u *GamificationStateUpsertOne) SetTotalTaskTiersCompleted(v int) *GamificationStateUpsertOne {
	return u.Update(func(s *GamificationStateUpsert) {
		s.SetTotalTaskTiersCompleted(v)
	})
}

// AddTotalTaskTiersCompleted adds v to the "total_task_tiers_completed" field.
func (u *GamificationStateUpsertOne) AddTotalTaskTiersCompleted(v int) *GamificationStateUpsertOne {
	return u.Update(func(s *GamificationStateUpsert) {
		s.AddTotalTaskTiersCompleted(v)
	})
}

// UpdateTotalTaskTiersCompleted sets the "total_task_tiers_completed" field to the value that was provided on create.
func (u *GamificationStateUpsertOne) UpdateTotalTaskTiersCompleted() *GamificationStateUpsertOne {
	return u.Update(func(s *GamificationStateUpsert) {
		s.UpdateTotalTaskTiersCompleted()
	})
}

// SetAllDoneDay sets the "all_done_day" field.
func (u *GamificationStateUpsertOne) SetAllDoneDay(v string) *GamificationStateUpsertOne {
	return u.Update(func(s *GamificationStateUpsert) {
		s.SetAllDoneDay(v)
	})
}

// UpdateAllDoneDay sets the "all_done_day" field to the value that was provided on create.
func (u *GamificationStateUpsertOne) UpdateAllDoneDay() *GamificationStateUpsertOne {
	return u.Update(func(s *GamificationStateUpsert) {
		s.UpdateAllDoneDay()
	})
}

// Exec executes the query.
func (u *GamificationStateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for GamificationStateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GamificationStateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GamificationStateUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: GamificationStateUpsertOne.ID is not supported by MySQL driver. Use GamificationStateUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GamificationStateUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GamificationStateCreateBulk is the builder for creating many GamificationState entities in bulk.
type GamificationStateCreateBulk struct {
	config
	err      error
	builders []*GamificationStateCreate
	conflict []sql.ConflictOption
}

// Save creates the GamificationState entities in the database.
func (_c *GamificationStateCreateBulk) Save(ctx context.Context) ([]*GamificationState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GamificationState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GamificationStateMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GamificationStateCreateBulk) SaveX(ctx context.Context) []*GamificationState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GamificationStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GamificationStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GamificationState.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GamificationStateUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *GamificationStateCreateBulk) OnConflict(opts ...sql.ConflictOption) *GamificationStateUpsertBulk {
	_c.conflict = opts
	return &GamificationStateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GamificationState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GamificationStateCreateBulk) OnConflictColumns(columns ...string) *GamificationStateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GamificationStateUpsertBulk{
		create: _c,
	}
}

// GamificationStateUpsertBulk is the builder for "upsert"-ing
// a bulk of GamificationState nodes.
type GamificationStateUpsertBulk struct {
	create *GamificationStateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GamificationState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(gamificationstate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GamificationStateUpsertBulk) UpdateNewValues() *GamificationStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(gamificationstate.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(gamificationstate.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GamificationState.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GamificationStateUpsertBulk) Ignore() *GamificationStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GamificationStateUpsertBulk) DoNothing() *GamificationStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GamificationStateCreateBulk.OnConflict
// documentation for more info.
func (u *GamificationStateUpsertBulk) Update(set func(*GamificationStateUpsert)) *GamificationStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GamificationStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GamificationStateUpsertBulk) SetUpdatedAt(v time.Time) *GamificationStateUpsertBulk {
	return u.Update(func(s *GamificationStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GamificationStateUpsertBulk) UpdateUpdatedAt() *GamificationStateUpsertBulk {
	return u.Update(func(s *GamificationStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *GamificationStateUpsertBulk) SetPatientID(v uuid.UUID) *GamificationStateUpsertBulk {
	return u.Update(func(s *GamificationStateUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *GamificationStateUpsertBulk) UpdatePatientID() *GamificationStateUpsertBulk {
	return u.Update(func(s *GamificationStateUpsert) {
		s.UpdatePatientID()
	})
}

// SetTotalGoalMetDays sets the "total_goal_met_days" field.
func (u *GamificationStateUpsertBulk) SetTotalGoalMetDays(v int) *GamificationStateUpsertBulk {
	return u.Update(func(s *GamificationStateUpsert) {
		s.SetTotalGoalMetDays(v)
	})
}

// AddTotalGoalMetDays adds v to the "total_goal_met_days" field.
func (u *GamificationStateUpsertBulk) AddTotalGoalMetDays(v int) *GamificationStateUpsertBulk {
	return u.Update(func(s *GamificationStateUpsert) {
		s.AddTotalGoalMetDays(v)
	})
}

// UpdateTotalGoalMetDays sets the "total_goal_met_days" field to the value that was provided on create.
func (u *GamificationStateUpsertBulk) UpdateTotalGoalMetDays() *GamificationStateUpsertBulk {
	return u.Update(func(s *GamificationStateUpsert) {
		s.UpdateTotalGoalMetDays()
	})
}

// SetWeekKey sets the "week_key" field.
func (u *GamificationStateUpsertBulk) SetWeekKey(v string) *GamificationStateUpsertBulk {
	return u.Update(func(s *GamificationStateUpsert) {
		s.SetWeekKey(v)
	})
}

// UpdateWeekKey sets the "week_key" field to the value that was provided on create.
func (u *GamificationStateUpsertBulk) UpdateWeekKey() *GamificationStateUpsertBulk {
	return u.Update(func(s *GamificationStateUpsert) {
		s.UpdateWeekKey()
	})
}

// SetWeeklyStreakCount sets the "weekly_streak_count" field.
func (u *GamificationStateUpsertBulk) SetWeeklyStreakCount(v int) *GamificationStateUpsertBulk {
	return u.Update(func(s *GamificationStateUpsert) {
		s.SetWeeklyStreakCount(v)
	})
}

// AddWeeklyStreakCount adds v to the "weekly_streak_count" field.
func (u *GamificationStateUpsertBulk) AddWeeklyStreakCount(v int) *GamificationStateUpsertBulk {
	return u.Update(func(s *GamificationStateUpsert) {
		s.AddWeeklyStreakCount(v)
	})
}

// UpdateWeeklyStreakCount sets the "weekly_streak_count" field to the value that was provided on create.
func (u *GamificationStateUpsertBulk) UpdateWeeklyStreakCount() *GamificationStateUpsertBulk {
	return u.Update(func(s *GamificationStateUpsert) {
		s.UpdateWeeklyStreakCount()
	})
}

// SetTotalTaskTiersCompleted sets the "total_task_tiers_completed" field.
func (u *GamificationStateUpsertBulk) SetTotalTaskTiersCompleted(v int) *GamificationStateUpsertBulk {
	return u.Update(func(s *GamificationStateUpsert) {
		s.SetTotalTaskTiersCompleted(v)
	})
}

// AddTotalTaskTiersCompleted adds v to the "total_task_tiers_completed" field.
func (u *GamificationStateUpsertBulk) AddTotalTaskTiersCompleted(v int) *GamificationStateUpsertBulk {
	return u.Update(func(s *GamificationStateUpsert) {
		s.AddTotalTaskTiersCompleted(v)
	})
}

// UpdateTotalTaskTiersCompleted sets the "total_task_tiers_completed" field to the value that was provided on create.
func (u *GamificationStateUpsertBulk) UpdateTotalTaskTiersCompleted() *GamificationStateUpsertBulk {
	return u.Update(func(s *GamificationStateUpsert) {
		s.UpdateTotalTaskTiersCompleted()
	})
}

// SetAllDoneDay sets the "all_done_day" field.
func (u *GamificationStateUpsertBulk) SetAllDoneDay(v string) *GamificationStateUpsertBulk {
	return u.Update(func(s *GamificationStateUpsert) {
		s.SetAllDoneDay(v)
	})
}

// UpdateAllDoneDay sets the "all_done_day" field to the value that was provided on create.
func (u *GamificationStateUpsertBulk) UpdateAllDoneDay() *GamificationStateUpsertBulk {
	return u.Update(func(s *GamificationStateUpsert) {
		s.UpdateAllDoneDay()
	})
}

// Exec executes the query.
func (u *GamificationStateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the GamificationStateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for GamificationStateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GamificationStateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
