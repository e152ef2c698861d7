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
	"github.com/nutrivida/nutrivida_backend/internal/repo/hydrationlog"
)

// HydrationLogCreate is the builder for creating a HydrationLog entity.
type HydrationLogCreate struct {
	config
	mutation *HydrationLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *HydrationLogCreate) SetCreatedAt(v time.Time) *HydrationLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HydrationLogCreate) SetNillableCreatedAt(v *time.Time) *HydrationLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *HydrationLogCreate) SetUpdatedAt(v time.Time) *HydrationLogCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *HydrationLogCreate) SetNillableUpdatedAt(v *time.Time) *HydrationLogCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *HydrationLogCreate) SetPatientID(v uuid.UUID) *HydrationLogCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetDay sets the "day" field.
func (_c *HydrationLogCreate) SetDay(v string) *HydrationLogCreate {
	_c.mutation.SetDay(v)
	return _c
}

// SetIntakeMl sets the "intake_ml" field.
func (_c *HydrationLogCreate) SetIntakeMl(v int) *HydrationLogCreate {
	_c.mutation.SetIntakeMl(v)
	return _c
}

// SetNillableIntakeMl sets the "intake_ml" field if the given value is not nil.
func (_c *HydrationLogCreate) SetNillableIntakeMl(v *int) *HydrationLogCreate {
	if v != nil {
		_c.SetIntakeMl(*v)
	}
	return _c
}

// SetGoalMl sets the "goal_ml" field.
func (_c *HydrationLogCreate) SetGoalMl(v int) *HydrationLogCreate {
	_c.mutation.SetGoalMl(v)
	return _c
}

// SetGoalMet sets the "goal_met" field.
func (_c *HydrationLogCreate) SetGoalMet(v bool) *HydrationLogCreate {
	_c.mutation.SetGoalMet(v)
	return _c
}

// SetNillableGoalMet sets the "goal_met" field if the given value is not nil.
func (_c *HydrationLogCreate) SetNillableGoalMet(v *bool) *HydrationLogCreate {
	if v != nil {
		_c.SetGoalMet(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HydrationLogCreate) SetID(v uuid.UUID) *HydrationLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *HydrationLogCreate) SetNillableID(v *uuid.UUID) *HydrationLogCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the HydrationLogMutation object of the builder.
func (_c *HydrationLogCreate) Mutation() *HydrationLogMutation {
	return _c.mutation
}

// Save creates the HydrationLog in the database.
func (_c *HydrationLogCreate) Save(ctx context.Context) (*HydrationLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HydrationLogCreate) SaveX(ctx context.Context) *HydrationLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HydrationLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HydrationLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HydrationLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := hydrationlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := hydrationlog.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IntakeMl(); !ok {
		v := hydrationlog.DefaultIntakeMl
		_c.mutation.SetIntakeMl(v)
	}
	if _, ok := _c.mutation.GoalMet(); !ok {
		v := hydrationlog.DefaultGoalMet
		_c.mutation.SetGoalMet(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := hydrationlog.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HydrationLogCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "HydrationLog.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "HydrationLog.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "HydrationLog.patient_id"`)}
	}
	if _, ok := _c.mutation.Day(); !ok {
		return &ValidationError{Name: "day", err: errors.New(`repo: missing required field "HydrationLog.day"`)}
	}
	if v, ok := _c.mutation.Day(); ok {
		if err := hydrationlog.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`repo: validator failed for field "HydrationLog.day": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IntakeMl(); !ok {
		return &ValidationError{Name: "intake_ml", err: errors.New(`repo: missing required field "HydrationLog.intake_ml"`)}
	}
	if v, ok := _c.mutation.IntakeMl(); ok {
		if err := hydrationlog.IntakeMlValidator(v); err != nil {
			return &ValidationError{Name: "intake_ml", err: fmt.Errorf(`repo: validator failed for field "HydrationLog.intake_ml": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GoalMl(); !ok {
		return &ValidationError{Name: "goal_ml", err: errors.New(`repo: missing required field "HydrationLog.goal_ml"`)}
	}
	if v, ok := _c.mutation.GoalMl(); ok {
		if err := hydrationlog.GoalMlValidator(v); err != nil {
			return &ValidationError{Name: "goal_ml", err: fmt.Errorf(`repo: validator failed for field "HydrationLog.goal_ml": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GoalMet(); !ok {
		return &ValidationError{Name: "goal_met", err: errors.New(`repo: missing required field "HydrationLog.goal_met"`)}
	}
	return nil
}

func (_c *HydrationLogCreate) sqlSave(ctx context.Context) (*HydrationLog, error) {
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

func (_c *HydrationLogCreate) createSpec() (*HydrationLog, *sqlgraph.CreateSpec) {
	var (
		_node = &HydrationLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(hydrationlog.Table, sqlgraph.NewFieldSpec(hydrationlog.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(hydrationlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(hydrationlog.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(hydrationlog.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.Day(); ok {
		_spec.SetField(hydrationlog.FieldDay, field.TypeString, value)
		_node.Day = value
	}
	if value, ok := _c.mutation.IntakeMl(); ok {
		_spec.SetField(hydrationlog.FieldIntakeMl, field.TypeInt, value)
		_node.IntakeMl = value
	}
	if value, ok := _c.mutation.GoalMl(); ok {
		_spec.SetField(hydrationlog.FieldGoalMl, field.TypeInt, value)
		_node.GoalMl = value
	}
	if value, ok := _c.mutation.GoalMet(); ok {
		_spec.SetField(hydrationlog.FieldGoalMet, field.TypeBool, value)
		_node.GoalMet = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HydrationLog.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HydrationLogUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *HydrationLogCreate) OnConflict(opts ...sql.ConflictOption) *HydrationLogUpsertOne {
	_c.conflict = opts
	return &HydrationLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HydrationLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HydrationLogCreate) OnConflictColumns(columns ...string) *HydrationLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HydrationLogUpsertOne{
		create: _c,
	}
}

type (
	// HydrationLogUpsertOne is the builder for "upsert"-ing
	//  one HydrationLog node.
	HydrationLogUpsertOne struct {
		create *HydrationLogCreate
	}

	// HydrationLogUpsert is the "OnConflict" setter.
	HydrationLogUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *HydrationLogUpsert) SetUpdatedAt(v time.Time) *HydrationLogUpsert {
	u.Set(hydrationlog.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *HydrationLogUpsert) UpdateUpdatedAt() *HydrationLogUpsert {
	u.SetExcluded(hydrationlog.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *HydrationLogUpsert) SetPatientID(v uuid.UUID) *HydrationLogUpsert {
	u.Set(hydrationlog.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *HydrationLogUpsert) UpdatePatientID() *HydrationLogUpsert {
	u.SetExcluded(hydrationlog.FieldPatientID)
	return u
}

// SetDay sets the "day" field.
func (u *HydrationLogUpsert) SetDay(v string) *HydrationLogUpsert {
	u.Set(hydrationlog.FieldDay, v)
	return u
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *HydrationLogUpsert) UpdateDay() *HydrationLogUpsert {
	u.SetExcluded(hydrationlog.FieldDay)
	return u
}

// SetIntakeMl sets the "intake_ml" field.
func (u *HydrationLogUpsert) SetIntakeMl(v int) *HydrationLogUpsert {
	u.Set(hydrationlog.FieldIntakeMl, v)
	return u
}

// UpdateIntakeMl sets the "intake_ml" field to the value that was provided on create.
func (u *HydrationLogUpsert) UpdateIntakeMl() *HydrationLogUpsert {
	u.SetExcluded(hydrationlog.FieldIntakeMl)
	return u
}

// AddIntakeMl adds v to the "intake_ml" field.
func (u *HydrationLogUpsert) AddIntakeMl(v int) *HydrationLogUpsert {
	u.Add(hydrationlog.FieldIntakeMl, v)
	return u
}

// SetGoalMl sets the "goal_ml" field.
func (u *HydrationLogUpsert) SetGoalMl(v int) *HydrationLogUpsert {
	u.Set(hydrationlog.FieldGoalMl, v)
	return u
}

// UpdateGoalMl sets the "goal_ml" field to the value that was provided on create.
func (u *HydrationLogUpsert) UpdateGoalMl() *HydrationLogUpsert {
	u.SetExcluded(hydrationlog.FieldGoalMl)
	return u
}

// AddGoalMl adds v to the "goal_ml" field.
func (u *HydrationLogUpsert) AddGoalMl(v int) *HydrationLogUpsert {
	u.Add(hydrationlog.FieldGoalMl, v)
	return u
}

// SetGoalMet sets the "goal_met" field.
func (u *HydrationLogUpsert) SetGoalMet(v bool) *HydrationLogUpsert {
	u.Set(hydrationlog.FieldGoalMet, v)
	return u
}

// UpdateGoalMet sets the "goal_met" field to the value that was provided on create.
func (u *HydrationLogUpsert) UpdateGoalMet() *HydrationLogUpsert {
	u.SetExcluded(hydrationlog.FieldGoalMet)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.HydrationLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(hydrationlog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HydrationLogUpsertOne) UpdateNewValues() *HydrationLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(hydrationlog.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(hydrationlog.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HydrationLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *HydrationLogUpsertOne) Ignore() *HydrationLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HydrationLogUpsertOne) DoNothing() *HydrationLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HydrationLogCreate.OnConflict
// documentation for more info.
func (u *HydrationLogUpsertOne) Update(set func(*HydrationLogUpsert)) *HydrationLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HydrationLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *HydrationLogUpsertOne) SetUpdatedAt(v time.Time) *HydrationLogUpsertOne {
	return u.Update(func(s *HydrationLogUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *HydrationLogUpsertOne) UpdateUpdatedAt() *HydrationLogUpsertOne {
	return u.Update(func(s *HydrationLogUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *HydrationLogUpsertOne) SetPatientID(v uuid.UUID) *HydrationLogUpsertOne {
	return u.Update(func(s *HydrationLogUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *HydrationLogUpsertOne) UpdatePatientID() *HydrationLogUpsertOne {
	return u.Update(func(s *HydrationLogUpsert) {
		s.UpdatePatientID()
	})
}

// SetDay sets the "day" field.
func (u *HydrationLogUpsertOne) SetDay(v string) *HydrationLogUpsertOne {
	return u.Update(func(s *HydrationLogUpsert) {
		s.SetDay(v)
	})
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *HydrationLogUpsertOne) UpdateDay() *HydrationLogUpsertOne {
	return u.Update(func(s *HydrationLogUpsert) {
		s.UpdateDay()
	})
}

// SetIntakeMl sets the "intake_ml" field.
func (u *HydrationLogUpsertOne) SetIntakeMl(v int) *HydrationLogUpsertOne {
	return u.Update(func(s *HydrationLogUpsert) {
		s.SetIntakeMl(v)
	})
}

// AddIntakeMl adds v to the "intake_ml" field.
func (u *HydrationLogUpsertOne) AddIntakeMl(v int) *HydrationLogUpsertOne {
	return u.Update(func(s *HydrationLogUpsert) {
		s.AddIntakeMl(v)
	})
}

// UpdateIntakeMl sets the "intake_ml" field to the value that was provided on create.
func (u *HydrationLogUpsertOne) UpdateIntakeMl() *HydrationLogUpsertOne {
	return u.Update(func(s *HydrationLogUpsert) {
		s.UpdateIntakeMl()
	})
}

// SetGoalMl sets the "goal_ml" field.
func (u *HydrationLogUpsertOne) SetGoalMl(v int) *HydrationLogUpsertOne {
	return u.Update(func(s *HydrationLogUpsert) {
		s.SetGoalMl(v)
	})
}

// AddGoalMl adds v to the "goal_ml" field.
func (u *HydrationLogUpsertOne) AddGoalMl(v int) *HydrationLogUpsertOne {
	return u.Update(func(s *HydrationLogUpsert) {
		s.AddGoalMl(v)
	})
}

// UpdateGoalMl sets the "goal_ml" field to the value that was provided on create.
func (u *HydrationLogUpsertOne) UpdateGoalMl() *HydrationLogUpsertOne {
	return u.Update(func(s *HydrationLogUpsert) {
		s.UpdateGoalMl()
	})
}

// SetGoalMet sets the "goal_met" field.
func (u *HydrationLogUpsertOne) SetGoalMet(v bool) *HydrationLogUpsertOne {
	return u.Update(func(s *HydrationLogUpsert) {
		s.SetGoalMet(v)
	})
}

// UpdateGoalMet sets the "goal_met" field to the value that was provided on create.
func (u *HydrationLogUpsertOne) UpdateGoalMet() *HydrationLogUpsertOne {
	return u.Update(func(s *HydrationLogUpsert) {
		s.UpdateGoalMet()
	})
}

// Exec executes the query.
func (u *HydrationLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for HydrationLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HydrationLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *HydrationLogUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: HydrationLogUpsertOne.ID is not supported by MySQL driver. Use HydrationLogUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *HydrationLogUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// HydrationLogCreateBulk is the builder for creating many HydrationLog entities in bulk.
type HydrationLogCreateBulk struct {
	config
	err      error
	builders []*HydrationLogCreate
	conflict []sql.ConflictOption
}

// Save creates the HydrationLog entities in the database.
func (_c *HydrationLogCreateBulk) Save(ctx context.Context) ([]*HydrationLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HydrationLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HydrationLogMutation)
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
func (_c *HydrationLogCreateBulk) SaveX(ctx context.Context) []*HydrationLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HydrationLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HydrationLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HydrationLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HydrationLogUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *HydrationLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *HydrationLogUpsertBulk {
	_c.conflict = opts
	return &HydrationLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HydrationLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HydrationLogCreateBulk) OnConflictColumns(columns ...string) *HydrationLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HydrationLogUpsertBulk{
		create: _c,
	}
}

// HydrationLogUpsertBulk is the builder for "upsert"-ing
// a bulk of HydrationLog nodes.
type HydrationLogUpsertBulk struct {
	create *HydrationLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.HydrationLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(hydrationlog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HydrationLogUpsertBulk) UpdateNewValues() *HydrationLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(hydrationlog.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(hydrationlog.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HydrationLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *HydrationLogUpsertBulk) Ignore() *HydrationLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HydrationLogUpsertBulk) DoNothing() *HydrationLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HydrationLogCreateBulk.OnConflict
// documentation for more info.
func (u *HydrationLogUpsertBulk) Update(set func(*HydrationLogUpsert)) *HydrationLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HydrationLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *HydrationLogUpsertBulk) SetUpdatedAt(v time.Time) *HydrationLogUpsertBulk {
	return u.Update(func(s *HydrationLogUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *HydrationLogUpsertBulk) UpdateUpdatedAt() *HydrationLogUpsertBulk {
	return u.Update(func(s *HydrationLogUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *HydrationLogUpsertBulk) SetPatientID(v uuid.UUID) *HydrationLogUpsertBulk {
	return u.Update(func(s *HydrationLogUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *HydrationLogUpsertBulk) UpdatePatientID() *HydrationLogUpsertBulk {
	return u.Update(func(s *HydrationLogUpsert) {
		s.UpdatePatientID()
	})
}

// SetDay sets the "day" field.
func (u *HydrationLogUpsertBulk) SetDay(v string) *HydrationLogUpsertBulk {
	return u.Update(func(s *HydrationLogUpsert) {
		s.SetDay(v)
	})
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *HydrationLogUpsertBulk) UpdateDay() *HydrationLogUpsertBulk {
	return u.Update(func(s *HydrationLogUpsert) {
		s.UpdateDay()
	})
}

// SetIntakeMl sets the "intake_ml" field.
func (u *HydrationLogUpsertBulk) SetIntakeMl(v int) *HydrationLogUpsertBulk {
	return u.Update(func(s *HydrationLogUpsert) {
		s.SetIntakeMl(v)
	})
}

// AddIntakeMl adds v to the "intake_ml" field.
func (u *HydrationLogUpsertBulk) AddIntakeMl(v int) *HydrationLogUpsertBulk {
	return u.Update(func(s *HydrationLogUpsert) {
		s.AddIntakeMl(v)
	})
}

// UpdateIntakeMl sets the "intake_ml" field to the value that was provided on create.
func (u *HydrationLogUpsertBulk) UpdateIntakeMl() *HydrationLogUpsertBulk {
	return u.Update(func(s *HydrationLogUpsert) {
		s.UpdateIntakeMl()
	})
}

// SetGoalMl sets the "goal_ml" field.
func (u *HydrationLogUpsertBulk) SetGoalMl(v int) *HydrationLogUpsertBulk {
	return u.Update(func(s *HydrationLogUpsert) {
		s.SetGoalMl(v)
	})
}

// AddGoalMl adds v to the "goal_ml" field.
func (u *HydrationLogUpsertBulk) AddGoalMl(v int) *HydrationLogUpsertBulk {
	return u.Update(func(s *HydrationLogUpsert) {
		s.AddGoalMl(v)
	})
}

// UpdateGoalMl sets the "goal_ml" field to the value that was provided on create.
func (u *HydrationLogUpsertBulk) UpdateGoalMl() *HydrationLogUpsertBulk {
	return u.Update(func(s *HydrationLogUpsert) {
		s.UpdateGoalMl()
	})
}

// SetGoalMet sets the "goal_met" field.
func (u *HydrationLogUpsertBulk) SetGoalMet(v bool) *HydrationLogUpsertBulk {
	return u.Update(func(s *HydrationLogUpsert) {
		s.SetGoalMet(v)
	})
}

// UpdateGoalMet sets the "goal_met" field to the value that was provided on create.
func (u *HydrationLogUpsertBulk) UpdateGoalMet() *HydrationLogUpsertBulk {
	return u.Update(func(s *HydrationLogUpsert) {
		s.UpdateGoalMet()
	})
}

// Exec executes the query.
func (u *HydrationLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the HydrationLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for HydrationLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HydrationLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
