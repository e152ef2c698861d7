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
	"github.com/nutrivida/nutrivida_backend/internal/repo/habitcheck"
)

// HabitCheckCreate is the builder for creating a HabitCheck entity.
type HabitCheckCreate struct {
	config
	mutation *HabitCheckMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *HabitCheckCreate) SetCreatedAt(v time.Time) *HabitCheckCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HabitCheckCreate) SetNillableCreatedAt(v *time.Time) *HabitCheckCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *HabitCheckCreate) SetPatientID(v uuid.UUID) *HabitCheckCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetHabitID sets the "habit_id" field.
func (_c *HabitCheckCreate) SetHabitID(v uuid.UUID) *HabitCheckCreate {
	_c.mutation.SetHabitID(v)
	return _c
}

// SetDay sets the "day" field.
func (_c *HabitCheckCreate) SetDay(v string) *HabitCheckCreate {
	_c.mutation.SetDay(v)
	return _c
}

// SetID sets the "id" field.
func (_c *HabitCheckCreate) SetID(v uuid.UUID) *HabitCheckCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *HabitCheckCreate) SetNillableID(v *uuid.UUID) *HabitCheckCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the HabitCheckMutation object of the builder.
func (_c *HabitCheckCreate) Mutation() *HabitCheckMutation {
	return _c.mutation
}

// Save creates the HabitCheck in the database.
func (_c *HabitCheckCreate) Save(ctx context.Context) (*HabitCheck, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HabitCheckCreate) SaveX(ctx context.Context) *HabitCheck {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HabitCheckCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HabitCheckCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HabitCheckCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := habitcheck.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := habitcheck.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HabitCheckCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "HabitCheck.created_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "HabitCheck.patient_id"`)}
	}
	if _, ok := _c.mutation.HabitID(); !ok {
		return &ValidationError{Name: "habit_id", err: errors.New(`repo: missing required field "HabitCheck.habit_id"`)}
	}
	if _, ok := _c.mutation.Day(); !ok {
		return &ValidationError{Name: "day", err: errors.New(`repo: missing required field "HabitCheck.day"`)}
	}
	if v, ok := _c.mutation.Day(); ok {
		if err := habitcheck.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`repo: validator failed for field "HabitCheck.day": %w`, err)}
		}
	}
	return nil
}

func (_c *HabitCheckCreate) sqlSave(ctx context.Context) (*HabitCheck, error) {
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

func (_c *HabitCheckCreate) createSpec() (*HabitCheck, *sqlgraph.CreateSpec) {
	var (
		_node = &HabitCheck{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(habitcheck.Table, sqlgraph.NewFieldSpec(habitcheck.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(habitcheck.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(habitcheck.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.HabitID(); ok {
		_spec.SetField(habitcheck.FieldHabitID, field.TypeUUID, value)
		_node.HabitID = value
	}
	if value, ok := _c.mutation.Day(); ok {
		_spec.SetField(habitcheck.FieldDay, field.TypeString, value)
		_node.Day = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HabitCheck.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HabitCheckUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *HabitCheckCreate) OnConflict(opts ...sql.ConflictOption) *HabitCheckUpsertOne {
	_c.conflict = opts
	return &HabitCheckUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HabitCheck.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HabitCheckCreate) OnConflictColumns(columns ...string) *HabitCheckUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HabitCheckUpsertOne{
		create: _c,
	}
}

type (
	// HabitCheckUpsertOne is the builder for "upsert"-ing
	//  one HabitCheck node.
	HabitCheckUpsertOne struct {
		create *HabitCheckCreate
	}

	// HabitCheckUpsert is the "OnConflict" setter.
	HabitCheckUpsert struct {
		*sql.UpdateSet
	}
)

// SetPatientID sets the "patient_id" field.
func (u *HabitCheckUpsert) SetPatientID(v uuid.UUID) *HabitCheckUpsert {
	u.Set(habitcheck.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *HabitCheckUpsert) UpdatePatientID() *HabitCheckUpsert {
	u.SetExcluded(habitcheck.FieldPatientID)
	return u
}

// SetHabitID sets the "habit_id" field.
func (u *HabitCheckUpsert) SetHabitID(v uuid.UUID) *HabitCheckUpsert {
	u.Set(habitcheck.FieldHabitID, v)
	return u
}

// UpdateHabitID sets the "habit_id" field to the value that was provided on create.
func (u *HabitCheckUpsert) UpdateHabitID() *HabitCheckUpsert {
	u.SetExcluded(habitcheck.FieldHabitID)
	return u
}

// SetDay sets the "day" field.
func (u *HabitCheckUpsert) SetDay(v string) *HabitCheckUpsert {
	u.Set(habitcheck.FieldDay, v)
	return u
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *HabitCheckUpsert) UpdateDay() *HabitCheckUpsert {
	u.SetExcluded(habitcheck.FieldDay)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.HabitCheck.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(habitcheck.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HabitCheckUpsertOne) UpdateNewValues() *HabitCheckUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(habitcheck.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(habitcheck.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HabitCheck.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *HabitCheckUpsertOne) Ignore() *HabitCheckUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HabitCheckUpsertOne) DoNothing() *HabitCheckUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HabitCheckCreate.OnConflict
// documentation for more info.
func (u *HabitCheckUpsertOne) Update(set func(*HabitCheckUpsert)) *HabitCheckUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HabitCheckUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *HabitCheckUpsertOne) SetPatientID(v uuid.UUID) *HabitCheckUpsertOne {
	return u.Update(func(s *HabitCheckUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *HabitCheckUpsertOne) UpdatePatientID() *HabitCheckUpsertOne {
	return u.Update(func(s *HabitCheckUpsert) {
		s.UpdatePatientID()
	})
}

// SetHabitID sets the "habit_id" field.
func (u *HabitCheckUpsertOne) SetHabitID(v uuid.UUID) *HabitCheckUpsertOne {
	return u.Update(func(s *HabitCheckUpsert) {
		s.SetHabitID(v)
	})
}

// UpdateHabitID sets the "habit_id" field to the value that was provided on create.
func (u *HabitCheckUpsertOne) UpdateHabitID() *HabitCheckUpsertOne {
	return u.Update(func(s *HabitCheckUpsert) {
		s.UpdateHabitID()
	})
}

// SetDay sets the "day" field.
func (u *HabitCheckUpsertOne) SetDay(v string) *HabitCheckUpsertOne {
	return u.Update(func(s *HabitCheckUpsert) {
		s.SetDay(v)
	})
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *HabitCheckUpsertOne) UpdateDay() *HabitCheckUpsertOne {
	return u.Update(func(s *HabitCheckUpsert) {
		s.UpdateDay()
	})
}

// Exec executes the query.
func (u *HabitCheckUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for HabitCheckCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HabitCheckUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *HabitCheckUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: HabitCheckUpsertOne.ID is not supported by MySQL driver. Use HabitCheckUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *HabitCheckUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// HabitCheckCreateBulk is the builder for creating many HabitCheck entities in bulk.
type HabitCheckCreateBulk struct {
	config
	err      error
	builders []*HabitCheckCreate
	conflict []sql.ConflictOption
}

// Save creates the HabitCheck entities in the database.
func (_c *HabitCheckCreateBulk) Save(ctx context.Context) ([]*HabitCheck, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HabitCheck, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HabitCheckMutation)
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
func (_c *HabitCheckCreateBulk) SaveX(ctx context.Context) []*HabitCheck {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HabitCheckCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HabitCheckCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HabitCheck.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HabitCheckUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *HabitCheckCreateBulk) OnConflict(opts ...sql.ConflictOption) *HabitCheckUpsertBulk {
	_c.conflict = opts
	return &HabitCheckUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HabitCheck.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HabitCheckCreateBulk) OnConflictColumns(columns ...string) *HabitCheckUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HabitCheckUpsertBulk{
		create: _c,
	}
}

// HabitCheckUpsertBulk is the builder for "upsert"-ing
// a bulk of HabitCheck nodes.
type HabitCheckUpsertBulk struct {
	create *HabitCheckCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.HabitCheck.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(habitcheck.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HabitCheckUpsertBulk) UpdateNewValues() *HabitCheckUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(habitcheck.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(habitcheck.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HabitCheck.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *HabitCheckUpsertBulk) Ignore() *HabitCheckUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HabitCheckUpsertBulk) DoNothing() *HabitCheckUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HabitCheckCreateBulk.OnConflict
// documentation for more info.
func (u *HabitCheckUpsertBulk) Update(set func(*HabitCheckUpsert)) *HabitCheckUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HabitCheckUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *HabitCheckUpsertBulk) SetPatientID(v uuid.UUID) *HabitCheckUpsertBulk {
	return u.Update(func(s *HabitCheckUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *HabitCheckUpsertBulk) UpdatePatientID() *HabitCheckUpsertBulk {
	return u.Update(func(s *HabitCheckUpsert) {
		s.UpdatePatientID()
	})
}

// SetHabitID sets the "habit_id" field.
func (u *HabitCheckUpsertBulk) SetHabitID(v uuid.UUID) *HabitCheckUpsertBulk {
	return u.Update(func(s *HabitCheckUpsert) {
		s.SetHabitID(v)
	})
}

// UpdateHabitID sets the "habit_id" field to the value that was provided on create.
func (u *HabitCheckUpsertBulk) UpdateHabitID() *HabitCheckUpsertBulk {
	return u.Update(func(s *HabitCheckUpsert) {
		s.UpdateHabitID()
	})
}

// SetDay sets the "day" field.
func (u *HabitCheckUpsertBulk) SetDay(v string) *HabitCheckUpsertBulk {
	return u.Update(func(s *HabitCheckUpsert) {
		s.SetDay(v)
	})
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *HabitCheckUpsertBulk) UpdateDay() *HabitCheckUpsertBulk {
	return u.Update(func(s *HabitCheckUpsert) {
		s.UpdateDay()
	})
}

// Exec executes the query.
func (u *HabitCheckUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the HabitCheckCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for HabitCheckCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HabitCheckUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
