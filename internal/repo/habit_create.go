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
	"github.com/nutrivida/nutrivida_backend/internal/repo/habit"
)

// HabitCreate is the builder for creating a Habit entity.
type HabitCreate struct {
	config
	mutation *HabitMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *HabitCreate) SetCreatedAt(v time.Time) *HabitCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HabitCreate) SetNillableCreatedAt(v *time.Time) *HabitCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *HabitCreate) SetUpdatedAt(v time.Time) *HabitCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *HabitCreate) SetNillableUpdatedAt(v *time.Time) *HabitCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *HabitCreate) SetTitle(v string) *HabitCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *HabitCreate) SetDescription(v string) *HabitCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *HabitCreate) SetNillableDescription(v *string) *HabitCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *HabitCreate) SetPosition(v int) *HabitCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *HabitCreate) SetNillablePosition(v *int) *HabitCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *HabitCreate) SetIsActive(v bool) *HabitCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *HabitCreate) SetNillableIsActive(v *bool) *HabitCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HabitCreate) SetID(v uuid.UUID) *HabitCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *HabitCreate) SetNillableID(v *uuid.UUID) *HabitCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the HabitMutation object of the builder.
func (_c *HabitCreate) Mutation() *HabitMutation {
	return _c.mutation
}

// Save creates the Habit in the database.
func (_c *HabitCreate) Save(ctx context.Context) (*Habit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HabitCreate) SaveX(ctx context.Context) *Habit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HabitCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HabitCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HabitCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := habit.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := habit.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Position(); !ok {
		v := habit.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := habit.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := habit.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HabitCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Habit.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Habit.updated_at"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "Habit.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := habit.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Habit.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`repo: missing required field "Habit.position"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "Habit.is_active"`)}
	}
	return nil
}

func (_c *HabitCreate) sqlSave(ctx context.Context) (*Habit, error) {
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

func (_c *HabitCreate) createSpec() (*Habit, *sqlgraph.CreateSpec) {
	var (
		_node = &Habit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(habit.Table, sqlgraph.NewFieldSpec(habit.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(habit.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(habit.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(habit.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(habit.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(habit.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(habit.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Habit.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HabitUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *HabitCreate) OnConflict(opts ...sql.ConflictOption) *HabitUpsertOne {
	_c.conflict = opts
	return &HabitUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Habit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HabitCreate) OnConflictColumns(columns ...string) *HabitUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HabitUpsertOne{
		create: _c,
	}
}

type (
	// HabitUpsertOne is the builder for "upsert"-ing
	//  one Habit node.
	HabitUpsertOne struct {
		create *HabitCreate
	}

	// HabitUpsert is the "OnConflict" setter.
	HabitUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *HabitUpsert) SetUpdatedAt(v time.Time) *HabitUpsert {
	u.Set(habit.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *HabitUpsert) UpdateUpdatedAt() *HabitUpsert {
	u.SetExcluded(habit.FieldUpdatedAt)
	return u
}

// SetTitle sets the "title" field.
func (u *HabitUpsert) SetTitle(v string) *HabitUpsert {
	u.Set(habit.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *HabitUpsert) UpdateTitle() *HabitUpsert {
	u.SetExcluded(habit.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *HabitUpsert) SetDescription(v string) *HabitUpsert {
	u.Set(habit.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *HabitUpsert) UpdateDescription() *HabitUpsert {
	u.SetExcluded(habit.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *HabitUpsert) ClearDescription() *HabitUpsert {
	u.SetNull(habit.FieldDescription)
	return u
}

// SetPosition sets the "position" field.
func (u *HabitUpsert) SetPosition(v int) *HabitUpsert {
	u.Set(habit.FieldPosition, v)
	return u
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *HabitUpsert) UpdatePosition() *HabitUpsert {
	u.SetExcluded(habit.FieldPosition)
	return u
}

// AddPosition adds v to the "position" field.
func (u *HabitUpsert) AddPosition(v int) *HabitUpsert {
	u.Add(habit.FieldPosition, v)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *HabitUpsert) SetIsActive(v bool) *HabitUpsert {
	u.Set(habit.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *HabitUpsert) UpdateIsActive() *HabitUpsert {
	u.SetExcluded(habit.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Habit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(habit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HabitUpsertOne) UpdateNewValues() *HabitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(habit.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(habit.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Habit.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *HabitUpsertOne) Ignore() *HabitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HabitUpsertOne) DoNothing() *HabitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HabitCreate.OnConflict
// documentation for more info.
func (u *HabitUpsertOne) Update(set func(*HabitUpsert)) *HabitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HabitUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *HabitUpsertOne) SetUpdatedAt(v time.Time) *HabitUpsertOne {
	return u.Update(func(s *HabitUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *HabitUpsertOne) UpdateUpdatedAt() *HabitUpsertOne {
	return u.Update(func(s *HabitUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetTitle sets the "title" field.
func (u *HabitUpsertOne) SetTitle(v string) *HabitUpsertOne {
	return u.Update(func(s *HabitUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *HabitUpsertOne) UpdateTitle() *HabitUpsertOne {
	return u.Update(func(s *HabitUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *HabitUpsertOne) SetDescription(v string) *HabitUpsertOne {
	return u.Update(func(s *HabitUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *HabitUpsertOne) UpdateDescription() *HabitUpsertOne {
	return u.Update(func(s *HabitUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *HabitUpsertOne) ClearDescription() *HabitUpsertOne {
	return u.Update(func(s *HabitUpsert) {
		s.ClearDescription()
	})
}

// SetPosition sets the "position" field.
func (u *HabitUpsertOne) SetPosition(v int) *HabitUpsertOne {
	return u.Update(func(s *HabitUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *HabitUpsertOne) AddPosition(v int) *HabitUpsertOne {
	return u.Update(func(s *HabitUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *HabitUpsertOne) UpdatePosition() *HabitUpsertOne {
	return u.Update(func(s *HabitUpsert) {
		s.UpdatePosition()
	})
}

// SetIsActive sets the "is_active" field.
func (u *HabitUpsertOne) SetIsActive(v bool) *HabitUpsertOne {
	return u.Update(func(s *HabitUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *HabitUpsertOne) UpdateIsActive() *HabitUpsertOne {
	return u.Update(func(s *HabitUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *HabitUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for HabitCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HabitUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *HabitUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: HabitUpsertOne.ID is not supported by MySQL driver. Use HabitUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *HabitUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// HabitCreateBulk is the builder for creating many Habit entities in bulk.
type HabitCreateBulk struct {
	config
	err      error
	builders []*HabitCreate
	conflict []sql.ConflictOption
}

// Save creates the Habit entities in the database.
func (_c *HabitCreateBulk) Save(ctx context.Context) ([]*Habit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Habit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HabitMutation)
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
func (_c *HabitCreateBulk) SaveX(ctx context.Context) []*Habit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HabitCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HabitCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Habit.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HabitUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *HabitCreateBulk) OnConflict(opts ...sql.ConflictOption) *HabitUpsertBulk {
	_c.conflict = opts
	return &HabitUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Habit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HabitCreateBulk) OnConflictColumns(columns ...string) *HabitUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HabitUpsertBulk{
		create: _c,
	}
}

// HabitUpsertBulk is the builder for "upsert"-ing
// a bulk of Habit nodes.
type HabitUpsertBulk struct {
	create *HabitCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Habit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(habit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HabitUpsertBulk) UpdateNewValues() *HabitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(habit.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(habit.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Habit.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *HabitUpsertBulk) Ignore() *HabitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HabitUpsertBulk) DoNothing() *HabitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HabitCreateBulk.OnConflict
// documentation for more info.
func (u *HabitUpsertBulk) Update(set func(*HabitUpsert)) *HabitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HabitUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *HabitUpsertBulk) SetUpdatedAt(v time.Time) *HabitUpsertBulk {
	return u.Update(func(s *HabitUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *HabitUpsertBulk) UpdateUpdatedAt() *HabitUpsertBulk {
	return u.Update(func(s *HabitUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetTitle sets the "title" field.
func (u *HabitUpsertBulk) SetTitle(v string) *HabitUpsertBulk {
	return u.Update(func(s *HabitUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *HabitUpsertBulk) UpdateTitle() *HabitUpsertBulk {
	return u.Update(func(s *HabitUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *HabitUpsertBulk) SetDescription(v string) *HabitUpsertBulk {
	return u.Update(func(s *HabitUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *HabitUpsertBulk) UpdateDescription() *HabitUpsertBulk {
	return u.Update(func(s *HabitUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *HabitUpsertBulk) ClearDescription() *HabitUpsertBulk {
	return u.Update(func(s *HabitUpsert) {
		s.ClearDescription()
	})
}

// SetPosition sets the "position" field.
func (u *HabitUpsertBulk) SetPosition(v int) *HabitUpsertBulk {
	return u.Update(func(s *HabitUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *HabitUpsertBulk) AddPosition(v int) *HabitUpsertBulk {
	return u.Update(func(s *HabitUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *HabitUpsertBulk) UpdatePosition() *HabitUpsertBulk {
	return u.Update(func(s *HabitUpsert) {
		s.UpdatePosition()
	})
}

// SetIsActive sets the "is_active" field.
func (u *HabitUpsertBulk) SetIsActive(v bool) *HabitUpsertBulk {
	return u.Update(func(s *HabitUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *HabitUpsertBulk) UpdateIsActive() *HabitUpsertBulk {
	return u.Update(func(s *HabitUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *HabitUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the HabitCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for HabitCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HabitUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
