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
	"github.com/nutrivida/nutrivida_backend/internal/repo/availabilitywindow"
)

// AvailabilityWindowCreate is the builder for creating a AvailabilityWindow entity.
type AvailabilityWindowCreate struct {
	config
	mutation *AvailabilityWindowMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *AvailabilityWindowCreate) SetCreatedAt(v time.Time) *AvailabilityWindowCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AvailabilityWindowCreate) SetNillableCreatedAt(v *time.Time) *AvailabilityWindowCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AvailabilityWindowCreate) SetUpdatedAt(v time.Time) *AvailabilityWindowCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AvailabilityWindowCreate) SetNillableUpdatedAt(v *time.Time) *AvailabilityWindowCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDate sets the "date" field.
func (_c *AvailabilityWindowCreate) SetDate(v string) *AvailabilityWindowCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetTimes sets the "times" field.
func (_c *AvailabilityWindowCreate) SetTimes(v []string) *AvailabilityWindowCreate {
	_c.mutation.SetTimes(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AvailabilityWindowCreate) SetID(v uuid.UUID) *AvailabilityWindowCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AvailabilityWindowCreate) SetNillableID(v *uuid.UUID) *AvailabilityWindowCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AvailabilityWindowMutation object of the builder.
func (_c *AvailabilityWindowCreate) Mutation() *AvailabilityWindowMutation {
	return _c.mutation
}

// Save creates the AvailabilityWindow in the database.
func (_c *AvailabilityWindowCreate) Save(ctx context.Context) (*AvailabilityWindow, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AvailabilityWindowCreate) SaveX(ctx context.Context) *AvailabilityWindow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AvailabilityWindowCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AvailabilityWindowCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AvailabilityWindowCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := availabilitywindow.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := availabilitywindow.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := availabilitywindow.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AvailabilityWindowCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "AvailabilityWindow.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "AvailabilityWindow.updated_at"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`repo: missing required field "AvailabilityWindow.date"`)}
	}
	if v, ok := _c.mutation.Date(); ok {
		if err := availabilitywindow.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`repo: validator failed for field "AvailabilityWindow.date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Times(); !ok {
		return &ValidationError{Name: "times", err: errors.New(`repo: missing required field "AvailabilityWindow.times"`)}
	}
	return nil
}

func (_c *AvailabilityWindowCreate) sqlSave(ctx context.Context) (*AvailabilityWindow, error) {
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

func (_c *AvailabilityWindowCreate) createSpec() (*AvailabilityWindow, *sqlgraph.CreateSpec) {
	var (
		_node = &AvailabilityWindow{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(availabilitywindow.Table, sqlgraph.NewFieldSpec(availabilitywindow.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(availabilitywindow.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(availabilitywindow.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(availabilitywindow.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Times(); ok {
		_spec.SetField(availabilitywindow.FieldTimes, field.TypeJSON, value)
		_node.Times = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AvailabilityWindow.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AvailabilityWindowUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AvailabilityWindowCreate) OnConflict(opts ...sql.ConflictOption) *AvailabilityWindowUpsertOne {
	_c.conflict = opts
	return &AvailabilityWindowUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AvailabilityWindow.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AvailabilityWindowCreate) OnConflictColumns(columns ...string) *AvailabilityWindowUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AvailabilityWindowUpsertOne{
		create: _c,
	}
}

type (
	// AvailabilityWindowUpsertOne is the builder for "upsert"-ing
	//  one AvailabilityWindow node.
	AvailabilityWindowUpsertOne struct {
		create *AvailabilityWindowCreate
	}

	// AvailabilityWindowUpsert is the "OnConflict" setter.
	AvailabilityWindowUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *AvailabilityWindowUpsert) SetUpdatedAt(v time.Time) *AvailabilityWindowUpsert {
	u.Set(availabilitywindow.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AvailabilityWindowUpsert) UpdateUpdatedAt() *AvailabilityWindowUpsert {
	u.SetExcluded(availabilitywindow.FieldUpdatedAt)
	return u
}

// SetDate sets the "date" field.
func (u *AvailabilityWindowUpsert) SetDate(v string) *AvailabilityWindowUpsert {
	u.Set(availabilitywindow.FieldDate, v)
	return u
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *AvailabilityWindowUpsert) UpdateDate() *AvailabilityWindowUpsert {
	u.SetExcluded(availabilitywindow.FieldDate)
	return u
}

// SetTimes sets the "times" field.
func (u *AvailabilityWindowUpsert) SetTimes(v []string) *AvailabilityWindowUpsert {
	u.Set(availabilitywindow.FieldTimes, v)
	return u
}

// UpdateTimes sets the "times" field to the value that was provided on create.
func (u *AvailabilityWindowUpsert) UpdateTimes() *AvailabilityWindowUpsert {
	u.SetExcluded(availabilitywindow.FieldTimes)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AvailabilityWindow.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(availabilitywindow.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AvailabilityWindowUpsertOne) UpdateNewValues() *AvailabilityWindowUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(availabilitywindow.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(availabilitywindow.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AvailabilityWindow.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AvailabilityWindowUpsertOne) Ignore() *AvailabilityWindowUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AvailabilityWindowUpsertOne) DoNothing() *AvailabilityWindowUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AvailabilityWindowCreate.OnConflict
// documentation for more info.
func (u *AvailabilityWindowUpsertOne) Update(set func(*AvailabilityWindowUpsert)) *AvailabilityWindowUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AvailabilityWindowUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AvailabilityWindowUpsertOne) SetUpdatedAt(v time.Time) *AvailabilityWindowUpsertOne {
	return u.Update(func(s *AvailabilityWindowUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AvailabilityWindowUpsertOne) UpdateUpdatedAt() *AvailabilityWindowUpsertOne {
	return u.Update(func(s *AvailabilityWindowUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDate sets the "date" field.
func (u *AvailabilityWindowUpsertOne) SetDate(v string) *AvailabilityWindowUpsertOne {
	return u.Update(func(s *AvailabilityWindowUpsert) {
		s.SetDate(v)
	})
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *AvailabilityWindowUpsertOne) UpdateDate() *AvailabilityWindowUpsertOne {
	return u.Update(func(s *AvailabilityWindowUpsert) {
		s.UpdateDate()
	})
}

// SetTimes sets the "times" field.
func (u *AvailabilityWindowUpsertOne) SetTimes(v []string) *AvailabilityWindowUpsertOne {
	return u.Update(func(s *AvailabilityWindowUpsert) {
		s.SetTimes(v)
	})
}

// UpdateTimes sets the "times" field to the value that was provided on create.
func (u *AvailabilityWindowUpsertOne) UpdateTimes() *AvailabilityWindowUpsertOne {
	return u.Update(func(s *AvailabilityWindowUpsert) {
		s.UpdateTimes()
	})
}

// Exec executes the query.
func (u *AvailabilityWindowUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AvailabilityWindowCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AvailabilityWindowUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AvailabilityWindowUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: AvailabilityWindowUpsertOne.ID is not supported by MySQL driver. Use AvailabilityWindowUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AvailabilityWindowUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AvailabilityWindowCreateBulk is the builder for creating many AvailabilityWindow entities in bulk.
type AvailabilityWindowCreateBulk struct {
	config
	err      error
	builders []*AvailabilityWindowCreate
	conflict []sql.ConflictOption
}

// Save creates the AvailabilityWindow entities in the database.
func (_c *AvailabilityWindowCreateBulk) Save(ctx context.Context) ([]*AvailabilityWindow, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AvailabilityWindow, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AvailabilityWindowMutation)
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
func (_c *AvailabilityWindowCreateBulk) SaveX(ctx context.Context) []*AvailabilityWindow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AvailabilityWindowCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AvailabilityWindowCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AvailabilityWindow.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AvailabilityWindowUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AvailabilityWindowCreateBulk) OnConflict(opts ...sql.ConflictOption) *AvailabilityWindowUpsertBulk {
	_c.conflict = opts
	return &AvailabilityWindowUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AvailabilityWindow.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AvailabilityWindowCreateBulk) OnConflictColumns(columns ...string) *AvailabilityWindowUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AvailabilityWindowUpsertBulk{
		create: _c,
	}
}

// AvailabilityWindowUpsertBulk is the builder for "upsert"-ing
// a bulk of AvailabilityWindow nodes.
type AvailabilityWindowUpsertBulk struct {
	create *AvailabilityWindowCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AvailabilityWindow.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(availabilitywindow.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AvailabilityWindowUpsertBulk) UpdateNewValues() *AvailabilityWindowUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(availabilitywindow.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(availabilitywindow.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AvailabilityWindow.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AvailabilityWindowUpsertBulk) Ignore() *AvailabilityWindowUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AvailabilityWindowUpsertBulk) DoNothing() *AvailabilityWindowUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AvailabilityWindowCreateBulk.OnConflict
// documentation for more info.
func (u *AvailabilityWindowUpsertBulk) Update(set func(*AvailabilityWindowUpsert)) *AvailabilityWindowUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AvailabilityWindowUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AvailabilityWindowUpsertBulk) SetUpdatedAt(v time.Time) *AvailabilityWindowUpsertBulk {
	return u.Update(func(s *AvailabilityWindowUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AvailabilityWindowUpsertBulk) UpdateUpdatedAt() *AvailabilityWindowUpsertBulk {
	return u.Update(func(s *AvailabilityWindowUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDate sets the "date" field.
func (u *AvailabilityWindowUpsertBulk) SetDate(v string) *AvailabilityWindowUpsertBulk {
	return u.Update(func(s *AvailabilityWindowUpsert) {
		s.SetDate(v)
	})
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *AvailabilityWindowUpsertBulk) UpdateDate() *AvailabilityWindowUpsertBulk {
	return u.Update(func(s *AvailabilityWindowUpsert) {
		s.UpdateDate()
	})
}

// SetTimes sets the "times" field.
func (u *AvailabilityWindowUpsertBulk) SetTimes(v []string) *AvailabilityWindowUpsertBulk {
	return u.Update(func(s *AvailabilityWindowUpsert) {
		s.SetTimes(v)
	})
}

// UpdateTimes sets the "times" field to the value that was provided on create.
func (u *AvailabilityWindowUpsertBulk) UpdateTimes() *AvailabilityWindowUpsertBulk {
	return u.Update(func(s *AvailabilityWindowUpsert) {
		s.UpdateTimes()
	})
}

// Exec executes the query.
func (u *AvailabilityWindowUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the AvailabilityWindowCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AvailabilityWindowCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AvailabilityWindowUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
