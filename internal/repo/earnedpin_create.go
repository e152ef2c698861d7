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
	"github.com/nutrivida/nutrivida_backend/internal/repo/earnedpin"
)

// EarnedPinCreate is the builder for creating a EarnedPin entity.
type EarnedPinCreate struct {
	config
	mutation *EarnedPinMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *EarnedPinCreate) SetCreatedAt(v time.Time) *EarnedPinCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EarnedPinCreate) SetNillableCreatedAt(v *time.Time) *EarnedPinCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *EarnedPinCreate) SetPatientID(v uuid.UUID) *EarnedPinCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetTierName sets the "tier_name" field.
func (_c *EarnedPinCreate) SetTierName(v string) *EarnedPinCreate {
	_c.mutation.SetTierName(v)
	return _c
}

// SetTierType sets the "tier_type" field.
func (_c *EarnedPinCreate) SetTierType(v earnedpin.TierType) *EarnedPinCreate {
	_c.mutation.SetTierType(v)
	return _c
}

// SetID sets the "id" field.
func (_c *EarnedPinCreate) SetID(v uuid.UUID) *EarnedPinCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EarnedPinCreate) SetNillableID(v *uuid.UUID) *EarnedPinCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the EarnedPinMutation object of the builder.
func (_c *EarnedPinCreate) Mutation() *EarnedPinMutation {
	return _c.mutation
}

// Save creates the EarnedPin in the database.
func (_c *EarnedPinCreate) Save(ctx context.Context) (*EarnedPin, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EarnedPinCreate) SaveX(ctx context.Context) *EarnedPin {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EarnedPinCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EarnedPinCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EarnedPinCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := earnedpin.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := earnedpin.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EarnedPinCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "EarnedPin.created_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "EarnedPin.patient_id"`)}
	}
	if _, ok := _c.mutation.TierName(); !ok {
		return &ValidationError{Name: "tier_name", err: errors.New(`repo: missing required field "EarnedPin.tier_name"`)}
	}
	if v, ok := _c.mutation.TierName(); ok {
		if err := earnedpin.TierNameValidator(v); err != nil {
			return &ValidationError{Name: "tier_name", err: fmt.Errorf(`repo: validator failed for field "EarnedPin.tier_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TierType(); !ok {
		return &ValidationError{Name: "tier_type", err: errors.New(`repo: missing required field "EarnedPin.tier_type"`)}
	}
	if v, ok := _c.mutation.TierType(); ok {
		if err := earnedpin.TierTypeValidator(v); err != nil {
			return &ValidationError{Name: "tier_type", err: fmt.Errorf(`repo: validator failed for field "EarnedPin.tier_type": %w`, err)}
		}
	}
	return nil
}

func (_c *EarnedPinCreate) sqlSave(ctx context.Context) (*EarnedPin, error) {
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

func (_c *EarnedPinCreate) createSpec() (*EarnedPin, *sqlgraph.CreateSpec) {
	var (
		_node = &EarnedPin{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(earnedpin.Table, sqlgraph.NewFieldSpec(earnedpin.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(earnedpin.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(earnedpin.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.TierName(); ok {
		_spec.SetField(earnedpin.FieldTierName, field.TypeString, value)
		_node.TierName = value
	}
	if value, ok := _c.mutation.TierType(); ok {
		_spec.SetField(earnedpin.FieldTierType, field.TypeEnum, value)
		_node.TierType = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EarnedPin.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EarnedPinUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *EarnedPinCreate) OnConflict(opts ...sql.ConflictOption) *EarnedPinUpsertOne {
	_c.conflict = opts
	return &EarnedPinUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EarnedPin.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EarnedPinCreate) OnConflictColumns(columns ...string) *EarnedPinUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EarnedPinUpsertOne{
		create: _c,
	}
}

type (
	// EarnedPinUpsertOne is the builder for "upsert"-ing
	//  one EarnedPin node.
	EarnedPinUpsertOne struct {
		create *EarnedPinCreate
	}

	// EarnedPinUpsert is the "OnConflict" setter.
	EarnedPinUpsert struct {
		*sql.UpdateSet
	}
)

// SetPatientID sets the "patient_id" field.
func (u *EarnedPinUpsert) SetPatientID(v uuid.UUID) *EarnedPinUpsert {
	u.Set(earnedpin.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *EarnedPinUpsert) UpdatePatientID() *EarnedPinUpsert {
	u.SetExcluded(earnedpin.FieldPatientID)
	return u
}

// SetTierName sets the "tier_name" field.
func (u *EarnedPinUpsert) SetTierName(v string) *EarnedPinUpsert {
	u.Set(earnedpin.FieldTierName, v)
	return u
}

// UpdateTierName sets the "tier_name" field to the value that was provided on create.
func (u *EarnedPinUpsert) UpdateTierName() *EarnedPinUpsert {
	u.SetExcluded(earnedpin.FieldTierName)
	return u
}

// SetTierType sets the "tier_type" field.
func (u *EarnedPinUpsert) SetTierType(v earnedpin.TierType) *EarnedPinUpsert {
	u.Set(earnedpin.FieldTierType, v)
	return u
}

// UpdateTierType sets the "tier_type" field to the value that was provided on create.
func (u *EarnedPinUpsert) UpdateTierType() *EarnedPinUpsert {
	u.SetExcluded(earnedpin.FieldTierType)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EarnedPin.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(earnedpin.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EarnedPinUpsertOne) UpdateNewValues() *EarnedPinUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(earnedpin.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(earnedpin.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EarnedPin.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EarnedPinUpsertOne) Ignore() *EarnedPinUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EarnedPinUpsertOne) DoNothing() *EarnedPinUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EarnedPinCreate.OnConflict
// documentation for more info.
func (u *EarnedPinUpsertOne) Update(set func(*EarnedPinUpsert)) *EarnedPinUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EarnedPinUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *EarnedPinUpsertOne) SetPatientID(v uuid.UUID) *EarnedPinUpsertOne {
	return u.Update(func(s *EarnedPinUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *EarnedPinUpsertOne) UpdatePatientID() *EarnedPinUpsertOne {
	return u.Update(func(s *EarnedPinUpsert) {
		s.UpdatePatientID()
	})
}

// SetTierName sets the "tier_name" field.
func (u *EarnedPinUpsertOne) SetTierName(v string) *EarnedPinUpsertOne {
	return u.Update(func(s *EarnedPinUpsert) {
		s.SetTierName(v)
	})
}

// UpdateTierName sets the "tier_name" field to the value that was provided on create.
func (u *EarnedPinUpsertOne) UpdateTierName() *EarnedPinUpsertOne {
	return u.Update(func(s *EarnedPinUpsert) {
		s.UpdateTierName()
	})
}

// SetTierType sets the "tier_type" field.
func (u *EarnedPinUpsertOne) SetTierType(v earnedpin.TierType) *EarnedPinUpsertOne {
	return u.Update(func(s *EarnedPinUpsert) {
		s.SetTierType(v)
	})
}

// UpdateTierType sets the "tier_type" field to the value that was provided on create.
func (u *EarnedPinUpsertOne) UpdateTierType() *EarnedPinUpsertOne {
	return u.Update(func(s *EarnedPinUpsert) {
		s.UpdateTierType()
	})
}

// Exec executes the query.
func (u *EarnedPinUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for EarnedPinCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EarnedPinUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EarnedPinUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: EarnedPinUpsertOne.ID is not supported by MySQL driver. Use EarnedPinUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EarnedPinUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EarnedPinCreateBulk is the builder for creating many EarnedPin entities in bulk.
type EarnedPinCreateBulk struct {
	config
	err      error
	builders []*EarnedPinCreate
	conflict []sql.ConflictOption
}

// Save creates the EarnedPin entities in the database.
func (_c *EarnedPinCreateBulk) Save(ctx context.Context) ([]*EarnedPin, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EarnedPin, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EarnedPinMutation)
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
func (_c *EarnedPinCreateBulk) SaveX(ctx context.Context) []*EarnedPin {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EarnedPinCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EarnedPinCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EarnedPin.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EarnedPinUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *EarnedPinCreateBulk) OnConflict(opts ...sql.ConflictOption) *EarnedPinUpsertBulk {
	_c.conflict = opts
	return &EarnedPinUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EarnedPin.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EarnedPinCreateBulk) OnConflictColumns(columns ...string) *EarnedPinUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EarnedPinUpsertBulk{
		create: _c,
	}
}

// EarnedPinUpsertBulk is the builder for "upsert"-ing
// a bulk of EarnedPin nodes.
type EarnedPinUpsertBulk struct {
	create *EarnedPinCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EarnedPin.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(earnedpin.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EarnedPinUpsertBulk) UpdateNewValues() *EarnedPinUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(earnedpin.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(earnedpin.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EarnedPin.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EarnedPinUpsertBulk) Ignore() *EarnedPinUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EarnedPinUpsertBulk) DoNothing() *EarnedPinUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EarnedPinCreateBulk.OnConflict
// documentation for more info.
func (u *EarnedPinUpsertBulk) Update(set func(*EarnedPinUpsert)) *EarnedPinUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EarnedPinUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *EarnedPinUpsertBulk) SetPatientID(v uuid.UUID) *EarnedPinUpsertBulk {
	return u.Update(func(s *EarnedPinUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *EarnedPinUpsertBulk) UpdatePatientID() *EarnedPinUpsertBulk {
	return u.Update(func(s *EarnedPinUpsert) {
		s.UpdatePatientID()
	})
}

// SetTierName sets the "tier_name" field.
func (u *EarnedPinUpsertBulk) SetTierName(v string) *EarnedPinUpsertBulk {
	return u.Update(func(s *EarnedPinUpsert) {
		s.SetTierName(v)
	})
}

// UpdateTierName sets the "tier_name" field to the value that was provided on create.
func (u *EarnedPinUpsertBulk) UpdateTierName() *EarnedPinUpsertBulk {
	return u.Update(func(s *EarnedPinUpsert) {
		s.UpdateTierName()
	})
}

// SetTierType sets the "tier_type" field.
func (u *EarnedPinUpsertBulk) SetTierType(v earnedpin.TierType) *EarnedPinUpsertBulk {
	return u.Update(func(s *EarnedPinUpsert) {
		s.SetTierType(v)
	})
}

// UpdateTierType sets the "tier_type" field to the value that was provided on create.
func (u *EarnedPinUpsertBulk) UpdateTierType() *EarnedPinUpsertBulk {
	return u.Update(func(s *EarnedPinUpsert) {
		s.UpdateTierType()
	})
}

// Exec executes the query.
func (u *EarnedPinUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the EarnedPinCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for EarnedPinCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EarnedPinUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
