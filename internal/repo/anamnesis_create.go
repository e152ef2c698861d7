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
	"github.com/nutrivida/nutrivida_backend/internal/repo/anamnesis"
)

// AnamnesisCreate is the builder for creating a Anamnesis entity.
type AnamnesisCreate struct {
	config
	mutation *AnamnesisMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnamnesisCreate) SetCreatedAt(v time.Time) *AnamnesisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnamnesisCreate) SetNillableCreatedAt(v *time.Time) *AnamnesisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AnamnesisCreate) SetUpdatedAt(v time.Time) *AnamnesisCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AnamnesisCreate) SetNillableUpdatedAt(v *time.Time) *AnamnesisCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *AnamnesisCreate) SetPatientID(v uuid.UUID) *AnamnesisCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *AnamnesisCreate) SetPayload(v string) *AnamnesisCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetSubmittedAt sets the "submitted_at" field.
func (_c *AnamnesisCreate) SetSubmittedAt(v time.Time) *AnamnesisCreate {
	_c.mutation.SetSubmittedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AnamnesisCreate) SetID(v uuid.UUID) *AnamnesisCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AnamnesisCreate) SetNillableID(v *uuid.UUID) *AnamnesisCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AnamnesisMutation object of the builder.
func (_c *AnamnesisCreate) Mutation() *AnamnesisMutation {
	return _c.mutation
}

// Save creates the Anamnesis in the database.
func (_c *AnamnesisCreate) Save(ctx context.Context) (*Anamnesis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnamnesisCreate) SaveX(ctx context.Context) *Anamnesis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnamnesisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnamnesisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnamnesisCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := anamnesis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := anamnesis.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := anamnesis.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnamnesisCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Anamnesis.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Anamnesis.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Anamnesis.patient_id"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`repo: missing required field "Anamnesis.payload"`)}
	}
	if _, ok := _c.mutation.SubmittedAt(); !ok {
		return &ValidationError{Name: "submitted_at", err: errors.New(`repo: missing required field "Anamnesis.submitted_at"`)}
	}
	return nil
}

func (_c *AnamnesisCreate) sqlSave(ctx context.Context) (*Anamnesis, error) {
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

func (_c *AnamnesisCreate) createSpec() (*Anamnesis, *sqlgraph.CreateSpec) {
	var (
		_node = &Anamnesis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(anamnesis.Table, sqlgraph.NewFieldSpec(anamnesis.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(anamnesis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(anamnesis.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(anamnesis.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(anamnesis.FieldPayload, field.TypeString, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.SubmittedAt(); ok {
		_spec.SetField(anamnesis.FieldSubmittedAt, field.TypeTime, value)
		_node.SubmittedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Anamnesis.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnamnesisUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AnamnesisCreate) OnConflict(opts ...sql.ConflictOption) *AnamnesisUpsertOne {
	_c.conflict = opts
	return &AnamnesisUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Anamnesis.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnamnesisCreate) OnConflictColumns(columns ...string) *AnamnesisUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnamnesisUpsertOne{
		create: _c,
	}
}

type (
	// AnamnesisUpsertOne is the builder for "upsert"-ing
	//  one Anamnesis node.
	AnamnesisUpsertOne struct {
		create *AnamnesisCreate
	}

	// AnamnesisUpsert is the "OnConflict" setter.
	AnamnesisUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *AnamnesisUpsert) SetUpdatedAt(v time.Time) *AnamnesisUpsert {
	u.Set(anamnesis.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AnamnesisUpsert) UpdateUpdatedAt() *AnamnesisUpsert {
	u.SetExcluded(anamnesis.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *AnamnesisUpsert) SetPatientID(v uuid.UUID) *AnamnesisUpsert {
	u.Set(anamnesis.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *AnamnesisUpsert) UpdatePatientID() *AnamnesisUpsert {
	u.SetExcluded(anamnesis.FieldPatientID)
	return u
}

// SetPayload sets the "payload" field.
func (u *AnamnesisUpsert) SetPayload(v string) *AnamnesisUpsert {
	u.Set(anamnesis.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *AnamnesisUpsert) UpdatePayload() *AnamnesisUpsert {
	u.SetExcluded(anamnesis.FieldPayload)
	return u
}

// SetSubmittedAt sets the "submitted_at" field.
func (u *AnamnesisUpsert) SetSubmittedAt(v time.Time) *AnamnesisUpsert {
	u.Set(anamnesis.FieldSubmittedAt, v)
	return u
}

// UpdateSubmittedAt sets the "submitted_at" field to the value that was provided on create.
func (u *AnamnesisUpsert) UpdateSubmittedAt() *AnamnesisUpsert {
	u.SetExcluded(anamnesis.FieldSubmittedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Anamnesis.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(anamnesis.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AnamnesisUpsertOne) UpdateNewValues() *AnamnesisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(anamnesis.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(anamnesis.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Anamnesis.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AnamnesisUpsertOne) Ignore() *AnamnesisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnamnesisUpsertOne) DoNothing() *AnamnesisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnamnesisCreate.OnConflict
// documentation for more info.
func (u *AnamnesisUpsertOne) Update(set func(*AnamnesisUpsert)) *AnamnesisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnamnesisUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AnamnesisUpsertOne) SetUpdatedAt(v time.Time) *AnamnesisUpsertOne {
	return u.Update(func(s *AnamnesisUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AnamnesisUpsertOne) UpdateUpdatedAt() *AnamnesisUpsertOne {
	return u.Update(func(s *AnamnesisUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *AnamnesisUpsertOne) SetPatientID(v uuid.UUID) *AnamnesisUpsertOne {
	return u.Update(func(s *AnamnesisUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *AnamnesisUpsertOne) UpdatePatientID() *AnamnesisUpsertOne {
	return u.Update(func(s *AnamnesisUpsert) {
		s.UpdatePatientID()
	})
}

// SetPayload sets the "payload" field.
func (u *AnamnesisUpsertOne) SetPayload(v string) *AnamnesisUpsertOne {
	return u.Update(func(s *AnamnesisUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *AnamnesisUpsertOne) UpdatePayload() *AnamnesisUpsertOne {
	return u.Update(func(s *AnamnesisUpsert) {
		s.UpdatePayload()
	})
}

// SetSubmittedAt sets the "submitted_at" field.
func (u *AnamnesisUpsertOne) SetSubmittedAt(v time.Time) *AnamnesisUpsertOne {
	return u.Update(func(s *AnamnesisUpsert) {
		s.SetSubmittedAt(v)
	})
}

// UpdateSubmittedAt sets the "submitted_at" field to the value that was provided on create.
func (u *AnamnesisUpsertOne) UpdateSubmittedAt() *AnamnesisUpsertOne {
	return u.Update(func(s *AnamnesisUpsert) {
		s.UpdateSubmittedAt()
	})
}

// Exec executes the query.
func (u *AnamnesisUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AnamnesisCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnamnesisUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AnamnesisUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: AnamnesisUpsertOne.ID is not supported by MySQL driver. Use AnamnesisUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AnamnesisUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AnamnesisCreateBulk is the builder for creating many Anamnesis entities in bulk.
type AnamnesisCreateBulk struct {
	config
	err      error
	builders []*AnamnesisCreate
	conflict []sql.ConflictOption
}

// Save creates the Anamnesis entities in the database.
func (_c *AnamnesisCreateBulk) Save(ctx context.Context) ([]*Anamnesis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Anamnesis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnamnesisMutation)
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
func (_c *AnamnesisCreateBulk) SaveX(ctx context.Context) []*Anamnesis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnamnesisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnamnesisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Anamnesis.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnamnesisUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AnamnesisCreateBulk) OnConflict(opts ...sql.ConflictOption) *AnamnesisUpsertBulk {
	_c.conflict = opts
	return &AnamnesisUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Anamnesis.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnamnesisCreateBulk) OnConflictColumns(columns ...string) *AnamnesisUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnamnesisUpsertBulk{
		create: _c,
	}
}

// AnamnesisUpsertBulk is the builder for "upsert"-ing
// a bulk of Anamnesis nodes.
type AnamnesisUpsertBulk struct {
	create *AnamnesisCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Anamnesis.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(anamnesis.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AnamnesisUpsertBulk) UpdateNewValues() *AnamnesisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(anamnesis.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(anamnesis.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Anamnesis.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AnamnesisUpsertBulk) Ignore() *AnamnesisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnamnesisUpsertBulk) DoNothing() *AnamnesisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnamnesisCreateBulk.OnConflict
// documentation for more info.
func (u *AnamnesisUpsertBulk) Update(set func(*AnamnesisUpsert)) *AnamnesisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnamnesisUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AnamnesisUpsertBulk) SetUpdatedAt(v time.Time) *AnamnesisUpsertBulk {
	return u.Update(func(s *AnamnesisUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AnamnesisUpsertBulk) UpdateUpdatedAt() *AnamnesisUpsertBulk {
	return u.Update(func(s *AnamnesisUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *AnamnesisUpsertBulk) SetPatientID(v uuid.UUID) *AnamnesisUpsertBulk {
	return u.Update(func(s *AnamnesisUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *AnamnesisUpsertBulk) UpdatePatientID() *AnamnesisUpsertBulk {
	return u.Update(func(s *AnamnesisUpsert) {
		s.UpdatePatientID()
	})
}

// SetPayload sets the "payload" field.
func (u *AnamnesisUpsertBulk) SetPayload(v string) *AnamnesisUpsertBulk {
	return u.Update(func(s *AnamnesisUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *AnamnesisUpsertBulk) UpdatePayload() *AnamnesisUpsertBulk {
	return u.Update(func(s *AnamnesisUpsert) {
		s.UpdatePayload()
	})
}

// SetSubmittedAt sets the "submitted_at" field.
func (u *AnamnesisUpsertBulk) SetSubmittedAt(v time.Time) *AnamnesisUpsertBulk {
	return u.Update(func(s *AnamnesisUpsert) {
		s.SetSubmittedAt(v)
	})
}

// UpdateSubmittedAt sets the "submitted_at" field to the value that was provided on create.
func (u *AnamnesisUpsertBulk) UpdateSubmittedAt() *AnamnesisUpsertBulk {
	return u.Update(func(s *AnamnesisUpsert) {
		s.UpdateSubmittedAt()
	})
}

// Exec executes the query.
func (u *AnamnesisUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the AnamnesisCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AnamnesisCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnamnesisUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
