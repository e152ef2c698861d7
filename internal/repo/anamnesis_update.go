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
	"github.com/nutrivida/nutrivida_backend/internal/repo/anamnesis"
	"github.com/nutrivida/nutrivida_backend/internal/repo/predicate"
)

// AnamnesisUpdate is the builder for updating Anamnesis entities.
type AnamnesisUpdate struct {
	config
	hooks    []Hook
	mutation *AnamnesisMutation
}

// Where appends a list predicates to the AnamnesisUpdate builder.
func (_u *AnamnesisUpdate) Where(ps ...predicate.Anamnesis) *AnamnesisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AnamnesisUpdate) SetUpdatedAt(v time.Time) *AnamnesisUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *AnamnesisUpdate) SetPatientID(v uuid.UUID) *AnamnesisUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *AnamnesisUpdate) SetNillablePatientID(v *uuid.UUID) *AnamnesisUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *AnamnesisUpdate) SetPayload(v string) *AnamnesisUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *AnamnesisUpdate) SetNillablePayload(v *string) *AnamnesisUpdate {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *AnamnesisUpdate) SetSubmittedAt(v time.Time) *AnamnesisUpdate {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *AnamnesisUpdate) SetNillableSubmittedAt(v *time.Time) *AnamnesisUpdate {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// Mutation returns the AnamnesisMutation object of the builder.
func (_u *AnamnesisUpdate) Mutation() *AnamnesisMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnamnesisUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnamnesisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnamnesisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnamnesisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnamnesisUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := anamnesis.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AnamnesisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(anamnesis.Table, anamnesis.Columns, sqlgraph.NewFieldSpec(anamnesis.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(anamnesis.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(anamnesis.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(anamnesis.FieldPayload, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(anamnesis.FieldSubmittedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{anamnesis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnamnesisUpdateOne is the builder for updating a single Anamnesis entity.
type AnamnesisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnamnesisMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AnamnesisUpdateOne) SetUpdatedAt(v time.Time) *AnamnesisUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *AnamnesisUpdateOne) SetPatientID(v uuid.UUID) *AnamnesisUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *AnamnesisUpdateOne) SetNillablePatientID(v *uuid.UUID) *AnamnesisUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *AnamnesisUpdateOne) SetPayload(v string) *AnamnesisUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *AnamnesisUpdateOne) SetNillablePayload(v *string) *AnamnesisUpdateOne {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *AnamnesisUpdateOne) SetSubmittedAt(v time.Time) *AnamnesisUpdateOne {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *AnamnesisUpdateOne) SetNillableSubmittedAt(v *time.Time) *AnamnesisUpdateOne {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// Mutation returns the AnamnesisMutation object of the builder.
func (_u *AnamnesisUpdateOne) Mutation() *AnamnesisMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnamnesisUpdate builder.
func (_u *AnamnesisUpdateOne) Where(ps ...predicate.Anamnesis) *AnamnesisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnamnesisUpdateOne) Select(field string, fields ...string) *AnamnesisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Anamnesis entity.
func (_u *AnamnesisUpdateOne) Save(ctx context.Context) (*Anamnesis, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnamnesisUpdateOne) SaveX(ctx context.Context) *Anamnesis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnamnesisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnamnesisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnamnesisUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := anamnesis.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AnamnesisUpdateOne) sqlSave(ctx context.Context) (_node *Anamnesis, err error) {
	_spec := sqlgraph.NewUpdateSpec(anamnesis.Table, anamnesis.Columns, sqlgraph.NewFieldSpec(anamnesis.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Anamnesis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, anamnesis.FieldID)
		for _, f := range fields {
			if !anamnesis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != anamnesis.FieldID {
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
		_spec.SetField(anamnesis.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(anamnesis.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(anamnesis.FieldPayload, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(anamnesis.FieldSubmittedAt, field.TypeTime, value)
	}
	_node = &Anamnesis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{anamnesis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
