// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/nutrivida/nutrivida_backend/internal/repo/earnedpin"
	"github.com/nutrivida/nutrivida_backend/internal/repo/predicate"
)

// EarnedPinUpdate is the builder for updating EarnedPin entities.
type EarnedPinUpdate struct {
	config
	hooks    []Hook
	mutation *EarnedPinMutation
}

// Where appends a list predicates to the EarnedPinUpdate builder.
func (_u *EarnedPinUpdate) Where(ps ...predicate.EarnedPin) *EarnedPinUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *EarnedPinUpdate) SetPatientID(v uuid.UUID) *EarnedPinUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *EarnedPinUpdate) SetNillablePatientID(v *uuid.UUID) *EarnedPinUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetTierName sets the "tier_name" field.
func (_u *EarnedPinUpdate) SetTierName(v string) *EarnedPinUpdate {
	_u.mutation.SetTierName(v)
	return _u
}

// SetNillableTierName sets the "tier_name" field if the given value is not nil.
func (_u *EarnedPinUpdate) SetNillableTierName(v *string) *EarnedPinUpdate {
	if v != nil {
		_u.SetTierName(*v)
	}
	return _u
}

// SetTierType sets the "tier_type" field.
func (_u *EarnedPinUpdate) SetTierType(v earnedpin.TierType) *EarnedPinUpdate {
	_u.mutation.SetTierType(v)
	return _u
}

// SetNillableTierType sets the "tier_type" field if the given value is not nil.
func (_u *EarnedPinUpdate) SetNillableTierType(v *earnedpin.TierType) *EarnedPinUpdate {
	if v != nil {
		_u.SetTierType(*v)
	}
	return _u
}

// Mutation returns the EarnedPinMutation object of the builder.
func (_u *EarnedPinUpdate) Mutation() *EarnedPinMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EarnedPinUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EarnedPinUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EarnedPinUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EarnedPinUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EarnedPinUpdate) check() error {
	if v, ok := _u.mutation.TierName(); ok {
		if err := earnedpin.TierNameValidator(v); err != nil {
			return &ValidationError{Name: "tier_name", err: fmt.Errorf(`repo: validator failed for field "EarnedPin.tier_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TierType(); ok {
		if err := earnedpin.TierTypeValidator(v); err != nil {
			return &ValidationError{Name: "tier_type", err: fmt.Errorf(`repo: validator failed for field "EarnedPin.tier_type": %w`, err)}
		}
	}
	return nil
}

func (_u *EarnedPinUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(earnedpin.Table, earnedpin.Columns, sqlgraph.NewFieldSpec(earnedpin.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(earnedpin.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TierName(); ok {
		_spec.SetField(earnedpin.FieldTierName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TierType(); ok {
		_spec.SetField(earnedpin.FieldTierType, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{earnedpin.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EarnedPinUpdateOne is the builder for updating a single EarnedPin entity.
type EarnedPinUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EarnedPinMutation
}

// SetPatientID sets the "patient_id" field.
func (_u *EarnedPinUpdateOne) SetPatientID(v uuid.UUID) *EarnedPinUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *EarnedPinUpdateOne) SetNillablePatientID(v *uuid.UUID) *EarnedPinUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetTierName sets the "tier_name" field.
func (_u *EarnedPinUpdateOne) SetTierName(v string) *EarnedPinUpdateOne {
	_u.mutation.SetTierName(v)
	return _u
}

// SetNillableTierName sets the "tier_name" field if the given value is not nil.
func (_u *EarnedPinUpdateOne) SetNillableTierName(v *string) *EarnedPinUpdateOne {
	if v != nil {
		_u.SetTierName(*v)
	}
	return _u
}

// SetTierType sets the "tier_type" field.
func (_u *EarnedPinUpdateOne) SetTierType(v earnedpin.TierType) *EarnedPinUpdateOne {
	_u.mutation.SetTierType(v)
	return _u
}

// SetNillableTierType sets the "tier_type" field if the given value is not nil.
func (_u *EarnedPinUpdateOne) SetNillableTierType(v *earnedpin.TierType) *EarnedPinUpdateOne {
	if v != nil {
		_u.SetTierType(*v)
	}
	return _u
}

// Mutation returns the EarnedPinMutation object of the builder.
func (_u *EarnedPinUpdateOne) Mutation() *EarnedPinMutation {
	return _u.mutation
}

// Where appends a list predicates to the EarnedPinUpdate builder.
func (_u *EarnedPinUpdateOne) Where(ps ...predicate.EarnedPin) *EarnedPinUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EarnedPinUpdateOne) Select(field string, fields ...string) *EarnedPinUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EarnedPin entity.
func (_u *EarnedPinUpdateOne) Save(ctx context.Context) (*EarnedPin, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EarnedPinUpdateOne) SaveX(ctx context.Context) *EarnedPin {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EarnedPinUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EarnedPinUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EarnedPinUpdateOne) check() error {
	if v, ok := _u.mutation.TierName(); ok {
		if err := earnedpin.TierNameValidator(v); err != nil {
			return &ValidationError{Name: "tier_name", err: fmt.Errorf(`repo: validator failed for field "EarnedPin.tier_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TierType(); ok {
		if err := earnedpin.TierTypeValidator(v); err != nil {
			return &ValidationError{Name: "tier_type", err: fmt.Errorf(`repo: validator failed for field "EarnedPin.tier_type": %w`, err)}
		}
	}
	return nil
}

func (_u *EarnedPinUpdateOne) sqlSave(ctx context.Context) (_node *EarnedPin, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(earnedpin.Table, earnedpin.Columns, sqlgraph.NewFieldSpec(earnedpin.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "EarnedPin.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, earnedpin.FieldID)
		for _, f := range fields {
			if !earnedpin.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != earnedpin.FieldID {
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
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(earnedpin.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TierName(); ok {
		_spec.SetField(earnedpin.FieldTierName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TierType(); ok {
		_spec.SetField(earnedpin.FieldTierType, field.TypeEnum, value)
	}
	_node = &EarnedPin{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{earnedpin.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
