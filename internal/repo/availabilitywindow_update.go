// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/nutrivida/nutrivida_backend/internal/repo/availabilitywindow"
	"github.com/nutrivida/nutrivida_backend/internal/repo/predicate"
)

// AvailabilityWindowUpdate is the builder for updating AvailabilityWindow entities.
type AvailabilityWindowUpdate struct {
	config
	hooks    []Hook
	mutation *AvailabilityWindowMutation
}

// Where appends a list predicates to the AvailabilityWindowUpdate builder.
func (_u *AvailabilityWindowUpdate) Where(ps ...predicate.AvailabilityWindow) *AvailabilityWindowUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AvailabilityWindowUpdate) SetUpdatedAt(v time.Time) *AvailabilityWindowUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDate sets the "date" field.
func (_u *AvailabilityWindowUpdate) SetDate(v string) *AvailabilityWindowUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *AvailabilityWindowUpdate) SetNillableDate(v *string) *AvailabilityWindowUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetTimes sets the "times" field.
func (_u *AvailabilityWindowUpdate) SetTimes(v []string) *AvailabilityWindowUpdate {
	_u.mutation.SetTimes(v)
	return _u
}

// AppendTimes appends value to the "times" field.
func (_u *AvailabilityWindowUpdate) AppendTimes(v []string) *AvailabilityWindowUpdate {
	_u.mutation.AppendTimes(v)
	return _u
}

// Mutation returns the AvailabilityWindowMutation object of the builder.
func (_u *AvailabilityWindowUpdate) Mutation() *AvailabilityWindowMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AvailabilityWindowUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AvailabilityWindowUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AvailabilityWindowUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AvailabilityWindowUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AvailabilityWindowUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := availabilitywindow.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AvailabilityWindowUpdate) check() error {
	if v, ok := _u.mutation.Date(); ok {
		if err := availabilitywindow.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`repo: validator failed for field "AvailabilityWindow.date": %w`, err)}
		}
	}
	return nil
}

func (_u *AvailabilityWindowUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(availabilitywindow.Table, availabilitywindow.Columns, sqlgraph.NewFieldSpec(availabilitywindow.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(availabilitywindow.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(availabilitywindow.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Times(); ok {
		_spec.SetField(availabilitywindow.FieldTimes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTimes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, availabilitywindow.FieldTimes, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{availabilitywindow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AvailabilityWindowUpdateOne is the builder for updating a single AvailabilityWindow entity.
type AvailabilityWindowUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AvailabilityWindowMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AvailabilityWindowUpdateOne) SetUpdatedAt(v time.Time) *AvailabilityWindowUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDate sets the "date" field.
func (_u *AvailabilityWindowUpdateOne) SetDate(v string) *AvailabilityWindowUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *AvailabilityWindowUpdateOne) SetNillableDate(v *string) *AvailabilityWindowUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetTimes sets the "times" field.
func (_u *AvailabilityWindowUpdateOne) SetTimes(v []string) *AvailabilityWindowUpdateOne {
	_u.mutation.SetTimes(v)
	return _u
}

// AppendTimes appends value to the "times" field.
func (_u *AvailabilityWindowUpdateOne) AppendTimes(v []string) *AvailabilityWindowUpdateOne {
	_u.mutation.AppendTimes(v)
	return _u
}

// Mutation returns the AvailabilityWindowMutation object of the builder.
func (_u *AvailabilityWindowUpdateOne) Mutation() *AvailabilityWindowMutation {
	return _u.mutation
}

// Where appends a list predicates to the AvailabilityWindowUpdate builder.
func (_u *AvailabilityWindowUpdateOne) Where(ps ...predicate.AvailabilityWindow) *AvailabilityWindowUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AvailabilityWindowUpdateOne) Select(field string, fields ...string) *AvailabilityWindowUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AvailabilityWindow entity.
func (_u *AvailabilityWindowUpdateOne) Save(ctx context.Context) (*AvailabilityWindow, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AvailabilityWindowUpdateOne) SaveX(ctx context.Context) *AvailabilityWindow {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AvailabilityWindowUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AvailabilityWindowUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AvailabilityWindowUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := availabilitywindow.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AvailabilityWindowUpdateOne) check() error {
	if v, ok := _u.mutation.Date(); ok {
		if err := availabilitywindow.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`repo: validator failed for field "AvailabilityWindow.date": %w`, err)}
		}
	}
	return nil
}

func (_u *AvailabilityWindowUpdateOne) sqlSave(ctx context.Context) (_node *AvailabilityWindow, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(availabilitywindow.Table, availabilitywindow.Columns, sqlgraph.NewFieldSpec(availabilitywindow.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "AvailabilityWindow.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, availabilitywindow.FieldID)
		for _, f := range fields {
			if !availabilitywindow.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != availabilitywindow.FieldID {
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
		_spec.SetField(availabilitywindow.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(availabilitywindow.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Times(); ok {
		_spec.SetField(availabilitywindow.FieldTimes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTimes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, availabilitywindow.FieldTimes, value)
		})
	}
	_node = &AvailabilityWindow{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{availabilitywindow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
