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
	"github.com/nutrivida/nutrivida_backend/internal/repo/postreaction"
	"github.com/nutrivida/nutrivida_backend/internal/repo/predicate"
)

// PostReactionUpdate is the builder for updating PostReaction entities.
type PostReactionUpdate struct {
	config
	hooks    []Hook
	mutation *PostReactionMutation
}

// Where appends a list predicates to the PostReactionUpdate builder.
func (_u *PostReactionUpdate) Where(ps ...predicate.PostReaction) *PostReactionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPostID sets the "post_id" field.
func (_u *PostReactionUpdate) SetPostID(v uuid.UUID) *PostReactionUpdate {
	_u.mutation.SetPostID(v)
	return _u
}

// SetNillablePostID sets the "post_id" field if the given value is not nil.
func (_u *PostReactionUpdate) SetNillablePostID(v *uuid.UUID) *PostReactionUpdate {
	if v != nil {
		_u.SetPostID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PostReactionUpdate) SetUserID(v uuid.UUID) *PostReactionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PostReactionUpdate) SetNillableUserID(v *uuid.UUID) *PostReactionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// Mutation returns the PostReactionMutation object of the builder.
func (_u *PostReactionUpdate) Mutation() *PostReactionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PostReactionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PostReactionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PostReactionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PostReactionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PostReactionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(postreaction.Table, postreaction.Columns, sqlgraph.NewFieldSpec(postreaction.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PostID(); ok {
		_spec.SetField(postreaction.FieldPostID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(postreaction.FieldUserID, field.TypeUUID, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{postreaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PostReactionUpdateOne is the builder for updating a single PostReaction entity.
type PostReactionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PostReactionMutation
}

// SetPostID sets the "post_id" field.
func (_u *PostReactionUpdateOne) SetPostID(v uuid.UUID) *PostReactionUpdateOne {
	_u.mutation.SetPostID(v)
	return _u
}

// SetNillablePostID sets the "post_id" field if the given value is not nil.
func (_u *PostReactionUpdateOne) SetNillablePostID(v *uuid.UUID) *PostReactionUpdateOne {
	if v != nil {
		_u.SetPostID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PostReactionUpdateOne) SetUserID(v uuid.UUID) *PostReactionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PostReactionUpdateOne) SetNillableUserID(v *uuid.UUID) *PostReactionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// Mutation returns the PostReactionMutation object of the builder.
func (_u *PostReactionUpdateOne) Mutation() *PostReactionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PostReactionUpdate builder.
func (_u *PostReactionUpdateOne) Where(ps ...predicate.PostReaction) *PostReactionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PostReactionUpdateOne) Select(field string, fields ...string) *PostReactionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PostReaction entity.
func (_u *PostReactionUpdateOne) Save(ctx context.Context) (*PostReaction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PostReactionUpdateOne) SaveX(ctx context.Context) *PostReaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PostReactionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PostReactionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PostReactionUpdateOne) sqlSave(ctx context.Context) (_node *PostReaction, err error) {
	_spec := sqlgraph.NewUpdateSpec(postreaction.Table, postreaction.Columns, sqlgraph.NewFieldSpec(postreaction.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "PostReaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, postreaction.FieldID)
		for _, f := range fields {
			if !postreaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != postreaction.FieldID {
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
	if value, ok := _u.mutation.PostID(); ok {
		_spec.SetField(postreaction.FieldPostID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(postreaction.FieldUserID, field.TypeUUID, value)
	}
	_node = &PostReaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{postreaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
