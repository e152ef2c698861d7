// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nutrivida/nutrivida_backend/internal/repo/earnedpin"
	"github.com/nutrivida/nutrivida_backend/internal/repo/predicate"
)

// EarnedPinDelete is the builder for deleting a EarnedPin entity.
type EarnedPinDelete struct {
	config
	hooks    []Hook
	mutation *EarnedPinMutation
}

// Where appends a list predicates to the EarnedPinDelete builder.
func (_d *EarnedPinDelete) Where(ps ...predicate.EarnedPin) *EarnedPinDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EarnedPinDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EarnedPinDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EarnedPinDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(earnedpin.Table, sqlgraph.NewFieldSpec(earnedpin.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// EarnedPinDeleteOne is the builder for deleting a single EarnedPin entity.
type EarnedPinDeleteOne struct {
	_d *EarnedPinDelete
}

// Where appends a list predicates to the EarnedPinDelete builder.
func (_d *EarnedPinDeleteOne) Where(ps ...predicate.EarnedPin) *EarnedPinDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EarnedPinDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{earnedpin.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EarnedPinDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
