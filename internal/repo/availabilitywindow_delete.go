// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nutrivida/nutrivida_backend/internal/repo/availabilitywindow"
	"github.com/nutrivida/nutrivida_backend/internal/repo/predicate"
)

// AvailabilityWindowDelete is the builder for deleting a AvailabilityWindow entity.
type AvailabilityWindowDelete struct {
	config
	hooks    []Hook
	mutation *AvailabilityWindowMutation
}

// Where appends a list predicates to the AvailabilityWindowDelete builder.
func (_d *AvailabilityWindowDelete) Where(ps ...predicate.AvailabilityWindow) *AvailabilityWindowDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AvailabilityWindowDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AvailabilityWindowDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AvailabilityWindowDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(availabilitywindow.Table, sqlgraph.NewFieldSpec(availabilitywindow.FieldID, field.TypeUUID))
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

// AvailabilityWindowDeleteOne is the builder for deleting a single AvailabilityWindow entity.
type AvailabilityWindowDeleteOne struct {
	_d *AvailabilityWindowDelete
}

// Where appends a list predicates to the AvailabilityWindowDelete builder.
func (_d *AvailabilityWindowDeleteOne) Where(ps ...predicate.AvailabilityWindow) *AvailabilityWindowDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AvailabilityWindowDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{availabilitywindow.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AvailabilityWindowDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
