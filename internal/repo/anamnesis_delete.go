// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nutrivida/nutrivida_backend/internal/repo/anamnesis"
	"github.com/nutrivida/nutrivida_backend/internal/repo/predicate"
)

// AnamnesisDelete is the builder for deleting a Anamnesis entity.
type AnamnesisDelete struct {
	config
	hooks    []Hook
	mutation *AnamnesisMutation
}

// Where appends a list predicates to the AnamnesisDelete builder.
func (_d *AnamnesisDelete) Where(ps ...predicate.Anamnesis) *AnamnesisDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AnamnesisDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnamnesisDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AnamnesisDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(anamnesis.Table, sqlgraph.NewFieldSpec(anamnesis.FieldID, field.TypeUUID))
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

// AnamnesisDeleteOne is the builder for deleting a single Anamnesis entity.
type AnamnesisDeleteOne struct {
	_d *AnamnesisDelete
}

// Where appends a list predicates to the AnamnesisDelete builder.
func (_d *AnamnesisDeleteOne) Where(ps ...predicate.Anamnesis) *AnamnesisDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AnamnesisDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{anamnesis.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnamnesisDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
