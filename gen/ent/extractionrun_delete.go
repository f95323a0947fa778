// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tkarvonen/huoltokirja/gen/ent/extractionrun"
	"github.com/tkarvonen/huoltokirja/gen/ent/predicate"
)

// ExtractionRunDelete is the builder for deleting a ExtractionRun entity.
type ExtractionRunDelete struct {
	config
	hooks    []Hook
	mutation *ExtractionRunMutation
}

// Where appends a list predicates to the ExtractionRunDelete builder.
func (_d *ExtractionRunDelete) Where(ps ...predicate.ExtractionRun) *ExtractionRunDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExtractionRunDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractionRunDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExtractionRunDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(extractionrun.Table, sqlgraph.NewFieldSpec(extractionrun.FieldID, field.TypeUUID))
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

// ExtractionRunDeleteOne is the builder for deleting a single ExtractionRun entity.
type ExtractionRunDeleteOne struct {
	_d *ExtractionRunDelete
}

// Where appends a list predicates to the ExtractionRunDelete builder.
func (_d *ExtractionRunDeleteOne) Where(ps ...predicate.ExtractionRun) *ExtractionRunDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExtractionRunDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{extractionrun.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractionRunDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
