// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tkarvonen/huoltokirja/gen/ent/predicate"
	"github.com/tkarvonen/huoltokirja/gen/ent/servicerecord"
)

// ServiceRecordDelete is the builder for deleting a ServiceRecord entity.
type ServiceRecordDelete struct {
	config
	hooks    []Hook
	mutation *ServiceRecordMutation
}

// Where appends a list predicates to the ServiceRecordDelete builder.
func (_d *ServiceRecordDelete) Where(ps ...predicate.ServiceRecord) *ServiceRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ServiceRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ServiceRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ServiceRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(servicerecord.Table, sqlgraph.NewFieldSpec(servicerecord.FieldID, field.TypeUUID))
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

// ServiceRecordDeleteOne is the builder for deleting a single ServiceRecord entity.
type ServiceRecordDeleteOne struct {
	_d *ServiceRecordDelete
}

// Where appends a list predicates to the ServiceRecordDelete builder.
func (_d *ServiceRecordDeleteOne) Where(ps ...predicate.ServiceRecord) *ServiceRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ServiceRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{servicerecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ServiceRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
