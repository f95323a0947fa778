// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tkarvonen/huoltokirja/gen/ent/document"
	"github.com/tkarvonen/huoltokirja/gen/ent/extractionrun"
)

// ExtractionRunCreate is the builder for creating a ExtractionRun entity.
type ExtractionRunCreate struct {
	config
	mutation *ExtractionRunMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ExtractionRunCreate) SetDocumentID(v uuid.UUID) *ExtractionRunCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExtractionRunCreate) SetStatus(v string) *ExtractionRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *ExtractionRunCreate) SetMode(v string) *ExtractionRunCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetPipelineVersion sets the "pipeline_version" field.
func (_c *ExtractionRunCreate) SetPipelineVersion(v string) *ExtractionRunCreate {
	_c.mutation.SetPipelineVersion(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExtractionRunCreate) SetStartedAt(v time.Time) *ExtractionRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ExtractionRunCreate) SetNillableStartedAt(v *time.Time) *ExtractionRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ExtractionRunCreate) SetFinishedAt(v time.Time) *ExtractionRunCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ExtractionRunCreate) SetNillableFinishedAt(v *time.Time) *ExtractionRunCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetFinalData sets the "final_data" field.
func (_c *ExtractionRunCreate) SetFinalData(v json.RawMessage) *ExtractionRunCreate {
	_c.mutation.SetFinalData(v)
	return _c
}

// SetFieldSources sets the "field_sources" field.
func (_c *ExtractionRunCreate) SetFieldSources(v json.RawMessage) *ExtractionRunCreate {
	_c.mutation.SetFieldSources(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExtractionRunCreate) SetErrorMessage(v string) *ExtractionRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExtractionRunCreate) SetNillableErrorMessage(v *string) *ExtractionRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetTotalDurationMs sets the "total_duration_ms" field.
func (_c *ExtractionRunCreate) SetTotalDurationMs(v int64) *ExtractionRunCreate {
	_c.mutation.SetTotalDurationMs(v)
	return _c
}

// SetNillableTotalDurationMs sets the "total_duration_ms" field if the given value is not nil.
func (_c *ExtractionRunCreate) SetNillableTotalDurationMs(v *int64) *ExtractionRunCreate {
	if v != nil {
		_c.SetTotalDurationMs(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionRunCreate) SetID(v uuid.UUID) *ExtractionRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionRunCreate) SetNillableID(v *uuid.UUID) *ExtractionRunCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *ExtractionRunCreate) SetDocument(v *Document) *ExtractionRunCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the ExtractionRunMutation object of the builder.
func (_c *ExtractionRunCreate) Mutation() *ExtractionRunMutation {
	return _c.mutation
}

// Save creates the ExtractionRun in the database.
func (_c *ExtractionRunCreate) Save(ctx context.Context) (*ExtractionRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionRunCreate) SaveX(ctx context.Context) *ExtractionRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionRunCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := extractionrun.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.TotalDurationMs(); !ok {
		v := extractionrun.DefaultTotalDurationMs
		_c.mutation.SetTotalDurationMs(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractionrun.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionRunCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ExtractionRun.document_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExtractionRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := extractionrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "ExtractionRun.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := extractionrun.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ExtractionRun.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PipelineVersion(); !ok {
		return &ValidationError{Name: "pipeline_version", err: errors.New(`ent: missing required field "ExtractionRun.pipeline_version"`)}
	}
	if v, ok := _c.mutation.PipelineVersion(); ok {
		if err := extractionrun.PipelineVersionValidator(v); err != nil {
			return &ValidationError{Name: "pipeline_version", err: fmt.Errorf(`ent: validator failed for field "ExtractionRun.pipeline_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ExtractionRun.started_at"`)}
	}
	if _, ok := _c.mutation.TotalDurationMs(); !ok {
		return &ValidationError{Name: "total_duration_ms", err: errors.New(`ent: missing required field "ExtractionRun.total_duration_ms"`)}
	}
	if v, ok := _c.mutation.TotalDurationMs(); ok {
		if err := extractionrun.TotalDurationMsValidator(v); err != nil {
			return &ValidationError{Name: "total_duration_ms", err: fmt.Errorf(`ent: validator failed for field "ExtractionRun.total_duration_ms": %w`, err)}
		}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "ExtractionRun.document"`)}
	}
	return nil
}

func (_c *ExtractionRunCreate) sqlSave(ctx context.Context) (*ExtractionRun, error) {
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

func (_c *ExtractionRunCreate) createSpec() (*ExtractionRun, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionrun.Table, sqlgraph.NewFieldSpec(extractionrun.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(extractionrun.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(extractionrun.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.PipelineVersion(); ok {
		_spec.SetField(extractionrun.FieldPipelineVersion, field.TypeString, value)
		_node.PipelineVersion = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(extractionrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(extractionrun.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.FinalData(); ok {
		_spec.SetField(extractionrun.FieldFinalData, field.TypeJSON, value)
		_node.FinalData = value
	}
	if value, ok := _c.mutation.FieldSources(); ok {
		_spec.SetField(extractionrun.FieldFieldSources, field.TypeJSON, value)
		_node.FieldSources = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionrun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.TotalDurationMs(); ok {
		_spec.SetField(extractionrun.FieldTotalDurationMs, field.TypeInt64, value)
		_node.TotalDurationMs = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionrun.DocumentTable,
			Columns: []string{extractionrun.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractionRunCreateBulk is the builder for creating many ExtractionRun entities in bulk.
type ExtractionRunCreateBulk struct {
	config
	err      error
	builders []*ExtractionRunCreate
}

// Save creates the ExtractionRun entities in the database.
func (_c *ExtractionRunCreateBulk) Save(ctx context.Context) ([]*ExtractionRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionRunMutation)
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
func (_c *ExtractionRunCreateBulk) SaveX(ctx context.Context) []*ExtractionRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
