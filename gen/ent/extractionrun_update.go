// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tkarvonen/huoltokirja/gen/ent/document"
	"github.com/tkarvonen/huoltokirja/gen/ent/extractionrun"
	"github.com/tkarvonen/huoltokirja/gen/ent/predicate"
)

// ExtractionRunUpdate is the builder for updating ExtractionRun entities.
type ExtractionRunUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionRunMutation
}

// Where appends a list predicates to the ExtractionRunUpdate builder.
func (_u *ExtractionRunUpdate) Where(ps ...predicate.ExtractionRun) *ExtractionRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractionRunUpdate) SetDocumentID(v uuid.UUID) *ExtractionRunUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractionRunUpdate) SetNillableDocumentID(v *uuid.UUID) *ExtractionRunUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionRunUpdate) SetStatus(v string) *ExtractionRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionRunUpdate) SetNillableStatus(v *string) *ExtractionRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ExtractionRunUpdate) SetMode(v string) *ExtractionRunUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ExtractionRunUpdate) SetNillableMode(v *string) *ExtractionRunUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetPipelineVersion sets the "pipeline_version" field.
func (_u *ExtractionRunUpdate) SetPipelineVersion(v string) *ExtractionRunUpdate {
	_u.mutation.SetPipelineVersion(v)
	return _u
}

// SetNillablePipelineVersion sets the "pipeline_version" field if the given value is not nil.
func (_u *ExtractionRunUpdate) SetNillablePipelineVersion(v *string) *ExtractionRunUpdate {
	if v != nil {
		_u.SetPipelineVersion(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractionRunUpdate) SetStartedAt(v time.Time) *ExtractionRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractionRunUpdate) SetNillableStartedAt(v *time.Time) *ExtractionRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractionRunUpdate) SetFinishedAt(v time.Time) *ExtractionRunUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractionRunUpdate) SetNillableFinishedAt(v *time.Time) *ExtractionRunUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractionRunUpdate) ClearFinishedAt() *ExtractionRunUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetFinalData sets the "final_data" field.
func (_u *ExtractionRunUpdate) SetFinalData(v json.RawMessage) *ExtractionRunUpdate {
	_u.mutation.SetFinalData(v)
	return _u
}

// AppendFinalData appends value to the "final_data" field.
func (_u *ExtractionRunUpdate) AppendFinalData(v json.RawMessage) *ExtractionRunUpdate {
	_u.mutation.AppendFinalData(v)
	return _u
}

// ClearFinalData clears the value of the "final_data" field.
func (_u *ExtractionRunUpdate) ClearFinalData() *ExtractionRunUpdate {
	_u.mutation.ClearFinalData()
	return _u
}

// SetFieldSources sets the "field_sources" field.
func (_u *ExtractionRunUpdate) SetFieldSources(v json.RawMessage) *ExtractionRunUpdate {
	_u.mutation.SetFieldSources(v)
	return _u
}

// AppendFieldSources appends value to the "field_sources" field.
func (_u *ExtractionRunUpdate) AppendFieldSources(v json.RawMessage) *ExtractionRunUpdate {
	_u.mutation.AppendFieldSources(v)
	return _u
}

// ClearFieldSources clears the value of the "field_sources" field.
func (_u *ExtractionRunUpdate) ClearFieldSources() *ExtractionRunUpdate {
	_u.mutation.ClearFieldSources()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionRunUpdate) SetErrorMessage(v string) *ExtractionRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionRunUpdate) SetNillableErrorMessage(v *string) *ExtractionRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionRunUpdate) ClearErrorMessage() *ExtractionRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetTotalDurationMs sets the "total_duration_ms" field.
func (_u *ExtractionRunUpdate) SetTotalDurationMs(v int64) *ExtractionRunUpdate {
	_u.mutation.ResetTotalDurationMs()
	_u.mutation.SetTotalDurationMs(v)
	return _u
}

// SetNillableTotalDurationMs sets the "total_duration_ms" field if the given value is not nil.
func (_u *ExtractionRunUpdate) SetNillableTotalDurationMs(v *int64) *ExtractionRunUpdate {
	if v != nil {
		_u.SetTotalDurationMs(*v)
	}
	return _u
}

// AddTotalDurationMs adds value to the "total_duration_ms" field.
func (_u *ExtractionRunUpdate) AddTotalDurationMs(v int64) *ExtractionRunUpdate {
	_u.mutation.AddTotalDurationMs(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExtractionRunUpdate) SetDocument(v *Document) *ExtractionRunUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ExtractionRunMutation object of the builder.
func (_u *ExtractionRunUpdate) Mutation() *ExtractionRunMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExtractionRunUpdate) ClearDocument() *ExtractionRunUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionRun.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := extractionrun.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ExtractionRun.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PipelineVersion(); ok {
		if err := extractionrun.PipelineVersionValidator(v); err != nil {
			return &ValidationError{Name: "pipeline_version", err: fmt.Errorf(`ent: validator failed for field "ExtractionRun.pipeline_version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalDurationMs(); ok {
		if err := extractionrun.TotalDurationMsValidator(v); err != nil {
			return &ValidationError{Name: "total_duration_ms", err: fmt.Errorf(`ent: validator failed for field "ExtractionRun.total_duration_ms": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionRun.document"`)
	}
	return nil
}

func (_u *ExtractionRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionrun.Table, extractionrun.Columns, sqlgraph.NewFieldSpec(extractionrun.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionrun.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(extractionrun.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.PipelineVersion(); ok {
		_spec.SetField(extractionrun.FieldPipelineVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractionrun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractionrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractionrun.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinalData(); ok {
		_spec.SetField(extractionrun.FieldFinalData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFinalData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrun.FieldFinalData, value)
		})
	}
	if _u.mutation.FinalDataCleared() {
		_spec.ClearField(extractionrun.FieldFinalData, field.TypeJSON)
	}
	if value, ok := _u.mutation.FieldSources(); ok {
		_spec.SetField(extractionrun.FieldFieldSources, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFieldSources(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrun.FieldFieldSources, value)
		})
	}
	if _u.mutation.FieldSourcesCleared() {
		_spec.ClearField(extractionrun.FieldFieldSources, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.TotalDurationMs(); ok {
		_spec.SetField(extractionrun.FieldTotalDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalDurationMs(); ok {
		_spec.AddField(extractionrun.FieldTotalDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionRunUpdateOne is the builder for updating a single ExtractionRun entity.
type ExtractionRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionRunMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractionRunUpdateOne) SetDocumentID(v uuid.UUID) *ExtractionRunUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractionRunUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ExtractionRunUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionRunUpdateOne) SetStatus(v string) *ExtractionRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionRunUpdateOne) SetNillableStatus(v *string) *ExtractionRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ExtractionRunUpdateOne) SetMode(v string) *ExtractionRunUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ExtractionRunUpdateOne) SetNillableMode(v *string) *ExtractionRunUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetPipelineVersion sets the "pipeline_version" field.
func (_u *ExtractionRunUpdateOne) SetPipelineVersion(v string) *ExtractionRunUpdateOne {
	_u.mutation.SetPipelineVersion(v)
	return _u
}

// SetNillablePipelineVersion sets the "pipeline_version" field if the given value is not nil.
func (_u *ExtractionRunUpdateOne) SetNillablePipelineVersion(v *string) *ExtractionRunUpdateOne {
	if v != nil {
		_u.SetPipelineVersion(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractionRunUpdateOne) SetStartedAt(v time.Time) *ExtractionRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractionRunUpdateOne) SetNillableStartedAt(v *time.Time) *ExtractionRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractionRunUpdateOne) SetFinishedAt(v time.Time) *ExtractionRunUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractionRunUpdateOne) SetNillableFinishedAt(v *time.Time) *ExtractionRunUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractionRunUpdateOne) ClearFinishedAt() *ExtractionRunUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetFinalData sets the "final_data" field.
func (_u *ExtractionRunUpdateOne) SetFinalData(v json.RawMessage) *ExtractionRunUpdateOne {
	_u.mutation.SetFinalData(v)
	return _u
}

// AppendFinalData appends value to the "final_data" field.
func (_u *ExtractionRunUpdateOne) AppendFinalData(v json.RawMessage) *ExtractionRunUpdateOne {
	_u.mutation.AppendFinalData(v)
	return _u
}

// ClearFinalData clears the value of the "final_data" field.
func (_u *ExtractionRunUpdateOne) ClearFinalData() *ExtractionRunUpdateOne {
	_u.mutation.ClearFinalData()
	return _u
}

// SetFieldSources sets the "field_sources" field.
func (_u *ExtractionRunUpdateOne) SetFieldSources(v json.RawMessage) *ExtractionRunUpdateOne {
	_u.mutation.SetFieldSources(v)
	return _u
}

// AppendFieldSources appends value to the "field_sources" field.
func (_u *ExtractionRunUpdateOne) AppendFieldSources(v json.RawMessage) *ExtractionRunUpdateOne {
	_u.mutation.AppendFieldSources(v)
	return _u
}

// ClearFieldSources clears the value of the "field_sources" field.
func (_u *ExtractionRunUpdateOne) ClearFieldSources() *ExtractionRunUpdateOne {
	_u.mutation.ClearFieldSources()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionRunUpdateOne) SetErrorMessage(v string) *ExtractionRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionRunUpdateOne) SetNillableErrorMessage(v *string) *ExtractionRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionRunUpdateOne) ClearErrorMessage() *ExtractionRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetTotalDurationMs sets the "total_duration_ms" field.
func (_u *ExtractionRunUpdateOne) SetTotalDurationMs(v int64) *ExtractionRunUpdateOne {
	_u.mutation.ResetTotalDurationMs()
	_u.mutation.SetTotalDurationMs(v)
	return _u
}

// SetNillableTotalDurationMs sets the "total_duration_ms" field if the given value is not nil.
func (_u *ExtractionRunUpdateOne) SetNillableTotalDurationMs(v *int64) *ExtractionRunUpdateOne {
	if v != nil {
		_u.SetTotalDurationMs(*v)
	}
	return _u
}

// AddTotalDurationMs adds value to the "total_duration_ms" field.
func (_u *ExtractionRunUpdateOne) AddTotalDurationMs(v int64) *ExtractionRunUpdateOne {
	_u.mutation.AddTotalDurationMs(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExtractionRunUpdateOne) SetDocument(v *Document) *ExtractionRunUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ExtractionRunMutation object of the builder.
func (_u *ExtractionRunUpdateOne) Mutation() *ExtractionRunMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExtractionRunUpdateOne) ClearDocument() *ExtractionRunUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the ExtractionRunUpdate builder.
func (_u *ExtractionRunUpdateOne) Where(ps ...predicate.ExtractionRun) *ExtractionRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionRunUpdateOne) Select(field string, fields ...string) *ExtractionRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionRun entity.
func (_u *ExtractionRunUpdateOne) Save(ctx context.Context) (*ExtractionRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionRunUpdateOne) SaveX(ctx context.Context) *ExtractionRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionRun.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := extractionrun.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ExtractionRun.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PipelineVersion(); ok {
		if err := extractionrun.PipelineVersionValidator(v); err != nil {
			return &ValidationError{Name: "pipeline_version", err: fmt.Errorf(`ent: validator failed for field "ExtractionRun.pipeline_version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalDurationMs(); ok {
		if err := extractionrun.TotalDurationMsValidator(v); err != nil {
			return &ValidationError{Name: "total_duration_ms", err: fmt.Errorf(`ent: validator failed for field "ExtractionRun.total_duration_ms": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionRun.document"`)
	}
	return nil
}

func (_u *ExtractionRunUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionrun.Table, extractionrun.Columns, sqlgraph.NewFieldSpec(extractionrun.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionrun.FieldID)
		for _, f := range fields {
			if !extractionrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionrun.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionrun.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(extractionrun.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.PipelineVersion(); ok {
		_spec.SetField(extractionrun.FieldPipelineVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractionrun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractionrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractionrun.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinalData(); ok {
		_spec.SetField(extractionrun.FieldFinalData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFinalData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrun.FieldFinalData, value)
		})
	}
	if _u.mutation.FinalDataCleared() {
		_spec.ClearField(extractionrun.FieldFinalData, field.TypeJSON)
	}
	if value, ok := _u.mutation.FieldSources(); ok {
		_spec.SetField(extractionrun.FieldFieldSources, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFieldSources(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrun.FieldFieldSources, value)
		})
	}
	if _u.mutation.FieldSourcesCleared() {
		_spec.ClearField(extractionrun.FieldFieldSources, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.TotalDurationMs(); ok {
		_spec.SetField(extractionrun.FieldTotalDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalDurationMs(); ok {
		_spec.AddField(extractionrun.FieldTotalDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractionRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
