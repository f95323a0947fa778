// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tkarvonen/huoltokirja/gen/ent/document"
	"github.com/tkarvonen/huoltokirja/gen/ent/extractionrun"
	"github.com/tkarvonen/huoltokirja/gen/ent/predicate"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdate) SetFilename(v string) *DocumentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFilename(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *DocumentUpdate) SetSourcePath(v string) *DocumentUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSourcePath(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFileHash sets the "file_hash" field.
func (_u *DocumentUpdate) SetFileHash(v string) *DocumentUpdate {
	_u.mutation.SetFileHash(v)
	return _u
}

// SetNillableFileHash sets the "file_hash" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileHash(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFileHash(*v)
	}
	return _u
}

// SetPages sets the "pages" field.
func (_u *DocumentUpdate) SetPages(v int) *DocumentUpdate {
	_u.mutation.ResetPages()
	_u.mutation.SetPages(v)
	return _u
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillablePages(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetPages(*v)
	}
	return _u
}

// AddPages adds value to the "pages" field.
func (_u *DocumentUpdate) AddPages(v int) *DocumentUpdate {
	_u.mutation.AddPages(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdate) SetCreatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCreatedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddRunIDs adds the "runs" edge to the ExtractionRun entity by IDs.
func (_u *DocumentUpdate) AddRunIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the ExtractionRun entity.
func (_u *DocumentUpdate) AddRuns(v ...*ExtractionRun) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearRuns clears all "runs" edges to the ExtractionRun entity.
func (_u *DocumentUpdate) ClearRuns() *DocumentUpdate {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to ExtractionRun entities by IDs.
func (_u *DocumentUpdate) RemoveRunIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to ExtractionRun entities.
func (_u *DocumentUpdate) RemoveRuns(v ...*ExtractionRun) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := document.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Document.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileHash(); ok {
		if err := document.FileHashValidator(v); err != nil {
			return &ValidationError{Name: "file_hash", err: fmt.Errorf(`ent: validator failed for field "Document.file_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Pages(); ok {
		if err := document.PagesValidator(v); err != nil {
			return &ValidationError{Name: "pages", err: fmt.Errorf(`ent: validator failed for field "Document.pages": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(document.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileHash(); ok {
		_spec.SetField(document.FieldFileHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Pages(); ok {
		_spec.SetField(document.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPages(); ok {
		_spec.AddField(document.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.RunsTable,
			Columns: []string{document.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionrun.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.RunsTable,
			Columns: []string{document.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionrun.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.RunsTable,
			Columns: []string{document.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionrun.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdateOne) SetFilename(v string) *DocumentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFilename(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *DocumentUpdateOne) SetSourcePath(v string) *DocumentUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSourcePath(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFileHash sets the "file_hash" field.
func (_u *DocumentUpdateOne) SetFileHash(v string) *DocumentUpdateOne {
	_u.mutation.SetFileHash(v)
	return _u
}

// SetNillableFileHash sets the "file_hash" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileHash(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileHash(*v)
	}
	return _u
}

// SetPages sets the "pages" field.
func (_u *DocumentUpdateOne) SetPages(v int) *DocumentUpdateOne {
	_u.mutation.ResetPages()
	_u.mutation.SetPages(v)
	return _u
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillablePages(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetPages(*v)
	}
	return _u
}

// AddPages adds value to the "pages" field.
func (_u *DocumentUpdateOne) AddPages(v int) *DocumentUpdateOne {
	_u.mutation.AddPages(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdateOne) SetCreatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCreatedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddRunIDs adds the "runs" edge to the ExtractionRun entity by IDs.
func (_u *DocumentUpdateOne) AddRunIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the ExtractionRun entity.
func (_u *DocumentUpdateOne) AddRuns(v ...*ExtractionRun) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearRuns clears all "runs" edges to the ExtractionRun entity.
func (_u *DocumentUpdateOne) ClearRuns() *DocumentUpdateOne {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to ExtractionRun entities by IDs.
func (_u *DocumentUpdateOne) RemoveRunIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to ExtractionRun entities.
func (_u *DocumentUpdateOne) RemoveRuns(v ...*ExtractionRun) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := document.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Document.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileHash(); ok {
		if err := document.FileHashValidator(v); err != nil {
			return &ValidationError{Name: "file_hash", err: fmt.Errorf(`ent: validator failed for field "Document.file_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Pages(); ok {
		if err := document.PagesValidator(v); err != nil {
			return &ValidationError{Name: "pages", err: fmt.Errorf(`ent: validator failed for field "Document.pages": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(document.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileHash(); ok {
		_spec.SetField(document.FieldFileHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Pages(); ok {
		_spec.SetField(document.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPages(); ok {
		_spec.AddField(document.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.RunsTable,
			Columns: []string{document.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionrun.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.RunsTable,
			Columns: []string{document.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionrun.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.RunsTable,
			Columns: []string{document.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionrun.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
