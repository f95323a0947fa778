// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tkarvonen/huoltokirja/gen/ent/document"
	"github.com/tkarvonen/huoltokirja/gen/ent/extractionrun"
	"github.com/tkarvonen/huoltokirja/gen/ent/predicate"
	"github.com/tkarvonen/huoltokirja/gen/ent/servicerecord"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocument      = "Document"
	TypeExtractionRun = "ExtractionRun"
	TypeServiceRecord = "ServiceRecord"
)

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	filename      *string
	source_path   *string
	file_hash     *string
	pages         *int
	addpages      *int
	created_at    *time.Time
	clearedFields map[string]struct{}
	runs          map[uuid.UUID]struct{}
	removedruns   map[uuid.UUID]struct{}
	clearedruns   bool
	done          bool
	oldValue      func(context.Context) (*Document, error)
	predicates    []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetSourcePath sets the "source_path" field.
func (m *DocumentMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *DocumentMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *DocumentMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetFileHash sets the "file_hash" field.
func (m *DocumentMutation) SetFileHash(s string) {
	m.file_hash = &s
}

// FileHash returns the value of the "file_hash" field in the mutation.
func (m *DocumentMutation) FileHash() (r string, exists bool) {
	v := m.file_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldFileHash returns the old "file_hash" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileHash: %w", err)
	}
	return oldValue.FileHash, nil
}

// ResetFileHash resets all changes to the "file_hash" field.
func (m *DocumentMutation) ResetFileHash() {
	m.file_hash = nil
}

// SetPages sets the "pages" field.
func (m *DocumentMutation) SetPages(i int) {
	m.pages = &i
	m.addpages = nil
}

// Pages returns the value of the "pages" field in the mutation.
func (m *DocumentMutation) Pages() (r int, exists bool) {
	v := m.pages
	if v == nil {
		return
	}
	return *v, true
}

// OldPages returns the old "pages" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPages(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPages: %w", err)
	}
	return oldValue.Pages, nil
}

// AddPages adds i to the "pages" field.
func (m *DocumentMutation) AddPages(i int) {
	if m.addpages != nil {
		*m.addpages += i
	} else {
		m.addpages = &i
	}
}

// AddedPages returns the value that was added to the "pages" field in this mutation.
func (m *DocumentMutation) AddedPages() (r int, exists bool) {
	v := m.addpages
	if v == nil {
		return
	}
	return *v, true
}

// ResetPages resets all changes to the "pages" field.
func (m *DocumentMutation) ResetPages() {
	m.pages = nil
	m.addpages = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddRunIDs adds the "runs" edge to the ExtractionRun entity by ids.
func (m *DocumentMutation) AddRunIDs(ids ...uuid.UUID) {
	if m.runs == nil {
		m.runs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.runs[ids[i]] = struct{}{}
	}
}

// ClearRuns clears the "runs" edge to the ExtractionRun entity.
func (m *DocumentMutation) ClearRuns() {
	m.clearedruns = true
}

// RunsCleared reports if the "runs" edge to the ExtractionRun entity was cleared.
func (m *DocumentMutation) RunsCleared() bool {
	return m.clearedruns
}

// RemoveRunIDs removes the "runs" edge to the ExtractionRun entity by IDs.
func (m *DocumentMutation) RemoveRunIDs(ids ...uuid.UUID) {
	if m.removedruns == nil {
		m.removedruns = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.runs, ids[i])
		m.removedruns[ids[i]] = struct{}{}
	}
}

// RemovedRuns returns the removed IDs of the "runs" edge to the ExtractionRun entity.
func (m *DocumentMutation) RemovedRunsIDs() (ids []uuid.UUID) {
	for id := range m.removedruns {
		ids = append(ids, id)
	}
	return
}

// RunsIDs returns the "runs" edge IDs in the mutation.
func (m *DocumentMutation) RunsIDs() (ids []uuid.UUID) {
	for id := range m.runs {
		ids = append(ids, id)
	}
	return
}

// ResetRuns resets all changes to the "runs" edge.
func (m *DocumentMutation) ResetRuns() {
	m.runs = nil
	m.clearedruns = false
	m.removedruns = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.source_path != nil {
		fields = append(fields, document.FieldSourcePath)
	}
	if m.file_hash != nil {
		fields = append(fields, document.FieldFileHash)
	}
	if m.pages != nil {
		fields = append(fields, document.FieldPages)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldFilename:
		return m.Filename()
	case document.FieldSourcePath:
		return m.SourcePath()
	case document.FieldFileHash:
		return m.FileHash()
	case document.FieldPages:
		return m.Pages()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case document.FieldFileHash:
		return m.OldFileHash(ctx)
	case document.FieldPages:
		return m.OldPages(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case document.FieldFileHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileHash(v)
		return nil
	case document.FieldPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPages(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addpages != nil {
		fields = append(fields, document.FieldPages)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldPages:
		return m.AddedPages()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPages(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case document.FieldFileHash:
		m.ResetFileHash()
		return nil
	case document.FieldPages:
		m.ResetPages()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.runs != nil {
		edges = append(edges, document.EdgeRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.runs))
		for id := range m.runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedruns != nil {
		edges = append(edges, document.EdgeRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.removedruns))
		for id := range m.removedruns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedruns {
		edges = append(edges, document.EdgeRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeRuns:
		return m.clearedruns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeRuns:
		m.ResetRuns()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// ExtractionRunMutation represents an operation that mutates the ExtractionRun nodes in the graph.
type ExtractionRunMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	status               *string
	mode                 *string
	pipeline_version     *string
	started_at           *time.Time
	finished_at          *time.Time
	final_data           *json.RawMessage
	appendfinal_data     json.RawMessage
	field_sources        *json.RawMessage
	appendfield_sources  json.RawMessage
	error_message        *string
	total_duration_ms    *int64
	addtotal_duration_ms *int64
	clearedFields        map[string]struct{}
	document             *uuid.UUID
	cleareddocument      bool
	done                 bool
	oldValue             func(context.Context) (*ExtractionRun, error)
	predicates           []predicate.ExtractionRun
}

var _ ent.Mutation = (*ExtractionRunMutation)(nil)

// extractionrunOption allows management of the mutation configuration using functional options.
type extractionrunOption func(*ExtractionRunMutation)

// newExtractionRunMutation creates new mutation for the ExtractionRun entity.
func newExtractionRunMutation(c config, op Op, opts ...extractionrunOption) *ExtractionRunMutation {
	m := &ExtractionRunMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionRunID sets the ID field of the mutation.
func withExtractionRunID(id uuid.UUID) extractionrunOption {
	return func(m *ExtractionRunMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionRun
		)
		m.oldValue = func(ctx context.Context) (*ExtractionRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionRun sets the old ExtractionRun of the mutation.
func withExtractionRun(node *ExtractionRun) extractionrunOption {
	return func(m *ExtractionRunMutation) {
		m.oldValue = func(context.Context) (*ExtractionRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionRun entities.
func (m *ExtractionRunMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionRunMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionRunMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ExtractionRunMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ExtractionRunMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ExtractionRun entity.
// If the ExtractionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRunMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ExtractionRunMutation) ResetDocumentID() {
	m.document = nil
}

// SetStatus sets the "status" field.
func (m *ExtractionRunMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractionRunMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractionRun entity.
// If the ExtractionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRunMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractionRunMutation) ResetStatus() {
	m.status = nil
}

// SetMode sets the "mode" field.
func (m *ExtractionRunMutation) SetMode(s string) {
	m.mode = &s
}

// Mode returns the value of the "mode" field in the mutation.
func (m *ExtractionRunMutation) Mode() (r string, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the ExtractionRun entity.
// If the ExtractionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRunMutation) OldMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *ExtractionRunMutation) ResetMode() {
	m.mode = nil
}

// SetPipelineVersion sets the "pipeline_version" field.
func (m *ExtractionRunMutation) SetPipelineVersion(s string) {
	m.pipeline_version = &s
}

// PipelineVersion returns the value of the "pipeline_version" field in the mutation.
func (m *ExtractionRunMutation) PipelineVersion() (r string, exists bool) {
	v := m.pipeline_version
	if v == nil {
		return
	}
	return *v, true
}

// OldPipelineVersion returns the old "pipeline_version" field's value of the ExtractionRun entity.
// If the ExtractionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRunMutation) OldPipelineVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPipelineVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPipelineVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPipelineVersion: %w", err)
	}
	return oldValue.PipelineVersion, nil
}

// ResetPipelineVersion resets all changes to the "pipeline_version" field.
func (m *ExtractionRunMutation) ResetPipelineVersion() {
	m.pipeline_version = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ExtractionRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExtractionRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExtractionRun entity.
// If the ExtractionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExtractionRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExtractionRunMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExtractionRunMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ExtractionRun entity.
// If the ExtractionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRunMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExtractionRunMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[extractionrun.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExtractionRunMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[extractionrun.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExtractionRunMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, extractionrun.FieldFinishedAt)
}

// SetFinalData sets the "final_data" field.
func (m *ExtractionRunMutation) SetFinalData(jm json.RawMessage) {
	m.final_data = &jm
	m.appendfinal_data = nil
}

// FinalData returns the value of the "final_data" field in the mutation.
func (m *ExtractionRunMutation) FinalData() (r json.RawMessage, exists bool) {
	v := m.final_data
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalData returns the old "final_data" field's value of the ExtractionRun entity.
// If the ExtractionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRunMutation) OldFinalData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalData: %w", err)
	}
	return oldValue.FinalData, nil
}

// AppendFinalData adds jm to the "final_data" field.
func (m *ExtractionRunMutation) AppendFinalData(jm json.RawMessage) {
	m.appendfinal_data = append(m.appendfinal_data, jm...)
}

// AppendedFinalData returns the list of values that were appended to the "final_data" field in this mutation.
func (m *ExtractionRunMutation) AppendedFinalData() (json.RawMessage, bool) {
	if len(m.appendfinal_data) == 0 {
		return nil, false
	}
	return m.appendfinal_data, true
}

// ClearFinalData clears the value of the "final_data" field.
func (m *ExtractionRunMutation) ClearFinalData() {
	m.final_data = nil
	m.appendfinal_data = nil
	m.clearedFields[extractionrun.FieldFinalData] = struct{}{}
}

// FinalDataCleared returns if the "final_data" field was cleared in this mutation.
func (m *ExtractionRunMutation) FinalDataCleared() bool {
	_, ok := m.clearedFields[extractionrun.FieldFinalData]
	return ok
}

// ResetFinalData resets all changes to the "final_data" field.
func (m *ExtractionRunMutation) ResetFinalData() {
	m.final_data = nil
	m.appendfinal_data = nil
	delete(m.clearedFields, extractionrun.FieldFinalData)
}

// SetFieldSources sets the "field_sources" field.
func (m *ExtractionRunMutation) SetFieldSources(jm json.RawMessage) {
	m.field_sources = &jm
	m.appendfield_sources = nil
}

// FieldSources returns the value of the "field_sources" field in the mutation.
func (m *ExtractionRunMutation) FieldSources() (r json.RawMessage, exists bool) {
	v := m.field_sources
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldSources returns the old "field_sources" field's value of the ExtractionRun entity.
// If the ExtractionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRunMutation) OldFieldSources(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldSources is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldSources requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldSources: %w", err)
	}
	return oldValue.FieldSources, nil
}

// AppendFieldSources adds jm to the "field_sources" field.
func (m *ExtractionRunMutation) AppendFieldSources(jm json.RawMessage) {
	m.appendfield_sources = append(m.appendfield_sources, jm...)
}

// AppendedFieldSources returns the list of values that were appended to the "field_sources" field in this mutation.
func (m *ExtractionRunMutation) AppendedFieldSources() (json.RawMessage, bool) {
	if len(m.appendfield_sources) == 0 {
		return nil, false
	}
	return m.appendfield_sources, true
}

// ClearFieldSources clears the value of the "field_sources" field.
func (m *ExtractionRunMutation) ClearFieldSources() {
	m.field_sources = nil
	m.appendfield_sources = nil
	m.clearedFields[extractionrun.FieldFieldSources] = struct{}{}
}

// FieldSourcesCleared returns if the "field_sources" field was cleared in this mutation.
func (m *ExtractionRunMutation) FieldSourcesCleared() bool {
	_, ok := m.clearedFields[extractionrun.FieldFieldSources]
	return ok
}

// ResetFieldSources resets all changes to the "field_sources" field.
func (m *ExtractionRunMutation) ResetFieldSources() {
	m.field_sources = nil
	m.appendfield_sources = nil
	delete(m.clearedFields, extractionrun.FieldFieldSources)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractionRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractionRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractionRun entity.
// If the ExtractionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractionRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractionrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractionRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractionrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractionRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractionrun.FieldErrorMessage)
}

// SetTotalDurationMs sets the "total_duration_ms" field.
func (m *ExtractionRunMutation) SetTotalDurationMs(i int64) {
	m.total_duration_ms = &i
	m.addtotal_duration_ms = nil
}

// TotalDurationMs returns the value of the "total_duration_ms" field in the mutation.
func (m *ExtractionRunMutation) TotalDurationMs() (r int64, exists bool) {
	v := m.total_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalDurationMs returns the old "total_duration_ms" field's value of the ExtractionRun entity.
// If the ExtractionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRunMutation) OldTotalDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalDurationMs: %w", err)
	}
	return oldValue.TotalDurationMs, nil
}

// AddTotalDurationMs adds i to the "total_duration_ms" field.
func (m *ExtractionRunMutation) AddTotalDurationMs(i int64) {
	if m.addtotal_duration_ms != nil {
		*m.addtotal_duration_ms += i
	} else {
		m.addtotal_duration_ms = &i
	}
}

// AddedTotalDurationMs returns the value that was added to the "total_duration_ms" field in this mutation.
func (m *ExtractionRunMutation) AddedTotalDurationMs() (r int64, exists bool) {
	v := m.addtotal_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalDurationMs resets all changes to the "total_duration_ms" field.
func (m *ExtractionRunMutation) ResetTotalDurationMs() {
	m.total_duration_ms = nil
	m.addtotal_duration_ms = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ExtractionRunMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[extractionrun.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ExtractionRunMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ExtractionRunMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ExtractionRunMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the ExtractionRunMutation builder.
func (m *ExtractionRunMutation) Where(ps ...predicate.ExtractionRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionRun).
func (m *ExtractionRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionRunMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.document != nil {
		fields = append(fields, extractionrun.FieldDocumentID)
	}
	if m.status != nil {
		fields = append(fields, extractionrun.FieldStatus)
	}
	if m.mode != nil {
		fields = append(fields, extractionrun.FieldMode)
	}
	if m.pipeline_version != nil {
		fields = append(fields, extractionrun.FieldPipelineVersion)
	}
	if m.started_at != nil {
		fields = append(fields, extractionrun.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, extractionrun.FieldFinishedAt)
	}
	if m.final_data != nil {
		fields = append(fields, extractionrun.FieldFinalData)
	}
	if m.field_sources != nil {
		fields = append(fields, extractionrun.FieldFieldSources)
	}
	if m.error_message != nil {
		fields = append(fields, extractionrun.FieldErrorMessage)
	}
	if m.total_duration_ms != nil {
		fields = append(fields, extractionrun.FieldTotalDurationMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionrun.FieldDocumentID:
		return m.DocumentID()
	case extractionrun.FieldStatus:
		return m.Status()
	case extractionrun.FieldMode:
		return m.Mode()
	case extractionrun.FieldPipelineVersion:
		return m.PipelineVersion()
	case extractionrun.FieldStartedAt:
		return m.StartedAt()
	case extractionrun.FieldFinishedAt:
		return m.FinishedAt()
	case extractionrun.FieldFinalData:
		return m.FinalData()
	case extractionrun.FieldFieldSources:
		return m.FieldSources()
	case extractionrun.FieldErrorMessage:
		return m.ErrorMessage()
	case extractionrun.FieldTotalDurationMs:
		return m.TotalDurationMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionrun.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case extractionrun.FieldStatus:
		return m.OldStatus(ctx)
	case extractionrun.FieldMode:
		return m.OldMode(ctx)
	case extractionrun.FieldPipelineVersion:
		return m.OldPipelineVersion(ctx)
	case extractionrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case extractionrun.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case extractionrun.FieldFinalData:
		return m.OldFinalData(ctx)
	case extractionrun.FieldFieldSources:
		return m.OldFieldSources(ctx)
	case extractionrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractionrun.FieldTotalDurationMs:
		return m.OldTotalDurationMs(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionrun.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case extractionrun.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractionrun.FieldMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case extractionrun.FieldPipelineVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPipelineVersion(v)
		return nil
	case extractionrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case extractionrun.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case extractionrun.FieldFinalData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalData(v)
		return nil
	case extractionrun.FieldFieldSources:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldSources(v)
		return nil
	case extractionrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractionrun.FieldTotalDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionRunMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_duration_ms != nil {
		fields = append(fields, extractionrun.FieldTotalDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractionrun.FieldTotalDurationMs:
		return m.AddedTotalDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractionrun.FieldTotalDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionrun.FieldFinishedAt) {
		fields = append(fields, extractionrun.FieldFinishedAt)
	}
	if m.FieldCleared(extractionrun.FieldFinalData) {
		fields = append(fields, extractionrun.FieldFinalData)
	}
	if m.FieldCleared(extractionrun.FieldFieldSources) {
		fields = append(fields, extractionrun.FieldFieldSources)
	}
	if m.FieldCleared(extractionrun.FieldErrorMessage) {
		fields = append(fields, extractionrun.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionRunMutation) ClearField(name string) error {
	switch name {
	case extractionrun.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case extractionrun.FieldFinalData:
		m.ClearFinalData()
		return nil
	case extractionrun.FieldFieldSources:
		m.ClearFieldSources()
		return nil
	case extractionrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ExtractionRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionRunMutation) ResetField(name string) error {
	switch name {
	case extractionrun.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case extractionrun.FieldStatus:
		m.ResetStatus()
		return nil
	case extractionrun.FieldMode:
		m.ResetMode()
		return nil
	case extractionrun.FieldPipelineVersion:
		m.ResetPipelineVersion()
		return nil
	case extractionrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case extractionrun.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case extractionrun.FieldFinalData:
		m.ResetFinalData()
		return nil
	case extractionrun.FieldFieldSources:
		m.ResetFieldSources()
		return nil
	case extractionrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractionrun.FieldTotalDurationMs:
		m.ResetTotalDurationMs()
		return nil
	}
	return fmt.Errorf("unknown ExtractionRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, extractionrun.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractionrun.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, extractionrun.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionRunMutation) EdgeCleared(name string) bool {
	switch name {
	case extractionrun.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionRunMutation) ClearEdge(name string) error {
	switch name {
	case extractionrun.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown ExtractionRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionRunMutation) ResetEdge(name string) error {
	switch name {
	case extractionrun.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown ExtractionRun edge %s", name)
}

// ServiceRecordMutation represents an operation that mutates the ServiceRecord nodes in the graph.
type ServiceRecordMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	record_id               *string
	service_date            *string
	company                 *string
	amount                  *float64
	addamount               *float64
	vat_amount              *float64
	addvat_amount           *float64
	invoice_number          *string
	odometer_km             *int
	addodometer_km          *int
	work_descriptions       *[]string
	appendwork_descriptions []string
	source_stem             *string
	overridden              *bool
	created_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*ServiceRecord, error)
	predicates              []predicate.ServiceRecord
}

var _ ent.Mutation = (*ServiceRecordMutation)(nil)

// servicerecordOption allows management of the mutation configuration using functional options.
type servicerecordOption func(*ServiceRecordMutation)

// newServiceRecordMutation creates new mutation for the ServiceRecord entity.
func newServiceRecordMutation(c config, op Op, opts ...servicerecordOption) *ServiceRecordMutation {
	m := &ServiceRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeServiceRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withServiceRecordID sets the ID field of the mutation.
func withServiceRecordID(id uuid.UUID) servicerecordOption {
	return func(m *ServiceRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ServiceRecord
		)
		m.oldValue = func(ctx context.Context) (*ServiceRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ServiceRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withServiceRecord sets the old ServiceRecord of the mutation.
func withServiceRecord(node *ServiceRecord) servicerecordOption {
	return func(m *ServiceRecordMutation) {
		m.oldValue = func(context.Context) (*ServiceRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ServiceRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ServiceRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ServiceRecord entities.
func (m *ServiceRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ServiceRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ServiceRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ServiceRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRecordID sets the "record_id" field.
func (m *ServiceRecordMutation) SetRecordID(s string) {
	m.record_id = &s
}

// RecordID returns the value of the "record_id" field in the mutation.
func (m *ServiceRecordMutation) RecordID() (r string, exists bool) {
	v := m.record_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordID returns the old "record_id" field's value of the ServiceRecord entity.
// If the ServiceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceRecordMutation) OldRecordID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordID: %w", err)
	}
	return oldValue.RecordID, nil
}

// ResetRecordID resets all changes to the "record_id" field.
func (m *ServiceRecordMutation) ResetRecordID() {
	m.record_id = nil
}

// SetServiceDate sets the "service_date" field.
func (m *ServiceRecordMutation) SetServiceDate(s string) {
	m.service_date = &s
}

// ServiceDate returns the value of the "service_date" field in the mutation.
func (m *ServiceRecordMutation) ServiceDate() (r string, exists bool) {
	v := m.service_date
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceDate returns the old "service_date" field's value of the ServiceRecord entity.
// If the ServiceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceRecordMutation) OldServiceDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceDate: %w", err)
	}
	return oldValue.ServiceDate, nil
}

// ResetServiceDate resets all changes to the "service_date" field.
func (m *ServiceRecordMutation) ResetServiceDate() {
	m.service_date = nil
}

// SetCompany sets the "company" field.
func (m *ServiceRecordMutation) SetCompany(s string) {
	m.company = &s
}

// Company returns the value of the "company" field in the mutation.
func (m *ServiceRecordMutation) Company() (r string, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompany returns the old "company" field's value of the ServiceRecord entity.
// If the ServiceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceRecordMutation) OldCompany(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompany is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompany requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompany: %w", err)
	}
	return oldValue.Company, nil
}

// ClearCompany clears the value of the "company" field.
func (m *ServiceRecordMutation) ClearCompany() {
	m.company = nil
	m.clearedFields[servicerecord.FieldCompany] = struct{}{}
}

// CompanyCleared returns if the "company" field was cleared in this mutation.
func (m *ServiceRecordMutation) CompanyCleared() bool {
	_, ok := m.clearedFields[servicerecord.FieldCompany]
	return ok
}

// ResetCompany resets all changes to the "company" field.
func (m *ServiceRecordMutation) ResetCompany() {
	m.company = nil
	delete(m.clearedFields, servicerecord.FieldCompany)
}

// SetAmount sets the "amount" field.
func (m *ServiceRecordMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *ServiceRecordMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the ServiceRecord entity.
// If the ServiceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceRecordMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *ServiceRecordMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *ServiceRecordMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *ServiceRecordMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetVatAmount sets the "vat_amount" field.
func (m *ServiceRecordMutation) SetVatAmount(f float64) {
	m.vat_amount = &f
	m.addvat_amount = nil
}

// VatAmount returns the value of the "vat_amount" field in the mutation.
func (m *ServiceRecordMutation) VatAmount() (r float64, exists bool) {
	v := m.vat_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldVatAmount returns the old "vat_amount" field's value of the ServiceRecord entity.
// If the ServiceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceRecordMutation) OldVatAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVatAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVatAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVatAmount: %w", err)
	}
	return oldValue.VatAmount, nil
}

// AddVatAmount adds f to the "vat_amount" field.
func (m *ServiceRecordMutation) AddVatAmount(f float64) {
	if m.addvat_amount != nil {
		*m.addvat_amount += f
	} else {
		m.addvat_amount = &f
	}
}

// AddedVatAmount returns the value that was added to the "vat_amount" field in this mutation.
func (m *ServiceRecordMutation) AddedVatAmount() (r float64, exists bool) {
	v := m.addvat_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearVatAmount clears the value of the "vat_amount" field.
func (m *ServiceRecordMutation) ClearVatAmount() {
	m.vat_amount = nil
	m.addvat_amount = nil
	m.clearedFields[servicerecord.FieldVatAmount] = struct{}{}
}

// VatAmountCleared returns if the "vat_amount" field was cleared in this mutation.
func (m *ServiceRecordMutation) VatAmountCleared() bool {
	_, ok := m.clearedFields[servicerecord.FieldVatAmount]
	return ok
}

// ResetVatAmount resets all changes to the "vat_amount" field.
func (m *ServiceRecordMutation) ResetVatAmount() {
	m.vat_amount = nil
	m.addvat_amount = nil
	delete(m.clearedFields, servicerecord.FieldVatAmount)
}

// SetInvoiceNumber sets the "invoice_number" field.
func (m *ServiceRecordMutation) SetInvoiceNumber(s string) {
	m.invoice_number = &s
}

// InvoiceNumber returns the value of the "invoice_number" field in the mutation.
func (m *ServiceRecordMutation) InvoiceNumber() (r string, exists bool) {
	v := m.invoice_number
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceNumber returns the old "invoice_number" field's value of the ServiceRecord entity.
// If the ServiceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceRecordMutation) OldInvoiceNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceNumber: %w", err)
	}
	return oldValue.InvoiceNumber, nil
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (m *ServiceRecordMutation) ClearInvoiceNumber() {
	m.invoice_number = nil
	m.clearedFields[servicerecord.FieldInvoiceNumber] = struct{}{}
}

// InvoiceNumberCleared returns if the "invoice_number" field was cleared in this mutation.
func (m *ServiceRecordMutation) InvoiceNumberCleared() bool {
	_, ok := m.clearedFields[servicerecord.FieldInvoiceNumber]
	return ok
}

// ResetInvoiceNumber resets all changes to the "invoice_number" field.
func (m *ServiceRecordMutation) ResetInvoiceNumber() {
	m.invoice_number = nil
	delete(m.clearedFields, servicerecord.FieldInvoiceNumber)
}

// SetOdometerKm sets the "odometer_km" field.
func (m *ServiceRecordMutation) SetOdometerKm(i int) {
	m.odometer_km = &i
	m.addodometer_km = nil
}

// OdometerKm returns the value of the "odometer_km" field in the mutation.
func (m *ServiceRecordMutation) OdometerKm() (r int, exists bool) {
	v := m.odometer_km
	if v == nil {
		return
	}
	return *v, true
}

// OldOdometerKm returns the old "odometer_km" field's value of the ServiceRecord entity.
// If the ServiceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceRecordMutation) OldOdometerKm(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOdometerKm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOdometerKm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOdometerKm: %w", err)
	}
	return oldValue.OdometerKm, nil
}

// AddOdometerKm adds i to the "odometer_km" field.
func (m *ServiceRecordMutation) AddOdometerKm(i int) {
	if m.addodometer_km != nil {
		*m.addodometer_km += i
	} else {
		m.addodometer_km = &i
	}
}

// AddedOdometerKm returns the value that was added to the "odometer_km" field in this mutation.
func (m *ServiceRecordMutation) AddedOdometerKm() (r int, exists bool) {
	v := m.addodometer_km
	if v == nil {
		return
	}
	return *v, true
}

// ClearOdometerKm clears the value of the "odometer_km" field.
func (m *ServiceRecordMutation) ClearOdometerKm() {
	m.odometer_km = nil
	m.addodometer_km = nil
	m.clearedFields[servicerecord.FieldOdometerKm] = struct{}{}
}

// OdometerKmCleared returns if the "odometer_km" field was cleared in this mutation.
func (m *ServiceRecordMutation) OdometerKmCleared() bool {
	_, ok := m.clearedFields[servicerecord.FieldOdometerKm]
	return ok
}

// ResetOdometerKm resets all changes to the "odometer_km" field.
func (m *ServiceRecordMutation) ResetOdometerKm() {
	m.odometer_km = nil
	m.addodometer_km = nil
	delete(m.clearedFields, servicerecord.FieldOdometerKm)
}

// SetWorkDescriptions sets the "work_descriptions" field.
func (m *ServiceRecordMutation) SetWorkDescriptions(s []string) {
	m.work_descriptions = &s
	m.appendwork_descriptions = nil
}

// WorkDescriptions returns the value of the "work_descriptions" field in the mutation.
func (m *ServiceRecordMutation) WorkDescriptions() (r []string, exists bool) {
	v := m.work_descriptions
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkDescriptions returns the old "work_descriptions" field's value of the ServiceRecord entity.
// If the ServiceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceRecordMutation) OldWorkDescriptions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkDescriptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkDescriptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkDescriptions: %w", err)
	}
	return oldValue.WorkDescriptions, nil
}

// AppendWorkDescriptions adds s to the "work_descriptions" field.
func (m *ServiceRecordMutation) AppendWorkDescriptions(s []string) {
	m.appendwork_descriptions = append(m.appendwork_descriptions, s...)
}

// AppendedWorkDescriptions returns the list of values that were appended to the "work_descriptions" field in this mutation.
func (m *ServiceRecordMutation) AppendedWorkDescriptions() ([]string, bool) {
	if len(m.appendwork_descriptions) == 0 {
		return nil, false
	}
	return m.appendwork_descriptions, true
}

// ClearWorkDescriptions clears the value of the "work_descriptions" field.
func (m *ServiceRecordMutation) ClearWorkDescriptions() {
	m.work_descriptions = nil
	m.appendwork_descriptions = nil
	m.clearedFields[servicerecord.FieldWorkDescriptions] = struct{}{}
}

// WorkDescriptionsCleared returns if the "work_descriptions" field was cleared in this mutation.
func (m *ServiceRecordMutation) WorkDescriptionsCleared() bool {
	_, ok := m.clearedFields[servicerecord.FieldWorkDescriptions]
	return ok
}

// ResetWorkDescriptions resets all changes to the "work_descriptions" field.
func (m *ServiceRecordMutation) ResetWorkDescriptions() {
	m.work_descriptions = nil
	m.appendwork_descriptions = nil
	delete(m.clearedFields, servicerecord.FieldWorkDescriptions)
}

// SetSourceStem sets the "source_stem" field.
func (m *ServiceRecordMutation) SetSourceStem(s string) {
	m.source_stem = &s
}

// SourceStem returns the value of the "source_stem" field in the mutation.
func (m *ServiceRecordMutation) SourceStem() (r string, exists bool) {
	v := m.source_stem
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceStem returns the old "source_stem" field's value of the ServiceRecord entity.
// If the ServiceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceRecordMutation) OldSourceStem(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceStem is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceStem requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceStem: %w", err)
	}
	return oldValue.SourceStem, nil
}

// ResetSourceStem resets all changes to the "source_stem" field.
func (m *ServiceRecordMutation) ResetSourceStem() {
	m.source_stem = nil
}

// SetOverridden sets the "overridden" field.
func (m *ServiceRecordMutation) SetOverridden(b bool) {
	m.overridden = &b
}

// Overridden returns the value of the "overridden" field in the mutation.
func (m *ServiceRecordMutation) Overridden() (r bool, exists bool) {
	v := m.overridden
	if v == nil {
		return
	}
	return *v, true
}

// OldOverridden returns the old "overridden" field's value of the ServiceRecord entity.
// If the ServiceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceRecordMutation) OldOverridden(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverridden is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverridden requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverridden: %w", err)
	}
	return oldValue.Overridden, nil
}

// ResetOverridden resets all changes to the "overridden" field.
func (m *ServiceRecordMutation) ResetOverridden() {
	m.overridden = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ServiceRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ServiceRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ServiceRecord entity.
// If the ServiceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServiceRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ServiceRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ServiceRecordMutation builder.
func (m *ServiceRecordMutation) Where(ps ...predicate.ServiceRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ServiceRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ServiceRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ServiceRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ServiceRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ServiceRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ServiceRecord).
func (m *ServiceRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ServiceRecordMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.record_id != nil {
		fields = append(fields, servicerecord.FieldRecordID)
	}
	if m.service_date != nil {
		fields = append(fields, servicerecord.FieldServiceDate)
	}
	if m.company != nil {
		fields = append(fields, servicerecord.FieldCompany)
	}
	if m.amount != nil {
		fields = append(fields, servicerecord.FieldAmount)
	}
	if m.vat_amount != nil {
		fields = append(fields, servicerecord.FieldVatAmount)
	}
	if m.invoice_number != nil {
		fields = append(fields, servicerecord.FieldInvoiceNumber)
	}
	if m.odometer_km != nil {
		fields = append(fields, servicerecord.FieldOdometerKm)
	}
	if m.work_descriptions != nil {
		fields = append(fields, servicerecord.FieldWorkDescriptions)
	}
	if m.source_stem != nil {
		fields = append(fields, servicerecord.FieldSourceStem)
	}
	if m.overridden != nil {
		fields = append(fields, servicerecord.FieldOverridden)
	}
	if m.created_at != nil {
		fields = append(fields, servicerecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ServiceRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case servicerecord.FieldRecordID:
		return m.RecordID()
	case servicerecord.FieldServiceDate:
		return m.ServiceDate()
	case servicerecord.FieldCompany:
		return m.Company()
	case servicerecord.FieldAmount:
		return m.Amount()
	case servicerecord.FieldVatAmount:
		return m.VatAmount()
	case servicerecord.FieldInvoiceNumber:
		return m.InvoiceNumber()
	case servicerecord.FieldOdometerKm:
		return m.OdometerKm()
	case servicerecord.FieldWorkDescriptions:
		return m.WorkDescriptions()
	case servicerecord.FieldSourceStem:
		return m.SourceStem()
	case servicerecord.FieldOverridden:
		return m.Overridden()
	case servicerecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ServiceRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case servicerecord.FieldRecordID:
		return m.OldRecordID(ctx)
	case servicerecord.FieldServiceDate:
		return m.OldServiceDate(ctx)
	case servicerecord.FieldCompany:
		return m.OldCompany(ctx)
	case servicerecord.FieldAmount:
		return m.OldAmount(ctx)
	case servicerecord.FieldVatAmount:
		return m.OldVatAmount(ctx)
	case servicerecord.FieldInvoiceNumber:
		return m.OldInvoiceNumber(ctx)
	case servicerecord.FieldOdometerKm:
		return m.OldOdometerKm(ctx)
	case servicerecord.FieldWorkDescriptions:
		return m.OldWorkDescriptions(ctx)
	case servicerecord.FieldSourceStem:
		return m.OldSourceStem(ctx)
	case servicerecord.FieldOverridden:
		return m.OldOverridden(ctx)
	case servicerecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ServiceRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServiceRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case servicerecord.FieldRecordID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordID(v)
		return nil
	case servicerecord.FieldServiceDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceDate(v)
		return nil
	case servicerecord.FieldCompany:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompany(v)
		return nil
	case servicerecord.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case servicerecord.FieldVatAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVatAmount(v)
		return nil
	case servicerecord.FieldInvoiceNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceNumber(v)
		return nil
	case servicerecord.FieldOdometerKm:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOdometerKm(v)
		return nil
	case servicerecord.FieldWorkDescriptions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkDescriptions(v)
		return nil
	case servicerecord.FieldSourceStem:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceStem(v)
		return nil
	case servicerecord.FieldOverridden:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverridden(v)
		return nil
	case servicerecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ServiceRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ServiceRecordMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, servicerecord.FieldAmount)
	}
	if m.addvat_amount != nil {
		fields = append(fields, servicerecord.FieldVatAmount)
	}
	if m.addodometer_km != nil {
		fields = append(fields, servicerecord.FieldOdometerKm)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ServiceRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case servicerecord.FieldAmount:
		return m.AddedAmount()
	case servicerecord.FieldVatAmount:
		return m.AddedVatAmount()
	case servicerecord.FieldOdometerKm:
		return m.AddedOdometerKm()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServiceRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case servicerecord.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	case servicerecord.FieldVatAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVatAmount(v)
		return nil
	case servicerecord.FieldOdometerKm:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOdometerKm(v)
		return nil
	}
	return fmt.Errorf("unknown ServiceRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ServiceRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(servicerecord.FieldCompany) {
		fields = append(fields, servicerecord.FieldCompany)
	}
	if m.FieldCleared(servicerecord.FieldVatAmount) {
		fields = append(fields, servicerecord.FieldVatAmount)
	}
	if m.FieldCleared(servicerecord.FieldInvoiceNumber) {
		fields = append(fields, servicerecord.FieldInvoiceNumber)
	}
	if m.FieldCleared(servicerecord.FieldOdometerKm) {
		fields = append(fields, servicerecord.FieldOdometerKm)
	}
	if m.FieldCleared(servicerecord.FieldWorkDescriptions) {
		fields = append(fields, servicerecord.FieldWorkDescriptions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ServiceRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ServiceRecordMutation) ClearField(name string) error {
	switch name {
	case servicerecord.FieldCompany:
		m.ClearCompany()
		return nil
	case servicerecord.FieldVatAmount:
		m.ClearVatAmount()
		return nil
	case servicerecord.FieldInvoiceNumber:
		m.ClearInvoiceNumber()
		return nil
	case servicerecord.FieldOdometerKm:
		m.ClearOdometerKm()
		return nil
	case servicerecord.FieldWorkDescriptions:
		m.ClearWorkDescriptions()
		return nil
	}
	return fmt.Errorf("unknown ServiceRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ServiceRecordMutation) ResetField(name string) error {
	switch name {
	case servicerecord.FieldRecordID:
		m.ResetRecordID()
		return nil
	case servicerecord.FieldServiceDate:
		m.ResetServiceDate()
		return nil
	case servicerecord.FieldCompany:
		m.ResetCompany()
		return nil
	case servicerecord.FieldAmount:
		m.ResetAmount()
		return nil
	case servicerecord.FieldVatAmount:
		m.ResetVatAmount()
		return nil
	case servicerecord.FieldInvoiceNumber:
		m.ResetInvoiceNumber()
		return nil
	case servicerecord.FieldOdometerKm:
		m.ResetOdometerKm()
		return nil
	case servicerecord.FieldWorkDescriptions:
		m.ResetWorkDescriptions()
		return nil
	case servicerecord.FieldSourceStem:
		m.ResetSourceStem()
		return nil
	case servicerecord.FieldOverridden:
		m.ResetOverridden()
		return nil
	case servicerecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ServiceRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ServiceRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ServiceRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ServiceRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ServiceRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ServiceRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ServiceRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ServiceRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ServiceRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ServiceRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ServiceRecord edge %s", name)
}
