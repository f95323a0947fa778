// Code generated by ent, DO NOT EDIT.

package extractionrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractionrun type in the database.
	Label = "extraction_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldPipelineVersion holds the string denoting the pipeline_version field in the database.
	FieldPipelineVersion = "pipeline_version"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldFinalData holds the string denoting the final_data field in the database.
	FieldFinalData = "final_data"
	// FieldFieldSources holds the string denoting the field_sources field in the database.
	FieldFieldSources = "field_sources"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldTotalDurationMs holds the string denoting the total_duration_ms field in the database.
	FieldTotalDurationMs = "total_duration_ms"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// Table holds the table name of the extractionrun in the database.
	Table = "extraction_runs"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "extraction_runs"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
)

// Columns holds all SQL columns for extractionrun fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldStatus,
	FieldMode,
	FieldPipelineVersion,
	FieldStartedAt,
	FieldFinishedAt,
	FieldFinalData,
	FieldFieldSources,
	FieldErrorMessage,
	FieldTotalDurationMs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	ModeValidator func(string) error
	// PipelineVersionValidator is a validator for the "pipeline_version" field. It is called by the builders before save.
	PipelineVersionValidator func(string) error
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultTotalDurationMs holds the default value on creation for the "total_duration_ms" field.
	DefaultTotalDurationMs int64
	// TotalDurationMsValidator is a validator for the "total_duration_ms" field. It is called by the builders before save.
	TotalDurationMsValidator func(int64) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractionRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByPipelineVersion orders the results by the pipeline_version field.
func ByPipelineVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPipelineVersion, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByTotalDurationMs orders the results by the total_duration_ms field.
func ByTotalDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalDurationMs, opts...).ToFunc()
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
	)
}
