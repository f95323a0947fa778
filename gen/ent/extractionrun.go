// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tkarvonen/huoltokirja/gen/ent/document"
	"github.com/tkarvonen/huoltokirja/gen/ent/extractionrun"
)

// ExtractionRun is the model entity for the ExtractionRun schema.
type ExtractionRun struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Mode holds the value of the "mode" field.
	Mode string `json:"mode,omitempty"`
	// PipelineVersion holds the value of the "pipeline_version" field.
	PipelineVersion string `json:"pipeline_version,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// FinalData holds the value of the "final_data" field.
	FinalData json.RawMessage `json:"final_data,omitempty"`
	// FieldSources holds the value of the "field_sources" field.
	FieldSources json.RawMessage `json:"field_sources,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// TotalDurationMs holds the value of the "total_duration_ms" field.
	TotalDurationMs int64 `json:"total_duration_ms,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractionRunQuery when eager-loading is set.
	Edges        ExtractionRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractionRunEdges holds the relations/edges for other nodes in the graph.
type ExtractionRunEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractionRunEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractionRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractionrun.FieldFinalData, extractionrun.FieldFieldSources:
			values[i] = new([]byte)
		case extractionrun.FieldTotalDurationMs:
			values[i] = new(sql.NullInt64)
		case extractionrun.FieldStatus, extractionrun.FieldMode, extractionrun.FieldPipelineVersion, extractionrun.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case extractionrun.FieldStartedAt, extractionrun.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case extractionrun.FieldID, extractionrun.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractionRun fields.
func (_m *ExtractionRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractionrun.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractionrun.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case extractionrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case extractionrun.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = value.String
			}
		case extractionrun.FieldPipelineVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pipeline_version", values[i])
			} else if value.Valid {
				_m.PipelineVersion = value.String
			}
		case extractionrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case extractionrun.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case extractionrun.FieldFinalData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field final_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FinalData); err != nil {
					return fmt.Errorf("unmarshal field final_data: %w", err)
				}
			}
		case extractionrun.FieldFieldSources:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field field_sources", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FieldSources); err != nil {
					return fmt.Errorf("unmarshal field field_sources: %w", err)
				}
			}
		case extractionrun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case extractionrun.FieldTotalDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_duration_ms", values[i])
			} else if value.Valid {
				_m.TotalDurationMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractionRun.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractionRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the ExtractionRun entity.
func (_m *ExtractionRun) QueryDocument() *DocumentQuery {
	return NewExtractionRunClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this ExtractionRun.
// Note that you need to call ExtractionRun.Unwrap() before calling this method if this ExtractionRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractionRun) Update() *ExtractionRunUpdateOne {
	return NewExtractionRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractionRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractionRun) Unwrap() *ExtractionRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractionRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractionRun) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractionRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(_m.Mode)
	builder.WriteString(", ")
	builder.WriteString("pipeline_version=")
	builder.WriteString(_m.PipelineVersion)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("final_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinalData))
	builder.WriteString(", ")
	builder.WriteString("field_sources=")
	builder.WriteString(fmt.Sprintf("%v", _m.FieldSources))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("total_duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalDurationMs))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractionRuns is a parsable slice of ExtractionRun.
type ExtractionRuns []*ExtractionRun
