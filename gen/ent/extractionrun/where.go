// Code generated by ent, DO NOT EDIT.

package extractionrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/tkarvonen/huoltokirja/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldDocumentID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldStatus, v))
}

// Mode applies equality check predicate on the "mode" field. It's identical to ModeEQ.
func Mode(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldMode, v))
}

// PipelineVersion applies equality check predicate on the "pipeline_version" field. It's identical to PipelineVersionEQ.
func PipelineVersion(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldPipelineVersion, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldFinishedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldErrorMessage, v))
}

// TotalDurationMs applies equality check predicate on the "total_duration_ms" field. It's identical to TotalDurationMsEQ.
func TotalDurationMs(v int64) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldTotalDurationMs, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotIn(FieldDocumentID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldContainsFold(FieldStatus, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotIn(FieldMode, vs...))
}

// ModeGT applies the GT predicate on the "mode" field.
func ModeGT(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGT(FieldMode, v))
}

// ModeGTE applies the GTE predicate on the "mode" field.
func ModeGTE(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGTE(FieldMode, v))
}

// ModeLT applies the LT predicate on the "mode" field.
func ModeLT(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLT(FieldMode, v))
}

// ModeLTE applies the LTE predicate on the "mode" field.
func ModeLTE(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLTE(FieldMode, v))
}

// ModeContains applies the Contains predicate on the "mode" field.
func ModeContains(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldContains(FieldMode, v))
}

// ModeHasPrefix applies the HasPrefix predicate on the "mode" field.
func ModeHasPrefix(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldHasPrefix(FieldMode, v))
}

// ModeHasSuffix applies the HasSuffix predicate on the "mode" field.
func ModeHasSuffix(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldHasSuffix(FieldMode, v))
}

// ModeEqualFold applies the EqualFold predicate on the "mode" field.
func ModeEqualFold(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEqualFold(FieldMode, v))
}

// ModeContainsFold applies the ContainsFold predicate on the "mode" field.
func ModeContainsFold(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldContainsFold(FieldMode, v))
}

// PipelineVersionEQ applies the EQ predicate on the "pipeline_version" field.
func PipelineVersionEQ(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldPipelineVersion, v))
}

// PipelineVersionNEQ applies the NEQ predicate on the "pipeline_version" field.
func PipelineVersionNEQ(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNEQ(FieldPipelineVersion, v))
}

// PipelineVersionIn applies the In predicate on the "pipeline_version" field.
func PipelineVersionIn(vs ...string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIn(FieldPipelineVersion, vs...))
}

// PipelineVersionNotIn applies the NotIn predicate on the "pipeline_version" field.
func PipelineVersionNotIn(vs ...string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotIn(FieldPipelineVersion, vs...))
}

// PipelineVersionGT applies the GT predicate on the "pipeline_version" field.
func PipelineVersionGT(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGT(FieldPipelineVersion, v))
}

// PipelineVersionGTE applies the GTE predicate on the "pipeline_version" field.
func PipelineVersionGTE(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGTE(FieldPipelineVersion, v))
}

// PipelineVersionLT applies the LT predicate on the "pipeline_version" field.
func PipelineVersionLT(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLT(FieldPipelineVersion, v))
}

// PipelineVersionLTE applies the LTE predicate on the "pipeline_version" field.
func PipelineVersionLTE(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLTE(FieldPipelineVersion, v))
}

// PipelineVersionContains applies the Contains predicate on the "pipeline_version" field.
func PipelineVersionContains(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldContains(FieldPipelineVersion, v))
}

// PipelineVersionHasPrefix applies the HasPrefix predicate on the "pipeline_version" field.
func PipelineVersionHasPrefix(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldHasPrefix(FieldPipelineVersion, v))
}

// PipelineVersionHasSuffix applies the HasSuffix predicate on the "pipeline_version" field.
func PipelineVersionHasSuffix(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldHasSuffix(FieldPipelineVersion, v))
}

// PipelineVersionEqualFold applies the EqualFold predicate on the "pipeline_version" field.
func PipelineVersionEqualFold(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEqualFold(FieldPipelineVersion, v))
}

// PipelineVersionContainsFold applies the ContainsFold predicate on the "pipeline_version" field.
func PipelineVersionContainsFold(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldContainsFold(FieldPipelineVersion, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotNull(FieldFinishedAt))
}

// FinalDataIsNil applies the IsNil predicate on the "final_data" field.
func FinalDataIsNil() predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIsNull(FieldFinalData))
}

// FinalDataNotNil applies the NotNil predicate on the "final_data" field.
func FinalDataNotNil() predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotNull(FieldFinalData))
}

// FieldSourcesIsNil applies the IsNil predicate on the "field_sources" field.
func FieldSourcesIsNil() predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIsNull(FieldFieldSources))
}

// FieldSourcesNotNil applies the NotNil predicate on the "field_sources" field.
func FieldSourcesNotNil() predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotNull(FieldFieldSources))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// TotalDurationMsEQ applies the EQ predicate on the "total_duration_ms" field.
func TotalDurationMsEQ(v int64) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldEQ(FieldTotalDurationMs, v))
}

// TotalDurationMsNEQ applies the NEQ predicate on the "total_duration_ms" field.
func TotalDurationMsNEQ(v int64) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNEQ(FieldTotalDurationMs, v))
}

// TotalDurationMsIn applies the In predicate on the "total_duration_ms" field.
func TotalDurationMsIn(vs ...int64) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldIn(FieldTotalDurationMs, vs...))
}

// TotalDurationMsNotIn applies the NotIn predicate on the "total_duration_ms" field.
func TotalDurationMsNotIn(vs ...int64) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldNotIn(FieldTotalDurationMs, vs...))
}

// TotalDurationMsGT applies the GT predicate on the "total_duration_ms" field.
func TotalDurationMsGT(v int64) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGT(FieldTotalDurationMs, v))
}

// TotalDurationMsGTE applies the GTE predicate on the "total_duration_ms" field.
func TotalDurationMsGTE(v int64) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldGTE(FieldTotalDurationMs, v))
}

// TotalDurationMsLT applies the LT predicate on the "total_duration_ms" field.
func TotalDurationMsLT(v int64) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLT(FieldTotalDurationMs, v))
}

// TotalDurationMsLTE applies the LTE predicate on the "total_duration_ms" field.
func TotalDurationMsLTE(v int64) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.FieldLTE(FieldTotalDurationMs, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.ExtractionRun {
	return predicate.ExtractionRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.ExtractionRun {
	return predicate.ExtractionRun(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractionRun) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractionRun) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractionRun) predicate.ExtractionRun {
	return predicate.ExtractionRun(sql.NotPredicates(p))
}
