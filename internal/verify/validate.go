package verify

import (
	"fmt"

	"github.com/tkarvonen/huoltokirja/constants"
	"github.com/tkarvonen/huoltokirja/internal/entity"
	"github.com/tkarvonen/huoltokirja/internal/llm"
)

var stringArraySchema = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string"},
}

// verifiedSchema constrains the shape of verified.json; field values inside
// ground_truth stay free-form on purpose, reviewers record what the receipt
// actually says.
var verifiedSchema = map[string]any{
	"type":                 "object",
	"required":             []any{"ground_truth"},
	"additionalProperties": false,
	"properties": map[string]any{
		"ground_truth": map[string]any{"type": "object"},
		"expected_extraction": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"required_fields":    stringArraySchema,
					"warning_if_missing": stringArraySchema,
					"optional_fields":    stringArraySchema,
				},
			},
		},
	},
}

// ValidateVerifiedJSON checks a raw verified.json against the record schema.
func ValidateVerifiedJSON(raw []byte) error {
	return llm.ValidateJSONAgainstSchema(verifiedSchema, raw)
}

// ValidationReport grades one extraction run against the expectations in a
// verified record.
type ValidationReport struct {
	Errors   []string
	Warnings []string
}

func (r ValidationReport) OK() bool { return len(r.Errors) == 0 }

// GradeExtraction checks each expected_extraction entry against the step (or
// final data) it names. Missing required fields are errors, missing warning
// fields only warn, optional fields are never checked.
func GradeExtraction(rec entity.VerifiedRecord, res *entity.ExtractionResult) ValidationReport {
	var report ValidationReport
	for stepName, exp := range rec.ExpectedExtraction {
		fields, ok := stepFields(stepName, res)
		if !ok {
			report.Errors = append(report.Errors, fmt.Sprintf("step %q not present in extraction result", stepName))
			continue
		}
		for _, f := range exp.RequiredFields {
			if !fields.Has(f) {
				report.Errors = append(report.Errors, fmt.Sprintf("step %q: required field %q missing", stepName, f))
			}
		}
		for _, f := range exp.WarningIfMissing {
			if !fields.Has(f) {
				report.Warnings = append(report.Warnings, fmt.Sprintf("step %q: field %q missing", stepName, f))
			}
		}
	}
	return report
}

func stepFields(stepName string, res *entity.ExtractionResult) (entity.FieldSet, bool) {
	if stepName == constants.StepFinalData {
		return res.FinalData, true
	}
	for i := range res.ProcessingSteps {
		if res.ProcessingSteps[i].StepName == stepName {
			return res.ProcessingSteps[i].ExtractedFields, true
		}
	}
	return nil, false
}
