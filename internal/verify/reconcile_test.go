package verify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkarvonen/huoltokirja/constants"
	"github.com/tkarvonen/huoltokirja/internal/entity"
)

func TestReconcile_NoOverride(t *testing.T) {
	gt := entity.FieldSet{"date": "2021-03-15", "amount": 203.75}

	rec := Reconcile(gt, nil)

	assert.Equal(t, gt, rec.GroundTruth)
	assert.False(t, rec.OverrideInfo.HasOverrides)
	assert.Empty(t, rec.OverrideInfo.OverriddenFields)
	assert.Nil(t, rec.OverrideInfo.Reason)
}

func TestReconcile_AppliesAndAudits(t *testing.T) {
	gt := entity.FieldSet{"date": "2021-03-15", "amount": 203.75}
	reason := "receipt shows a corrected total"
	ov := &entity.OverrideRecord{
		GroundTruth: entity.FieldSet{"amount": 210.00, "invoice_number": "12345678"},
		Reason:      &reason,
	}

	rec := Reconcile(gt, ov)

	assert.Equal(t, 210.00, rec.GroundTruth["amount"])
	assert.Equal(t, "12345678", rec.GroundTruth["invoice_number"])
	assert.Equal(t, "2021-03-15", rec.GroundTruth["date"])

	assert.True(t, rec.OverrideInfo.HasOverrides)
	require.Len(t, rec.OverrideInfo.OverriddenFields, 2)
	assert.Equal(t, entity.OverrideChange{Original: 203.75, Override: 210.00},
		rec.OverrideInfo.OverriddenFields["amount"])
	// A field absent from ground truth is audited with a nil original.
	assert.Equal(t, entity.OverrideChange{Original: nil, Override: "12345678"},
		rec.OverrideInfo.OverriddenFields["invoice_number"])
	require.NotNil(t, rec.OverrideInfo.Reason)
	assert.Equal(t, reason, *rec.OverrideInfo.Reason)
}

func TestReconcile_NoOpOverrideNotAudited(t *testing.T) {
	gt := entity.FieldSet{"amount": 203.75}
	reason := "double checked"
	ov := &entity.OverrideRecord{
		GroundTruth: entity.FieldSet{"amount": 203.75},
		Reason:      &reason,
	}

	rec := Reconcile(gt, ov)

	assert.False(t, rec.OverrideInfo.HasOverrides)
	assert.Empty(t, rec.OverrideInfo.OverriddenFields)
	// The reason travels even when nothing changed.
	require.NotNil(t, rec.OverrideInfo.Reason)
	assert.Equal(t, reason, *rec.OverrideInfo.Reason)
}

func TestReconcile_PureInputsUntouched(t *testing.T) {
	gt := entity.FieldSet{"amount": 203.75}
	ov := &entity.OverrideRecord{GroundTruth: entity.FieldSet{"amount": 300.0}}

	first := Reconcile(gt, ov)
	second := Reconcile(gt, ov)

	assert.Equal(t, 203.75, gt["amount"])
	assert.Equal(t, first, second)
}

func TestLoadReconciled(t *testing.T) {
	dir := t.TempDir()
	docDir := filepath.Join(dir, "huolto_2021")
	require.NoError(t, os.MkdirAll(docDir, 0o755))

	verified := `{
		"ground_truth": {"date": "2021-03-15", "amount": 203.75, "company": "Veho Autotalot Oy"},
		"expected_extraction": {
			"parsing": {"required_fields": ["date", "amount"], "warning_if_missing": ["vat_amount"]}
		}
	}`
	override := `{"ground_truth": {"amount": 210.0}, "reason": "handwritten correction"}`
	require.NoError(t, os.WriteFile(filepath.Join(docDir, "verified.json"), []byte(verified), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(docDir, "override.json"), []byte(override), 0o644))

	rec, err := LoadReconciled(dir, "huolto_2021")
	require.NoError(t, err)
	assert.Equal(t, 210.0, rec.GroundTruth["amount"])
	assert.True(t, rec.OverrideInfo.HasOverrides)

	stems, err := ListRecords(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"huolto_2021"}, stems)

	all, err := LoadAllReconciled(dir)
	require.NoError(t, err)
	require.Contains(t, all, "huolto_2021")
}

func TestLoadVerified_SchemaRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	docDir := filepath.Join(dir, "bad")
	require.NoError(t, os.MkdirAll(docDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(docDir, "verified.json"),
		[]byte(`{"ground_truth": {}, "extra": true}`), 0o644))

	_, err := LoadVerified(dir, "bad")
	assert.Error(t, err)
}

func TestGradeExtraction(t *testing.T) {
	rec := entity.VerifiedRecord{
		GroundTruth: entity.FieldSet{"date": "2021-03-15"},
		ExpectedExtraction: map[string]entity.StepExpectation{
			constants.StepParsing: {
				RequiredFields:   []string{"date", "amount"},
				WarningIfMissing: []string{"vat_amount"},
				OptionalFields:   []string{"odometer_km"},
			},
			constants.StepFinalData: {
				RequiredFields: []string{"date"},
			},
		},
	}
	res := &entity.ExtractionResult{
		FinalData: entity.FieldSet{"date": "2021-03-15"},
		ProcessingSteps: []entity.ProcessingStep{{
			StepName:        constants.StepParsing,
			ExtractedFields: entity.FieldSet{"date": "2021-03-15"},
		}},
	}

	report := GradeExtraction(rec, res)
	assert.False(t, report.OK())
	assert.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], `"amount"`)
	assert.Len(t, report.Warnings, 1)

	report = GradeExtraction(entity.VerifiedRecord{
		ExpectedExtraction: map[string]entity.StepExpectation{"nope": {}},
	}, res)
	assert.False(t, report.OK())
}
