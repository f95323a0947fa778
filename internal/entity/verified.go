package entity

// StepExpectation configures how one extraction step is graded against ground
// truth: required fields fail validation when missing, warning fields only
// warn, optional fields are informational.
type StepExpectation struct {
	RequiredFields   []string `json:"required_fields,omitempty"`
	WarningIfMissing []string `json:"warning_if_missing,omitempty"`
	OptionalFields   []string `json:"optional_fields,omitempty"`
}

// VerifiedRecord is the human-authored verified.json: correct field values for
// one document plus per-step validation expectations. Independent of any
// extraction run.
type VerifiedRecord struct {
	GroundTruth        FieldSet                   `json:"ground_truth"`
	ExpectedExtraction map[string]StepExpectation `json:"expected_extraction,omitempty"`
}

// OverrideRecord is an optional, sparse override.json layered on top of a
// VerifiedRecord. Fields reference ground-truth keys by name.
type OverrideRecord struct {
	GroundTruth FieldSet `json:"ground_truth"`
	Reason      *string  `json:"reason,omitempty"`
}

// OverrideChange records one audited field correction.
type OverrideChange struct {
	Original any `json:"original"`
	Override any `json:"override"`
}

// OverrideInfo is the audit block attached to every reconciled record. With no
// override present it is the explicit "no overrides" marker.
type OverrideInfo struct {
	HasOverrides     bool                      `json:"has_overrides"`
	OverriddenFields map[string]OverrideChange `json:"overridden_fields"`
	Reason           *string                   `json:"reason"`
}

// ReconciledRecord merges ground truth with any override: final field values
// plus the audit trail of what was corrected.
type ReconciledRecord struct {
	GroundTruth  FieldSet     `json:"ground_truth"`
	OverrideInfo OverrideInfo `json:"override_info"`
}
