package entity

// ProcessingStep records one pipeline stage's execution. Steps are append-only
// within a run and never mutated after creation.
type ProcessingStep struct {
	StepName        string         `json:"step_name"`
	StepNumber      int            `json:"step_number"`
	Timestamp       string         `json:"timestamp"`
	Method          string         `json:"method"`
	Config          map[string]any `json:"config,omitempty"`
	ExtractedFields FieldSet       `json:"extracted_fields,omitempty"`
	Output          map[string]any `json:"output,omitempty"`
	MissingFields   []string       `json:"missing_fields,omitempty"`
	DurationMS      int64          `json:"duration_ms"`
	Error           string         `json:"error,omitempty"`
}

// Metadata describes the run that produced an ExtractionResult.
type Metadata struct {
	SourceFile      string            `json:"source_file"`
	FileHash        string            `json:"file_hash"`
	ProcessedAt     string            `json:"processed_at"`
	PipelineVersion string            `json:"pipeline_version"`
	FieldSources    map[string]string `json:"field_sources,omitempty"`
	TotalDurationMS int64             `json:"total_duration_ms"`
	Error           string            `json:"error,omitempty"`
}

// ExtractionResult is the canonical per-document extraction artifact
// (data.json). Created once per pipeline run; reruns create a new artifact
// rather than patching the old one.
type ExtractionResult struct {
	FinalData       FieldSet         `json:"final_data"`
	ProcessingSteps []ProcessingStep `json:"processing_steps"`
	Metadata        Metadata         `json:"metadata"`
}
