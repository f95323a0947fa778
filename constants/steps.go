package constants

// PipelineMode selects which stages a run executes.
type PipelineMode string

const (
	ModeOCROnly      PipelineMode = "ocr_only"
	ModePatternOnly  PipelineMode = "pattern_only"
	ModeLLMOnly      PipelineMode = "llm_only"
	ModeFullPipeline PipelineMode = "full_pipeline"
)

// PipelineModes holds the allowed values for the -mode flag.
var PipelineModes = []PipelineMode{ModeOCROnly, ModePatternOnly, ModeLLMOnly, ModeFullPipeline}

// PipelineModeValues returns the modes as plain strings for enum validation.
func PipelineModeValues() []string {
	out := make([]string, len(PipelineModes))
	for i, m := range PipelineModes {
		out[i] = string(m)
	}
	return out
}

// ParsePipelineMode maps a flag value to a PipelineMode.
func ParsePipelineMode(s string) (PipelineMode, bool) {
	for _, m := range PipelineModes {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// Step names as recorded in processing_steps and referenced by
// expected_extraction in verified.json.
const (
	StepOCR     = "ocr"
	StepParsing = "parsing"
	StepLLM     = "llm_extraction"

	// StepFinalData is not an executed step; it names the merged record in
	// expected_extraction configs.
	StepFinalData = "final_data"
)

// Method identifiers recorded per step.
const (
	MethodTesseract       = "tesseract"
	MethodPatternMatching = "pattern_matching"
)

// PipelineVersion is stamped into artifact metadata.
const PipelineVersion = "1.0.0"
