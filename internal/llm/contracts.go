package llm

import (
	"context"

	"github.com/tkarvonen/huoltokirja/internal/entity"
)

// ExtractRequest carries the raw OCR text plus the fields the pattern stage
// failed to find. The fallback is a best-effort supplement, never primary.
type ExtractRequest struct {
	OCRText       string
	MissingFields []string
	FilenameHint  string
}

// FieldExtractor is the text-to-structured-fields capability the pipeline
// depends on. Implementations return the sanitized field set, the raw model
// JSON for the step record, and an error on transport/schema failures.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, req ExtractRequest) (entity.FieldSet, []byte, error)
}
