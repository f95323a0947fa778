package extract

import (
	"context"
	"time"
)

// TextExtractor is the first pipeline stage: file -> text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text     string
	Pages    int
	Method   string // "pdf-ocr" | "image-ocr"
	Language string
	Duration time.Duration
	Warnings []string
}
