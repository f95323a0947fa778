package processor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tkarvonen/huoltokirja/constants"
	"github.com/tkarvonen/huoltokirja/internal/common"
	"github.com/tkarvonen/huoltokirja/internal/entity"
	"github.com/tkarvonen/huoltokirja/internal/extract"
	"github.com/tkarvonen/huoltokirja/internal/llm"
	"github.com/tkarvonen/huoltokirja/internal/parser"
)

// RunIndex records finished runs in the receipt index. Optional: a nil index
// means artifact-only operation.
type RunIndex interface {
	RecordRun(ctx context.Context, doc entity.Document, res *entity.ExtractionResult, mode constants.PipelineMode, status constants.RunStatus) error
}

// RunOptions control a single document run.
type RunOptions struct {
	Mode  constants.PipelineMode
	Force bool // reprocess even when an artifact already exists
}

// Processor coordinates OCR, pattern parsing and the LLM fallback, merges the
// stage outputs and persists the per-document artifact.
type Processor struct {
	Logger  *slog.Logger
	OCR     extract.TextExtractor
	Parser  *parser.Parser
	Vendors *parser.VendorExtractor
	LLM     llm.FieldExtractor
	Store   *ArtifactStore
	Index   RunIndex
}

func NewProcessor(
	logger *slog.Logger,
	ocr extract.TextExtractor,
	p *parser.Parser,
	vendors *parser.VendorExtractor,
	fallback llm.FieldExtractor,
	store *ArtifactStore,
	index RunIndex,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Logger:  logger,
		OCR:     ocr,
		Parser:  p,
		Vendors: vendors,
		LLM:     fallback,
		Store:   store,
		Index:   index,
	}
}

// ProcessDocument runs the selected stages for one source file. When an
// artifact already exists and Force is unset, the stored result is returned
// untouched. Reruns with Force replace the whole artifact rather than patching
// it in place.
func (p *Processor) ProcessDocument(ctx context.Context, path string, opts RunOptions) (*entity.ExtractionResult, error) {
	if opts.Mode == "" {
		opts.Mode = constants.ModeFullPipeline
	}
	filename := filepath.Base(path)

	if !opts.Force && p.Store.Exists(filename) {
		p.Logger.Info("processor.skip.exists", "file", filename)
		return p.Store.LoadResult(filename)
	}

	start := time.Now()
	hash, err := hashFile(path)
	if err != nil {
		return nil, common.WrapError(err, fmt.Sprintf("hash %s", path))
	}
	doc := entity.Document{
		Filename:   filename,
		SourcePath: path,
		FileHash:   hash,
	}

	res := &entity.ExtractionResult{
		FinalData: entity.FieldSet{},
		Metadata: entity.Metadata{
			SourceFile:      filename,
			FileHash:        hash,
			ProcessedAt:     time.Now().UTC().Format(time.RFC3339),
			PipelineVersion: constants.PipelineVersion,
			FieldSources:    map[string]string{},
		},
	}
	// Stage 1: OCR. Runs in every mode; without text there is nothing to do.
	text, ocrErr := p.runOCRStep(ctx, path, &doc, res)
	if ocrErr != nil {
		res.Metadata.Error = ocrErr.Error()
		p.finish(ctx, doc, res, opts.Mode, constants.RunStatusFailed, start)
		return res, ocrErr
	}

	status := constants.RunStatusOCRDone
	if opts.Mode != constants.ModeOCROnly {
		// Stage 2: pattern parsing.
		if opts.Mode != constants.ModeLLMOnly {
			p.runParsingStep(text, res)
			status = constants.RunStatusPatternDone
		}

		// Stage 3: LLM fallback. The call is expensive, so a full run makes
		// it only while a required field is still missing; once triggered it
		// asks for every gap. Pattern values are never overwritten.
		if p.LLM != nil && needsFallback(res.FinalData, opts.Mode) {
			p.runLLMStep(ctx, text, filename, missingForLLM(res.FinalData, opts.Mode), res)
			status = constants.RunStatusFallbackDone
		}
		if opts.Mode == constants.ModeFullPipeline {
			status = constants.RunStatusMerged
		}
	}

	p.finish(ctx, doc, res, opts.Mode, status, start)

	p.Logger.Info("processor.document.ok",
		"file", filename,
		"mode", opts.Mode,
		"fields", len(res.FinalData),
		"missing", res.FinalData.Missing(constants.RequiredFields),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

func (p *Processor) runOCRStep(ctx context.Context, path string, doc *entity.Document, res *entity.ExtractionResult) (string, error) {
	stepStart := time.Now()
	ocrRes, err := p.OCR.Extract(ctx, path)
	step := entity.ProcessingStep{
		StepName:   constants.StepOCR,
		StepNumber: len(res.ProcessingSteps) + 1,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Method:     constants.MethodTesseract,
		Config: map[string]any{
			"language": ocrRes.Language,
		},
		Output: map[string]any{
			"text_length": len(ocrRes.Text),
			"pages":       ocrRes.Pages,
		},
		DurationMS: time.Since(stepStart).Milliseconds(),
	}
	if err != nil {
		step.Error = err.Error()
		res.ProcessingSteps = append(res.ProcessingSteps, step)
		p.Logger.Error("processor.ocr.failed", "file", doc.Filename, "error", err)
		return "", common.WrapError(err, "ocr failed")
	}

	doc.OCRText = ocrRes.Text
	doc.Pages = ocrRes.Pages
	res.ProcessingSteps = append(res.ProcessingSteps, step)

	if err := p.Store.SaveOCRText(doc.Filename, ocrRes.Text); err != nil {
		p.Logger.Warn("processor.ocr.save_text_failed", "file", doc.Filename, "error", err)
	}
	p.Logger.Info("processor.ocr.ok",
		"file", doc.Filename,
		"method", ocrRes.Method,
		"pages", ocrRes.Pages,
		"text_length", len(ocrRes.Text),
	)

	if len(ocrRes.Text) == 0 {
		return "", common.WrapError(common.ErrNoText, fmt.Sprintf("no text extracted from %s", doc.Filename))
	}
	return ocrRes.Text, nil
}

func (p *Processor) runParsingStep(text string, res *entity.ExtractionResult) {
	stepStart := time.Now()
	fields, missing := p.Parser.ExtractAll(text)

	// The issuer-specific routines run once per OCR page and can rescue
	// fields the generic chains missed; generic chain results still win on
	// conflicts. The full records, confidence and items included, go into
	// the step output.
	var receipts []*entity.VendorReceipt
	if p.Vendors != nil {
		for i, page := range splitPages(text) {
			rec, vendor := p.Vendors.Extract(page, i+1)
			if rec == nil {
				continue
			}
			receipts = append(receipts, rec)
			for k, v := range rec.Fields() {
				if !fields.Has(k) {
					fields[k] = v
				}
			}
			p.Logger.Debug("processor.parse.vendor",
				"vendor", vendor,
				"page", rec.PageNumber,
				"receipt_type", rec.Type,
				"confidence", rec.Confidence,
			)
		}
		missing = fields.Missing(constants.RequiredFields)
	}

	for k, v := range fields {
		res.FinalData[k] = v
		res.Metadata.FieldSources[k] = constants.StepParsing
	}
	step := entity.ProcessingStep{
		StepName:        constants.StepParsing,
		StepNumber:      len(res.ProcessingSteps) + 1,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		Method:          constants.MethodPatternMatching,
		ExtractedFields: fields.Clone(),
		MissingFields:   missing,
		DurationMS:      time.Since(stepStart).Milliseconds(),
	}
	if len(receipts) > 0 {
		step.Output = map[string]any{"vendor_receipts": receipts}
	}
	res.ProcessingSteps = append(res.ProcessingSteps, step)
	p.Logger.Info("processor.parse.ok", "fields", len(fields), "receipts", len(receipts), "missing", missing)
}

// splitPages splits OCR text on the form-feed markers inserted between
// rasterized PDF pages. Single-page text comes back whole.
func splitPages(text string) []string {
	return strings.Split(text, "\f")
}

func (p *Processor) runLLMStep(ctx context.Context, text, filename string, missing []string, res *entity.ExtractionResult) {
	stepStart := time.Now()
	fields, _, err := p.LLM.ExtractFields(ctx, llm.ExtractRequest{
		OCRText:       text,
		MissingFields: missing,
		FilenameHint:  filename,
	})
	step := entity.ProcessingStep{
		StepName:   constants.StepLLM,
		StepNumber: len(res.ProcessingSteps) + 1,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Method:     "llm",
		Config:     map[string]any{"requested_fields": missing},
		DurationMS: time.Since(stepStart).Milliseconds(),
	}
	if err != nil {
		// Fallback failure is not fatal: pattern results stand on their own.
		step.Error = err.Error()
		res.ProcessingSteps = append(res.ProcessingSteps, step)
		p.Logger.Warn("processor.llm.failed", "file", filename, "error", err)
		return
	}

	step.ExtractedFields = fields.Clone()
	added := 0
	for k, v := range fields {
		if res.FinalData.Has(k) {
			continue
		}
		res.FinalData[k] = v
		res.Metadata.FieldSources[k] = constants.StepLLM
		added++
	}
	step.MissingFields = res.FinalData.Missing(constants.RequiredFields)
	res.ProcessingSteps = append(res.ProcessingSteps, step)
	p.Logger.Info("processor.llm.ok", "file", filename, "returned", len(fields), "added", added)
}

func (p *Processor) finish(ctx context.Context, doc entity.Document, res *entity.ExtractionResult, mode constants.PipelineMode, status constants.RunStatus, start time.Time) {
	res.Metadata.TotalDurationMS = time.Since(start).Milliseconds()

	if err := p.Store.SaveResult(doc.Filename, res); err != nil {
		p.Logger.Error("processor.artifact.save_failed", "file", doc.Filename, "error", err)
		return
	}
	// Only fully merged runs advance to the terminal success status; an
	// ocr_only run is left at OCR_DONE so a later pass can resume it.
	if status == constants.RunStatusMerged {
		status = constants.RunStatusPersisted
	}
	if p.Index != nil {
		if err := p.Index.RecordRun(ctx, doc, res, mode, status); err != nil {
			p.Logger.Warn("processor.index.record_failed", "file", doc.Filename, "error", err)
		}
	}
}

// needsFallback gates the LLM stage. llm_only always consults it; a full run
// consults it only when the patterns left a required field unfilled.
func needsFallback(fields entity.FieldSet, mode constants.PipelineMode) bool {
	switch mode {
	case constants.ModeLLMOnly:
		return true
	case constants.ModeFullPipeline:
		return len(fields.Missing(constants.RequiredFields)) > 0
	}
	return false
}

// missingForLLM decides what to ask the fallback for. In llm_only mode every
// field is fair game; otherwise only gaps left by the patterns.
func missingForLLM(fields entity.FieldSet, mode constants.PipelineMode) []string {
	if mode == constants.ModeLLMOnly {
		return append([]string(nil), constants.AllFields...)
	}
	var missing []string
	for _, f := range constants.AllFields {
		if !fields.Has(f) {
			missing = append(missing, f)
		}
	}
	return missing
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = f.Close()
	}()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return "sha256:" + hex.EncodeToString(h.Sum(nil)), nil
}
