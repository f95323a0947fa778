package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

// Config for the tesseract-based extractor. Binaries are resolved from PATH
// when left empty.
type Config struct {
	Pdftoppm  string
	Tesseract string

	Language string // tesseract language spec, default "fin+eng"
	DPI      int    // rasterization DPI for PDFs, default 300
	MaxPages int    // 0 = no limit
}

// Extractor OCRs scanned receipts. PDFs are rasterized page by page with
// pdftoppm, then each page goes through tesseract; images go to tesseract
// directly.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Language == "" {
		cfg.Language = "fin+eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

var imageExts = map[string]struct{}{
	".png": {}, ".jpg": {}, ".jpeg": {}, ".tif": {}, ".tiff": {},
}

// Extract picks a strategy based on file extension.
func (e *Extractor) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	start := time.Now()
	ext := strings.ToLower(filepath.Ext(path))
	e.logger.Debug("ocr.extract.start", "path", path, "ext", ext)

	var res TextExtractionResult
	var err error
	switch {
	case ext == ".pdf":
		res, err = e.extractPDF(ctx, path)
	default:
		if _, ok := imageExts[ext]; !ok {
			return TextExtractionResult{}, fmt.Errorf("unsupported extension: %q", ext)
		}
		res, err = e.extractImage(ctx, path)
	}
	res.Duration = time.Since(start)
	res.Language = e.cfg.Language
	return res, err
}

func (e *Extractor) extractPDF(ctx context.Context, path string) (TextExtractionResult, error) {
	tmpDir, err := os.MkdirTemp("", "hk-ocr-*")
	if err != nil {
		return TextExtractionResult{}, err
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			e.logger.Warn("ocr.tmpdir.remove_failed", "dir", tmpDir, "error", rmErr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return TextExtractionResult{Warnings: []string{string(errb)}}, err
	}

	// generated pngs are prefix-1.png, prefix-2.png, ...
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return TextExtractionResult{Warnings: []string{"pdftoppm produced no images"}}, fmt.Errorf("no pages rendered")
	}

	var b strings.Builder
	var warns []string
	for _, img := range matches {
		txt, w, err := e.tesseractOCR(ctx, img)
		if err != nil {
			warns = append(warns, err.Error())
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\f\n") // page break marker
		}
		b.WriteString(txt)
		warns = append(warns, w...)
	}
	return TextExtractionResult{
		Text:     Normalize(b.String()),
		Pages:    len(matches),
		Method:   "pdf-ocr",
		Warnings: warns,
	}, nil
}

func (e *Extractor) extractImage(ctx context.Context, path string) (TextExtractionResult, error) {
	txt, warn, err := e.tesseractOCR(ctx, path)
	if err != nil {
		return TextExtractionResult{Warnings: warn}, err
	}
	return TextExtractionResult{
		Text:     Normalize(txt),
		Pages:    1,
		Method:   "image-ocr",
		Warnings: warn,
	}, nil
}

func (e *Extractor) tesseractOCR(ctx context.Context, path string) (string, []string, error) {
	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, path, "stdout", "-l", e.cfg.Language)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}
	return string(out), nil, nil
}

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTrailingWS = regexp.MustCompile(`[ \t]+\n`)
	reManyBlank  = regexp.MustCompile(`\n{3,}`)
)

// Normalize cleans up OCR output: unix newlines, no trailing spaces, at most
// one blank line in a row.
func Normalize(s string) string {
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTrailingWS.ReplaceAllString(s, "\n")
	s = reManyBlank.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
