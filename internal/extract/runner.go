package extract

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"time"
)

// Runner executes an external binary and returns its output streams. The OCR
// extractor only ever talks to pdftoppm and tesseract through this, so tests
// can substitute canned pages and text.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// maximum stderr carried into logs and errors
const stderrExcerptLen = 8 << 10

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start).Milliseconds()

	if err != nil {
		slog.Error("ocr.exec.fail",
			"cmd", name,
			"args", args,
			"elapsed_ms", elapsed,
			"error", err,
			"stderr", excerpt(stderr.Bytes()),
		)
		return stdout.Bytes(), stderr.Bytes(), fmt.Errorf("%s: %w (%s)", name, err, excerpt(stderr.Bytes()))
	}

	slog.Debug("ocr.exec.ok",
		"cmd", name,
		"elapsed_ms", elapsed,
		"stdout_bytes", stdout.Len(),
	)
	return stdout.Bytes(), stderr.Bytes(), nil
}

func excerpt(b []byte) string {
	if len(b) <= stderrExcerptLen {
		return string(b)
	}
	return string(b[:stderrExcerptLen]) + "...(truncated)"
}
