package processor

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// BatchResult summarizes a directory run.
type BatchResult struct {
	Processed int
	Skipped   int
	Failed    int
}

var batchExts = map[string]struct{}{
	".pdf": {}, ".png": {}, ".jpg": {}, ".jpeg": {}, ".tif": {}, ".tiff": {},
}

// ListDocuments returns the supported files in dir, sorted by name.
func ListDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := batchExts[strings.ToLower(filepath.Ext(e.Name()))]; ok {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// ProcessDirectory runs every supported file in dir through the pipeline in
// filename order. Documents with an existing artifact are skipped unless
// Force is set. A failing document is logged and counted; the batch goes on.
func (p *Processor) ProcessDirectory(ctx context.Context, dir string, opts RunOptions) (BatchResult, error) {
	files, err := ListDocuments(dir)
	if err != nil {
		return BatchResult{}, err
	}

	start := time.Now()
	var res BatchResult
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if !opts.Force && p.Store.Exists(name) {
			p.Logger.Info("processor.batch.skip", "file", name)
			res.Skipped++
			continue
		}
		if _, err := p.ProcessDocument(ctx, filepath.Join(dir, name), opts); err != nil {
			p.Logger.Error("processor.batch.document_failed", "file", name, "error", err)
			res.Failed++
			continue
		}
		res.Processed++
	}

	p.Logger.Info("processor.batch.done",
		"dir", dir,
		"processed", res.Processed,
		"skipped", res.Skipped,
		"failed", res.Failed,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}
