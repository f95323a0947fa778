package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/tkarvonen/huoltokirja/constants"
	"github.com/tkarvonen/huoltokirja/internal/async"
	"github.com/tkarvonen/huoltokirja/internal/common"
	"github.com/tkarvonen/huoltokirja/internal/extract"
	"github.com/tkarvonen/huoltokirja/internal/llm"
	"github.com/tkarvonen/huoltokirja/internal/llm/openai"
	"github.com/tkarvonen/huoltokirja/internal/parser"
	processor "github.com/tkarvonen/huoltokirja/internal/pipeline"
	repo "github.com/tkarvonen/huoltokirja/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir     = flag.String("dir", "", "directory of receipts to process (defaults to RECEIPTS_DIR)")
		file    = flag.String("file", "", "process a single file instead of a directory")
		out     = flag.String("out", "", "artifact output directory (defaults to EXTRACTED_DIR)")
		modeStr = flag.String("mode", string(constants.ModeFullPipeline), "pipeline mode: ocr_only | pattern_only | llm_only | full_pipeline")
		force   = flag.Bool("force", false, "reprocess documents that already have artifacts")
		noIndex = flag.Bool("noindex", false, "skip recording runs in the receipt index")
		workers = flag.Int("workers", 1, "process batch documents with this many parallel workers")
	)
	flag.Parse()

	mode, ok := constants.ParsePipelineMode(*modeStr)
	if !ok {
		printError("Error: invalid --mode %q\n", *modeStr)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if *dir == "" {
		*dir = cfg.Paths.ReceiptsDir
	}
	if *out == "" {
		*out = cfg.Paths.OutputDir
	}

	profile, err := common.LoadProfile(cfg.Paths.ProfilePath)
	if err != nil {
		logger.Error("failed to load profile", "path", cfg.Paths.ProfilePath, "error", err)
		os.Exit(1)
	}

	var index processor.RunIndex
	if !*noIndex {
		entc, cleanup, err := repo.InitDatabase(ctx, cfg.Database, logger)
		if err != nil {
			logger.Error("failed to initialize receipt index", "error", err)
			os.Exit(1)
		}
		defer cleanup()
		index = repo.NewRunIndex(
			repo.NewDocumentRepository(entc, logger),
			repo.NewExtractionRunRepository(entc, logger),
			logger,
		)
	}

	ocr := extract.NewExtractor(extract.Config{
		Tesseract: cfg.OCR.TesseractBin,
		Language:  cfg.OCR.Language,
		DPI:       cfg.OCR.DPI,
	}, logger)

	// LLM fallback only when a key is configured; the patterns carry the
	// pipeline on their own.
	var fallback llm.FieldExtractor
	if cfg.LLM.APIKey != "" {
		fallback = openai.NewClient(openai.Config{
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			APIKey:      cfg.LLM.APIKey,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
	} else {
		logger.Warn("OPENAI_API_KEY not set; llm fallback disabled")
	}

	opts := parser.Options{
		OdometerMinKM: profile.Odometer.MinKM,
		OdometerMaxKM: profile.Odometer.MaxKM,
	}
	p := processor.NewProcessor(
		logger,
		ocr,
		parser.New(parser.DefaultRules(opts), logger),
		parser.NewVendorExtractor(opts, logger),
		fallback,
		processor.NewArtifactStore(*out),
		index,
	)

	runOpts := processor.RunOptions{Mode: mode, Force: *force}
	if *file != "" {
		if _, err := p.ProcessDocument(ctx, *file, runOpts); err != nil {
			logger.Error("document processing failed", "file", *file, "error", err)
			os.Exit(1)
		}
		return
	}

	if *workers > 1 {
		files, err := processor.ListDocuments(*dir)
		if err != nil {
			logger.Error("batch processing failed", "dir", *dir, "error", err)
			os.Exit(1)
		}
		q := async.NewProcessorQueue(p, logger, async.WithWorkers(*workers))
		for _, name := range files {
			_ = q.Enqueue(ctx, async.Job{
				Path:        filepath.Join(*dir, name),
				Opts:        runOpts,
				SubmittedAt: time.Now(),
			})
		}
		q.Shutdown(ctx)
		return
	}

	res, err := p.ProcessDirectory(ctx, *dir, runOpts)
	if err != nil {
		logger.Error("batch processing failed", "dir", *dir, "error", err)
		os.Exit(1)
	}
	if res.Failed > 0 {
		os.Exit(1)
	}
}
