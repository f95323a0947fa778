package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tkarvonen/huoltokirja/internal/common"
	"github.com/tkarvonen/huoltokirja/internal/export"
	"github.com/tkarvonen/huoltokirja/internal/history"
	processor "github.com/tkarvonen/huoltokirja/internal/pipeline"
	repo "github.com/tkarvonen/huoltokirja/internal/repository"
	"github.com/tkarvonen/huoltokirja/internal/verify"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		verifiedDir = flag.String("verified", "", "directory of verified records (defaults to VERIFIED_DIR)")
		out         = flag.String("out", "", "service data model output path (defaults next to the verified dir)")
		xlsx        = flag.String("xlsx", "", "also export the history as XLSX to this path")
		noIndex     = flag.Bool("noindex", false, "skip syncing records into the receipt index")
		validate    = flag.Bool("validate", false, "grade extraction artifacts against expected_extraction and exit")
		extracted   = flag.String("extracted", "", "extraction artifact directory for -validate (defaults to EXTRACTED_DIR)")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if *verifiedDir == "" {
		*verifiedDir = cfg.Paths.VerifiedDir
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*verifiedDir), "service_data_model.json")
	}

	if *extracted == "" {
		*extracted = cfg.Paths.OutputDir
	}
	if *validate {
		os.Exit(runValidation(logger, *verifiedDir, *extracted))
	}

	profile, err := common.LoadProfile(cfg.Paths.ProfilePath)
	if err != nil {
		logger.Error("failed to load profile", "path", cfg.Paths.ProfilePath, "error", err)
		os.Exit(1)
	}

	reconciled, err := verify.LoadAllReconciled(*verifiedDir)
	if err != nil {
		printError("Error: loading verified records: %v\n", err)
		os.Exit(1)
	}
	if len(reconciled) == 0 {
		logger.Warn("no verified records found", "dir", *verifiedDir)
	}

	model := history.BuildServiceDataModel(reconciled, &profile)
	if err := history.WriteServiceDataModel(*out, model); err != nil {
		logger.Error("failed to write service data model", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("service data model written",
		"path", *out,
		"records", len(model.Records),
		"total_spend", model.Statistics.TotalSpend,
	)

	if *xlsx != "" {
		b, err := export.NewService(logger).ExportServiceHistoryXLSX(model.Records)
		if err != nil {
			logger.Error("xlsx export failed", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*xlsx, b, 0o644); err != nil {
			logger.Error("failed to write xlsx", "path", *xlsx, "error", err)
			os.Exit(1)
		}
		logger.Info("xlsx exported", "path", *xlsx)
	}

	if !*noIndex {
		entc, cleanup, err := repo.InitDatabase(ctx, cfg.Database, logger)
		if err != nil {
			logger.Error("failed to initialize receipt index", "error", err)
			os.Exit(1)
		}
		defer cleanup()
		n, err := repo.NewServiceRecordRepository(entc, logger).Sync(ctx, model.Records)
		if err != nil {
			logger.Error("failed to sync service records", "error", err)
			os.Exit(1)
		}
		logger.Info("service records synced", "count", n)
	}
}

// runValidation grades each extraction artifact against the expectations
// recorded alongside its verified record. Exit code 1 when any record fails.
func runValidation(logger *slog.Logger, verifiedDir, extractedDir string) int {
	stems, err := verify.ListRecords(verifiedDir)
	if err != nil {
		printError("Error: listing verified records: %v\n", err)
		return 1
	}

	store := processor.NewArtifactStore(extractedDir)
	code := 0
	graded := 0
	for _, stem := range stems {
		rec, err := verify.LoadVerified(verifiedDir, stem)
		if err != nil {
			logger.Error("validate.record.unreadable", "stem", stem, "error", err)
			code = 1
			continue
		}
		if len(rec.ExpectedExtraction) == 0 {
			continue
		}
		res, err := store.LoadResult(stem)
		if err != nil {
			logger.Error("validate.artifact.missing", "stem", stem, "error", err)
			code = 1
			continue
		}

		report := verify.GradeExtraction(*rec, res)
		graded++
		for _, w := range report.Warnings {
			logger.Warn("validate.field.missing", "stem", stem, "detail", w)
		}
		for _, e := range report.Errors {
			logger.Error("validate.field.required", "stem", stem, "detail", e)
		}
		if !report.OK() {
			code = 1
		}
	}

	logger.Info("validate.done", "graded", graded, "ok", code == 0)
	return code
}
