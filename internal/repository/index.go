package repository

import (
	"context"
	"log/slog"

	"github.com/tkarvonen/huoltokirja/constants"
	"github.com/tkarvonen/huoltokirja/internal/entity"
)

// RunIndex wires the document and run repositories together behind the
// pipeline's recording hook: one call indexes the document (idempotently, by
// file hash) and appends the run.
type RunIndex struct {
	docs   DocumentRepository
	runs   ExtractionRunRepository
	logger *slog.Logger
}

func NewRunIndex(docs DocumentRepository, runs ExtractionRunRepository, logger *slog.Logger) *RunIndex {
	if logger == nil {
		logger = slog.Default()
	}
	return &RunIndex{docs: docs, runs: runs, logger: logger}
}

func (i *RunIndex) RecordRun(ctx context.Context, doc entity.Document, res *entity.ExtractionResult, mode constants.PipelineMode, status constants.RunStatus) error {
	row, existed, err := i.docs.UpsertByHash(ctx, doc)
	if err != nil {
		return err
	}
	if existed {
		i.logger.Debug("index.document.exists", "filename", doc.Filename, "file_hash", doc.FileHash)
	}
	run, err := i.runs.Create(ctx, row.ID, res, mode, status)
	if err != nil {
		return err
	}
	i.logger.Info("index.run.recorded",
		"document_id", row.ID.String(),
		"run_id", run.ID.String(),
		"status", status,
	)
	return nil
}
