package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tkarvonen/huoltokirja/constants"
	"github.com/tkarvonen/huoltokirja/gen/ent"
	entrun "github.com/tkarvonen/huoltokirja/gen/ent/extractionrun"
	"github.com/tkarvonen/huoltokirja/internal/entity"
)

type ExtractionRunRepository interface {
	Create(ctx context.Context, documentID uuid.UUID, res *entity.ExtractionResult, mode constants.PipelineMode, status constants.RunStatus) (*ent.ExtractionRun, error)
	ListForDocument(ctx context.Context, documentID uuid.UUID) ([]*ent.ExtractionRun, error)
}

type extractionRunRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewExtractionRunRepository(entc *ent.Client, logger *slog.Logger) ExtractionRunRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &extractionRunRepo{ent: entc, logger: logger}
}

func (r *extractionRunRepo) Create(ctx context.Context, documentID uuid.UUID, res *entity.ExtractionResult, mode constants.PipelineMode, status constants.RunStatus) (*ent.ExtractionRun, error) {
	finalData, err := json.Marshal(res.FinalData)
	if err != nil {
		return nil, err
	}
	fieldSources, err := json.Marshal(res.Metadata.FieldSources)
	if err != nil {
		return nil, err
	}

	create := r.ent.ExtractionRun.Create().
		SetDocumentID(documentID).
		SetStatus(string(status)).
		SetMode(string(mode)).
		SetPipelineVersion(res.Metadata.PipelineVersion).
		SetFinalData(finalData).
		SetFieldSources(fieldSources).
		SetTotalDurationMs(res.Metadata.TotalDurationMS).
		SetFinishedAt(time.Now())
	if res.Metadata.Error != "" {
		create = create.SetErrorMessage(res.Metadata.Error)
	}

	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create extraction run", "document_id", documentID, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *extractionRunRepo) ListForDocument(ctx context.Context, documentID uuid.UUID) ([]*ent.ExtractionRun, error) {
	return r.ent.ExtractionRun.Query().
		Where(entrun.DocumentID(documentID)).
		Order(ent.Asc(entrun.FieldStartedAt)).
		All(ctx)
}
