package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tkarvonen/huoltokirja/gen/ent"
	entdoc "github.com/tkarvonen/huoltokirja/gen/ent/document"
	"github.com/tkarvonen/huoltokirja/internal/entity"
)

type DocumentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error)
	GetByHash(ctx context.Context, fileHash string) (*ent.Document, error)
	// UpsertByHash returns the existing row when the hash is already indexed;
	// the bool reports whether the document was already present.
	UpsertByHash(ctx context.Context, doc entity.Document) (*ent.Document, bool, error)
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &documentRepo{ent: entc, logger: logger}
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error) {
	return r.ent.Document.Get(ctx, id)
}

func (r *documentRepo) GetByHash(ctx context.Context, fileHash string) (*ent.Document, error) {
	return r.ent.Document.Query().
		Where(entdoc.FileHash(fileHash)).
		Only(ctx)
}

func (r *documentRepo) UpsertByHash(ctx context.Context, doc entity.Document) (*ent.Document, bool, error) {
	if existing, err := r.GetByHash(ctx, doc.FileHash); err == nil {
		return existing, true, nil
	}
	row, err := r.ent.Document.Create().
		SetFilename(doc.Filename).
		SetSourcePath(doc.SourcePath).
		SetFileHash(doc.FileHash).
		SetPages(doc.Pages).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "filename", doc.Filename, "error", err)
		return nil, false, err
	}
	return row, false, nil
}
