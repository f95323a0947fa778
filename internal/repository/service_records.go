package repository

import (
	"context"
	"log/slog"

	"github.com/tkarvonen/huoltokirja/gen/ent"
	entsvc "github.com/tkarvonen/huoltokirja/gen/ent/servicerecord"
	"github.com/tkarvonen/huoltokirja/internal/entity"
)

type ServiceRecordRepository interface {
	// Sync replaces the whole indexed history with the given records. The
	// history is always rebuilt from reconciled ground truth, so replace-all
	// keeps the index an exact mirror.
	Sync(ctx context.Context, records []entity.ServiceRecord) (int, error)
	List(ctx context.Context) ([]*ent.ServiceRecord, error)
}

type serviceRecordRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewServiceRecordRepository(entc *ent.Client, logger *slog.Logger) ServiceRecordRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &serviceRecordRepo{ent: entc, logger: logger}
}

func (r *serviceRecordRepo) Sync(ctx context.Context, records []entity.ServiceRecord) (int, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return 0, err
	}
	rollback := func(err error) (int, error) {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.logger.Error("failed to roll back service record sync", "error", rbErr)
		}
		return 0, err
	}

	if _, err := tx.ServiceRecord.Delete().Exec(ctx); err != nil {
		return rollback(err)
	}
	for _, rec := range records {
		create := tx.ServiceRecord.Create().
			SetRecordID(rec.ID).
			SetServiceDate(rec.Date).
			SetCompany(rec.Company).
			SetAmount(rec.Amount).
			SetSourceStem(rec.SourceStem).
			SetOverridden(rec.Overridden).
			SetNillableVatAmount(rec.VATAmount).
			SetNillableInvoiceNumber(rec.InvoiceNumber).
			SetNillableOdometerKm(rec.OdometerKM)
		if len(rec.WorkDescriptions) > 0 {
			create = create.SetWorkDescriptions(rec.WorkDescriptions)
		}
		if _, err := create.Save(ctx); err != nil {
			return rollback(err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}

	r.logger.Info("index.service_records.synced", "count", len(records))
	return len(records), nil
}

func (r *serviceRecordRepo) List(ctx context.Context) ([]*ent.ServiceRecord, error) {
	return r.ent.ServiceRecord.Query().
		Order(ent.Asc(entsvc.FieldServiceDate), ent.Asc(entsvc.FieldRecordID)).
		All(ctx)
}
