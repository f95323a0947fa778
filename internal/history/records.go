package history

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/tkarvonen/huoltokirja/constants"
	"github.com/tkarvonen/huoltokirja/internal/entity"
)

// BuildServiceRecords assembles the service history from reconciled records,
// keyed by artifact stem. Records without a service date cannot be placed on
// the timeline and are dropped with a warning. Output is sorted by date, then
// by stem for a stable order on same-day services.
func BuildServiceRecords(reconciled map[string]entity.ReconciledRecord, logger *slog.Logger) []entity.ServiceRecord {
	if logger == nil {
		logger = slog.Default()
	}

	stems := make([]string, 0, len(reconciled))
	for stem := range reconciled {
		stems = append(stems, stem)
	}
	sort.Strings(stems)

	records := make([]entity.ServiceRecord, 0, len(stems))
	for _, stem := range stems {
		rec := reconciled[stem]
		gt := rec.GroundTruth

		date := gt.String(constants.FieldDate)
		if date == "" {
			logger.Warn("history.record.no_date", "stem", stem)
			continue
		}

		sr := entity.ServiceRecord{
			Date:       date,
			Company:    gt.String(constants.FieldCompany),
			SourceStem: stem,
			Overridden: rec.OverrideInfo.HasOverrides,
		}
		if v, ok := gt.Float(constants.FieldAmount); ok {
			sr.Amount = v
		}
		if v, ok := gt.Float(constants.FieldVATAmount); ok {
			sr.VATAmount = &v
		}
		if v := gt.String(constants.FieldInvoiceNumber); v != "" {
			sr.InvoiceNumber = &v
		}
		if v, ok := gt.Int(constants.FieldOdometerKM); ok {
			sr.OdometerKM = &v
		}
		sr.WorkDescriptions = gt.Strings(constants.FieldWorkDescription)

		records = append(records, sr)
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date < records[j].Date
		}
		return records[i].SourceStem < records[j].SourceStem
	})

	assignIDs(records)
	return records
}

// assignIDs gives each record its date as ID; same-day services get an
// ordinal suffix so IDs stay unique.
func assignIDs(records []entity.ServiceRecord) {
	perDate := map[string]int{}
	for i := range records {
		perDate[records[i].Date]++
		if n := perDate[records[i].Date]; n == 1 {
			records[i].ID = records[i].Date
		} else {
			records[i].ID = fmt.Sprintf("%s-%d", records[i].Date, n)
		}
	}
}
