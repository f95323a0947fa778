package export

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/tkarvonen/huoltokirja/internal/entity"
)

// Service produces XLSX bytes from the assembled service history.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ExportServiceHistoryXLSX returns an XLSX workbook (as bytes) with one row
// per service record, date-ordered as given.
func (s *Service) ExportServiceHistoryXLSX(records []entity.ServiceRecord) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Service History"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// Drop the default sheet so the workbook opens on the history.
	_ = f.DeleteSheet("Sheet1")

	headers := []string{
		"Date",
		"Company",
		"Amount (EUR)",
		"VAT (EUR)",
		"Invoice Number",
		"Odometer (km)",
		"Work Done",
		"Source",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range records {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.Date)
		write(2, r.Company)
		write(3, r.Amount)
		if r.VATAmount != nil {
			write(4, *r.VATAmount)
		}
		if r.InvoiceNumber != nil {
			write(5, *r.InvoiceNumber)
		}
		if r.OdometerKM != nil {
			write(6, *r.OdometerKM)
		}
		write(7, strings.Join(r.WorkDescriptions, ", "))
		write(8, r.SourceStem)

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 12) // date
	_ = f.SetColWidth(sheet, "B", "B", 28) // company
	_ = f.SetColWidth(sheet, "C", "D", 12) // amounts
	_ = f.SetColWidth(sheet, "E", "E", 16) // invoice
	_ = f.SetColWidth(sheet, "F", "F", 14) // odometer
	_ = f.SetColWidth(sheet, "G", "G", 48) // work
	_ = f.SetColWidth(sheet, "H", "H", 28) // source

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(records),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
