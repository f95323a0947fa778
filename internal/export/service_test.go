package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tkarvonen/huoltokirja/internal/entity"
)

func TestExportServiceHistoryXLSX(t *testing.T) {
	vat := 36.74
	invoice := "12345678"
	km := 387551
	records := []entity.ServiceRecord{
		{
			ID: "2021-03-15", Date: "2021-03-15", Company: "Järvenpään Automajor Oy",
			Amount: 203.75, VATAmount: &vat, InvoiceNumber: &invoice, OdometerKM: &km,
			WorkDescriptions: []string{"Öljynvaihto", "Huolto"},
			SourceStem:       "huolto_2021",
		},
		{ID: "2021-06-01", Date: "2021-06-01", Company: "A-Katsastus", Amount: 59.0, SourceStem: "katsastus_2021"},
	}

	b, err := NewService(nil).ExportServiceHistoryXLSX(records)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()

	rows, err := f.GetRows("Service History")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, "2021-03-15", rows[1][0])
	assert.Equal(t, "Järvenpään Automajor Oy", rows[1][1])
	assert.Equal(t, "Öljynvaihto, Huolto", rows[1][6])
	assert.Equal(t, "A-Katsastus", rows[2][1])
}
