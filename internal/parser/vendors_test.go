package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkarvonen/huoltokirja/constants"
)

func TestClassifyVendor(t *testing.T) {
	tests := []struct {
		text string
		want constants.Vendor
	}{
		{"Järvenpään Automajor Oy\nLaskunro 1", constants.VendorJarvenpaa},
		{"VEHO AUTOTALOT OY AB", constants.VendorVeho},
		{"A-Katsastus Tuusula", constants.VendorAKatsastus},
		{"Sulan Katsastus tervetuloa", constants.VendorSulanKatsastus},
		{"FIRST STOP rengaspalvelu", constants.VendorFirstStop},
		{"EUROMASTER kuitti", constants.VendorEuromaster},
		{"K-Market Tuusula", constants.VendorUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyVendor(tt.text), tt.text)
	}
}

func TestExtract_Jarvenpaa(t *testing.T) {
	text := "Järvenpään Automajor\nLaskunro 123456\nLaskupvm 5.3.09\nMittarilkm 2387551\nLTI-509\nMAKSETTAVA YHTEENSÄ 203,75\n"
	e := NewVendorExtractor(DefaultOptions(), nil)

	rec, vendor := e.Extract(text, 1)
	require.NotNil(t, rec)
	assert.Equal(t, constants.VendorJarvenpaa, vendor)
	assert.Equal(t, constants.ReceiptTypeService, rec.Type)
	assert.Equal(t, float32(0.8), rec.Confidence)

	require.NotNil(t, rec.InvoiceNumber)
	assert.Equal(t, "123456", *rec.InvoiceNumber)
	require.NotNil(t, rec.ServiceDate)
	assert.Equal(t, "2009-03-05", *rec.ServiceDate)
	require.NotNil(t, rec.OdometerKM)
	assert.Equal(t, 387551, *rec.OdometerKM)
	require.NotNil(t, rec.VehicleReg)
	assert.Equal(t, "LTI-509", *rec.VehicleReg)
	require.NotNil(t, rec.TotalAmount)
	assert.Equal(t, 203.75, *rec.TotalAmount)
}

func TestExtract_JarvenpaaRequiresInvoice(t *testing.T) {
	e := NewVendorExtractor(DefaultOptions(), nil)
	rec, _ := e.Extract("Järvenpään Automajor\nMAKSETTAVA YHTEENSÄ 10,00", 1)
	assert.Nil(t, rec)
}

func TestExtract_Veho(t *testing.T) {
	text := "VEHO AUTOTALOT\nLaskun numero: 87654321\nPäivämäärä: 12.11.2015\nYhteensä: 412,90 EUR\nALV 24% 79,92\n"
	e := NewVendorExtractor(DefaultOptions(), nil)

	rec, vendor := e.Extract(text, 2)
	require.NotNil(t, rec)
	assert.Equal(t, constants.VendorVeho, vendor)
	assert.Equal(t, 2, rec.PageNumber)
	assert.Equal(t, "Veho Autotalot Oy", rec.Company)

	require.NotNil(t, rec.InvoiceNumber)
	assert.Equal(t, "87654321", *rec.InvoiceNumber)
	require.NotNil(t, rec.ServiceDate)
	assert.Equal(t, "2015-11-12", *rec.ServiceDate)
	require.NotNil(t, rec.TotalAmount)
	assert.Equal(t, 412.90, *rec.TotalAmount)
	require.NotNil(t, rec.VATAmount)
	assert.Equal(t, 79.92, *rec.VATAmount)
}

func TestExtract_InspectionBeatsVendorDispatch(t *testing.T) {
	// "katsastus" in the text routes to the inspection routine even when the
	// issuer is otherwise recognized.
	text := "A-Katsastus Oy\nMääräaikaiskatsastus\nLTI-509\n15.5.2019\n54,00 €\n"
	e := NewVendorExtractor(DefaultOptions(), nil)

	rec, vendor := e.Extract(text, 1)
	require.NotNil(t, rec)
	assert.Equal(t, constants.VendorAKatsastus, vendor)
	assert.Equal(t, constants.ReceiptTypeInspection, rec.Type)
	assert.Equal(t, float32(0.7), rec.Confidence)

	require.NotNil(t, rec.VehicleReg)
	assert.Equal(t, "LTI-509", *rec.VehicleReg)
	require.NotNil(t, rec.ServiceDate)
	assert.Equal(t, "2019-05-15", *rec.ServiceDate)
	require.NotNil(t, rec.TotalAmount)
	assert.Equal(t, 54.00, *rec.TotalAmount)
	require.Len(t, rec.Items, 1)
	assert.Equal(t, "Määräaikaiskatsastus", rec.Items[0].Description)
}

func TestExtract_TirePicksLargestPlausiblePrice(t *testing.T) {
	text := "EUROMASTER\n12.10.2018\nRenkaat 4kpl 98,50\nTyö 25,00\nYhteensä 419,00\n"
	e := NewVendorExtractor(DefaultOptions(), nil)

	rec, vendor := e.Extract(text, 1)
	require.NotNil(t, rec)
	assert.Equal(t, constants.VendorEuromaster, vendor)
	assert.Equal(t, constants.ReceiptTypeTire, rec.Type)
	assert.Equal(t, float32(0.6), rec.Confidence)

	require.NotNil(t, rec.TotalAmount)
	assert.Equal(t, 419.00, *rec.TotalAmount)
}

func TestExtract_GenericNeedsDateOrAmount(t *testing.T) {
	e := NewVendorExtractor(DefaultOptions(), nil)

	rec, vendor := e.Extract("K-Market Tuusula\n12.10.2018\nmaito 1,89\n", 1)
	require.NotNil(t, rec)
	assert.Equal(t, constants.VendorUnknown, vendor)
	assert.Equal(t, float32(0.5), rec.Confidence)
	assert.Equal(t, "Unknown", rec.Company)

	rec, _ = e.Extract("pelkkää tekstiä ilman mitään", 1)
	assert.Nil(t, rec)
}

func TestVendorReceipt_Fields(t *testing.T) {
	text := "VEHO AUTOTALOT\nLaskun numero: 87654321\nYhteensä: 412,90 EUR\n"
	e := NewVendorExtractor(DefaultOptions(), nil)
	rec, _ := e.Extract(text, 1)
	require.NotNil(t, rec)

	fields := rec.Fields()
	assert.Equal(t, "Veho Autotalot Oy", fields.String(constants.FieldCompany))
	assert.Equal(t, "87654321", fields.String(constants.FieldInvoiceNumber))
	amt, ok := fields.Float(constants.FieldAmount)
	require.True(t, ok)
	assert.Equal(t, 412.90, amt)
}
