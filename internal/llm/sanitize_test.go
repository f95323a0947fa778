package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkarvonen/huoltokirja/constants"
)

func TestNormalizeAndSanitizeJSON_DropsUnknownAndNull(t *testing.T) {
	raw := []byte(`{
		"date": "2021-03-15",
		"amount": 203.75,
		"company": "  Veho Autotalot Oy ",
		"vat_amount": null,
		"total_price": 99.0,
		"invoice_number": ""
	}`)

	fields, cleaned, dropped, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)

	assert.Equal(t, "2021-03-15", fields.String(constants.FieldDate))
	assert.Equal(t, "Veho Autotalot Oy", fields.String(constants.FieldCompany))
	assert.False(t, fields.Has(constants.FieldVATAmount))
	assert.False(t, fields.Has(constants.FieldInvoiceNumber))
	assert.False(t, fields.Has("total_price"))
	assert.ElementsMatch(t, []string{
		"total_price(unknown)", "vat_amount(null)", "invoice_number(empty)",
	}, dropped)

	require.NoError(t, ValidateJSONAgainstSchema(BuildFieldJSONSchema(), cleaned))
}

func TestNormalizeAndSanitizeJSON_CoercesTypes(t *testing.T) {
	raw := []byte(`{
		"amount": "203,75",
		"odometer_km": 387551.0,
		"work_description": "Öljynvaihto"
	}`)

	fields, cleaned, _, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)

	amt, ok := fields.Float(constants.FieldAmount)
	require.True(t, ok)
	assert.Equal(t, 203.75, amt)

	km, ok := fields.Int(constants.FieldOdometerKM)
	require.True(t, ok)
	assert.Equal(t, 387551, km)

	assert.Equal(t, []string{"Öljynvaihto"}, fields.Strings(constants.FieldWorkDescription))

	require.NoError(t, ValidateJSONAgainstSchema(BuildFieldJSONSchema(), cleaned))
}

func TestNormalizeAndSanitizeJSON_BadJSON(t *testing.T) {
	_, _, _, err := NormalizeAndSanitizeJSON([]byte("not json"), nil)
	assert.Error(t, err)
}

func TestValidateJSONAgainstSchema_RejectsWrongType(t *testing.T) {
	schema := BuildFieldJSONSchema()

	assert.NoError(t, ValidateJSONAgainstSchema(schema, []byte(`{"odometer_km": 387551}`)))
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"odometer_km": "387551"}`)))
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"date": "15.03.2021"}`)))
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"extra": 1}`)))
}

func TestBuildPrompts(t *testing.T) {
	req := ExtractRequest{
		OCRText:       "Yhteensä: 203,75 EUR",
		MissingFields: []string{constants.FieldDate, constants.FieldCompany},
		FilenameHint:  "huolto_2021.pdf",
	}

	sys := BuildSystemPrompt(req)
	assert.Contains(t, sys, "date, company")

	user := BuildUserPrompt(req)
	assert.Contains(t, user, "huolto_2021.pdf")
	assert.Contains(t, user, "Yhteensä: 203,75 EUR")
}
