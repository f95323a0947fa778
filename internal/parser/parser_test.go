package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkarvonen/huoltokirja/constants"
)

func newTestParser() *Parser {
	return New(DefaultRules(DefaultOptions()), nil)
}

func TestExtractField_FinnishDate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"four digit year", "Laskupvm 15.03.2021", "2021-03-15"},
		{"two digit year below pivot", "Päivämäärä 01.02.49", "2049-02-01"},
		{"two digit year above pivot", "Kuitti 01.02.99", "1999-02-01"},
		{"single digit day and month", "pvm 5.6.2018", "2018-06-05"},
	}
	p := newTestParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := p.ExtractField(tt.text, constants.FieldDate)
			require.True(t, ok)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestExtractField_InvalidDateFallsThroughToISO(t *testing.T) {
	p := newTestParser()

	// The Finnish rule matches first but month 13 fails calendar validation,
	// so the chain proceeds to the ISO rule.
	v, ok := p.ExtractField("laskettu 99.13.2020 ja 2021-05-06", constants.FieldDate)
	require.True(t, ok)
	assert.Equal(t, "2021-05-06", v)
}

func TestExtractField_ISODateValidated(t *testing.T) {
	p := newTestParser()
	_, ok := p.ExtractField("2021-13-06", constants.FieldDate)
	assert.False(t, ok)
}

func TestExtractField_Amounts(t *testing.T) {
	p := newTestParser()

	text := "Työt ja osat\nYhteensä: 203,75 EUR\n+ALV 22,00 % 36,74\n"

	amount, ok := p.ExtractField(text, constants.FieldAmount)
	require.True(t, ok)
	assert.Equal(t, 203.75, amount)

	vat, ok := p.ExtractField(text, constants.FieldVATAmount)
	require.True(t, ok)
	assert.Equal(t, 36.74, vat)
}

func TestExtractField_AmountCurrencyMarkerFallback(t *testing.T) {
	p := newTestParser()
	v, ok := p.ExtractField("maksu 89,90 €", constants.FieldAmount)
	require.True(t, ok)
	assert.Equal(t, 89.90, v)
}

func TestExtractField_OdometerRepair(t *testing.T) {
	p := newTestParser()

	// Leading-2 OCR artifact: 2387551 -> 387551 (inside plausible range).
	v, ok := p.ExtractField("Mittarilukema:\n2387551", constants.FieldOdometerKM)
	require.True(t, ok)
	assert.Equal(t, 387551, v)

	// 2611000 -> 611000 falls outside the range, so the raw value is kept.
	v, ok = p.ExtractField("Mittarilukema:\n2611000", constants.FieldOdometerKM)
	require.True(t, ok)
	assert.Equal(t, 2611000, v)
}

func TestExtractField_OdometerBareSixDigitLine(t *testing.T) {
	p := newTestParser()
	v, ok := p.ExtractField("huolto tehty\n387551\nseuraava huolto", constants.FieldOdometerKM)
	require.True(t, ok)
	assert.Equal(t, 387551, v)
}

func TestRepairOdometer_Idempotent(t *testing.T) {
	once := repairOdometer(2387551, 200000, 500000)
	assert.Equal(t, 387551, once)
	assert.Equal(t, once, repairOdometer(once, 200000, 500000))

	// Triggers only above 1,000,000 with a leading 2.
	assert.Equal(t, 999999, repairOdometer(999999, 200000, 500000))
	assert.Equal(t, 3387551, repairOdometer(3387551, 200000, 500000))
}

func TestExtractField_CompanyCanonicalNames(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Järvenpään Automajor\nLaskunro 123", "Järvenpään Automajor Oy"},
		{"VEHO AUTOTALOT OY", "Veho Autotalot Oy"},
		{"A-Katsastus Tuusula", "A-Katsastus"},
		{"Sulan Katsastus Oy", "Sulan Katsastus"},
		{"FIRST STOP palvelut", "First Stop"},
		{"EUROMASTER", "Euromaster"},
	}
	p := newTestParser()
	for _, tt := range tests {
		v, ok := p.ExtractField(tt.text, constants.FieldCompany)
		require.True(t, ok, tt.text)
		assert.Equal(t, tt.want, v)
	}
}

func TestExtractField_InvoiceNumberPrefersLonger(t *testing.T) {
	p := newTestParser()

	// An 8-digit number wins over a 6-digit one regardless of position.
	v, ok := p.ExtractField("asiakas 123456\nLaskunro 12345678", constants.FieldInvoiceNumber)
	require.True(t, ok)
	assert.Equal(t, "12345678", v)

	v, ok = p.ExtractField("Laskunro: 654321", constants.FieldInvoiceNumber)
	require.True(t, ok)
	assert.Equal(t, "654321", v)
}

func TestExtractField_EmptyText(t *testing.T) {
	p := newTestParser()
	for _, field := range constants.AllFields {
		_, ok := p.ExtractField("", field)
		assert.False(t, ok, field)
	}
}

func TestExtractAll_MissingRequired(t *testing.T) {
	p := newTestParser()

	fields, missing := p.ExtractAll("Öljynvaihto tehty 15.03.2021")
	assert.Equal(t, "2021-03-15", fields.String(constants.FieldDate))
	assert.ElementsMatch(t, []string{constants.FieldAmount, constants.FieldCompany}, missing)

	// Fields are extracted independently; work descriptions came along.
	assert.Equal(t, []string{"Öljynvaihto"}, fields.Strings(constants.FieldWorkDescription))
}

func TestExtractAll_EmptyTextYieldsNothing(t *testing.T) {
	p := newTestParser()
	fields, missing := p.ExtractAll("")
	assert.Empty(t, fields)
	assert.ElementsMatch(t, constants.RequiredFields, missing)
}

func TestWorkDescriptions_DedupesAndCaps(t *testing.T) {
	text := "Öljynvaihto Öljynvaihto Öljynsuodatin Huolto Katsastus Jarru Renkaat TYÖVELOITUS PIENTARVIKKEET Ilmansuodatin Raitisilmasuodatin Oil change"
	got := WorkDescriptions(text)
	assert.LessOrEqual(t, len(got), constants.MaxWorkDescriptions)

	seen := map[string]int{}
	for _, d := range got {
		seen[d]++
	}
	for d, n := range seen {
		assert.Equal(t, 1, n, d)
	}
}
