package parser

import (
	"regexp"

	"github.com/tkarvonen/huoltokirja/constants"
)

// Rule is one extraction rule: a match pattern paired with a normalizer.
// Rules are grouped into an ordered chain per field, most specific first,
// and the chain stops at the first successful normalization.
type Rule struct {
	Pattern   *regexp.Regexp
	Normalize Normalizer
}

// Options carries the tunable parts of the rule tables. The odometer repair
// bounds are per-vehicle data, not universal constants.
type Options struct {
	OdometerMinKM int
	OdometerMaxKM int
}

// DefaultOptions matches the tracked vehicle's plausible mileage window.
func DefaultOptions() Options {
	return Options{OdometerMinKM: 200000, OdometerMaxKM: 500000}
}

// Rules holds the per-field ordered rule chains. It is immutable
// configuration data built once at startup.
type Rules struct {
	byField map[string][]Rule
	order   []string
}

// FieldOrder returns the fields in their declared order.
func (r *Rules) FieldOrder() []string {
	return r.order
}

// Chain returns the rule chain for a field, or nil when the field has none.
func (r *Rules) Chain(field string) []Rule {
	return r.byField[field]
}

// DefaultRules builds the rule tables for Finnish automotive receipts.
// Patterns are compiled case-insensitively with multiline anchors, mirroring
// the label vocabulary seen across the known issuers.
func DefaultRules(opts Options) *Rules {
	if opts.OdometerMinKM == 0 && opts.OdometerMaxKM == 0 {
		opts = DefaultOptions()
	}
	odometer := odometerNormalizer(opts.OdometerMinKM, opts.OdometerMaxKM)

	byField := map[string][]Rule{
		constants.FieldDate: {
			// Finnish DD.MM.YYYY / DD.MM.YY before ISO.
			{rx(`\b(\d{1,2})\.(\d{1,2})\.(\d{4}|\d{2})\b`), normalizeFinnishDate},
			{rx(`\b(\d{4})-(\d{2})-(\d{2})\b`), normalizeISODate},
		},
		constants.FieldAmount: {
			// Labeled total at its most specific, then any labeled total,
			// then any number next to a currency marker.
			{rx(`Yhteensä:\s*(\d+[,.\s]\d{2})\s*EUR`), normalizeAmount},
			{rx(`(?:Yhteensä|MAKSETTAVA YHTEENSÄ).*?(\d+[,.\s]\d{2})`), normalizeAmount},
			{rx(`(\d+[,.\s]\d{2})\s*(?:EUR|€)`), normalizeAmount},
		},
		constants.FieldVATAmount: {
			// "+ALV 22,00 % 36,74" style with explicit percentage first.
			{rx(`\+?ALV\s+\d+[,.\s]\d{2}\s*%\s*(\d+[,.\s]\d{2})`), normalizeAmount},
			{rx(`(?:ALV|Arvonlisävero|Vero).*?(\d+[,.\s]\d{2})`), normalizeAmount},
			{rx(`(?:24|25\.5)\s*%.*?(\d+[,.\s]\d{2})`), normalizeAmount},
		},
		constants.FieldInvoiceNumber: {
			// Longer digit runs first so invoice numbers don't collide with
			// odometer readings or dates on the same page.
			{rx(`\b(\d{8})\b`), normalizeString},
			{rx(`(?:Laskunro|Laskun numero|Laskunumero|Invoice)[\s:]*(\d+)`), normalizeString},
			{rx(`\b(\d{6,7})\b`), normalizeString},
		},
		constants.FieldOdometerKM: {
			// Label-anchored reading first, then a bare 6-digit number on its
			// own line, then "NNNNNN km".
			{rx(`(?:Mittarilukema|Mittarilkm|Mileage)[\s:]*(\d+)`), odometer},
			{rx(`(?:^|\n)(\d{6})(?:\n|$)`), odometer},
			{rx(`(\d{6,7})\s*km`), odometer},
		},
		constants.FieldCompany: {
			// Fixed dictionary of known issuers mapped to canonical names.
			{rx(`Järvenpään\s+Automajor`), companyName(constants.VendorJarvenpaa.CanonicalName())},
			{rx(`VEHO\s+(?:AUTOTALOT)?`), companyName(constants.VendorVeho.CanonicalName())},
			{rx(`A-Katsastus`), companyName(constants.VendorAKatsastus.CanonicalName())},
			{rx(`Sulan\s+Katsastus`), companyName(constants.VendorSulanKatsastus.CanonicalName())},
			{rx(`FIRST\s+STOP|First\s+Stop`), companyName(constants.VendorFirstStop.CanonicalName())},
			{rx(`EUROMASTER|Euromaster`), companyName(constants.VendorEuromaster.CanonicalName())},
		},
	}

	return &Rules{
		byField: byField,
		order: []string{
			constants.FieldDate,
			constants.FieldAmount,
			constants.FieldVATAmount,
			constants.FieldInvoiceNumber,
			constants.FieldOdometerKM,
			constants.FieldCompany,
		},
	}
}

func rx(expr string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)` + expr)
}
