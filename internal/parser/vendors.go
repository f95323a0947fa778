package parser

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/tkarvonen/huoltokirja/constants"
	"github.com/tkarvonen/huoltokirja/internal/entity"
)

// Classifier patterns in fixed priority order; first match wins.
var vendorPatterns = []struct {
	vendor  constants.Vendor
	pattern *regexp.Regexp
}{
	{constants.VendorJarvenpaa, rx(`Järvenpään\s+Automajor`)},
	{constants.VendorVeho, rx(`VEHO.*AUTOTALOT|Veho\s+Autotalot`)},
	{constants.VendorAKatsastus, rx(`A-Katsastus`)},
	{constants.VendorSulanKatsastus, rx(`Sulan\s+Katsastus`)},
	{constants.VendorFirstStop, rx(`FIRST.*STOP`)},
	{constants.VendorEuromaster, rx(`EUROMASTER`)},
}

// ClassifyVendor identifies the issuing company, or VendorUnknown when no
// known-issuer pattern is present.
func ClassifyVendor(text string) constants.Vendor {
	for _, vp := range vendorPatterns {
		if vp.pattern.MatchString(text) {
			return vp.vendor
		}
	}
	return constants.VendorUnknown
}

// VendorExtractor dispatches OCR text to a routine tuned to the issuer's
// receipt layout. Routines intentionally accept partial records: a minimum
// viable subset of fields is enough, and confidence is tracked rather than
// used to reject.
type VendorExtractor struct {
	opts   Options
	logger *slog.Logger
}

func NewVendorExtractor(opts Options, logger *slog.Logger) *VendorExtractor {
	if opts.OdometerMinKM == 0 && opts.OdometerMaxKM == 0 {
		opts = DefaultOptions()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &VendorExtractor{opts: opts, logger: logger}
}

// Extract classifies the text and runs the matching routine. A nil receipt
// means the page did not yield even a minimally useful record.
func (e *VendorExtractor) Extract(text string, page int) (*entity.VendorReceipt, constants.Vendor) {
	vendor := ClassifyVendor(text)
	lower := strings.ToLower(text)

	var rec *entity.VendorReceipt
	switch {
	case strings.Contains(lower, "katsastus") || strings.Contains(lower, "inspection"):
		rec = e.extractInspection(text, page, vendor)
	case vendor == constants.VendorVeho:
		rec = e.extractVeho(text, page)
	case vendor == constants.VendorJarvenpaa:
		rec = e.extractJarvenpaa(text, page)
	case vendor == constants.VendorFirstStop || vendor == constants.VendorEuromaster:
		rec = e.extractTire(text, page, vendor)
	default:
		rec = e.extractGeneric(text, page, vendor)
	}

	if rec == nil {
		e.logger.Debug("vendors.extract.rejected", "vendor", vendor, "page", page)
	}
	return rec, vendor
}

var (
	reVehicleReg = regexp.MustCompile(`\b([A-Z]{3}-\d{3})\b`)

	reVehoInvoice = rx(`Laskun\s*numero:?\s*(\d+)`)
	reVehoDate    = rx(`Päivämäärä:?\s*(\d{1,2})\.(\d{1,2})\.(\d{4})`)
	reVehoTotal   = rx(`Yhteensä:?\s*(\d+)[,.](\d{2})\s*EUR`)
	reVehoVAT     = rx(`ALV.*?(\d+)[,.](\d{2})`)

	reJarvenpaaInvoice = rx(`Laskunro\s*(\d+)`)
	reJarvenpaaDate    = rx(`Laskupvm\s*(\d{1,2})\.(\d{1,2})\.(\d{2})`)
	reJarvenpaaKM      = rx(`Mittarilkm\s*(\d+)`)
	reJarvenpaaTotal   = rx(`MAKSETTAVA\s+YHTEENSÄ\s*(\d+)[,.](\d{2})`)

	reAnyDate  = rx(`(\d{1,2})[./](\d{1,2})[./](\d{2,4})`)
	reAnyPrice = rx(`(\d+)[,.](\d{2})`)
	rePriceEUR = rx(`(\d+)[,.](\d{2})\s*€|€\s*(\d+)[,.](\d{2})|EUR\s*(\d+)[,.](\d{2})|Yhteensä.*?(\d+)[,.](\d{2})`)
)

// extractInspection handles katsastus receipts from either inspection chain.
// Accepted when at least a registration or a date was found.
func (e *VendorExtractor) extractInspection(text string, page int, vendor constants.Vendor) *entity.VendorReceipt {
	rec := &entity.VendorReceipt{
		PageNumber: page,
		Company:    vendor.CanonicalName(),
		Items:      []entity.ReceiptItem{},
		Confidence: 0.7,
		Type:       constants.ReceiptTypeInspection,
	}

	if m := reVehicleReg.FindStringSubmatch(text); m != nil {
		rec.VehicleReg = &m[1]
	}
	rec.ServiceDate = findVendorDate(text)

	// Largest labeled price is taken as the total.
	var best float64
	for _, m := range rePriceEUR.FindAllStringSubmatch(text, -1) {
		if v, ok := pickPrice(m[1:]); ok && v > best {
			best = v
		}
	}
	if best > 0 {
		rec.TotalAmount = &best
	}

	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "määräaikaiskatsastus"):
		rec.Items = append(rec.Items, entity.ReceiptItem{Description: "Määräaikaiskatsastus", Amount: rec.TotalAmount})
	case strings.Contains(lower, "katsastus"):
		rec.Items = append(rec.Items, entity.ReceiptItem{Description: "Katsastus", Amount: rec.TotalAmount})
	}

	if rec.VehicleReg == nil && rec.ServiceDate == nil {
		return nil
	}
	return rec
}

// extractVeho requires an invoice number or a total.
func (e *VendorExtractor) extractVeho(text string, page int) *entity.VendorReceipt {
	rec := &entity.VendorReceipt{
		PageNumber: page,
		Company:    constants.VendorVeho.CanonicalName(),
		Items:      []entity.ReceiptItem{},
		Confidence: 0.8,
		Type:       constants.ReceiptTypeService,
	}

	if m := reVehoInvoice.FindStringSubmatch(text); m != nil {
		rec.InvoiceNumber = &m[1]
	}
	if m := reVehicleReg.FindStringSubmatch(text); m != nil {
		rec.VehicleReg = &m[1]
	}
	if m := reVehoDate.FindStringSubmatch(text); m != nil {
		if iso, ok := isoFromParts(m[3], m[2], m[1]); ok {
			rec.ServiceDate = &iso
		}
	}
	if m := reVehoTotal.FindStringSubmatch(text); m != nil {
		if v, ok := centsToFloat(m[1], m[2]); ok {
			rec.TotalAmount = &v
		}
	}
	if m := reVehoVAT.FindStringSubmatch(text); m != nil {
		if v, ok := centsToFloat(m[1], m[2]); ok {
			rec.VATAmount = &v
		}
	}

	if rec.InvoiceNumber == nil && rec.TotalAmount == nil {
		return nil
	}
	return rec
}

// extractJarvenpaa requires an invoice number; the shop's layout is regular
// enough that a record without one is noise.
func (e *VendorExtractor) extractJarvenpaa(text string, page int) *entity.VendorReceipt {
	rec := &entity.VendorReceipt{
		PageNumber: page,
		Company:    constants.VendorJarvenpaa.CanonicalName(),
		Items:      []entity.ReceiptItem{},
		Confidence: 0.8,
		Type:       constants.ReceiptTypeService,
	}

	if m := reJarvenpaaInvoice.FindStringSubmatch(text); m != nil {
		rec.InvoiceNumber = &m[1]
	}
	if m := reJarvenpaaDate.FindStringSubmatch(text); m != nil {
		// Two-digit year on these invoices is always 20YY.
		if iso, ok := isoFromParts("20"+m[3], m[2], m[1]); ok {
			rec.ServiceDate = &iso
		}
	}
	if m := reVehicleReg.FindStringSubmatch(text); m != nil {
		rec.VehicleReg = &m[1]
	}
	if m := reJarvenpaaKM.FindStringSubmatch(text); m != nil {
		if km, err := strconv.Atoi(m[1]); err == nil {
			fixed := repairOdometer(km, e.opts.OdometerMinKM, e.opts.OdometerMaxKM)
			rec.OdometerKM = &fixed
		}
	}
	if m := reJarvenpaaTotal.FindStringSubmatch(text); m != nil {
		if v, ok := centsToFloat(m[1], m[2]); ok {
			rec.TotalAmount = &v
		}
	}

	if rec.InvoiceNumber == nil {
		return nil
	}
	return rec
}

// extractTire handles tire-shop receipts, which are often partly handwritten;
// confidence is lower and any plausible price in range is accepted.
func (e *VendorExtractor) extractTire(text string, page int, vendor constants.Vendor) *entity.VendorReceipt {
	rec := &entity.VendorReceipt{
		PageNumber: page,
		Company:    vendor.CanonicalName(),
		Items:      []entity.ReceiptItem{},
		Confidence: 0.6,
		Type:       constants.ReceiptTypeTire,
	}

	rec.ServiceDate = findVendorDate(text)
	if m := reVehicleReg.FindStringSubmatch(text); m != nil {
		rec.VehicleReg = &m[1]
	}

	var best float64
	for _, m := range reAnyPrice.FindAllStringSubmatch(text, -1) {
		if v, ok := centsToFloat(m[1], m[2]); ok && v > 10 && v < 10000 && v > best {
			best = v
		}
	}
	if best > 0 {
		rec.TotalAmount = &best
	}

	if rec.TotalAmount == nil && rec.ServiceDate == nil {
		return nil
	}
	return rec
}

// extractGeneric applies only the most permissive date/amount patterns for
// receipts from unrecognized issuers.
func (e *VendorExtractor) extractGeneric(text string, page int, vendor constants.Vendor) *entity.VendorReceipt {
	rec := &entity.VendorReceipt{
		PageNumber: page,
		Company:    vendor.CanonicalName(),
		Items:      []entity.ReceiptItem{},
		Confidence: 0.5,
		Type:       constants.ReceiptTypeUnknown,
	}

	rec.ServiceDate = findVendorDate(text)

	var best float64
	for _, m := range reAnyPrice.FindAllStringSubmatch(text, -1) {
		if v, ok := centsToFloat(m[1], m[2]); ok && v > best {
			best = v
		}
	}
	if best > 0 {
		rec.TotalAmount = &best
	}

	if rec.TotalAmount == nil && rec.ServiceDate == nil {
		return nil
	}
	return rec
}

// findVendorDate finds the first D.M.Y date with either separator; two-digit
// years are treated as 20YY on vendor receipts.
func findVendorDate(text string) *string {
	m := reAnyDate.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	year := m[3]
	if len(year) == 2 {
		year = "20" + year
	}
	if iso, ok := isoFromParts(year, m[2], m[1]); ok {
		return &iso
	}
	return nil
}

func isoFromParts(year, month, day string) (string, bool) {
	v, ok := buildISODate(year, month, day)
	if !ok {
		return "", false
	}
	return v.(string), true
}

func centsToFloat(whole, cents string) (float64, bool) {
	f, err := strconv.ParseFloat(whole+"."+cents, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// pickPrice returns the first non-empty whole/cents pair from an alternated
// submatch list.
func pickPrice(groups []string) (float64, bool) {
	for i := 0; i+1 < len(groups); i += 2 {
		if groups[i] != "" && groups[i+1] != "" {
			return centsToFloat(groups[i], groups[i+1])
		}
	}
	return 0, false
}
