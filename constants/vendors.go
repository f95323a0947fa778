package constants

// Vendor identifies the issuing company of a receipt. The set is closed:
// adding a vendor means adding a classifier pattern and an extraction routine,
// not a plugin.
type Vendor string

const (
	VendorJarvenpaa      Vendor = "jarvenpaa"
	VendorVeho           Vendor = "veho"
	VendorAKatsastus     Vendor = "a_katsastus"
	VendorSulanKatsastus Vendor = "sulan_katsastus"
	VendorFirstStop      Vendor = "first_stop"
	VendorEuromaster     Vendor = "euromaster"
	VendorUnknown        Vendor = "unknown"
)

// CanonicalName returns the company name written into extracted fields.
// Classification echoes these strings, never the matched OCR text.
func (v Vendor) CanonicalName() string {
	switch v {
	case VendorJarvenpaa:
		return "Järvenpään Automajor Oy"
	case VendorVeho:
		return "Veho Autotalot Oy"
	case VendorAKatsastus:
		return "A-Katsastus"
	case VendorSulanKatsastus:
		return "Sulan Katsastus"
	case VendorFirstStop:
		return "First Stop"
	case VendorEuromaster:
		return "Euromaster"
	default:
		return "Unknown"
	}
}

// ReceiptType tags what kind of service a receipt documents.
type ReceiptType string

const (
	ReceiptTypeService    ReceiptType = "service"
	ReceiptTypeInspection ReceiptType = "inspection"
	ReceiptTypeTire       ReceiptType = "tire"
	ReceiptTypeUnknown    ReceiptType = "unknown"
)
