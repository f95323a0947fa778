package constants

// Canonical field names used across extraction, artifacts and reconciliation.
const (
	FieldDate            = "date"
	FieldAmount          = "amount"
	FieldVATAmount       = "vat_amount"
	FieldInvoiceNumber   = "invoice_number"
	FieldOdometerKM      = "odometer_km"
	FieldCompany         = "company"
	FieldWorkDescription = "work_description"
	FieldVehicleReg      = "vehicle_reg"
)

// RequiredFields defines extraction "success" for summary reporting.
// Missing required fields are reported but never block persistence.
var RequiredFields = []string{FieldDate, FieldAmount, FieldCompany}

// AllFields lists every field a pipeline stage may produce, in artifact order.
var AllFields = []string{
	FieldDate,
	FieldAmount,
	FieldVATAmount,
	FieldInvoiceNumber,
	FieldOdometerKM,
	FieldCompany,
	FieldWorkDescription,
	FieldVehicleReg,
}

// MaxWorkDescriptions caps the work_description list per document.
const MaxWorkDescriptions = 10
