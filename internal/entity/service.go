package entity

// ServiceRecord is one entry in the assembled service history. Records come
// from reconciled ground truth, never straight from extraction output.
type ServiceRecord struct {
	ID               string   `json:"id"` // service date; suffixed -2, -3 on same-day services
	Date             string   `json:"date"`
	Company          string   `json:"company,omitempty"`
	Amount           float64  `json:"amount,omitempty"`
	VATAmount        *float64 `json:"vat_amount,omitempty"`
	InvoiceNumber    *string  `json:"invoice_number,omitempty"`
	OdometerKM       *int     `json:"odometer_km,omitempty"`
	WorkDescriptions []string `json:"work_descriptions,omitempty"`
	SourceStem       string   `json:"source_stem"`
	Overridden       bool     `json:"overridden,omitempty"`
}
