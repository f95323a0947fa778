package entity

import "github.com/tkarvonen/huoltokirja/constants"

// ReceiptItem is one billed line on a receipt.
type ReceiptItem struct {
	Description string   `json:"description"`
	Amount      *float64 `json:"amount,omitempty"`
}

// VendorReceipt is the record a per-vendor extraction routine produces.
// Optional numerics are pointers so "not found" stays distinguishable from
// zero. Confidence is informational only; a low score never rejects a record.
type VendorReceipt struct {
	PageNumber    int                   `json:"page_number"`
	InvoiceNumber *string               `json:"invoice_number,omitempty"`
	ServiceDate   *string               `json:"service_date,omitempty"` // YYYY-MM-DD
	Company       string                `json:"company"`
	VehicleReg    *string               `json:"vehicle_reg,omitempty"`
	OdometerKM    *int                  `json:"odometer_km,omitempty"`
	TotalAmount   *float64              `json:"total_amount,omitempty"`
	VATAmount     *float64              `json:"vat_amount,omitempty"`
	Items         []ReceiptItem         `json:"items"`
	Confidence    float32               `json:"confidence_score"`
	Type          constants.ReceiptType `json:"receipt_type"`
}

// Fields flattens the receipt into a FieldSet using the canonical field names.
func (r *VendorReceipt) Fields() FieldSet {
	fs := FieldSet{constants.FieldCompany: r.Company}
	if r.ServiceDate != nil {
		fs[constants.FieldDate] = *r.ServiceDate
	}
	if r.TotalAmount != nil {
		fs[constants.FieldAmount] = *r.TotalAmount
	}
	if r.VATAmount != nil {
		fs[constants.FieldVATAmount] = *r.VATAmount
	}
	if r.InvoiceNumber != nil {
		fs[constants.FieldInvoiceNumber] = *r.InvoiceNumber
	}
	if r.OdometerKM != nil {
		fs[constants.FieldOdometerKM] = *r.OdometerKM
	}
	if r.VehicleReg != nil {
		fs[constants.FieldVehicleReg] = *r.VehicleReg
	}
	return fs
}
