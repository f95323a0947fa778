// Code generated by ent, DO NOT EDIT.

package servicerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tkarvonen/huoltokirja/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldLTE(FieldID, id))
}

// RecordID applies equality check predicate on the "record_id" field. It's identical to RecordIDEQ.
func RecordID(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldEQ(FieldRecordID, v))
}

// ServiceDate applies equality check predicate on the "service_date" field. It's identical to ServiceDateEQ.
func ServiceDate(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldEQ(FieldServiceDate, v))
}

// Company applies equality check predicate on the "company" field. It's identical to CompanyEQ.
func Company(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldEQ(FieldCompany, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldEQ(FieldAmount, v))
}

// VatAmount applies equality check predicate on the "vat_amount" field. It's identical to VatAmountEQ.
func VatAmount(v float64) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldEQ(FieldVatAmount, v))
}

// InvoiceNumber applies equality check predicate on the "invoice_number" field. It's identical to InvoiceNumberEQ.
func InvoiceNumber(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldEQ(FieldInvoiceNumber, v))
}

// OdometerKm applies equality check predicate on the "odometer_km" field. It's identical to OdometerKmEQ.
func OdometerKm(v int) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldEQ(FieldOdometerKm, v))
}

// SourceStem applies equality check predicate on the "source_stem" field. It's identical to SourceStemEQ.
func SourceStem(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldEQ(FieldSourceStem, v))
}

// Overridden applies equality check predicate on the "overridden" field. It's identical to OverriddenEQ.
func Overridden(v bool) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldEQ(FieldOverridden, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// RecordIDEQ applies the EQ predicate on the "record_id" field.
func RecordIDEQ(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldEQ(FieldRecordID, v))
}

// RecordIDNEQ applies the NEQ predicate on the "record_id" field.
func RecordIDNEQ(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldNEQ(FieldRecordID, v))
}

// RecordIDIn applies the In predicate on the "record_id" field.
func RecordIDIn(vs ...string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldIn(FieldRecordID, vs...))
}

// RecordIDNotIn applies the NotIn predicate on the "record_id" field.
func RecordIDNotIn(vs ...string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldNotIn(FieldRecordID, vs...))
}

// RecordIDGT applies the GT predicate on the "record_id" field.
func RecordIDGT(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldGT(FieldRecordID, v))
}

// RecordIDGTE applies the GTE predicate on the "record_id" field.
func RecordIDGTE(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldGTE(FieldRecordID, v))
}

// RecordIDLT applies the LT predicate on the "record_id" field.
func RecordIDLT(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldLT(FieldRecordID, v))
}

// RecordIDLTE applies the LTE predicate on the "record_id" field.
func RecordIDLTE(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldLTE(FieldRecordID, v))
}

// RecordIDContains applies the Contains predicate on the "record_id" field.
func RecordIDContains(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldContains(FieldRecordID, v))
}

// RecordIDHasPrefix applies the HasPrefix predicate on the "record_id" field.
func RecordIDHasPrefix(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldHasPrefix(FieldRecordID, v))
}

// RecordIDHasSuffix applies the HasSuffix predicate on the "record_id" field.
func RecordIDHasSuffix(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldHasSuffix(FieldRecordID, v))
}

// RecordIDEqualFold applies the EqualFold predicate on the "record_id" field.
func RecordIDEqualFold(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldEqualFold(FieldRecordID, v))
}

// RecordIDContainsFold applies the ContainsFold predicate on the "record_id" field.
func RecordIDContainsFold(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldContainsFold(FieldRecordID, v))
}

// ServiceDateEQ applies the EQ predicate on the "service_date" field.
func ServiceDateEQ(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldEQ(FieldServiceDate, v))
}

// ServiceDateNEQ applies the NEQ predicate on the "service_date" field.
func ServiceDateNEQ(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldNEQ(FieldServiceDate, v))
}

// ServiceDateIn applies the In predicate on the "service_date" field.
func ServiceDateIn(vs ...string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldIn(FieldServiceDate, vs...))
}

// ServiceDateNotIn applies the NotIn predicate on the "service_date" field.
func ServiceDateNotIn(vs ...string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldNotIn(FieldServiceDate, vs...))
}

// ServiceDateGT applies the GT predicate on the "service_date" field.
func ServiceDateGT(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldGT(FieldServiceDate, v))
}

// ServiceDateGTE applies the GTE predicate on the "service_date" field.
func ServiceDateGTE(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldGTE(FieldServiceDate, v))
}

// ServiceDateLT applies the LT predicate on the "service_date" field.
func ServiceDateLT(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldLT(FieldServiceDate, v))
}

// ServiceDateLTE applies the LTE predicate on the "service_date" field.
func ServiceDateLTE(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldLTE(FieldServiceDate, v))
}

// ServiceDateContains applies the Contains predicate on the "service_date" field.
func ServiceDateContains(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldContains(FieldServiceDate, v))
}

// ServiceDateHasPrefix applies the HasPrefix predicate on the "service_date" field.
func ServiceDateHasPrefix(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldHasPrefix(FieldServiceDate, v))
}

// ServiceDateHasSuffix applies the HasSuffix predicate on the "service_date" field.
func ServiceDateHasSuffix(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldHasSuffix(FieldServiceDate, v))
}

// ServiceDateEqualFold applies the EqualFold predicate on the "service_date" field.
func ServiceDateEqualFold(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldEqualFold(FieldServiceDate, v))
}

// ServiceDateContainsFold applies the ContainsFold predicate on the "service_date" field.
func ServiceDateContainsFold(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldContainsFold(FieldServiceDate, v))
}

// CompanyEQ applies the EQ predicate on the "company" field.
func CompanyEQ(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldEQ(FieldCompany, v))
}

// CompanyNEQ applies the NEQ predicate on the "company" field.
func CompanyNEQ(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldNEQ(FieldCompany, v))
}

// CompanyIn applies the In predicate on the "company" field.
func CompanyIn(vs ...string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldIn(FieldCompany, vs...))
}

// CompanyNotIn applies the NotIn predicate on the "company" field.
func CompanyNotIn(vs ...string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldNotIn(FieldCompany, vs...))
}

// CompanyGT applies the GT predicate on the "company" field.
func CompanyGT(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldGT(FieldCompany, v))
}

// CompanyGTE applies the GTE predicate on the "company" field.
func CompanyGTE(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldGTE(FieldCompany, v))
}

// CompanyLT applies the LT predicate on the "company" field.
func CompanyLT(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldLT(FieldCompany, v))
}

// CompanyLTE applies the LTE predicate on the "company" field.
func CompanyLTE(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldLTE(FieldCompany, v))
}

// CompanyContains applies the Contains predicate on the "company" field.
func CompanyContains(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldContains(FieldCompany, v))
}

// CompanyHasPrefix applies the HasPrefix predicate on the "company" field.
func CompanyHasPrefix(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldHasPrefix(FieldCompany, v))
}

// CompanyHasSuffix applies the HasSuffix predicate on the "company" field.
func CompanyHasSuffix(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldHasSuffix(FieldCompany, v))
}

// CompanyIsNil applies the IsNil predicate on the "company" field.
func CompanyIsNil() predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldIsNull(FieldCompany))
}

// CompanyNotNil applies the NotNil predicate on the "company" field.
func CompanyNotNil() predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldNotNull(FieldCompany))
}

// CompanyEqualFold applies the EqualFold predicate on the "company" field.
func CompanyEqualFold(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldEqualFold(FieldCompany, v))
}

// CompanyContainsFold applies the ContainsFold predicate on the "company" field.
func CompanyContainsFold(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldContainsFold(FieldCompany, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldLTE(FieldAmount, v))
}

// VatAmountEQ applies the EQ predicate on the "vat_amount" field.
func VatAmountEQ(v float64) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldEQ(FieldVatAmount, v))
}

// VatAmountNEQ applies the NEQ predicate on the "vat_amount" field.
func VatAmountNEQ(v float64) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldNEQ(FieldVatAmount, v))
}

// VatAmountIn applies the In predicate on the "vat_amount" field.
func VatAmountIn(vs ...float64) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldIn(FieldVatAmount, vs...))
}

// VatAmountNotIn applies the NotIn predicate on the "vat_amount" field.
func VatAmountNotIn(vs ...float64) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldNotIn(FieldVatAmount, vs...))
}

// VatAmountGT applies the GT predicate on the "vat_amount" field.
func VatAmountGT(v float64) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldGT(FieldVatAmount, v))
}

// VatAmountGTE applies the GTE predicate on the "vat_amount" field.
func VatAmountGTE(v float64) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldGTE(FieldVatAmount, v))
}

// VatAmountLT applies the LT predicate on the "vat_amount" field.
func VatAmountLT(v float64) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldLT(FieldVatAmount, v))
}

// VatAmountLTE applies the LTE predicate on the "vat_amount" field.
func VatAmountLTE(v float64) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldLTE(FieldVatAmount, v))
}

// VatAmountIsNil applies the IsNil predicate on the "vat_amount" field.
func VatAmountIsNil() predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldIsNull(FieldVatAmount))
}

// VatAmountNotNil applies the NotNil predicate on the "vat_amount" field.
func VatAmountNotNil() predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldNotNull(FieldVatAmount))
}

// InvoiceNumberEQ applies the EQ predicate on the "invoice_number" field.
func InvoiceNumberEQ(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberNEQ applies the NEQ predicate on the "invoice_number" field.
func InvoiceNumberNEQ(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldNEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberIn applies the In predicate on the "invoice_number" field.
func InvoiceNumberIn(vs ...string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberNotIn applies the NotIn predicate on the "invoice_number" field.
func InvoiceNumberNotIn(vs ...string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldNotIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberGT applies the GT predicate on the "invoice_number" field.
func InvoiceNumberGT(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldGT(FieldInvoiceNumber, v))
}

// InvoiceNumberGTE applies the GTE predicate on the "invoice_number" field.
func InvoiceNumberGTE(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldGTE(FieldInvoiceNumber, v))
}

// InvoiceNumberLT applies the LT predicate on the "invoice_number" field.
func InvoiceNumberLT(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldLT(FieldInvoiceNumber, v))
}

// InvoiceNumberLTE applies the LTE predicate on the "invoice_number" field.
func InvoiceNumberLTE(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldLTE(FieldInvoiceNumber, v))
}

// InvoiceNumberContains applies the Contains predicate on the "invoice_number" field.
func InvoiceNumberContains(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldContains(FieldInvoiceNumber, v))
}

// InvoiceNumberHasPrefix applies the HasPrefix predicate on the "invoice_number" field.
func InvoiceNumberHasPrefix(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldHasPrefix(FieldInvoiceNumber, v))
}

// InvoiceNumberHasSuffix applies the HasSuffix predicate on the "invoice_number" field.
func InvoiceNumberHasSuffix(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldHasSuffix(FieldInvoiceNumber, v))
}

// InvoiceNumberIsNil applies the IsNil predicate on the "invoice_number" field.
func InvoiceNumberIsNil() predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldIsNull(FieldInvoiceNumber))
}

// InvoiceNumberNotNil applies the NotNil predicate on the "invoice_number" field.
func InvoiceNumberNotNil() predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldNotNull(FieldInvoiceNumber))
}

// InvoiceNumberEqualFold applies the EqualFold predicate on the "invoice_number" field.
func InvoiceNumberEqualFold(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldEqualFold(FieldInvoiceNumber, v))
}

// InvoiceNumberContainsFold applies the ContainsFold predicate on the "invoice_number" field.
func InvoiceNumberContainsFold(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldContainsFold(FieldInvoiceNumber, v))
}

// OdometerKmEQ applies the EQ predicate on the "odometer_km" field.
func OdometerKmEQ(v int) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldEQ(FieldOdometerKm, v))
}

// OdometerKmNEQ applies the NEQ predicate on the "odometer_km" field.
func OdometerKmNEQ(v int) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldNEQ(FieldOdometerKm, v))
}

// OdometerKmIn applies the In predicate on the "odometer_km" field.
func OdometerKmIn(vs ...int) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldIn(FieldOdometerKm, vs...))
}

// OdometerKmNotIn applies the NotIn predicate on the "odometer_km" field.
func OdometerKmNotIn(vs ...int) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldNotIn(FieldOdometerKm, vs...))
}

// OdometerKmGT applies the GT predicate on the "odometer_km" field.
func OdometerKmGT(v int) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldGT(FieldOdometerKm, v))
}

// OdometerKmGTE applies the GTE predicate on the "odometer_km" field.
func OdometerKmGTE(v int) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldGTE(FieldOdometerKm, v))
}

// OdometerKmLT applies the LT predicate on the "odometer_km" field.
func OdometerKmLT(v int) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldLT(FieldOdometerKm, v))
}

// OdometerKmLTE applies the LTE predicate on the "odometer_km" field.
func OdometerKmLTE(v int) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldLTE(FieldOdometerKm, v))
}

// OdometerKmIsNil applies the IsNil predicate on the "odometer_km" field.
func OdometerKmIsNil() predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldIsNull(FieldOdometerKm))
}

// OdometerKmNotNil applies the NotNil predicate on the "odometer_km" field.
func OdometerKmNotNil() predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldNotNull(FieldOdometerKm))
}

// WorkDescriptionsIsNil applies the IsNil predicate on the "work_descriptions" field.
func WorkDescriptionsIsNil() predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldIsNull(FieldWorkDescriptions))
}

// WorkDescriptionsNotNil applies the NotNil predicate on the "work_descriptions" field.
func WorkDescriptionsNotNil() predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldNotNull(FieldWorkDescriptions))
}

// SourceStemEQ applies the EQ predicate on the "source_stem" field.
func SourceStemEQ(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldEQ(FieldSourceStem, v))
}

// SourceStemNEQ applies the NEQ predicate on the "source_stem" field.
func SourceStemNEQ(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldNEQ(FieldSourceStem, v))
}

// SourceStemIn applies the In predicate on the "source_stem" field.
func SourceStemIn(vs ...string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldIn(FieldSourceStem, vs...))
}

// SourceStemNotIn applies the NotIn predicate on the "source_stem" field.
func SourceStemNotIn(vs ...string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldNotIn(FieldSourceStem, vs...))
}

// SourceStemGT applies the GT predicate on the "source_stem" field.
func SourceStemGT(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldGT(FieldSourceStem, v))
}

// SourceStemGTE applies the GTE predicate on the "source_stem" field.
func SourceStemGTE(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldGTE(FieldSourceStem, v))
}

// SourceStemLT applies the LT predicate on the "source_stem" field.
func SourceStemLT(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldLT(FieldSourceStem, v))
}

// SourceStemLTE applies the LTE predicate on the "source_stem" field.
func SourceStemLTE(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldLTE(FieldSourceStem, v))
}

// SourceStemContains applies the Contains predicate on the "source_stem" field.
func SourceStemContains(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldContains(FieldSourceStem, v))
}

// SourceStemHasPrefix applies the HasPrefix predicate on the "source_stem" field.
func SourceStemHasPrefix(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldHasPrefix(FieldSourceStem, v))
}

// SourceStemHasSuffix applies the HasSuffix predicate on the "source_stem" field.
func SourceStemHasSuffix(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldHasSuffix(FieldSourceStem, v))
}

// SourceStemEqualFold applies the EqualFold predicate on the "source_stem" field.
func SourceStemEqualFold(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldEqualFold(FieldSourceStem, v))
}

// SourceStemContainsFold applies the ContainsFold predicate on the "source_stem" field.
func SourceStemContainsFold(v string) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldContainsFold(FieldSourceStem, v))
}

// OverriddenEQ applies the EQ predicate on the "overridden" field.
func OverriddenEQ(v bool) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldEQ(FieldOverridden, v))
}

// OverriddenNEQ applies the NEQ predicate on the "overridden" field.
func OverriddenNEQ(v bool) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldNEQ(FieldOverridden, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ServiceRecord) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ServiceRecord) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ServiceRecord) predicate.ServiceRecord {
	return predicate.ServiceRecord(sql.NotPredicates(p))
}
