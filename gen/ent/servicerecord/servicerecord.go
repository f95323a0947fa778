// Code generated by ent, DO NOT EDIT.

package servicerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the servicerecord type in the database.
	Label = "service_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRecordID holds the string denoting the record_id field in the database.
	FieldRecordID = "record_id"
	// FieldServiceDate holds the string denoting the service_date field in the database.
	FieldServiceDate = "service_date"
	// FieldCompany holds the string denoting the company field in the database.
	FieldCompany = "company"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldVatAmount holds the string denoting the vat_amount field in the database.
	FieldVatAmount = "vat_amount"
	// FieldInvoiceNumber holds the string denoting the invoice_number field in the database.
	FieldInvoiceNumber = "invoice_number"
	// FieldOdometerKm holds the string denoting the odometer_km field in the database.
	FieldOdometerKm = "odometer_km"
	// FieldWorkDescriptions holds the string denoting the work_descriptions field in the database.
	FieldWorkDescriptions = "work_descriptions"
	// FieldSourceStem holds the string denoting the source_stem field in the database.
	FieldSourceStem = "source_stem"
	// FieldOverridden holds the string denoting the overridden field in the database.
	FieldOverridden = "overridden"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the servicerecord in the database.
	Table = "service_records"
)

// Columns holds all SQL columns for servicerecord fields.
var Columns = []string{
	FieldID,
	FieldRecordID,
	FieldServiceDate,
	FieldCompany,
	FieldAmount,
	FieldVatAmount,
	FieldInvoiceNumber,
	FieldOdometerKm,
	FieldWorkDescriptions,
	FieldSourceStem,
	FieldOverridden,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// RecordIDValidator is a validator for the "record_id" field. It is called by the builders before save.
	RecordIDValidator func(string) error
	// ServiceDateValidator is a validator for the "service_date" field. It is called by the builders before save.
	ServiceDateValidator func(string) error
	// DefaultAmount holds the default value on creation for the "amount" field.
	DefaultAmount float64
	// SourceStemValidator is a validator for the "source_stem" field. It is called by the builders before save.
	SourceStemValidator func(string) error
	// DefaultOverridden holds the default value on creation for the "overridden" field.
	DefaultOverridden bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ServiceRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRecordID orders the results by the record_id field.
func ByRecordID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordID, opts...).ToFunc()
}

// ByServiceDate orders the results by the service_date field.
func ByServiceDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServiceDate, opts...).ToFunc()
}

// ByCompany orders the results by the company field.
func ByCompany(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompany, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByVatAmount orders the results by the vat_amount field.
func ByVatAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVatAmount, opts...).ToFunc()
}

// ByInvoiceNumber orders the results by the invoice_number field.
func ByInvoiceNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvoiceNumber, opts...).ToFunc()
}

// ByOdometerKm orders the results by the odometer_km field.
func ByOdometerKm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOdometerKm, opts...).ToFunc()
}

// BySourceStem orders the results by the source_stem field.
func BySourceStem(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceStem, opts...).ToFunc()
}

// ByOverridden orders the results by the overridden field.
func ByOverridden(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverridden, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
