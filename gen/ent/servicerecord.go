// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tkarvonen/huoltokirja/gen/ent/servicerecord"
)

// ServiceRecord is the model entity for the ServiceRecord schema.
type ServiceRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// RecordID holds the value of the "record_id" field.
	RecordID string `json:"record_id,omitempty"`
	// ServiceDate holds the value of the "service_date" field.
	ServiceDate string `json:"service_date,omitempty"`
	// Company holds the value of the "company" field.
	Company string `json:"company,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount float64 `json:"amount,omitempty"`
	// VatAmount holds the value of the "vat_amount" field.
	VatAmount *float64 `json:"vat_amount,omitempty"`
	// InvoiceNumber holds the value of the "invoice_number" field.
	InvoiceNumber *string `json:"invoice_number,omitempty"`
	// OdometerKm holds the value of the "odometer_km" field.
	OdometerKm *int `json:"odometer_km,omitempty"`
	// WorkDescriptions holds the value of the "work_descriptions" field.
	WorkDescriptions []string `json:"work_descriptions,omitempty"`
	// SourceStem holds the value of the "source_stem" field.
	SourceStem string `json:"source_stem,omitempty"`
	// Overridden holds the value of the "overridden" field.
	Overridden bool `json:"overridden,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ServiceRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case servicerecord.FieldWorkDescriptions:
			values[i] = new([]byte)
		case servicerecord.FieldOverridden:
			values[i] = new(sql.NullBool)
		case servicerecord.FieldAmount, servicerecord.FieldVatAmount:
			values[i] = new(sql.NullFloat64)
		case servicerecord.FieldOdometerKm:
			values[i] = new(sql.NullInt64)
		case servicerecord.FieldRecordID, servicerecord.FieldServiceDate, servicerecord.FieldCompany, servicerecord.FieldInvoiceNumber, servicerecord.FieldSourceStem:
			values[i] = new(sql.NullString)
		case servicerecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case servicerecord.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ServiceRecord fields.
func (_m *ServiceRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case servicerecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case servicerecord.FieldRecordID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field record_id", values[i])
			} else if value.Valid {
				_m.RecordID = value.String
			}
		case servicerecord.FieldServiceDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field service_date", values[i])
			} else if value.Valid {
				_m.ServiceDate = value.String
			}
		case servicerecord.FieldCompany:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company", values[i])
			} else if value.Valid {
				_m.Company = value.String
			}
		case servicerecord.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = value.Float64
			}
		case servicerecord.FieldVatAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field vat_amount", values[i])
			} else if value.Valid {
				_m.VatAmount = new(float64)
				*_m.VatAmount = value.Float64
			}
		case servicerecord.FieldInvoiceNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_number", values[i])
			} else if value.Valid {
				_m.InvoiceNumber = new(string)
				*_m.InvoiceNumber = value.String
			}
		case servicerecord.FieldOdometerKm:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field odometer_km", values[i])
			} else if value.Valid {
				_m.OdometerKm = new(int)
				*_m.OdometerKm = int(value.Int64)
			}
		case servicerecord.FieldWorkDescriptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field work_descriptions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WorkDescriptions); err != nil {
					return fmt.Errorf("unmarshal field work_descriptions: %w", err)
				}
			}
		case servicerecord.FieldSourceStem:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_stem", values[i])
			} else if value.Valid {
				_m.SourceStem = value.String
			}
		case servicerecord.FieldOverridden:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field overridden", values[i])
			} else if value.Valid {
				_m.Overridden = value.Bool
			}
		case servicerecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ServiceRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ServiceRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ServiceRecord.
// Note that you need to call ServiceRecord.Unwrap() before calling this method if this ServiceRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ServiceRecord) Update() *ServiceRecordUpdateOne {
	return NewServiceRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ServiceRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ServiceRecord) Unwrap() *ServiceRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ServiceRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ServiceRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ServiceRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("record_id=")
	builder.WriteString(_m.RecordID)
	builder.WriteString(", ")
	builder.WriteString("service_date=")
	builder.WriteString(_m.ServiceDate)
	builder.WriteString(", ")
	builder.WriteString("company=")
	builder.WriteString(_m.Company)
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteString(", ")
	if v := _m.VatAmount; v != nil {
		builder.WriteString("vat_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.InvoiceNumber; v != nil {
		builder.WriteString("invoice_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OdometerKm; v != nil {
		builder.WriteString("odometer_km=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("work_descriptions=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkDescriptions))
	builder.WriteString(", ")
	builder.WriteString("source_stem=")
	builder.WriteString(_m.SourceStem)
	builder.WriteString(", ")
	builder.WriteString("overridden=")
	builder.WriteString(fmt.Sprintf("%v", _m.Overridden))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ServiceRecords is a parsable slice of ServiceRecord.
type ServiceRecords []*ServiceRecord
