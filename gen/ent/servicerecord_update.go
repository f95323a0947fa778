// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/tkarvonen/huoltokirja/gen/ent/predicate"
	"github.com/tkarvonen/huoltokirja/gen/ent/servicerecord"
)

// ServiceRecordUpdate is the builder for updating ServiceRecord entities.
type ServiceRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ServiceRecordMutation
}

// Where appends a list predicates to the ServiceRecordUpdate builder.
func (_u *ServiceRecordUpdate) Where(ps ...predicate.ServiceRecord) *ServiceRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRecordID sets the "record_id" field.
func (_u *ServiceRecordUpdate) SetRecordID(v string) *ServiceRecordUpdate {
	_u.mutation.SetRecordID(v)
	return _u
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (_u *ServiceRecordUpdate) SetNillableRecordID(v *string) *ServiceRecordUpdate {
	if v != nil {
		_u.SetRecordID(*v)
	}
	return _u
}

// SetServiceDate sets the "service_date" field.
func (_u *ServiceRecordUpdate) SetServiceDate(v string) *ServiceRecordUpdate {
	_u.mutation.SetServiceDate(v)
	return _u
}

// SetNillableServiceDate sets the "service_date" field if the given value is not nil.
func (_u *ServiceRecordUpdate) SetNillableServiceDate(v *string) *ServiceRecordUpdate {
	if v != nil {
		_u.SetServiceDate(*v)
	}
	return _u
}

// SetCompany sets the "company" field.
func (_u *ServiceRecordUpdate) SetCompany(v string) *ServiceRecordUpdate {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *ServiceRecordUpdate) SetNillableCompany(v *string) *ServiceRecordUpdate {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *ServiceRecordUpdate) ClearCompany() *ServiceRecordUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ServiceRecordUpdate) SetAmount(v float64) *ServiceRecordUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ServiceRecordUpdate) SetNillableAmount(v *float64) *ServiceRecordUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ServiceRecordUpdate) AddAmount(v float64) *ServiceRecordUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetVatAmount sets the "vat_amount" field.
func (_u *ServiceRecordUpdate) SetVatAmount(v float64) *ServiceRecordUpdate {
	_u.mutation.ResetVatAmount()
	_u.mutation.SetVatAmount(v)
	return _u
}

// SetNillableVatAmount sets the "vat_amount" field if the given value is not nil.
func (_u *ServiceRecordUpdate) SetNillableVatAmount(v *float64) *ServiceRecordUpdate {
	if v != nil {
		_u.SetVatAmount(*v)
	}
	return _u
}

// AddVatAmount adds value to the "vat_amount" field.
func (_u *ServiceRecordUpdate) AddVatAmount(v float64) *ServiceRecordUpdate {
	_u.mutation.AddVatAmount(v)
	return _u
}

// ClearVatAmount clears the value of the "vat_amount" field.
func (_u *ServiceRecordUpdate) ClearVatAmount() *ServiceRecordUpdate {
	_u.mutation.ClearVatAmount()
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *ServiceRecordUpdate) SetInvoiceNumber(v string) *ServiceRecordUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *ServiceRecordUpdate) SetNillableInvoiceNumber(v *string) *ServiceRecordUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *ServiceRecordUpdate) ClearInvoiceNumber() *ServiceRecordUpdate {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetOdometerKm sets the "odometer_km" field.
func (_u *ServiceRecordUpdate) SetOdometerKm(v int) *ServiceRecordUpdate {
	_u.mutation.ResetOdometerKm()
	_u.mutation.SetOdometerKm(v)
	return _u
}

// SetNillableOdometerKm sets the "odometer_km" field if the given value is not nil.
func (_u *ServiceRecordUpdate) SetNillableOdometerKm(v *int) *ServiceRecordUpdate {
	if v != nil {
		_u.SetOdometerKm(*v)
	}
	return _u
}

// AddOdometerKm adds value to the "odometer_km" field.
func (_u *ServiceRecordUpdate) AddOdometerKm(v int) *ServiceRecordUpdate {
	_u.mutation.AddOdometerKm(v)
	return _u
}

// ClearOdometerKm clears the value of the "odometer_km" field.
func (_u *ServiceRecordUpdate) ClearOdometerKm() *ServiceRecordUpdate {
	_u.mutation.ClearOdometerKm()
	return _u
}

// SetWorkDescriptions sets the "work_descriptions" field.
func (_u *ServiceRecordUpdate) SetWorkDescriptions(v []string) *ServiceRecordUpdate {
	_u.mutation.SetWorkDescriptions(v)
	return _u
}

// AppendWorkDescriptions appends value to the "work_descriptions" field.
func (_u *ServiceRecordUpdate) AppendWorkDescriptions(v []string) *ServiceRecordUpdate {
	_u.mutation.AppendWorkDescriptions(v)
	return _u
}

// ClearWorkDescriptions clears the value of the "work_descriptions" field.
func (_u *ServiceRecordUpdate) ClearWorkDescriptions() *ServiceRecordUpdate {
	_u.mutation.ClearWorkDescriptions()
	return _u
}

// SetSourceStem sets the "source_stem" field.
func (_u *ServiceRecordUpdate) SetSourceStem(v string) *ServiceRecordUpdate {
	_u.mutation.SetSourceStem(v)
	return _u
}

// SetNillableSourceStem sets the "source_stem" field if the given value is not nil.
func (_u *ServiceRecordUpdate) SetNillableSourceStem(v *string) *ServiceRecordUpdate {
	if v != nil {
		_u.SetSourceStem(*v)
	}
	return _u
}

// SetOverridden sets the "overridden" field.
func (_u *ServiceRecordUpdate) SetOverridden(v bool) *ServiceRecordUpdate {
	_u.mutation.SetOverridden(v)
	return _u
}

// SetNillableOverridden sets the "overridden" field if the given value is not nil.
func (_u *ServiceRecordUpdate) SetNillableOverridden(v *bool) *ServiceRecordUpdate {
	if v != nil {
		_u.SetOverridden(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ServiceRecordUpdate) SetCreatedAt(v time.Time) *ServiceRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ServiceRecordUpdate) SetNillableCreatedAt(v *time.Time) *ServiceRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ServiceRecordMutation object of the builder.
func (_u *ServiceRecordUpdate) Mutation() *ServiceRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ServiceRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServiceRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ServiceRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServiceRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServiceRecordUpdate) check() error {
	if v, ok := _u.mutation.RecordID(); ok {
		if err := servicerecord.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "ServiceRecord.record_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ServiceDate(); ok {
		if err := servicerecord.ServiceDateValidator(v); err != nil {
			return &ValidationError{Name: "service_date", err: fmt.Errorf(`ent: validator failed for field "ServiceRecord.service_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceStem(); ok {
		if err := servicerecord.SourceStemValidator(v); err != nil {
			return &ValidationError{Name: "source_stem", err: fmt.Errorf(`ent: validator failed for field "ServiceRecord.source_stem": %w`, err)}
		}
	}
	return nil
}

func (_u *ServiceRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(servicerecord.Table, servicerecord.Columns, sqlgraph.NewFieldSpec(servicerecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RecordID(); ok {
		_spec.SetField(servicerecord.FieldRecordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ServiceDate(); ok {
		_spec.SetField(servicerecord.FieldServiceDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(servicerecord.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(servicerecord.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(servicerecord.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(servicerecord.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VatAmount(); ok {
		_spec.SetField(servicerecord.FieldVatAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVatAmount(); ok {
		_spec.AddField(servicerecord.FieldVatAmount, field.TypeFloat64, value)
	}
	if _u.mutation.VatAmountCleared() {
		_spec.ClearField(servicerecord.FieldVatAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(servicerecord.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(servicerecord.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.OdometerKm(); ok {
		_spec.SetField(servicerecord.FieldOdometerKm, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOdometerKm(); ok {
		_spec.AddField(servicerecord.FieldOdometerKm, field.TypeInt, value)
	}
	if _u.mutation.OdometerKmCleared() {
		_spec.ClearField(servicerecord.FieldOdometerKm, field.TypeInt)
	}
	if value, ok := _u.mutation.WorkDescriptions(); ok {
		_spec.SetField(servicerecord.FieldWorkDescriptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWorkDescriptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, servicerecord.FieldWorkDescriptions, value)
		})
	}
	if _u.mutation.WorkDescriptionsCleared() {
		_spec.ClearField(servicerecord.FieldWorkDescriptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceStem(); ok {
		_spec.SetField(servicerecord.FieldSourceStem, field.TypeString, value)
	}
	if value, ok := _u.mutation.Overridden(); ok {
		_spec.SetField(servicerecord.FieldOverridden, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(servicerecord.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{servicerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ServiceRecordUpdateOne is the builder for updating a single ServiceRecord entity.
type ServiceRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ServiceRecordMutation
}

// SetRecordID sets the "record_id" field.
func (_u *ServiceRecordUpdateOne) SetRecordID(v string) *ServiceRecordUpdateOne {
	_u.mutation.SetRecordID(v)
	return _u
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (_u *ServiceRecordUpdateOne) SetNillableRecordID(v *string) *ServiceRecordUpdateOne {
	if v != nil {
		_u.SetRecordID(*v)
	}
	return _u
}

// SetServiceDate sets the "service_date" field.
func (_u *ServiceRecordUpdateOne) SetServiceDate(v string) *ServiceRecordUpdateOne {
	_u.mutation.SetServiceDate(v)
	return _u
}

// SetNillableServiceDate sets the "service_date" field if the given value is not nil.
func (_u *ServiceRecordUpdateOne) SetNillableServiceDate(v *string) *ServiceRecordUpdateOne {
	if v != nil {
		_u.SetServiceDate(*v)
	}
	return _u
}

// SetCompany sets the "company" field.
func (_u *ServiceRecordUpdateOne) SetCompany(v string) *ServiceRecordUpdateOne {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *ServiceRecordUpdateOne) SetNillableCompany(v *string) *ServiceRecordUpdateOne {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *ServiceRecordUpdateOne) ClearCompany() *ServiceRecordUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ServiceRecordUpdateOne) SetAmount(v float64) *ServiceRecordUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ServiceRecordUpdateOne) SetNillableAmount(v *float64) *ServiceRecordUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ServiceRecordUpdateOne) AddAmount(v float64) *ServiceRecordUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetVatAmount sets the "vat_amount" field.
func (_u *ServiceRecordUpdateOne) SetVatAmount(v float64) *ServiceRecordUpdateOne {
	_u.mutation.ResetVatAmount()
	_u.mutation.SetVatAmount(v)
	return _u
}

// SetNillableVatAmount sets the "vat_amount" field if the given value is not nil.
func (_u *ServiceRecordUpdateOne) SetNillableVatAmount(v *float64) *ServiceRecordUpdateOne {
	if v != nil {
		_u.SetVatAmount(*v)
	}
	return _u
}

// AddVatAmount adds value to the "vat_amount" field.
func (_u *ServiceRecordUpdateOne) AddVatAmount(v float64) *ServiceRecordUpdateOne {
	_u.mutation.AddVatAmount(v)
	return _u
}

// ClearVatAmount clears the value of the "vat_amount" field.
func (_u *ServiceRecordUpdateOne) ClearVatAmount() *ServiceRecordUpdateOne {
	_u.mutation.ClearVatAmount()
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *ServiceRecordUpdateOne) SetInvoiceNumber(v string) *ServiceRecordUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *ServiceRecordUpdateOne) SetNillableInvoiceNumber(v *string) *ServiceRecordUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *ServiceRecordUpdateOne) ClearInvoiceNumber() *ServiceRecordUpdateOne {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetOdometerKm sets the "odometer_km" field.
func (_u *ServiceRecordUpdateOne) SetOdometerKm(v int) *ServiceRecordUpdateOne {
	_u.mutation.ResetOdometerKm()
	_u.mutation.SetOdometerKm(v)
	return _u
}

// SetNillableOdometerKm sets the "odometer_km" field if the given value is not nil.
func (_u *ServiceRecordUpdateOne) SetNillableOdometerKm(v *int) *ServiceRecordUpdateOne {
	if v != nil {
		_u.SetOdometerKm(*v)
	}
	return _u
}

// AddOdometerKm adds value to the "odometer_km" field.
func (_u *ServiceRecordUpdateOne) AddOdometerKm(v int) *ServiceRecordUpdateOne {
	_u.mutation.AddOdometerKm(v)
	return _u
}

// ClearOdometerKm clears the value of the "odometer_km" field.
func (_u *ServiceRecordUpdateOne) ClearOdometerKm() *ServiceRecordUpdateOne {
	_u.mutation.ClearOdometerKm()
	return _u
}

// SetWorkDescriptions sets the "work_descriptions" field.
func (_u *ServiceRecordUpdateOne) SetWorkDescriptions(v []string) *ServiceRecordUpdateOne {
	_u.mutation.SetWorkDescriptions(v)
	return _u
}

// AppendWorkDescriptions appends value to the "work_descriptions" field.
func (_u *ServiceRecordUpdateOne) AppendWorkDescriptions(v []string) *ServiceRecordUpdateOne {
	_u.mutation.AppendWorkDescriptions(v)
	return _u
}

// ClearWorkDescriptions clears the value of the "work_descriptions" field.
func (_u *ServiceRecordUpdateOne) ClearWorkDescriptions() *ServiceRecordUpdateOne {
	_u.mutation.ClearWorkDescriptions()
	return _u
}

// SetSourceStem sets the "source_stem" field.
func (_u *ServiceRecordUpdateOne) SetSourceStem(v string) *ServiceRecordUpdateOne {
	_u.mutation.SetSourceStem(v)
	return _u
}

// SetNillableSourceStem sets the "source_stem" field if the given value is not nil.
func (_u *ServiceRecordUpdateOne) SetNillableSourceStem(v *string) *ServiceRecordUpdateOne {
	if v != nil {
		_u.SetSourceStem(*v)
	}
	return _u
}

// SetOverridden sets the "overridden" field.
func (_u *ServiceRecordUpdateOne) SetOverridden(v bool) *ServiceRecordUpdateOne {
	_u.mutation.SetOverridden(v)
	return _u
}

// SetNillableOverridden sets the "overridden" field if the given value is not nil.
func (_u *ServiceRecordUpdateOne) SetNillableOverridden(v *bool) *ServiceRecordUpdateOne {
	if v != nil {
		_u.SetOverridden(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ServiceRecordUpdateOne) SetCreatedAt(v time.Time) *ServiceRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ServiceRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *ServiceRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ServiceRecordMutation object of the builder.
func (_u *ServiceRecordUpdateOne) Mutation() *ServiceRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ServiceRecordUpdate builder.
func (_u *ServiceRecordUpdateOne) Where(ps ...predicate.ServiceRecord) *ServiceRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ServiceRecordUpdateOne) Select(field string, fields ...string) *ServiceRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ServiceRecord entity.
func (_u *ServiceRecordUpdateOne) Save(ctx context.Context) (*ServiceRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServiceRecordUpdateOne) SaveX(ctx context.Context) *ServiceRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ServiceRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServiceRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServiceRecordUpdateOne) check() error {
	if v, ok := _u.mutation.RecordID(); ok {
		if err := servicerecord.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "ServiceRecord.record_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ServiceDate(); ok {
		if err := servicerecord.ServiceDateValidator(v); err != nil {
			return &ValidationError{Name: "service_date", err: fmt.Errorf(`ent: validator failed for field "ServiceRecord.service_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceStem(); ok {
		if err := servicerecord.SourceStemValidator(v); err != nil {
			return &ValidationError{Name: "source_stem", err: fmt.Errorf(`ent: validator failed for field "ServiceRecord.source_stem": %w`, err)}
		}
	}
	return nil
}

func (_u *ServiceRecordUpdateOne) sqlSave(ctx context.Context) (_node *ServiceRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(servicerecord.Table, servicerecord.Columns, sqlgraph.NewFieldSpec(servicerecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ServiceRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, servicerecord.FieldID)
		for _, f := range fields {
			if !servicerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != servicerecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RecordID(); ok {
		_spec.SetField(servicerecord.FieldRecordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ServiceDate(); ok {
		_spec.SetField(servicerecord.FieldServiceDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(servicerecord.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(servicerecord.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(servicerecord.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(servicerecord.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VatAmount(); ok {
		_spec.SetField(servicerecord.FieldVatAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVatAmount(); ok {
		_spec.AddField(servicerecord.FieldVatAmount, field.TypeFloat64, value)
	}
	if _u.mutation.VatAmountCleared() {
		_spec.ClearField(servicerecord.FieldVatAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(servicerecord.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(servicerecord.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.OdometerKm(); ok {
		_spec.SetField(servicerecord.FieldOdometerKm, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOdometerKm(); ok {
		_spec.AddField(servicerecord.FieldOdometerKm, field.TypeInt, value)
	}
	if _u.mutation.OdometerKmCleared() {
		_spec.ClearField(servicerecord.FieldOdometerKm, field.TypeInt)
	}
	if value, ok := _u.mutation.WorkDescriptions(); ok {
		_spec.SetField(servicerecord.FieldWorkDescriptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWorkDescriptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, servicerecord.FieldWorkDescriptions, value)
		})
	}
	if _u.mutation.WorkDescriptionsCleared() {
		_spec.ClearField(servicerecord.FieldWorkDescriptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceStem(); ok {
		_spec.SetField(servicerecord.FieldSourceStem, field.TypeString, value)
	}
	if value, ok := _u.mutation.Overridden(); ok {
		_spec.SetField(servicerecord.FieldOverridden, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(servicerecord.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &ServiceRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{servicerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
