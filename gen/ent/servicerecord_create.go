// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tkarvonen/huoltokirja/gen/ent/servicerecord"
)

// ServiceRecordCreate is the builder for creating a ServiceRecord entity.
type ServiceRecordCreate struct {
	config
	mutation *ServiceRecordMutation
	hooks    []Hook
}

// SetRecordID sets the "record_id" field.
func (_c *ServiceRecordCreate) SetRecordID(v string) *ServiceRecordCreate {
	_c.mutation.SetRecordID(v)
	return _c
}

// SetServiceDate sets the "service_date" field.
func (_c *ServiceRecordCreate) SetServiceDate(v string) *ServiceRecordCreate {
	_c.mutation.SetServiceDate(v)
	return _c
}

// SetCompany sets the "company" field.
func (_c *ServiceRecordCreate) SetCompany(v string) *ServiceRecordCreate {
	_c.mutation.SetCompany(v)
	return _c
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_c *ServiceRecordCreate) SetNillableCompany(v *string) *ServiceRecordCreate {
	if v != nil {
		_c.SetCompany(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *ServiceRecordCreate) SetAmount(v float64) *ServiceRecordCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_c *ServiceRecordCreate) SetNillableAmount(v *float64) *ServiceRecordCreate {
	if v != nil {
		_c.SetAmount(*v)
	}
	return _c
}

// SetVatAmount sets the "vat_amount" field.
func (_c *ServiceRecordCreate) SetVatAmount(v float64) *ServiceRecordCreate {
	_c.mutation.SetVatAmount(v)
	return _c
}

// SetNillableVatAmount sets the "vat_amount" field if the given value is not nil.
func (_c *ServiceRecordCreate) SetNillableVatAmount(v *float64) *ServiceRecordCreate {
	if v != nil {
		_c.SetVatAmount(*v)
	}
	return _c
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_c *ServiceRecordCreate) SetInvoiceNumber(v string) *ServiceRecordCreate {
	_c.mutation.SetInvoiceNumber(v)
	return _c
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_c *ServiceRecordCreate) SetNillableInvoiceNumber(v *string) *ServiceRecordCreate {
	if v != nil {
		_c.SetInvoiceNumber(*v)
	}
	return _c
}

// SetOdometerKm sets the "odometer_km" field.
func (_c *ServiceRecordCreate) SetOdometerKm(v int) *ServiceRecordCreate {
	_c.mutation.SetOdometerKm(v)
	return _c
}

// SetNillableOdometerKm sets the "odometer_km" field if the given value is not nil.
func (_c *ServiceRecordCreate) SetNillableOdometerKm(v *int) *ServiceRecordCreate {
	if v != nil {
		_c.SetOdometerKm(*v)
	}
	return _c
}

// SetWorkDescriptions sets the "work_descriptions" field.
func (_c *ServiceRecordCreate) SetWorkDescriptions(v []string) *ServiceRecordCreate {
	_c.mutation.SetWorkDescriptions(v)
	return _c
}

// SetSourceStem sets the "source_stem" field.
func (_c *ServiceRecordCreate) SetSourceStem(v string) *ServiceRecordCreate {
	_c.mutation.SetSourceStem(v)
	return _c
}

// SetOverridden sets the "overridden" field.
func (_c *ServiceRecordCreate) SetOverridden(v bool) *ServiceRecordCreate {
	_c.mutation.SetOverridden(v)
	return _c
}

// SetNillableOverridden sets the "overridden" field if the given value is not nil.
func (_c *ServiceRecordCreate) SetNillableOverridden(v *bool) *ServiceRecordCreate {
	if v != nil {
		_c.SetOverridden(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ServiceRecordCreate) SetCreatedAt(v time.Time) *ServiceRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ServiceRecordCreate) SetNillableCreatedAt(v *time.Time) *ServiceRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ServiceRecordCreate) SetID(v uuid.UUID) *ServiceRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ServiceRecordCreate) SetNillableID(v *uuid.UUID) *ServiceRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ServiceRecordMutation object of the builder.
func (_c *ServiceRecordCreate) Mutation() *ServiceRecordMutation {
	return _c.mutation
}

// Save creates the ServiceRecord in the database.
func (_c *ServiceRecordCreate) Save(ctx context.Context) (*ServiceRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ServiceRecordCreate) SaveX(ctx context.Context) *ServiceRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ServiceRecordCreate) defaults() {
	if _, ok := _c.mutation.Amount(); !ok {
		v := servicerecord.DefaultAmount
		_c.mutation.SetAmount(v)
	}
	if _, ok := _c.mutation.Overridden(); !ok {
		v := servicerecord.DefaultOverridden
		_c.mutation.SetOverridden(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := servicerecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := servicerecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ServiceRecordCreate) check() error {
	if _, ok := _c.mutation.RecordID(); !ok {
		return &ValidationError{Name: "record_id", err: errors.New(`ent: missing required field "ServiceRecord.record_id"`)}
	}
	if v, ok := _c.mutation.RecordID(); ok {
		if err := servicerecord.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "ServiceRecord.record_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ServiceDate(); !ok {
		return &ValidationError{Name: "service_date", err: errors.New(`ent: missing required field "ServiceRecord.service_date"`)}
	}
	if v, ok := _c.mutation.ServiceDate(); ok {
		if err := servicerecord.ServiceDateValidator(v); err != nil {
			return &ValidationError{Name: "service_date", err: fmt.Errorf(`ent: validator failed for field "ServiceRecord.service_date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "ServiceRecord.amount"`)}
	}
	if _, ok := _c.mutation.SourceStem(); !ok {
		return &ValidationError{Name: "source_stem", err: errors.New(`ent: missing required field "ServiceRecord.source_stem"`)}
	}
	if v, ok := _c.mutation.SourceStem(); ok {
		if err := servicerecord.SourceStemValidator(v); err != nil {
			return &ValidationError{Name: "source_stem", err: fmt.Errorf(`ent: validator failed for field "ServiceRecord.source_stem": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Overridden(); !ok {
		return &ValidationError{Name: "overridden", err: errors.New(`ent: missing required field "ServiceRecord.overridden"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ServiceRecord.created_at"`)}
	}
	return nil
}

func (_c *ServiceRecordCreate) sqlSave(ctx context.Context) (*ServiceRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ServiceRecordCreate) createSpec() (*ServiceRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ServiceRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(servicerecord.Table, sqlgraph.NewFieldSpec(servicerecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RecordID(); ok {
		_spec.SetField(servicerecord.FieldRecordID, field.TypeString, value)
		_node.RecordID = value
	}
	if value, ok := _c.mutation.ServiceDate(); ok {
		_spec.SetField(servicerecord.FieldServiceDate, field.TypeString, value)
		_node.ServiceDate = value
	}
	if value, ok := _c.mutation.Company(); ok {
		_spec.SetField(servicerecord.FieldCompany, field.TypeString, value)
		_node.Company = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(servicerecord.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.VatAmount(); ok {
		_spec.SetField(servicerecord.FieldVatAmount, field.TypeFloat64, value)
		_node.VatAmount = &value
	}
	if value, ok := _c.mutation.InvoiceNumber(); ok {
		_spec.SetField(servicerecord.FieldInvoiceNumber, field.TypeString, value)
		_node.InvoiceNumber = &value
	}
	if value, ok := _c.mutation.OdometerKm(); ok {
		_spec.SetField(servicerecord.FieldOdometerKm, field.TypeInt, value)
		_node.OdometerKm = &value
	}
	if value, ok := _c.mutation.WorkDescriptions(); ok {
		_spec.SetField(servicerecord.FieldWorkDescriptions, field.TypeJSON, value)
		_node.WorkDescriptions = value
	}
	if value, ok := _c.mutation.SourceStem(); ok {
		_spec.SetField(servicerecord.FieldSourceStem, field.TypeString, value)
		_node.SourceStem = value
	}
	if value, ok := _c.mutation.Overridden(); ok {
		_spec.SetField(servicerecord.FieldOverridden, field.TypeBool, value)
		_node.Overridden = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(servicerecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ServiceRecordCreateBulk is the builder for creating many ServiceRecord entities in bulk.
type ServiceRecordCreateBulk struct {
	config
	err      error
	builders []*ServiceRecordCreate
}

// Save creates the ServiceRecord entities in the database.
func (_c *ServiceRecordCreateBulk) Save(ctx context.Context) ([]*ServiceRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ServiceRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ServiceRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ServiceRecordCreateBulk) SaveX(ctx context.Context) []*ServiceRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
