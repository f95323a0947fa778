// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/tkarvonen/huoltokirja/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tkarvonen/huoltokirja/gen/ent/document"
	"github.com/tkarvonen/huoltokirja/gen/ent/extractionrun"
	"github.com/tkarvonen/huoltokirja/gen/ent/servicerecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// ExtractionRun is the client for interacting with the ExtractionRun builders.
	ExtractionRun *ExtractionRunClient
	// ServiceRecord is the client for interacting with the ServiceRecord builders.
	ServiceRecord *ServiceRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Document = NewDocumentClient(c.config)
	c.ExtractionRun = NewExtractionRunClient(c.config)
	c.ServiceRecord = NewServiceRecordClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		Document:      NewDocumentClient(cfg),
		ExtractionRun: NewExtractionRunClient(cfg),
		ServiceRecord: NewServiceRecordClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		Document:      NewDocumentClient(cfg),
		ExtractionRun: NewExtractionRunClient(cfg),
		ServiceRecord: NewServiceRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Document.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Document.Use(hooks...)
	c.ExtractionRun.Use(hooks...)
	c.ServiceRecord.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Document.Intercept(interceptors...)
	c.ExtractionRun.Intercept(interceptors...)
	c.ServiceRecord.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *ExtractionRunMutation:
		return c.ExtractionRun.mutate(ctx, m)
	case *ServiceRecordMutation:
		return c.ServiceRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id uuid.UUID) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id uuid.UUID) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id uuid.UUID) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRuns queries the runs edge of a Document.
func (c *DocumentClient) QueryRuns(_m *Document) *ExtractionRunQuery {
	query := (&ExtractionRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(extractionrun.Table, extractionrun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.RunsTable, document.RunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// ExtractionRunClient is a client for the ExtractionRun schema.
type ExtractionRunClient struct {
	config
}

// NewExtractionRunClient returns a client for the ExtractionRun from the given config.
func NewExtractionRunClient(c config) *ExtractionRunClient {
	return &ExtractionRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractionrun.Hooks(f(g(h())))`.
func (c *ExtractionRunClient) Use(hooks ...Hook) {
	c.hooks.ExtractionRun = append(c.hooks.ExtractionRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractionrun.Intercept(f(g(h())))`.
func (c *ExtractionRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractionRun = append(c.inters.ExtractionRun, interceptors...)
}

// Create returns a builder for creating a ExtractionRun entity.
func (c *ExtractionRunClient) Create() *ExtractionRunCreate {
	mutation := newExtractionRunMutation(c.config, OpCreate)
	return &ExtractionRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractionRun entities.
func (c *ExtractionRunClient) CreateBulk(builders ...*ExtractionRunCreate) *ExtractionRunCreateBulk {
	return &ExtractionRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractionRunClient) MapCreateBulk(slice any, setFunc func(*ExtractionRunCreate, int)) *ExtractionRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractionRunCreateBulk{err: fmt.Errorf("calling to ExtractionRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractionRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractionRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractionRun.
func (c *ExtractionRunClient) Update() *ExtractionRunUpdate {
	mutation := newExtractionRunMutation(c.config, OpUpdate)
	return &ExtractionRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractionRunClient) UpdateOne(_m *ExtractionRun) *ExtractionRunUpdateOne {
	mutation := newExtractionRunMutation(c.config, OpUpdateOne, withExtractionRun(_m))
	return &ExtractionRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractionRunClient) UpdateOneID(id uuid.UUID) *ExtractionRunUpdateOne {
	mutation := newExtractionRunMutation(c.config, OpUpdateOne, withExtractionRunID(id))
	return &ExtractionRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractionRun.
func (c *ExtractionRunClient) Delete() *ExtractionRunDelete {
	mutation := newExtractionRunMutation(c.config, OpDelete)
	return &ExtractionRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractionRunClient) DeleteOne(_m *ExtractionRun) *ExtractionRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractionRunClient) DeleteOneID(id uuid.UUID) *ExtractionRunDeleteOne {
	builder := c.Delete().Where(extractionrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractionRunDeleteOne{builder}
}

// Query returns a query builder for ExtractionRun.
func (c *ExtractionRunClient) Query() *ExtractionRunQuery {
	return &ExtractionRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractionRun},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractionRun entity by its id.
func (c *ExtractionRunClient) Get(ctx context.Context, id uuid.UUID) (*ExtractionRun, error) {
	return c.Query().Where(extractionrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractionRunClient) GetX(ctx context.Context, id uuid.UUID) *ExtractionRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a ExtractionRun.
func (c *ExtractionRunClient) QueryDocument(_m *ExtractionRun) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionrun.Table, extractionrun.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractionrun.DocumentTable, extractionrun.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractionRunClient) Hooks() []Hook {
	return c.hooks.ExtractionRun
}

// Interceptors returns the client interceptors.
func (c *ExtractionRunClient) Interceptors() []Interceptor {
	return c.inters.ExtractionRun
}

func (c *ExtractionRunClient) mutate(ctx context.Context, m *ExtractionRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractionRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractionRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractionRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractionRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractionRun mutation op: %q", m.Op())
	}
}

// ServiceRecordClient is a client for the ServiceRecord schema.
type ServiceRecordClient struct {
	config
}

// NewServiceRecordClient returns a client for the ServiceRecord from the given config.
func NewServiceRecordClient(c config) *ServiceRecordClient {
	return &ServiceRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `servicerecord.Hooks(f(g(h())))`.
func (c *ServiceRecordClient) Use(hooks ...Hook) {
	c.hooks.ServiceRecord = append(c.hooks.ServiceRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `servicerecord.Intercept(f(g(h())))`.
func (c *ServiceRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ServiceRecord = append(c.inters.ServiceRecord, interceptors...)
}

// Create returns a builder for creating a ServiceRecord entity.
func (c *ServiceRecordClient) Create() *ServiceRecordCreate {
	mutation := newServiceRecordMutation(c.config, OpCreate)
	return &ServiceRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ServiceRecord entities.
func (c *ServiceRecordClient) CreateBulk(builders ...*ServiceRecordCreate) *ServiceRecordCreateBulk {
	return &ServiceRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ServiceRecordClient) MapCreateBulk(slice any, setFunc func(*ServiceRecordCreate, int)) *ServiceRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ServiceRecordCreateBulk{err: fmt.Errorf("calling to ServiceRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ServiceRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ServiceRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ServiceRecord.
func (c *ServiceRecordClient) Update() *ServiceRecordUpdate {
	mutation := newServiceRecordMutation(c.config, OpUpdate)
	return &ServiceRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ServiceRecordClient) UpdateOne(_m *ServiceRecord) *ServiceRecordUpdateOne {
	mutation := newServiceRecordMutation(c.config, OpUpdateOne, withServiceRecord(_m))
	return &ServiceRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ServiceRecordClient) UpdateOneID(id uuid.UUID) *ServiceRecordUpdateOne {
	mutation := newServiceRecordMutation(c.config, OpUpdateOne, withServiceRecordID(id))
	return &ServiceRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ServiceRecord.
func (c *ServiceRecordClient) Delete() *ServiceRecordDelete {
	mutation := newServiceRecordMutation(c.config, OpDelete)
	return &ServiceRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ServiceRecordClient) DeleteOne(_m *ServiceRecord) *ServiceRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ServiceRecordClient) DeleteOneID(id uuid.UUID) *ServiceRecordDeleteOne {
	builder := c.Delete().Where(servicerecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ServiceRecordDeleteOne{builder}
}

// Query returns a query builder for ServiceRecord.
func (c *ServiceRecordClient) Query() *ServiceRecordQuery {
	return &ServiceRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeServiceRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ServiceRecord entity by its id.
func (c *ServiceRecordClient) Get(ctx context.Context, id uuid.UUID) (*ServiceRecord, error) {
	return c.Query().Where(servicerecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ServiceRecordClient) GetX(ctx context.Context, id uuid.UUID) *ServiceRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ServiceRecordClient) Hooks() []Hook {
	return c.hooks.ServiceRecord
}

// Interceptors returns the client interceptors.
func (c *ServiceRecordClient) Interceptors() []Interceptor {
	return c.inters.ServiceRecord
}

func (c *ServiceRecordClient) mutate(ctx context.Context, m *ServiceRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ServiceRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ServiceRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ServiceRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ServiceRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ServiceRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Document, ExtractionRun, ServiceRecord []ent.Hook
	}
	inters struct {
		Document, ExtractionRun, ServiceRecord []ent.Interceptor
	}
)
