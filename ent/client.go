// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/classpulse/classpulse/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/classpulse/classpulse/ent/apirequestevent"
	"github.com/classpulse/classpulse/ent/sessionevent"
	"github.com/classpulse/classpulse/ent/snapshot"
	"github.com/classpulse/classpulse/ent/submissionevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// APIRequestEvent is the client for interacting with the APIRequestEvent builders.
	APIRequestEvent *APIRequestEventClient
	// SessionEvent is the client for interacting with the SessionEvent builders.
	SessionEvent *SessionEventClient
	// Snapshot is the client for interacting with the Snapshot builders.
	Snapshot *SnapshotClient
	// SubmissionEvent is the client for interacting with the SubmissionEvent builders.
	SubmissionEvent *SubmissionEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.APIRequestEvent = NewAPIRequestEventClient(c.config)
	c.SessionEvent = NewSessionEventClient(c.config)
	c.Snapshot = NewSnapshotClient(c.config)
	c.SubmissionEvent = NewSubmissionEventClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		APIRequestEvent: NewAPIRequestEventClient(cfg),
		SessionEvent:    NewSessionEventClient(cfg),
		Snapshot:        NewSnapshotClient(cfg),
		SubmissionEvent: NewSubmissionEventClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		APIRequestEvent: NewAPIRequestEventClient(cfg),
		SessionEvent:    NewSessionEventClient(cfg),
		Snapshot:        NewSnapshotClient(cfg),
		SubmissionEvent: NewSubmissionEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		APIRequestEvent.
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
	c.APIRequestEvent.Use(hooks...)
	c.SessionEvent.Use(hooks...)
	c.Snapshot.Use(hooks...)
	c.SubmissionEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.APIRequestEvent.Intercept(interceptors...)
	c.SessionEvent.Intercept(interceptors...)
	c.Snapshot.Intercept(interceptors...)
	c.SubmissionEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *APIRequestEventMutation:
		return c.APIRequestEvent.mutate(ctx, m)
	case *SessionEventMutation:
		return c.SessionEvent.mutate(ctx, m)
	case *SnapshotMutation:
		return c.Snapshot.mutate(ctx, m)
	case *SubmissionEventMutation:
		return c.SubmissionEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// APIRequestEventClient is a client for the APIRequestEvent schema.
type APIRequestEventClient struct {
	config
}

// NewAPIRequestEventClient returns a client for the APIRequestEvent from the given config.
func NewAPIRequestEventClient(c config) *APIRequestEventClient {
	return &APIRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `apirequestevent.Hooks(f(g(h())))`.
func (c *APIRequestEventClient) Use(hooks ...Hook) {
	c.hooks.APIRequestEvent = append(c.hooks.APIRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `apirequestevent.Intercept(f(g(h())))`.
func (c *APIRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.APIRequestEvent = append(c.inters.APIRequestEvent, interceptors...)
}

// Create returns a builder for creating a APIRequestEvent entity.
func (c *APIRequestEventClient) Create() *APIRequestEventCreate {
	mutation := newAPIRequestEventMutation(c.config, OpCreate)
	return &APIRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of APIRequestEvent entities.
func (c *APIRequestEventClient) CreateBulk(builders ...*APIRequestEventCreate) *APIRequestEventCreateBulk {
	return &APIRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *APIRequestEventClient) MapCreateBulk(slice any, setFunc func(*APIRequestEventCreate, int)) *APIRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &APIRequestEventCreateBulk{err: fmt.Errorf("calling to APIRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*APIRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &APIRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for APIRequestEvent.
func (c *APIRequestEventClient) Update() *APIRequestEventUpdate {
	mutation := newAPIRequestEventMutation(c.config, OpUpdate)
	return &APIRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *APIRequestEventClient) UpdateOne(_m *APIRequestEvent) *APIRequestEventUpdateOne {
	mutation := newAPIRequestEventMutation(c.config, OpUpdateOne, withAPIRequestEvent(_m))
	return &APIRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *APIRequestEventClient) UpdateOneID(id int) *APIRequestEventUpdateOne {
	mutation := newAPIRequestEventMutation(c.config, OpUpdateOne, withAPIRequestEventID(id))
	return &APIRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for APIRequestEvent.
func (c *APIRequestEventClient) Delete() *APIRequestEventDelete {
	mutation := newAPIRequestEventMutation(c.config, OpDelete)
	return &APIRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *APIRequestEventClient) DeleteOne(_m *APIRequestEvent) *APIRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *APIRequestEventClient) DeleteOneID(id int) *APIRequestEventDeleteOne {
	builder := c.Delete().Where(apirequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &APIRequestEventDeleteOne{builder}
}

// Query returns a query builder for APIRequestEvent.
func (c *APIRequestEventClient) Query() *APIRequestEventQuery {
	return &APIRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAPIRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a APIRequestEvent entity by its id.
func (c *APIRequestEventClient) Get(ctx context.Context, id int) (*APIRequestEvent, error) {
	return c.Query().Where(apirequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *APIRequestEventClient) GetX(ctx context.Context, id int) *APIRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *APIRequestEventClient) Hooks() []Hook {
	return c.hooks.APIRequestEvent
}

// Interceptors returns the client interceptors.
func (c *APIRequestEventClient) Interceptors() []Interceptor {
	return c.inters.APIRequestEvent
}

func (c *APIRequestEventClient) mutate(ctx context.Context, m *APIRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&APIRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&APIRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&APIRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&APIRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown APIRequestEvent mutation op: %q", m.Op())
	}
}

// SessionEventClient is a client for the SessionEvent schema.
type SessionEventClient struct {
	config
}

// NewSessionEventClient returns a client for the SessionEvent from the given config.
func NewSessionEventClient(c config) *SessionEventClient {
	return &SessionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionevent.Hooks(f(g(h())))`.
func (c *SessionEventClient) Use(hooks ...Hook) {
	c.hooks.SessionEvent = append(c.hooks.SessionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionevent.Intercept(f(g(h())))`.
func (c *SessionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionEvent = append(c.inters.SessionEvent, interceptors...)
}

// Create returns a builder for creating a SessionEvent entity.
func (c *SessionEventClient) Create() *SessionEventCreate {
	mutation := newSessionEventMutation(c.config, OpCreate)
	return &SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionEvent entities.
func (c *SessionEventClient) CreateBulk(builders ...*SessionEventCreate) *SessionEventCreateBulk {
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionEventClient) MapCreateBulk(slice any, setFunc func(*SessionEventCreate, int)) *SessionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionEventCreateBulk{err: fmt.Errorf("calling to SessionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionEvent.
func (c *SessionEventClient) Update() *SessionEventUpdate {
	mutation := newSessionEventMutation(c.config, OpUpdate)
	return &SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionEventClient) UpdateOne(_m *SessionEvent) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEvent(_m))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionEventClient) UpdateOneID(id int) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEventID(id))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionEvent.
func (c *SessionEventClient) Delete() *SessionEventDelete {
	mutation := newSessionEventMutation(c.config, OpDelete)
	return &SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionEventClient) DeleteOne(_m *SessionEvent) *SessionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionEventClient) DeleteOneID(id int) *SessionEventDeleteOne {
	builder := c.Delete().Where(sessionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionEventDeleteOne{builder}
}

// Query returns a query builder for SessionEvent.
func (c *SessionEventClient) Query() *SessionEventQuery {
	return &SessionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionEvent entity by its id.
func (c *SessionEventClient) Get(ctx context.Context, id int) (*SessionEvent, error) {
	return c.Query().Where(sessionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionEventClient) GetX(ctx context.Context, id int) *SessionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionEventClient) Hooks() []Hook {
	return c.hooks.SessionEvent
}

// Interceptors returns the client interceptors.
func (c *SessionEventClient) Interceptors() []Interceptor {
	return c.inters.SessionEvent
}

func (c *SessionEventClient) mutate(ctx context.Context, m *SessionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionEvent mutation op: %q", m.Op())
	}
}

// SnapshotClient is a client for the Snapshot schema.
type SnapshotClient struct {
	config
}

// NewSnapshotClient returns a client for the Snapshot from the given config.
func NewSnapshotClient(c config) *SnapshotClient {
	return &SnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `snapshot.Hooks(f(g(h())))`.
func (c *SnapshotClient) Use(hooks ...Hook) {
	c.hooks.Snapshot = append(c.hooks.Snapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `snapshot.Intercept(f(g(h())))`.
func (c *SnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.Snapshot = append(c.inters.Snapshot, interceptors...)
}

// Create returns a builder for creating a Snapshot entity.
func (c *SnapshotClient) Create() *SnapshotCreate {
	mutation := newSnapshotMutation(c.config, OpCreate)
	return &SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Snapshot entities.
func (c *SnapshotClient) CreateBulk(builders ...*SnapshotCreate) *SnapshotCreateBulk {
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SnapshotClient) MapCreateBulk(slice any, setFunc func(*SnapshotCreate, int)) *SnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SnapshotCreateBulk{err: fmt.Errorf("calling to SnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Snapshot.
func (c *SnapshotClient) Update() *SnapshotUpdate {
	mutation := newSnapshotMutation(c.config, OpUpdate)
	return &SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SnapshotClient) UpdateOne(_m *Snapshot) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshot(_m))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SnapshotClient) UpdateOneID(id int) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshotID(id))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Snapshot.
func (c *SnapshotClient) Delete() *SnapshotDelete {
	mutation := newSnapshotMutation(c.config, OpDelete)
	return &SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SnapshotClient) DeleteOne(_m *Snapshot) *SnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SnapshotClient) DeleteOneID(id int) *SnapshotDeleteOne {
	builder := c.Delete().Where(snapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SnapshotDeleteOne{builder}
}

// Query returns a query builder for Snapshot.
func (c *SnapshotClient) Query() *SnapshotQuery {
	return &SnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a Snapshot entity by its id.
func (c *SnapshotClient) Get(ctx context.Context, id int) (*Snapshot, error) {
	return c.Query().Where(snapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SnapshotClient) GetX(ctx context.Context, id int) *Snapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SnapshotClient) Hooks() []Hook {
	return c.hooks.Snapshot
}

// Interceptors returns the client interceptors.
func (c *SnapshotClient) Interceptors() []Interceptor {
	return c.inters.Snapshot
}

func (c *SnapshotClient) mutate(ctx context.Context, m *SnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Snapshot mutation op: %q", m.Op())
	}
}

// SubmissionEventClient is a client for the SubmissionEvent schema.
type SubmissionEventClient struct {
	config
}

// NewSubmissionEventClient returns a client for the SubmissionEvent from the given config.
func NewSubmissionEventClient(c config) *SubmissionEventClient {
	return &SubmissionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `submissionevent.Hooks(f(g(h())))`.
func (c *SubmissionEventClient) Use(hooks ...Hook) {
	c.hooks.SubmissionEvent = append(c.hooks.SubmissionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `submissionevent.Intercept(f(g(h())))`.
func (c *SubmissionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SubmissionEvent = append(c.inters.SubmissionEvent, interceptors...)
}

// Create returns a builder for creating a SubmissionEvent entity.
func (c *SubmissionEventClient) Create() *SubmissionEventCreate {
	mutation := newSubmissionEventMutation(c.config, OpCreate)
	return &SubmissionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SubmissionEvent entities.
func (c *SubmissionEventClient) CreateBulk(builders ...*SubmissionEventCreate) *SubmissionEventCreateBulk {
	return &SubmissionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubmissionEventClient) MapCreateBulk(slice any, setFunc func(*SubmissionEventCreate, int)) *SubmissionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubmissionEventCreateBulk{err: fmt.Errorf("calling to SubmissionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubmissionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubmissionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SubmissionEvent.
func (c *SubmissionEventClient) Update() *SubmissionEventUpdate {
	mutation := newSubmissionEventMutation(c.config, OpUpdate)
	return &SubmissionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubmissionEventClient) UpdateOne(_m *SubmissionEvent) *SubmissionEventUpdateOne {
	mutation := newSubmissionEventMutation(c.config, OpUpdateOne, withSubmissionEvent(_m))
	return &SubmissionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubmissionEventClient) UpdateOneID(id int) *SubmissionEventUpdateOne {
	mutation := newSubmissionEventMutation(c.config, OpUpdateOne, withSubmissionEventID(id))
	return &SubmissionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SubmissionEvent.
func (c *SubmissionEventClient) Delete() *SubmissionEventDelete {
	mutation := newSubmissionEventMutation(c.config, OpDelete)
	return &SubmissionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubmissionEventClient) DeleteOne(_m *SubmissionEvent) *SubmissionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubmissionEventClient) DeleteOneID(id int) *SubmissionEventDeleteOne {
	builder := c.Delete().Where(submissionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubmissionEventDeleteOne{builder}
}

// Query returns a query builder for SubmissionEvent.
func (c *SubmissionEventClient) Query() *SubmissionEventQuery {
	return &SubmissionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubmissionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SubmissionEvent entity by its id.
func (c *SubmissionEventClient) Get(ctx context.Context, id int) (*SubmissionEvent, error) {
	return c.Query().Where(submissionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubmissionEventClient) GetX(ctx context.Context, id int) *SubmissionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SubmissionEventClient) Hooks() []Hook {
	return c.hooks.SubmissionEvent
}

// Interceptors returns the client interceptors.
func (c *SubmissionEventClient) Interceptors() []Interceptor {
	return c.inters.SubmissionEvent
}

func (c *SubmissionEventClient) mutate(ctx context.Context, m *SubmissionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubmissionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubmissionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubmissionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubmissionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SubmissionEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		APIRequestEvent, SessionEvent, Snapshot, SubmissionEvent []ent.Hook
	}
	inters struct {
		APIRequestEvent, SessionEvent, Snapshot, SubmissionEvent []ent.Interceptor
	}
)
