// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/walkinmyshoes/wims/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/walkinmyshoes/wims/ent/assessmentevent"
	"github.com/walkinmyshoes/wims/ent/certificate"
	"github.com/walkinmyshoes/wims/ent/profilesnapshot"
	"github.com/walkinmyshoes/wims/ent/scenarioevent"
	"github.com/walkinmyshoes/wims/ent/scoreevent"
	"github.com/walkinmyshoes/wims/ent/sessionevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AssessmentEvent is the client for interacting with the AssessmentEvent builders.
	AssessmentEvent *AssessmentEventClient
	// Certificate is the client for interacting with the Certificate builders.
	Certificate *CertificateClient
	// ProfileSnapshot is the client for interacting with the ProfileSnapshot builders.
	ProfileSnapshot *ProfileSnapshotClient
	// ScenarioEvent is the client for interacting with the ScenarioEvent builders.
	ScenarioEvent *ScenarioEventClient
	// ScoreEvent is the client for interacting with the ScoreEvent builders.
	ScoreEvent *ScoreEventClient
	// SessionEvent is the client for interacting with the SessionEvent builders.
	SessionEvent *SessionEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AssessmentEvent = NewAssessmentEventClient(c.config)
	c.Certificate = NewCertificateClient(c.config)
	c.ProfileSnapshot = NewProfileSnapshotClient(c.config)
	c.ScenarioEvent = NewScenarioEventClient(c.config)
	c.ScoreEvent = NewScoreEventClient(c.config)
	c.SessionEvent = NewSessionEventClient(c.config)
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
		AssessmentEvent: NewAssessmentEventClient(cfg),
		Certificate:     NewCertificateClient(cfg),
		ProfileSnapshot: NewProfileSnapshotClient(cfg),
		ScenarioEvent:   NewScenarioEventClient(cfg),
		ScoreEvent:      NewScoreEventClient(cfg),
		SessionEvent:    NewSessionEventClient(cfg),
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
		AssessmentEvent: NewAssessmentEventClient(cfg),
		Certificate:     NewCertificateClient(cfg),
		ProfileSnapshot: NewProfileSnapshotClient(cfg),
		ScenarioEvent:   NewScenarioEventClient(cfg),
		ScoreEvent:      NewScoreEventClient(cfg),
		SessionEvent:    NewSessionEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AssessmentEvent.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.AssessmentEvent, c.Certificate, c.ProfileSnapshot, c.ScenarioEvent,
		c.ScoreEvent, c.SessionEvent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AssessmentEvent, c.Certificate, c.ProfileSnapshot, c.ScenarioEvent,
		c.ScoreEvent, c.SessionEvent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AssessmentEventMutation:
		return c.AssessmentEvent.mutate(ctx, m)
	case *CertificateMutation:
		return c.Certificate.mutate(ctx, m)
	case *ProfileSnapshotMutation:
		return c.ProfileSnapshot.mutate(ctx, m)
	case *ScenarioEventMutation:
		return c.ScenarioEvent.mutate(ctx, m)
	case *ScoreEventMutation:
		return c.ScoreEvent.mutate(ctx, m)
	case *SessionEventMutation:
		return c.SessionEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AssessmentEventClient is a client for the AssessmentEvent schema.
type AssessmentEventClient struct {
	config
}

// NewAssessmentEventClient returns a client for the AssessmentEvent from the given config.
func NewAssessmentEventClient(c config) *AssessmentEventClient {
	return &AssessmentEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assessmentevent.Hooks(f(g(h())))`.
func (c *AssessmentEventClient) Use(hooks ...Hook) {
	c.hooks.AssessmentEvent = append(c.hooks.AssessmentEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assessmentevent.Intercept(f(g(h())))`.
func (c *AssessmentEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AssessmentEvent = append(c.inters.AssessmentEvent, interceptors...)
}

// Create returns a builder for creating a AssessmentEvent entity.
func (c *AssessmentEventClient) Create() *AssessmentEventCreate {
	mutation := newAssessmentEventMutation(c.config, OpCreate)
	return &AssessmentEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AssessmentEvent entities.
func (c *AssessmentEventClient) CreateBulk(builders ...*AssessmentEventCreate) *AssessmentEventCreateBulk {
	return &AssessmentEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssessmentEventClient) MapCreateBulk(slice any, setFunc func(*AssessmentEventCreate, int)) *AssessmentEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssessmentEventCreateBulk{err: fmt.Errorf("calling to AssessmentEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssessmentEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssessmentEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AssessmentEvent.
func (c *AssessmentEventClient) Update() *AssessmentEventUpdate {
	mutation := newAssessmentEventMutation(c.config, OpUpdate)
	return &AssessmentEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssessmentEventClient) UpdateOne(_m *AssessmentEvent) *AssessmentEventUpdateOne {
	mutation := newAssessmentEventMutation(c.config, OpUpdateOne, withAssessmentEvent(_m))
	return &AssessmentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssessmentEventClient) UpdateOneID(id int) *AssessmentEventUpdateOne {
	mutation := newAssessmentEventMutation(c.config, OpUpdateOne, withAssessmentEventID(id))
	return &AssessmentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AssessmentEvent.
func (c *AssessmentEventClient) Delete() *AssessmentEventDelete {
	mutation := newAssessmentEventMutation(c.config, OpDelete)
	return &AssessmentEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssessmentEventClient) DeleteOne(_m *AssessmentEvent) *AssessmentEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssessmentEventClient) DeleteOneID(id int) *AssessmentEventDeleteOne {
	builder := c.Delete().Where(assessmentevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssessmentEventDeleteOne{builder}
}

// Query returns a query builder for AssessmentEvent.
func (c *AssessmentEventClient) Query() *AssessmentEventQuery {
	return &AssessmentEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssessmentEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AssessmentEvent entity by its id.
func (c *AssessmentEventClient) Get(ctx context.Context, id int) (*AssessmentEvent, error) {
	return c.Query().Where(assessmentevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssessmentEventClient) GetX(ctx context.Context, id int) *AssessmentEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AssessmentEventClient) Hooks() []Hook {
	return c.hooks.AssessmentEvent
}

// Interceptors returns the client interceptors.
func (c *AssessmentEventClient) Interceptors() []Interceptor {
	return c.inters.AssessmentEvent
}

func (c *AssessmentEventClient) mutate(ctx context.Context, m *AssessmentEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssessmentEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssessmentEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssessmentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssessmentEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AssessmentEvent mutation op: %q", m.Op())
	}
}

// CertificateClient is a client for the Certificate schema.
type CertificateClient struct {
	config
}

// NewCertificateClient returns a client for the Certificate from the given config.
func NewCertificateClient(c config) *CertificateClient {
	return &CertificateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `certificate.Hooks(f(g(h())))`.
func (c *CertificateClient) Use(hooks ...Hook) {
	c.hooks.Certificate = append(c.hooks.Certificate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `certificate.Intercept(f(g(h())))`.
func (c *CertificateClient) Intercept(interceptors ...Interceptor) {
	c.inters.Certificate = append(c.inters.Certificate, interceptors...)
}

// Create returns a builder for creating a Certificate entity.
func (c *CertificateClient) Create() *CertificateCreate {
	mutation := newCertificateMutation(c.config, OpCreate)
	return &CertificateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Certificate entities.
func (c *CertificateClient) CreateBulk(builders ...*CertificateCreate) *CertificateCreateBulk {
	return &CertificateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CertificateClient) MapCreateBulk(slice any, setFunc func(*CertificateCreate, int)) *CertificateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CertificateCreateBulk{err: fmt.Errorf("calling to CertificateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CertificateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CertificateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Certificate.
func (c *CertificateClient) Update() *CertificateUpdate {
	mutation := newCertificateMutation(c.config, OpUpdate)
	return &CertificateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CertificateClient) UpdateOne(_m *Certificate) *CertificateUpdateOne {
	mutation := newCertificateMutation(c.config, OpUpdateOne, withCertificate(_m))
	return &CertificateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CertificateClient) UpdateOneID(id int) *CertificateUpdateOne {
	mutation := newCertificateMutation(c.config, OpUpdateOne, withCertificateID(id))
	return &CertificateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Certificate.
func (c *CertificateClient) Delete() *CertificateDelete {
	mutation := newCertificateMutation(c.config, OpDelete)
	return &CertificateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CertificateClient) DeleteOne(_m *Certificate) *CertificateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CertificateClient) DeleteOneID(id int) *CertificateDeleteOne {
	builder := c.Delete().Where(certificate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CertificateDeleteOne{builder}
}

// Query returns a query builder for Certificate.
func (c *CertificateClient) Query() *CertificateQuery {
	return &CertificateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCertificate},
		inters: c.Interceptors(),
	}
}

// Get returns a Certificate entity by its id.
func (c *CertificateClient) Get(ctx context.Context, id int) (*Certificate, error) {
	return c.Query().Where(certificate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CertificateClient) GetX(ctx context.Context, id int) *Certificate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CertificateClient) Hooks() []Hook {
	return c.hooks.Certificate
}

// Interceptors returns the client interceptors.
func (c *CertificateClient) Interceptors() []Interceptor {
	return c.inters.Certificate
}

func (c *CertificateClient) mutate(ctx context.Context, m *CertificateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CertificateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CertificateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CertificateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CertificateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Certificate mutation op: %q", m.Op())
	}
}

// ProfileSnapshotClient is a client for the ProfileSnapshot schema.
type ProfileSnapshotClient struct {
	config
}

// NewProfileSnapshotClient returns a client for the ProfileSnapshot from the given config.
func NewProfileSnapshotClient(c config) *ProfileSnapshotClient {
	return &ProfileSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `profilesnapshot.Hooks(f(g(h())))`.
func (c *ProfileSnapshotClient) Use(hooks ...Hook) {
	c.hooks.ProfileSnapshot = append(c.hooks.ProfileSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `profilesnapshot.Intercept(f(g(h())))`.
func (c *ProfileSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProfileSnapshot = append(c.inters.ProfileSnapshot, interceptors...)
}

// Create returns a builder for creating a ProfileSnapshot entity.
func (c *ProfileSnapshotClient) Create() *ProfileSnapshotCreate {
	mutation := newProfileSnapshotMutation(c.config, OpCreate)
	return &ProfileSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProfileSnapshot entities.
func (c *ProfileSnapshotClient) CreateBulk(builders ...*ProfileSnapshotCreate) *ProfileSnapshotCreateBulk {
	return &ProfileSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProfileSnapshotClient) MapCreateBulk(slice any, setFunc func(*ProfileSnapshotCreate, int)) *ProfileSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProfileSnapshotCreateBulk{err: fmt.Errorf("calling to ProfileSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProfileSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProfileSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProfileSnapshot.
func (c *ProfileSnapshotClient) Update() *ProfileSnapshotUpdate {
	mutation := newProfileSnapshotMutation(c.config, OpUpdate)
	return &ProfileSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProfileSnapshotClient) UpdateOne(_m *ProfileSnapshot) *ProfileSnapshotUpdateOne {
	mutation := newProfileSnapshotMutation(c.config, OpUpdateOne, withProfileSnapshot(_m))
	return &ProfileSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProfileSnapshotClient) UpdateOneID(id int) *ProfileSnapshotUpdateOne {
	mutation := newProfileSnapshotMutation(c.config, OpUpdateOne, withProfileSnapshotID(id))
	return &ProfileSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProfileSnapshot.
func (c *ProfileSnapshotClient) Delete() *ProfileSnapshotDelete {
	mutation := newProfileSnapshotMutation(c.config, OpDelete)
	return &ProfileSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProfileSnapshotClient) DeleteOne(_m *ProfileSnapshot) *ProfileSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProfileSnapshotClient) DeleteOneID(id int) *ProfileSnapshotDeleteOne {
	builder := c.Delete().Where(profilesnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProfileSnapshotDeleteOne{builder}
}

// Query returns a query builder for ProfileSnapshot.
func (c *ProfileSnapshotClient) Query() *ProfileSnapshotQuery {
	return &ProfileSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProfileSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a ProfileSnapshot entity by its id.
func (c *ProfileSnapshotClient) Get(ctx context.Context, id int) (*ProfileSnapshot, error) {
	return c.Query().Where(profilesnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProfileSnapshotClient) GetX(ctx context.Context, id int) *ProfileSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProfileSnapshotClient) Hooks() []Hook {
	return c.hooks.ProfileSnapshot
}

// Interceptors returns the client interceptors.
func (c *ProfileSnapshotClient) Interceptors() []Interceptor {
	return c.inters.ProfileSnapshot
}

func (c *ProfileSnapshotClient) mutate(ctx context.Context, m *ProfileSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProfileSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProfileSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProfileSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProfileSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProfileSnapshot mutation op: %q", m.Op())
	}
}

// ScenarioEventClient is a client for the ScenarioEvent schema.
type ScenarioEventClient struct {
	config
}

// NewScenarioEventClient returns a client for the ScenarioEvent from the given config.
func NewScenarioEventClient(c config) *ScenarioEventClient {
	return &ScenarioEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scenarioevent.Hooks(f(g(h())))`.
func (c *ScenarioEventClient) Use(hooks ...Hook) {
	c.hooks.ScenarioEvent = append(c.hooks.ScenarioEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scenarioevent.Intercept(f(g(h())))`.
func (c *ScenarioEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScenarioEvent = append(c.inters.ScenarioEvent, interceptors...)
}

// Create returns a builder for creating a ScenarioEvent entity.
func (c *ScenarioEventClient) Create() *ScenarioEventCreate {
	mutation := newScenarioEventMutation(c.config, OpCreate)
	return &ScenarioEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScenarioEvent entities.
func (c *ScenarioEventClient) CreateBulk(builders ...*ScenarioEventCreate) *ScenarioEventCreateBulk {
	return &ScenarioEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScenarioEventClient) MapCreateBulk(slice any, setFunc func(*ScenarioEventCreate, int)) *ScenarioEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScenarioEventCreateBulk{err: fmt.Errorf("calling to ScenarioEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScenarioEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScenarioEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScenarioEvent.
func (c *ScenarioEventClient) Update() *ScenarioEventUpdate {
	mutation := newScenarioEventMutation(c.config, OpUpdate)
	return &ScenarioEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScenarioEventClient) UpdateOne(_m *ScenarioEvent) *ScenarioEventUpdateOne {
	mutation := newScenarioEventMutation(c.config, OpUpdateOne, withScenarioEvent(_m))
	return &ScenarioEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScenarioEventClient) UpdateOneID(id int) *ScenarioEventUpdateOne {
	mutation := newScenarioEventMutation(c.config, OpUpdateOne, withScenarioEventID(id))
	return &ScenarioEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScenarioEvent.
func (c *ScenarioEventClient) Delete() *ScenarioEventDelete {
	mutation := newScenarioEventMutation(c.config, OpDelete)
	return &ScenarioEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScenarioEventClient) DeleteOne(_m *ScenarioEvent) *ScenarioEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScenarioEventClient) DeleteOneID(id int) *ScenarioEventDeleteOne {
	builder := c.Delete().Where(scenarioevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScenarioEventDeleteOne{builder}
}

// Query returns a query builder for ScenarioEvent.
func (c *ScenarioEventClient) Query() *ScenarioEventQuery {
	return &ScenarioEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScenarioEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ScenarioEvent entity by its id.
func (c *ScenarioEventClient) Get(ctx context.Context, id int) (*ScenarioEvent, error) {
	return c.Query().Where(scenarioevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScenarioEventClient) GetX(ctx context.Context, id int) *ScenarioEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScenarioEventClient) Hooks() []Hook {
	return c.hooks.ScenarioEvent
}

// Interceptors returns the client interceptors.
func (c *ScenarioEventClient) Interceptors() []Interceptor {
	return c.inters.ScenarioEvent
}

func (c *ScenarioEventClient) mutate(ctx context.Context, m *ScenarioEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScenarioEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScenarioEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScenarioEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScenarioEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScenarioEvent mutation op: %q", m.Op())
	}
}

// ScoreEventClient is a client for the ScoreEvent schema.
type ScoreEventClient struct {
	config
}

// NewScoreEventClient returns a client for the ScoreEvent from the given config.
func NewScoreEventClient(c config) *ScoreEventClient {
	return &ScoreEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scoreevent.Hooks(f(g(h())))`.
func (c *ScoreEventClient) Use(hooks ...Hook) {
	c.hooks.ScoreEvent = append(c.hooks.ScoreEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scoreevent.Intercept(f(g(h())))`.
func (c *ScoreEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScoreEvent = append(c.inters.ScoreEvent, interceptors...)
}

// Create returns a builder for creating a ScoreEvent entity.
func (c *ScoreEventClient) Create() *ScoreEventCreate {
	mutation := newScoreEventMutation(c.config, OpCreate)
	return &ScoreEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScoreEvent entities.
func (c *ScoreEventClient) CreateBulk(builders ...*ScoreEventCreate) *ScoreEventCreateBulk {
	return &ScoreEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScoreEventClient) MapCreateBulk(slice any, setFunc func(*ScoreEventCreate, int)) *ScoreEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScoreEventCreateBulk{err: fmt.Errorf("calling to ScoreEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScoreEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScoreEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScoreEvent.
func (c *ScoreEventClient) Update() *ScoreEventUpdate {
	mutation := newScoreEventMutation(c.config, OpUpdate)
	return &ScoreEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScoreEventClient) UpdateOne(_m *ScoreEvent) *ScoreEventUpdateOne {
	mutation := newScoreEventMutation(c.config, OpUpdateOne, withScoreEvent(_m))
	return &ScoreEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScoreEventClient) UpdateOneID(id int) *ScoreEventUpdateOne {
	mutation := newScoreEventMutation(c.config, OpUpdateOne, withScoreEventID(id))
	return &ScoreEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScoreEvent.
func (c *ScoreEventClient) Delete() *ScoreEventDelete {
	mutation := newScoreEventMutation(c.config, OpDelete)
	return &ScoreEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScoreEventClient) DeleteOne(_m *ScoreEvent) *ScoreEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScoreEventClient) DeleteOneID(id int) *ScoreEventDeleteOne {
	builder := c.Delete().Where(scoreevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScoreEventDeleteOne{builder}
}

// Query returns a query builder for ScoreEvent.
func (c *ScoreEventClient) Query() *ScoreEventQuery {
	return &ScoreEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScoreEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ScoreEvent entity by its id.
func (c *ScoreEventClient) Get(ctx context.Context, id int) (*ScoreEvent, error) {
	return c.Query().Where(scoreevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScoreEventClient) GetX(ctx context.Context, id int) *ScoreEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScoreEventClient) Hooks() []Hook {
	return c.hooks.ScoreEvent
}

// Interceptors returns the client interceptors.
func (c *ScoreEventClient) Interceptors() []Interceptor {
	return c.inters.ScoreEvent
}

func (c *ScoreEventClient) mutate(ctx context.Context, m *ScoreEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScoreEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScoreEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScoreEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScoreEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScoreEvent mutation op: %q", m.Op())
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

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AssessmentEvent, Certificate, ProfileSnapshot, ScenarioEvent, ScoreEvent,
		SessionEvent []ent.Hook
	}
	inters struct {
		AssessmentEvent, Certificate, ProfileSnapshot, ScenarioEvent, ScoreEvent,
		SessionEvent []ent.Interceptor
	}
)
