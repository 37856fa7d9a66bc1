// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/rahulsv/studyloop/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/rahulsv/studyloop/ent/adjustmentevent"
	"github.com/rahulsv/studyloop/ent/conceptmastery"
	"github.com/rahulsv/studyloop/ent/knowledgegap"
	"github.com/rahulsv/studyloop/ent/llmrequestevent"
	"github.com/rahulsv/studyloop/ent/performanceevent"
	"github.com/rahulsv/studyloop/ent/quizresult"
	"github.com/rahulsv/studyloop/ent/sessionsnapshot"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AdjustmentEvent is the client for interacting with the AdjustmentEvent builders.
	AdjustmentEvent *AdjustmentEventClient
	// ConceptMastery is the client for interacting with the ConceptMastery builders.
	ConceptMastery *ConceptMasteryClient
	// KnowledgeGap is the client for interacting with the KnowledgeGap builders.
	KnowledgeGap *KnowledgeGapClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// PerformanceEvent is the client for interacting with the PerformanceEvent builders.
	PerformanceEvent *PerformanceEventClient
	// QuizResult is the client for interacting with the QuizResult builders.
	QuizResult *QuizResultClient
	// SessionSnapshot is the client for interacting with the SessionSnapshot builders.
	SessionSnapshot *SessionSnapshotClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AdjustmentEvent = NewAdjustmentEventClient(c.config)
	c.ConceptMastery = NewConceptMasteryClient(c.config)
	c.KnowledgeGap = NewKnowledgeGapClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.PerformanceEvent = NewPerformanceEventClient(c.config)
	c.QuizResult = NewQuizResultClient(c.config)
	c.SessionSnapshot = NewSessionSnapshotClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		AdjustmentEvent:  NewAdjustmentEventClient(cfg),
		ConceptMastery:   NewConceptMasteryClient(cfg),
		KnowledgeGap:     NewKnowledgeGapClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		PerformanceEvent: NewPerformanceEventClient(cfg),
		QuizResult:       NewQuizResultClient(cfg),
		SessionSnapshot:  NewSessionSnapshotClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		AdjustmentEvent:  NewAdjustmentEventClient(cfg),
		ConceptMastery:   NewConceptMasteryClient(cfg),
		KnowledgeGap:     NewKnowledgeGapClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		PerformanceEvent: NewPerformanceEventClient(cfg),
		QuizResult:       NewQuizResultClient(cfg),
		SessionSnapshot:  NewSessionSnapshotClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AdjustmentEvent.
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
		c.AdjustmentEvent, c.ConceptMastery, c.KnowledgeGap, c.LLMRequestEvent,
		c.PerformanceEvent, c.QuizResult, c.SessionSnapshot,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AdjustmentEvent, c.ConceptMastery, c.KnowledgeGap, c.LLMRequestEvent,
		c.PerformanceEvent, c.QuizResult, c.SessionSnapshot,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AdjustmentEventMutation:
		return c.AdjustmentEvent.mutate(ctx, m)
	case *ConceptMasteryMutation:
		return c.ConceptMastery.mutate(ctx, m)
	case *KnowledgeGapMutation:
		return c.KnowledgeGap.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *PerformanceEventMutation:
		return c.PerformanceEvent.mutate(ctx, m)
	case *QuizResultMutation:
		return c.QuizResult.mutate(ctx, m)
	case *SessionSnapshotMutation:
		return c.SessionSnapshot.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AdjustmentEventClient is a client for the AdjustmentEvent schema.
type AdjustmentEventClient struct {
	config
}

// NewAdjustmentEventClient returns a client for the AdjustmentEvent from the given config.
func NewAdjustmentEventClient(c config) *AdjustmentEventClient {
	return &AdjustmentEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `adjustmentevent.Hooks(f(g(h())))`.
func (c *AdjustmentEventClient) Use(hooks ...Hook) {
	c.hooks.AdjustmentEvent = append(c.hooks.AdjustmentEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `adjustmentevent.Intercept(f(g(h())))`.
func (c *AdjustmentEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AdjustmentEvent = append(c.inters.AdjustmentEvent, interceptors...)
}

// Create returns a builder for creating a AdjustmentEvent entity.
func (c *AdjustmentEventClient) Create() *AdjustmentEventCreate {
	mutation := newAdjustmentEventMutation(c.config, OpCreate)
	return &AdjustmentEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AdjustmentEvent entities.
func (c *AdjustmentEventClient) CreateBulk(builders ...*AdjustmentEventCreate) *AdjustmentEventCreateBulk {
	return &AdjustmentEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AdjustmentEventClient) MapCreateBulk(slice any, setFunc func(*AdjustmentEventCreate, int)) *AdjustmentEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AdjustmentEventCreateBulk{err: fmt.Errorf("calling to AdjustmentEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AdjustmentEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AdjustmentEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AdjustmentEvent.
func (c *AdjustmentEventClient) Update() *AdjustmentEventUpdate {
	mutation := newAdjustmentEventMutation(c.config, OpUpdate)
	return &AdjustmentEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AdjustmentEventClient) UpdateOne(_m *AdjustmentEvent) *AdjustmentEventUpdateOne {
	mutation := newAdjustmentEventMutation(c.config, OpUpdateOne, withAdjustmentEvent(_m))
	return &AdjustmentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AdjustmentEventClient) UpdateOneID(id int) *AdjustmentEventUpdateOne {
	mutation := newAdjustmentEventMutation(c.config, OpUpdateOne, withAdjustmentEventID(id))
	return &AdjustmentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AdjustmentEvent.
func (c *AdjustmentEventClient) Delete() *AdjustmentEventDelete {
	mutation := newAdjustmentEventMutation(c.config, OpDelete)
	return &AdjustmentEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AdjustmentEventClient) DeleteOne(_m *AdjustmentEvent) *AdjustmentEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AdjustmentEventClient) DeleteOneID(id int) *AdjustmentEventDeleteOne {
	builder := c.Delete().Where(adjustmentevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AdjustmentEventDeleteOne{builder}
}

// Query returns a query builder for AdjustmentEvent.
func (c *AdjustmentEventClient) Query() *AdjustmentEventQuery {
	return &AdjustmentEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAdjustmentEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AdjustmentEvent entity by its id.
func (c *AdjustmentEventClient) Get(ctx context.Context, id int) (*AdjustmentEvent, error) {
	return c.Query().Where(adjustmentevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AdjustmentEventClient) GetX(ctx context.Context, id int) *AdjustmentEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AdjustmentEventClient) Hooks() []Hook {
	return c.hooks.AdjustmentEvent
}

// Interceptors returns the client interceptors.
func (c *AdjustmentEventClient) Interceptors() []Interceptor {
	return c.inters.AdjustmentEvent
}

func (c *AdjustmentEventClient) mutate(ctx context.Context, m *AdjustmentEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AdjustmentEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AdjustmentEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AdjustmentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AdjustmentEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AdjustmentEvent mutation op: %q", m.Op())
	}
}

// ConceptMasteryClient is a client for the ConceptMastery schema.
type ConceptMasteryClient struct {
	config
}

// NewConceptMasteryClient returns a client for the ConceptMastery from the given config.
func NewConceptMasteryClient(c config) *ConceptMasteryClient {
	return &ConceptMasteryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conceptmastery.Hooks(f(g(h())))`.
func (c *ConceptMasteryClient) Use(hooks ...Hook) {
	c.hooks.ConceptMastery = append(c.hooks.ConceptMastery, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conceptmastery.Intercept(f(g(h())))`.
func (c *ConceptMasteryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConceptMastery = append(c.inters.ConceptMastery, interceptors...)
}

// Create returns a builder for creating a ConceptMastery entity.
func (c *ConceptMasteryClient) Create() *ConceptMasteryCreate {
	mutation := newConceptMasteryMutation(c.config, OpCreate)
	return &ConceptMasteryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConceptMastery entities.
func (c *ConceptMasteryClient) CreateBulk(builders ...*ConceptMasteryCreate) *ConceptMasteryCreateBulk {
	return &ConceptMasteryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConceptMasteryClient) MapCreateBulk(slice any, setFunc func(*ConceptMasteryCreate, int)) *ConceptMasteryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConceptMasteryCreateBulk{err: fmt.Errorf("calling to ConceptMasteryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConceptMasteryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConceptMasteryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConceptMastery.
func (c *ConceptMasteryClient) Update() *ConceptMasteryUpdate {
	mutation := newConceptMasteryMutation(c.config, OpUpdate)
	return &ConceptMasteryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConceptMasteryClient) UpdateOne(_m *ConceptMastery) *ConceptMasteryUpdateOne {
	mutation := newConceptMasteryMutation(c.config, OpUpdateOne, withConceptMastery(_m))
	return &ConceptMasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConceptMasteryClient) UpdateOneID(id int) *ConceptMasteryUpdateOne {
	mutation := newConceptMasteryMutation(c.config, OpUpdateOne, withConceptMasteryID(id))
	return &ConceptMasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConceptMastery.
func (c *ConceptMasteryClient) Delete() *ConceptMasteryDelete {
	mutation := newConceptMasteryMutation(c.config, OpDelete)
	return &ConceptMasteryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConceptMasteryClient) DeleteOne(_m *ConceptMastery) *ConceptMasteryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConceptMasteryClient) DeleteOneID(id int) *ConceptMasteryDeleteOne {
	builder := c.Delete().Where(conceptmastery.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConceptMasteryDeleteOne{builder}
}

// Query returns a query builder for ConceptMastery.
func (c *ConceptMasteryClient) Query() *ConceptMasteryQuery {
	return &ConceptMasteryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConceptMastery},
		inters: c.Interceptors(),
	}
}

// Get returns a ConceptMastery entity by its id.
func (c *ConceptMasteryClient) Get(ctx context.Context, id int) (*ConceptMastery, error) {
	return c.Query().Where(conceptmastery.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConceptMasteryClient) GetX(ctx context.Context, id int) *ConceptMastery {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConceptMasteryClient) Hooks() []Hook {
	return c.hooks.ConceptMastery
}

// Interceptors returns the client interceptors.
func (c *ConceptMasteryClient) Interceptors() []Interceptor {
	return c.inters.ConceptMastery
}

func (c *ConceptMasteryClient) mutate(ctx context.Context, m *ConceptMasteryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConceptMasteryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConceptMasteryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConceptMasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConceptMasteryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConceptMastery mutation op: %q", m.Op())
	}
}

// KnowledgeGapClient is a client for the KnowledgeGap schema.
type KnowledgeGapClient struct {
	config
}

// NewKnowledgeGapClient returns a client for the KnowledgeGap from the given config.
func NewKnowledgeGapClient(c config) *KnowledgeGapClient {
	return &KnowledgeGapClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `knowledgegap.Hooks(f(g(h())))`.
func (c *KnowledgeGapClient) Use(hooks ...Hook) {
	c.hooks.KnowledgeGap = append(c.hooks.KnowledgeGap, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `knowledgegap.Intercept(f(g(h())))`.
func (c *KnowledgeGapClient) Intercept(interceptors ...Interceptor) {
	c.inters.KnowledgeGap = append(c.inters.KnowledgeGap, interceptors...)
}

// Create returns a builder for creating a KnowledgeGap entity.
func (c *KnowledgeGapClient) Create() *KnowledgeGapCreate {
	mutation := newKnowledgeGapMutation(c.config, OpCreate)
	return &KnowledgeGapCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of KnowledgeGap entities.
func (c *KnowledgeGapClient) CreateBulk(builders ...*KnowledgeGapCreate) *KnowledgeGapCreateBulk {
	return &KnowledgeGapCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KnowledgeGapClient) MapCreateBulk(slice any, setFunc func(*KnowledgeGapCreate, int)) *KnowledgeGapCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KnowledgeGapCreateBulk{err: fmt.Errorf("calling to KnowledgeGapClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KnowledgeGapCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KnowledgeGapCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for KnowledgeGap.
func (c *KnowledgeGapClient) Update() *KnowledgeGapUpdate {
	mutation := newKnowledgeGapMutation(c.config, OpUpdate)
	return &KnowledgeGapUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KnowledgeGapClient) UpdateOne(_m *KnowledgeGap) *KnowledgeGapUpdateOne {
	mutation := newKnowledgeGapMutation(c.config, OpUpdateOne, withKnowledgeGap(_m))
	return &KnowledgeGapUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KnowledgeGapClient) UpdateOneID(id int) *KnowledgeGapUpdateOne {
	mutation := newKnowledgeGapMutation(c.config, OpUpdateOne, withKnowledgeGapID(id))
	return &KnowledgeGapUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for KnowledgeGap.
func (c *KnowledgeGapClient) Delete() *KnowledgeGapDelete {
	mutation := newKnowledgeGapMutation(c.config, OpDelete)
	return &KnowledgeGapDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KnowledgeGapClient) DeleteOne(_m *KnowledgeGap) *KnowledgeGapDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KnowledgeGapClient) DeleteOneID(id int) *KnowledgeGapDeleteOne {
	builder := c.Delete().Where(knowledgegap.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KnowledgeGapDeleteOne{builder}
}

// Query returns a query builder for KnowledgeGap.
func (c *KnowledgeGapClient) Query() *KnowledgeGapQuery {
	return &KnowledgeGapQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKnowledgeGap},
		inters: c.Interceptors(),
	}
}

// Get returns a KnowledgeGap entity by its id.
func (c *KnowledgeGapClient) Get(ctx context.Context, id int) (*KnowledgeGap, error) {
	return c.Query().Where(knowledgegap.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KnowledgeGapClient) GetX(ctx context.Context, id int) *KnowledgeGap {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *KnowledgeGapClient) Hooks() []Hook {
	return c.hooks.KnowledgeGap
}

// Interceptors returns the client interceptors.
func (c *KnowledgeGapClient) Interceptors() []Interceptor {
	return c.inters.KnowledgeGap
}

func (c *KnowledgeGapClient) mutate(ctx context.Context, m *KnowledgeGapMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KnowledgeGapCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KnowledgeGapUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KnowledgeGapUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KnowledgeGapDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown KnowledgeGap mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// PerformanceEventClient is a client for the PerformanceEvent schema.
type PerformanceEventClient struct {
	config
}

// NewPerformanceEventClient returns a client for the PerformanceEvent from the given config.
func NewPerformanceEventClient(c config) *PerformanceEventClient {
	return &PerformanceEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `performanceevent.Hooks(f(g(h())))`.
func (c *PerformanceEventClient) Use(hooks ...Hook) {
	c.hooks.PerformanceEvent = append(c.hooks.PerformanceEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `performanceevent.Intercept(f(g(h())))`.
func (c *PerformanceEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.PerformanceEvent = append(c.inters.PerformanceEvent, interceptors...)
}

// Create returns a builder for creating a PerformanceEvent entity.
func (c *PerformanceEventClient) Create() *PerformanceEventCreate {
	mutation := newPerformanceEventMutation(c.config, OpCreate)
	return &PerformanceEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PerformanceEvent entities.
func (c *PerformanceEventClient) CreateBulk(builders ...*PerformanceEventCreate) *PerformanceEventCreateBulk {
	return &PerformanceEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PerformanceEventClient) MapCreateBulk(slice any, setFunc func(*PerformanceEventCreate, int)) *PerformanceEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PerformanceEventCreateBulk{err: fmt.Errorf("calling to PerformanceEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PerformanceEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PerformanceEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PerformanceEvent.
func (c *PerformanceEventClient) Update() *PerformanceEventUpdate {
	mutation := newPerformanceEventMutation(c.config, OpUpdate)
	return &PerformanceEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PerformanceEventClient) UpdateOne(_m *PerformanceEvent) *PerformanceEventUpdateOne {
	mutation := newPerformanceEventMutation(c.config, OpUpdateOne, withPerformanceEvent(_m))
	return &PerformanceEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PerformanceEventClient) UpdateOneID(id int) *PerformanceEventUpdateOne {
	mutation := newPerformanceEventMutation(c.config, OpUpdateOne, withPerformanceEventID(id))
	return &PerformanceEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PerformanceEvent.
func (c *PerformanceEventClient) Delete() *PerformanceEventDelete {
	mutation := newPerformanceEventMutation(c.config, OpDelete)
	return &PerformanceEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PerformanceEventClient) DeleteOne(_m *PerformanceEvent) *PerformanceEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PerformanceEventClient) DeleteOneID(id int) *PerformanceEventDeleteOne {
	builder := c.Delete().Where(performanceevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PerformanceEventDeleteOne{builder}
}

// Query returns a query builder for PerformanceEvent.
func (c *PerformanceEventClient) Query() *PerformanceEventQuery {
	return &PerformanceEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePerformanceEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a PerformanceEvent entity by its id.
func (c *PerformanceEventClient) Get(ctx context.Context, id int) (*PerformanceEvent, error) {
	return c.Query().Where(performanceevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PerformanceEventClient) GetX(ctx context.Context, id int) *PerformanceEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PerformanceEventClient) Hooks() []Hook {
	return c.hooks.PerformanceEvent
}

// Interceptors returns the client interceptors.
func (c *PerformanceEventClient) Interceptors() []Interceptor {
	return c.inters.PerformanceEvent
}

func (c *PerformanceEventClient) mutate(ctx context.Context, m *PerformanceEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PerformanceEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PerformanceEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PerformanceEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PerformanceEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PerformanceEvent mutation op: %q", m.Op())
	}
}

// QuizResultClient is a client for the QuizResult schema.
type QuizResultClient struct {
	config
}

// NewQuizResultClient returns a client for the QuizResult from the given config.
func NewQuizResultClient(c config) *QuizResultClient {
	return &QuizResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quizresult.Hooks(f(g(h())))`.
func (c *QuizResultClient) Use(hooks ...Hook) {
	c.hooks.QuizResult = append(c.hooks.QuizResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quizresult.Intercept(f(g(h())))`.
func (c *QuizResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuizResult = append(c.inters.QuizResult, interceptors...)
}

// Create returns a builder for creating a QuizResult entity.
func (c *QuizResultClient) Create() *QuizResultCreate {
	mutation := newQuizResultMutation(c.config, OpCreate)
	return &QuizResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuizResult entities.
func (c *QuizResultClient) CreateBulk(builders ...*QuizResultCreate) *QuizResultCreateBulk {
	return &QuizResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuizResultClient) MapCreateBulk(slice any, setFunc func(*QuizResultCreate, int)) *QuizResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuizResultCreateBulk{err: fmt.Errorf("calling to QuizResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuizResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuizResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuizResult.
func (c *QuizResultClient) Update() *QuizResultUpdate {
	mutation := newQuizResultMutation(c.config, OpUpdate)
	return &QuizResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuizResultClient) UpdateOne(_m *QuizResult) *QuizResultUpdateOne {
	mutation := newQuizResultMutation(c.config, OpUpdateOne, withQuizResult(_m))
	return &QuizResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuizResultClient) UpdateOneID(id int) *QuizResultUpdateOne {
	mutation := newQuizResultMutation(c.config, OpUpdateOne, withQuizResultID(id))
	return &QuizResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuizResult.
func (c *QuizResultClient) Delete() *QuizResultDelete {
	mutation := newQuizResultMutation(c.config, OpDelete)
	return &QuizResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuizResultClient) DeleteOne(_m *QuizResult) *QuizResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuizResultClient) DeleteOneID(id int) *QuizResultDeleteOne {
	builder := c.Delete().Where(quizresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuizResultDeleteOne{builder}
}

// Query returns a query builder for QuizResult.
func (c *QuizResultClient) Query() *QuizResultQuery {
	return &QuizResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuizResult},
		inters: c.Interceptors(),
	}
}

// Get returns a QuizResult entity by its id.
func (c *QuizResultClient) Get(ctx context.Context, id int) (*QuizResult, error) {
	return c.Query().Where(quizresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuizResultClient) GetX(ctx context.Context, id int) *QuizResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuizResultClient) Hooks() []Hook {
	return c.hooks.QuizResult
}

// Interceptors returns the client interceptors.
func (c *QuizResultClient) Interceptors() []Interceptor {
	return c.inters.QuizResult
}

func (c *QuizResultClient) mutate(ctx context.Context, m *QuizResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuizResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuizResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuizResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuizResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuizResult mutation op: %q", m.Op())
	}
}

// SessionSnapshotClient is a client for the SessionSnapshot schema.
type SessionSnapshotClient struct {
	config
}

// NewSessionSnapshotClient returns a client for the SessionSnapshot from the given config.
func NewSessionSnapshotClient(c config) *SessionSnapshotClient {
	return &SessionSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionsnapshot.Hooks(f(g(h())))`.
func (c *SessionSnapshotClient) Use(hooks ...Hook) {
	c.hooks.SessionSnapshot = append(c.hooks.SessionSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionsnapshot.Intercept(f(g(h())))`.
func (c *SessionSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionSnapshot = append(c.inters.SessionSnapshot, interceptors...)
}

// Create returns a builder for creating a SessionSnapshot entity.
func (c *SessionSnapshotClient) Create() *SessionSnapshotCreate {
	mutation := newSessionSnapshotMutation(c.config, OpCreate)
	return &SessionSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionSnapshot entities.
func (c *SessionSnapshotClient) CreateBulk(builders ...*SessionSnapshotCreate) *SessionSnapshotCreateBulk {
	return &SessionSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionSnapshotClient) MapCreateBulk(slice any, setFunc func(*SessionSnapshotCreate, int)) *SessionSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionSnapshotCreateBulk{err: fmt.Errorf("calling to SessionSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionSnapshot.
func (c *SessionSnapshotClient) Update() *SessionSnapshotUpdate {
	mutation := newSessionSnapshotMutation(c.config, OpUpdate)
	return &SessionSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionSnapshotClient) UpdateOne(_m *SessionSnapshot) *SessionSnapshotUpdateOne {
	mutation := newSessionSnapshotMutation(c.config, OpUpdateOne, withSessionSnapshot(_m))
	return &SessionSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionSnapshotClient) UpdateOneID(id int) *SessionSnapshotUpdateOne {
	mutation := newSessionSnapshotMutation(c.config, OpUpdateOne, withSessionSnapshotID(id))
	return &SessionSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionSnapshot.
func (c *SessionSnapshotClient) Delete() *SessionSnapshotDelete {
	mutation := newSessionSnapshotMutation(c.config, OpDelete)
	return &SessionSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionSnapshotClient) DeleteOne(_m *SessionSnapshot) *SessionSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionSnapshotClient) DeleteOneID(id int) *SessionSnapshotDeleteOne {
	builder := c.Delete().Where(sessionsnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionSnapshotDeleteOne{builder}
}

// Query returns a query builder for SessionSnapshot.
func (c *SessionSnapshotClient) Query() *SessionSnapshotQuery {
	return &SessionSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionSnapshot entity by its id.
func (c *SessionSnapshotClient) Get(ctx context.Context, id int) (*SessionSnapshot, error) {
	return c.Query().Where(sessionsnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionSnapshotClient) GetX(ctx context.Context, id int) *SessionSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionSnapshotClient) Hooks() []Hook {
	return c.hooks.SessionSnapshot
}

// Interceptors returns the client interceptors.
func (c *SessionSnapshotClient) Interceptors() []Interceptor {
	return c.inters.SessionSnapshot
}

func (c *SessionSnapshotClient) mutate(ctx context.Context, m *SessionSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionSnapshot mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AdjustmentEvent, ConceptMastery, KnowledgeGap, LLMRequestEvent,
		PerformanceEvent, QuizResult, SessionSnapshot []ent.Hook
	}
	inters struct {
		AdjustmentEvent, ConceptMastery, KnowledgeGap, LLMRequestEvent,
		PerformanceEvent, QuizResult, SessionSnapshot []ent.Interceptor
	}
)
