// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/dsp2b/dsp2b/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/dsp2b/dsp2b/ent/blueprint"
	"github.com/dsp2b/dsp2b/ent/blueprintcollection"
	"github.com/dsp2b/dsp2b/ent/blueprintlike"
	"github.com/dsp2b/dsp2b/ent/blueprintproduct"
	"github.com/dsp2b/dsp2b/ent/collection"
	"github.com/dsp2b/dsp2b/ent/collectionlike"
	"github.com/dsp2b/dsp2b/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Blueprint is the client for interacting with the Blueprint builders.
	Blueprint *BlueprintClient
	// BlueprintCollection is the client for interacting with the BlueprintCollection builders.
	BlueprintCollection *BlueprintCollectionClient
	// BlueprintLike is the client for interacting with the BlueprintLike builders.
	BlueprintLike *BlueprintLikeClient
	// BlueprintProduct is the client for interacting with the BlueprintProduct builders.
	BlueprintProduct *BlueprintProductClient
	// Collection is the client for interacting with the Collection builders.
	Collection *CollectionClient
	// CollectionLike is the client for interacting with the CollectionLike builders.
	CollectionLike *CollectionLikeClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Blueprint = NewBlueprintClient(c.config)
	c.BlueprintCollection = NewBlueprintCollectionClient(c.config)
	c.BlueprintLike = NewBlueprintLikeClient(c.config)
	c.BlueprintProduct = NewBlueprintProductClient(c.config)
	c.Collection = NewCollectionClient(c.config)
	c.CollectionLike = NewCollectionLikeClient(c.config)
	c.User = NewUserClient(c.config)
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
		ctx:                 ctx,
		config:              cfg,
		Blueprint:           NewBlueprintClient(cfg),
		BlueprintCollection: NewBlueprintCollectionClient(cfg),
		BlueprintLike:       NewBlueprintLikeClient(cfg),
		BlueprintProduct:    NewBlueprintProductClient(cfg),
		Collection:          NewCollectionClient(cfg),
		CollectionLike:      NewCollectionLikeClient(cfg),
		User:                NewUserClient(cfg),
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
		ctx:                 ctx,
		config:              cfg,
		Blueprint:           NewBlueprintClient(cfg),
		BlueprintCollection: NewBlueprintCollectionClient(cfg),
		BlueprintLike:       NewBlueprintLikeClient(cfg),
		BlueprintProduct:    NewBlueprintProductClient(cfg),
		Collection:          NewCollectionClient(cfg),
		CollectionLike:      NewCollectionLikeClient(cfg),
		User:                NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Blueprint.
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
		c.Blueprint, c.BlueprintCollection, c.BlueprintLike, c.BlueprintProduct,
		c.Collection, c.CollectionLike, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Blueprint, c.BlueprintCollection, c.BlueprintLike, c.BlueprintProduct,
		c.Collection, c.CollectionLike, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BlueprintMutation:
		return c.Blueprint.mutate(ctx, m)
	case *BlueprintCollectionMutation:
		return c.BlueprintCollection.mutate(ctx, m)
	case *BlueprintLikeMutation:
		return c.BlueprintLike.mutate(ctx, m)
	case *BlueprintProductMutation:
		return c.BlueprintProduct.mutate(ctx, m)
	case *CollectionMutation:
		return c.Collection.mutate(ctx, m)
	case *CollectionLikeMutation:
		return c.CollectionLike.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BlueprintClient is a client for the Blueprint schema.
type BlueprintClient struct {
	config
}

// NewBlueprintClient returns a client for the Blueprint from the given config.
func NewBlueprintClient(c config) *BlueprintClient {
	return &BlueprintClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `blueprint.Hooks(f(g(h())))`.
func (c *BlueprintClient) Use(hooks ...Hook) {
	c.hooks.Blueprint = append(c.hooks.Blueprint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `blueprint.Intercept(f(g(h())))`.
func (c *BlueprintClient) Intercept(interceptors ...Interceptor) {
	c.inters.Blueprint = append(c.inters.Blueprint, interceptors...)
}

// Create returns a builder for creating a Blueprint entity.
func (c *BlueprintClient) Create() *BlueprintCreate {
	mutation := newBlueprintMutation(c.config, OpCreate)
	return &BlueprintCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Blueprint entities.
func (c *BlueprintClient) CreateBulk(builders ...*BlueprintCreate) *BlueprintCreateBulk {
	return &BlueprintCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BlueprintClient) MapCreateBulk(slice any, setFunc func(*BlueprintCreate, int)) *BlueprintCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BlueprintCreateBulk{err: fmt.Errorf("calling to BlueprintClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BlueprintCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BlueprintCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Blueprint.
func (c *BlueprintClient) Update() *BlueprintUpdate {
	mutation := newBlueprintMutation(c.config, OpUpdate)
	return &BlueprintUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BlueprintClient) UpdateOne(b *Blueprint) *BlueprintUpdateOne {
	mutation := newBlueprintMutation(c.config, OpUpdateOne, withBlueprint(b))
	return &BlueprintUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BlueprintClient) UpdateOneID(id uint) *BlueprintUpdateOne {
	mutation := newBlueprintMutation(c.config, OpUpdateOne, withBlueprintID(id))
	return &BlueprintUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Blueprint.
func (c *BlueprintClient) Delete() *BlueprintDelete {
	mutation := newBlueprintMutation(c.config, OpDelete)
	return &BlueprintDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BlueprintClient) DeleteOne(b *Blueprint) *BlueprintDeleteOne {
	return c.DeleteOneID(b.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BlueprintClient) DeleteOneID(id uint) *BlueprintDeleteOne {
	builder := c.Delete().Where(blueprint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BlueprintDeleteOne{builder}
}

// Query returns a query builder for Blueprint.
func (c *BlueprintClient) Query() *BlueprintQuery {
	return &BlueprintQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBlueprint},
		inters: c.Interceptors(),
	}
}

// Get returns a Blueprint entity by its id.
func (c *BlueprintClient) Get(ctx context.Context, id uint) (*Blueprint, error) {
	return c.Query().Where(blueprint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BlueprintClient) GetX(ctx context.Context, id uint) *Blueprint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BlueprintClient) Hooks() []Hook {
	hooks := c.hooks.Blueprint
	return append(hooks[:len(hooks):len(hooks)], blueprint.Hooks[:]...)
}

// Interceptors returns the client interceptors.
func (c *BlueprintClient) Interceptors() []Interceptor {
	return c.inters.Blueprint
}

func (c *BlueprintClient) mutate(ctx context.Context, m *BlueprintMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BlueprintCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BlueprintUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BlueprintUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BlueprintDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Blueprint mutation op: %q", m.Op())
	}
}

// BlueprintCollectionClient is a client for the BlueprintCollection schema.
type BlueprintCollectionClient struct {
	config
}

// NewBlueprintCollectionClient returns a client for the BlueprintCollection from the given config.
func NewBlueprintCollectionClient(c config) *BlueprintCollectionClient {
	return &BlueprintCollectionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `blueprintcollection.Hooks(f(g(h())))`.
func (c *BlueprintCollectionClient) Use(hooks ...Hook) {
	c.hooks.BlueprintCollection = append(c.hooks.BlueprintCollection, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `blueprintcollection.Intercept(f(g(h())))`.
func (c *BlueprintCollectionClient) Intercept(interceptors ...Interceptor) {
	c.inters.BlueprintCollection = append(c.inters.BlueprintCollection, interceptors...)
}

// Create returns a builder for creating a BlueprintCollection entity.
func (c *BlueprintCollectionClient) Create() *BlueprintCollectionCreate {
	mutation := newBlueprintCollectionMutation(c.config, OpCreate)
	return &BlueprintCollectionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BlueprintCollection entities.
func (c *BlueprintCollectionClient) CreateBulk(builders ...*BlueprintCollectionCreate) *BlueprintCollectionCreateBulk {
	return &BlueprintCollectionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BlueprintCollectionClient) MapCreateBulk(slice any, setFunc func(*BlueprintCollectionCreate, int)) *BlueprintCollectionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BlueprintCollectionCreateBulk{err: fmt.Errorf("calling to BlueprintCollectionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BlueprintCollectionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BlueprintCollectionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BlueprintCollection.
func (c *BlueprintCollectionClient) Update() *BlueprintCollectionUpdate {
	mutation := newBlueprintCollectionMutation(c.config, OpUpdate)
	return &BlueprintCollectionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BlueprintCollectionClient) UpdateOne(bc *BlueprintCollection) *BlueprintCollectionUpdateOne {
	mutation := newBlueprintCollectionMutation(c.config, OpUpdateOne, withBlueprintCollection(bc))
	return &BlueprintCollectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BlueprintCollectionClient) UpdateOneID(id uint) *BlueprintCollectionUpdateOne {
	mutation := newBlueprintCollectionMutation(c.config, OpUpdateOne, withBlueprintCollectionID(id))
	return &BlueprintCollectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BlueprintCollection.
func (c *BlueprintCollectionClient) Delete() *BlueprintCollectionDelete {
	mutation := newBlueprintCollectionMutation(c.config, OpDelete)
	return &BlueprintCollectionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BlueprintCollectionClient) DeleteOne(bc *BlueprintCollection) *BlueprintCollectionDeleteOne {
	return c.DeleteOneID(bc.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BlueprintCollectionClient) DeleteOneID(id uint) *BlueprintCollectionDeleteOne {
	builder := c.Delete().Where(blueprintcollection.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BlueprintCollectionDeleteOne{builder}
}

// Query returns a query builder for BlueprintCollection.
func (c *BlueprintCollectionClient) Query() *BlueprintCollectionQuery {
	return &BlueprintCollectionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBlueprintCollection},
		inters: c.Interceptors(),
	}
}

// Get returns a BlueprintCollection entity by its id.
func (c *BlueprintCollectionClient) Get(ctx context.Context, id uint) (*BlueprintCollection, error) {
	return c.Query().Where(blueprintcollection.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BlueprintCollectionClient) GetX(ctx context.Context, id uint) *BlueprintCollection {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BlueprintCollectionClient) Hooks() []Hook {
	return c.hooks.BlueprintCollection
}

// Interceptors returns the client interceptors.
func (c *BlueprintCollectionClient) Interceptors() []Interceptor {
	return c.inters.BlueprintCollection
}

func (c *BlueprintCollectionClient) mutate(ctx context.Context, m *BlueprintCollectionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BlueprintCollectionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BlueprintCollectionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BlueprintCollectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BlueprintCollectionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BlueprintCollection mutation op: %q", m.Op())
	}
}

// BlueprintLikeClient is a client for the BlueprintLike schema.
type BlueprintLikeClient struct {
	config
}

// NewBlueprintLikeClient returns a client for the BlueprintLike from the given config.
func NewBlueprintLikeClient(c config) *BlueprintLikeClient {
	return &BlueprintLikeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `blueprintlike.Hooks(f(g(h())))`.
func (c *BlueprintLikeClient) Use(hooks ...Hook) {
	c.hooks.BlueprintLike = append(c.hooks.BlueprintLike, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `blueprintlike.Intercept(f(g(h())))`.
func (c *BlueprintLikeClient) Intercept(interceptors ...Interceptor) {
	c.inters.BlueprintLike = append(c.inters.BlueprintLike, interceptors...)
}

// Create returns a builder for creating a BlueprintLike entity.
func (c *BlueprintLikeClient) Create() *BlueprintLikeCreate {
	mutation := newBlueprintLikeMutation(c.config, OpCreate)
	return &BlueprintLikeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BlueprintLike entities.
func (c *BlueprintLikeClient) CreateBulk(builders ...*BlueprintLikeCreate) *BlueprintLikeCreateBulk {
	return &BlueprintLikeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BlueprintLikeClient) MapCreateBulk(slice any, setFunc func(*BlueprintLikeCreate, int)) *BlueprintLikeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BlueprintLikeCreateBulk{err: fmt.Errorf("calling to BlueprintLikeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BlueprintLikeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BlueprintLikeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BlueprintLike.
func (c *BlueprintLikeClient) Update() *BlueprintLikeUpdate {
	mutation := newBlueprintLikeMutation(c.config, OpUpdate)
	return &BlueprintLikeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BlueprintLikeClient) UpdateOne(bl *BlueprintLike) *BlueprintLikeUpdateOne {
	mutation := newBlueprintLikeMutation(c.config, OpUpdateOne, withBlueprintLike(bl))
	return &BlueprintLikeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BlueprintLikeClient) UpdateOneID(id uint) *BlueprintLikeUpdateOne {
	mutation := newBlueprintLikeMutation(c.config, OpUpdateOne, withBlueprintLikeID(id))
	return &BlueprintLikeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BlueprintLike.
func (c *BlueprintLikeClient) Delete() *BlueprintLikeDelete {
	mutation := newBlueprintLikeMutation(c.config, OpDelete)
	return &BlueprintLikeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BlueprintLikeClient) DeleteOne(bl *BlueprintLike) *BlueprintLikeDeleteOne {
	return c.DeleteOneID(bl.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BlueprintLikeClient) DeleteOneID(id uint) *BlueprintLikeDeleteOne {
	builder := c.Delete().Where(blueprintlike.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BlueprintLikeDeleteOne{builder}
}

// Query returns a query builder for BlueprintLike.
func (c *BlueprintLikeClient) Query() *BlueprintLikeQuery {
	return &BlueprintLikeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBlueprintLike},
		inters: c.Interceptors(),
	}
}

// Get returns a BlueprintLike entity by its id.
func (c *BlueprintLikeClient) Get(ctx context.Context, id uint) (*BlueprintLike, error) {
	return c.Query().Where(blueprintlike.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BlueprintLikeClient) GetX(ctx context.Context, id uint) *BlueprintLike {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BlueprintLikeClient) Hooks() []Hook {
	return c.hooks.BlueprintLike
}

// Interceptors returns the client interceptors.
func (c *BlueprintLikeClient) Interceptors() []Interceptor {
	return c.inters.BlueprintLike
}

func (c *BlueprintLikeClient) mutate(ctx context.Context, m *BlueprintLikeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BlueprintLikeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BlueprintLikeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BlueprintLikeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BlueprintLikeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BlueprintLike mutation op: %q", m.Op())
	}
}

// BlueprintProductClient is a client for the BlueprintProduct schema.
type BlueprintProductClient struct {
	config
}

// NewBlueprintProductClient returns a client for the BlueprintProduct from the given config.
func NewBlueprintProductClient(c config) *BlueprintProductClient {
	return &BlueprintProductClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `blueprintproduct.Hooks(f(g(h())))`.
func (c *BlueprintProductClient) Use(hooks ...Hook) {
	c.hooks.BlueprintProduct = append(c.hooks.BlueprintProduct, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `blueprintproduct.Intercept(f(g(h())))`.
func (c *BlueprintProductClient) Intercept(interceptors ...Interceptor) {
	c.inters.BlueprintProduct = append(c.inters.BlueprintProduct, interceptors...)
}

// Create returns a builder for creating a BlueprintProduct entity.
func (c *BlueprintProductClient) Create() *BlueprintProductCreate {
	mutation := newBlueprintProductMutation(c.config, OpCreate)
	return &BlueprintProductCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BlueprintProduct entities.
func (c *BlueprintProductClient) CreateBulk(builders ...*BlueprintProductCreate) *BlueprintProductCreateBulk {
	return &BlueprintProductCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BlueprintProductClient) MapCreateBulk(slice any, setFunc func(*BlueprintProductCreate, int)) *BlueprintProductCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BlueprintProductCreateBulk{err: fmt.Errorf("calling to BlueprintProductClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BlueprintProductCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BlueprintProductCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BlueprintProduct.
func (c *BlueprintProductClient) Update() *BlueprintProductUpdate {
	mutation := newBlueprintProductMutation(c.config, OpUpdate)
	return &BlueprintProductUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BlueprintProductClient) UpdateOne(bp *BlueprintProduct) *BlueprintProductUpdateOne {
	mutation := newBlueprintProductMutation(c.config, OpUpdateOne, withBlueprintProduct(bp))
	return &BlueprintProductUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BlueprintProductClient) UpdateOneID(id uint) *BlueprintProductUpdateOne {
	mutation := newBlueprintProductMutation(c.config, OpUpdateOne, withBlueprintProductID(id))
	return &BlueprintProductUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BlueprintProduct.
func (c *BlueprintProductClient) Delete() *BlueprintProductDelete {
	mutation := newBlueprintProductMutation(c.config, OpDelete)
	return &BlueprintProductDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BlueprintProductClient) DeleteOne(bp *BlueprintProduct) *BlueprintProductDeleteOne {
	return c.DeleteOneID(bp.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BlueprintProductClient) DeleteOneID(id uint) *BlueprintProductDeleteOne {
	builder := c.Delete().Where(blueprintproduct.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BlueprintProductDeleteOne{builder}
}

// Query returns a query builder for BlueprintProduct.
func (c *BlueprintProductClient) Query() *BlueprintProductQuery {
	return &BlueprintProductQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBlueprintProduct},
		inters: c.Interceptors(),
	}
}

// Get returns a BlueprintProduct entity by its id.
func (c *BlueprintProductClient) Get(ctx context.Context, id uint) (*BlueprintProduct, error) {
	return c.Query().Where(blueprintproduct.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BlueprintProductClient) GetX(ctx context.Context, id uint) *BlueprintProduct {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BlueprintProductClient) Hooks() []Hook {
	return c.hooks.BlueprintProduct
}

// Interceptors returns the client interceptors.
func (c *BlueprintProductClient) Interceptors() []Interceptor {
	return c.inters.BlueprintProduct
}

func (c *BlueprintProductClient) mutate(ctx context.Context, m *BlueprintProductMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BlueprintProductCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BlueprintProductUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BlueprintProductUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BlueprintProductDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BlueprintProduct mutation op: %q", m.Op())
	}
}

// CollectionClient is a client for the Collection schema.
type CollectionClient struct {
	config
}

// NewCollectionClient returns a client for the Collection from the given config.
func NewCollectionClient(c config) *CollectionClient {
	return &CollectionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `collection.Hooks(f(g(h())))`.
func (c *CollectionClient) Use(hooks ...Hook) {
	c.hooks.Collection = append(c.hooks.Collection, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `collection.Intercept(f(g(h())))`.
func (c *CollectionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Collection = append(c.inters.Collection, interceptors...)
}

// Create returns a builder for creating a Collection entity.
func (c *CollectionClient) Create() *CollectionCreate {
	mutation := newCollectionMutation(c.config, OpCreate)
	return &CollectionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Collection entities.
func (c *CollectionClient) CreateBulk(builders ...*CollectionCreate) *CollectionCreateBulk {
	return &CollectionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CollectionClient) MapCreateBulk(slice any, setFunc func(*CollectionCreate, int)) *CollectionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CollectionCreateBulk{err: fmt.Errorf("calling to CollectionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CollectionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CollectionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Collection.
func (c *CollectionClient) Update() *CollectionUpdate {
	mutation := newCollectionMutation(c.config, OpUpdate)
	return &CollectionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CollectionClient) UpdateOne(co *Collection) *CollectionUpdateOne {
	mutation := newCollectionMutation(c.config, OpUpdateOne, withCollection(co))
	return &CollectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CollectionClient) UpdateOneID(id uint) *CollectionUpdateOne {
	mutation := newCollectionMutation(c.config, OpUpdateOne, withCollectionID(id))
	return &CollectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Collection.
func (c *CollectionClient) Delete() *CollectionDelete {
	mutation := newCollectionMutation(c.config, OpDelete)
	return &CollectionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CollectionClient) DeleteOne(co *Collection) *CollectionDeleteOne {
	return c.DeleteOneID(co.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CollectionClient) DeleteOneID(id uint) *CollectionDeleteOne {
	builder := c.Delete().Where(collection.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CollectionDeleteOne{builder}
}

// Query returns a query builder for Collection.
func (c *CollectionClient) Query() *CollectionQuery {
	return &CollectionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCollection},
		inters: c.Interceptors(),
	}
}

// Get returns a Collection entity by its id.
func (c *CollectionClient) Get(ctx context.Context, id uint) (*Collection, error) {
	return c.Query().Where(collection.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CollectionClient) GetX(ctx context.Context, id uint) *Collection {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CollectionClient) Hooks() []Hook {
	hooks := c.hooks.Collection
	return append(hooks[:len(hooks):len(hooks)], collection.Hooks[:]...)
}

// Interceptors returns the client interceptors.
func (c *CollectionClient) Interceptors() []Interceptor {
	return c.inters.Collection
}

func (c *CollectionClient) mutate(ctx context.Context, m *CollectionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CollectionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CollectionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CollectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CollectionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Collection mutation op: %q", m.Op())
	}
}

// CollectionLikeClient is a client for the CollectionLike schema.
type CollectionLikeClient struct {
	config
}

// NewCollectionLikeClient returns a client for the CollectionLike from the given config.
func NewCollectionLikeClient(c config) *CollectionLikeClient {
	return &CollectionLikeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `collectionlike.Hooks(f(g(h())))`.
func (c *CollectionLikeClient) Use(hooks ...Hook) {
	c.hooks.CollectionLike = append(c.hooks.CollectionLike, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `collectionlike.Intercept(f(g(h())))`.
func (c *CollectionLikeClient) Intercept(interceptors ...Interceptor) {
	c.inters.CollectionLike = append(c.inters.CollectionLike, interceptors...)
}

// Create returns a builder for creating a CollectionLike entity.
func (c *CollectionLikeClient) Create() *CollectionLikeCreate {
	mutation := newCollectionLikeMutation(c.config, OpCreate)
	return &CollectionLikeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CollectionLike entities.
func (c *CollectionLikeClient) CreateBulk(builders ...*CollectionLikeCreate) *CollectionLikeCreateBulk {
	return &CollectionLikeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CollectionLikeClient) MapCreateBulk(slice any, setFunc func(*CollectionLikeCreate, int)) *CollectionLikeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CollectionLikeCreateBulk{err: fmt.Errorf("calling to CollectionLikeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CollectionLikeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CollectionLikeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CollectionLike.
func (c *CollectionLikeClient) Update() *CollectionLikeUpdate {
	mutation := newCollectionLikeMutation(c.config, OpUpdate)
	return &CollectionLikeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CollectionLikeClient) UpdateOne(cl *CollectionLike) *CollectionLikeUpdateOne {
	mutation := newCollectionLikeMutation(c.config, OpUpdateOne, withCollectionLike(cl))
	return &CollectionLikeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CollectionLikeClient) UpdateOneID(id uint) *CollectionLikeUpdateOne {
	mutation := newCollectionLikeMutation(c.config, OpUpdateOne, withCollectionLikeID(id))
	return &CollectionLikeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CollectionLike.
func (c *CollectionLikeClient) Delete() *CollectionLikeDelete {
	mutation := newCollectionLikeMutation(c.config, OpDelete)
	return &CollectionLikeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CollectionLikeClient) DeleteOne(cl *CollectionLike) *CollectionLikeDeleteOne {
	return c.DeleteOneID(cl.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CollectionLikeClient) DeleteOneID(id uint) *CollectionLikeDeleteOne {
	builder := c.Delete().Where(collectionlike.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CollectionLikeDeleteOne{builder}
}

// Query returns a query builder for CollectionLike.
func (c *CollectionLikeClient) Query() *CollectionLikeQuery {
	return &CollectionLikeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCollectionLike},
		inters: c.Interceptors(),
	}
}

// Get returns a CollectionLike entity by its id.
func (c *CollectionLikeClient) Get(ctx context.Context, id uint) (*CollectionLike, error) {
	return c.Query().Where(collectionlike.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CollectionLikeClient) GetX(ctx context.Context, id uint) *CollectionLike {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CollectionLikeClient) Hooks() []Hook {
	return c.hooks.CollectionLike
}

// Interceptors returns the client interceptors.
func (c *CollectionLikeClient) Interceptors() []Interceptor {
	return c.inters.CollectionLike
}

func (c *CollectionLikeClient) mutate(ctx context.Context, m *CollectionLikeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CollectionLikeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CollectionLikeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CollectionLikeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CollectionLikeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CollectionLike mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(u *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(u))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uint) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(u *User) *UserDeleteOne {
	return c.DeleteOneID(u.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uint) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uint) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uint) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Blueprint, BlueprintCollection, BlueprintLike, BlueprintProduct, Collection,
		CollectionLike, User []ent.Hook
	}
	inters struct {
		Blueprint, BlueprintCollection, BlueprintLike, BlueprintProduct, Collection,
		CollectionLike, User []ent.Interceptor
	}
)
