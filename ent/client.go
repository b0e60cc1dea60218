// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/ananya/practiq/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/ananya/practiq/ent/gradelevel"
	"github.com/ananya/practiq/ent/llmrequestevent"
	"github.com/ananya/practiq/ent/practiceanswer"
	"github.com/ananya/practiq/ent/practicesession"
	"github.com/ananya/practiq/ent/question"
	"github.com/ananya/practiq/ent/questionprogress"
	"github.com/ananya/practiq/ent/studenttier"
	"github.com/ananya/practiq/ent/subject"
	"github.com/ananya/practiq/ent/subtopic"
	"github.com/ananya/practiq/ent/topic"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// GradeLevel is the client for interacting with the GradeLevel builders.
	GradeLevel *GradeLevelClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// PracticeAnswer is the client for interacting with the PracticeAnswer builders.
	PracticeAnswer *PracticeAnswerClient
	// PracticeSession is the client for interacting with the PracticeSession builders.
	PracticeSession *PracticeSessionClient
	// Question is the client for interacting with the Question builders.
	Question *QuestionClient
	// QuestionProgress is the client for interacting with the QuestionProgress builders.
	QuestionProgress *QuestionProgressClient
	// StudentTier is the client for interacting with the StudentTier builders.
	StudentTier *StudentTierClient
	// SubTopic is the client for interacting with the SubTopic builders.
	SubTopic *SubTopicClient
	// Subject is the client for interacting with the Subject builders.
	Subject *SubjectClient
	// Topic is the client for interacting with the Topic builders.
	Topic *TopicClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.GradeLevel = NewGradeLevelClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.PracticeAnswer = NewPracticeAnswerClient(c.config)
	c.PracticeSession = NewPracticeSessionClient(c.config)
	c.Question = NewQuestionClient(c.config)
	c.QuestionProgress = NewQuestionProgressClient(c.config)
	c.StudentTier = NewStudentTierClient(c.config)
	c.SubTopic = NewSubTopicClient(c.config)
	c.Subject = NewSubjectClient(c.config)
	c.Topic = NewTopicClient(c.config)
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
		GradeLevel:       NewGradeLevelClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		PracticeAnswer:   NewPracticeAnswerClient(cfg),
		PracticeSession:  NewPracticeSessionClient(cfg),
		Question:         NewQuestionClient(cfg),
		QuestionProgress: NewQuestionProgressClient(cfg),
		StudentTier:      NewStudentTierClient(cfg),
		SubTopic:         NewSubTopicClient(cfg),
		Subject:          NewSubjectClient(cfg),
		Topic:            NewTopicClient(cfg),
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
		GradeLevel:       NewGradeLevelClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		PracticeAnswer:   NewPracticeAnswerClient(cfg),
		PracticeSession:  NewPracticeSessionClient(cfg),
		Question:         NewQuestionClient(cfg),
		QuestionProgress: NewQuestionProgressClient(cfg),
		StudentTier:      NewStudentTierClient(cfg),
		SubTopic:         NewSubTopicClient(cfg),
		Subject:          NewSubjectClient(cfg),
		Topic:            NewTopicClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		GradeLevel.
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
		c.GradeLevel, c.LLMRequestEvent, c.PracticeAnswer, c.PracticeSession,
		c.Question, c.QuestionProgress, c.StudentTier, c.SubTopic, c.Subject, c.Topic,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.GradeLevel, c.LLMRequestEvent, c.PracticeAnswer, c.PracticeSession,
		c.Question, c.QuestionProgress, c.StudentTier, c.SubTopic, c.Subject, c.Topic,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *GradeLevelMutation:
		return c.GradeLevel.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *PracticeAnswerMutation:
		return c.PracticeAnswer.mutate(ctx, m)
	case *PracticeSessionMutation:
		return c.PracticeSession.mutate(ctx, m)
	case *QuestionMutation:
		return c.Question.mutate(ctx, m)
	case *QuestionProgressMutation:
		return c.QuestionProgress.mutate(ctx, m)
	case *StudentTierMutation:
		return c.StudentTier.mutate(ctx, m)
	case *SubTopicMutation:
		return c.SubTopic.mutate(ctx, m)
	case *SubjectMutation:
		return c.Subject.mutate(ctx, m)
	case *TopicMutation:
		return c.Topic.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// GradeLevelClient is a client for the GradeLevel schema.
type GradeLevelClient struct {
	config
}

// NewGradeLevelClient returns a client for the GradeLevel from the given config.
func NewGradeLevelClient(c config) *GradeLevelClient {
	return &GradeLevelClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `gradelevel.Hooks(f(g(h())))`.
func (c *GradeLevelClient) Use(hooks ...Hook) {
	c.hooks.GradeLevel = append(c.hooks.GradeLevel, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `gradelevel.Intercept(f(g(h())))`.
func (c *GradeLevelClient) Intercept(interceptors ...Interceptor) {
	c.inters.GradeLevel = append(c.inters.GradeLevel, interceptors...)
}

// Create returns a builder for creating a GradeLevel entity.
func (c *GradeLevelClient) Create() *GradeLevelCreate {
	mutation := newGradeLevelMutation(c.config, OpCreate)
	return &GradeLevelCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GradeLevel entities.
func (c *GradeLevelClient) CreateBulk(builders ...*GradeLevelCreate) *GradeLevelCreateBulk {
	return &GradeLevelCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GradeLevelClient) MapCreateBulk(slice any, setFunc func(*GradeLevelCreate, int)) *GradeLevelCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GradeLevelCreateBulk{err: fmt.Errorf("calling to GradeLevelClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GradeLevelCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GradeLevelCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GradeLevel.
func (c *GradeLevelClient) Update() *GradeLevelUpdate {
	mutation := newGradeLevelMutation(c.config, OpUpdate)
	return &GradeLevelUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GradeLevelClient) UpdateOne(_m *GradeLevel) *GradeLevelUpdateOne {
	mutation := newGradeLevelMutation(c.config, OpUpdateOne, withGradeLevel(_m))
	return &GradeLevelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GradeLevelClient) UpdateOneID(id int) *GradeLevelUpdateOne {
	mutation := newGradeLevelMutation(c.config, OpUpdateOne, withGradeLevelID(id))
	return &GradeLevelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GradeLevel.
func (c *GradeLevelClient) Delete() *GradeLevelDelete {
	mutation := newGradeLevelMutation(c.config, OpDelete)
	return &GradeLevelDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GradeLevelClient) DeleteOne(_m *GradeLevel) *GradeLevelDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GradeLevelClient) DeleteOneID(id int) *GradeLevelDeleteOne {
	builder := c.Delete().Where(gradelevel.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GradeLevelDeleteOne{builder}
}

// Query returns a query builder for GradeLevel.
func (c *GradeLevelClient) Query() *GradeLevelQuery {
	return &GradeLevelQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGradeLevel},
		inters: c.Interceptors(),
	}
}

// Get returns a GradeLevel entity by its id.
func (c *GradeLevelClient) Get(ctx context.Context, id int) (*GradeLevel, error) {
	return c.Query().Where(gradelevel.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GradeLevelClient) GetX(ctx context.Context, id int) *GradeLevel {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GradeLevelClient) Hooks() []Hook {
	return c.hooks.GradeLevel
}

// Interceptors returns the client interceptors.
func (c *GradeLevelClient) Interceptors() []Interceptor {
	return c.inters.GradeLevel
}

func (c *GradeLevelClient) mutate(ctx context.Context, m *GradeLevelMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GradeLevelCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GradeLevelUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GradeLevelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GradeLevelDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GradeLevel mutation op: %q", m.Op())
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

// PracticeAnswerClient is a client for the PracticeAnswer schema.
type PracticeAnswerClient struct {
	config
}

// NewPracticeAnswerClient returns a client for the PracticeAnswer from the given config.
func NewPracticeAnswerClient(c config) *PracticeAnswerClient {
	return &PracticeAnswerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `practiceanswer.Hooks(f(g(h())))`.
func (c *PracticeAnswerClient) Use(hooks ...Hook) {
	c.hooks.PracticeAnswer = append(c.hooks.PracticeAnswer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `practiceanswer.Intercept(f(g(h())))`.
func (c *PracticeAnswerClient) Intercept(interceptors ...Interceptor) {
	c.inters.PracticeAnswer = append(c.inters.PracticeAnswer, interceptors...)
}

// Create returns a builder for creating a PracticeAnswer entity.
func (c *PracticeAnswerClient) Create() *PracticeAnswerCreate {
	mutation := newPracticeAnswerMutation(c.config, OpCreate)
	return &PracticeAnswerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PracticeAnswer entities.
func (c *PracticeAnswerClient) CreateBulk(builders ...*PracticeAnswerCreate) *PracticeAnswerCreateBulk {
	return &PracticeAnswerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PracticeAnswerClient) MapCreateBulk(slice any, setFunc func(*PracticeAnswerCreate, int)) *PracticeAnswerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PracticeAnswerCreateBulk{err: fmt.Errorf("calling to PracticeAnswerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PracticeAnswerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PracticeAnswerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PracticeAnswer.
func (c *PracticeAnswerClient) Update() *PracticeAnswerUpdate {
	mutation := newPracticeAnswerMutation(c.config, OpUpdate)
	return &PracticeAnswerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PracticeAnswerClient) UpdateOne(_m *PracticeAnswer) *PracticeAnswerUpdateOne {
	mutation := newPracticeAnswerMutation(c.config, OpUpdateOne, withPracticeAnswer(_m))
	return &PracticeAnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PracticeAnswerClient) UpdateOneID(id int) *PracticeAnswerUpdateOne {
	mutation := newPracticeAnswerMutation(c.config, OpUpdateOne, withPracticeAnswerID(id))
	return &PracticeAnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PracticeAnswer.
func (c *PracticeAnswerClient) Delete() *PracticeAnswerDelete {
	mutation := newPracticeAnswerMutation(c.config, OpDelete)
	return &PracticeAnswerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PracticeAnswerClient) DeleteOne(_m *PracticeAnswer) *PracticeAnswerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PracticeAnswerClient) DeleteOneID(id int) *PracticeAnswerDeleteOne {
	builder := c.Delete().Where(practiceanswer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PracticeAnswerDeleteOne{builder}
}

// Query returns a query builder for PracticeAnswer.
func (c *PracticeAnswerClient) Query() *PracticeAnswerQuery {
	return &PracticeAnswerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePracticeAnswer},
		inters: c.Interceptors(),
	}
}

// Get returns a PracticeAnswer entity by its id.
func (c *PracticeAnswerClient) Get(ctx context.Context, id int) (*PracticeAnswer, error) {
	return c.Query().Where(practiceanswer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PracticeAnswerClient) GetX(ctx context.Context, id int) *PracticeAnswer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PracticeAnswerClient) Hooks() []Hook {
	return c.hooks.PracticeAnswer
}

// Interceptors returns the client interceptors.
func (c *PracticeAnswerClient) Interceptors() []Interceptor {
	return c.inters.PracticeAnswer
}

func (c *PracticeAnswerClient) mutate(ctx context.Context, m *PracticeAnswerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PracticeAnswerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PracticeAnswerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PracticeAnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PracticeAnswerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PracticeAnswer mutation op: %q", m.Op())
	}
}

// PracticeSessionClient is a client for the PracticeSession schema.
type PracticeSessionClient struct {
	config
}

// NewPracticeSessionClient returns a client for the PracticeSession from the given config.
func NewPracticeSessionClient(c config) *PracticeSessionClient {
	return &PracticeSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `practicesession.Hooks(f(g(h())))`.
func (c *PracticeSessionClient) Use(hooks ...Hook) {
	c.hooks.PracticeSession = append(c.hooks.PracticeSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `practicesession.Intercept(f(g(h())))`.
func (c *PracticeSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PracticeSession = append(c.inters.PracticeSession, interceptors...)
}

// Create returns a builder for creating a PracticeSession entity.
func (c *PracticeSessionClient) Create() *PracticeSessionCreate {
	mutation := newPracticeSessionMutation(c.config, OpCreate)
	return &PracticeSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PracticeSession entities.
func (c *PracticeSessionClient) CreateBulk(builders ...*PracticeSessionCreate) *PracticeSessionCreateBulk {
	return &PracticeSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PracticeSessionClient) MapCreateBulk(slice any, setFunc func(*PracticeSessionCreate, int)) *PracticeSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PracticeSessionCreateBulk{err: fmt.Errorf("calling to PracticeSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PracticeSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PracticeSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PracticeSession.
func (c *PracticeSessionClient) Update() *PracticeSessionUpdate {
	mutation := newPracticeSessionMutation(c.config, OpUpdate)
	return &PracticeSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PracticeSessionClient) UpdateOne(_m *PracticeSession) *PracticeSessionUpdateOne {
	mutation := newPracticeSessionMutation(c.config, OpUpdateOne, withPracticeSession(_m))
	return &PracticeSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PracticeSessionClient) UpdateOneID(id int) *PracticeSessionUpdateOne {
	mutation := newPracticeSessionMutation(c.config, OpUpdateOne, withPracticeSessionID(id))
	return &PracticeSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PracticeSession.
func (c *PracticeSessionClient) Delete() *PracticeSessionDelete {
	mutation := newPracticeSessionMutation(c.config, OpDelete)
	return &PracticeSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PracticeSessionClient) DeleteOne(_m *PracticeSession) *PracticeSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PracticeSessionClient) DeleteOneID(id int) *PracticeSessionDeleteOne {
	builder := c.Delete().Where(practicesession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PracticeSessionDeleteOne{builder}
}

// Query returns a query builder for PracticeSession.
func (c *PracticeSessionClient) Query() *PracticeSessionQuery {
	return &PracticeSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePracticeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a PracticeSession entity by its id.
func (c *PracticeSessionClient) Get(ctx context.Context, id int) (*PracticeSession, error) {
	return c.Query().Where(practicesession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PracticeSessionClient) GetX(ctx context.Context, id int) *PracticeSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PracticeSessionClient) Hooks() []Hook {
	return c.hooks.PracticeSession
}

// Interceptors returns the client interceptors.
func (c *PracticeSessionClient) Interceptors() []Interceptor {
	return c.inters.PracticeSession
}

func (c *PracticeSessionClient) mutate(ctx context.Context, m *PracticeSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PracticeSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PracticeSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PracticeSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PracticeSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PracticeSession mutation op: %q", m.Op())
	}
}

// QuestionClient is a client for the Question schema.
type QuestionClient struct {
	config
}

// NewQuestionClient returns a client for the Question from the given config.
func NewQuestionClient(c config) *QuestionClient {
	return &QuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `question.Hooks(f(g(h())))`.
func (c *QuestionClient) Use(hooks ...Hook) {
	c.hooks.Question = append(c.hooks.Question, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `question.Intercept(f(g(h())))`.
func (c *QuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Question = append(c.inters.Question, interceptors...)
}

// Create returns a builder for creating a Question entity.
func (c *QuestionClient) Create() *QuestionCreate {
	mutation := newQuestionMutation(c.config, OpCreate)
	return &QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Question entities.
func (c *QuestionClient) CreateBulk(builders ...*QuestionCreate) *QuestionCreateBulk {
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionClient) MapCreateBulk(slice any, setFunc func(*QuestionCreate, int)) *QuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionCreateBulk{err: fmt.Errorf("calling to QuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Question.
func (c *QuestionClient) Update() *QuestionUpdate {
	mutation := newQuestionMutation(c.config, OpUpdate)
	return &QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionClient) UpdateOne(_m *Question) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestion(_m))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionClient) UpdateOneID(id int) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestionID(id))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Question.
func (c *QuestionClient) Delete() *QuestionDelete {
	mutation := newQuestionMutation(c.config, OpDelete)
	return &QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionClient) DeleteOne(_m *Question) *QuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionClient) DeleteOneID(id int) *QuestionDeleteOne {
	builder := c.Delete().Where(question.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionDeleteOne{builder}
}

// Query returns a query builder for Question.
func (c *QuestionClient) Query() *QuestionQuery {
	return &QuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a Question entity by its id.
func (c *QuestionClient) Get(ctx context.Context, id int) (*Question, error) {
	return c.Query().Where(question.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionClient) GetX(ctx context.Context, id int) *Question {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestionClient) Hooks() []Hook {
	return c.hooks.Question
}

// Interceptors returns the client interceptors.
func (c *QuestionClient) Interceptors() []Interceptor {
	return c.inters.Question
}

func (c *QuestionClient) mutate(ctx context.Context, m *QuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Question mutation op: %q", m.Op())
	}
}

// QuestionProgressClient is a client for the QuestionProgress schema.
type QuestionProgressClient struct {
	config
}

// NewQuestionProgressClient returns a client for the QuestionProgress from the given config.
func NewQuestionProgressClient(c config) *QuestionProgressClient {
	return &QuestionProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `questionprogress.Hooks(f(g(h())))`.
func (c *QuestionProgressClient) Use(hooks ...Hook) {
	c.hooks.QuestionProgress = append(c.hooks.QuestionProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `questionprogress.Intercept(f(g(h())))`.
func (c *QuestionProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuestionProgress = append(c.inters.QuestionProgress, interceptors...)
}

// Create returns a builder for creating a QuestionProgress entity.
func (c *QuestionProgressClient) Create() *QuestionProgressCreate {
	mutation := newQuestionProgressMutation(c.config, OpCreate)
	return &QuestionProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuestionProgress entities.
func (c *QuestionProgressClient) CreateBulk(builders ...*QuestionProgressCreate) *QuestionProgressCreateBulk {
	return &QuestionProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionProgressClient) MapCreateBulk(slice any, setFunc func(*QuestionProgressCreate, int)) *QuestionProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionProgressCreateBulk{err: fmt.Errorf("calling to QuestionProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuestionProgress.
func (c *QuestionProgressClient) Update() *QuestionProgressUpdate {
	mutation := newQuestionProgressMutation(c.config, OpUpdate)
	return &QuestionProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionProgressClient) UpdateOne(_m *QuestionProgress) *QuestionProgressUpdateOne {
	mutation := newQuestionProgressMutation(c.config, OpUpdateOne, withQuestionProgress(_m))
	return &QuestionProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionProgressClient) UpdateOneID(id int) *QuestionProgressUpdateOne {
	mutation := newQuestionProgressMutation(c.config, OpUpdateOne, withQuestionProgressID(id))
	return &QuestionProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuestionProgress.
func (c *QuestionProgressClient) Delete() *QuestionProgressDelete {
	mutation := newQuestionProgressMutation(c.config, OpDelete)
	return &QuestionProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionProgressClient) DeleteOne(_m *QuestionProgress) *QuestionProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionProgressClient) DeleteOneID(id int) *QuestionProgressDeleteOne {
	builder := c.Delete().Where(questionprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionProgressDeleteOne{builder}
}

// Query returns a query builder for QuestionProgress.
func (c *QuestionProgressClient) Query() *QuestionProgressQuery {
	return &QuestionProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestionProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a QuestionProgress entity by its id.
func (c *QuestionProgressClient) Get(ctx context.Context, id int) (*QuestionProgress, error) {
	return c.Query().Where(questionprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionProgressClient) GetX(ctx context.Context, id int) *QuestionProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestionProgressClient) Hooks() []Hook {
	return c.hooks.QuestionProgress
}

// Interceptors returns the client interceptors.
func (c *QuestionProgressClient) Interceptors() []Interceptor {
	return c.inters.QuestionProgress
}

func (c *QuestionProgressClient) mutate(ctx context.Context, m *QuestionProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuestionProgress mutation op: %q", m.Op())
	}
}

// StudentTierClient is a client for the StudentTier schema.
type StudentTierClient struct {
	config
}

// NewStudentTierClient returns a client for the StudentTier from the given config.
func NewStudentTierClient(c config) *StudentTierClient {
	return &StudentTierClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studenttier.Hooks(f(g(h())))`.
func (c *StudentTierClient) Use(hooks ...Hook) {
	c.hooks.StudentTier = append(c.hooks.StudentTier, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studenttier.Intercept(f(g(h())))`.
func (c *StudentTierClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudentTier = append(c.inters.StudentTier, interceptors...)
}

// Create returns a builder for creating a StudentTier entity.
func (c *StudentTierClient) Create() *StudentTierCreate {
	mutation := newStudentTierMutation(c.config, OpCreate)
	return &StudentTierCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudentTier entities.
func (c *StudentTierClient) CreateBulk(builders ...*StudentTierCreate) *StudentTierCreateBulk {
	return &StudentTierCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudentTierClient) MapCreateBulk(slice any, setFunc func(*StudentTierCreate, int)) *StudentTierCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudentTierCreateBulk{err: fmt.Errorf("calling to StudentTierClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudentTierCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudentTierCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudentTier.
func (c *StudentTierClient) Update() *StudentTierUpdate {
	mutation := newStudentTierMutation(c.config, OpUpdate)
	return &StudentTierUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudentTierClient) UpdateOne(_m *StudentTier) *StudentTierUpdateOne {
	mutation := newStudentTierMutation(c.config, OpUpdateOne, withStudentTier(_m))
	return &StudentTierUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudentTierClient) UpdateOneID(id int) *StudentTierUpdateOne {
	mutation := newStudentTierMutation(c.config, OpUpdateOne, withStudentTierID(id))
	return &StudentTierUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudentTier.
func (c *StudentTierClient) Delete() *StudentTierDelete {
	mutation := newStudentTierMutation(c.config, OpDelete)
	return &StudentTierDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudentTierClient) DeleteOne(_m *StudentTier) *StudentTierDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudentTierClient) DeleteOneID(id int) *StudentTierDeleteOne {
	builder := c.Delete().Where(studenttier.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudentTierDeleteOne{builder}
}

// Query returns a query builder for StudentTier.
func (c *StudentTierClient) Query() *StudentTierQuery {
	return &StudentTierQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudentTier},
		inters: c.Interceptors(),
	}
}

// Get returns a StudentTier entity by its id.
func (c *StudentTierClient) Get(ctx context.Context, id int) (*StudentTier, error) {
	return c.Query().Where(studenttier.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudentTierClient) GetX(ctx context.Context, id int) *StudentTier {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StudentTierClient) Hooks() []Hook {
	return c.hooks.StudentTier
}

// Interceptors returns the client interceptors.
func (c *StudentTierClient) Interceptors() []Interceptor {
	return c.inters.StudentTier
}

func (c *StudentTierClient) mutate(ctx context.Context, m *StudentTierMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudentTierCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudentTierUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudentTierUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudentTierDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudentTier mutation op: %q", m.Op())
	}
}

// SubTopicClient is a client for the SubTopic schema.
type SubTopicClient struct {
	config
}

// NewSubTopicClient returns a client for the SubTopic from the given config.
func NewSubTopicClient(c config) *SubTopicClient {
	return &SubTopicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subtopic.Hooks(f(g(h())))`.
func (c *SubTopicClient) Use(hooks ...Hook) {
	c.hooks.SubTopic = append(c.hooks.SubTopic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subtopic.Intercept(f(g(h())))`.
func (c *SubTopicClient) Intercept(interceptors ...Interceptor) {
	c.inters.SubTopic = append(c.inters.SubTopic, interceptors...)
}

// Create returns a builder for creating a SubTopic entity.
func (c *SubTopicClient) Create() *SubTopicCreate {
	mutation := newSubTopicMutation(c.config, OpCreate)
	return &SubTopicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SubTopic entities.
func (c *SubTopicClient) CreateBulk(builders ...*SubTopicCreate) *SubTopicCreateBulk {
	return &SubTopicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubTopicClient) MapCreateBulk(slice any, setFunc func(*SubTopicCreate, int)) *SubTopicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubTopicCreateBulk{err: fmt.Errorf("calling to SubTopicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubTopicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubTopicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SubTopic.
func (c *SubTopicClient) Update() *SubTopicUpdate {
	mutation := newSubTopicMutation(c.config, OpUpdate)
	return &SubTopicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubTopicClient) UpdateOne(_m *SubTopic) *SubTopicUpdateOne {
	mutation := newSubTopicMutation(c.config, OpUpdateOne, withSubTopic(_m))
	return &SubTopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubTopicClient) UpdateOneID(id int) *SubTopicUpdateOne {
	mutation := newSubTopicMutation(c.config, OpUpdateOne, withSubTopicID(id))
	return &SubTopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SubTopic.
func (c *SubTopicClient) Delete() *SubTopicDelete {
	mutation := newSubTopicMutation(c.config, OpDelete)
	return &SubTopicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubTopicClient) DeleteOne(_m *SubTopic) *SubTopicDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubTopicClient) DeleteOneID(id int) *SubTopicDeleteOne {
	builder := c.Delete().Where(subtopic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubTopicDeleteOne{builder}
}

// Query returns a query builder for SubTopic.
func (c *SubTopicClient) Query() *SubTopicQuery {
	return &SubTopicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubTopic},
		inters: c.Interceptors(),
	}
}

// Get returns a SubTopic entity by its id.
func (c *SubTopicClient) Get(ctx context.Context, id int) (*SubTopic, error) {
	return c.Query().Where(subtopic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubTopicClient) GetX(ctx context.Context, id int) *SubTopic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SubTopicClient) Hooks() []Hook {
	return c.hooks.SubTopic
}

// Interceptors returns the client interceptors.
func (c *SubTopicClient) Interceptors() []Interceptor {
	return c.inters.SubTopic
}

func (c *SubTopicClient) mutate(ctx context.Context, m *SubTopicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubTopicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubTopicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubTopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubTopicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SubTopic mutation op: %q", m.Op())
	}
}

// SubjectClient is a client for the Subject schema.
type SubjectClient struct {
	config
}

// NewSubjectClient returns a client for the Subject from the given config.
func NewSubjectClient(c config) *SubjectClient {
	return &SubjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subject.Hooks(f(g(h())))`.
func (c *SubjectClient) Use(hooks ...Hook) {
	c.hooks.Subject = append(c.hooks.Subject, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subject.Intercept(f(g(h())))`.
func (c *SubjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Subject = append(c.inters.Subject, interceptors...)
}

// Create returns a builder for creating a Subject entity.
func (c *SubjectClient) Create() *SubjectCreate {
	mutation := newSubjectMutation(c.config, OpCreate)
	return &SubjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Subject entities.
func (c *SubjectClient) CreateBulk(builders ...*SubjectCreate) *SubjectCreateBulk {
	return &SubjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubjectClient) MapCreateBulk(slice any, setFunc func(*SubjectCreate, int)) *SubjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubjectCreateBulk{err: fmt.Errorf("calling to SubjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Subject.
func (c *SubjectClient) Update() *SubjectUpdate {
	mutation := newSubjectMutation(c.config, OpUpdate)
	return &SubjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubjectClient) UpdateOne(_m *Subject) *SubjectUpdateOne {
	mutation := newSubjectMutation(c.config, OpUpdateOne, withSubject(_m))
	return &SubjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubjectClient) UpdateOneID(id int) *SubjectUpdateOne {
	mutation := newSubjectMutation(c.config, OpUpdateOne, withSubjectID(id))
	return &SubjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Subject.
func (c *SubjectClient) Delete() *SubjectDelete {
	mutation := newSubjectMutation(c.config, OpDelete)
	return &SubjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubjectClient) DeleteOne(_m *Subject) *SubjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubjectClient) DeleteOneID(id int) *SubjectDeleteOne {
	builder := c.Delete().Where(subject.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubjectDeleteOne{builder}
}

// Query returns a query builder for Subject.
func (c *SubjectClient) Query() *SubjectQuery {
	return &SubjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubject},
		inters: c.Interceptors(),
	}
}

// Get returns a Subject entity by its id.
func (c *SubjectClient) Get(ctx context.Context, id int) (*Subject, error) {
	return c.Query().Where(subject.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubjectClient) GetX(ctx context.Context, id int) *Subject {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SubjectClient) Hooks() []Hook {
	return c.hooks.Subject
}

// Interceptors returns the client interceptors.
func (c *SubjectClient) Interceptors() []Interceptor {
	return c.inters.Subject
}

func (c *SubjectClient) mutate(ctx context.Context, m *SubjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Subject mutation op: %q", m.Op())
	}
}

// TopicClient is a client for the Topic schema.
type TopicClient struct {
	config
}

// NewTopicClient returns a client for the Topic from the given config.
func NewTopicClient(c config) *TopicClient {
	return &TopicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topic.Hooks(f(g(h())))`.
func (c *TopicClient) Use(hooks ...Hook) {
	c.hooks.Topic = append(c.hooks.Topic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topic.Intercept(f(g(h())))`.
func (c *TopicClient) Intercept(interceptors ...Interceptor) {
	c.inters.Topic = append(c.inters.Topic, interceptors...)
}

// Create returns a builder for creating a Topic entity.
func (c *TopicClient) Create() *TopicCreate {
	mutation := newTopicMutation(c.config, OpCreate)
	return &TopicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Topic entities.
func (c *TopicClient) CreateBulk(builders ...*TopicCreate) *TopicCreateBulk {
	return &TopicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicClient) MapCreateBulk(slice any, setFunc func(*TopicCreate, int)) *TopicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicCreateBulk{err: fmt.Errorf("calling to TopicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Topic.
func (c *TopicClient) Update() *TopicUpdate {
	mutation := newTopicMutation(c.config, OpUpdate)
	return &TopicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicClient) UpdateOne(_m *Topic) *TopicUpdateOne {
	mutation := newTopicMutation(c.config, OpUpdateOne, withTopic(_m))
	return &TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicClient) UpdateOneID(id int) *TopicUpdateOne {
	mutation := newTopicMutation(c.config, OpUpdateOne, withTopicID(id))
	return &TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Topic.
func (c *TopicClient) Delete() *TopicDelete {
	mutation := newTopicMutation(c.config, OpDelete)
	return &TopicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicClient) DeleteOne(_m *Topic) *TopicDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicClient) DeleteOneID(id int) *TopicDeleteOne {
	builder := c.Delete().Where(topic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicDeleteOne{builder}
}

// Query returns a query builder for Topic.
func (c *TopicClient) Query() *TopicQuery {
	return &TopicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopic},
		inters: c.Interceptors(),
	}
}

// Get returns a Topic entity by its id.
func (c *TopicClient) Get(ctx context.Context, id int) (*Topic, error) {
	return c.Query().Where(topic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicClient) GetX(ctx context.Context, id int) *Topic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TopicClient) Hooks() []Hook {
	return c.hooks.Topic
}

// Interceptors returns the client interceptors.
func (c *TopicClient) Interceptors() []Interceptor {
	return c.inters.Topic
}

func (c *TopicClient) mutate(ctx context.Context, m *TopicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Topic mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		GradeLevel, LLMRequestEvent, PracticeAnswer, PracticeSession, Question,
		QuestionProgress, StudentTier, SubTopic, Subject, Topic []ent.Hook
	}
	inters struct {
		GradeLevel, LLMRequestEvent, PracticeAnswer, PracticeSession, Question,
		QuestionProgress, StudentTier, SubTopic, Subject, Topic []ent.Interceptor
	}
)
