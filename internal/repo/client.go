// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/nutrivida/nutrivida_backend/internal/repo/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/nutrivida/nutrivida_backend/internal/repo/anamnesis"
	"github.com/nutrivida/nutrivida_backend/internal/repo/appointment"
	"github.com/nutrivida/nutrivida_backend/internal/repo/appsetting"
	"github.com/nutrivida/nutrivida_backend/internal/repo/availabilitywindow"
	"github.com/nutrivida/nutrivida_backend/internal/repo/conversation"
	"github.com/nutrivida/nutrivida_backend/internal/repo/diaryentry"
	"github.com/nutrivida/nutrivida_backend/internal/repo/earnedpin"
	"github.com/nutrivida/nutrivida_backend/internal/repo/gamificationstate"
	"github.com/nutrivida/nutrivida_backend/internal/repo/habit"
	"github.com/nutrivida/nutrivida_backend/internal/repo/habitcheck"
	"github.com/nutrivida/nutrivida_backend/internal/repo/hydrationlog"
	"github.com/nutrivida/nutrivida_backend/internal/repo/message"
	"github.com/nutrivida/nutrivida_backend/internal/repo/notification"
	"github.com/nutrivida/nutrivida_backend/internal/repo/post"
	"github.com/nutrivida/nutrivida_backend/internal/repo/postreaction"
	"github.com/nutrivida/nutrivida_backend/internal/repo/user"
	"github.com/nutrivida/nutrivida_backend/internal/repo/usersession"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Anamnesis is the client for interacting with the Anamnesis builders.
	Anamnesis *AnamnesisClient
	// AppSetting is the client for interacting with the AppSetting builders.
	AppSetting *AppSettingClient
	// Appointment is the client for interacting with the Appointment builders.
	Appointment *AppointmentClient
	// AvailabilityWindow is the client for interacting with the AvailabilityWindow builders.
	AvailabilityWindow *AvailabilityWindowClient
	// Conversation is the client for interacting with the Conversation builders.
	Conversation *ConversationClient
	// DiaryEntry is the client for interacting with the DiaryEntry builders.
	DiaryEntry *DiaryEntryClient
	// EarnedPin is the client for interacting with the EarnedPin builders.
	EarnedPin *EarnedPinClient
	// GamificationState is the client for interacting with the GamificationState builders.
	GamificationState *GamificationStateClient
	// Habit is the client for interacting with the Habit builders.
	Habit *HabitClient
	// HabitCheck is the client for interacting with the HabitCheck builders.
	HabitCheck *HabitCheckClient
	// HydrationLog is the client for interacting with the HydrationLog builders.
	HydrationLog *HydrationLogClient
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
	// Notification is the client for interacting with the Notification builders.
	Notification *NotificationClient
	// Post is the client for interacting with the Post builders.
	Post *PostClient
	// PostReaction is the client for interacting with the PostReaction builders.
	PostReaction *PostReactionClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// UserSession is the client for interacting with the UserSession builders.
	UserSession *UserSessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Anamnesis = NewAnamnesisClient(c.config)
	c.AppSetting = NewAppSettingClient(c.config)
	c.Appointment = NewAppointmentClient(c.config)
	c.AvailabilityWindow = NewAvailabilityWindowClient(c.config)
	c.Conversation = NewConversationClient(c.config)
	c.DiaryEntry = NewDiaryEntryClient(c.config)
	c.EarnedPin = NewEarnedPinClient(c.config)
	c.GamificationState = NewGamificationStateClient(c.config)
	c.Habit = NewHabitClient(c.config)
	c.HabitCheck = NewHabitCheckClient(c.config)
	c.HydrationLog = NewHydrationLogClient(c.config)
	c.Message = NewMessageClient(c.config)
	c.Notification = NewNotificationClient(c.config)
	c.Post = NewPostClient(c.config)
	c.PostReaction = NewPostReactionClient(c.config)
	c.User = NewUserClient(c.config)
	c.UserSession = NewUserSessionClient(c.config)
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
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		Anamnesis:          NewAnamnesisClient(cfg),
		AppSetting:         NewAppSettingClient(cfg),
		Appointment:        NewAppointmentClient(cfg),
		AvailabilityWindow: NewAvailabilityWindowClient(cfg),
		Conversation:       NewConversationClient(cfg),
		DiaryEntry:         NewDiaryEntryClient(cfg),
		EarnedPin:          NewEarnedPinClient(cfg),
		GamificationState:  NewGamificationStateClient(cfg),
		Habit:              NewHabitClient(cfg),
		HabitCheck:         NewHabitCheckClient(cfg),
		HydrationLog:       NewHydrationLogClient(cfg),
		Message:            NewMessageClient(cfg),
		Notification:       NewNotificationClient(cfg),
		Post:               NewPostClient(cfg),
		PostReaction:       NewPostReactionClient(cfg),
		User:               NewUserClient(cfg),
		UserSession:        NewUserSessionClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		Anamnesis:          NewAnamnesisClient(cfg),
		AppSetting:         NewAppSettingClient(cfg),
		Appointment:        NewAppointmentClient(cfg),
		AvailabilityWindow: NewAvailabilityWindowClient(cfg),
		Conversation:       NewConversationClient(cfg),
		DiaryEntry:         NewDiaryEntryClient(cfg),
		EarnedPin:          NewEarnedPinClient(cfg),
		GamificationState:  NewGamificationStateClient(cfg),
		Habit:              NewHabitClient(cfg),
		HabitCheck:         NewHabitCheckClient(cfg),
		HydrationLog:       NewHydrationLogClient(cfg),
		Message:            NewMessageClient(cfg),
		Notification:       NewNotificationClient(cfg),
		Post:               NewPostClient(cfg),
		PostReaction:       NewPostReactionClient(cfg),
		User:               NewUserClient(cfg),
		UserSession:        NewUserSessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Anamnesis.
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
		c.Anamnesis, c.AppSetting, c.Appointment, c.AvailabilityWindow, c.Conversation,
		c.DiaryEntry, c.EarnedPin, c.GamificationState, c.Habit, c.HabitCheck,
		c.HydrationLog, c.Message, c.Notification, c.Post, c.PostReaction, c.User,
		c.UserSession,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Anamnesis, c.AppSetting, c.Appointment, c.AvailabilityWindow, c.Conversation,
		c.DiaryEntry, c.EarnedPin, c.GamificationState, c.Habit, c.HabitCheck,
		c.HydrationLog, c.Message, c.Notification, c.Post, c.PostReaction, c.User,
		c.UserSession,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnamnesisMutation:
		return c.Anamnesis.mutate(ctx, m)
	case *AppSettingMutation:
		return c.AppSetting.mutate(ctx, m)
	case *AppointmentMutation:
		return c.Appointment.mutate(ctx, m)
	case *AvailabilityWindowMutation:
		return c.AvailabilityWindow.mutate(ctx, m)
	case *ConversationMutation:
		return c.Conversation.mutate(ctx, m)
	case *DiaryEntryMutation:
		return c.DiaryEntry.mutate(ctx, m)
	case *EarnedPinMutation:
		return c.EarnedPin.mutate(ctx, m)
	case *GamificationStateMutation:
		return c.GamificationState.mutate(ctx, m)
	case *HabitMutation:
		return c.Habit.mutate(ctx, m)
	case *HabitCheckMutation:
		return c.HabitCheck.mutate(ctx, m)
	case *HydrationLogMutation:
		return c.HydrationLog.mutate(ctx, m)
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	case *NotificationMutation:
		return c.Notification.mutate(ctx, m)
	case *PostMutation:
		return c.Post.mutate(ctx, m)
	case *PostReactionMutation:
		return c.PostReaction.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *UserSessionMutation:
		return c.UserSession.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// AnamnesisClient is a client for the Anamnesis schema.
type AnamnesisClient struct {
	config
}

// NewAnamnesisClient returns a client for the Anamnesis from the given config.
func NewAnamnesisClient(c config) *AnamnesisClient {
	return &AnamnesisClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `anamnesis.Hooks(f(g(h())))`.
func (c *AnamnesisClient) Use(hooks ...Hook) {
	c.hooks.Anamnesis = append(c.hooks.Anamnesis, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `anamnesis.Intercept(f(g(h())))`.
func (c *AnamnesisClient) Intercept(interceptors ...Interceptor) {
	c.inters.Anamnesis = append(c.inters.Anamnesis, interceptors...)
}

// Create returns a builder for creating a Anamnesis entity.
func (c *AnamnesisClient) Create() *AnamnesisCreate {
	mutation := newAnamnesisMutation(c.config, OpCreate)
	return &AnamnesisCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Anamnesis entities.
func (c *AnamnesisClient) CreateBulk(builders ...*AnamnesisCreate) *AnamnesisCreateBulk {
	return &AnamnesisCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnamnesisClient) MapCreateBulk(slice any, setFunc func(*AnamnesisCreate, int)) *AnamnesisCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnamnesisCreateBulk{err: fmt.Errorf("calling to AnamnesisClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnamnesisCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnamnesisCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Anamnesis.
func (c *AnamnesisClient) Update() *AnamnesisUpdate {
	mutation := newAnamnesisMutation(c.config, OpUpdate)
	return &AnamnesisUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnamnesisClient) UpdateOne(_m *Anamnesis) *AnamnesisUpdateOne {
	mutation := newAnamnesisMutation(c.config, OpUpdateOne, withAnamnesis(_m))
	return &AnamnesisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnamnesisClient) UpdateOneID(id uuid.UUID) *AnamnesisUpdateOne {
	mutation := newAnamnesisMutation(c.config, OpUpdateOne, withAnamnesisID(id))
	return &AnamnesisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Anamnesis.
func (c *AnamnesisClient) Delete() *AnamnesisDelete {
	mutation := newAnamnesisMutation(c.config, OpDelete)
	return &AnamnesisDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnamnesisClient) DeleteOne(_m *Anamnesis) *AnamnesisDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnamnesisClient) DeleteOneID(id uuid.UUID) *AnamnesisDeleteOne {
	builder := c.Delete().Where(anamnesis.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnamnesisDeleteOne{builder}
}

// Query returns a query builder for Anamnesis.
func (c *AnamnesisClient) Query() *AnamnesisQuery {
	return &AnamnesisQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnamnesis},
		inters: c.Interceptors(),
	}
}

// Get returns a Anamnesis entity by its id.
func (c *AnamnesisClient) Get(ctx context.Context, id uuid.UUID) (*Anamnesis, error) {
	return c.Query().Where(anamnesis.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnamnesisClient) GetX(ctx context.Context, id uuid.UUID) *Anamnesis {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnamnesisClient) Hooks() []Hook {
	return c.hooks.Anamnesis
}

// Interceptors returns the client interceptors.
func (c *AnamnesisClient) Interceptors() []Interceptor {
	return c.inters.Anamnesis
}

func (c *AnamnesisClient) mutate(ctx context.Context, m *AnamnesisMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnamnesisCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnamnesisUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnamnesisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnamnesisDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Anamnesis mutation op: %q", m.Op())
	}
}

// AppSettingClient is a client for the AppSetting schema.
type AppSettingClient struct {
	config
}

// NewAppSettingClient returns a client for the AppSetting from the given config.
func NewAppSettingClient(c config) *AppSettingClient {
	return &AppSettingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `appsetting.Hooks(f(g(h())))`.
func (c *AppSettingClient) Use(hooks ...Hook) {
	c.hooks.AppSetting = append(c.hooks.AppSetting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `appsetting.Intercept(f(g(h())))`.
func (c *AppSettingClient) Intercept(interceptors ...Interceptor) {
	c.inters.AppSetting = append(c.inters.AppSetting, interceptors...)
}

// Create returns a builder for creating a AppSetting entity.
func (c *AppSettingClient) Create() *AppSettingCreate {
	mutation := newAppSettingMutation(c.config, OpCreate)
	return &AppSettingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AppSetting entities.
func (c *AppSettingClient) CreateBulk(builders ...*AppSettingCreate) *AppSettingCreateBulk {
	return &AppSettingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AppSettingClient) MapCreateBulk(slice any, setFunc func(*AppSettingCreate, int)) *AppSettingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AppSettingCreateBulk{err: fmt.Errorf("calling to AppSettingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AppSettingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AppSettingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AppSetting.
func (c *AppSettingClient) Update() *AppSettingUpdate {
	mutation := newAppSettingMutation(c.config, OpUpdate)
	return &AppSettingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AppSettingClient) UpdateOne(_m *AppSetting) *AppSettingUpdateOne {
	mutation := newAppSettingMutation(c.config, OpUpdateOne, withAppSetting(_m))
	return &AppSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AppSettingClient) UpdateOneID(id uuid.UUID) *AppSettingUpdateOne {
	mutation := newAppSettingMutation(c.config, OpUpdateOne, withAppSettingID(id))
	return &AppSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AppSetting.
func (c *AppSettingClient) Delete() *AppSettingDelete {
	mutation := newAppSettingMutation(c.config, OpDelete)
	return &AppSettingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AppSettingClient) DeleteOne(_m *AppSetting) *AppSettingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AppSettingClient) DeleteOneID(id uuid.UUID) *AppSettingDeleteOne {
	builder := c.Delete().Where(appsetting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AppSettingDeleteOne{builder}
}

// Query returns a query builder for AppSetting.
func (c *AppSettingClient) Query() *AppSettingQuery {
	return &AppSettingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAppSetting},
		inters: c.Interceptors(),
	}
}

// Get returns a AppSetting entity by its id.
func (c *AppSettingClient) Get(ctx context.Context, id uuid.UUID) (*AppSetting, error) {
	return c.Query().Where(appsetting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AppSettingClient) GetX(ctx context.Context, id uuid.UUID) *AppSetting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AppSettingClient) Hooks() []Hook {
	return c.hooks.AppSetting
}

// Interceptors returns the client interceptors.
func (c *AppSettingClient) Interceptors() []Interceptor {
	return c.inters.AppSetting
}

func (c *AppSettingClient) mutate(ctx context.Context, m *AppSettingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AppSettingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AppSettingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AppSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AppSettingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown AppSetting mutation op: %q", m.Op())
	}
}

// AppointmentClient is a client for the Appointment schema.
type AppointmentClient struct {
	config
}

// NewAppointmentClient returns a client for the Appointment from the given config.
func NewAppointmentClient(c config) *AppointmentClient {
	return &AppointmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `appointment.Hooks(f(g(h())))`.
func (c *AppointmentClient) Use(hooks ...Hook) {
	c.hooks.Appointment = append(c.hooks.Appointment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `appointment.Intercept(f(g(h())))`.
func (c *AppointmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Appointment = append(c.inters.Appointment, interceptors...)
}

// Create returns a builder for creating a Appointment entity.
func (c *AppointmentClient) Create() *AppointmentCreate {
	mutation := newAppointmentMutation(c.config, OpCreate)
	return &AppointmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Appointment entities.
func (c *AppointmentClient) CreateBulk(builders ...*AppointmentCreate) *AppointmentCreateBulk {
	return &AppointmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AppointmentClient) MapCreateBulk(slice any, setFunc func(*AppointmentCreate, int)) *AppointmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AppointmentCreateBulk{err: fmt.Errorf("calling to AppointmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AppointmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AppointmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Appointment.
func (c *AppointmentClient) Update() *AppointmentUpdate {
	mutation := newAppointmentMutation(c.config, OpUpdate)
	return &AppointmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AppointmentClient) UpdateOne(_m *Appointment) *AppointmentUpdateOne {
	mutation := newAppointmentMutation(c.config, OpUpdateOne, withAppointment(_m))
	return &AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AppointmentClient) UpdateOneID(id uuid.UUID) *AppointmentUpdateOne {
	mutation := newAppointmentMutation(c.config, OpUpdateOne, withAppointmentID(id))
	return &AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Appointment.
func (c *AppointmentClient) Delete() *AppointmentDelete {
	mutation := newAppointmentMutation(c.config, OpDelete)
	return &AppointmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AppointmentClient) DeleteOne(_m *Appointment) *AppointmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AppointmentClient) DeleteOneID(id uuid.UUID) *AppointmentDeleteOne {
	builder := c.Delete().Where(appointment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AppointmentDeleteOne{builder}
}

// Query returns a query builder for Appointment.
func (c *AppointmentClient) Query() *AppointmentQuery {
	return &AppointmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAppointment},
		inters: c.Interceptors(),
	}
}

// Get returns a Appointment entity by its id.
func (c *AppointmentClient) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return c.Query().Where(appointment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AppointmentClient) GetX(ctx context.Context, id uuid.UUID) *Appointment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a Appointment.
func (c *AppointmentClient) QueryPatient(_m *Appointment) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(appointment.Table, appointment.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, appointment.PatientTable, appointment.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AppointmentClient) Hooks() []Hook {
	return c.hooks.Appointment
}

// Interceptors returns the client interceptors.
func (c *AppointmentClient) Interceptors() []Interceptor {
	return c.inters.Appointment
}

func (c *AppointmentClient) mutate(ctx context.Context, m *AppointmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AppointmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AppointmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AppointmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Appointment mutation op: %q", m.Op())
	}
}

// AvailabilityWindowClient is a client for the AvailabilityWindow schema.
type AvailabilityWindowClient struct {
	config
}

// NewAvailabilityWindowClient returns a client for the AvailabilityWindow from the given config.
func NewAvailabilityWindowClient(c config) *AvailabilityWindowClient {
	return &AvailabilityWindowClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `availabilitywindow.Hooks(f(g(h())))`.
func (c *AvailabilityWindowClient) Use(hooks ...Hook) {
	c.hooks.AvailabilityWindow = append(c.hooks.AvailabilityWindow, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `availabilitywindow.Intercept(f(g(h())))`.
func (c *AvailabilityWindowClient) Intercept(interceptors ...Interceptor) {
	c.inters.AvailabilityWindow = append(c.inters.AvailabilityWindow, interceptors...)
}

// Create returns a builder for creating a AvailabilityWindow entity.
func (c *AvailabilityWindowClient) Create() *AvailabilityWindowCreate {
	mutation := newAvailabilityWindowMutation(c.config, OpCreate)
	return &AvailabilityWindowCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AvailabilityWindow entities.
func (c *AvailabilityWindowClient) CreateBulk(builders ...*AvailabilityWindowCreate) *AvailabilityWindowCreateBulk {
	return &AvailabilityWindowCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AvailabilityWindowClient) MapCreateBulk(slice any, setFunc func(*AvailabilityWindowCreate, int)) *AvailabilityWindowCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AvailabilityWindowCreateBulk{err: fmt.Errorf("calling to AvailabilityWindowClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AvailabilityWindowCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AvailabilityWindowCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AvailabilityWindow.
func (c *AvailabilityWindowClient) Update() *AvailabilityWindowUpdate {
	mutation := newAvailabilityWindowMutation(c.config, OpUpdate)
	return &AvailabilityWindowUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AvailabilityWindowClient) UpdateOne(_m *AvailabilityWindow) *AvailabilityWindowUpdateOne {
	mutation := newAvailabilityWindowMutation(c.config, OpUpdateOne, withAvailabilityWindow(_m))
	return &AvailabilityWindowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AvailabilityWindowClient) UpdateOneID(id uuid.UUID) *AvailabilityWindowUpdateOne {
	mutation := newAvailabilityWindowMutation(c.config, OpUpdateOne, withAvailabilityWindowID(id))
	return &AvailabilityWindowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AvailabilityWindow.
func (c *AvailabilityWindowClient) Delete() *AvailabilityWindowDelete {
	mutation := newAvailabilityWindowMutation(c.config, OpDelete)
	return &AvailabilityWindowDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AvailabilityWindowClient) DeleteOne(_m *AvailabilityWindow) *AvailabilityWindowDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AvailabilityWindowClient) DeleteOneID(id uuid.UUID) *AvailabilityWindowDeleteOne {
	builder := c.Delete().Where(availabilitywindow.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AvailabilityWindowDeleteOne{builder}
}

// Query returns a query builder for AvailabilityWindow.
func (c *AvailabilityWindowClient) Query() *AvailabilityWindowQuery {
	return &AvailabilityWindowQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAvailabilityWindow},
		inters: c.Interceptors(),
	}
}

// Get returns a AvailabilityWindow entity by its id.
func (c *AvailabilityWindowClient) Get(ctx context.Context, id uuid.UUID) (*AvailabilityWindow, error) {
	return c.Query().Where(availabilitywindow.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AvailabilityWindowClient) GetX(ctx context.Context, id uuid.UUID) *AvailabilityWindow {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AvailabilityWindowClient) Hooks() []Hook {
	return c.hooks.AvailabilityWindow
}

// Interceptors returns the client interceptors.
func (c *AvailabilityWindowClient) Interceptors() []Interceptor {
	return c.inters.AvailabilityWindow
}

func (c *AvailabilityWindowClient) mutate(ctx context.Context, m *AvailabilityWindowMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AvailabilityWindowCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AvailabilityWindowUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AvailabilityWindowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AvailabilityWindowDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown AvailabilityWindow mutation op: %q", m.Op())
	}
}

// ConversationClient is a client for the Conversation schema.
type ConversationClient struct {
	config
}

// NewConversationClient returns a client for the Conversation from the given config.
func NewConversationClient(c config) *ConversationClient {
	return &ConversationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversation.Hooks(f(g(h())))`.
func (c *ConversationClient) Use(hooks ...Hook) {
	c.hooks.Conversation = append(c.hooks.Conversation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversation.Intercept(f(g(h())))`.
func (c *ConversationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Conversation = append(c.inters.Conversation, interceptors...)
}

// Create returns a builder for creating a Conversation entity.
func (c *ConversationClient) Create() *ConversationCreate {
	mutation := newConversationMutation(c.config, OpCreate)
	return &ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Conversation entities.
func (c *ConversationClient) CreateBulk(builders ...*ConversationCreate) *ConversationCreateBulk {
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversationClient) MapCreateBulk(slice any, setFunc func(*ConversationCreate, int)) *ConversationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversationCreateBulk{err: fmt.Errorf("calling to ConversationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Conversation.
func (c *ConversationClient) Update() *ConversationUpdate {
	mutation := newConversationMutation(c.config, OpUpdate)
	return &ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversationClient) UpdateOne(_m *Conversation) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversation(_m))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversationClient) UpdateOneID(id uuid.UUID) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversationID(id))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Conversation.
func (c *ConversationClient) Delete() *ConversationDelete {
	mutation := newConversationMutation(c.config, OpDelete)
	return &ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversationClient) DeleteOne(_m *Conversation) *ConversationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversationClient) DeleteOneID(id uuid.UUID) *ConversationDeleteOne {
	builder := c.Delete().Where(conversation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversationDeleteOne{builder}
}

// Query returns a query builder for Conversation.
func (c *ConversationClient) Query() *ConversationQuery {
	return &ConversationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversation},
		inters: c.Interceptors(),
	}
}

// Get returns a Conversation entity by its id.
func (c *ConversationClient) Get(ctx context.Context, id uuid.UUID) (*Conversation, error) {
	return c.Query().Where(conversation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversationClient) GetX(ctx context.Context, id uuid.UUID) *Conversation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConversationClient) Hooks() []Hook {
	return c.hooks.Conversation
}

// Interceptors returns the client interceptors.
func (c *ConversationClient) Interceptors() []Interceptor {
	return c.inters.Conversation
}

func (c *ConversationClient) mutate(ctx context.Context, m *ConversationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Conversation mutation op: %q", m.Op())
	}
}

// DiaryEntryClient is a client for the DiaryEntry schema.
type DiaryEntryClient struct {
	config
}

// NewDiaryEntryClient returns a client for the DiaryEntry from the given config.
func NewDiaryEntryClient(c config) *DiaryEntryClient {
	return &DiaryEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `diaryentry.Hooks(f(g(h())))`.
func (c *DiaryEntryClient) Use(hooks ...Hook) {
	c.hooks.DiaryEntry = append(c.hooks.DiaryEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `diaryentry.Intercept(f(g(h())))`.
func (c *DiaryEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.DiaryEntry = append(c.inters.DiaryEntry, interceptors...)
}

// Create returns a builder for creating a DiaryEntry entity.
func (c *DiaryEntryClient) Create() *DiaryEntryCreate {
	mutation := newDiaryEntryMutation(c.config, OpCreate)
	return &DiaryEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DiaryEntry entities.
func (c *DiaryEntryClient) CreateBulk(builders ...*DiaryEntryCreate) *DiaryEntryCreateBulk {
	return &DiaryEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DiaryEntryClient) MapCreateBulk(slice any, setFunc func(*DiaryEntryCreate, int)) *DiaryEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DiaryEntryCreateBulk{err: fmt.Errorf("calling to DiaryEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DiaryEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DiaryEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DiaryEntry.
func (c *DiaryEntryClient) Update() *DiaryEntryUpdate {
	mutation := newDiaryEntryMutation(c.config, OpUpdate)
	return &DiaryEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DiaryEntryClient) UpdateOne(_m *DiaryEntry) *DiaryEntryUpdateOne {
	mutation := newDiaryEntryMutation(c.config, OpUpdateOne, withDiaryEntry(_m))
	return &DiaryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DiaryEntryClient) UpdateOneID(id uuid.UUID) *DiaryEntryUpdateOne {
	mutation := newDiaryEntryMutation(c.config, OpUpdateOne, withDiaryEntryID(id))
	return &DiaryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DiaryEntry.
func (c *DiaryEntryClient) Delete() *DiaryEntryDelete {
	mutation := newDiaryEntryMutation(c.config, OpDelete)
	return &DiaryEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DiaryEntryClient) DeleteOne(_m *DiaryEntry) *DiaryEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DiaryEntryClient) DeleteOneID(id uuid.UUID) *DiaryEntryDeleteOne {
	builder := c.Delete().Where(diaryentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DiaryEntryDeleteOne{builder}
}

// Query returns a query builder for DiaryEntry.
func (c *DiaryEntryClient) Query() *DiaryEntryQuery {
	return &DiaryEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDiaryEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a DiaryEntry entity by its id.
func (c *DiaryEntryClient) Get(ctx context.Context, id uuid.UUID) (*DiaryEntry, error) {
	return c.Query().Where(diaryentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DiaryEntryClient) GetX(ctx context.Context, id uuid.UUID) *DiaryEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DiaryEntryClient) Hooks() []Hook {
	return c.hooks.DiaryEntry
}

// Interceptors returns the client interceptors.
func (c *DiaryEntryClient) Interceptors() []Interceptor {
	return c.inters.DiaryEntry
}

func (c *DiaryEntryClient) mutate(ctx context.Context, m *DiaryEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DiaryEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DiaryEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DiaryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DiaryEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown DiaryEntry mutation op: %q", m.Op())
	}
}

// EarnedPinClient is a client for the EarnedPin schema.
type EarnedPinClient struct {
	config
}

// NewEarnedPinClient returns a client for the EarnedPin from the given config.
func NewEarnedPinClient(c config) *EarnedPinClient {
	return &EarnedPinClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `earnedpin.Hooks(f(g(h())))`.
func (c *EarnedPinClient) Use(hooks ...Hook) {
	c.hooks.EarnedPin = append(c.hooks.EarnedPin, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `earnedpin.Intercept(f(g(h())))`.
func (c *EarnedPinClient) Intercept(interceptors ...Interceptor) {
	c.inters.EarnedPin = append(c.inters.EarnedPin, interceptors...)
}

// Create returns a builder for creating a EarnedPin entity.
func (c *EarnedPinClient) Create() *EarnedPinCreate {
	mutation := newEarnedPinMutation(c.config, OpCreate)
	return &EarnedPinCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EarnedPin entities.
func (c *EarnedPinClient) CreateBulk(builders ...*EarnedPinCreate) *EarnedPinCreateBulk {
	return &EarnedPinCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EarnedPinClient) MapCreateBulk(slice any, setFunc func(*EarnedPinCreate, int)) *EarnedPinCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EarnedPinCreateBulk{err: fmt.Errorf("calling to EarnedPinClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EarnedPinCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EarnedPinCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EarnedPin.
func (c *EarnedPinClient) Update() *EarnedPinUpdate {
	mutation := newEarnedPinMutation(c.config, OpUpdate)
	return &EarnedPinUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EarnedPinClient) UpdateOne(_m *EarnedPin) *EarnedPinUpdateOne {
	mutation := newEarnedPinMutation(c.config, OpUpdateOne, withEarnedPin(_m))
	return &EarnedPinUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EarnedPinClient) UpdateOneID(id uuid.UUID) *EarnedPinUpdateOne {
	mutation := newEarnedPinMutation(c.config, OpUpdateOne, withEarnedPinID(id))
	return &EarnedPinUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EarnedPin.
func (c *EarnedPinClient) Delete() *EarnedPinDelete {
	mutation := newEarnedPinMutation(c.config, OpDelete)
	return &EarnedPinDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EarnedPinClient) DeleteOne(_m *EarnedPin) *EarnedPinDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EarnedPinClient) DeleteOneID(id uuid.UUID) *EarnedPinDeleteOne {
	builder := c.Delete().Where(earnedpin.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EarnedPinDeleteOne{builder}
}

// Query returns a query builder for EarnedPin.
func (c *EarnedPinClient) Query() *EarnedPinQuery {
	return &EarnedPinQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEarnedPin},
		inters: c.Interceptors(),
	}
}

// Get returns a EarnedPin entity by its id.
func (c *EarnedPinClient) Get(ctx context.Context, id uuid.UUID) (*EarnedPin, error) {
	return c.Query().Where(earnedpin.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EarnedPinClient) GetX(ctx context.Context, id uuid.UUID) *EarnedPin {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EarnedPinClient) Hooks() []Hook {
	return c.hooks.EarnedPin
}

// Interceptors returns the client interceptors.
func (c *EarnedPinClient) Interceptors() []Interceptor {
	return c.inters.EarnedPin
}

func (c *EarnedPinClient) mutate(ctx context.Context, m *EarnedPinMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EarnedPinCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EarnedPinUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EarnedPinUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EarnedPinDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown EarnedPin mutation op: %q", m.Op())
	}
}

// GamificationStateClient is a client for the GamificationState schema.
type GamificationStateClient struct {
	config
}

// NewGamificationStateClient returns a client for the GamificationState from the given config.
func NewGamificationStateClient(c config) *GamificationStateClient {
	return &GamificationStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `gamificationstate.Hooks(f(g(h())))`.
func (c *GamificationStateClient) Use(hooks ...Hook) {
	c.hooks.GamificationState = append(c.hooks.GamificationState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `gamificationstate.Intercept(f(g(h())))`.
func (c *GamificationStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.GamificationState = append(c.inters.GamificationState, interceptors...)
}

// Create returns a builder for creating a GamificationState entity.
func (c *GamificationStateClient) Create() *GamificationStateCreate {
	mutation := newGamificationStateMutation(c.config, OpCreate)
	return &GamificationStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GamificationState entities.
func (c *GamificationStateClient) CreateBulk(builders ...*GamificationStateCreate) *GamificationStateCreateBulk {
	return &GamificationStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GamificationStateClient) MapCreateBulk(slice any, setFunc func(*GamificationStateCreate, int)) *GamificationStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GamificationStateCreateBulk{err: fmt.Errorf("calling to GamificationStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GamificationStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GamificationStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GamificationState.
func (c *GamificationStateClient) Update() *GamificationStateUpdate {
	mutation := newGamificationStateMutation(c.config, OpUpdate)
	return &GamificationStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GamificationStateClient) UpdateOne(_m *GamificationState) *GamificationStateUpdateOne {
	mutation := newGamificationStateMutation(c.config, OpUpdateOne, withGamificationState(_m))
	return &GamificationStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GamificationStateClient) UpdateOneID(id uuid.UUID) *GamificationStateUpdateOne {
	mutation := newGamificationStateMutation(c.config, OpUpdateOne, withGamificationStateID(id))
	return &GamificationStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GamificationState.
func (c *GamificationStateClient) Delete() *GamificationStateDelete {
	mutation := newGamificationStateMutation(c.config, OpDelete)
	return &GamificationStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GamificationStateClient) DeleteOne(_m *GamificationState) *GamificationStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GamificationStateClient) DeleteOneID(id uuid.UUID) *GamificationStateDeleteOne {
	builder := c.Delete().Where(gamificationstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GamificationStateDeleteOne{builder}
}

// Query returns a query builder for GamificationState.
func (c *GamificationStateClient) Query() *GamificationStateQuery {
	return &GamificationStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGamificationState},
		inters: c.Interceptors(),
	}
}

// Get returns a GamificationState entity by its id.
func (c *GamificationStateClient) Get(ctx context.Context, id uuid.UUID) (*GamificationState, error) {
	return c.Query().Where(gamificationstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GamificationStateClient) GetX(ctx context.Context, id uuid.UUID) *GamificationState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GamificationStateClient) Hooks() []Hook {
	return c.hooks.GamificationState
}

// Interceptors returns the client interceptors.
func (c *GamificationStateClient) Interceptors() []Interceptor {
	return c.inters.GamificationState
}

func (c *GamificationStateClient) mutate(ctx context.Context, m *GamificationStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GamificationStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GamificationStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GamificationStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GamificationStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown GamificationState mutation op: %q", m.Op())
	}
}

// HabitClient is a client for the Habit schema.
type HabitClient struct {
	config
}

// NewHabitClient returns a client for the Habit from the given config.
func NewHabitClient(c config) *HabitClient {
	return &HabitClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `habit.Hooks(f(g(h())))`.
func (c *HabitClient) Use(hooks ...Hook) {
	c.hooks.Habit = append(c.hooks.Habit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `habit.Intercept(f(g(h())))`.
func (c *HabitClient) Intercept(interceptors ...Interceptor) {
	c.inters.Habit = append(c.inters.Habit, interceptors...)
}

// Create returns a builder for creating a Habit entity.
func (c *HabitClient) Create() *HabitCreate {
	mutation := newHabitMutation(c.config, OpCreate)
	return &HabitCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Habit entities.
func (c *HabitClient) CreateBulk(builders ...*HabitCreate) *HabitCreateBulk {
	return &HabitCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HabitClient) MapCreateBulk(slice any, setFunc func(*HabitCreate, int)) *HabitCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HabitCreateBulk{err: fmt.Errorf("calling to HabitClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HabitCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HabitCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Habit.
func (c *HabitClient) Update() *HabitUpdate {
	mutation := newHabitMutation(c.config, OpUpdate)
	return &HabitUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HabitClient) UpdateOne(_m *Habit) *HabitUpdateOne {
	mutation := newHabitMutation(c.config, OpUpdateOne, withHabit(_m))
	return &HabitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HabitClient) UpdateOneID(id uuid.UUID) *HabitUpdateOne {
	mutation := newHabitMutation(c.config, OpUpdateOne, withHabitID(id))
	return &HabitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Habit.
func (c *HabitClient) Delete() *HabitDelete {
	mutation := newHabitMutation(c.config, OpDelete)
	return &HabitDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HabitClient) DeleteOne(_m *Habit) *HabitDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HabitClient) DeleteOneID(id uuid.UUID) *HabitDeleteOne {
	builder := c.Delete().Where(habit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HabitDeleteOne{builder}
}

// Query returns a query builder for Habit.
func (c *HabitClient) Query() *HabitQuery {
	return &HabitQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHabit},
		inters: c.Interceptors(),
	}
}

// Get returns a Habit entity by its id.
func (c *HabitClient) Get(ctx context.Context, id uuid.UUID) (*Habit, error) {
	return c.Query().Where(habit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HabitClient) GetX(ctx context.Context, id uuid.UUID) *Habit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *HabitClient) Hooks() []Hook {
	return c.hooks.Habit
}

// Interceptors returns the client interceptors.
func (c *HabitClient) Interceptors() []Interceptor {
	return c.inters.Habit
}

func (c *HabitClient) mutate(ctx context.Context, m *HabitMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HabitCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HabitUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HabitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HabitDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Habit mutation op: %q", m.Op())
	}
}

// HabitCheckClient is a client for the HabitCheck schema.
type HabitCheckClient struct {
	config
}

// NewHabitCheckClient returns a client for the HabitCheck from the given config.
func NewHabitCheckClient(c config) *HabitCheckClient {
	return &HabitCheckClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `habitcheck.Hooks(f(g(h())))`.
func (c *HabitCheckClient) Use(hooks ...Hook) {
	c.hooks.HabitCheck = append(c.hooks.HabitCheck, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `habitcheck.Intercept(f(g(h())))`.
func (c *HabitCheckClient) Intercept(interceptors ...Interceptor) {
	c.inters.HabitCheck = append(c.inters.HabitCheck, interceptors...)
}

// Create returns a builder for creating a HabitCheck entity.
func (c *HabitCheckClient) Create() *HabitCheckCreate {
	mutation := newHabitCheckMutation(c.config, OpCreate)
	return &HabitCheckCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HabitCheck entities.
func (c *HabitCheckClient) CreateBulk(builders ...*HabitCheckCreate) *HabitCheckCreateBulk {
	return &HabitCheckCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HabitCheckClient) MapCreateBulk(slice any, setFunc func(*HabitCheckCreate, int)) *HabitCheckCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HabitCheckCreateBulk{err: fmt.Errorf("calling to HabitCheckClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HabitCheckCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HabitCheckCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HabitCheck.
func (c *HabitCheckClient) Update() *HabitCheckUpdate {
	mutation := newHabitCheckMutation(c.config, OpUpdate)
	return &HabitCheckUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HabitCheckClient) UpdateOne(_m *HabitCheck) *HabitCheckUpdateOne {
	mutation := newHabitCheckMutation(c.config, OpUpdateOne, withHabitCheck(_m))
	return &HabitCheckUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HabitCheckClient) UpdateOneID(id uuid.UUID) *HabitCheckUpdateOne {
	mutation := newHabitCheckMutation(c.config, OpUpdateOne, withHabitCheckID(id))
	return &HabitCheckUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HabitCheck.
func (c *HabitCheckClient) Delete() *HabitCheckDelete {
	mutation := newHabitCheckMutation(c.config, OpDelete)
	return &HabitCheckDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HabitCheckClient) DeleteOne(_m *HabitCheck) *HabitCheckDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HabitCheckClient) DeleteOneID(id uuid.UUID) *HabitCheckDeleteOne {
	builder := c.Delete().Where(habitcheck.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HabitCheckDeleteOne{builder}
}

// Query returns a query builder for HabitCheck.
func (c *HabitCheckClient) Query() *HabitCheckQuery {
	return &HabitCheckQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHabitCheck},
		inters: c.Interceptors(),
	}
}

// Get returns a HabitCheck entity by its id.
func (c *HabitCheckClient) Get(ctx context.Context, id uuid.UUID) (*HabitCheck, error) {
	return c.Query().Where(habitcheck.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HabitCheckClient) GetX(ctx context.Context, id uuid.UUID) *HabitCheck {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *HabitCheckClient) Hooks() []Hook {
	return c.hooks.HabitCheck
}

// Interceptors returns the client interceptors.
func (c *HabitCheckClient) Interceptors() []Interceptor {
	return c.inters.HabitCheck
}

func (c *HabitCheckClient) mutate(ctx context.Context, m *HabitCheckMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HabitCheckCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HabitCheckUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HabitCheckUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HabitCheckDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown HabitCheck mutation op: %q", m.Op())
	}
}

// HydrationLogClient is a client for the HydrationLog schema.
type HydrationLogClient struct {
	config
}

// NewHydrationLogClient returns a client for the HydrationLog from the given config.
func NewHydrationLogClient(c config) *HydrationLogClient {
	return &HydrationLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `hydrationlog.Hooks(f(g(h())))`.
func (c *HydrationLogClient) Use(hooks ...Hook) {
	c.hooks.HydrationLog = append(c.hooks.HydrationLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `hydrationlog.Intercept(f(g(h())))`.
func (c *HydrationLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.HydrationLog = append(c.inters.HydrationLog, interceptors...)
}

// Create returns a builder for creating a HydrationLog entity.
func (c *HydrationLogClient) Create() *HydrationLogCreate {
	mutation := newHydrationLogMutation(c.config, OpCreate)
	return &HydrationLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HydrationLog entities.
func (c *HydrationLogClient) CreateBulk(builders ...*HydrationLogCreate) *HydrationLogCreateBulk {
	return &HydrationLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HydrationLogClient) MapCreateBulk(slice any, setFunc func(*HydrationLogCreate, int)) *HydrationLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HydrationLogCreateBulk{err: fmt.Errorf("calling to HydrationLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HydrationLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HydrationLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HydrationLog.
func (c *HydrationLogClient) Update() *HydrationLogUpdate {
	mutation := newHydrationLogMutation(c.config, OpUpdate)
	return &HydrationLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HydrationLogClient) UpdateOne(_m *HydrationLog) *HydrationLogUpdateOne {
	mutation := newHydrationLogMutation(c.config, OpUpdateOne, withHydrationLog(_m))
	return &HydrationLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HydrationLogClient) UpdateOneID(id uuid.UUID) *HydrationLogUpdateOne {
	mutation := newHydrationLogMutation(c.config, OpUpdateOne, withHydrationLogID(id))
	return &HydrationLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HydrationLog.
func (c *HydrationLogClient) Delete() *HydrationLogDelete {
	mutation := newHydrationLogMutation(c.config, OpDelete)
	return &HydrationLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HydrationLogClient) DeleteOne(_m *HydrationLog) *HydrationLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HydrationLogClient) DeleteOneID(id uuid.UUID) *HydrationLogDeleteOne {
	builder := c.Delete().Where(hydrationlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HydrationLogDeleteOne{builder}
}

// Query returns a query builder for HydrationLog.
func (c *HydrationLogClient) Query() *HydrationLogQuery {
	return &HydrationLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHydrationLog},
		inters: c.Interceptors(),
	}
}

// Get returns a HydrationLog entity by its id.
func (c *HydrationLogClient) Get(ctx context.Context, id uuid.UUID) (*HydrationLog, error) {
	return c.Query().Where(hydrationlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HydrationLogClient) GetX(ctx context.Context, id uuid.UUID) *HydrationLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *HydrationLogClient) Hooks() []Hook {
	return c.hooks.HydrationLog
}

// Interceptors returns the client interceptors.
func (c *HydrationLogClient) Interceptors() []Interceptor {
	return c.inters.HydrationLog
}

func (c *HydrationLogClient) mutate(ctx context.Context, m *HydrationLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HydrationLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HydrationLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HydrationLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HydrationLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown HydrationLog mutation op: %q", m.Op())
	}
}

// MessageClient is a client for the Message schema.
type MessageClient struct {
	config
}

// NewMessageClient returns a client for the Message from the given config.
func NewMessageClient(c config) *MessageClient {
	return &MessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `message.Hooks(f(g(h())))`.
func (c *MessageClient) Use(hooks ...Hook) {
	c.hooks.Message = append(c.hooks.Message, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `message.Intercept(f(g(h())))`.
func (c *MessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Message = append(c.inters.Message, interceptors...)
}

// Create returns a builder for creating a Message entity.
func (c *MessageClient) Create() *MessageCreate {
	mutation := newMessageMutation(c.config, OpCreate)
	return &MessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Message entities.
func (c *MessageClient) CreateBulk(builders ...*MessageCreate) *MessageCreateBulk {
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageClient) MapCreateBulk(slice any, setFunc func(*MessageCreate, int)) *MessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCreateBulk{err: fmt.Errorf("calling to MessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Message.
func (c *MessageClient) Update() *MessageUpdate {
	mutation := newMessageMutation(c.config, OpUpdate)
	return &MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageClient) UpdateOne(_m *Message) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessage(_m))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageClient) UpdateOneID(id uuid.UUID) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessageID(id))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Message.
func (c *MessageClient) Delete() *MessageDelete {
	mutation := newMessageMutation(c.config, OpDelete)
	return &MessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageClient) DeleteOne(_m *Message) *MessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageClient) DeleteOneID(id uuid.UUID) *MessageDeleteOne {
	builder := c.Delete().Where(message.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageDeleteOne{builder}
}

// Query returns a query builder for Message.
func (c *MessageClient) Query() *MessageQuery {
	return &MessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a Message entity by its id.
func (c *MessageClient) Get(ctx context.Context, id uuid.UUID) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id uuid.UUID) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MessageClient) Hooks() []Hook {
	return c.hooks.Message
}

// Interceptors returns the client interceptors.
func (c *MessageClient) Interceptors() []Interceptor {
	return c.inters.Message
}

func (c *MessageClient) mutate(ctx context.Context, m *MessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Message mutation op: %q", m.Op())
	}
}

// NotificationClient is a client for the Notification schema.
type NotificationClient struct {
	config
}

// NewNotificationClient returns a client for the Notification from the given config.
func NewNotificationClient(c config) *NotificationClient {
	return &NotificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notification.Hooks(f(g(h())))`.
func (c *NotificationClient) Use(hooks ...Hook) {
	c.hooks.Notification = append(c.hooks.Notification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notification.Intercept(f(g(h())))`.
func (c *NotificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Notification = append(c.inters.Notification, interceptors...)
}

// Create returns a builder for creating a Notification entity.
func (c *NotificationClient) Create() *NotificationCreate {
	mutation := newNotificationMutation(c.config, OpCreate)
	return &NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Notification entities.
func (c *NotificationClient) CreateBulk(builders ...*NotificationCreate) *NotificationCreateBulk {
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationClient) MapCreateBulk(slice any, setFunc func(*NotificationCreate, int)) *NotificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationCreateBulk{err: fmt.Errorf("calling to NotificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Notification.
func (c *NotificationClient) Update() *NotificationUpdate {
	mutation := newNotificationMutation(c.config, OpUpdate)
	return &NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationClient) UpdateOne(_m *Notification) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotification(_m))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationClient) UpdateOneID(id uuid.UUID) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotificationID(id))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Notification.
func (c *NotificationClient) Delete() *NotificationDelete {
	mutation := newNotificationMutation(c.config, OpDelete)
	return &NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationClient) DeleteOne(_m *Notification) *NotificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationClient) DeleteOneID(id uuid.UUID) *NotificationDeleteOne {
	builder := c.Delete().Where(notification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationDeleteOne{builder}
}

// Query returns a query builder for Notification.
func (c *NotificationClient) Query() *NotificationQuery {
	return &NotificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotification},
		inters: c.Interceptors(),
	}
}

// Get returns a Notification entity by its id.
func (c *NotificationClient) Get(ctx context.Context, id uuid.UUID) (*Notification, error) {
	return c.Query().Where(notification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationClient) GetX(ctx context.Context, id uuid.UUID) *Notification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NotificationClient) Hooks() []Hook {
	return c.hooks.Notification
}

// Interceptors returns the client interceptors.
func (c *NotificationClient) Interceptors() []Interceptor {
	return c.inters.Notification
}

func (c *NotificationClient) mutate(ctx context.Context, m *NotificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Notification mutation op: %q", m.Op())
	}
}

// PostClient is a client for the Post schema.
type PostClient struct {
	config
}

// NewPostClient returns a client for the Post from the given config.
func NewPostClient(c config) *PostClient {
	return &PostClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `post.Hooks(f(g(h())))`.
func (c *PostClient) Use(hooks ...Hook) {
	c.hooks.Post = append(c.hooks.Post, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `post.Intercept(f(g(h())))`.
func (c *PostClient) Intercept(interceptors ...Interceptor) {
	c.inters.Post = append(c.inters.Post, interceptors...)
}

// Create returns a builder for creating a Post entity.
func (c *PostClient) Create() *PostCreate {
	mutation := newPostMutation(c.config, OpCreate)
	return &PostCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Post entities.
func (c *PostClient) CreateBulk(builders ...*PostCreate) *PostCreateBulk {
	return &PostCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PostClient) MapCreateBulk(slice any, setFunc func(*PostCreate, int)) *PostCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PostCreateBulk{err: fmt.Errorf("calling to PostClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PostCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PostCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Post.
func (c *PostClient) Update() *PostUpdate {
	mutation := newPostMutation(c.config, OpUpdate)
	return &PostUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PostClient) UpdateOne(_m *Post) *PostUpdateOne {
	mutation := newPostMutation(c.config, OpUpdateOne, withPost(_m))
	return &PostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PostClient) UpdateOneID(id uuid.UUID) *PostUpdateOne {
	mutation := newPostMutation(c.config, OpUpdateOne, withPostID(id))
	return &PostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Post.
func (c *PostClient) Delete() *PostDelete {
	mutation := newPostMutation(c.config, OpDelete)
	return &PostDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PostClient) DeleteOne(_m *Post) *PostDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PostClient) DeleteOneID(id uuid.UUID) *PostDeleteOne {
	builder := c.Delete().Where(post.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PostDeleteOne{builder}
}

// Query returns a query builder for Post.
func (c *PostClient) Query() *PostQuery {
	return &PostQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePost},
		inters: c.Interceptors(),
	}
}

// Get returns a Post entity by its id.
func (c *PostClient) Get(ctx context.Context, id uuid.UUID) (*Post, error) {
	return c.Query().Where(post.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PostClient) GetX(ctx context.Context, id uuid.UUID) *Post {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PostClient) Hooks() []Hook {
	return c.hooks.Post
}

// Interceptors returns the client interceptors.
func (c *PostClient) Interceptors() []Interceptor {
	return c.inters.Post
}

func (c *PostClient) mutate(ctx context.Context, m *PostMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PostCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PostUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PostDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Post mutation op: %q", m.Op())
	}
}

// PostReactionClient is a client for the PostReaction schema.
type PostReactionClient struct {
	config
}

// NewPostReactionClient returns a client for the PostReaction from the given config.
func NewPostReactionClient(c config) *PostReactionClient {
	return &PostReactionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `postreaction.Hooks(f(g(h())))`.
func (c *PostReactionClient) Use(hooks ...Hook) {
	c.hooks.PostReaction = append(c.hooks.PostReaction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `postreaction.Intercept(f(g(h())))`.
func (c *PostReactionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PostReaction = append(c.inters.PostReaction, interceptors...)
}

// Create returns a builder for creating a PostReaction entity.
func (c *PostReactionClient) Create() *PostReactionCreate {
	mutation := newPostReactionMutation(c.config, OpCreate)
	return &PostReactionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PostReaction entities.
func (c *PostReactionClient) CreateBulk(builders ...*PostReactionCreate) *PostReactionCreateBulk {
	return &PostReactionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PostReactionClient) MapCreateBulk(slice any, setFunc func(*PostReactionCreate, int)) *PostReactionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PostReactionCreateBulk{err: fmt.Errorf("calling to PostReactionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PostReactionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PostReactionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PostReaction.
func (c *PostReactionClient) Update() *PostReactionUpdate {
	mutation := newPostReactionMutation(c.config, OpUpdate)
	return &PostReactionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PostReactionClient) UpdateOne(_m *PostReaction) *PostReactionUpdateOne {
	mutation := newPostReactionMutation(c.config, OpUpdateOne, withPostReaction(_m))
	return &PostReactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PostReactionClient) UpdateOneID(id uuid.UUID) *PostReactionUpdateOne {
	mutation := newPostReactionMutation(c.config, OpUpdateOne, withPostReactionID(id))
	return &PostReactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PostReaction.
func (c *PostReactionClient) Delete() *PostReactionDelete {
	mutation := newPostReactionMutation(c.config, OpDelete)
	return &PostReactionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PostReactionClient) DeleteOne(_m *PostReaction) *PostReactionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PostReactionClient) DeleteOneID(id uuid.UUID) *PostReactionDeleteOne {
	builder := c.Delete().Where(postreaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PostReactionDeleteOne{builder}
}

// Query returns a query builder for PostReaction.
func (c *PostReactionClient) Query() *PostReactionQuery {
	return &PostReactionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePostReaction},
		inters: c.Interceptors(),
	}
}

// Get returns a PostReaction entity by its id.
func (c *PostReactionClient) Get(ctx context.Context, id uuid.UUID) (*PostReaction, error) {
	return c.Query().Where(postreaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PostReactionClient) GetX(ctx context.Context, id uuid.UUID) *PostReaction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PostReactionClient) Hooks() []Hook {
	return c.hooks.PostReaction
}

// Interceptors returns the client interceptors.
func (c *PostReactionClient) Interceptors() []Interceptor {
	return c.inters.PostReaction
}

func (c *PostReactionClient) mutate(ctx context.Context, m *PostReactionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PostReactionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PostReactionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PostReactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PostReactionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown PostReaction mutation op: %q", m.Op())
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
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
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
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
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
		return nil, fmt.Errorf("repo: unknown User mutation op: %q", m.Op())
	}
}

// UserSessionClient is a client for the UserSession schema.
type UserSessionClient struct {
	config
}

// NewUserSessionClient returns a client for the UserSession from the given config.
func NewUserSessionClient(c config) *UserSessionClient {
	return &UserSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usersession.Hooks(f(g(h())))`.
func (c *UserSessionClient) Use(hooks ...Hook) {
	c.hooks.UserSession = append(c.hooks.UserSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usersession.Intercept(f(g(h())))`.
func (c *UserSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserSession = append(c.inters.UserSession, interceptors...)
}

// Create returns a builder for creating a UserSession entity.
func (c *UserSessionClient) Create() *UserSessionCreate {
	mutation := newUserSessionMutation(c.config, OpCreate)
	return &UserSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserSession entities.
func (c *UserSessionClient) CreateBulk(builders ...*UserSessionCreate) *UserSessionCreateBulk {
	return &UserSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserSessionClient) MapCreateBulk(slice any, setFunc func(*UserSessionCreate, int)) *UserSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserSessionCreateBulk{err: fmt.Errorf("calling to UserSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserSession.
func (c *UserSessionClient) Update() *UserSessionUpdate {
	mutation := newUserSessionMutation(c.config, OpUpdate)
	return &UserSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserSessionClient) UpdateOne(_m *UserSession) *UserSessionUpdateOne {
	mutation := newUserSessionMutation(c.config, OpUpdateOne, withUserSession(_m))
	return &UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserSessionClient) UpdateOneID(id uuid.UUID) *UserSessionUpdateOne {
	mutation := newUserSessionMutation(c.config, OpUpdateOne, withUserSessionID(id))
	return &UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserSession.
func (c *UserSessionClient) Delete() *UserSessionDelete {
	mutation := newUserSessionMutation(c.config, OpDelete)
	return &UserSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserSessionClient) DeleteOne(_m *UserSession) *UserSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserSessionClient) DeleteOneID(id uuid.UUID) *UserSessionDeleteOne {
	builder := c.Delete().Where(usersession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserSessionDeleteOne{builder}
}

// Query returns a query builder for UserSession.
func (c *UserSessionClient) Query() *UserSessionQuery {
	return &UserSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserSession},
		inters: c.Interceptors(),
	}
}

// Get returns a UserSession entity by its id.
func (c *UserSessionClient) Get(ctx context.Context, id uuid.UUID) (*UserSession, error) {
	return c.Query().Where(usersession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserSessionClient) GetX(ctx context.Context, id uuid.UUID) *UserSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a UserSession.
func (c *UserSessionClient) QueryUser(_m *UserSession) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usersession.Table, usersession.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, usersession.UserTable, usersession.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserSessionClient) Hooks() []Hook {
	return c.hooks.UserSession
}

// Interceptors returns the client interceptors.
func (c *UserSessionClient) Interceptors() []Interceptor {
	return c.inters.UserSession
}

func (c *UserSessionClient) mutate(ctx context.Context, m *UserSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown UserSession mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Anamnesis, AppSetting, Appointment, AvailabilityWindow, Conversation,
		DiaryEntry, EarnedPin, GamificationState, Habit, HabitCheck, HydrationLog,
		Message, Notification, Post, PostReaction, User, UserSession []ent.Hook
	}
	inters struct {
		Anamnesis, AppSetting, Appointment, AvailabilityWindow, Conversation,
		DiaryEntry, EarnedPin, GamificationState, Habit, HabitCheck, HydrationLog,
		Message, Notification, Post, PostReaction, User, UserSession []ent.Interceptor
	}
)
