package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Jacobbrewer1/artemis/cmd/bot/config"
	"github.com/Jacobbrewer1/artemis/cmd/bot/monitoring"
	"github.com/Jacobbrewer1/artemis/pkg/botinfo"
	"github.com/Jacobbrewer1/artemis/pkg/dataaccess"
	"github.com/Jacobbrewer1/artemis/pkg/dataaccess/connection"
	"github.com/Jacobbrewer1/artemis/pkg/events"
	"github.com/Jacobbrewer1/artemis/pkg/logging"
	"github.com/Jacobbrewer1/artemis/pkg/notifier"
	"github.com/Jacobbrewer1/artemis/pkg/platform"
	"github.com/Jacobbrewer1/artemis/pkg/request"
	"github.com/Jacobbrewer1/artemis/pkg/ticketing"
	"github.com/Jacobbrewer1/discordgo"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// shutdownTimeout bounds how long the shutdown hook waits for the monitoring server.
const shutdownTimeout = 10 * time.Second

// IApp is the interface for the application.
type IApp interface {
	// Log returns the logger.
	Log() *slog.Logger

	// Session returns the discord session.
	Session() platform.Session

	// Controller returns the ticket controller.
	Controller() *ticketing.Controller

	// BotInfo returns the branding of the bot.
	BotInfo() *botinfo.Info

	// StartedAt returns when the application started.
	StartedAt() time.Time
}

type App struct {
	// is the logger.
	*slog.Logger

	// r is the router for the application.
	r *mux.Router

	// svr is the server for the application.
	svr *http.Server

	// info is the branding of the bot.
	info *botinfo.Info

	// dg is the discord session.
	dg *discordgo.Session

	// s wraps dg for the ticket operations.
	s platform.Session

	// store holds the guild configurations.
	store dataaccess.SettingsStore

	// publisher publishes lifecycle events.
	publisher events.Publisher

	// controller runs the ticket operations.
	controller *ticketing.Controller

	// closers release the database connections on shutdown.
	closers []func(ctx context.Context) error

	// startedAt is when the application started.
	startedAt time.Time

	// eventNotifier is the channel for notifying of events.
	eventNotifier chan any
}

// NewApp creates a new instance of App.
func NewApp(l *slog.Logger, r *mux.Router, info *botinfo.Info) *App {
	return &App{
		Logger:    l,
		r:         r,
		info:      info,
		startedAt: time.Now(),
	}
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Register bot.
	if err := a.RegisterBot(); err != nil {
		return fmt.Errorf("error registering bot: %w", err)
	}

	store, err := a.buildStore(ctx)
	if err != nil {
		return fmt.Errorf("error building settings store: %w", err)
	}
	a.store = store

	publisher, err := a.buildPublisher()
	if err != nil {
		return fmt.Errorf("error building event publisher: %w", err)
	}
	a.publisher = publisher

	a.controller = ticketing.NewController(
		a.Logger,
		a.s,
		a.store,
		notifier.NewNotifier(a.Logger, a.s, a.store),
		a.publisher,
		a.info,
		ticketing.GracePeriod(config.DeleteGracePeriod),
	)
	a.controller.SetApplicationID(config.ApplicationId)

	a.RegisterDiscordHandlers()

	// Start event listener.
	go a.eventListener()

	// Open websocket.
	if err := a.dg.Open(); err != nil {
		return fmt.Errorf("error opening connection to Discord: %w", err)
	}

	a.Info("Bot is now running.")

	a.generateServer()
	a.setupRoutes()
	a.runServer()

	<-ctx.Done()
	a.Info("Received shutdown signal")

	if err := a.ShutdownHook(); err != nil {
		return fmt.Errorf("error shutting down application: %w", err)
	}
	return nil
}

func (a *App) ShutdownHook() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Reset the total number of guilds to 0.
	monitoring.SetGuilds(0)

	// Pending deletions are dropped, the channels stay.
	a.controller.Stop()

	var errs []error
	if a.svr != nil {
		if err := a.svr.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("error shutting down monitoring server: %w", err))
		}
	}

	// Close the connection to Discord.
	if err := a.dg.Close(); err != nil {
		errs = append(errs, fmt.Errorf("error closing connection to Discord: %w", err))
	}

	if err := a.publisher.Close(); err != nil {
		errs = append(errs, fmt.Errorf("error closing event publisher: %w", err))
	}

	for _, closer := range a.closers {
		if err := closer(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (a *App) RegisterBot() error {
	// Default the number of guilds to 0.
	monitoring.SetGuilds(0)

	dg, err := discordgo.New("Bot " + config.BotToken)
	if err != nil {
		return fmt.Errorf("error creating Discord session: %w", err)
	}

	dg.Identify.Intents = discordgo.MakeIntent(discordgo.IntentsGuilds | discordgo.IntentsGuildMembers)

	if a.eventNotifier == nil {
		// Create event notifier. This is used to count events. It is buffered to prevent blocking.
		a.eventNotifier = make(chan any, 100)
	}

	dg.SetEventNotifier(a.eventNotifier)

	a.dg = dg
	a.s = platform.Wrap(dg)
	return nil
}

// buildStore creates the settings store for the configured backend. Durable backends get an in memory cache in
// front of them.
func (a *App) buildStore(ctx context.Context) (dataaccess.SettingsStore, error) {
	switch config.SettingsBackend {
	case config.BackendMongo:
		conn := &connection.MongoDB{URI: config.MongoUri, AppName: config.AppName}
		client, err := conn.Connect(ctx)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Disconnect)
		a.Info("Connected to MongoDB", slog.String("database", config.MongoDatabase))
		return dataaccess.NewCachedStore(a.Logger, dataaccess.NewMongoStore(a.Logger, client, config.MongoDatabase)), nil
	case config.BackendRedis:
		conn := &connection.Redis{Addr: config.RedisAddr, Password: config.RedisPassword, DB: config.RedisDb}
		client, err := conn.Connect(ctx)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func(context.Context) error { return client.Close() })
		a.Info("Connected to Redis", slog.String("addr", config.RedisAddr))
		return dataaccess.NewCachedStore(a.Logger, dataaccess.NewRedisStore(a.Logger, client)), nil
	default:
		return dataaccess.NewMemoryStore(), nil
	}
}

func (a *App) buildPublisher() (events.Publisher, error) {
	if config.AmqpUrl == "" {
		a.Debug("No AMQP URL provided, lifecycle events will not be published")
		return events.NewNopPublisher(), nil
	}
	return events.NewAMQPPublisher(a.Logger, config.AmqpUrl, config.AmqpExchange)
}

func (a *App) setupRoutes() {
	a.r.HandleFunc(PathMetrics, promhttp.Handler().ServeHTTP).Methods(http.MethodGet)
	a.r.HandleFunc(PathHealth, middlewareHttp(a.Logger, a.healthCheck())).Methods(http.MethodGet)

	a.r.NotFoundHandler = request.NotFoundHandler(a.Logger)
	a.r.MethodNotAllowedHandler = request.MethodNotAllowedHandler(a.Logger)
}

func (a *App) generateServer() {
	a.svr = &http.Server{
		Addr:              ":" + config.MonitoringPort,
		Handler:           a.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func (a *App) runServer() {
	go func() {
		a.Info("Starting monitoring server", slog.String("port", config.MonitoringPort))
		if err := a.svr.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Error("Error starting monitoring server", slog.String(logging.KeyError, err.Error()))
			a.Warn("Monitoring server will not be available")
		}
	}()
}

func (a *App) RegisterDiscordHandlers() {
	a.dg.AddHandler(a.readyHandler())

	// Bot joined guild.
	a.dg.AddHandler(guildJoinedHandler(a))

	// Bot left guild.
	a.dg.AddHandler(guildLeaveHandler(a))

	// Interaction create handler.
	a.dg.AddHandler(interactionHandler(a, commandProcessors()))
}

func (a *App) readyHandler() func(s *discordgo.Session, r *discordgo.Ready) {
	return func(s *discordgo.Session, r *discordgo.Ready) {
		a.Info(fmt.Sprintf("Logged in as %s", r.User.String()))

		appID := config.ApplicationId
		if appID == "" {
			appID = r.User.ID
			a.controller.SetApplicationID(appID)
		}

		if err := s.UpdateWatchStatus(0, a.info.Presence); err != nil {
			a.Warn("Error updating presence", slog.String(logging.KeyError, err.Error()))
		}

		if err := a.registerSlashCommands(s, appID); err != nil {
			a.Error("Error registering slash commands", slog.String(logging.KeyError, err.Error()))
		}
	}
}

func (a *App) eventListener() {
	for e := range a.eventNotifier {
		switch t := e.(type) {
		case *discordgo.Event:
			name := t.Type
			if name == "" {
				name = strings.ToUpper(t.Operation.String())
			}
			monitoring.GatewayEvent(name)
		default:
			a.Error("Unknown event type", slog.String("type", fmt.Sprintf("%T", e)))
			monitoring.GatewayEvent("")
		}
	}
}

// registerSlashCommands overwrites the commands of the application. They are registered in the development guild
// when one is configured, as global commands take a while to show up.
func (a *App) registerSlashCommands(s *discordgo.Session, appID string) error {
	if _, err := s.ApplicationCommandBulkOverwrite(appID, config.DevGuildId, slashCommands()); err != nil {
		return fmt.Errorf("error overwriting slash commands: %w", err)
	}
	a.Info("Registered slash commands", slog.String(logging.KeyGuild, config.DevGuildId))
	return nil
}

func (a *App) Log() *slog.Logger {
	return a.Logger
}

func (a *App) Session() platform.Session {
	return a.s
}

func (a *App) Controller() *ticketing.Controller {
	return a.controller
}

func (a *App) BotInfo() *botinfo.Info {
	return a.info
}

func (a *App) StartedAt() time.Time {
	return a.startedAt
}
