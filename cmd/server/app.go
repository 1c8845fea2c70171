package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskboard-api/internal/api/middleware"
	"github.com/phrazzld/taskboard-api/internal/config"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/events"
	"github.com/phrazzld/taskboard-api/internal/metrics"
	"github.com/phrazzld/taskboard-api/internal/platform/memory"
	"github.com/phrazzld/taskboard-api/internal/service"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
	"github.com/phrazzld/taskboard-api/internal/session"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics.Collector

	// Task access
	taskStore  *memory.MemoryTaskStore
	dataSource service.TaskDataSource
	repository service.TaskRepository
	pageCache  *service.PageCache

	// Auth
	authSession *session.AuthSession
	gate        auth.Gate

	// Event system
	eventEmitter *events.InMemoryEventEmitter

	loginLimiter *middleware.RateLimiter
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger, reg *prometheus.Registry) (*application, error) {
	app := &application{
		config:   cfg,
		logger:   logger,
		registry: reg,
	}

	app.metrics = metrics.NewCollector(reg)

	// Initialize the task store and the access layer over it
	storeOpts := []memory.Option{memory.WithLatency(cfg.Tasks.Latency)}
	if !cfg.Tasks.Seed {
		storeOpts = append(storeOpts, memory.WithSeed(nil))
	}
	app.taskStore = memory.NewMemoryTaskStore(logger, storeOpts...)
	app.metrics.RegisterTaskCount(reg, app.taskStore.Len)

	var err error
	app.dataSource, err = service.NewTaskDataSource(metrics.InstrumentTaskStore(app.taskStore, app.metrics), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task data source: %w", err)
	}

	app.pageCache, err = service.NewPageCache(app.dataSource, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create page cache: %w", err)
	}

	// Every mutation drops cached pages
	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(app.pageCache)

	app.repository, err = service.NewTaskRepository(app.dataSource, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task repository: %w", err)
	}
	logger.Info("Task store initialized",
		"tasks", app.taskStore.Len(),
		"latency", cfg.Tasks.Latency.String())

	// Initialize the auth gate
	app.authSession = session.NewAuthSession(newSessionStorage(cfg.Session))

	credentials, err := auth.NewCredentialStore(domain.DefaultCredentials(), cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to seed credentials: %w", err)
	}

	app.gate, err = auth.NewGate(credentials, auth.NewBcryptVerifier(), app.authSession, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth gate: %w", err)
	}
	logger.Info("Auth gate initialized", "credentials", credentials.Len())

	app.loginLimiter = middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  rate.Limit(cfg.Auth.LoginRatePerSecond),
		Burst: cfg.Auth.LoginBurst,
	}, func(*http.Request) {
		app.metrics.RecordLogin(metrics.OutcomeLimited)
	})

	logger.Info("Application initialized successfully")
	return app, nil
}

// newSessionStorage keeps the session in a file when a path is configured.
func newSessionStorage(cfg config.SessionConfig) session.Storage {
	if cfg.Path != "" {
		return session.NewFileStorage(cfg.Path)
	}
	return session.NewMemoryStorage()
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.loginLimiter != nil {
		app.loginLimiter.Stop()
	}
}
