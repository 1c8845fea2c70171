// Package main implements the entry point for the taskboard API server,
// which serves the paginated task list and the login gate over HTTP.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/taskboard-api/internal/config"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// main loads configuration, sets up logging, wires the application and runs
// the HTTP server until SIGINT or SIGTERM.
func main() {
	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app, err := newApplication(cfg, appLogger, reg)
	if err != nil {
		appLogger.Error("Failed to build application", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		appLogger.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

// initializeApp loads configuration and sets up the process logger.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(logger.LoggerConfig{
		Level:  cfg.Server.LogLevel,
		Format: cfg.Server.LogFormat,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"task_latency", cfg.Tasks.Latency.String(),
		"session_persisted", cfg.Session.Path != "")

	return cfg, appLogger, nil
}
