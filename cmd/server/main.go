// Package main implements the entry point for the tasktrack HTTP server,
// which hosts independent in-memory task tracker sessions.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/tasktrack/internal/config"
	"github.com/phrazzld/tasktrack/internal/platform/logger"
)

func main() {
	cfg, log, err := initializeApp()
	if err != nil {
		fatalf("Failed to initialize application: %v", err)
	}

	app, err := newApplication(cfg, log)
	if err != nil {
		fatalf("Failed to create application: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Error("Server stopped with error", "error", err)
		fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"idle_timeout_minutes", cfg.Session.IdleTimeoutMinutes,
		"max_sessions", cfg.Session.MaxSessions)
	l.Debug("Session configuration", "token_secret_present", cfg.Session.TokenSecret != "")

	return cfg, l, nil
}

func fatalf(format string, args ...interface{}) {
	log.Fatalf(format, args...)
}
