package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/tasktrack/internal/config"
	"github.com/phrazzld/tasktrack/internal/events"
	"github.com/phrazzld/tasktrack/internal/service/auth"
	"github.com/phrazzld/tasktrack/internal/session"
)

// application holds the shared dependencies of the server so they can be
// wired once and cleaned up together on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	tokenService auth.TokenService
	sessions     *session.Manager
	eventEmitter *events.InMemoryEventEmitter
}

// newApplication creates an application with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.tokenService, err = auth.NewTokenService(cfg.Session)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	logger.Info("Session token service initialized",
		"token_lifetime_minutes", cfg.Session.TokenLifetimeMinutes)

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(events.NewLoggingHandler(logger))

	app.sessions = session.NewManager(session.ManagerConfig{
		IdleTimeout:   time.Duration(cfg.Session.IdleTimeoutMinutes) * time.Minute,
		SweepInterval: time.Duration(cfg.Session.SweepIntervalSeconds) * time.Second,
		MaxSessions:   cfg.Session.MaxSessions,
	}, app.eventEmitter, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the idle-session sweeper and the HTTP server, and blocks until
// the server has shut down.
func (app *application) Run(ctx context.Context) error {
	sweepCtx, stopSweep := context.WithCancel(ctx)
	sweepDone := make(chan struct{})
	go func() {
		defer close(sweepDone)
		app.sessions.Run(sweepCtx)
	}()

	err := app.startHTTPServer(ctx, app.setupRouter())

	stopSweep()
	<-sweepDone
	app.cleanup()

	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup ends every remaining session.
func (app *application) cleanup() {
	app.sessions.Close(context.Background())
	app.logger.Info("Application shutdown completed")
}
