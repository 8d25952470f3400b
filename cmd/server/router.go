package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/tasktrack/internal/api"
	apiMiddleware "github.com/phrazzld/tasktrack/internal/api/middleware"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))

	sessionHandler := api.NewSessionHandler(app.sessions, app.tokenService)
	taskHandler := api.NewTaskHandler()
	sessionMiddleware := apiMiddleware.NewSessionMiddleware(app.tokenService, app.sessions)

	r.Route("/api", func(r chi.Router) {
		r.Post("/sessions", sessionHandler.StartSession)

		// Session-scoped routes
		r.Group(func(r chi.Router) {
			r.Use(sessionMiddleware.Authenticate)

			r.Delete("/session", sessionHandler.EndSession)

			r.Post("/tasks", taskHandler.CreateTask)
			r.Get("/tasks", taskHandler.ListPending)
			r.Get("/tasks/next", taskHandler.NextTask)
			r.Post("/tasks/complete", taskHandler.CompleteNext)

			r.Get("/completed", taskHandler.ListCompleted)
			r.Post("/completed/undo", taskHandler.UndoLast)

			r.Get("/stats", taskHandler.Stats)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
