package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/taskboard-api/internal/api"
	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/metrics"
	"github.com/rs/cors"

	apiMiddleware "github.com/phrazzld/taskboard-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(apiMiddleware.MetricsMiddleware(app.metrics))
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   app.config.Server.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler)

	authHandler := api.NewAuthHandler(app.gate, app.metrics, app.logger)
	taskHandler := api.NewTaskHandler(app.repository, app.pageCache, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.gate)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.With(app.loginLimiter.Middleware).Post("/auth/login", authHandler.Login)
		r.Get("/auth/session", authHandler.Session)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/auth/logout", authHandler.Logout)

			r.Get("/tasks", taskHandler.ListTasks)
			r.Post("/tasks", taskHandler.CreateTask)
			r.Get("/tasks/{id}", taskHandler.GetTask)
			r.Patch("/tasks/{id}", taskHandler.UpdateTask)
			r.Delete("/tasks/{id}", taskHandler.DeleteTask)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, api.HealthResponse{
			Status: "ok",
			Tasks:  app.taskStore.Len(),
		})
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler(app.registry))

	return r
}
