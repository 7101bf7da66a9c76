// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/moonhaus-contact-api/internal/adapters/http/handlers"
)

// Routes collects the handlers mounted by NewRouter.
type Routes struct {
	Contact *handlers.ContactHandler
	Health  *handlers.HealthHandler

	// ContactMiddleware wraps the /api/contact group only (rate limiting).
	ContactMiddleware []func(http.Handler) http.Handler

	// Metrics is served at MetricsPath when both are set.
	Metrics     http.Handler
	MetricsPath string
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Unknown paths and
// methods get JSON error bodies.
func NewRouter(routes Routes, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(dto.WriteNotFound)
	r.MethodNotAllowed(dto.WriteMethodNotAllowed)

	r.Get("/health", routes.Health.Health)
	r.Get("/health/live", routes.Health.Liveness)
	r.Get("/health/ready", routes.Health.Readiness)

	if routes.Metrics != nil && routes.MetricsPath != "" {
		r.Method(http.MethodGet, routes.MetricsPath, routes.Metrics)
	}

	r.Route("/api/contact", func(r chi.Router) {
		r.Use(routes.ContactMiddleware...)
		r.Post("/", routes.Contact.Submit)
		r.Get("/test", routes.Contact.Test)
	})

	return r
}
