package main

import (
	"errors"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/blogem/customer-logs/authenticator"
	"github.com/blogem/customer-logs/controllers"
	appmiddleware "github.com/blogem/customer-logs/middleware"
)

// routerOptions configures the ambient middleware around the routes
type routerOptions struct {
	Logger         *slog.Logger
	Verifier       authenticator.Verifier // nil disables bearer auth
	RequestTimeout time.Duration
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, opts routerOptions) (*chi.Mux, error) {
	if ctrl == nil {
		return nil, errors.New("controllers are required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 60 * time.Second
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(appmiddleware.RequestID)
	r.Use(appmiddleware.AccessLog(opts.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(opts.RequestTimeout))
	r.Use(middleware.Compress(5))

	// PUBLIC ROUTES
	r.Get("/health", ctrl.Health.Health)
	r.Get("/readyz", ctrl.Health.Ready)
	r.Post("/opiniionTest", ctrl.CustomerLogs.Ping)

	// Customer log lookups, behind bearer auth when a verifier is configured
	r.Group(func(r chi.Router) {
		if opts.Verifier != nil {
			r.Use(appmiddleware.RequireBearerToken(opts.Verifier, opts.Logger))
		}
		r.Get("/", ctrl.CustomerLogs.Index)
	})

	return r, nil
}
