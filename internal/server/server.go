// Package server provides the catalog HTTP server.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/shoplite/catalog/internal/config"
	"github.com/shoplite/catalog/internal/store"
)

// Server wraps HTTP routes and dependencies.
type Server struct {
	store       store.Store
	cfg         config.Config
	version     string
	commit      string
	buildDate   string
	openapiSpec []byte
	router      chi.Router
}

// Option configures server construction.
type Option func(*Server)

// WithOpenAPISpec sets the embedded OpenAPI bytes.
func WithOpenAPISpec(spec []byte) Option {
	return func(s *Server) {
		s.openapiSpec = spec
	}
}

// New constructs a catalog API server.
func New(st store.Store, cfg config.Config, version, commit, buildDate string, opts ...Option) *Server {
	s := &Server{
		store:     st,
		cfg:       cfg,
		version:   version,
		commit:    commit,
		buildDate: buildDate,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.buildRouter()
	return s
}

// Router returns the configured router.
func (s *Server) Router() chi.Router {
	return s.router
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, "catalog")
	})
	r.Use(middleware.RequestID)
	r.Use(requestLogger(log.Logger))
	r.Use(recoverer)

	r.Group(func(r chi.Router) {
		r.Get("/", s.handleWelcome)
		r.Get("/health", s.handleHealth)
		r.Get("/readiness", s.handleReadiness)
		r.Get("/version", s.handleVersion)
		r.Get("/api/docs", s.handleDocs)
		r.Get("/api/openapi.yaml", s.handleOpenAPI)
	})

	r.Route("/api/products", func(r chi.Router) {
		// Static routes are registered alongside /{id}; chi matches them
		// first, so /stats and /search never collide with product ids.
		r.Get("/", s.handleListProducts)
		r.Get("/stats", s.handleProductStats)
		r.Get("/search/{name}", s.handleSearchProducts)
		r.Get("/{id}", s.handleGetProduct)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAPIKey)
			r.Post("/", s.handleCreateProduct)
			r.Put("/{id}", s.handleUpdateProduct)
			r.Delete("/{id}", s.handleDeleteProduct)
		})
	})

	return r
}
