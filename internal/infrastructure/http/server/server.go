// Package server provides the JSON API HTTP server implementation
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/net/http2"

	"github.com/smartbundle/assistant/internal/infrastructure/config"
	"github.com/smartbundle/assistant/internal/infrastructure/http/handlers"
	"github.com/smartbundle/assistant/internal/infrastructure/http/middleware"
	"github.com/smartbundle/assistant/internal/ports/inbound"
	"github.com/smartbundle/assistant/pkg/healthcheck"
)

// Server represents the HTTP server
type Server struct {
	config      *config.Config
	logger      *zap.Logger
	router      *chi.Mux
	server      *http.Server
	assistant   inbound.AssistantService
	healthCheck *healthcheck.HealthCheck
}

// NewServer creates a new HTTP server instance
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	assistant inbound.AssistantService,
	healthCheck *healthcheck.HealthCheck,
) *Server {
	s := &Server{
		config:      cfg,
		logger:      logger,
		assistant:   assistant,
		healthCheck: healthCheck,
	}

	s.router = s.setupRouter()
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           s.router,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1 MB
	}

	return s
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	r.Use(middleware.CORS())
	r.Use(middleware.Tracing())
	r.Use(middleware.Metrics())

	r.Use(chimiddleware.Timeout(s.config.Server.RequestTimeout))
	r.Use(chimiddleware.Compress(5))

	// Operational endpoints, exempt from the JSON-only constraint
	r.Get("/health", s.healthCheck.Handler())
	r.Get("/health/live", s.healthCheck.LivenessHandler())
	r.Get("/health/ready", s.healthCheck.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.JSONOnly())
		s.setupAPIV1Routes(r)
	})

	return r
}

// setupAPIV1Routes configures API v1 endpoints
func (s *Server) setupAPIV1Routes(r chi.Router) {
	assistantH := handlers.NewAssistantHandlers(s.assistant, s.logger)
	listH := handlers.NewListHandlers(s.assistant, s.logger)
	recH := handlers.NewRecommendationHandlers(s.assistant, s.logger)

	r.Route("/assistant", func(r chi.Router) {
		r.Post("/query", assistantH.Query)
	})

	r.Get("/lists", listH.RecentLists)

	r.Route("/recommendations", func(r chi.Router) {
		r.Get("/", recH.History)
		r.Post("/{id}/rating", recH.Rate)
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		zap.String("address", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)

	// Enable HTTP/2
	if err := http2.ConfigureServer(s.server, nil); err != nil {
		s.logger.Error("Failed to configure HTTP/2", zap.Error(err))
	}

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// Router exposes the configured router, primarily for tests
func (s *Server) Router() http.Handler {
	return s.router
}
