// Package server provides HTTP server management and lifecycle handling for
// the assistant API. It wires the middleware chain, routes, and graceful
// shutdown.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/peacematcher/assistant-api/chat"
	"github.com/peacematcher/assistant-api/config"
	"github.com/peacematcher/assistant-api/data"
	"github.com/peacematcher/assistant-api/handlers"
	"github.com/peacematcher/assistant-api/health"
	"github.com/peacematcher/assistant-api/logging"
	"github.com/peacematcher/assistant-api/metrics"
)

// Server represents the HTTP server
type Server struct {
	server      *http.Server
	router      chi.Router
	store       *data.Container
	chatService *chat.Service
	checker     *health.Checker
	limiter     *RateLimiter
	config      *config.Config
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, store *data.Container, chatService *chat.Service) *Server {
	router := chi.NewRouter()

	server := &Server{
		server: &http.Server{
			Handler:      router,
			Addr:         cfg.Address + ":" + cfg.Port,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		router:      router,
		store:       store,
		chatService: chatService,
		checker:     health.NewChecker(store, cfg.CatalogFreshness),
		limiter:     NewRateLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst),
		config:      cfg,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

// setupMiddleware configures all middleware
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(RealIPMiddleware)
	s.router.Use(logging.Middleware(logging.DefaultLoggingService.Logger))
	s.router.Use(middleware.RedirectSlashes)
	s.router.Use(middleware.Recoverer)
	s.router.Use(metrics.Middleware)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	s.router.Use(RequestSizeMiddleware(s.config))
	s.router.Use(s.limiter.Handler)
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Post("/api/chat", handlers.HandleChat(s.chatService))

	s.router.Get("/api/medicines", handlers.ServeAllMedicines(s.store))
	s.router.Get("/api/medicines/search/{query}", handlers.SearchMedicines(s.store))
	s.router.Get("/api/medicines/{name}/dosage/{ageGroup}", handlers.GetDosage(s.store))
	s.router.Get("/api/symptoms", handlers.ServeSymptoms(s.store))

	s.router.Get("/health", handlers.HealthCheck(s.checker))
	s.router.Get("/metrics", promhttp.Handler().ServeHTTP)
}

// Start starts the server
func (s *Server) Start() error {
	logging.Info(fmt.Sprintf("Starting server at: %s:%s", s.config.Address, s.config.Port))
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...")

	s.limiter.Stop()

	if err := s.server.Shutdown(ctx); err != nil {
		logging.Error("Server forced to shutdown", "error", err)
		if err := s.server.Close(); err != nil {
			logging.Error("Server close error", "error", err)
			return err
		}
	}

	logging.Info("Server shutdown complete")
	return nil
}
