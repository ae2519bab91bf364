// Package server provides the main Docket HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/docketlabs/docket/internal/api"
	"github.com/docketlabs/docket/internal/config"
	"github.com/docketlabs/docket/internal/extraction"
	"github.com/docketlabs/docket/internal/home"
	"github.com/docketlabs/docket/internal/render"
	"github.com/docketlabs/docket/internal/review"
	"github.com/docketlabs/docket/internal/server/endpoints"
	"github.com/docketlabs/docket/internal/svcctx"
)

// Server is the Docket HTTP server. It owns the review session and the
// extraction client, and makes them available to handlers through the
// request context.
type Server struct {
	httpServer *http.Server
	configMgr  *config.Manager
	session    *review.Session
	logger     *slog.Logger

	// services holds all core services for context enrichment
	services *svcctx.Services

	// endpoints registry for HTTP routes
	endpointRegistry *api.Registry

	mu      sync.RWMutex
	running bool
}

// Config holds server configuration.
type Config struct {
	// Host is the address to bind to (default: 127.0.0.1)
	Host string
	// Port is the port to listen on (default: 8080)
	Port string
	// ConfigManager provides configuration with hot-reload support
	ConfigManager *config.Manager
	// Home is the Docket home directory, optional
	Home *home.Dir
	// SwaggerSpecPath points at a swagger.json on disk, optional
	SwaggerSpecPath string
	// Logger is the structured logger to use
	Logger *slog.Logger
}

// New creates a new Server with the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.ConfigManager == nil {
		return nil, errors.New("config manager is required")
	}

	s := &Server{
		configMgr: cfg.ConfigManager,
		session:   review.NewSession(),
		logger:    cfg.Logger,
	}

	// Build the services handlers see. The extraction client is optional:
	// without it the server still serves offline review and rendering.
	services := &svcctx.Services{
		Config:   cfg.ConfigManager,
		Session:  s.session,
		Renderer: render.Service{},
		Logger:   cfg.Logger,
		Home:     cfg.Home,
	}

	extractionCfg := cfg.ConfigManager.Get().ExtractionConfig()
	if extractionCfg.Endpoint != "" {
		client, err := extraction.New(extractionCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create extraction client: %w", err)
		}
		services.Extraction = client
		services.Analyzer = client
		cfg.Logger.Info("extraction service configured", "endpoint", extractionCfg.Endpoint)
	} else {
		cfg.Logger.Warn("extraction service not configured, live analysis disabled",
			"hint", "set AZURE_AI_ENDPOINT and AZURE_AI_API_KEY")
	}

	s.services = services

	// Review settings (zoom, pricing, label routes) are read from the
	// manager per request; only the extraction client is pinned at startup.
	cfg.ConfigManager.OnChange(func(c *config.Config) {
		cfg.Logger.Info("configuration reloaded",
			"classifier_id", c.ClassifierID,
			"analyzers", len(c.Analyzers),
		)
	})

	// Create endpoint registry and register all endpoints
	s.endpointRegistry = api.NewRegistry()
	for _, ep := range endpoints.All(endpoints.Config{SwaggerSpecPath: cfg.SwaggerSpecPath}) {
		s.endpointRegistry.Register(ep)
	}

	// Set up HTTP routes
	mux := http.NewServeMux()
	s.endpointRegistry.RegisterRoutes(mux, s.requireInit)

	s.httpServer = &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:      s.withServices(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

// Start starts the HTTP server and blocks until the context is canceled
// or the server fails.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("server already running")
	}
	s.running = true
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			s.setNotRunning()
			return fmt.Errorf("HTTP server error: %w", err)
		}
	}

	return s.shutdown()
}

// shutdown gracefully stops the HTTP server.
func (s *Server) shutdown() error {
	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
	}

	s.setNotRunning()
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) setNotRunning() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// IsRunning reports whether the server is currently serving.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Addr returns the address the server listens on.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// withServices wraps a handler so every request context carries the
// server's services.
func (s *Server) withServices(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := svcctx.WithServices(r.Context(), s.services)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireInit gates endpoints that need the extraction service and
// returns 503 Service Unavailable when it is not configured.
func (s *Server) requireInit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.services == nil || s.services.Analyzer == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":"extraction service not configured"}`))
			return
		}
		next(w, r)
	}
}
