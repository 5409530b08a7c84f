// Package api serves the cache's read-only query surface: club snapshots and
// permission resolution over HTTP, plus health and metrics endpoints.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	clubcacheservice "github.com/Black-And-White-Club/club-mirror/app/modules/clubcache/application"
	"github.com/Black-And-White-Club/club-mirror/pkg/jwt"
)

// Server is the HTTP query API.
type Server struct {
	service clubcacheservice.Service
	jwt     jwt.Service
	logger  *slog.Logger
	http    *http.Server
}

// NewServer builds the chi router and the underlying http.Server.
func NewServer(
	address string,
	service clubcacheservice.Service,
	jwtService jwt.Service,
	logger *slog.Logger,
	registry *prometheus.Registry,
) *Server {
	s := &Server{
		service: service,
		jwt:     jwtService,
		logger:  logger,
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(10 * time.Second))

	r.Get("/healthz", s.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Use(s.requireBearerToken)
		r.Get("/clubs/{clubID}", s.handleClubSnapshot)
		r.Get("/clubs/{clubID}/members/{memberID}/permissions", s.handlePermissions)
	})

	s.http = &http.Server{
		Addr:              address,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Start runs the listener until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("query API listening", slog.String("address", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
