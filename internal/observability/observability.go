// Package observability bundles the logger, metrics and tracer the modules
// share, with no-op variants for tests.
package observability

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Config controls provider construction.
type Config struct {
	// Environment tags every log line (development, staging, production).
	Environment string
	// LogLevel is one of debug, info, warn, error. Defaults to info.
	LogLevel string
	// MetricsAddress is where the Prometheus handler is served. Empty
	// disables the metrics listener but still registers collectors.
	MetricsAddress string
}

// Observability is the bundle handed to every module.
type Observability struct {
	Logger   *slog.Logger
	Metrics  CacheMetrics
	Tracer   trace.Tracer
	Registry *prometheus.Registry

	metricsListener net.Listener
	metricsServer   *http.Server
}

// Init builds the production bundle: JSON slog to stdout, a fresh Prometheus
// registry with the cache collectors, and a no-op tracer until an exporter is
// configured.
func Init(cfg Config) *Observability {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	if cfg.Environment != "" {
		logger = logger.With(slog.String("environment", cfg.Environment))
	}

	registry := prometheus.NewRegistry()
	metrics := NewPrometheusCacheMetrics(registry)

	o := &Observability{
		Logger:   logger,
		Metrics:  metrics,
		Tracer:   noop.NewTracerProvider().Tracer("club-mirror"),
		Registry: registry,
	}

	if cfg.MetricsAddress != "" {
		o.serveMetrics(cfg.MetricsAddress)
	}
	return o
}

// serveMetrics starts the standalone Prometheus listener. A bind failure is
// logged, not fatal: the daemon's work does not depend on scraping.
func (o *Observability) serveMetrics(address string) {
	ln, err := net.Listen("tcp", address)
	if err != nil {
		o.Logger.Error("failed to start metrics listener",
			slog.String("address", address),
			slog.Any("error", err),
		)
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(o.Registry, promhttp.HandlerOpts{}))
	o.metricsListener = ln
	o.metricsServer = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := o.metricsServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			o.Logger.Error("metrics listener stopped", slog.Any("error", err))
		}
	}()
	o.Logger.Info("metrics listener started", slog.String("address", ln.Addr().String()))
}

// MetricsAddr reports the bound metrics listener address, empty when the
// listener is disabled.
func (o *Observability) MetricsAddr() string {
	if o.metricsListener == nil {
		return ""
	}
	return o.metricsListener.Addr().String()
}

// Close drains the metrics listener if one is running.
func (o *Observability) Close() error {
	if o.metricsServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return o.metricsServer.Shutdown(ctx)
}

// NewNoOp returns a bundle that records nothing, for tests.
func NewNoOp() *Observability {
	return &Observability{
		Logger:   slog.New(slog.DiscardHandler),
		Metrics:  NoOpCacheMetrics{},
		Tracer:   noop.NewTracerProvider().Tracer("test"),
		Registry: prometheus.NewRegistry(),
	}
}
