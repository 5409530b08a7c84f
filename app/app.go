// Package app wires the daemon together: configuration, observability, the
// NATS event bus, the watermill router, the cache module, and the query API.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/Black-And-White-Club/club-mirror/api"
	"github.com/Black-And-White-Club/club-mirror/app/modules/clubcache"
	"github.com/Black-And-White-Club/club-mirror/config"
	"github.com/Black-And-White-Club/club-mirror/internal/eventbus"
	"github.com/Black-And-White-Club/club-mirror/internal/observability"
	"github.com/Black-And-White-Club/club-mirror/pkg/jwt"
)

// App owns every long-lived component of the daemon.
type App struct {
	Cfg             *config.Config
	Observability   *observability.Observability
	Bus             *eventbus.Bus
	WatermillRouter *message.Router
	ClubCache       *clubcache.Module
	APIServer       *api.Server

	wg sync.WaitGroup
}

// NewApp initializes the application with the necessary services and
// configuration.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	obs := observability.Init(observability.Config{
		Environment:    cfg.Observability.Environment,
		LogLevel:       cfg.Observability.LogLevel,
		MetricsAddress: cfg.Observability.MetricsAddress,
	})
	logger := obs.Logger

	wmLogger := watermill.NewSlogLogger(logger)
	bus, err := eventbus.New(cfg.NATS.URL, wmLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize event bus: %w", err)
	}
	logger.InfoContext(ctx, "event bus connected", slog.String("url", cfg.NATS.URL))

	router, err := message.NewRouter(message.RouterConfig{}, wmLogger)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("failed to create watermill router: %w", err)
	}

	cacheModule, err := clubcache.NewModule(ctx, cfg, obs, bus, router)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("failed to initialize clubcache module: %w", err)
	}

	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.DefaultTTL)
	apiServer := api.NewServer(cfg.HTTP.Address, cacheModule.Service, jwtService, logger, obs.Registry)

	return &App{
		Cfg:             cfg,
		Observability:   obs,
		Bus:             bus,
		WatermillRouter: router,
		ClubCache:       cacheModule,
		APIServer:       apiServer,
	}, nil
}

// Run starts the watermill router, the cache module, and the query API, and
// blocks until the context is canceled.
func (app *App) Run(ctx context.Context) error {
	logger := app.Observability.Logger

	app.wg.Add(1)
	go func() {
		defer app.wg.Done()
		if err := app.WatermillRouter.Run(ctx); err != nil {
			logger.ErrorContext(ctx, "watermill router stopped", slog.Any("error", err))
		}
	}()

	app.wg.Add(1)
	go app.ClubCache.Run(ctx, &app.wg)

	app.wg.Add(1)
	go func() {
		defer app.wg.Done()
		if err := app.APIServer.Start(); err != nil {
			logger.ErrorContext(ctx, "query API stopped", slog.Any("error", err))
		}
	}()

	<-ctx.Done()
	return nil
}

// Close shuts everything down in reverse dependency order.
func (app *App) Close() error {
	logger := app.Observability.Logger

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.APIServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutting down query API", slog.Any("error", err))
	}

	if err := app.ClubCache.Close(); err != nil {
		logger.Error("error closing clubcache module", slog.Any("error", err))
	}

	if err := app.Bus.Close(); err != nil {
		logger.Error("error closing event bus", slog.Any("error", err))
	}

	if err := app.Observability.Close(); err != nil {
		logger.Error("error closing metrics listener", slog.Any("error", err))
	}

	app.wg.Wait()
	logger.Info("application shut down gracefully")
	return nil
}
