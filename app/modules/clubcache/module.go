package clubcache

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	clubcacheservice "github.com/Black-And-White-Club/club-mirror/app/modules/clubcache/application"
	clubcachegateway "github.com/Black-And-White-Club/club-mirror/app/modules/clubcache/infrastructure/gateway"
	clubcacherouter "github.com/Black-And-White-Club/club-mirror/app/modules/clubcache/infrastructure/router"
	"github.com/Black-And-White-Club/club-mirror/clubstate"
	"github.com/Black-And-White-Club/club-mirror/config"
	"github.com/Black-And-White-Club/club-mirror/internal/eventbus"
	"github.com/Black-And-White-Club/club-mirror/internal/observability"
)

// Module bundles the club cache: the store, the service on top of it, and
// the router feeding it gateway dispatches.
type Module struct {
	Store         *clubstate.Store
	Service       clubcacheservice.Service
	Router        *clubcacherouter.ClubCacheRouter
	config        *config.Config
	observability *observability.Observability
	cancelFunc    context.CancelFunc
}

// NewModule wires the cache module together.
func NewModule(
	ctx context.Context,
	cfg *config.Config,
	obs *observability.Observability,
	bus *eventbus.Bus,
	router *message.Router,
) (*Module, error) {
	logger := obs.Logger
	metrics := obs.Metrics

	voice := clubcachegateway.NewVoicePublisher(bus.Publisher, logger, cfg.Cache.VoiceConnectRate)

	store := clubstate.NewStore(clubstate.StoreConfig{
		Logger:      logger,
		ShardCount:  cfg.Cache.ShardCount,
		LocalUserID: cfg.Cache.LocalUserID,
		FullCaching: cfg.Cache.FullCaching,
		Voice:       voice,
		Sink: func(ev clubstate.DiagnosticEvent) {
			metrics.RecordAnomaly(string(ev.Kind))
		},
	})

	service := clubcacheservice.NewClubCacheService(store, logger, metrics, obs.Tracer)

	cacheRouter := clubcacherouter.NewClubCacheRouter(logger, router, bus.Subscriber, bus.Publisher, obs.Tracer)
	if err := cacheRouter.Configure(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to configure clubcache router: %w", err)
	}

	return &Module{
		Store:         store,
		Service:       service,
		Router:        cacheRouter,
		config:        cfg,
		observability: obs,
	}, nil
}

// Run keeps the module alive until the context is canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	logger := m.observability.Logger
	logger.InfoContext(ctx, "Starting clubcache module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	logger.InfoContext(ctx, "clubcache module goroutine stopped")
}

// Close stops the module and its router.
func (m *Module) Close() error {
	logger := m.observability.Logger
	logger.Info("Stopping clubcache module")

	if m.cancelFunc != nil {
		m.cancelFunc()
	}

	if m.Router != nil {
		if err := m.Router.Close(); err != nil {
			return fmt.Errorf("error closing clubcache router: %w", err)
		}
	}

	logger.Info("clubcache module stopped")
	return nil
}
