package clubcacheservice

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Black-And-White-Club/club-mirror/clubstate"
	"github.com/Black-And-White-Club/club-mirror/internal/observability"
	"github.com/Black-And-White-Club/club-mirror/internal/snowflake"
)

// ClubCacheService implements the Service interface on top of a
// clubstate.Store. The store itself is single-writer; the service supplies
// the serialization: dispatch merges take the write lock, permission
// resolution and snapshots take the read lock.
type ClubCacheService struct {
	store   *clubstate.Store
	mu      sync.RWMutex
	logger  *slog.Logger
	metrics observability.CacheMetrics
	tracer  trace.Tracer
}

var _ Service = (*ClubCacheService)(nil)

// NewClubCacheService creates a new ClubCacheService.
func NewClubCacheService(
	store *clubstate.Store,
	logger *slog.Logger,
	metrics observability.CacheMetrics,
	tracer trace.Tracer,
) *ClubCacheService {
	return &ClubCacheService{
		store:   store,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
}

// withMerge wraps a dispatch merge with the write lock, tracing, metrics, and
// panic recovery. Every write-side operation goes through here so the store's
// single-writer contract holds regardless of watermill's handler concurrency.
func (s *ClubCacheService) withMerge(
	ctx context.Context,
	operationName string,
	clubID snowflake.ID,
	op func(ctx context.Context) error,
) (err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.String("club_id", clubID.String()),
	))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "panic recovered in cache merge",
				slog.String("operation", operationName),
				slog.String("club_id", clubID.String()),
				slog.Any("error", err),
			)
			span.RecordError(err)
		}
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = op(ctx); err != nil {
		err = fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "cache merge failed",
			slog.String("operation", operationName),
			slog.String("club_id", clubID.String()),
			slog.Any("error", err),
		)
		span.RecordError(err)
		return err
	}

	s.metrics.SetRegistrySize("clubs", s.store.Clubs().Len())
	s.metrics.SetRegistrySize("users", s.store.Users().Len())
	return nil
}

// club loads a club under an already-held lock. A miss is recorded as an
// anomaly: dispatches for unknown clubs are expected during startup
// reordering and must not poison the subscription.
func (s *ClubCacheService) club(ctx context.Context, operationName string, id snowflake.ID) (*clubstate.Club, bool) {
	club, ok := s.store.Club(id)
	if !ok {
		s.metrics.RecordAnomaly("unknown_club")
		s.logger.WarnContext(ctx, "dispatch references unknown club",
			slog.String("operation", operationName),
			slog.String("club_id", id.String()),
		)
	}
	return club, ok
}
