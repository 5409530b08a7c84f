package clubcachehandlers

import (
	"log/slog"

	clubcacheservice "github.com/Black-And-White-Club/club-mirror/app/modules/clubcache/application"
)

// ClubCacheHandlers implements the Handlers interface. Handlers here are thin:
// decode happens in the wrapper, state transitions in the service, so each
// method only validates the payload and delegates.
type ClubCacheHandlers struct {
	service clubcacheservice.Service
	logger  *slog.Logger
}

// NewClubCacheHandlers creates a new ClubCacheHandlers instance.
func NewClubCacheHandlers(service clubcacheservice.Service, logger *slog.Logger) *ClubCacheHandlers {
	return &ClubCacheHandlers{
		service: service,
		logger:  logger,
	}
}
