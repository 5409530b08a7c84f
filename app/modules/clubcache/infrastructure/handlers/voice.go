package clubcachehandlers

import (
	"context"
	"errors"

	"github.com/Black-And-White-Club/club-mirror/internal/handlerwrapper"
	"github.com/Black-And-White-Club/club-mirror/internal/payload"
)

// HandleVoiceStateUpdate handles the voice state update dispatch.
func (h *ClubCacheHandlers) HandleVoiceStateUpdate(ctx context.Context, p *payload.VoiceState) ([]handlerwrapper.Result, error) {
	if p == nil {
		return nil, errors.New("payload cannot be nil")
	}
	return nil, h.service.HandleVoiceStateUpdate(ctx, p)
}

// HandlePresenceUpdate handles the presence update dispatch.
func (h *ClubCacheHandlers) HandlePresenceUpdate(ctx context.Context, p *payload.PresenceScoped) ([]handlerwrapper.Result, error) {
	if p == nil {
		return nil, errors.New("payload cannot be nil")
	}
	return nil, h.service.HandlePresenceUpdate(ctx, p)
}
