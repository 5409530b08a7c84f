package clubcachehandlers

import (
	"context"
	"errors"

	"github.com/Black-And-White-Club/club-mirror/internal/handlerwrapper"
	"github.com/Black-And-White-Club/club-mirror/internal/payload"
)

// HandleChannelCreate handles the channel create dispatch.
func (h *ClubCacheHandlers) HandleChannelCreate(ctx context.Context, p *payload.Channel) ([]handlerwrapper.Result, error) {
	if p == nil {
		return nil, errors.New("payload cannot be nil")
	}
	return nil, h.service.HandleChannelCreate(ctx, p)
}

// HandleChannelUpdate handles the channel update dispatch.
func (h *ClubCacheHandlers) HandleChannelUpdate(ctx context.Context, p *payload.Channel) ([]handlerwrapper.Result, error) {
	if p == nil {
		return nil, errors.New("payload cannot be nil")
	}
	return nil, h.service.HandleChannelUpdate(ctx, p)
}

// HandleChannelDelete handles the channel delete dispatch.
func (h *ClubCacheHandlers) HandleChannelDelete(ctx context.Context, p *payload.ChannelDelete) ([]handlerwrapper.Result, error) {
	if p == nil {
		return nil, errors.New("payload cannot be nil")
	}
	return nil, h.service.HandleChannelDelete(ctx, p)
}
