package clubcachehandlers

import (
	"context"
	"errors"

	"github.com/Black-And-White-Club/club-mirror/internal/handlerwrapper"
	"github.com/Black-And-White-Club/club-mirror/internal/payload"
)

// HandleClubCreate handles the club create dispatch.
func (h *ClubCacheHandlers) HandleClubCreate(ctx context.Context, p *payload.Club) ([]handlerwrapper.Result, error) {
	if p == nil {
		return nil, errors.New("payload cannot be nil")
	}
	return nil, h.service.HandleClubCreate(ctx, p)
}

// HandleClubUpdate handles the club update dispatch.
func (h *ClubCacheHandlers) HandleClubUpdate(ctx context.Context, p *payload.Club) ([]handlerwrapper.Result, error) {
	if p == nil {
		return nil, errors.New("payload cannot be nil")
	}
	return nil, h.service.HandleClubUpdate(ctx, p)
}

// HandleClubDelete handles the club delete dispatch.
func (h *ClubCacheHandlers) HandleClubDelete(ctx context.Context, p *payload.ClubDelete) ([]handlerwrapper.Result, error) {
	if p == nil {
		return nil, errors.New("payload cannot be nil")
	}
	return nil, h.service.HandleClubDelete(ctx, p)
}
