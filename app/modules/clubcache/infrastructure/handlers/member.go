package clubcachehandlers

import (
	"context"
	"errors"

	"github.com/Black-And-White-Club/club-mirror/internal/handlerwrapper"
	"github.com/Black-And-White-Club/club-mirror/internal/payload"
)

// HandleMemberAdd handles the member add dispatch.
func (h *ClubCacheHandlers) HandleMemberAdd(ctx context.Context, p *payload.MemberScoped) ([]handlerwrapper.Result, error) {
	if p == nil {
		return nil, errors.New("payload cannot be nil")
	}
	return nil, h.service.HandleMemberAdd(ctx, p)
}

// HandleMemberUpdate handles the member update dispatch.
func (h *ClubCacheHandlers) HandleMemberUpdate(ctx context.Context, p *payload.MemberScoped) ([]handlerwrapper.Result, error) {
	if p == nil {
		return nil, errors.New("payload cannot be nil")
	}
	return nil, h.service.HandleMemberUpdate(ctx, p)
}

// HandleMemberRemove handles the member remove dispatch.
func (h *ClubCacheHandlers) HandleMemberRemove(ctx context.Context, p *payload.MemberRemove) ([]handlerwrapper.Result, error) {
	if p == nil {
		return nil, errors.New("payload cannot be nil")
	}
	return nil, h.service.HandleMemberRemove(ctx, p)
}
