package clubcachehandlers

import (
	"context"
	"errors"

	"github.com/Black-And-White-Club/club-mirror/internal/handlerwrapper"
	"github.com/Black-And-White-Club/club-mirror/internal/payload"
)

// HandleRoleCreate handles the role create dispatch.
func (h *ClubCacheHandlers) HandleRoleCreate(ctx context.Context, p *payload.RoleScoped) ([]handlerwrapper.Result, error) {
	if p == nil {
		return nil, errors.New("payload cannot be nil")
	}
	return nil, h.service.HandleRoleCreate(ctx, p)
}

// HandleRoleUpdate handles the role update dispatch.
func (h *ClubCacheHandlers) HandleRoleUpdate(ctx context.Context, p *payload.RoleScoped) ([]handlerwrapper.Result, error) {
	if p == nil {
		return nil, errors.New("payload cannot be nil")
	}
	return nil, h.service.HandleRoleUpdate(ctx, p)
}

// HandleRoleDelete handles the role delete dispatch.
func (h *ClubCacheHandlers) HandleRoleDelete(ctx context.Context, p *payload.RoleDelete) ([]handlerwrapper.Result, error) {
	if p == nil {
		return nil, errors.New("payload cannot be nil")
	}
	return nil, h.service.HandleRoleDelete(ctx, p)
}
