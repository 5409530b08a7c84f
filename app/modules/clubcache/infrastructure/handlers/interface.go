package clubcachehandlers

import (
	"context"

	"github.com/Black-And-White-Club/club-mirror/internal/handlerwrapper"
	"github.com/Black-And-White-Club/club-mirror/internal/payload"
)

// Handlers defines the contract for club cache event handlers.
type Handlers interface {
	HandleClubCreate(ctx context.Context, p *payload.Club) ([]handlerwrapper.Result, error)
	HandleClubUpdate(ctx context.Context, p *payload.Club) ([]handlerwrapper.Result, error)
	HandleClubDelete(ctx context.Context, p *payload.ClubDelete) ([]handlerwrapper.Result, error)
	HandleChannelCreate(ctx context.Context, p *payload.Channel) ([]handlerwrapper.Result, error)
	HandleChannelUpdate(ctx context.Context, p *payload.Channel) ([]handlerwrapper.Result, error)
	HandleChannelDelete(ctx context.Context, p *payload.ChannelDelete) ([]handlerwrapper.Result, error)
	HandleMemberAdd(ctx context.Context, p *payload.MemberScoped) ([]handlerwrapper.Result, error)
	HandleMemberUpdate(ctx context.Context, p *payload.MemberScoped) ([]handlerwrapper.Result, error)
	HandleMemberRemove(ctx context.Context, p *payload.MemberRemove) ([]handlerwrapper.Result, error)
	HandleRoleCreate(ctx context.Context, p *payload.RoleScoped) ([]handlerwrapper.Result, error)
	HandleRoleUpdate(ctx context.Context, p *payload.RoleScoped) ([]handlerwrapper.Result, error)
	HandleRoleDelete(ctx context.Context, p *payload.RoleDelete) ([]handlerwrapper.Result, error)
	HandleVoiceStateUpdate(ctx context.Context, p *payload.VoiceState) ([]handlerwrapper.Result, error)
	HandlePresenceUpdate(ctx context.Context, p *payload.PresenceScoped) ([]handlerwrapper.Result, error)
}

var _ Handlers = (*ClubCacheHandlers)(nil)
