package clubcacheservice

import (
	"context"

	"github.com/Black-And-White-Club/club-mirror/clubstate"
	"github.com/Black-And-White-Club/club-mirror/internal/payload"
	"github.com/Black-And-White-Club/club-mirror/internal/snowflake"
)

// Service defines the cache operations: gateway dispatch ingestion on the
// write side, permission resolution and snapshot reads on the query side.
type Service interface {
	HandleClubCreate(ctx context.Context, p *payload.Club) error
	HandleClubUpdate(ctx context.Context, p *payload.Club) error
	HandleClubDelete(ctx context.Context, p *payload.ClubDelete) error

	HandleChannelCreate(ctx context.Context, p *payload.Channel) error
	HandleChannelUpdate(ctx context.Context, p *payload.Channel) error
	HandleChannelDelete(ctx context.Context, p *payload.ChannelDelete) error

	HandleMemberAdd(ctx context.Context, p *payload.MemberScoped) error
	HandleMemberUpdate(ctx context.Context, p *payload.MemberScoped) error
	HandleMemberRemove(ctx context.Context, p *payload.MemberRemove) error

	HandleRoleCreate(ctx context.Context, p *payload.RoleScoped) error
	HandleRoleUpdate(ctx context.Context, p *payload.RoleScoped) error
	HandleRoleDelete(ctx context.Context, p *payload.RoleDelete) error

	HandleVoiceStateUpdate(ctx context.Context, p *payload.VoiceState) error
	HandlePresenceUpdate(ctx context.Context, p *payload.PresenceScoped) error

	ResolveClubPermissions(ctx context.Context, clubID, memberID snowflake.ID) (clubstate.Permissions, error)
	ResolveChannelPermissions(ctx context.Context, clubID, channelID, memberID snowflake.ID) (clubstate.Permissions, error)
	ClubSnapshot(ctx context.Context, clubID snowflake.ID) ([]byte, error)
}
