package clubcachehandlers

import (
	"context"
	"errors"

	clubcacheservice "github.com/Black-And-White-Club/club-mirror/app/modules/clubcache/application"
	"github.com/Black-And-White-Club/club-mirror/clubstate"
	"github.com/Black-And-White-Club/club-mirror/internal/payload"
	"github.com/Black-And-White-Club/club-mirror/internal/snowflake"
)

// fakeService records which operation was invoked and with what payload,
// and returns the configured error.
type fakeService struct {
	calls []string
	last  any
	err   error
}

var _ clubcacheservice.Service = (*fakeService)(nil)

var errFakeService = errors.New("fake service failure")

func (f *fakeService) record(op string, p any) error {
	f.calls = append(f.calls, op)
	f.last = p
	return f.err
}

func (f *fakeService) HandleClubCreate(_ context.Context, p *payload.Club) error {
	return f.record("HandleClubCreate", p)
}

func (f *fakeService) HandleClubUpdate(_ context.Context, p *payload.Club) error {
	return f.record("HandleClubUpdate", p)
}

func (f *fakeService) HandleClubDelete(_ context.Context, p *payload.ClubDelete) error {
	return f.record("HandleClubDelete", p)
}

func (f *fakeService) HandleChannelCreate(_ context.Context, p *payload.Channel) error {
	return f.record("HandleChannelCreate", p)
}

func (f *fakeService) HandleChannelUpdate(_ context.Context, p *payload.Channel) error {
	return f.record("HandleChannelUpdate", p)
}

func (f *fakeService) HandleChannelDelete(_ context.Context, p *payload.ChannelDelete) error {
	return f.record("HandleChannelDelete", p)
}

func (f *fakeService) HandleMemberAdd(_ context.Context, p *payload.MemberScoped) error {
	return f.record("HandleMemberAdd", p)
}

func (f *fakeService) HandleMemberUpdate(_ context.Context, p *payload.MemberScoped) error {
	return f.record("HandleMemberUpdate", p)
}

func (f *fakeService) HandleMemberRemove(_ context.Context, p *payload.MemberRemove) error {
	return f.record("HandleMemberRemove", p)
}

func (f *fakeService) HandleRoleCreate(_ context.Context, p *payload.RoleScoped) error {
	return f.record("HandleRoleCreate", p)
}

func (f *fakeService) HandleRoleUpdate(_ context.Context, p *payload.RoleScoped) error {
	return f.record("HandleRoleUpdate", p)
}

func (f *fakeService) HandleRoleDelete(_ context.Context, p *payload.RoleDelete) error {
	return f.record("HandleRoleDelete", p)
}

func (f *fakeService) HandleVoiceStateUpdate(_ context.Context, p *payload.VoiceState) error {
	return f.record("HandleVoiceStateUpdate", p)
}

func (f *fakeService) HandlePresenceUpdate(_ context.Context, p *payload.PresenceScoped) error {
	return f.record("HandlePresenceUpdate", p)
}

func (f *fakeService) ResolveClubPermissions(_ context.Context, clubID, memberID snowflake.ID) (clubstate.Permissions, error) {
	f.calls = append(f.calls, "ResolveClubPermissions")
	return 0, f.err
}

func (f *fakeService) ResolveChannelPermissions(_ context.Context, clubID, channelID, memberID snowflake.ID) (clubstate.Permissions, error) {
	f.calls = append(f.calls, "ResolveChannelPermissions")
	return 0, f.err
}

func (f *fakeService) ClubSnapshot(_ context.Context, clubID snowflake.ID) ([]byte, error) {
	f.calls = append(f.calls, "ClubSnapshot")
	return nil, f.err
}
