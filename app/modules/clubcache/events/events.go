// Package clubcacheevents names the gateway dispatch topics the cache
// consumes and the command topics it publishes.
package clubcacheevents

import "github.com/Black-And-White-Club/club-mirror/internal/snowflake"

// Inbound gateway dispatch topics.
const (
	ClubCreateV1       = "gateway.club.create.v1"
	ClubUpdateV1       = "gateway.club.update.v1"
	ClubDeleteV1       = "gateway.club.delete.v1"
	ChannelCreateV1    = "gateway.channel.create.v1"
	ChannelUpdateV1    = "gateway.channel.update.v1"
	ChannelDeleteV1    = "gateway.channel.delete.v1"
	MemberAddV1        = "gateway.member.add.v1"
	MemberUpdateV1     = "gateway.member.update.v1"
	MemberRemoveV1     = "gateway.member.remove.v1"
	RoleCreateV1       = "gateway.role.create.v1"
	RoleUpdateV1       = "gateway.role.update.v1"
	RoleDeleteV1       = "gateway.role.delete.v1"
	VoiceStateUpdateV1 = "gateway.voice_state.update.v1"
	PresenceUpdateV1   = "gateway.presence.update.v1"
)

// Outbound command topics.
const (
	VoiceConnectRequestV1 = "gateway.command.voice_connect.v1"
)

// VoiceConnectRequestPayloadV1 asks the gateway daemon to (re)join a voice
// channel on behalf of the local account.
type VoiceConnectRequestPayloadV1 struct {
	RequestID string       `json:"request_id"`
	ClubID    snowflake.ID `json:"club_id"`
	ChannelID snowflake.ID `json:"channel_id"`
}
