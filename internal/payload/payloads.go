package payload

import (
	"time"

	"github.com/Black-And-White-Club/club-mirror/internal/snowflake"
)

// Club is a full or partial club snapshot as delivered by the gateway.
// Only ID is guaranteed; every other key may be absent.
type Club struct {
	ID                       snowflake.ID         `json:"id"`
	Name                     Field[string]        `json:"name"`
	OwnerID                  Field[snowflake.ID]  `json:"owner_id"`
	Region                   Field[string]        `json:"region"`
	VerificationLevel        Field[int]           `json:"verification_level"`
	Icon                     Field[string]        `json:"icon"`
	Splash                   Field[string]        `json:"splash"`
	Banner                   Field[string]        `json:"banner"`
	Features                 Field[[]string]      `json:"features"`
	MaxMembers               Field[int]           `json:"max_members"`
	MaxPresences             Field[int]           `json:"max_presences"`
	MaxVideoChannelUsers     Field[int]           `json:"max_video_channel_users"`
	DefaultNotifications     Field[int]           `json:"default_message_notifications"`
	ExplicitContentFilter    Field[int]           `json:"explicit_content_filter"`
	PremiumTier              Field[int]           `json:"premium_tier"`
	PremiumSubscriptionCount Field[int]           `json:"premium_subscription_count"`
	PreferredLocale          Field[string]        `json:"preferred_locale"`
	MemberCount              Field[int]           `json:"member_count"`
	Unavailable              Field[bool]          `json:"unavailable"`
	Channels                 Field[[]Channel]     `json:"channels"`
	Members                  Field[[]Member]      `json:"members"`
	Roles                    Field[[]Role]        `json:"roles"`
	VoiceStates              Field[[]VoiceState]  `json:"voice_states"`
	Presences                Field[[]Presence]    `json:"presences"`
}

// Channel is a club channel snapshot or patch.
type Channel struct {
	ID                   snowflake.ID        `json:"id"`
	ClubID               Field[snowflake.ID] `json:"club_id"`
	Name                 Field[string]       `json:"name"`
	Type                 Field[int]          `json:"type"`
	Position             Field[int]          `json:"position"`
	ParentID             Field[snowflake.ID] `json:"parent_id"`
	NSFW                 Field[bool]         `json:"nsfw"`
	Topic                Field[string]       `json:"topic"`
	PermissionOverwrites Field[[]Overwrite]  `json:"permission_overwrites"`
}

// Overwrite is one channel permission overwrite. Overwrites are always
// delivered as a complete set for their channel, so no key here is optional.
type Overwrite struct {
	ID    snowflake.ID `json:"id"`
	Type  string       `json:"type"`
	Allow uint64       `json:"allow"`
	Deny  uint64       `json:"deny"`
}

// Role is a club role snapshot or patch.
type Role struct {
	ID          snowflake.ID  `json:"id"`
	Name        Field[string] `json:"name"`
	Color       Field[int]    `json:"color"`
	Hoist       Field[bool]   `json:"hoist"`
	Position    Field[int]    `json:"position"`
	Permissions Field[uint64] `json:"permissions"`
	Managed     Field[bool]   `json:"managed"`
	Mentionable Field[bool]   `json:"mentionable"`
}

// User is the shared user identity embedded in member and presence payloads.
type User struct {
	ID            snowflake.ID  `json:"id"`
	Username      Field[string] `json:"username"`
	Discriminator Field[string] `json:"discriminator"`
	Avatar        Field[string] `json:"avatar"`
	Bot           Field[bool]   `json:"bot"`
}

// Member is a club membership snapshot or patch. User may be nil on patches
// that target an already-cached member.
type Member struct {
	User         *User                 `json:"user"`
	Nick         Field[string]         `json:"nick"`
	Roles        Field[[]snowflake.ID] `json:"roles"`
	JoinedAt     Field[time.Time]      `json:"joined_at"`
	PremiumSince Field[time.Time]      `json:"premium_since"`
}

// Activity is one presence activity entry.
type Activity struct {
	Name string `json:"name"`
	Type int    `json:"type"`
	URL  string `json:"url,omitempty"`
}

// Presence is a member presence patch.
type Presence struct {
	User         *User                    `json:"user"`
	Status       Field[string]            `json:"status"`
	Game         Field[Activity]          `json:"game"`
	Activities   Field[[]Activity]        `json:"activities"`
	ClientStatus Field[map[string]string] `json:"client_status"`
}

// VoiceState is a member's voice attachment snapshot or patch.
type VoiceState struct {
	ClubID    Field[snowflake.ID] `json:"club_id"`
	ChannelID Field[snowflake.ID] `json:"channel_id"`
	UserID    snowflake.ID        `json:"user_id"`
	Mute      Field[bool]         `json:"mute"`
	Deaf      Field[bool]         `json:"deaf"`
	Suppress  Field[bool]         `json:"suppress"`
}

// ClubDelete is the gateway dispatch for a club becoming unavailable or the
// local account leaving it.
type ClubDelete struct {
	ID          snowflake.ID `json:"id"`
	Unavailable Field[bool]  `json:"unavailable"`
}

// ChannelDelete is the gateway dispatch for a deleted channel.
type ChannelDelete struct {
	ID     snowflake.ID        `json:"id"`
	ClubID Field[snowflake.ID] `json:"club_id"`
}

// MemberScoped wraps a member payload with its owning club, as member
// dispatches put the club id at the top level.
type MemberScoped struct {
	ClubID snowflake.ID `json:"club_id"`
	Member
}

// MemberRemove is the gateway dispatch for a member leaving a club.
type MemberRemove struct {
	ClubID snowflake.ID `json:"club_id"`
	User   *User        `json:"user"`
}

// RoleScoped wraps a role payload with its owning club.
type RoleScoped struct {
	ClubID snowflake.ID `json:"club_id"`
	Role   Role         `json:"role"`
}

// RoleDelete is the gateway dispatch for a deleted role.
type RoleDelete struct {
	ClubID snowflake.ID `json:"club_id"`
	RoleID snowflake.ID `json:"role_id"`
}

// PresenceScoped wraps a presence payload with its owning club.
type PresenceScoped struct {
	ClubID snowflake.ID `json:"club_id"`
	Presence
}
