package clubstate

import (
	"encoding/json"

	"github.com/Black-And-White-Club/club-mirror/internal/payload"
	"github.com/Black-And-White-Club/club-mirror/internal/snowflake"
)

// Club is the aggregate root for one community: it owns the channel, member,
// role and voice-state registries and merges full and partial snapshots into
// them. Children reference the club by id through the Context, so tearing a
// club down never requires breaking cycles by hand.
type Club struct {
	id  snowflake.ID
	ctx Context

	Name                     string
	OwnerID                  snowflake.ID
	Region                   string
	VerificationLevel        int
	Icon                     string
	Splash                   string
	Banner                   string
	Features                 []string
	MaxMembers               int
	MaxPresences             int
	MaxVideoChannelUsers     int
	DefaultNotifications     int
	ExplicitContentFilter    int
	PremiumTier              int
	PremiumSubscriptionCount int
	PreferredLocale          string
	MemberCount              int

	// Unavailable marks the club temporarily unreachable on the remote
	// service. The club stays cached; it is never deleted for this.
	Unavailable bool

	Channels    *Registry[*ClubChannel, payload.Channel]
	Members     *Registry[*Member, payload.Member]
	Roles       *Registry[*Role, payload.Role]
	VoiceStates *Registry[*VoiceState, payload.VoiceState]

	// pendingVoiceStates holds voice payloads deferred during snapshot
	// construction when the process is not caching channels eagerly.
	pendingVoiceStates []payload.VoiceState

	// pendingReconnect holds the channel a local-account voice reconnect
	// should target. Merge only records it; the store dispatches it once
	// the club is reachable through the registry.
	pendingReconnect snowflake.ID
}

// NewClub constructs a club from its first full snapshot.
func NewClub(ctx Context, id snowflake.ID, p payload.Club) (*Club, error) {
	g := &Club{
		id:          id,
		ctx:         ctx,
		VoiceStates: NewRegistry(newVoiceState),
		Roles:       NewRegistry(newRole),
	}
	g.Channels = NewRegistry(newClubChannel(ctx, id))
	g.Members = NewRegistry(newMember(ctx, id))
	g.Merge(p)
	return g, nil
}

// EntityID returns the club id. The everyone role shares this id.
func (g *Club) EntityID() snowflake.ID {
	return g.id
}

// Merge applies a full or partial club payload. Scalar fields follow the
// presence rule; nested entity arrays are merged element-wise into their
// registries. Presences for unknown members and voice states for unknown
// members are reported as diagnostics and skipped, never errors.
func (g *Club) Merge(p payload.Club) {
	p.Name.Apply(&g.Name)
	p.OwnerID.Apply(&g.OwnerID)
	p.Region.Apply(&g.Region)
	p.VerificationLevel.Apply(&g.VerificationLevel)
	p.Icon.Apply(&g.Icon)
	p.Splash.Apply(&g.Splash)
	p.Banner.Apply(&g.Banner)
	p.Features.Apply(&g.Features)
	p.MaxMembers.Apply(&g.MaxMembers)
	p.MaxPresences.Apply(&g.MaxPresences)
	p.MaxVideoChannelUsers.Apply(&g.MaxVideoChannelUsers)
	p.DefaultNotifications.Apply(&g.DefaultNotifications)
	p.ExplicitContentFilter.Apply(&g.ExplicitContentFilter)
	p.PremiumTier.Apply(&g.PremiumTier)
	p.PremiumSubscriptionCount.Apply(&g.PremiumSubscriptionCount)
	p.PreferredLocale.Apply(&g.PreferredLocale)
	p.MemberCount.Apply(&g.MemberCount)
	p.Unavailable.Apply(&g.Unavailable)

	if p.Roles.Present() {
		for _, rp := range p.Roles.Value() {
			g.Roles.Add(rp.ID, rp)
		}
	}
	g.ensureEveryoneRole()

	if p.Channels.Present() {
		for _, cp := range p.Channels.Value() {
			g.Channels.Add(cp.ID, cp)
		}
	}

	if p.Members.Present() {
		for _, mp := range p.Members.Value() {
			if _, err := g.UpsertMember(mp); err != nil {
				g.ctx.Diagnostic(DiagnosticEvent{
					Kind:    DiagMemberConstructFailed,
					ClubID:  g.id,
					ShardID: g.ctx.ShardID(g.id),
					Message: err.Error(),
				})
			}
		}
	}

	if p.Presences.Present() {
		for _, pp := range p.Presences.Value() {
			g.ApplyPresence(pp)
		}
	}

	var reconnectChannel snowflake.ID
	if p.VoiceStates.Present() {
		if g.ctx.FullCaching() {
			for _, vp := range p.VoiceStates.Value() {
				if vs := g.ApplyVoiceState(vp); vs != nil {
					if vs.EntityID() == g.ctx.LocalUserID() && vs.Connected() {
						reconnectChannel = vs.ChannelID
					}
				}
			}
		} else {
			// Channel objects may not exist yet in this mode; hold the
			// states until FlushPendingVoiceStates.
			g.pendingVoiceStates = append(g.pendingVoiceStates, p.VoiceStates.Value()...)
		}
	}

	// Only recorded here. Merge runs inside registry construction, so
	// firing the request now would let the connector observe a club that
	// is not yet registered; the store dispatches it afterwards.
	if !reconnectChannel.IsZero() {
		g.pendingReconnect = reconnectChannel
	}
}

// TakePendingReconnect returns and clears the channel a local-account voice
// reconnect should target, recorded during the last Merge.
func (g *Club) TakePendingReconnect() (snowflake.ID, bool) {
	channelID := g.pendingReconnect
	g.pendingReconnect = 0
	return channelID, !channelID.IsZero()
}

// ensureEveryoneRole keeps the invariant that the role sharing the club's id
// always exists; it anchors base permissions.
func (g *Club) ensureEveryoneRole() {
	if g.Roles.Has(g.id) {
		return
	}
	g.Roles.Add(g.id, payload.Role{ID: g.id, Name: payload.Some("@everyone")})
}

// EveryoneRole returns the role anchoring base permissions.
func (g *Club) EveryoneRole() *Role {
	g.ensureEveryoneRole()
	role, _ := g.Roles.Get(g.id)
	return role
}

// UpsertMember resolves the member's user through the shared registry and
// constructs or merges the membership record. When the payload embeds user
// data it is first merged through the user registry's own path.
func (g *Club) UpsertMember(p payload.Member) (*Member, error) {
	if p.User == nil || p.User.ID.IsZero() {
		return nil, ErrNoUserData
	}
	return g.Members.Add(p.User.ID, p)
}

// ApplyPresence merges a presence patch onto an already-known member. A
// presence for an unknown member is a reordering anomaly: reported and
// skipped, never corrected.
func (g *Club) ApplyPresence(p payload.Presence) bool {
	if p.User == nil || p.User.ID.IsZero() {
		return false
	}
	member, ok := g.Members.Get(p.User.ID)
	if !ok {
		g.ctx.Diagnostic(DiagnosticEvent{
			Kind:     DiagPresenceUnknownMember,
			ClubID:   g.id,
			ShardID:  g.ctx.ShardID(g.id),
			MemberID: p.User.ID,
			Message:  "presence update for member not in registry",
		})
		return false
	}
	member.MergePresence(p)
	return true
}

// ApplyVoiceState creates, updates or removes a voice state. A payload
// describing a full disconnect deletes the state; a payload for an unknown
// member is reported and skipped. It returns the resulting state, or nil when
// the state was deleted or skipped.
func (g *Club) ApplyVoiceState(p payload.VoiceState) *VoiceState {
	if !g.Members.Has(p.UserID) {
		g.ctx.Diagnostic(DiagnosticEvent{
			Kind:     DiagVoiceUnknownMember,
			ClubID:   g.id,
			ShardID:  g.ctx.ShardID(g.id),
			MemberID: p.UserID,
			Message:  "voice state for member not in registry",
		})
		return nil
	}

	if isFullDisconnect(p) {
		g.VoiceStates.Delete(p.UserID)
		return nil
	}

	vs, err := g.VoiceStates.Add(p.UserID, p)
	if err != nil {
		return nil
	}

	if vs.Connected() && !g.Channels.Has(vs.ChannelID) {
		g.ctx.Diagnostic(DiagnosticEvent{
			Kind:      DiagVoiceUnknownChannel,
			ClubID:    g.id,
			ShardID:   g.ctx.ShardID(g.id),
			MemberID:  p.UserID,
			ChannelID: vs.ChannelID,
			Message:   "voice state references channel not in registry",
		})
	}
	return vs
}

// FlushPendingVoiceStates applies voice states deferred during snapshot
// construction. Callers invoke it once the channel registry is populated.
func (g *Club) FlushPendingVoiceStates() {
	pending := g.pendingVoiceStates
	g.pendingVoiceStates = nil
	for _, vp := range pending {
		g.ApplyVoiceState(vp)
	}
}

// PendingVoiceStates returns how many deferred voice states are held.
func (g *Club) PendingVoiceStates() int {
	return len(g.pendingVoiceStates)
}

// PermissionsOf resolves the member's club-wide permissions. The owner holds
// every capability unconditionally; otherwise the everyone role's mask is the
// base and the masks of held roles are ORed in, short-circuiting to the full
// mask when any role grants administrator. There is no deny at club scope.
func (g *Club) PermissionsOf(m *Member) Permissions {
	if m == nil {
		return 0
	}
	if m.EntityID() == g.OwnerID {
		return PermissionsAll
	}

	var perms Permissions
	if everyone, ok := g.Roles.Get(g.id); ok {
		if everyone.Permissions.Administrator() {
			return PermissionsAll
		}
		perms = everyone.Permissions
	}
	for _, roleID := range m.RoleIDs {
		role, ok := g.Roles.Get(roleID)
		if !ok {
			continue
		}
		if role.Permissions.Administrator() {
			return PermissionsAll
		}
		perms |= role.Permissions
	}
	return perms
}

// PermissionsOfID resolves club-wide permissions for a member id, reporting
// false when the member is unknown.
func (g *Club) PermissionsOfID(memberID snowflake.ID) (Permissions, bool) {
	member, ok := g.Members.Get(memberID)
	if !ok {
		return 0, false
	}
	return g.PermissionsOf(member), true
}

// MarshalJSON projects the club and its registries in wire form.
func (g *Club) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID                       snowflake.ID                                   `json:"id"`
		Name                     string                                         `json:"name"`
		OwnerID                  snowflake.ID                                   `json:"owner_id"`
		Region                   string                                         `json:"region,omitempty"`
		VerificationLevel        int                                            `json:"verification_level"`
		Icon                     string                                         `json:"icon,omitempty"`
		Splash                   string                                         `json:"splash,omitempty"`
		Banner                   string                                         `json:"banner,omitempty"`
		Features                 []string                                       `json:"features,omitempty"`
		MaxMembers               int                                            `json:"max_members,omitempty"`
		MaxPresences             int                                            `json:"max_presences,omitempty"`
		MaxVideoChannelUsers     int                                            `json:"max_video_channel_users,omitempty"`
		DefaultNotifications     int                                            `json:"default_message_notifications"`
		ExplicitContentFilter    int                                            `json:"explicit_content_filter"`
		PremiumTier              int                                            `json:"premium_tier"`
		PremiumSubscriptionCount int                                            `json:"premium_subscription_count,omitempty"`
		PreferredLocale          string                                         `json:"preferred_locale,omitempty"`
		MemberCount              int                                            `json:"member_count,omitempty"`
		Unavailable              bool                                           `json:"unavailable,omitempty"`
		Channels                 *Registry[*ClubChannel, payload.Channel]       `json:"channels"`
		Members                  *Registry[*Member, payload.Member]             `json:"members"`
		Roles                    *Registry[*Role, payload.Role]                 `json:"roles"`
		VoiceStates              *Registry[*VoiceState, payload.VoiceState]     `json:"voice_states"`
	}{
		ID:                       g.id,
		Name:                     g.Name,
		OwnerID:                  g.OwnerID,
		Region:                   g.Region,
		VerificationLevel:        g.VerificationLevel,
		Icon:                     g.Icon,
		Splash:                   g.Splash,
		Banner:                   g.Banner,
		Features:                 g.Features,
		MaxMembers:               g.MaxMembers,
		MaxPresences:             g.MaxPresences,
		MaxVideoChannelUsers:     g.MaxVideoChannelUsers,
		DefaultNotifications:     g.DefaultNotifications,
		ExplicitContentFilter:    g.ExplicitContentFilter,
		PremiumTier:              g.PremiumTier,
		PremiumSubscriptionCount: g.PremiumSubscriptionCount,
		PreferredLocale:          g.PreferredLocale,
		MemberCount:              g.MemberCount,
		Unavailable:              g.Unavailable,
		Channels:                 g.Channels,
		Members:                  g.Members,
		Roles:                    g.Roles,
		VoiceStates:              g.VoiceStates,
	})
}
