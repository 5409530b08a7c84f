package clubstate

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/Black-And-White-Club/club-mirror/internal/payload"
	"github.com/Black-And-White-Club/club-mirror/internal/snowflake"
)

// ErrNoUserData is returned when a member cannot be constructed because the
// payload embeds no user and none is cached. A member must never exist
// without a resolvable user.
var ErrNoUserData = errors.New("clubstate: member payload carries no resolvable user")

// Activity is one presence activity entry on a member.
type Activity struct {
	Name string `json:"name"`
	Type int    `json:"type"`
	URL  string `json:"url,omitempty"`
}

// Member is a user's club-scoped membership record. The member id equals the
// underlying user id; the User pointer is shared with the process-wide user
// registry and is never mutated through the member. The owning club is held
// as an id and resolved through the Context.
type Member struct {
	id     snowflake.ID
	clubID snowflake.ID
	ctx    Context

	User         *User
	Nick         string
	RoleIDs      []snowflake.ID
	JoinedAt     time.Time
	PremiumSince time.Time

	Status       string
	Game         *Activity
	Activities   []Activity
	ClientStatus map[string]string
}

// newMember resolves the backing user through the shared registry and builds
// the membership record. Construction fails when no user data is available.
func newMember(ctx Context, clubID snowflake.ID) func(snowflake.ID, payload.Member) (*Member, error) {
	return func(id snowflake.ID, p payload.Member) (*Member, error) {
		var user *User
		switch {
		case p.User != nil && !p.User.ID.IsZero():
			resolved, err := ctx.Users().Add(p.User.ID, *p.User)
			if err != nil {
				return nil, err
			}
			user = resolved
		default:
			cached, ok := ctx.Users().Get(id)
			if !ok {
				return nil, ErrNoUserData
			}
			user = cached
		}

		m := &Member{
			id:     user.EntityID(),
			clubID: clubID,
			ctx:    ctx,
			User:   user,
		}
		m.Merge(p)
		return m, nil
	}
}

// EntityID returns the member id, which equals the underlying user id.
func (m *Member) EntityID() snowflake.ID {
	return m.id
}

// ClubID returns the owning club's id.
func (m *Member) ClubID() snowflake.ID {
	return m.clubID
}

// Club resolves the owning club through the client context.
func (m *Member) Club() (*Club, bool) {
	return m.ctx.Club(m.clubID)
}

// Merge applies a partial member payload. The role list, when present, is
// replaced wholesale; user fields are never touched here, they flow through
// the shared user registry.
func (m *Member) Merge(p payload.Member) {
	if p.Nick.Present() {
		if p.Nick.IsNull() {
			m.Nick = ""
		} else {
			m.Nick = p.Nick.Value()
		}
	}
	if p.Roles.Present() {
		roles := p.Roles.Value()
		m.RoleIDs = make([]snowflake.ID, len(roles))
		copy(m.RoleIDs, roles)
	}
	p.JoinedAt.Apply(&m.JoinedAt)
	if p.PremiumSince.Present() {
		if p.PremiumSince.IsNull() {
			m.PremiumSince = time.Time{}
		} else {
			m.PremiumSince = p.PremiumSince.Value()
		}
	}
}

// MergePresence applies a presence patch onto the member.
func (m *Member) MergePresence(p payload.Presence) {
	p.Status.Apply(&m.Status)
	if p.Game.Present() {
		if p.Game.IsNull() {
			m.Game = nil
		} else {
			game := activityFromPayload(p.Game.Value())
			m.Game = &game
		}
	}
	if p.Activities.Present() {
		raw := p.Activities.Value()
		m.Activities = make([]Activity, 0, len(raw))
		for _, a := range raw {
			m.Activities = append(m.Activities, activityFromPayload(a))
		}
	}
	if p.ClientStatus.Present() {
		m.ClientStatus = p.ClientStatus.Value()
	}
}

func activityFromPayload(a payload.Activity) Activity {
	return Activity{Name: a.Name, Type: a.Type, URL: a.URL}
}

// VoiceState returns the member's registered voice state, or a detached
// default keyed by the member id. A non-nil return does not imply the member
// is connected; check Connected.
func (m *Member) VoiceState() *VoiceState {
	if club, ok := m.ctx.Club(m.clubID); ok {
		if vs, ok := club.VoiceStates.Get(m.id); ok {
			return vs
		}
	}
	return detachedVoiceState(m.id)
}

// Permissions re-derives the member's club-wide permissions from the owning
// club's role table on every access, so it is always consistent with the
// latest merges.
func (m *Member) Permissions() Permissions {
	club, ok := m.ctx.Club(m.clubID)
	if !ok {
		return 0
	}
	return club.PermissionsOf(m)
}

var permissionAliasOnce sync.Once

// Permission is a deprecated alias for Permissions. It behaves identically
// and logs a one-shot deprecation notice.
//
// Deprecated: use Permissions.
func (m *Member) Permission() Permissions {
	permissionAliasOnce.Do(func() {
		slog.Warn("Member.Permission is deprecated, use Member.Permissions")
	})
	return m.Permissions()
}

// MarshalJSON projects the membership in wire form, excluding the club
// back-reference.
func (m *Member) MarshalJSON() ([]byte, error) {
	out := struct {
		User         *User             `json:"user"`
		Nick         string            `json:"nick,omitempty"`
		Roles        []snowflake.ID    `json:"roles"`
		JoinedAt     *time.Time        `json:"joined_at,omitempty"`
		PremiumSince *time.Time        `json:"premium_since,omitempty"`
		Status       string            `json:"status,omitempty"`
		Game         *Activity         `json:"game,omitempty"`
		Activities   []Activity        `json:"activities,omitempty"`
		ClientStatus map[string]string `json:"client_status,omitempty"`
	}{
		User:         m.User,
		Nick:         m.Nick,
		Roles:        m.RoleIDs,
		Status:       m.Status,
		Game:         m.Game,
		Activities:   m.Activities,
		ClientStatus: m.ClientStatus,
	}
	if !m.JoinedAt.IsZero() {
		out.JoinedAt = &m.JoinedAt
	}
	if !m.PremiumSince.IsZero() {
		out.PremiumSince = &m.PremiumSince
	}
	if out.Roles == nil {
		out.Roles = []snowflake.ID{}
	}
	return json.Marshal(out)
}
