package clubstate

import (
	"encoding/json"
	"strings"

	"github.com/Black-And-White-Club/club-mirror/internal/payload"
	"github.com/Black-And-White-Club/club-mirror/internal/snowflake"
)

// ClubChannel is a channel scoped to a club. It owns the channel's permission
// overwrite registry and resolves a member's effective permissions within the
// channel. The owning club is held as an id and resolved through the Context,
// never as a strong pointer.
type ClubChannel struct {
	id     snowflake.ID
	clubID snowflake.ID
	ctx    Context

	Name     string
	Type     int
	Position int
	ParentID snowflake.ID
	Topic    string

	// NSFW combines the name heuristic with the explicit server flag. The
	// flag can force true but an absent flag never clears the heuristic.
	NSFW     bool
	nsfwFlag bool

	Overwrites *Registry[*PermissionOverwrite, payload.Overwrite]
}

func newClubChannel(ctx Context, clubID snowflake.ID) func(snowflake.ID, payload.Channel) (*ClubChannel, error) {
	return func(id snowflake.ID, p payload.Channel) (*ClubChannel, error) {
		c := &ClubChannel{
			id:         id,
			clubID:     clubID,
			ctx:        ctx,
			Overwrites: NewRegistry(newPermissionOverwrite),
		}
		c.Merge(p)
		return c, nil
	}
}

// EntityID returns the channel id.
func (c *ClubChannel) EntityID() snowflake.ID {
	return c.id
}

// ClubID returns the owning club's id.
func (c *ClubChannel) ClubID() snowflake.ID {
	return c.clubID
}

// Club resolves the owning club through the client context.
func (c *ClubChannel) Club() (*Club, bool) {
	return c.ctx.Club(c.clubID)
}

// Merge applies a partial channel payload. NSFW is recomputed whenever the
// name or the explicit flag changes, and a present permission_overwrites key
// replaces the whole overwrite registry: the gateway always delivers the
// complete set for the channel.
func (c *ClubChannel) Merge(p payload.Channel) {
	p.Name.Apply(&c.Name)
	p.Type.Apply(&c.Type)
	p.Position.Apply(&c.Position)
	p.ParentID.Apply(&c.ParentID)
	p.Topic.Apply(&c.Topic)

	if p.NSFW.Present() {
		c.nsfwFlag = !p.NSFW.IsNull() && p.NSFW.Value()
	}
	c.NSFW = c.nsfwFlag || nameImpliesNSFW(c.Name)

	if p.PermissionOverwrites.Present() {
		replacement := NewRegistry(newPermissionOverwrite)
		for _, op := range p.PermissionOverwrites.Value() {
			replacement.Add(op.ID, op)
		}
		c.Overwrites = replacement
	}
}

func nameImpliesNSFW(name string) bool {
	return name == "nsfw" || strings.HasPrefix(name, "nsfw-")
}

// PermissionsOf resolves the member's effective permissions in this channel.
// The order is a fixed contract: club-wide base with administrator
// short-circuit, then the everyone overwrite, then all role overwrites pooled
// (allow masks ORed together, deny masks ORed together) and applied as one
// step, then the member-specific overwrite last. Each overwrite step composes
// as (permissions AND NOT deny) OR allow.
func (c *ClubChannel) PermissionsOf(m *Member) Permissions {
	club, ok := c.Club()
	if !ok || m == nil {
		return 0
	}

	perms := club.PermissionsOf(m)
	if perms.Administrator() {
		return PermissionsAll
	}

	if everyone, ok := c.Overwrites.Get(club.EntityID()); ok {
		perms = (perms &^ everyone.Deny) | everyone.Allow
	}

	var allow, deny Permissions
	for _, roleID := range m.RoleIDs {
		if roleID == club.EntityID() {
			continue
		}
		if ow, ok := c.Overwrites.Get(roleID); ok {
			allow |= ow.Allow
			deny |= ow.Deny
		}
	}
	perms = (perms &^ deny) | allow

	if own, ok := c.Overwrites.Get(m.EntityID()); ok {
		perms = (perms &^ own.Deny) | own.Allow
	}

	return perms
}

// PermissionsOfID resolves permissions for a member given only its id,
// looking the member up in the owning club. It reports false when either the
// club or the member is unknown.
func (c *ClubChannel) PermissionsOfID(memberID snowflake.ID) (Permissions, bool) {
	club, ok := c.Club()
	if !ok {
		return 0, false
	}
	member, ok := club.Members.Get(memberID)
	if !ok {
		return 0, false
	}
	return c.PermissionsOf(member), true
}

// MarshalJSON projects the channel in wire form, excluding the back-reference.
func (c *ClubChannel) MarshalJSON() ([]byte, error) {
	out := struct {
		ID         snowflake.ID                                     `json:"id"`
		Name       string                                           `json:"name"`
		Type       int                                              `json:"type"`
		Position   int                                              `json:"position"`
		ParentID   *snowflake.ID                                    `json:"parent_id"`
		Topic      string                                           `json:"topic,omitempty"`
		NSFW       bool                                             `json:"nsfw"`
		Overwrites *Registry[*PermissionOverwrite, payload.Overwrite] `json:"permission_overwrites"`
	}{
		ID:         c.id,
		Name:       c.Name,
		Type:       c.Type,
		Position:   c.Position,
		Topic:      c.Topic,
		NSFW:       c.NSFW,
		Overwrites: c.Overwrites,
	}
	if !c.ParentID.IsZero() {
		out.ParentID = &c.ParentID
	}
	return json.Marshal(out)
}
