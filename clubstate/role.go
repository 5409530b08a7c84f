package clubstate

import (
	"encoding/json"

	"github.com/Black-And-White-Club/club-mirror/internal/payload"
	"github.com/Black-And-White-Club/club-mirror/internal/snowflake"
)

// Role is a named, club-scoped permission bundle. The role sharing its id
// with the club is the "everyone" role and anchors base permissions.
type Role struct {
	id          snowflake.ID
	Name        string
	Color       int
	Hoist       bool
	Position    int
	Permissions Permissions
	Managed     bool
	Mentionable bool
}

func newRole(id snowflake.ID, p payload.Role) (*Role, error) {
	r := &Role{id: id}
	r.Merge(p)
	return r, nil
}

// EntityID returns the role id.
func (r *Role) EntityID() snowflake.ID {
	return r.id
}

// Merge applies a partial role payload. Absent keys leave fields unchanged.
func (r *Role) Merge(p payload.Role) {
	p.Name.Apply(&r.Name)
	p.Color.Apply(&r.Color)
	p.Hoist.Apply(&r.Hoist)
	p.Position.Apply(&r.Position)
	if p.Permissions.Present() {
		r.Permissions = Permissions(p.Permissions.Value())
	}
	p.Managed.Apply(&r.Managed)
	p.Mentionable.Apply(&r.Mentionable)
}

// MarshalJSON projects the role in wire form.
func (r *Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID          snowflake.ID `json:"id"`
		Name        string       `json:"name"`
		Color       int          `json:"color"`
		Hoist       bool         `json:"hoist"`
		Position    int          `json:"position"`
		Permissions uint64       `json:"permissions"`
		Managed     bool         `json:"managed"`
		Mentionable bool         `json:"mentionable"`
	}{
		ID:          r.id,
		Name:        r.Name,
		Color:       r.Color,
		Hoist:       r.Hoist,
		Position:    r.Position,
		Permissions: uint64(r.Permissions),
		Managed:     r.Managed,
		Mentionable: r.Mentionable,
	})
}
