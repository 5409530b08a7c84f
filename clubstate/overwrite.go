package clubstate

import (
	"encoding/json"

	"github.com/Black-And-White-Club/club-mirror/internal/payload"
	"github.com/Black-And-White-Club/club-mirror/internal/snowflake"
)

// OverwriteType distinguishes the subject of a channel permission overwrite.
type OverwriteType string

const (
	OverwriteRole   OverwriteType = "role"
	OverwriteMember OverwriteType = "member"
)

// PermissionOverwrite is a per-subject (allow, deny) mask pair attached to a
// channel. Overwrites arrive as complete records; a merge is a full
// replacement, never field-by-field.
type PermissionOverwrite struct {
	id    snowflake.ID
	Type  OverwriteType
	Allow Permissions
	Deny  Permissions
}

func newPermissionOverwrite(id snowflake.ID, p payload.Overwrite) (*PermissionOverwrite, error) {
	ow := &PermissionOverwrite{id: id}
	ow.Merge(p)
	return ow, nil
}

// EntityID returns the subject id (role or member) this overwrite targets.
func (o *PermissionOverwrite) EntityID() snowflake.ID {
	return o.id
}

// Merge replaces the overwrite wholesale.
func (o *PermissionOverwrite) Merge(p payload.Overwrite) {
	o.Type = OverwriteType(p.Type)
	o.Allow = Permissions(p.Allow)
	o.Deny = Permissions(p.Deny)
}

// MarshalJSON projects the overwrite in wire form.
func (o *PermissionOverwrite) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID    snowflake.ID `json:"id"`
		Type  string       `json:"type"`
		Allow uint64       `json:"allow"`
		Deny  uint64       `json:"deny"`
	}{
		ID:    o.id,
		Type:  string(o.Type),
		Allow: uint64(o.Allow),
		Deny:  uint64(o.Deny),
	})
}
