package clubstate

import (
	"encoding/json"

	"github.com/Black-And-White-Club/club-mirror/internal/payload"
	"github.com/Black-And-White-Club/club-mirror/internal/snowflake"
)

// User is the platform-wide identity backing a Member. One instance lives in
// the process-wide user registry and is shared by every club membership of
// that user; user attribute updates go through the registry's merge path,
// never through a Member.
type User struct {
	id            snowflake.ID
	Username      string
	Discriminator string
	Avatar        string
	Bot           bool
}

// NewUser constructs a user from its payload. Exposed for the process-wide
// registry constructor.
func NewUser(id snowflake.ID, p payload.User) (*User, error) {
	u := &User{id: id}
	u.Merge(p)
	return u, nil
}

// EntityID returns the user id.
func (u *User) EntityID() snowflake.ID {
	return u.id
}

// Merge applies a partial user payload.
func (u *User) Merge(p payload.User) {
	p.Username.Apply(&u.Username)
	p.Discriminator.Apply(&u.Discriminator)
	p.Avatar.Apply(&u.Avatar)
	p.Bot.Apply(&u.Bot)
}

// MarshalJSON projects the user in wire form.
func (u *User) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID            snowflake.ID `json:"id"`
		Username      string       `json:"username"`
		Discriminator string       `json:"discriminator"`
		Avatar        string       `json:"avatar,omitempty"`
		Bot           bool         `json:"bot,omitempty"`
	}{
		ID:            u.id,
		Username:      u.Username,
		Discriminator: u.Discriminator,
		Avatar:        u.Avatar,
		Bot:           u.Bot,
	})
}
