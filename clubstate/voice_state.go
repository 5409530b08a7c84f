package clubstate

import (
	"encoding/json"

	"github.com/Black-And-White-Club/club-mirror/internal/payload"
	"github.com/Black-And-White-Club/club-mirror/internal/snowflake"
)

// VoiceState is a member's transient attachment to a voice channel. A zero
// ChannelID means the member is not connected.
type VoiceState struct {
	userID    snowflake.ID
	ChannelID snowflake.ID
	Mute      bool
	Deaf      bool
	Suppress  bool
}

func newVoiceState(userID snowflake.ID, p payload.VoiceState) (*VoiceState, error) {
	vs := &VoiceState{userID: userID}
	vs.Merge(p)
	return vs, nil
}

// detachedVoiceState is what Member.VoiceState returns when no state is
// registered: keyed by the member but connected to nothing.
func detachedVoiceState(userID snowflake.ID) *VoiceState {
	return &VoiceState{userID: userID}
}

// EntityID returns the member's user id the state belongs to.
func (vs *VoiceState) EntityID() snowflake.ID {
	return vs.userID
}

// Connected reports whether the member is attached to a voice channel.
func (vs *VoiceState) Connected() bool {
	return !vs.ChannelID.IsZero()
}

// Merge applies a partial voice payload. An explicit null channel id clears
// the attachment.
func (vs *VoiceState) Merge(p payload.VoiceState) {
	if p.ChannelID.Present() {
		if p.ChannelID.IsNull() {
			vs.ChannelID = 0
		} else {
			vs.ChannelID = p.ChannelID.Value()
		}
	}
	p.Mute.Apply(&vs.Mute)
	p.Deaf.Apply(&vs.Deaf)
	p.Suppress.Apply(&vs.Suppress)
}

// isFullDisconnect reports whether a voice payload describes a member fully
// leaving voice: explicit null channel and every flag false. Such a payload
// deletes the state instead of merging it.
func isFullDisconnect(p payload.VoiceState) bool {
	if !p.ChannelID.Present() || !p.ChannelID.IsNull() {
		return false
	}
	return !p.Mute.Value() && !p.Deaf.Value() && !p.Suppress.Value()
}

// MarshalJSON projects the voice state in wire form.
func (vs *VoiceState) MarshalJSON() ([]byte, error) {
	out := struct {
		UserID    snowflake.ID  `json:"user_id"`
		ChannelID *snowflake.ID `json:"channel_id"`
		Mute      bool          `json:"mute"`
		Deaf      bool          `json:"deaf"`
		Suppress  bool          `json:"suppress"`
	}{
		UserID:   vs.userID,
		Mute:     vs.Mute,
		Deaf:     vs.Deaf,
		Suppress: vs.Suppress,
	}
	if !vs.ChannelID.IsZero() {
		out.ChannelID = &vs.ChannelID
	}
	return json.Marshal(out)
}
