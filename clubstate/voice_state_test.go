package clubstate

import (
	"testing"

	"github.com/Black-And-White-Club/club-mirror/internal/payload"
	"github.com/Black-And-White-Club/club-mirror/internal/snowflake"
	"github.com/stretchr/testify/assert"
)

func TestVoiceStateMerge(t *testing.T) {
	store := newTestStore()
	club, _ := store.UpsertClub(payload.Club{
		ID:      testClubID,
		Members: payload.Some([]payload.Member{memberPayload(testMemberID, "m")}),
	})

	vs := club.ApplyVoiceState(payload.VoiceState{
		UserID:    testMemberID,
		ChannelID: payload.Some(testChannelID),
		Mute:      payload.Some(true),
	})
	assert.NotNil(t, vs)
	assert.True(t, vs.Mute)
	assert.False(t, vs.Deaf)

	// Patch without channel_id keeps the attachment.
	club.ApplyVoiceState(payload.VoiceState{
		UserID: testMemberID,
		Deaf:   payload.Some(true),
	})
	assert.Equal(t, testChannelID, vs.ChannelID)
	assert.True(t, vs.Deaf)
	assert.True(t, vs.Mute)

	// Null channel with a flag still set moves to disconnected-but-kept.
	club.ApplyVoiceState(payload.VoiceState{
		UserID:    testMemberID,
		ChannelID: payload.Null[snowflake.ID](),
		Mute:      payload.Some(true),
		Deaf:      payload.Some(false),
	})
	assert.False(t, vs.Connected())
	assert.Equal(t, 1, club.VoiceStates.Len())
}

func TestVoiceStateFullDisconnectRemoves(t *testing.T) {
	store := newTestStore()
	club, _ := store.UpsertClub(payload.Club{
		ID:      testClubID,
		Members: payload.Some([]payload.Member{memberPayload(testMemberID, "m")}),
	})
	member, _ := club.Members.Get(testMemberID)

	club.ApplyVoiceState(voicePayload(testMemberID, testChannelID))
	assert.Equal(t, 1, club.VoiceStates.Len())

	// Null channel and every flag false: the state is deleted.
	assert.Nil(t, club.ApplyVoiceState(voiceDisconnectPayload(testMemberID)))
	assert.Equal(t, 0, club.VoiceStates.Len())

	// The member getter now hands back a detached default.
	vs := member.VoiceState()
	assert.Equal(t, testMemberID, vs.EntityID())
	assert.False(t, vs.Connected())
}

func TestIsFullDisconnect(t *testing.T) {
	tests := []struct {
		name string
		p    payload.VoiceState
		want bool
	}{
		{name: "all clear", p: voiceDisconnectPayload(testMemberID), want: true},
		{name: "absent channel", p: payload.VoiceState{UserID: testMemberID}, want: false},
		{name: "channel set", p: voicePayload(testMemberID, testChannelID), want: false},
		{
			name: "null channel but muted",
			p: payload.VoiceState{
				UserID:    testMemberID,
				ChannelID: payload.Null[snowflake.ID](),
				Mute:      payload.Some(true),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isFullDisconnect(tt.p))
		})
	}
}
