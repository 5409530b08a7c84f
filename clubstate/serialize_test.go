package clubstate

import (
	"encoding/json"
	"testing"

	"github.com/Black-And-White-Club/club-mirror/internal/payload"
	"github.com/stretchr/testify/assert"
)

func TestClubProjectionExcludesInternals(t *testing.T) {
	store := newTestStore()
	club, _ := store.UpsertClub(payload.Club{
		ID:      testClubID,
		Name:    payload.Some("serial"),
		OwnerID: payload.Some(testOwnerID),
		Channels: payload.Some([]payload.Channel{
			channelPayload(testChannelID, "general",
				overwritePayload(testRoleA, OverwriteRole, PermissionViewChannel, 0)),
		}),
		Members: payload.Some([]payload.Member{memberPayload(testOwnerID, "owner")}),
	})

	raw, err := json.Marshal(club)
	assert.NoError(t, err)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, testClubID.String(), decoded["id"])
	assert.Equal(t, "serial", decoded["name"])
	assert.Contains(t, decoded, "channels")
	assert.Contains(t, decoded, "members")
	assert.Contains(t, decoded, "roles")
	// Internal wiring never leaks into the projection.
	assert.NotContains(t, decoded, "ctx")
	assert.NotContains(t, decoded, "pendingVoiceStates")

	channels := decoded["channels"].([]any)
	assert.Len(t, channels, 1)
	channel := channels[0].(map[string]any)
	assert.Equal(t, "general", channel["name"])
	assert.NotContains(t, channel, "club")
	assert.NotContains(t, channel, "club_id")

	members := decoded["members"].([]any)
	member := members[0].(map[string]any)
	assert.Contains(t, member, "user")
	assert.NotContains(t, member, "club")
}

func TestMemberProjectionIncludesPresenceFields(t *testing.T) {
	store := newTestStore()
	club, _ := store.UpsertClub(payload.Club{
		ID:      testClubID,
		Members: payload.Some([]payload.Member{memberPayload(testMemberID, "m")}),
	})
	ok := club.ApplyPresence(payload.Presence{
		User:   userPayload(testMemberID, "m"),
		Status: payload.Some("online"),
		Game:   payload.Some(payload.Activity{Name: "chess", Type: 0}),
	})
	assert.True(t, ok)

	member, _ := club.Members.Get(testMemberID)
	raw, err := json.Marshal(member)
	assert.NoError(t, err)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "online", decoded["status"])

	// Every tracked presence field projects, the game included.
	game, ok := decoded["game"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "chess", game["name"])
}

func TestVoiceStateProjection(t *testing.T) {
	store := newTestStore()
	club, _ := store.UpsertClub(payload.Club{
		ID:      testClubID,
		Members: payload.Some([]payload.Member{memberPayload(testMemberID, "m")}),
	})
	vs := club.ApplyVoiceState(voicePayload(testMemberID, testChannelID))

	raw, err := json.Marshal(vs)
	assert.NoError(t, err)
	assert.JSONEq(t, `{
		"user_id": "`+testMemberID.String()+`",
		"channel_id": "`+testChannelID.String()+`",
		"mute": false,
		"deaf": false,
		"suppress": false
	}`, string(raw))
}
