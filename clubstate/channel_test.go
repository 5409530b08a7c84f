package clubstate

import (
	"testing"

	"github.com/Black-And-White-Club/club-mirror/internal/payload"
	"github.com/Black-And-White-Club/club-mirror/internal/snowflake"
	"github.com/stretchr/testify/assert"
)

const (
	testClubID    snowflake.ID = 100
	testOwnerID   snowflake.ID = 1
	testMemberID  snowflake.ID = 2
	testRoleA     snowflake.ID = 201
	testRoleB     snowflake.ID = 202
	testChannelID snowflake.ID = 300
)

// permissionFixture builds a club with one owner, one plain member holding
// the given roles, and one channel carrying the given overwrites.
func permissionFixture(t *testing.T, everyonePerms Permissions, roles []payload.Role, memberRoles []snowflake.ID, overwrites []payload.Overwrite) (*Club, *ClubChannel, *Member) {
	t.Helper()
	store := newTestStore()

	snapshot := payload.Club{
		ID:      testClubID,
		Name:    payload.Some("fixture"),
		OwnerID: payload.Some(testOwnerID),
		Roles:   payload.Some(append([]payload.Role{rolePayload(testClubID, "@everyone", everyonePerms)}, roles...)),
		Members: payload.Some([]payload.Member{
			memberPayload(testOwnerID, "owner"),
			memberPayload(testMemberID, "member", memberRoles...),
		}),
		Channels: payload.Some([]payload.Channel{
			channelPayload(testChannelID, "general", overwrites...),
		}),
	}

	club, err := store.UpsertClub(snapshot)
	assert.NoError(t, err)
	channel, ok := club.Channels.Get(testChannelID)
	assert.True(t, ok)
	member, ok := club.Members.Get(testMemberID)
	assert.True(t, ok)
	return club, channel, member
}

func TestNSFWDerivation(t *testing.T) {
	tests := []struct {
		name     string
		chanName string
		flag     payload.Field[bool]
		want     bool
	}{
		{name: "exact nsfw name", chanName: "nsfw", want: true},
		{name: "nsfw prefix", chanName: "nsfw-memes", want: true},
		{name: "nsfw substring only", chanName: "not-nsfw-really", want: false},
		{name: "plain name", chanName: "general", want: false},
		{name: "explicit flag forces true", chanName: "general", flag: payload.Some(true), want: true},
		{name: "explicit false with matching name stays true", chanName: "nsfw", flag: payload.Some(false), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore()
			club, err := store.UpsertClub(payload.Club{ID: testClubID})
			assert.NoError(t, err)

			cp := payload.Channel{ID: testChannelID, Name: payload.Some(tt.chanName), NSFW: tt.flag}
			channel, err := club.Channels.Add(cp.ID, cp)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, channel.NSFW)
		})
	}
}

func TestNSFWRecomputedOnRename(t *testing.T) {
	store := newTestStore()
	club, _ := store.UpsertClub(payload.Club{ID: testClubID})
	channel, _ := club.Channels.Add(testChannelID, channelPayload(testChannelID, "general"))
	assert.False(t, channel.NSFW)

	channel.Merge(payload.Channel{ID: testChannelID, Name: payload.Some("nsfw-art")})
	assert.True(t, channel.NSFW)

	// Renaming away clears the heuristic when no flag was ever set.
	channel.Merge(payload.Channel{ID: testChannelID, Name: payload.Some("art")})
	assert.False(t, channel.NSFW)

	// An explicit flag survives renames; an absent flag never clears it.
	channel.Merge(payload.Channel{ID: testChannelID, NSFW: payload.Some(true)})
	channel.Merge(payload.Channel{ID: testChannelID, Name: payload.Some("safe")})
	assert.True(t, channel.NSFW)
}

func TestOverwriteRegistryFullReplacement(t *testing.T) {
	store := newTestStore()
	club, _ := store.UpsertClub(payload.Club{ID: testClubID})
	channel, _ := club.Channels.Add(testChannelID, channelPayload(testChannelID, "general",
		overwritePayload(testRoleA, OverwriteRole, PermissionViewChannel, 0),
		overwritePayload(testRoleB, OverwriteRole, 0, PermissionSendMessages),
	))
	assert.Equal(t, 2, channel.Overwrites.Len())

	// A present key replaces the whole set; the old RoleB entry is gone.
	channel.Merge(payload.Channel{
		ID:                   testChannelID,
		PermissionOverwrites: payload.Some([]payload.Overwrite{overwritePayload(testRoleA, OverwriteRole, 0, PermissionViewChannel)}),
	})
	assert.Equal(t, 1, channel.Overwrites.Len())
	ow, ok := channel.Overwrites.Get(testRoleA)
	assert.True(t, ok)
	assert.Equal(t, PermissionViewChannel, ow.Deny)

	// An absent key leaves the registry alone.
	channel.Merge(payload.Channel{ID: testChannelID, Name: payload.Some("renamed")})
	assert.Equal(t, 1, channel.Overwrites.Len())
}

func TestChannelPermissionsAdministratorShortCircuit(t *testing.T) {
	// Member holds an administrator role; a deny-everything overwrite must
	// not reduce anything.
	_, channel, member := permissionFixture(t,
		PermissionViewChannel,
		[]payload.Role{rolePayload(testRoleA, "admins", PermissionAdministrator)},
		[]snowflake.ID{testRoleA},
		[]payload.Overwrite{overwritePayload(testClubID, OverwriteRole, 0, PermissionsAll)},
	)

	assert.Equal(t, PermissionsAll, channel.PermissionsOf(member))
}

func TestChannelPermissionsPrecedence(t *testing.T) {
	// Club base allows A (view). Everyone overwrite denies A. Role overwrite
	// allows B (send). Member overwrite denies B. Expected: neither A nor B.
	bitA := PermissionViewChannel
	bitB := PermissionSendMessages

	_, channel, member := permissionFixture(t,
		bitA,
		[]payload.Role{rolePayload(testRoleA, "writers", 0)},
		[]snowflake.ID{testRoleA},
		[]payload.Overwrite{
			overwritePayload(testClubID, OverwriteRole, 0, bitA),
			overwritePayload(testRoleA, OverwriteRole, bitB, 0),
			overwritePayload(testMemberID, OverwriteMember, 0, bitB),
		},
	)

	resolved := channel.PermissionsOf(member)
	assert.False(t, resolved.Has(bitA))
	assert.False(t, resolved.Has(bitB))
}

func TestChannelPermissionsPooledRoleOverwrites(t *testing.T) {
	// R1 denies C, R2 allows C. Pooled application (deny first, then allow
	// within the same step) must leave C set.
	bitC := PermissionReadHistory

	_, channel, member := permissionFixture(t,
		0,
		[]payload.Role{
			rolePayload(testRoleA, "r1", 0),
			rolePayload(testRoleB, "r2", 0),
		},
		[]snowflake.ID{testRoleA, testRoleB},
		[]payload.Overwrite{
			overwritePayload(testRoleA, OverwriteRole, 0, bitC),
			overwritePayload(testRoleB, OverwriteRole, bitC, 0),
		},
	)

	assert.True(t, channel.PermissionsOf(member).Has(bitC))
}

func TestChannelPermissionsMemberOverwriteWins(t *testing.T) {
	// Role overwrite denies, member overwrite allows: member wins because it
	// applies last.
	bit := PermissionAttachFiles

	_, channel, member := permissionFixture(t,
		0,
		[]payload.Role{rolePayload(testRoleA, "r", 0)},
		[]snowflake.ID{testRoleA},
		[]payload.Overwrite{
			overwritePayload(testRoleA, OverwriteRole, 0, bit),
			overwritePayload(testMemberID, OverwriteMember, bit, 0),
		},
	)

	assert.True(t, channel.PermissionsOf(member).Has(bit))
}

func TestChannelPermissionsOfID(t *testing.T) {
	_, channel, _ := permissionFixture(t, PermissionViewChannel, nil, nil, nil)

	perms, ok := channel.PermissionsOfID(testMemberID)
	assert.True(t, ok)
	assert.True(t, perms.Has(PermissionViewChannel))

	_, ok = channel.PermissionsOfID(999)
	assert.False(t, ok)
}
