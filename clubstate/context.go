package clubstate

import (
	"github.com/Black-And-White-Club/club-mirror/internal/payload"
	"github.com/Black-And-White-Club/club-mirror/internal/snowflake"
)

// Context is the club-owning client collaborator the cache reaches through:
// id-based club lookup (the weak back-reference strategy for the cyclic
// graph), the process-wide shared user registry, shard attribution for
// diagnostics, and the fire-and-forget voice reconnect request.
type Context interface {
	// Club resolves a club by id. Channels and members hold only the id and
	// go through this lookup, never a strong owning pointer.
	Club(id snowflake.ID) (*Club, bool)

	// Users returns the process-wide user registry. Member never deep-copies
	// a user; it references the shared instance, and user attribute updates
	// flow through this registry's own merge path.
	Users() *Registry[*User, payload.User]

	// ShardID returns the shard a club's events arrive on, for diagnostics.
	ShardID(clubID snowflake.ID) int

	// FullCaching reports whether voice-state bootstrapping may be applied
	// during full-snapshot construction. When false, channel objects may not
	// exist yet and voice states are deferred instead.
	FullCaching() bool

	// LocalUserID identifies the account this process runs as.
	LocalUserID() snowflake.ID

	// Diagnostic reports a non-fatal lookup-miss anomaly. Processing always
	// continues past the offending payload.
	Diagnostic(ev DiagnosticEvent)

	// RequestVoiceConnect asks the gateway collaborator to reconnect the
	// local account to a voice channel. Fire-and-forget.
	RequestVoiceConnect(clubID, channelID snowflake.ID)
}

// Diagnostic kinds emitted by merge operations.
const (
	DiagPresenceUnknownMember = "presence_unknown_member"
	DiagVoiceUnknownMember    = "voice_unknown_member"
	DiagVoiceUnknownChannel   = "voice_unknown_channel"
	DiagMemberConstructFailed = "member_construct_failed"
)

// DiagnosticEvent identifies one skipped payload and where it came from.
type DiagnosticEvent struct {
	Kind      string
	ClubID    snowflake.ID
	ShardID   int
	MemberID  snowflake.ID
	ChannelID snowflake.ID
	Message   string
}
