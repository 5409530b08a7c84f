package clubstate

import (
	"log/slog"

	"github.com/Black-And-White-Club/club-mirror/internal/payload"
	"github.com/Black-And-White-Club/club-mirror/internal/snowflake"
)

// VoiceConnector receives fire-and-forget voice reconnect requests on behalf
// of the gateway collaborator.
type VoiceConnector interface {
	RequestVoiceConnect(clubID, channelID snowflake.ID)
}

// DiagnosticSink observes anomaly events in addition to the store's own
// logging. Optional; used to feed metrics.
type DiagnosticSink func(ev DiagnosticEvent)

// StoreConfig configures the process-wide store.
type StoreConfig struct {
	Logger      *slog.Logger
	ShardCount  int
	LocalUserID snowflake.ID
	// FullCaching applies voice-state bootstrapping eagerly during club
	// snapshots. Leave false when channels stream in separately.
	FullCaching bool
	Voice       VoiceConnector
	Sink        DiagnosticSink
}

// Store is the process-wide cache root: the club registry, the shared user
// registry, and the Context implementation entities resolve their weak
// back-references through. The store itself is unsynchronized, matching the
// single-consumer merge discipline; hosts with parallel dispatch wrap it.
type Store struct {
	clubs *Registry[*Club, payload.Club]
	users *Registry[*User, payload.User]

	logger      *slog.Logger
	shardCount  int
	localUserID snowflake.ID
	fullCaching bool
	voice       VoiceConnector
	sink        DiagnosticSink
}

var _ Context = (*Store)(nil)

// NewStore creates an empty store.
func NewStore(cfg StoreConfig) *Store {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	shardCount := cfg.ShardCount
	if shardCount < 1 {
		shardCount = 1
	}
	s := &Store{
		users:       NewRegistry(NewUser),
		logger:      logger,
		shardCount:  shardCount,
		localUserID: cfg.LocalUserID,
		fullCaching: cfg.FullCaching,
		voice:       cfg.Voice,
		sink:        cfg.Sink,
	}
	s.clubs = NewRegistry(func(id snowflake.ID, p payload.Club) (*Club, error) {
		return NewClub(s, id, p)
	})
	return s
}

// Club implements Context.
func (s *Store) Club(id snowflake.ID) (*Club, bool) {
	return s.clubs.Get(id)
}

// Clubs returns the process-wide club registry.
func (s *Store) Clubs() *Registry[*Club, payload.Club] {
	return s.clubs
}

// Users implements Context.
func (s *Store) Users() *Registry[*User, payload.User] {
	return s.users
}

// ShardID implements Context using the platform's sharding formula: the
// timestamp bits of the club id modulo the shard count.
func (s *Store) ShardID(clubID snowflake.ID) int {
	return int((uint64(clubID) >> 22) % uint64(s.shardCount))
}

// FullCaching implements Context.
func (s *Store) FullCaching() bool {
	return s.fullCaching
}

// LocalUserID implements Context.
func (s *Store) LocalUserID() snowflake.ID {
	return s.localUserID
}

// Diagnostic implements Context: anomalies are logged with their club and
// shard attribution and forwarded to the sink when one is set.
func (s *Store) Diagnostic(ev DiagnosticEvent) {
	s.logger.Warn("cache anomaly",
		slog.String("kind", ev.Kind),
		slog.String("club_id", ev.ClubID.String()),
		slog.Int("shard_id", ev.ShardID),
		slog.String("member_id", ev.MemberID.String()),
		slog.String("channel_id", ev.ChannelID.String()),
		slog.String("detail", ev.Message),
	)
	if s.sink != nil {
		s.sink(ev)
	}
}

// RequestVoiceConnect implements Context. With no connector configured the
// request is dropped; the cache stays consistent either way.
func (s *Store) RequestVoiceConnect(clubID, channelID snowflake.ID) {
	if s.voice == nil {
		return
	}
	s.voice.RequestVoiceConnect(clubID, channelID)
}

// UpsertClub constructs or merges a club from a snapshot payload.
func (s *Store) UpsertClub(p payload.Club) (*Club, error) {
	club, err := s.clubs.Add(p.ID, p)
	if err != nil {
		return nil, err
	}
	s.dispatchPendingReconnect(club)
	return club, nil
}

// PatchClub merges a partial payload into an existing club, reporting false
// when the club is unknown.
func (s *Store) PatchClub(p payload.Club) (*Club, bool) {
	club, ok := s.clubs.Update(p.ID, p)
	if !ok {
		return nil, false
	}
	s.dispatchPendingReconnect(club)
	return club, true
}

// dispatchPendingReconnect fires a reconnect request recorded during a merge.
// It runs strictly after the registry insert, so the connector always sees
// the club through the store.
func (s *Store) dispatchPendingReconnect(club *Club) {
	if channelID, ok := club.TakePendingReconnect(); ok {
		s.RequestVoiceConnect(club.EntityID(), channelID)
	}
}

// MarkClubUnavailable flags the club temporarily unreachable without
// discarding its cached graph.
func (s *Store) MarkClubUnavailable(id snowflake.ID) bool {
	club, ok := s.clubs.Get(id)
	if !ok {
		return false
	}
	club.Unavailable = true
	return true
}

// RemoveClub drops a club from the registry entirely, for when the local
// account leaves or is removed.
func (s *Store) RemoveClub(id snowflake.ID) bool {
	return s.clubs.Delete(id)
}
