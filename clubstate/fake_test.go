package clubstate

import (
	"io"
	"log/slog"

	"github.com/Black-And-White-Club/club-mirror/internal/payload"
	"github.com/Black-And-White-Club/club-mirror/internal/snowflake"
)

// ------------------------
// Fake collaborators
// ------------------------

// fakeVoiceConnector records reconnect requests for assertions.
type fakeVoiceConnector struct {
	requests []voiceRequest
}

type voiceRequest struct {
	clubID    snowflake.ID
	channelID snowflake.ID
}

func (f *fakeVoiceConnector) RequestVoiceConnect(clubID, channelID snowflake.ID) {
	f.requests = append(f.requests, voiceRequest{clubID: clubID, channelID: channelID})
}

// lookupVoiceConnector resolves the club through the store at request time,
// recording whether it was already registered when the request fired.
type lookupVoiceConnector struct {
	store      *Store
	requests   []voiceRequest
	registered []bool
}

func (l *lookupVoiceConnector) RequestVoiceConnect(clubID, channelID snowflake.ID) {
	_, ok := l.store.Club(clubID)
	l.registered = append(l.registered, ok)
	l.requests = append(l.requests, voiceRequest{clubID: clubID, channelID: channelID})
}

// diagnosticRecorder collects anomaly events for assertions.
type diagnosticRecorder struct {
	events []DiagnosticEvent
}

func (d *diagnosticRecorder) sink() DiagnosticSink {
	return func(ev DiagnosticEvent) {
		d.events = append(d.events, ev)
	}
}

func (d *diagnosticRecorder) kinds() []string {
	out := make([]string, 0, len(d.events))
	for _, ev := range d.events {
		out = append(out, ev.Kind)
	}
	return out
}

type storeOption func(*StoreConfig)

func withVoice(v VoiceConnector) storeOption {
	return func(cfg *StoreConfig) { cfg.Voice = v }
}

func withSink(sink DiagnosticSink) storeOption {
	return func(cfg *StoreConfig) { cfg.Sink = sink }
}

func withLocalUser(id snowflake.ID) storeOption {
	return func(cfg *StoreConfig) { cfg.LocalUserID = id }
}

func withoutFullCaching() storeOption {
	return func(cfg *StoreConfig) { cfg.FullCaching = false }
}

// newTestStore builds a quiet store with full caching enabled by default.
func newTestStore(opts ...storeOption) *Store {
	cfg := StoreConfig{
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		ShardCount:  2,
		FullCaching: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewStore(cfg)
}

// ------------------------
// Payload builders
// ------------------------

func userPayload(id snowflake.ID, name string) *payload.User {
	return &payload.User{
		ID:       id,
		Username: payload.Some(name),
	}
}

func memberPayload(userID snowflake.ID, name string, roles ...snowflake.ID) payload.Member {
	m := payload.Member{User: userPayload(userID, name)}
	if len(roles) > 0 {
		m.Roles = payload.Some(roles)
	}
	return m
}

func rolePayload(id snowflake.ID, name string, perms Permissions) payload.Role {
	return payload.Role{
		ID:          id,
		Name:        payload.Some(name),
		Permissions: payload.Some(uint64(perms)),
	}
}

func channelPayload(id snowflake.ID, name string, overwrites ...payload.Overwrite) payload.Channel {
	cp := payload.Channel{
		ID:   id,
		Name: payload.Some(name),
	}
	if overwrites != nil {
		cp.PermissionOverwrites = payload.Some(overwrites)
	}
	return cp
}

func overwritePayload(id snowflake.ID, kind OverwriteType, allow, deny Permissions) payload.Overwrite {
	return payload.Overwrite{
		ID:    id,
		Type:  string(kind),
		Allow: uint64(allow),
		Deny:  uint64(deny),
	}
}

func voicePayload(userID, channelID snowflake.ID) payload.VoiceState {
	return payload.VoiceState{
		UserID:    userID,
		ChannelID: payload.Some(channelID),
	}
}

func voiceDisconnectPayload(userID snowflake.ID) payload.VoiceState {
	return payload.VoiceState{
		UserID:    userID,
		ChannelID: payload.Null[snowflake.ID](),
		Mute:      payload.Some(false),
		Deaf:      payload.Some(false),
		Suppress:  payload.Some(false),
	}
}
