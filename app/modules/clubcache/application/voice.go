package clubcacheservice

import (
	"context"

	"github.com/Black-And-White-Club/club-mirror/internal/payload"
)

// HandleVoiceStateUpdate routes a voice state to its club. The club aggregate
// handles the interesting cases itself: full disconnects delete the state,
// unknown members and channels are reported through the diagnostic sink.
func (s *ClubCacheService) HandleVoiceStateUpdate(ctx context.Context, p *payload.VoiceState) error {
	clubID := p.ClubID.Value()
	return s.withMerge(ctx, "HandleVoiceStateUpdate", clubID, func(ctx context.Context) error {
		club, ok := s.club(ctx, "HandleVoiceStateUpdate", clubID)
		if !ok {
			return nil
		}
		if vs := club.ApplyVoiceState(*p); vs != nil {
			s.metrics.RecordMerge("voice_state")
		}
		return nil
	})
}

// HandlePresenceUpdate merges a presence into its member. Presences for
// unknown members are counted and dropped inside the aggregate.
func (s *ClubCacheService) HandlePresenceUpdate(ctx context.Context, p *payload.PresenceScoped) error {
	return s.withMerge(ctx, "HandlePresenceUpdate", p.ClubID, func(ctx context.Context) error {
		club, ok := s.club(ctx, "HandlePresenceUpdate", p.ClubID)
		if !ok {
			return nil
		}
		if club.ApplyPresence(p.Presence) {
			s.metrics.RecordMerge("presence")
		}
		return nil
	})
}
