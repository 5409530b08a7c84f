package clubcacheservice

import (
	"context"
	"log/slog"

	"github.com/Black-And-White-Club/club-mirror/internal/payload"
)

// HandleChannelCreate inserts or merges a channel under its owning club.
// New channels also flush any voice states parked while the channel was
// unknown.
func (s *ClubCacheService) HandleChannelCreate(ctx context.Context, p *payload.Channel) error {
	clubID := p.ClubID.Value()
	return s.withMerge(ctx, "HandleChannelCreate", clubID, func(ctx context.Context) error {
		club, ok := s.club(ctx, "HandleChannelCreate", clubID)
		if !ok {
			return nil
		}
		if _, err := club.Channels.Add(p.ID, *p); err != nil {
			return err
		}
		club.FlushPendingVoiceStates()
		s.metrics.RecordMerge("channel")
		return nil
	})
}

// HandleChannelUpdate merges a channel patch. Unknown channels are dropped:
// a later create snapshot will carry the full state anyway.
func (s *ClubCacheService) HandleChannelUpdate(ctx context.Context, p *payload.Channel) error {
	clubID := p.ClubID.Value()
	return s.withMerge(ctx, "HandleChannelUpdate", clubID, func(ctx context.Context) error {
		club, ok := s.club(ctx, "HandleChannelUpdate", clubID)
		if !ok {
			return nil
		}
		if _, ok := club.Channels.Update(p.ID, *p); !ok {
			s.metrics.RecordAnomaly("unknown_channel")
			s.logger.WarnContext(ctx, "update for unknown channel dropped",
				slog.String("club_id", clubID.String()),
				slog.String("channel_id", p.ID.String()),
			)
			return nil
		}
		s.metrics.RecordMerge("channel")
		return nil
	})
}

// HandleChannelDelete removes a channel from its club.
func (s *ClubCacheService) HandleChannelDelete(ctx context.Context, p *payload.ChannelDelete) error {
	clubID := p.ClubID.Value()
	return s.withMerge(ctx, "HandleChannelDelete", clubID, func(ctx context.Context) error {
		club, ok := s.club(ctx, "HandleChannelDelete", clubID)
		if !ok {
			return nil
		}
		club.Channels.Delete(p.ID)
		return nil
	})
}
