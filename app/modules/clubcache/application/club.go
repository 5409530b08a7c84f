package clubcacheservice

import (
	"context"
	"log/slog"

	"github.com/Black-And-White-Club/club-mirror/internal/payload"
)

// HandleClubCreate installs a club snapshot, constructing it if this is the
// first sighting and merging into the cached aggregate otherwise. The gateway
// replays club creates after every reconnect, so this path must be idempotent.
func (s *ClubCacheService) HandleClubCreate(ctx context.Context, p *payload.Club) error {
	return s.withMerge(ctx, "HandleClubCreate", p.ID, func(ctx context.Context) error {
		club, err := s.store.UpsertClub(*p)
		if err != nil {
			return err
		}
		s.metrics.RecordMerge("club")
		s.logger.InfoContext(ctx, "club snapshot merged",
			slog.String("club_id", p.ID.String()),
			slog.Int("channels", club.Channels.Len()),
			slog.Int("members", club.Members.Len()),
			slog.Int("roles", club.Roles.Len()),
		)
		return nil
	})
}

// HandleClubUpdate merges a partial club patch into an existing aggregate.
// Patches for clubs that were never created are dropped.
func (s *ClubCacheService) HandleClubUpdate(ctx context.Context, p *payload.Club) error {
	return s.withMerge(ctx, "HandleClubUpdate", p.ID, func(ctx context.Context) error {
		if _, ok := s.store.PatchClub(*p); !ok {
			s.metrics.RecordAnomaly("unknown_club")
			s.logger.WarnContext(ctx, "update for unknown club dropped",
				slog.String("club_id", p.ID.String()),
			)
			return nil
		}
		s.metrics.RecordMerge("club")
		return nil
	})
}

// HandleClubDelete removes the club, or only marks it unavailable when the
// dispatch says the outage is temporary.
func (s *ClubCacheService) HandleClubDelete(ctx context.Context, p *payload.ClubDelete) error {
	return s.withMerge(ctx, "HandleClubDelete", p.ID, func(ctx context.Context) error {
		if p.Unavailable.Present() && !p.Unavailable.IsNull() && p.Unavailable.Value() {
			if s.store.MarkClubUnavailable(p.ID) {
				s.logger.InfoContext(ctx, "club marked unavailable",
					slog.String("club_id", p.ID.String()),
				)
			}
			return nil
		}
		if s.store.RemoveClub(p.ID) {
			s.logger.InfoContext(ctx, "club removed",
				slog.String("club_id", p.ID.String()),
			)
		}
		return nil
	})
}
