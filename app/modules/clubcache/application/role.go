package clubcacheservice

import (
	"context"
	"log/slog"

	"github.com/Black-And-White-Club/club-mirror/internal/payload"
)

// HandleRoleCreate inserts or merges a role under its owning club.
func (s *ClubCacheService) HandleRoleCreate(ctx context.Context, p *payload.RoleScoped) error {
	return s.withMerge(ctx, "HandleRoleCreate", p.ClubID, func(ctx context.Context) error {
		club, ok := s.club(ctx, "HandleRoleCreate", p.ClubID)
		if !ok {
			return nil
		}
		if _, err := club.Roles.Add(p.Role.ID, p.Role); err != nil {
			return err
		}
		s.metrics.RecordMerge("role")
		return nil
	})
}

// HandleRoleUpdate merges a role patch into an existing role.
func (s *ClubCacheService) HandleRoleUpdate(ctx context.Context, p *payload.RoleScoped) error {
	return s.withMerge(ctx, "HandleRoleUpdate", p.ClubID, func(ctx context.Context) error {
		club, ok := s.club(ctx, "HandleRoleUpdate", p.ClubID)
		if !ok {
			return nil
		}
		if _, ok := club.Roles.Update(p.Role.ID, p.Role); !ok {
			s.metrics.RecordAnomaly("unknown_role")
			s.logger.WarnContext(ctx, "update for unknown role dropped",
				slog.String("club_id", p.ClubID.String()),
				slog.String("role_id", p.Role.ID.String()),
			)
			return nil
		}
		s.metrics.RecordMerge("role")
		return nil
	})
}

// HandleRoleDelete removes a role. Members keep the stale id in their role
// list; permission resolution skips ids that no longer resolve.
func (s *ClubCacheService) HandleRoleDelete(ctx context.Context, p *payload.RoleDelete) error {
	return s.withMerge(ctx, "HandleRoleDelete", p.ClubID, func(ctx context.Context) error {
		club, ok := s.club(ctx, "HandleRoleDelete", p.ClubID)
		if !ok {
			return nil
		}
		club.Roles.Delete(p.RoleID)
		return nil
	})
}
