package clubcacheservice

import (
	"context"
	"log/slog"

	"github.com/Black-And-White-Club/club-mirror/internal/payload"
)

// HandleMemberAdd inserts or merges a member under its owning club. A member
// payload whose user block is missing cannot be constructed and is surfaced
// as an error so the gateway side can see its feed is malformed.
func (s *ClubCacheService) HandleMemberAdd(ctx context.Context, p *payload.MemberScoped) error {
	return s.withMerge(ctx, "HandleMemberAdd", p.ClubID, func(ctx context.Context) error {
		club, ok := s.club(ctx, "HandleMemberAdd", p.ClubID)
		if !ok {
			return nil
		}
		if _, err := club.UpsertMember(p.Member); err != nil {
			return err
		}
		s.metrics.RecordMerge("member")
		return nil
	})
}

// HandleMemberUpdate merges a member patch. Updates for members the cache has
// never seen fall back to an insert when the payload is complete enough.
func (s *ClubCacheService) HandleMemberUpdate(ctx context.Context, p *payload.MemberScoped) error {
	return s.withMerge(ctx, "HandleMemberUpdate", p.ClubID, func(ctx context.Context) error {
		club, ok := s.club(ctx, "HandleMemberUpdate", p.ClubID)
		if !ok {
			return nil
		}
		if _, err := club.UpsertMember(p.Member); err != nil {
			return err
		}
		s.metrics.RecordMerge("member")
		return nil
	})
}

// HandleMemberRemove deletes a member and any voice state it held. The user
// entry stays in the shared user registry: other clubs may still reference it.
func (s *ClubCacheService) HandleMemberRemove(ctx context.Context, p *payload.MemberRemove) error {
	return s.withMerge(ctx, "HandleMemberRemove", p.ClubID, func(ctx context.Context) error {
		club, ok := s.club(ctx, "HandleMemberRemove", p.ClubID)
		if !ok {
			return nil
		}
		if p.User == nil {
			s.metrics.RecordAnomaly("member_remove_without_user")
			s.logger.WarnContext(ctx, "member remove without user block dropped",
				slog.String("club_id", p.ClubID.String()),
			)
			return nil
		}
		club.VoiceStates.Delete(p.User.ID)
		club.Members.Delete(p.User.ID)
		return nil
	})
}
