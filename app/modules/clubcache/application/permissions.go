package clubcacheservice

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Black-And-White-Club/club-mirror/clubstate"
	"github.com/Black-And-White-Club/club-mirror/internal/snowflake"
)

// ResolveClubPermissions computes a member's club-scope permissions: the
// everyone base plus the member's roles, with owner and administrator
// short-circuiting to the full mask.
func (s *ClubCacheService) ResolveClubPermissions(ctx context.Context, clubID, memberID snowflake.ID) (clubstate.Permissions, error) {
	ctx, span := s.tracer.Start(ctx, "ResolveClubPermissions", trace.WithAttributes(
		attribute.String("club_id", clubID.String()),
		attribute.String("member_id", memberID.String()),
	))
	defer span.End()

	start := time.Now()
	defer func() { s.metrics.RecordPermissionResolution("club", time.Since(start)) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	club, ok := s.store.Club(clubID)
	if !ok {
		return 0, ErrClubNotFound
	}
	perms, ok := club.PermissionsOfID(memberID)
	if !ok {
		return 0, ErrMemberNotFound
	}
	return perms, nil
}

// ResolveChannelPermissions computes a member's effective permissions in one
// channel: the club-scope mask with the channel's overwrites applied on top.
func (s *ClubCacheService) ResolveChannelPermissions(ctx context.Context, clubID, channelID, memberID snowflake.ID) (clubstate.Permissions, error) {
	ctx, span := s.tracer.Start(ctx, "ResolveChannelPermissions", trace.WithAttributes(
		attribute.String("club_id", clubID.String()),
		attribute.String("channel_id", channelID.String()),
		attribute.String("member_id", memberID.String()),
	))
	defer span.End()

	start := time.Now()
	defer func() { s.metrics.RecordPermissionResolution("channel", time.Since(start)) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	club, ok := s.store.Club(clubID)
	if !ok {
		return 0, ErrClubNotFound
	}
	channel, ok := club.Channels.Get(channelID)
	if !ok {
		return 0, ErrChannelNotFound
	}
	perms, ok := channel.PermissionsOfID(memberID)
	if !ok {
		return 0, ErrMemberNotFound
	}
	return perms, nil
}

// ClubSnapshot serializes the cached club aggregate for the read API.
func (s *ClubCacheService) ClubSnapshot(ctx context.Context, clubID snowflake.ID) ([]byte, error) {
	_, span := s.tracer.Start(ctx, "ClubSnapshot", trace.WithAttributes(
		attribute.String("club_id", clubID.String()),
	))
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	club, ok := s.store.Club(clubID)
	if !ok {
		return nil, ErrClubNotFound
	}
	return club.MarshalJSON()
}
