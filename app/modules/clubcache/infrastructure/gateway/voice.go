// Package clubcachegateway publishes commands back toward the gateway daemon.
package clubcachegateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	clubcacheevents "github.com/Black-And-White-Club/club-mirror/app/modules/clubcache/events"
	"github.com/Black-And-White-Club/club-mirror/clubstate"
	"github.com/Black-And-White-Club/club-mirror/internal/snowflake"
	pkgeventbus "github.com/Black-And-White-Club/club-mirror/pkg/eventbus"
)

// VoicePublisher publishes voice connect commands over the event bus. It
// implements clubstate.VoiceConnector. Requests are rate limited so a club
// snapshot storm after a gateway reconnect cannot flood the command subject.
type VoicePublisher struct {
	publisher message.Publisher
	logger    *slog.Logger
	limiter   *rate.Limiter
}

var _ clubstate.VoiceConnector = (*VoicePublisher)(nil)

// NewVoicePublisher creates a VoicePublisher with the given sustained
// request rate.
func NewVoicePublisher(publisher message.Publisher, logger *slog.Logger, requestsPerSecond float64) *VoicePublisher {
	return &VoicePublisher{
		publisher: publisher,
		logger:    logger,
		limiter:   rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// RequestVoiceConnect publishes a voice connect command. The call is
// fire-and-forget from the cache's point of view: failures are logged, never
// surfaced into the merge path. Throttling and the publish itself run on a
// separate goroutine so a slow or rate-limited request never blocks the
// caller, which may hold the cache write lock.
func (v *VoicePublisher) RequestVoiceConnect(clubID, channelID snowflake.ID) {
	go v.publish(clubID, channelID)
}

func (v *VoicePublisher) publish(clubID, channelID snowflake.ID) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := v.limiter.Wait(ctx); err != nil {
		v.logger.Warn("voice connect request dropped by rate limiter",
			slog.String("club_id", clubID.String()),
			slog.String("channel_id", channelID.String()),
		)
		return
	}

	p := clubcacheevents.VoiceConnectRequestPayloadV1{
		RequestID: uuid.New().String(),
		ClubID:    clubID,
		ChannelID: channelID,
	}
	raw, err := json.Marshal(p)
	if err != nil {
		v.logger.Error("failed to marshal voice connect request",
			slog.Any("error", err),
		)
		return
	}

	msg := message.NewMessage(uuid.New().String(), raw)
	if err := pkgeventbus.PublishWithClubScope(v.publisher, clubcacheevents.VoiceConnectRequestV1, clubID.String(), msg); err != nil {
		v.logger.Error("failed to publish voice connect request",
			slog.String("club_id", clubID.String()),
			slog.String("channel_id", channelID.String()),
			slog.Any("error", err),
		)
		return
	}

	v.logger.Info("voice connect requested",
		slog.String("club_id", clubID.String()),
		slog.String("channel_id", channelID.String()),
		slog.String("request_id", p.RequestID),
	)
}
