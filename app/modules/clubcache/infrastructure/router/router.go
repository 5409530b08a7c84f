package clubcacherouter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.opentelemetry.io/otel/trace"

	clubcacheservice "github.com/Black-And-White-Club/club-mirror/app/modules/clubcache/application"
	clubcacheevents "github.com/Black-And-White-Club/club-mirror/app/modules/clubcache/events"
	clubcachehandlers "github.com/Black-And-White-Club/club-mirror/app/modules/clubcache/infrastructure/handlers"
	"github.com/Black-And-White-Club/club-mirror/internal/handlerwrapper"
)

// ClubCacheRouter subscribes the cache handlers to the gateway dispatch
// topics.
type ClubCacheRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber message.Subscriber
	publisher  message.Publisher
	tracer     trace.Tracer
}

// NewClubCacheRouter creates a new ClubCacheRouter.
func NewClubCacheRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber message.Subscriber,
	publisher message.Publisher,
	tracer trace.Tracer,
) *ClubCacheRouter {
	return &ClubCacheRouter{
		logger:     logger,
		Router:     router,
		subscriber: subscriber,
		publisher:  publisher,
		tracer:     tracer,
	}
}

// Configure sets up middleware and registers the dispatch handlers.
func (r *ClubCacheRouter) Configure(ctx context.Context, service clubcacheservice.Service) error {
	handlers := clubcachehandlers.NewClubCacheHandlers(service, r.logger)

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
	)

	if err := r.RegisterHandlers(ctx, handlers); err != nil {
		return fmt.Errorf("failed to register handlers: %w", err)
	}
	return nil
}

type handlerDeps struct {
	router     *message.Router
	subscriber message.Subscriber
	publisher  message.Publisher
	logger     *slog.Logger
	tracer     trace.Tracer
}

// registerHandler registers a typed dispatch handler on one topic.
func registerHandler[T any](
	deps handlerDeps,
	topic string,
	handler func(context.Context, *T) ([]handlerwrapper.Result, error),
) {
	handlerName := "clubcache." + topic

	deps.router.AddHandler(
		handlerName,
		topic,
		deps.subscriber,
		"", // Watermill reads topic from message metadata when empty
		deps.publisher,
		handlerwrapper.WrapTyped(
			handlerName,
			deps.logger,
			deps.tracer,
			handler,
		),
	)
}

// RegisterHandlers wires every gateway dispatch topic to its handler.
func (r *ClubCacheRouter) RegisterHandlers(ctx context.Context, handlers clubcachehandlers.Handlers) error {
	deps := handlerDeps{
		router:     r.Router,
		subscriber: r.subscriber,
		publisher:  r.publisher,
		logger:     r.logger,
		tracer:     r.tracer,
	}

	registerHandler(deps, clubcacheevents.ClubCreateV1, handlers.HandleClubCreate)
	registerHandler(deps, clubcacheevents.ClubUpdateV1, handlers.HandleClubUpdate)
	registerHandler(deps, clubcacheevents.ClubDeleteV1, handlers.HandleClubDelete)
	registerHandler(deps, clubcacheevents.ChannelCreateV1, handlers.HandleChannelCreate)
	registerHandler(deps, clubcacheevents.ChannelUpdateV1, handlers.HandleChannelUpdate)
	registerHandler(deps, clubcacheevents.ChannelDeleteV1, handlers.HandleChannelDelete)
	registerHandler(deps, clubcacheevents.MemberAddV1, handlers.HandleMemberAdd)
	registerHandler(deps, clubcacheevents.MemberUpdateV1, handlers.HandleMemberUpdate)
	registerHandler(deps, clubcacheevents.MemberRemoveV1, handlers.HandleMemberRemove)
	registerHandler(deps, clubcacheevents.RoleCreateV1, handlers.HandleRoleCreate)
	registerHandler(deps, clubcacheevents.RoleUpdateV1, handlers.HandleRoleUpdate)
	registerHandler(deps, clubcacheevents.RoleDeleteV1, handlers.HandleRoleDelete)
	registerHandler(deps, clubcacheevents.VoiceStateUpdateV1, handlers.HandleVoiceStateUpdate)
	registerHandler(deps, clubcacheevents.PresenceUpdateV1, handlers.HandlePresenceUpdate)

	return nil
}

// Close stops the router.
func (r *ClubCacheRouter) Close() error {
	return r.Router.Close()
}
