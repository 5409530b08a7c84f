// Package handlerwrapper adapts typed payload handlers to watermill's
// message.HandlerFunc: JSON decode in, []Result out, with tracing and
// logging around the call.
package handlerwrapper

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// Result is one outbound message produced by a handler: the topic to publish
// on and the payload to marshal.
type Result struct {
	Topic    string
	Payload  any
	Metadata map[string]string
}

// WrapTyped decodes the incoming message into T, runs the handler inside a
// span, and marshals every Result into an outbound message. Decode failures
// are logged and dropped rather than retried: a malformed payload never gets
// better.
func WrapTyped[T any](
	name string,
	logger *slog.Logger,
	tracer trace.Tracer,
	handler func(ctx context.Context, payload *T) ([]Result, error),
) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		ctx, span := tracer.Start(msg.Context(), name)
		defer span.End()

		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			logger.ErrorContext(ctx, "dropping undecodable payload",
				slog.String("handler", name),
				slog.String("message_uuid", msg.UUID),
				slog.String("error", err.Error()),
			)
			return nil, nil
		}

		results, err := handler(ctx, &payload)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		out := make([]*message.Message, 0, len(results))
		for _, res := range results {
			raw, err := json.Marshal(res.Payload)
			if err != nil {
				return nil, fmt.Errorf("%s: marshal result for %s: %w", name, res.Topic, err)
			}
			outMsg := message.NewMessage(uuid.New().String(), raw)
			outMsg.Metadata.Set("topic", res.Topic)
			if corr := middleware.MessageCorrelationID(msg); corr != "" {
				middleware.SetCorrelationID(corr, outMsg)
			}
			for k, v := range res.Metadata {
				outMsg.Metadata.Set(k, v)
			}
			out = append(out, outMsg)
		}
		return out, nil
	}
}
