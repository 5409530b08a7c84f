// Package eventbus wraps the NATS JetStream transport the gateway payloads
// arrive on behind watermill publisher/subscriber interfaces.
package eventbus

import (
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	wmnats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"
)

// Bus owns the NATS-backed publisher and subscriber pair.
type Bus struct {
	Publisher  message.Publisher
	Subscriber message.Subscriber
}

func natsOptions(logger watermill.LoggerAdapter) []nc.Option {
	return []nc.Option{
		nc.RetryOnFailedConnect(true),
		nc.Timeout(30 * time.Second),
		nc.ReconnectWait(1 * time.Second),
		nc.ErrorHandler(func(_ *nc.Conn, s *nc.Subscription, err error) {
			if s != nil {
				logger.Error("subscription error", err, watermill.LogFields{
					"subject": s.Subject,
					"queue":   s.Queue,
				})
			} else {
				logger.Error("connection error", err, nil)
			}
		}),
	}
}

// New connects to NATS and builds the watermill publisher and subscriber.
func New(natsURL string, logger watermill.LoggerAdapter) (*Bus, error) {
	options := natsOptions(logger)

	jsConfig := wmnats.JetStreamConfig{
		Disabled:      false,
		AutoProvision: true,
	}

	publisher, err := wmnats.NewPublisher(
		wmnats.PublisherConfig{
			URL:               natsURL,
			NatsOptions:       options,
			Marshaler:         &wmnats.NATSMarshaler{},
			JetStream:         jsConfig,
			SubjectCalculator: wmnats.DefaultSubjectCalculator,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	subscriber, err := wmnats.NewSubscriber(
		wmnats.SubscriberConfig{
			URL:               natsURL,
			NatsOptions:       options,
			Unmarshaler:       &wmnats.NATSMarshaler{},
			JetStream:         jsConfig,
			SubjectCalculator: wmnats.DefaultSubjectCalculator,
		},
		logger,
	)
	if err != nil {
		publisher.Close()
		return nil, fmt.Errorf("failed to create NATS subscriber: %w", err)
	}

	return &Bus{
		Publisher:  publisher,
		Subscriber: subscriber,
	}, nil
}

// Close shuts both halves down.
func (b *Bus) Close() error {
	var firstErr error
	if err := b.Publisher.Close(); err != nil {
		firstErr = err
	}
	if err := b.Subscriber.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
