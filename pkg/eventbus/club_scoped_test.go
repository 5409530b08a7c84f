package eventbus

import (
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturePublisher struct {
	topic string
}

func (c *capturePublisher) Publish(topic string, _ ...*message.Message) error {
	c.topic = topic
	return nil
}

func (c *capturePublisher) Close() error { return nil }

func TestFormatClubScopedTopic(t *testing.T) {
	assert.Equal(t, "gateway.command.voice_connect.v1.123",
		FormatClubScopedTopic("gateway.command.voice_connect.v1", "123"))
}

func TestPublishWithClubScope(t *testing.T) {
	pub := &capturePublisher{}

	err := PublishWithClubScope(pub, "base.topic.v1", "42", message.NewMessage("id", nil))

	require.NoError(t, err)
	assert.Equal(t, "base.topic.v1.42", pub.topic)
}

func TestPublishWithClubScope_EmptyClubID(t *testing.T) {
	err := PublishWithClubScope(&capturePublisher{}, "base.topic.v1", "", message.NewMessage("id", nil))

	assert.Error(t, err)
}
