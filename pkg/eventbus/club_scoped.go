// Package eventbus carries topic helpers shared by publishers.
package eventbus

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
)

// PublishWithClubScope publishes an event with a club_id suffix so consumers
// can subscribe per club. It appends the club id to the base topic using the
// pattern: {baseTopic}.{clubID}
//
// Example:
//   - baseTopic: "gateway.command.voice_connect.v1"
//   - clubID: "123456789"
//   - result: "gateway.command.voice_connect.v1.123456789"
//
// Consumers can then subscribe with wildcards:
//   - "gateway.command.voice_connect.v1.*" catches all clubs
//   - "gateway.command.voice_connect.v1.123456789" catches one club
func PublishWithClubScope(publisher message.Publisher, baseTopic string, clubID string, msg *message.Message) error {
	if clubID == "" {
		return fmt.Errorf("clubID cannot be empty for club-scoped publish")
	}

	return publisher.Publish(FormatClubScopedTopic(baseTopic, clubID), msg)
}

// FormatClubScopedTopic formats a topic with a club_id suffix without
// publishing. Useful for generating subscription patterns or testing.
func FormatClubScopedTopic(baseTopic string, clubID string) string {
	return fmt.Sprintf("%s.%s", baseTopic, clubID)
}
