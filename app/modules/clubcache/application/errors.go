package clubcacheservice

import "errors"

// Query-side misses. The HTTP layer maps these to 404s; handlers never see
// them because dispatch merges treat unknown entities as logged anomalies.
var (
	ErrClubNotFound    = errors.New("club not found")
	ErrChannelNotFound = errors.New("channel not found")
	ErrMemberNotFound  = errors.New("member not found")
)
