// Package snowflake implements the platform's time-embedded 64-bit entity ID.
package snowflake

import (
	"fmt"
	"strconv"
	"time"
)

// Epoch is the platform epoch (2015-01-01T00:00:00Z) in milliseconds.
const Epoch int64 = 1420070400000

// ID is an opaque entity identifier. The top 42 bits encode the creation
// timestamp as milliseconds since Epoch.
type ID uint64

// Parse converts the decimal string form used on the wire into an ID.
func Parse(s string) (ID, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse snowflake %q: %w", s, err)
	}
	return ID(n), nil
}

// IsZero reports whether the ID is unset.
func (id ID) IsZero() bool {
	return id == 0
}

// Time returns the creation timestamp embedded in the ID.
func (id ID) Time() time.Time {
	ms := int64(id>>22) + Epoch
	return time.UnixMilli(ms).UTC()
}

// String returns the decimal wire form.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// MarshalJSON renders the ID as a decimal string, matching the wire format.
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.String() + `"`), nil
}

// UnmarshalJSON accepts either the string or the bare-number wire form.
// A JSON null leaves the ID zero.
func (id *ID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*id = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" {
		*id = 0
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
