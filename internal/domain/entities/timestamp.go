package entities

import (
	"fmt"
	"time"
)

// TimestampLayout renders as "UTC 2006-01-02 15:04:05".
const TimestampLayout = "UTC 2006-01-02 15:04:05"

// Clock returns the current time. It is injected so flows can be tested with a fixed instant.
type Clock func() time.Time

// NewSystemClock returns a Clock backed by time.Now.
func NewSystemClock() Clock {
	return time.Now
}

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// CommitMessage builds the auto-generated commit message. The system name is
// appended only when non-empty (device pushes).
func CommitMessage(t time.Time, systemName string) string {
	msg := "Commit " + FormatTimestamp(t)
	if systemName != "" {
		msg = fmt.Sprintf("%s (%s)", msg, systemName)
	}
	return msg
}
