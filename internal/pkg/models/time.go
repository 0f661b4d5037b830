package models

import (
	"time"
)

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// Clock returns the current time. Services take one so tests can pin time.
type Clock func() time.Time

// UnixMilli converts t to epoch milliseconds, the wire format used for event timestamps
func UnixMilli(t time.Time) int64 {
	return t.UTC().UnixMilli()
}
