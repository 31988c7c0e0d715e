package utils

import "time"

// ISO8601 is the timestamp layout used for createdAt fields.
const ISO8601 = "2006-01-02T15:04:05.000Z07:00"

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns T; tests advance it by assigning.
type FixedClock struct {
	T time.Time
}

func (c *FixedClock) Now() time.Time {
	return c.T
}

// Timestamp formats t in UTC.
func Timestamp(t time.Time) string {
	return t.UTC().Format(ISO8601)
}

// ParseTimestamp accepts both millisecond and plain RFC 3339 strings.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(ISO8601, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
