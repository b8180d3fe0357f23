package daykey

import (
	"fmt"
	"time"
)

const layout = "2006-01-02"

// DayKey identifies one calendar day with the time of day stripped.
// Keys compare chronologically under plain string ordering. The zero
// value means "no day".
type DayKey string

// FromTime returns the key for t's calendar date.
func FromTime(t time.Time) DayKey {
	return DayKey(t.Format(layout))
}

// Today returns the key for the current local date.
func Today() DayKey {
	return FromTime(time.Now())
}

// Parse validates s as a canonical day key. Ingestion boundaries
// (persisted state, request payloads) should use this rather than
// casting, so malformed dates surface as errors instead of producing an
// invalid key.
func Parse(s string) (DayKey, error) {
	t, err := time.ParseInLocation(layout, s, time.UTC)
	if err != nil {
		return "", fmt.Errorf("invalid day key %q: %w", s, err)
	}
	return FromTime(t), nil
}

// IsZero reports whether d is the absent day.
func (d DayKey) IsZero() bool {
	return d == ""
}

func (d DayKey) String() string {
	return string(d)
}

// Time returns midnight UTC of d's date. Anchoring arithmetic to UTC
// keeps day spans exact across DST transitions.
func (d DayKey) Time() time.Time {
	t, _ := time.ParseInLocation(layout, string(d), time.UTC)
	return t
}

// AddDays returns the key n calendar days after d; n may be negative.
// Month and year boundaries are handled by the underlying calendar.
func (d DayKey) AddDays(n int) DayKey {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// Weekday reports d's day of week, Sunday=0.
func (d DayKey) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Before reports whether d falls strictly before other.
func (d DayKey) Before(other DayKey) bool {
	return d < other
}

// SameDay reports whether a and b name the same calendar date. It is
// false when either side is absent.
func SameDay(a, b DayKey) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	return a == b
}

// DaysBetween returns the whole-day span from a to b, positive when b is
// the later day.
func DaysBetween(a, b DayKey) int {
	return int(b.Time().Sub(a.Time()) / (24 * time.Hour))
}
