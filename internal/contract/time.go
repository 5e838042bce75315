package contract

import (
	"fmt"
	"strconv"
	"time"
)

// DateFormat is the accepted absolute date representation.
const DateFormat = "2006-01-02"

// DateTimeFormat is the display representation for precise timestamps.
const DateTimeFormat = "2006-01-02 15:04:05"

// FormatTimestamp renders a Unix timestamp for display in UTC.
func FormatTimestamp(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(DateTimeFormat)
}

// ParseDateBound converts a user-supplied date string into an inclusive Unix
// timestamp bound. Accepted forms:
//
//	absolute: 2026-01-15
//	relative: 30d, 4w, 6m, 1y (back from now)
//
// Absolute since bounds snap to 00:00:00 UTC and until bounds to 23:59:59 UTC
// so that a single date covers the whole day.
func ParseDateBound(s string, now time.Time, endOfDay bool) (int64, error) {
	if t, err := time.ParseInLocation(DateFormat, s, time.UTC); err == nil {
		if endOfDay {
			t = t.Add(24*time.Hour - time.Second)
		}
		return t.Unix(), nil
	}

	d, err := parseRelativeSpan(s)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or a relative span like 30d, 4w, 6m, 1y", s)
	}
	return now.Add(-d).Unix(), nil
}

// parseRelativeSpan parses spans of the form <number><unit> where unit is
// d (days), w (weeks), m (months of 30 days), or y (years of 365 days).
func parseRelativeSpan(s string) (time.Duration, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("span too short: %q", s)
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid span count in %q", s)
	}

	day := 24 * time.Hour
	switch s[len(s)-1] {
	case 'd':
		return time.Duration(n) * day, nil
	case 'w':
		return time.Duration(n) * 7 * day, nil
	case 'm':
		return time.Duration(n) * 30 * day, nil
	case 'y':
		return time.Duration(n) * 365 * day, nil
	default:
		return 0, fmt.Errorf("invalid span unit in %q", s)
	}
}

// ValidateRange rejects inverted time ranges before any walk starts.
func ValidateRange(since, until *int64) error {
	if since != nil && until != nil && *since > *until {
		return fmt.Errorf("range is empty: since (%d) is after until (%d)", *since, *until)
	}
	return nil
}
