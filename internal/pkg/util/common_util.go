package util

import (
	"strings"
	"time"
)

// DateKey formats a time as the calendar-date key used for daily buckets.
// The format contains no dots or dollars, so it is usable in an update path.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Midnight truncates a time to the start of its UTC calendar day.
func Midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SanitizeMapKey makes a free-text value safe as a MongoDB document key.
// Dots start subdocument paths and dollar signs start operators.
func SanitizeMapKey(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.ReplaceAll(s, ".", "_")
	s = strings.ReplaceAll(s, "$", "_")
	if s == "" {
		return "unknown"
	}
	return s
}

// Truncate shortens s to max runes, appending an ellipsis when cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
