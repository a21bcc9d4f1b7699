package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	loc := time.FixedZone("UTC-5", -5*3600)
	ts := time.Date(2026, 3, 1, 23, 30, 0, 0, loc)

	assert.Equal(t, "2026-03-02", DateKey(ts))
}

func TestMidnight(t *testing.T) {
	ts := time.Date(2026, 3, 2, 15, 4, 5, 123, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), Midnight(ts))
}

func TestSanitizeMapKey(t *testing.T) {
	assert.Equal(t, "san francisco", SanitizeMapKey("San Francisco"))
	assert.Equal(t, "node_js", SanitizeMapKey("Node.js"))
	assert.Equal(t, "_cash", SanitizeMapKey("$cash"))
	assert.Equal(t, "unknown", SanitizeMapKey("   "))
	assert.Equal(t, "unknown", SanitizeMapKey(""))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abc...", Truncate("abcdef", 3))
	assert.Equal(t, "héllo", Truncate("héllo", 5))
}
