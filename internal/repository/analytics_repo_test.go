package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewIncrementCoversDailyBucketAtomically(t *testing.T) {
	inc := viewIncrement("search", "2026-08-31")

	// One $inc document creates and bumps the day's bucket; a separate
	// insert step would let two first-of-day writers duplicate the bucket.
	require.Len(t, inc, 3)
	assert.Equal(t, int64(1), inc["views"])
	assert.Equal(t, int64(1), inc["view_sources.search"])
	assert.Equal(t, int64(1), inc["daily.2026-08-31.views"])
}

func TestApplicationIncrementCoversDailyBucketAtomically(t *testing.T) {
	inc := applicationIncrement("2026-08-31", "Berlin", []string{"Go", "Node.js"})

	assert.Equal(t, int64(1), inc["applications"])
	assert.Equal(t, int64(1), inc["daily.2026-08-31.applications"])
	assert.Equal(t, int64(1), inc["location_rollup.berlin"])
	assert.Equal(t, int64(1), inc["skill_rollup.go"])
	assert.Equal(t, int64(1), inc["skill_rollup.node_js"])
}

func TestApplicationIncrementSkipsEmptyLocation(t *testing.T) {
	inc := applicationIncrement("2026-08-31", "", nil)

	require.Len(t, inc, 2)
	assert.Equal(t, int64(1), inc["applications"])
	assert.Equal(t, int64(1), inc["daily.2026-08-31.applications"])
}
