package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arnav-motiramani/daily-doodles/pkg/types"
)

func TestAggregateStatsEmpty(t *testing.T) {
	stats := aggregateStats(nil)

	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0, stats.Streak)
	assert.Equal(t, types.DEFAULT_PRIMARY_MOOD, stats.PrimaryMood)
	assert.Equal(t, int64(0), stats.LastWrittenAt)
}

func TestAggregateStatsMoodlessEntries(t *testing.T) {
	stats := aggregateStats([]types.Entry{
		{ID: "a", CreatedAt: 300},
		{ID: "b", CreatedAt: 200},
	})

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 2, stats.Streak)
	assert.Equal(t, types.DEFAULT_PRIMARY_MOOD, stats.PrimaryMood)
	assert.Equal(t, int64(300), stats.LastWrittenAt)
}

func TestAggregateStatsPrimaryMood(t *testing.T) {
	stats := aggregateStats([]types.Entry{
		{ID: "a", Mood: "Calm", CreatedAt: 500},
		{ID: "b", Mood: "Anxious", CreatedAt: 400},
		{ID: "c", Mood: "Calm", CreatedAt: 300},
		{ID: "d", Mood: "", CreatedAt: 200},
	})

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, "Calm", stats.PrimaryMood)
	assert.Equal(t, int64(500), stats.LastWrittenAt)
}

func TestAggregateStatsMoodTieKeepsFirstSeen(t *testing.T) {
	stats := aggregateStats([]types.Entry{
		{ID: "a", Mood: "Hopeful", CreatedAt: 300},
		{ID: "b", Mood: "Tired", CreatedAt: 200},
		{ID: "c", Mood: "Tired", CreatedAt: 100},
		{ID: "d", Mood: "Hopeful", CreatedAt: 50},
	})

	assert.Equal(t, "Hopeful", stats.PrimaryMood)
}
