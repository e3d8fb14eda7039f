package plugins

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()

	val, err := cache.Get(ctx, "missing")
	assert.NoError(t, err)
	assert.Equal(t, "", val)

	assert.NoError(t, cache.SetEx(ctx, "k", "v", time.Minute))
	val, err = cache.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, "v", val)
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()

	assert.NoError(t, cache.SetEx(ctx, "k", "v", -time.Second))
	val, err := cache.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, "", val)
}

func TestSingleLock(t *testing.T) {
	lock := NewSingleLock()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ok, err := lock.TryLock(ctx, "key")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = lock.TryLock(ctx, "key")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = lock.TryLock(ctx, "other")
	assert.NoError(t, err)
	assert.True(t, ok)
}
