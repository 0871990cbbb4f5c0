package tesla

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(16)

	entry := &CacheEntry{Data: []byte("payload"), ExpiresAt: time.Now().Add(time.Minute)}
	require.NoError(t, cache.Set(ctx, "key", entry))

	got, err := cache.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got.Data)
	assert.True(t, cache.Has(ctx, "key"))
}

func TestMemoryCache_Miss(t *testing.T) {
	cache := NewMemoryCache(16)

	_, err := cache.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCacheKeyNotFound)
	assert.False(t, cache.Has(context.Background(), "missing"))
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(16)

	entry := &CacheEntry{Data: []byte("stale"), ExpiresAt: time.Now().Add(-time.Second)}
	require.NoError(t, cache.Set(ctx, "key", entry))

	_, err := cache.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrCacheEntryExpired)
	assert.False(t, cache.Has(ctx, "key"))

	// The expired entry is dropped on read.
	_, err = cache.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrCacheKeyNotFound)
}

func TestMemoryCache_EvictsAtCapacity(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(2)

	fresh := func() *CacheEntry {
		return &CacheEntry{Data: []byte("x"), ExpiresAt: time.Now().Add(time.Minute)}
	}

	require.NoError(t, cache.Set(ctx, "a", fresh()))
	require.NoError(t, cache.Set(ctx, "b", fresh()))
	require.NoError(t, cache.Set(ctx, "c", fresh()))

	live := 0

	for _, key := range []string{"a", "b", "c"} {
		if cache.Has(ctx, key) {
			live++
		}
	}

	assert.Equal(t, 2, live)
	assert.True(t, cache.Has(ctx, "c"))
}

func TestMemoryCache_EvictsExpiredFirst(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(2)

	require.NoError(t, cache.Set(ctx, "stale", &CacheEntry{Data: []byte("x"), ExpiresAt: time.Now().Add(-time.Second)}))
	require.NoError(t, cache.Set(ctx, "live", &CacheEntry{Data: []byte("x"), ExpiresAt: time.Now().Add(time.Minute)}))
	require.NoError(t, cache.Set(ctx, "new", &CacheEntry{Data: []byte("x"), ExpiresAt: time.Now().Add(time.Minute)}))

	assert.True(t, cache.Has(ctx, "live"))
	assert.True(t, cache.Has(ctx, "new"))
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(16)

	entry := &CacheEntry{Data: []byte("x"), ExpiresAt: time.Now().Add(time.Minute)}
	require.NoError(t, cache.Set(ctx, "a", entry))
	require.NoError(t, cache.Set(ctx, "b", entry))

	require.NoError(t, cache.Delete(ctx, "a"))
	assert.False(t, cache.Has(ctx, "a"))
	assert.True(t, cache.Has(ctx, "b"))

	require.NoError(t, cache.Clear(ctx))
	assert.False(t, cache.Has(ctx, "b"))
}

func TestNoOpCache(t *testing.T) {
	ctx := context.Background()
	cache := NewNoOpCache()

	entry := &CacheEntry{Data: []byte("x"), ExpiresAt: time.Now().Add(time.Minute)}
	require.NoError(t, cache.Set(ctx, "key", entry))

	_, err := cache.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrCacheDisabled)
	assert.False(t, cache.Has(ctx, "key"))
}

func TestCacheEntry_Expired(t *testing.T) {
	assert.False(t, (&CacheEntry{}).Expired(), "zero expiry never expires")
	assert.False(t, (&CacheEntry{ExpiresAt: time.Now().Add(time.Minute)}).Expired())
	assert.True(t, (&CacheEntry{ExpiresAt: time.Now().Add(-time.Minute)}).Expired())
}
