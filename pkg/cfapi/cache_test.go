package cfapi_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esaiascronelius/cloudflare-ddns/pkg/cfapi"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	t.Parallel()

	cache := cfapi.NewMemoryCache()
	ctx := context.Background()

	entry := &cfapi.CacheEntry{
		Result:   json.RawMessage(`{"id":"zone-1"}`),
		StoredAt: time.Now(),
	}

	err := cache.Set(ctx, "zones", entry)
	require.NoError(t, err)

	retrieved, err := cache.Get(ctx, "zones")
	require.NoError(t, err)
	assert.Equal(t, entry.Result, retrieved.Result)
	assert.Equal(t, entry.StoredAt, retrieved.StoredAt)
}

func TestMemoryCache_GetNonExistent(t *testing.T) {
	t.Parallel()

	cache := cfapi.NewMemoryCache()

	_, err := cache.Get(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, cfapi.ErrCacheMiss)
}

func TestMemoryCache_Overwrite(t *testing.T) {
	t.Parallel()

	cache := cfapi.NewMemoryCache()
	ctx := context.Background()

	first := &cfapi.CacheEntry{Result: json.RawMessage(`"old"`), StoredAt: time.Now().Add(-time.Hour)}
	second := &cfapi.CacheEntry{Result: json.RawMessage(`"new"`), StoredAt: time.Now()}

	require.NoError(t, cache.Set(ctx, "zones", first))
	require.NoError(t, cache.Set(ctx, "zones", second))

	retrieved, err := cache.Get(ctx, "zones")
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(`"new"`), retrieved.Result)
	assert.Equal(t, 1, cache.Len())
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	t.Parallel()

	cache := cfapi.NewMemoryCache()
	ctx := context.Background()

	for _, key := range []string{"a", "b", "c"} {
		err := cache.Set(ctx, key, &cfapi.CacheEntry{StoredAt: time.Now()})
		require.NoError(t, err)
	}

	err := cache.Delete(ctx, "a")
	require.NoError(t, err)
	assert.False(t, cache.Has(ctx, "a"))
	assert.True(t, cache.Has(ctx, "b"))

	err = cache.Clear(ctx)
	require.NoError(t, err)
	assert.False(t, cache.Has(ctx, "b"))
	assert.False(t, cache.Has(ctx, "c"))
	assert.Equal(t, 0, cache.Len())
}

func TestCacheEntry_Expired(t *testing.T) {
	t.Parallel()

	storedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	entry := &cfapi.CacheEntry{StoredAt: storedAt}
	ttl := 300 * time.Second

	tests := []struct {
		name    string
		now     time.Time
		expired bool
	}{
		{
			name:    "fresh immediately after store",
			now:     storedAt,
			expired: false,
		},
		{
			name:    "fresh just inside the window",
			now:     storedAt.Add(ttl - time.Millisecond),
			expired: false,
		},
		{
			name:    "stale just outside the window",
			now:     storedAt.Add(ttl + time.Millisecond),
			expired: true,
		},
		{
			name:    "stale long after",
			now:     storedAt.Add(time.Hour),
			expired: true,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expired, entry.Expired(testCase.now, ttl))
		})
	}
}

func TestNoOpCache(t *testing.T) {
	t.Parallel()

	cache := cfapi.NewNoOpCache()
	ctx := context.Background()

	err := cache.Set(ctx, "zones", &cfapi.CacheEntry{StoredAt: time.Now()})
	require.NoError(t, err)

	_, err = cache.Get(ctx, "zones")
	require.Error(t, err)
	assert.ErrorIs(t, err, cfapi.ErrCacheDisabled)
	assert.False(t, cache.Has(ctx, "zones"))

	require.NoError(t, cache.Delete(ctx, "zones"))
	require.NoError(t, cache.Clear(ctx))
}
