package cfapi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esaiascronelius/cloudflare-ddns/pkg/cfapi"
)

func TestNewCacheFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("nil config defaults to memory", func(t *testing.T) {
		t.Parallel()

		cache, err := cfapi.NewCacheFromConfig(nil)
		require.NoError(t, err)
		assert.IsType(t, &cfapi.MemoryCache{}, cache)
	})

	t.Run("memory cache", func(t *testing.T) {
		t.Parallel()

		cache, err := cfapi.NewCacheFromConfig(&cfapi.CacheConfig{Type: cfapi.CacheTypeMemory})
		require.NoError(t, err)
		assert.IsType(t, &cfapi.MemoryCache{}, cache)
	})

	t.Run("no-op cache", func(t *testing.T) {
		t.Parallel()

		cache, err := cfapi.NewCacheFromConfig(&cfapi.CacheConfig{Type: cfapi.CacheTypeNone})
		require.NoError(t, err)
		assert.IsType(t, &cfapi.NoOpCache{}, cache)
	})

	t.Run("NATS cache requires NATS config", func(t *testing.T) {
		t.Parallel()

		_, err := cfapi.NewCacheFromConfig(&cfapi.CacheConfig{Type: cfapi.CacheTypeNATS})
		require.Error(t, err)
		assert.ErrorIs(t, err, cfapi.ErrNATSConfigRequired)
	})

	t.Run("unsupported type", func(t *testing.T) {
		t.Parallel()

		_, err := cfapi.NewCacheFromConfig(&cfapi.CacheConfig{Type: "redis"})
		require.Error(t, err)
		assert.ErrorIs(t, err, cfapi.ErrUnsupportedCacheType)
		assert.Contains(t, err.Error(), "redis")
	})
}

func TestDefaultCacheConfig(t *testing.T) {
	t.Parallel()

	config := cfapi.DefaultCacheConfig()
	assert.Equal(t, cfapi.CacheTypeMemory, config.Type)
	assert.Nil(t, config.NATS)
}
