package tesla

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCacheFromConfig(t *testing.T) {
	t.Run("nil config defaults to memory", func(t *testing.T) {
		cache, err := NewCacheFromConfig(nil)
		require.NoError(t, err)
		assert.IsType(t, &MemoryCache{}, cache)
	})

	t.Run("memory", func(t *testing.T) {
		cache, err := NewCacheFromConfig(&CacheConfig{Type: CacheTypeMemory, MaxSize: 64})
		require.NoError(t, err)
		assert.IsType(t, &MemoryCache{}, cache)
	})

	t.Run("none", func(t *testing.T) {
		cache, err := NewCacheFromConfig(&CacheConfig{Type: CacheTypeNone})
		require.NoError(t, err)
		assert.IsType(t, &NoOpCache{}, cache)
	})

	t.Run("nats requires config", func(t *testing.T) {
		_, err := NewCacheFromConfig(&CacheConfig{Type: CacheTypeNATS})
		assert.ErrorIs(t, err, ErrNATSConfigRequired)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := NewCacheFromConfig(&CacheConfig{Type: "redis"})
		assert.ErrorIs(t, err, ErrUnsupportedCacheType)
	})
}

func TestDefaultCacheConfig(t *testing.T) {
	config := DefaultCacheConfig()

	assert.Equal(t, CacheTypeMemory, config.Type)
	assert.Equal(t, 10*time.Second, config.TTL)
	assert.Equal(t, 256, config.MaxSize)
}
