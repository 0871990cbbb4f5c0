package tesla

import (
	"errors"
	"fmt"
	"time"
)

// CacheType selects a cache backend.
type CacheType string

const (
	// CacheTypeMemory caches in process memory.
	CacheTypeMemory CacheType = "memory"

	// CacheTypeNATS caches in a NATS JetStream KV bucket.
	CacheTypeNATS CacheType = "nats"

	// CacheTypeNone disables caching.
	CacheTypeNone CacheType = "none"
)

// Static errors for err113 compliance.
var (
	ErrNATSConfigRequired   = errors.New("NATS configuration required for NATS cache")
	ErrUnsupportedCacheType = errors.New("unsupported cache type")
)

// CacheConfig configures the GET response cache.
type CacheConfig struct {
	// Type is the backend type.
	Type CacheType

	// TTL is how long cached responses stay fresh. Zero uses the
	// default of 10 seconds, matching how quickly vehicle state drifts.
	TTL time.Duration

	// MaxSize caps the memory backend's entry count.
	MaxSize int

	// NATS configures the NATS KV backend. Required for CacheTypeNATS.
	NATS *NATSKVConfig
}

// DefaultCacheConfig returns an in-memory cache configuration.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		Type:    CacheTypeMemory,
		TTL:     10 * time.Second,
		MaxSize: 256,
	}
}

// NewCacheFromConfig creates a cache backend from configuration.
func NewCacheFromConfig(config *CacheConfig) (Cache, error) {
	if config == nil {
		config = DefaultCacheConfig()
	}

	switch config.Type {
	case CacheTypeMemory:
		maxSize := config.MaxSize
		if maxSize <= 0 {
			maxSize = 256
		}

		return NewMemoryCache(maxSize), nil

	case CacheTypeNATS:
		if config.NATS == nil {
			return nil, ErrNATSConfigRequired
		}

		return NewNATSKVCache(config.NATS)

	case CacheTypeNone:
		return NewNoOpCache(), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCacheType, config.Type)
	}
}
