package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrMiss indicates the requested key was not found in cache (or has expired).
// A miss is an expected outcome, not a backend malfunction; callers distinguish
// it from real errors with errors.Is.
var ErrMiss = errors.New("cache miss")

// Cache is the snapshot cache capability. Implementations may be process-local
// or shared across service instances; callers must not assume either.
type Cache interface {
	// Get retrieves the value stored at key.
	// Returns ErrMiss on a clean miss and a backend error otherwise.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value at key, replacing any existing entry.
	// A ttl <= 0 means the entry never expires automatically.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Remove deletes the entry at key. Removing an absent key is a no-op.
	Remove(ctx context.Context, key string) error
}

// Backend identifiers accepted by Config.Backend.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config holds configuration for the snapshot cache.
type Config struct {
	// Backend selects the cache implementation (memory, redis).
	Backend string `mapstructure:"backend" default:"memory"`
	// Addr is the Redis address (host:port). Ignored by the memory backend.
	Addr string `mapstructure:"addr" default:"localhost:6379"`
	// Password is the Redis password.
	Password string `mapstructure:"password" default:""`
	// DB is the Redis database number.
	DB int `mapstructure:"db" default:"0"`
	// SnapshotTTLMinutes is the time-to-live applied to catalog snapshots.
	SnapshotTTLMinutes int `mapstructure:"snapshot_ttl_minutes" default:"60"`
}

// SnapshotTTL returns the configured snapshot TTL as a duration.
func (c Config) SnapshotTTL() time.Duration {
	if c.SnapshotTTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(c.SnapshotTTLMinutes) * time.Minute
}

// New creates a cache backend based on the configuration.
// The backend is selected once at composition time; callers depend only on the
// Cache interface.
func New(cfg Config) (Cache, error) {
	switch cfg.Backend {
	case BackendMemory, "":
		return NewMemory(), nil
	case BackendRedis:
		return NewRedis(cfg), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
