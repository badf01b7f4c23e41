// Package cache implements the TTL key/value store backing the data
// provider and the generative answer cache.
//
// Entries written with an explicit TTL expire at their own deadline and are
// purged lazily on the next read. Entries written without a TTL never
// expire on read; they only stop being "valid" once the default freshness
// window since their last write has passed. That asymmetry is what allows
// callers to fall back to arbitrarily stale data when a refresh fails.
package cache

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidDriver = errors.New("cache: unknown driver")

// Store is the narrow contract consumed by the data provider and the
// generative service. Reads never fail: a backend error counts as a miss.
type Store interface {
	// Get returns the stored value. Honors only per-entry expiry; an entry
	// past its own deadline is deleted and reported as absent.
	Get(ctx context.Context, key string) (string, bool)

	// Set stores a value. ttl > 0 gives the entry its own deadline;
	// otherwise freshness is governed by the default duration via IsValid.
	Set(ctx context.Context, key, value string, ttl time.Duration)

	// IsValid reports whether an entry exists and is still fresh: within
	// its own deadline when it has one, within the default duration since
	// its last write otherwise.
	IsValid(ctx context.Context, key string) bool

	// Clear drops all entries and freshness timestamps.
	Clear(ctx context.Context)
}

// Options configures a Store created by New.
type Options struct {
	// DefaultDuration is the freshness window for entries without their
	// own TTL. Zero means one hour.
	DefaultDuration time.Duration

	// RedisAddr is required for the "redis" driver.
	RedisAddr string

	// Prefix namespaces keys on shared backends. Defaults to "furiabot:".
	Prefix string
}

// New creates a Store for the given driver ("memory" or "redis"; empty
// selects memory).
func New(driver string, opts Options) (Store, error) {
	if opts.DefaultDuration <= 0 {
		opts.DefaultDuration = time.Hour
	}
	if opts.Prefix == "" {
		opts.Prefix = "furiabot:"
	}

	switch driver {
	case "", "memory":
		return NewMemory(opts.DefaultDuration), nil
	case "redis":
		return newRedis(opts)
	default:
		return nil, ErrInvalidDriver
	}
}
