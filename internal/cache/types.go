package cache

import "time"

// Config represents cache subsystem settings
type Config struct {
	// CleanupInterval is how often the background sweeper removes expired
	// entries. Zero disables the sweeper; lazy eviction on Get still applies.
	CleanupInterval time.Duration `mapstructure:"cleanupInterval"`

	// MaxSize mirrors the CACHE_MAX_SIZE setting the sibling services expose.
	// The store is unbounded; enforcing a capacity (eviction on overflow) is an
	// extension point and is not implemented.
	MaxSize int `mapstructure:"maxSize"`
}

// entry is a stored value with its optional absolute expiry.
// hasExpiry=false means the entry never expires.
type entry struct {
	value     string
	expiresAt time.Time
	hasExpiry bool
}

// expired reports whether the entry's expiry has passed. An entry whose expiry
// equals now is already expired.
func (e entry) expired(now time.Time) bool {
	return e.hasExpiry && !e.expiresAt.After(now)
}
