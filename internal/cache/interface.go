package cache

import "time"

// Service defines the interface for cache operations.
//
// Values are opaque strings: callers serialize structured data before Set and
// deserialize after Get. A miss is normal control flow, not an error, so Get
// reports presence with a bool instead of an error value.
type Service interface {
	// Get returns the value stored under key. Expired entries are removed on
	// access and reported as a miss.
	Get(key string) (string, bool)

	// Set stores value under key with an absolute expiry of now+ttl, replacing
	// any previous entry. A zero or negative ttl is accepted and produces an
	// entry that is already expired at the next read or sweep.
	Set(key, value string, ttl time.Duration)

	// SetForever stores value under key with no expiry, replacing any previous
	// entry. The entry lives until Delete, DeletePattern or Clear removes it.
	SetForever(key, value string)

	// Delete removes key and reports whether a removal occurred. Deleting an
	// absent key is a no-op.
	Delete(key string) bool

	// DeletePattern removes every key matching the shell glob pattern
	// ('*', '?', '[set]', '[!set]', matched against the whole key) and returns
	// the number of keys removed. Expiry state is not consulted. A malformed
	// pattern matches nothing.
	DeletePattern(pattern string) int

	// Clear removes all entries regardless of expiry state.
	Clear()

	// CleanupExpired removes every expired entry and returns how many were
	// removed. Intended to be driven by a periodic Sweeper.
	CleanupExpired() int

	// Len returns the number of stored entries, including expired entries that
	// have not been collected yet.
	Len() int
}

// Logger defines the logging interface used by the cache package
type Logger interface {
	LogInfo(msg string, fields map[string]interface{})
	LogDebug(msg string, fields map[string]interface{})
}
