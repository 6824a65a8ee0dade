package cache

import (
	"sync"
	"time"
)

// MemoryService implements the Service interface with a mutex-guarded map.
//
// One store is created per process at startup and shared by every request
// handler; there is no teardown beyond process exit. All operations are short
// in-memory critical sections, so a single coarse lock per store is enough:
// Get/Set are O(1) and the O(n) operations (DeletePattern, CleanupExpired,
// Clear) are rare by comparison.
type MemoryService struct {
	mu      sync.RWMutex
	entries map[string]entry
	logger  Logger
}

// NewMemoryService creates an empty in-memory cache store
func NewMemoryService(logger Logger) *MemoryService {
	logger.LogInfo("Cache service initialized", nil)
	return &MemoryService{
		entries: make(map[string]entry),
		logger:  logger,
	}
}

// Get returns the value stored under key, treating expired entries as absent.
// An expired entry found here is removed before returning (lazy eviction).
// Get has no effect on a live entry: no expiry refresh, no recency tracking.
func (s *MemoryService) Get(key string) (string, bool) {
	now := time.Now()

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}

	if e.expired(now) {
		// Upgrade to the write lock and re-check: another caller may have
		// replaced the entry with a live one in the window between locks.
		s.mu.Lock()
		if cur, ok := s.entries[key]; ok && cur.expired(now) {
			delete(s.entries, key)
			s.mu.Unlock()
			s.logger.LogDebug("Evicted expired cache key", map[string]interface{}{"key": key})
			return "", false
		}
		s.mu.Unlock()
		return "", false
	}

	s.logger.LogDebug("Cache hit", map[string]interface{}{"key": key})
	return e.value, true
}

// Set stores value under key, fully replacing any prior entry. The expiry is
// fixed at now+ttl; a ttl of zero or less yields an entry that is already
// expired, which callers may use as an effective no-op cache.
func (s *MemoryService) Set(key, value string, ttl time.Duration) {
	e := entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
		hasExpiry: true,
	}

	s.mu.Lock()
	s.entries[key] = e
	s.mu.Unlock()

	s.logger.LogDebug("Cached value", map[string]interface{}{"key": key, "ttl": ttl.String()})
}

// SetForever stores value under key with no expiry, fully replacing any prior
// entry.
func (s *MemoryService) SetForever(key, value string) {
	s.mu.Lock()
	s.entries[key] = entry{value: value}
	s.mu.Unlock()

	s.logger.LogDebug("Cached value", map[string]interface{}{"key": key, "ttl": "none"})
}

// Delete removes key if present and reports whether a removal occurred
func (s *MemoryService) Delete(key string) bool {
	s.mu.Lock()
	_, ok := s.entries[key]
	if ok {
		delete(s.entries, key)
	}
	s.mu.Unlock()

	if ok {
		s.logger.LogDebug("Deleted cache key", map[string]interface{}{"key": key})
	}
	return ok
}

// DeletePattern removes every stored key matching the glob pattern and returns
// the number removed. Expired-but-uncollected entries count too: pattern
// deletion does not evaluate TTLs. The matching snapshot and the removals
// happen inside one critical section, so a concurrent Set is either fully
// before the sweep (and considered) or fully after it (and untouched).
func (s *MemoryService) DeletePattern(pattern string) int {
	s.mu.Lock()
	var matched []string
	for key := range s.entries {
		if matchPattern(pattern, key) {
			matched = append(matched, key)
		}
	}
	for _, key := range matched {
		delete(s.entries, key)
	}
	s.mu.Unlock()

	if len(matched) > 0 {
		s.logger.LogDebug("Deleted cache keys matching pattern", map[string]interface{}{
			"pattern": pattern,
			"count":   len(matched),
		})
	}
	return len(matched)
}

// Clear removes all entries unconditionally
func (s *MemoryService) Clear() {
	s.mu.Lock()
	s.entries = make(map[string]entry)
	s.mu.Unlock()

	s.logger.LogInfo("Cache cleared", nil)
}

// CleanupExpired removes every expired entry and returns how many were
// removed. This is the active counterpart to Get's lazy eviction: it reclaims
// memory for keys that are written once and never read again.
func (s *MemoryService) CleanupExpired() int {
	now := time.Now()

	s.mu.Lock()
	removed := 0
	for key, e := range s.entries {
		if e.expired(now) {
			delete(s.entries, key)
			removed++
		}
	}
	s.mu.Unlock()

	if removed > 0 {
		s.logger.LogDebug("Cleaned up expired cache entries", map[string]interface{}{"count": removed})
	}
	return removed
}

// Len returns the current number of stored entries
func (s *MemoryService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
