package domain

import "time"

// CachedLayout is one durable layout-cache entry: a prior layout decision plus
// its planned slots, keyed by the hash of the normalized intent. Entries for
// distinct hashes are never merged.
type CachedLayout struct {
	ID         string       `json:"id"`
	Intent     string       `json:"intent"`
	IntentHash string       `json:"intent_hash"`
	Layout     string       `json:"layout"`
	Slots      []LayoutSlot `json:"slots"`
	Confidence float64      `json:"confidence"`
	Timestamp  time.Time    `json:"timestamp"`
	ExpiresAt  time.Time    `json:"expires_at"`
}

// Expired reports whether the entry is past its TTL at the given instant.
func (c CachedLayout) Expired(now time.Time) bool {
	return !c.ExpiresAt.After(now)
}

// LayoutCacheStats summarizes layout-cache effectiveness.
type LayoutCacheStats struct {
	TotalEntries int        `json:"total_entries"`
	Hits         int64      `json:"hits"`
	Misses       int64      `json:"misses"`
	HitRate      float64    `json:"hit_rate"`
	OldestEntry  *time.Time `json:"oldest_entry,omitempty"`
	NewestEntry  *time.Time `json:"newest_entry,omitempty"`
}
