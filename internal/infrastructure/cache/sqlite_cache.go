// Package cache implements the durable layout cache: hashed normalized-intent
// keys, TTL lazy expiry, and oldest-first eviction, persisted in SQLite.
package cache

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/doeshing/intentdesk/internal/domain"
	"github.com/doeshing/intentdesk/internal/ports"
)

// SQLiteLayoutCache persists layout decisions in a SQLite database. A failed
// open degrades to an always-miss cache rather than failing the pipeline.
type SQLiteLayoutCache struct {
	db        *sql.DB
	path      string
	mu        sync.Mutex
	ttl       time.Duration
	capacity  int
	sanitizer ports.CodeSanitizer
	logger    ports.Logger

	hits   atomic.Int64
	misses atomic.Int64
}

// NewSQLiteLayoutCache creates (or opens) the layout cache database. An empty
// path resolves to ~/.intentdesk/cache/layouts.db.
func NewSQLiteLayoutCache(path string, ttl time.Duration, capacity int, sanitizer ports.CodeSanitizer, logger ports.Logger) *SQLiteLayoutCache {
	if path == "" {
		path = filepath.Join(userHome(), ".intentdesk", "cache", "layouts.db")
	}
	if ttl <= 0 {
		ttl = domain.DefaultLayoutCacheTTL
	}
	if capacity <= 0 {
		capacity = domain.DefaultLayoutCacheCapacity
	}
	cache := &SQLiteLayoutCache{
		path:      path,
		ttl:       ttl,
		capacity:  capacity,
		sanitizer: sanitizer,
		logger:    logger,
	}

	_ = os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		logger.Warn("layout cache unavailable", map[string]interface{}{"error": err.Error()})
		return cache
	}
	cache.db = db
	if err := cache.init(); err != nil {
		logger.Warn("layout cache init failed", map[string]interface{}{"error": err.Error()})
		cache.db = nil
	}
	return cache
}

func (c *SQLiteLayoutCache) init() error {
	_, err := c.db.Exec(`CREATE TABLE IF NOT EXISTS layouts (
		intent_hash TEXT PRIMARY KEY,
		id TEXT,
		intent TEXT,
		layout TEXT,
		slots TEXT,
		confidence REAL,
		timestamp TEXT,
		expires_at TEXT
	);`)
	return err
}

// Get looks up the cached decision for an intent. Expired entries are deleted
// as a side effect and reported as misses. Storage errors are logged and
// reported as misses.
func (c *SQLiteLayoutCache) Get(intent string) (domain.CachedLayout, bool, error) {
	if c.db == nil || domain.NormalizeIntent(intent) == "" {
		c.misses.Add(1)
		return domain.CachedLayout{}, false, nil
	}
	hash := domain.HashIntent(intent)

	c.mu.Lock()
	defer c.mu.Unlock()

	row := c.db.QueryRow(`SELECT id, intent, layout, slots, confidence, timestamp, expires_at
		FROM layouts WHERE intent_hash = ?`, hash)

	var entry domain.CachedLayout
	var slotsJSON, timestamp, expiresAt string
	err := row.Scan(&entry.ID, &entry.Intent, &entry.Layout, &slotsJSON, &entry.Confidence, &timestamp, &expiresAt)
	if err == sql.ErrNoRows {
		c.misses.Add(1)
		return domain.CachedLayout{}, false, nil
	}
	if err != nil {
		c.logger.Warn("layout cache read failed", map[string]interface{}{"error": err.Error()})
		c.misses.Add(1)
		return domain.CachedLayout{}, false, nil
	}

	entry.IntentHash = hash
	entry.Timestamp, _ = time.Parse(time.RFC3339Nano, timestamp)
	entry.ExpiresAt, _ = time.Parse(time.RFC3339Nano, expiresAt)
	if err := json.Unmarshal([]byte(slotsJSON), &entry.Slots); err != nil {
		c.logger.Warn("layout cache entry corrupt", map[string]interface{}{"hash": hash})
		_, _ = c.db.Exec(`DELETE FROM layouts WHERE intent_hash = ?`, hash)
		c.misses.Add(1)
		return domain.CachedLayout{}, false, nil
	}

	if entry.Expired(time.Now()) {
		_, _ = c.db.Exec(`DELETE FROM layouts WHERE intent_hash = ?`, hash)
		c.misses.Add(1)
		return domain.CachedLayout{}, false, nil
	}

	c.hits.Add(1)
	return entry, true, nil
}

// Set upserts the decision for an intent, keyed by its hash. Capacity is
// enforced before insertion; all stored strings pass through the sanitizer so
// the cache cannot become a second injection vector.
func (c *SQLiteLayoutCache) Set(intent string, layout string, slots []domain.LayoutSlot, confidence float64) error {
	if c.db == nil || domain.NormalizeIntent(intent) == "" {
		return nil
	}
	hash := domain.HashIntent(intent)

	sanitized := make([]domain.LayoutSlot, len(slots))
	for i, slot := range slots {
		sanitized[i] = c.sanitizeSlot(slot)
	}
	slotsJSON, err := json.Marshal(sanitized)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.evictIfNeeded(hash)

	now := time.Now()
	_, err = c.db.Exec(`INSERT OR REPLACE INTO layouts
		(intent_hash, id, intent, layout, slots, confidence, timestamp, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		hash, uuid.NewString(), domain.NormalizeIntent(intent), layout, string(slotsJSON),
		confidence, now.Format(time.RFC3339Nano), now.Add(c.ttl).Format(time.RFC3339Nano))
	return err
}

func (c *SQLiteLayoutCache) sanitizeSlot(slot domain.LayoutSlot) domain.LayoutSlot {
	out := slot
	out.Component = c.sanitizer.Sanitize(slot.Component)
	if len(slot.Props) > 0 {
		out.Props = make(map[string]interface{}, len(slot.Props))
		for k, v := range slot.Props {
			if s, ok := v.(string); ok {
				out.Props[k] = c.sanitizer.Sanitize(s)
			} else {
				out.Props[k] = v
			}
		}
	}
	return out
}

// evictIfNeeded removes the oldest entries when inserting a new hash would
// exceed capacity. A margin of extra entries goes with them to amortize the
// next evictions. Caller holds the mutex.
func (c *SQLiteLayoutCache) evictIfNeeded(hash string) {
	var exists int
	_ = c.db.QueryRow(`SELECT COUNT(*) FROM layouts WHERE intent_hash = ?`, hash).Scan(&exists)
	if exists > 0 {
		return
	}
	var count int
	if err := c.db.QueryRow(`SELECT COUNT(*) FROM layouts`).Scan(&count); err != nil {
		return
	}
	if count+1 <= c.capacity {
		return
	}
	margin := c.capacity / 10
	if margin > domain.LayoutCacheEvictionMargin {
		margin = domain.LayoutCacheEvictionMargin
	}
	toRemove := count + 1 - c.capacity + margin
	_, _ = c.db.Exec(`DELETE FROM layouts WHERE intent_hash IN (
		SELECT intent_hash FROM layouts ORDER BY timestamp ASC LIMIT ?)`, toRemove)
}

// Cleanup removes all expired entries and reports how many went away. Lazy
// expiry in Get keeps the cache correct without this; Cleanup exists for
// periodic maintenance.
func (c *SQLiteLayoutCache) Cleanup() (int, error) {
	if c.db == nil {
		return 0, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	res, err := c.db.Exec(`DELETE FROM layouts WHERE expires_at <= ?`, time.Now().Format(time.RFC3339Nano))
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

// Clear removes all entries and resets counters.
func (c *SQLiteLayoutCache) Clear() error {
	c.hits.Store(0)
	c.misses.Store(0)
	if c.db == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := c.db.Exec(`DELETE FROM layouts`)
	return err
}

// Stats summarizes cache contents and effectiveness.
func (c *SQLiteLayoutCache) Stats() domain.LayoutCacheStats {
	stats := domain.LayoutCacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
	}
	if total := stats.Hits + stats.Misses; total > 0 {
		stats.HitRate = float64(stats.Hits) / float64(total)
	}
	if c.db == nil {
		return stats
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.db.QueryRow(`SELECT COUNT(*) FROM layouts WHERE expires_at > ?`,
		time.Now().Format(time.RFC3339Nano)).Scan(&stats.TotalEntries)

	var oldest, newest sql.NullString
	_ = c.db.QueryRow(`SELECT MIN(timestamp), MAX(timestamp) FROM layouts`).Scan(&oldest, &newest)
	if oldest.Valid {
		if t, err := time.Parse(time.RFC3339Nano, oldest.String); err == nil {
			stats.OldestEntry = &t
		}
	}
	if newest.Valid {
		if t, err := time.Parse(time.RFC3339Nano, newest.String); err == nil {
			stats.NewestEntry = &t
		}
	}
	return stats
}

func userHome() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

var _ ports.LayoutCache = (*SQLiteLayoutCache)(nil)
