package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// DataFilePermissions is the permission for persisted cache files (rw-r--r--)
	DataFilePermissions = 0o644
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Pipeline policy constants
const (
	// ConfidenceThreshold is the minimum layout-selection confidence below
	// which the pipeline falls back to the Dashboard layout.
	ConfidenceThreshold = 0.7
	// FallbackLayoutName is the most flexible layout, used whenever a safer
	// default is needed.
	FallbackLayoutName = "Dashboard"
)

// Layout cache constants
const (
	// DefaultLayoutCacheTTL is how long a cached layout decision stays valid.
	DefaultLayoutCacheTTL = 24 * time.Hour
	// DefaultLayoutCacheCapacity bounds the number of stored layout entries.
	DefaultLayoutCacheCapacity = 100
	// LayoutCacheEvictionMargin caps how many extra oldest entries one
	// eviction pass removes beyond the overflow, amortizing its cost.
	LayoutCacheEvictionMargin = 10
)

// Workspace cache constants
const (
	// DefaultWorkspaceCacheCapacity bounds the number of cached workspaces.
	DefaultWorkspaceCacheCapacity = 50
)

// Dynamic generation constants
const (
	// GenerationCacheCapacity bounds the session-scoped generation cache.
	GenerationCacheCapacity = 20
	// InteractionHistoryLimit bounds the interaction ring buffer.
	InteractionHistoryLimit = 10
	// PromptHistoryLimit is how many recent interactions a prompt embeds.
	PromptHistoryLimit = 5
	// CacheKeyHistoryLimit is how many recent interaction ids feed the
	// composite generation-cache key.
	CacheKeyHistoryLimit = 3
)

// Model constants
const (
	// DefaultMaxTokens is the default maximum number of tokens per call.
	DefaultMaxTokens = 4096
	// DefaultHTTPClientTimeout is the timeout for HTTP client requests.
	DefaultHTTPClientTimeout = 60 * time.Second
)
