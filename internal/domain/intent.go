// Package domain defines core business entities and value objects for intentdesk.
//
// The domain layer is independent of infrastructure concerns and represents pure
// business logic and data structures. Intents, layouts, cached entries, and
// interaction events all live here.
package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// NormalizeIntent canonicalizes a free-text intent for use as a cache key:
// lowercased, trimmed, and with internal whitespace runs collapsed to a single
// space. The operation is idempotent and locale-insensitive for ASCII input.
func NormalizeIntent(intent string) string {
	return strings.Join(strings.Fields(strings.ToLower(intent)), " ")
}

// HashIntent returns a stable, irreversible digest of the normalized intent.
// Case and whitespace variants of the same intent hash to the same value.
func HashIntent(intent string) string {
	sum := sha256.Sum256([]byte(NormalizeIntent(intent)))
	return hex.EncodeToString(sum[:])
}
