// Package cache memoises rendered documents. Rendering is a pure function of
// its normalised inputs, so entries never need invalidation beyond capacity
// or TTL limits.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Cache stores rendered payloads by key. A miss returns ok=false with a nil
// error.
type Cache interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}

// Key derives a stable cache key from the canonical JSON encoding of parts.
// Struct fields encode in declaration order, so equal inputs always produce
// equal keys.
func Key(parts ...any) (string, error) {
	payload, err := json.Marshal(parts)
	if err != nil {
		return "", fmt.Errorf("cache: encode key: %w", err)
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
