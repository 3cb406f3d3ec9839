// ABOUTME: Storage interface for the persistent key-value store
// ABOUTME: Implementations can be SQLite, Redis, or in-memory

package interfaces

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Storage.Get when the key has never been
// written. Callers treat it as "empty collection", not as a failure.
var ErrKeyNotFound = errors.New("key not found")

// Storage defines the persistent key-value store the watcher state lives
// in. The core keeps three named keys (items, settings, ledger), each
// holding a JSON document; writes are last-write-wins.
type Storage interface {
	// Get retrieves the value stored under key.
	// Returns ErrKeyNotFound when the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
