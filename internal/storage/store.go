package storage

import "context"

// Store is the persistent key-value store the engine depends on.
// Values are JSON documents; the key conventions are owned by the
// repository layer (see internal/repository).
type Store interface {
	// Get returns the document stored under key. The second return value
	// reports whether the key exists; a missing key is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	// ListKeys returns every stored key with the given prefix, sorted.
	// An empty prefix lists all keys.
	ListKeys(ctx context.Context, prefix string) ([]string, error)
}
