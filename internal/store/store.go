package store

import "context"

// BlobStore is the persistence boundary: a key-value store where each key
// holds an opaque string payload. The meal collection is serialized as JSON
// under a single key.
type BlobStore interface {
	// Get returns the value for key. The second result is false when the
	// key has never been written.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes the value for key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error
}
