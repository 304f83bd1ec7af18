package storage

import (
	"context"
	"io"
)

// ObjectStore abstracts the bucket holding video payloads. Services
// depend on this interface; production wiring provides the MinIO
// implementation.
type ObjectStore interface {
	// Put streams content to the bucket under key, overwriting any
	// existing object with the same key. The whole payload is never
	// buffered in memory.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
}
