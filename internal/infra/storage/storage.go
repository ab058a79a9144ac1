package storage

import "context"

// ObjectStore saves uploaded media and returns the public URL it is served from.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}
