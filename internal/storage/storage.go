package storage

import (
	"context"
	"io"
	"strings"
)

// BlobStore is durable key-addressed storage for uploaded files. Put returns
// the public URL the stored object is reachable at. Implementations must not
// leak which backend is active through their behavior.
type BlobStore interface {
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, key string) error
}

// KeyFromURL recovers the storage key from a public URL produced by Put.
// Keys are always two path segments (e.g. "media/<uuid>.jpg").
func KeyFromURL(url string) string {
	parts := strings.Split(url, "/")
	if len(parts) < 2 {
		return url
	}
	return strings.Join(parts[len(parts)-2:], "/")
}
