// Package storage persists uploaded blobs. The editor only needs a public URL
// back; where the bytes live (local disk, S3) is a deployment choice.
package storage

import "context"

// Store persists one named blob and returns the public URL it is served from.
type Store interface {
	Put(ctx context.Context, filename, contentType string, data []byte) (string, error)
}
