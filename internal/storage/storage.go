// Package storage is the media side-channel: an external object store holding
// uploaded images, referenced by URL from user and product records.
package storage

import (
	"context"
	"io"
)

// Store abstracts the object store behind upload and delete operations.
// Delete takes the same URL reference that Upload returned.
type Store interface {
	// Upload streams a file into the store and returns its public URL.
	Upload(ctx context.Context, body io.Reader, filename, contentType string) (string, error)

	// Delete removes a previously uploaded object by its URL reference.
	Delete(ctx context.Context, ref string) error
}
