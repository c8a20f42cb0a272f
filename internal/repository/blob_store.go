package repository

import (
	"context"
	"io"
)

// BlobRef identifies a stored blob: URL is the externally resolvable display
// address, Key the opaque handle used to delete or replace the blob.
type BlobRef struct {
	URL string
	Key string
}

// BlobStore is the external binary storage for attached images.
//
// Upload stores the content and returns its reference. Delete is best-effort:
// implementations return an error for observability, but callers swallow it —
// document operations are never blocked on blob cleanup.
type BlobStore interface {
	Upload(ctx context.Context, content io.Reader, suggestedName string) (BlobRef, error)
	Delete(ctx context.Context, key string) error
}
