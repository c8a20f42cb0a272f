package blobstore

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"newsroom-cms/internal/repository"
)

// NoOpStore is a blob store for deployments without a media backend. Uploads
// succeed with a synthetic reference and deletes do nothing, so the article
// flow works unchanged when image hosting is disabled.
type NoOpStore struct {
	counter atomic.Uint64
}

func NewNoOpStore() *NoOpStore {
	return &NoOpStore{}
}

func (store *NoOpStore) Upload(ctx context.Context, content io.Reader, suggestedName string) (repository.BlobRef, error) {
	// Drain so callers see the same reader semantics as a real upload.
	if _, err := io.Copy(io.Discard, content); err != nil {
		return repository.BlobRef{}, fmt.Errorf("upload: read content: %w", err)
	}
	n := store.counter.Add(1)
	key := fmt.Sprintf("noop/%d/%s", n, suggestedName)
	return repository.BlobRef{URL: "about:blank#" + key, Key: key}, nil
}

func (store *NoOpStore) Delete(ctx context.Context, key string) error {
	return nil
}
