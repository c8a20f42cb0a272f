package circuitbreaker

import (
	"context"
	"io"

	"newsroom-cms/internal/repository"
)

// BlobStoreCircuitBreaker wraps a blob store with circuit breaker protection
// so a degraded media backend fails uploads fast instead of stalling writes.
type BlobStoreCircuitBreaker struct {
	cb    *CircuitBreaker
	blobs repository.BlobStore
}

// NewBlobStoreCircuitBreaker wraps blobs with the blob store circuit policy.
func NewBlobStoreCircuitBreaker(blobs repository.BlobStore) *BlobStoreCircuitBreaker {
	return &BlobStoreCircuitBreaker{
		cb:    New(BlobStoreConfig()),
		blobs: blobs,
	}
}

func (bcb *BlobStoreCircuitBreaker) Upload(ctx context.Context, content io.Reader, suggestedName string) (repository.BlobRef, error) {
	result, err := bcb.cb.Execute(func() (interface{}, error) {
		return bcb.blobs.Upload(ctx, content, suggestedName)
	})
	if err != nil {
		return repository.BlobRef{}, err
	}
	return result.(repository.BlobRef), nil
}

// Delete passes through uncounted. Deletes are best-effort cleanup; letting
// them trip the circuit would block uploads over failures nobody acts on.
func (bcb *BlobStoreCircuitBreaker) Delete(ctx context.Context, key string) error {
	return bcb.blobs.Delete(ctx, key)
}

// IsOpen returns true if the circuit breaker is in the open state.
func (bcb *BlobStoreCircuitBreaker) IsOpen() bool {
	return bcb.cb.IsOpen()
}
