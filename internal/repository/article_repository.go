// Package repository declares the narrow contracts the core consumes from its
// external collaborators: the document store (articles, sections, principals)
// and the blob store. Implementations live under internal/infra.
package repository

import (
	"context"
	"errors"

	"newsroom-cms/internal/domain/entity"
)

// ErrStoreUnavailable wraps document store failures that are transient from the
// caller's point of view. It is the only error class a caller may retry; the
// core itself never retries.
var ErrStoreUnavailable = errors.New("document store unavailable")

// ArticleRepository persists articles in the external document store.
//
// Create assigns the article's opaque ID. Get returns (nil, nil) when the
// article does not exist; absence is not a storage failure. The List* variants
// are fetch optimizations mirroring the store's filter capabilities (equality
// on author or status); the visibility filter remains the authority on what a
// caller may actually see.
type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article) error
	Get(ctx context.Context, id string) (*entity.Article, error)
	List(ctx context.Context) ([]*entity.Article, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*entity.Article, error)
	ListByStatus(ctx context.Context, status entity.Status) ([]*entity.Article, error)
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id string) error
}
