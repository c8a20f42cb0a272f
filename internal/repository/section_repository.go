package repository

import (
	"context"

	"newsroom-cms/internal/domain/entity"
)

// SectionRepository persists the section catalog. List returns sections
// ordered by name ascending. Delete performs no validation against
// referencing articles; dangling references are accepted.
type SectionRepository interface {
	Create(ctx context.Context, section *entity.Section) error
	Get(ctx context.Context, id string) (*entity.Section, error)
	List(ctx context.Context) ([]*entity.Section, error)
	Update(ctx context.Context, section *entity.Section) error
	Delete(ctx context.Context, id string) error
}
