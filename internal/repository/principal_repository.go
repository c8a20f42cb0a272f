package repository

import (
	"context"

	"newsroom-cms/internal/domain/entity"
)

// PrincipalRepository looks up authenticated identities and their roles.
// Get and GetByEmail return (nil, nil) when no principal exists; callers
// treat a missing role record as "no permissions", not a hard error.
type PrincipalRepository interface {
	Get(ctx context.Context, id string) (*entity.Principal, error)
	GetByEmail(ctx context.Context, email string) (*entity.Principal, error)
}
