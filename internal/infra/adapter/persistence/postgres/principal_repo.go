package postgres

import (
	"context"
	"database/sql"
	"errors"

	"newsroom-cms/internal/domain/entity"
	"newsroom-cms/internal/repository"
)

type PrincipalRepo struct {
	db DBTX
}

func NewPrincipalRepo(db DBTX) repository.PrincipalRepository {
	return &PrincipalRepo{db: db}
}

func (repo *PrincipalRepo) Get(ctx context.Context, id string) (*entity.Principal, error) {
	const query = `
SELECT id, email, password_hash, role, created_at
FROM principals
WHERE id = $1
LIMIT 1`
	return repo.getOne(ctx, "Get", query, id)
}

func (repo *PrincipalRepo) GetByEmail(ctx context.Context, email string) (*entity.Principal, error) {
	const query = `
SELECT id, email, password_hash, role, created_at
FROM principals
WHERE lower(email) = lower($1)
LIMIT 1`
	return repo.getOne(ctx, "GetByEmail", query, email)
}

func (repo *PrincipalRepo) getOne(ctx context.Context, op, query string, arg any) (*entity.Principal, error) {
	var principal entity.Principal
	err := repo.db.QueryRowContext(ctx, query, arg).
		Scan(&principal.ID, &principal.Email, &principal.PasswordHash,
			&principal.Role, &principal.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(op, err)
	}
	return &principal, nil
}
