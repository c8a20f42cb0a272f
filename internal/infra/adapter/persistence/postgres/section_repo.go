package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"newsroom-cms/internal/domain/entity"
	"newsroom-cms/internal/repository"
)

type SectionRepo struct {
	db DBTX
}

func NewSectionRepo(db DBTX) repository.SectionRepository {
	return &SectionRepo{db: db}
}

func (repo *SectionRepo) Create(ctx context.Context, section *entity.Section) error {
	if section.ID == "" {
		section.ID = uuid.NewString()
	}
	const query = `
INSERT INTO sections (id, name, status, created_at)
VALUES ($1, $2, $3, $4)`
	_, err := repo.db.ExecContext(ctx, query,
		section.ID, section.Name, section.Status, section.CreatedAt)
	if err != nil {
		return storeErr("Create", err)
	}
	return nil
}

func (repo *SectionRepo) Get(ctx context.Context, id string) (*entity.Section, error) {
	const query = `
SELECT id, name, status, created_at
FROM sections
WHERE id = $1
LIMIT 1`
	var section entity.Section
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&section.ID, &section.Name, &section.Status, &section.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("Get", err)
	}
	return &section, nil
}

func (repo *SectionRepo) List(ctx context.Context) ([]*entity.Section, error) {
	const query = `
SELECT id, name, status, created_at
FROM sections
ORDER BY name ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storeErr("List", err)
	}
	defer func() { _ = rows.Close() }()

	sections := make([]*entity.Section, 0, 20)
	for rows.Next() {
		var section entity.Section
		if err := rows.Scan(&section.ID, &section.Name, &section.Status, &section.CreatedAt); err != nil {
			return nil, storeErr("List: Scan", err)
		}
		sections = append(sections, &section)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("List", err)
	}
	return sections, nil
}

func (repo *SectionRepo) Update(ctx context.Context, section *entity.Section) error {
	const query = `
UPDATE sections SET
       name   = $1,
       status = $2
WHERE id = $3`
	res, err := repo.db.ExecContext(ctx, query, section.Name, section.Status, section.ID)
	if err != nil {
		return storeErr("Update", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *SectionRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM sections WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return storeErr("Delete", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	return nil
}
