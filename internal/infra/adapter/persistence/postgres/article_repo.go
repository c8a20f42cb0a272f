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

const articleColumns = `id, title, subtitle, body, section, author_id, status, image_url, image_key, created_at, updated_at`

type ArticleRepo struct {
	db DBTX
}

func NewArticleRepo(db DBTX) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	if article.ID == "" {
		article.ID = uuid.NewString()
	}
	const query = `
INSERT INTO articles
       (id, title, subtitle, body, section, author_id, status, image_url, image_key, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := repo.db.ExecContext(ctx, query,
		article.ID, article.Title, article.Subtitle, article.Body, article.Section,
		article.AuthorID, article.Status, article.ImageURL, article.ImageKey,
		article.CreatedAt, article.UpdatedAt,
	)
	if err != nil {
		return storeErr("Create", err)
	}
	return nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id string) (*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE id = $1
LIMIT 1`
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("Get", err)
	}
	return article, nil
}

func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
ORDER BY created_at DESC, id ASC`
	return repo.queryArticles(ctx, "List", query)
}

func (repo *ArticleRepo) ListByAuthor(ctx context.Context, authorID string) ([]*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE author_id = $1
ORDER BY created_at DESC, id ASC`
	return repo.queryArticles(ctx, "ListByAuthor", query, authorID)
}

func (repo *ArticleRepo) ListByStatus(ctx context.Context, status entity.Status) ([]*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE status = $1
ORDER BY created_at DESC, id ASC`
	return repo.queryArticles(ctx, "ListByStatus", query, status)
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	const query = `
UPDATE articles SET
       title      = $1,
       subtitle   = $2,
       body       = $3,
       section    = $4,
       status     = $5,
       image_url  = $6,
       image_key  = $7,
       updated_at = $8
WHERE id = $9`
	res, err := repo.db.ExecContext(ctx, query,
		article.Title, article.Subtitle, article.Body, article.Section,
		article.Status, article.ImageURL, article.ImageKey, article.UpdatedAt,
		article.ID,
	)
	if err != nil {
		return storeErr("Update", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return storeErr("Delete", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *ArticleRepo) queryArticles(ctx context.Context, op, query string, args ...any) ([]*entity.Article, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr(op, err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 50)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, storeErr(op+": Scan", err)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(op, err)
	}
	return articles, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (*entity.Article, error) {
	var article entity.Article
	err := row.Scan(&article.ID, &article.Title, &article.Subtitle, &article.Body,
		&article.Section, &article.AuthorID, &article.Status,
		&article.ImageURL, &article.ImageKey,
		&article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &article, nil
}
