package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// Migrate applies the schema. Every statement is idempotent, so it is safe
// to run on every startup.
func Migrate(ctx context.Context, pool *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS articles (
			id         TEXT PRIMARY KEY,
			title      TEXT NOT NULL,
			subtitle   TEXT NOT NULL DEFAULT '',
			body       TEXT NOT NULL DEFAULT '',
			section    TEXT NOT NULL DEFAULT '',
			author_id  TEXT NOT NULL,
			status     TEXT NOT NULL,
			image_url  TEXT NOT NULL DEFAULT '',
			image_key  TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_author_id ON articles(author_id)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_status ON articles(status)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS sections (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			status     TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sections_name ON sections(name)`,
		`CREATE TABLE IF NOT EXISTS principals (
			id            TEXT PRIMARY KEY,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role          TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range stmts {
		if _, err := pool.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}

	slog.Info("database schema up to date")
	return nil
}
