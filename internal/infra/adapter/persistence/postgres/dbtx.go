// Package postgres implements the repository contracts against the document
// store's PostgreSQL backend.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"newsroom-cms/internal/repository"
)

// DBTX is the slice of *sql.DB the repositories use. Keeping it narrow lets
// the circuit breaker wrap the store without implementing the full interface.
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// storeErr classifies a driver failure as a transient store outage. Context
// cancellation is the caller's doing and passes through unchanged.
func storeErr(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, repository.ErrStoreUnavailable, err)
}
