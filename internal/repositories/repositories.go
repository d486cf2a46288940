package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/desertthunder/catalog/internal/shared"
)

// Querier is the subset of *sql.DB and *sql.Tx used by [Table] and [Projection].
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// WithTx runs fn inside a transaction. The transaction commits when fn returns nil and rolls back otherwise.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return storageError("begin transaction", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return storageError("commit transaction", err)
	}
	return nil
}

// storageError wraps a driver failure so callers can match it with [shared.ErrStorage].
func storageError(op string, err error) error {
	return fmt.Errorf("%w: failed to %s: %w", shared.ErrStorage, op, err)
}

// collect drains rows with scan, always returning a non-nil slice.
func collect[T any](rows *sql.Rows, scan func(scanner) (T, error)) ([]T, error) {
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, storageError("scan row", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError("iterate rows", err)
	}
	return items, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
