package repositories

import (
	"context"
	"database/sql"

	"github.com/desertthunder/catalog/internal/models"
)

// crud implements [models.Repository] for a single [Table].
// Entity repositories embed it and add their joined listings.
type crud[T models.Entity] struct {
	db     *sql.DB
	table  *Table[T]
	values func(T) models.Changes // insert column values, defaults applied
}

func newCrud[T models.Entity](db *sql.DB, table *Table[T], values func(T) models.Changes) *crud[T] {
	return &crud[T]{db: db, table: table, values: values}
}

// List returns every row in display order.
func (r *crud[T]) List(ctx context.Context) ([]T, error) {
	return r.table.List(ctx, r.db)
}

// Get returns the row with the given id.
func (r *crud[T]) Get(ctx context.Context, id int64) (*T, error) {
	return r.table.Get(ctx, r.db, id)
}

// Create validates v, inserts it, and returns the stored row.
func (r *crud[T]) Create(ctx context.Context, v T) (*T, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return r.table.Insert(ctx, r.db, r.values(v))
}

// Update applies a partial update.
func (r *crud[T]) Update(ctx context.Context, id int64, changes models.Changes) (*T, error) {
	return r.table.Update(ctx, r.db, id, changes)
}

// Delete removes the row and returns it as it was.
func (r *crud[T]) Delete(ctx context.Context, id int64) (*T, error) {
	return r.table.Delete(ctx, r.db, id)
}

// Count returns the number of rows.
func (r *crud[T]) Count(ctx context.Context) (int64, error) {
	return r.table.Count(ctx, r.db)
}

func orDefault(v *int64, def int64) int64 {
	if v == nil || *v == 0 {
		return def
	}
	return *v
}
