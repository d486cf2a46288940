package repositories

import (
	"context"
	"database/sql"
	"slices"

	"github.com/desertthunder/catalog/internal/shared"
)

// CountedTables lists the tables reported on the admin dashboard.
var CountedTables = []string{"track", "artist", "album", "customer", "playlist", "employee", "invoice"}

// StatsRepository counts rows for the admin dashboard.
type StatsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new StatsRepository with the given database connection
func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Count returns the number of rows in table, which must be one of [CountedTables].
func (r *StatsRepository) Count(ctx context.Context, table string) (int64, error) {
	if !slices.Contains(CountedTables, table) {
		return 0, shared.NewValidationError("table", "unknown table %q", table)
	}
	return countRows(ctx, r.db, table)
}
