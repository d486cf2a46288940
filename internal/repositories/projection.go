package repositories

import (
	"context"
	"fmt"
	"strings"
)

// Filter is a single equality predicate over a projection, e.g. "track.album_id = ?1".
//
// Clause must reference exactly one placeholder, ?1.
type Filter struct {
	Clause string
	Arg    any
}

// Projection is a read model over a fixed join graph.
//
// Each query is a single statement: join, optional filter, then ordering on a display column.
type Projection[T any] struct {
	from    string
	columns []string
	orderBy string
	scan    func(scanner) (T, error)
}

// SQL renders the statement for filter, which may be nil.
func (p *Projection[T]) SQL(filter *Filter) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s", strings.Join(p.columns, ", "), p.from)
	if filter != nil {
		fmt.Fprintf(&b, " WHERE %s", filter.Clause)
	}
	fmt.Fprintf(&b, " ORDER BY %s", p.orderBy)
	return b.String()
}

// Query runs the projection. No matching rows yields an empty slice.
func (p *Projection[T]) Query(ctx context.Context, q Querier, filter *Filter) ([]T, error) {
	var args []any
	if filter != nil {
		args = append(args, filter.Arg)
	}

	rows, err := q.QueryContext(ctx, p.SQL(filter), args...)
	if err != nil {
		return nil, storageError("query projection", err)
	}
	return collect(rows, p.scan)
}
