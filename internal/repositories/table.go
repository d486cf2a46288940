package repositories

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/desertthunder/catalog/internal/models"
	"github.com/desertthunder/catalog/internal/shared"
)

// Table describes one catalog table. Names are trusted constants, never request input.
//
// Every statement a Table compiles selects or returns the same column list, so a single scan
// function serves get, list, insert, update and delete.
type Table[T any] struct {
	name      string   // table name
	entity    string   // display name used in not-found messages
	key       string   // primary key column
	columns   []string // selected/returned columns, in scan order
	updatable []string // columns a partial update may assign
	orderBy   string   // list ordering
	scan      func(scanner) (T, error)
}

// Name returns the table name.
func (t *Table[T]) Name() string { return t.name }

func (t *Table[T]) selectList() string {
	return strings.Join(t.columns, ", ")
}

func (t *Table[T]) notFound() error {
	return shared.NewNotFoundError(t.entity)
}

// CompileUpdate builds the partial update statement for changes and the key value.
//
// Assignments keep the order of changes and use numbered placeholders; the key predicate takes the last one:
//
//	UPDATE artist SET name = ?1 WHERE artist_id = ?2 RETURNING artist_id, name
//
// An empty change list or a column outside the table's updatable set is a [shared.ValidationError].
func (t *Table[T]) CompileUpdate(id int64, changes models.Changes) (string, []any, error) {
	if len(changes) == 0 {
		return "", nil, shared.NewValidationError("", "No fields provided for update")
	}

	sets := make([]string, len(changes))
	args := make([]any, 0, len(changes)+1)
	for i, ch := range changes {
		if !slices.Contains(t.updatable, ch.Column) {
			return "", nil, shared.NewValidationError(ch.Column, "Field '%s' cannot be updated", ch.Column)
		}
		sets[i] = fmt.Sprintf("%s = ?%d", ch.Column, i+1)
		args = append(args, ch.Value)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?%d RETURNING %s",
		t.name, strings.Join(sets, ", "), t.key, len(args), t.selectList())
	return query, args, nil
}

// Update applies changes to the row identified by id and returns the updated row.
//
// Validation failures are reported before q is touched. Zero matched rows is a [shared.NotFoundError].
func (t *Table[T]) Update(ctx context.Context, q Querier, id int64, changes models.Changes) (*T, error) {
	query, args, err := t.CompileUpdate(id, changes)
	if err != nil {
		return nil, err
	}

	row, err := t.scan(q.QueryRowContext(ctx, query, args...))
	if isNoRows(err) {
		return nil, t.notFound()
	}
	if err != nil {
		return nil, storageError("update "+t.name, err)
	}
	return &row, nil
}

// Insert stores a new row built from values and returns it as stored.
func (t *Table[T]) Insert(ctx context.Context, q Querier, values models.Changes) (*T, error) {
	if len(values) == 0 {
		return nil, shared.NewValidationError("", "No fields provided for insert")
	}

	cols := values.Columns()
	placeholders := make([]string, len(cols))
	for i, col := range cols {
		if !slices.Contains(t.columns, col) {
			return nil, shared.NewValidationError(col, "Unknown field '%s'", col)
		}
		placeholders[i] = fmt.Sprintf("?%d", i+1)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		t.name, strings.Join(cols, ", "), strings.Join(placeholders, ", "), t.selectList())

	row, err := t.scan(q.QueryRowContext(ctx, query, values.Values()...))
	if err != nil {
		return nil, storageError("insert into "+t.name, err)
	}
	return &row, nil
}

// Get returns the row with the given key.
func (t *Table[T]) Get(ctx context.Context, q Querier, id int64) (*T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?1", t.selectList(), t.name, t.key)

	row, err := t.scan(q.QueryRowContext(ctx, query, id))
	if isNoRows(err) {
		return nil, t.notFound()
	}
	if err != nil {
		return nil, storageError("get "+t.name, err)
	}
	return &row, nil
}

// List returns every row in the table's display order.
func (t *Table[T]) List(ctx context.Context, q Querier) ([]T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", t.selectList(), t.name, t.orderBy)

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, storageError("list "+t.name, err)
	}
	return collect(rows, t.scan)
}

// Delete removes the row with the given key and returns it as it was before deletion.
func (t *Table[T]) Delete(ctx context.Context, q Querier, id int64) (*T, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ?1 RETURNING %s", t.name, t.key, t.selectList())

	row, err := t.scan(q.QueryRowContext(ctx, query, id))
	if isNoRows(err) {
		return nil, t.notFound()
	}
	if err != nil {
		return nil, storageError("delete from "+t.name, err)
	}
	return &row, nil
}

// Count returns the number of rows in the table.
func (t *Table[T]) Count(ctx context.Context, q Querier) (int64, error) {
	return countRows(ctx, q, t.name)
}

func countRows(ctx context.Context, q Querier, table string) (int64, error) {
	var n int64
	if err := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, storageError("count "+table, err)
	}
	return n, nil
}
