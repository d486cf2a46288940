// package testing contains shared testing utilities
package testing

import (
	"database/sql"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/desertthunder/catalog/internal/shared"
)

// NewTestDB creates a migrated SQLite database in a temporary directory.
//
// A file-backed database is used so every pooled connection sees the same data.
// The database is closed when the test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

// MustExec runs a statement or fails the test.
func MustExec(t *testing.T, db *sql.DB, query string, args ...any) sql.Result {
	t.Helper()
	res, err := db.Exec(query, args...)
	if err != nil {
		t.Fatalf("exec %q failed: %v", query, err)
	}
	return res
}

// MustInsert runs an INSERT and returns the new row id.
func MustInsert(t *testing.T, db *sql.DB, query string, args ...any) int64 {
	t.Helper()
	id, err := MustExec(t, db, query, args...).LastInsertId()
	if err != nil {
		t.Fatalf("failed to read insert id: %v", err)
	}
	return id
}

// MustCount returns SELECT COUNT(*) for a table, with an optional WHERE clause.
func MustCount(t *testing.T, db *sql.DB, table, where string, args ...any) int {
	t.Helper()
	query := "SELECT COUNT(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	if err := db.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("count %s failed: %v", table, err)
	}
	return n
}

// Fixture holds the ids of a small seeded catalog.
type Fixture struct {
	ArtistID   int64 // "AC/DC"
	AlbumID    int64 // "For Those About To Rock", by ArtistID
	TrackIDs   []int64
	PlaylistID int64 // contains every track in TrackIDs
}

// SeedCatalog inserts one artist with one album of three tracks and a playlist containing them.
func SeedCatalog(t *testing.T, db *sql.DB) Fixture {
	t.Helper()

	var f Fixture
	f.ArtistID = MustInsert(t, db, "INSERT INTO artist (name) VALUES (?)", "AC/DC")
	f.AlbumID = MustInsert(t, db, "INSERT INTO album (title, artist_id) VALUES (?, ?)", "For Those About To Rock", f.ArtistID)
	for _, name := range []string{"Put The Finger On You", "balls to the wall", "Evil Walks"} {
		id := MustInsert(t, db,
			"INSERT INTO track (name, album_id, media_type_id, genre_id, composer, milliseconds, unit_price) VALUES (?, ?, 1, 1, ?, ?, ?)",
			name, f.AlbumID, "Angus Young", 205662, 0.99)
		f.TrackIDs = append(f.TrackIDs, id)
	}

	f.PlaylistID = MustInsert(t, db, "INSERT INTO playlist (name) VALUES (?)", "Heavy")
	for _, id := range f.TrackIDs {
		MustExec(t, db, "INSERT INTO playlist_track (playlist_id, track_id) VALUES (?, ?)", f.PlaylistID, id)
	}
	return f
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites int, target io.Writer) *LimitedWriter {
	return &LimitedWriter{maxWrites: maxWrites, target: target}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
