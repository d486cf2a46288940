package shared

import (
	"database/sql"
	"testing"
)

func newMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	// every connection to :memory: is its own database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrationRunner(t *testing.T) {
	t.Run("loadMigrations", func(t *testing.T) {
		migrations, err := loadMigrations()
		if err != nil {
			t.Fatalf("failed to load migrations: %v", err)
		}

		if len(migrations) < 2 {
			t.Fatalf("expected schema and seed migrations, got %d", len(migrations))
		}

		for i := 1; i < len(migrations); i++ {
			if migrations[i].Version <= migrations[i-1].Version {
				t.Errorf("migrations not sorted: version %d comes after %d", migrations[i].Version, migrations[i-1].Version)
			}
		}

		if migrations[0].Name != "create_catalog" {
			t.Errorf("expected first migration name create_catalog, got %q", migrations[0].Name)
		}
	})

	t.Run("RunMigrations creates catalog tables", func(t *testing.T) {
		db := newMemoryDB(t)

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}

		for _, table := range []string{"artist", "album", "track", "genre", "media_type", "playlist", "playlist_track", "customer", "employee", "invoice"} {
			if _, err := db.Exec("SELECT 1 FROM " + table + " LIMIT 1"); err != nil {
				t.Errorf("%s table should exist after migrations: %v", table, err)
			}
		}

		var title string
		if err := db.QueryRow("SELECT title FROM album WHERE album_id = 348").Scan(&title); err != nil {
			t.Fatalf("sentinel album missing: %v", err)
		}
		if title != "No Album" {
			t.Errorf("expected sentinel album title No Album, got %q", title)
		}
	})

	t.Run("Rollback", func(t *testing.T) {
		db := newMemoryDB(t)

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}

		before, ok, err := CurrentVersion(db)
		if err != nil || !ok {
			t.Fatalf("expected an applied version, got %d %v %v", before, ok, err)
		}

		if err := RollbackMigration(db); err != nil {
			t.Fatalf("failed to rollback migration: %v", err)
		}

		after, _, err := CurrentVersion(db)
		if err != nil {
			t.Fatalf("failed to read version after rollback: %v", err)
		}
		if after >= before {
			t.Errorf("expected version to decrease after rollback, got %d (was %d)", after, before)
		}

		var n int
		if err := db.QueryRow("SELECT COUNT(*) FROM artist WHERE artist_id = 276").Scan(&n); err != nil {
			t.Fatalf("artist table should survive seed rollback: %v", err)
		}
		if n != 0 {
			t.Errorf("expected sentinel artist removed, found %d", n)
		}
	})

	t.Run("Rollback with nothing applied", func(t *testing.T) {
		db := newMemoryDB(t)

		if err := RollbackMigration(db); err == nil {
			t.Error("expected error rolling back an empty database")
		}
	})

	t.Run("Idempotent Migrations", func(t *testing.T) {
		db := newMemoryDB(t)

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations first time: %v", err)
		}
		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations second time: %v", err)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
			t.Fatalf("failed to query schema_migrations: %v", err)
		}

		migrations, _ := loadMigrations()
		if count != len(migrations) {
			t.Errorf("expected %d migrations to be applied, got %d", len(migrations), count)
		}
	})

	t.Run("Foreign keys enforced", func(t *testing.T) {
		db := newMemoryDB(t)
		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}

		if _, err := db.Exec("INSERT INTO album (title, artist_id) VALUES ('Orphan', 999999)"); err == nil {
			t.Error("expected foreign key violation for unknown artist")
		}
	})
}

func TestSplitStatements(t *testing.T) {
	script := `
-- leading comment
CREATE TABLE a (id INTEGER); -- trailing
;
INSERT INTO a VALUES (1);
`
	got := splitStatements(script)
	if len(got) != 2 {
		t.Fatalf("expected 2 statements, got %d: %q", len(got), got)
	}
	if got[0] != "CREATE TABLE a (id INTEGER)" {
		t.Errorf("unexpected first statement %q", got[0])
	}
}
