package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/desertthunder/catalog/internal/shared"
)

// SetupDatabase initializes the database and runs migrations.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	r.logger.Info("initializing database", "path", r.config.Database.Path)

	if _, err := r.open(); err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	version, _, err := shared.CurrentVersion(r.db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	r.logger.Infof("setup complete for database: %v", r.config.Database.Path)
	return r.writePlain("✓ Database ready at %s (schema version %d)\n", r.config.Database.Path, version)
}

// SetupRollback reverts the most recently applied migration.
func (r *Runner) SetupRollback(ctx context.Context, cmd *cli.Command) error {
	db := r.db
	if db == nil {
		var err error
		if db, err = shared.NewDatabase(r.config.Database.Path); err != nil {
			return err
		}
		defer db.Close()
	}

	before, applied, err := shared.CurrentVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if !applied {
		return r.writePlain("Nothing to roll back\n")
	}

	r.logger.Warn("rolling back migration", "version", before)
	if err := shared.RollbackMigration(db); err != nil {
		return fmt.Errorf("failed to roll back migration %d: %w", before, err)
	}
	return r.writePlain("✓ Rolled back migration %d\n", before)
}

// SetupConfig writes a config file populated with defaults to the --config path.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := r.configPath
	if path == "" {
		path = "config.toml"
	}

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", path)
	return r.writePlain("✓ Config written to %s\n", path)
}
