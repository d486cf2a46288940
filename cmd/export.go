package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/desertthunder/catalog/internal/formatter"
	"github.com/desertthunder/catalog/internal/shared"
	"github.com/desertthunder/catalog/internal/tasks"
)

// exportTarget resolves --format and --output against the [export] config section.
func (r *Runner) exportTarget(cmd *cli.Command) (string, string, error) {
	format := cmd.String("format")
	if format == "" {
		format = r.config.Export.Format
	}
	if err := formatter.ValidateFormat(format); err != nil {
		return "", "", err
	}

	dir := cmd.String("output")
	if dir == "" {
		dir = r.config.Export.OutputDir
	}
	return format, dir, nil
}

// ExportPlaylist writes a single playlist in the requested format.
func (r *Runner) ExportPlaylist(ctx context.Context, cmd *cli.Command) error {
	ctx, cancel := withTimeout(ctx, cmd)
	defer cancel()

	id := int64(cmd.Int("id"))
	if id <= 0 {
		return fmt.Errorf("%w: --id must be a positive playlist id", shared.ErrInvalidFlag)
	}

	format, dir, err := r.exportTarget(cmd)
	if err != nil {
		return err
	}

	catalog, err := r.open()
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}

	r.logger.Info("exporting playlist", "id", id, "format", format, "dir", dir)
	export, err := catalog.Playlists.Export(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load playlist %d: %w", id, err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	files, err := formatter.WriteExport(export, format, dir)
	if err != nil {
		return fmt.Errorf("failed to export playlist %d: %w", id, err)
	}

	r.writePlain("✓ Exported %s (%d tracks)\n", export.Playlist.Name, len(export.Tracks))
	for _, f := range files {
		r.writePlain("  %s\n", f)
	}
	return nil
}

// ExportAll exports every playlist with a worker pool and writes a manifest.
//
// Unlike one-shot commands, the bulk export is not bounded by --timeout.
func (r *Runner) ExportAll(ctx context.Context, cmd *cli.Command) error {
	format, dir, err := r.exportTarget(cmd)
	if err != nil {
		return err
	}

	catalog, err := r.open()
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}

	opts := tasks.BulkExportOpts{
		Format:     format,
		OutputDir:  dir,
		NumWorkers: r.config.Export.Workers,
		RateLimit:  r.config.Export.RateLimit,
	}
	if w := cmd.Int("workers"); w > 0 {
		opts.NumWorkers = int(w)
	}
	if rl := cmd.Float("rate"); rl > 0 {
		opts.RateLimit = rl
	}

	r.writePlain("Exporting all playlists as %s...\n\n", format)

	progressCh := make(chan tasks.ProgressUpdate, 50)
	printed := make(chan struct{})
	go func() {
		defer close(printed)
		for update := range progressCh {
			switch update.Phase {
			case tasks.ListPlaylists:
				r.writePlain("📥 %s\n", update.Message)
			case tasks.ExportPlaylist:
				r.writePlain("   [%d/%d] %s\n", update.Step, update.Total, update.Message)
			case tasks.WriteManifest:
				r.writePlain("\n📝 %s\n", update.Message)
			default:
				r.logger.Debug(update.Message, "phase", update.Phase)
			}
		}
	}()

	result, err := tasks.NewExporter(catalog.Playlists, r.logger).BulkExport(ctx, progressCh, nil, opts)
	close(progressCh)
	<-printed

	if err != nil {
		return err
	}

	r.writePlain("\n")
	r.writePlainHeader("Export Complete!")
	r.writePlain("Playlists: %d\n", result.TotalPlaylists)
	r.writePlain("Succeeded: %d\n", result.SuccessfulExports)
	r.writePlain("Failed: %d\n", result.FailedExports)
	r.writePlain("Output: %s\n", result.OutputDirectory)

	if result.FailedExports > 0 {
		r.writePlain("\nFailed playlists:\n")
		for _, res := range result.Results {
			if !res.Success {
				r.writePlain("  - %s: %s\n", res.PlaylistName, res.ErrorMessage)
			}
		}
	}
	return nil
}
