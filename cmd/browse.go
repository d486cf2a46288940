package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/desertthunder/catalog/internal/shared"
	"github.com/desertthunder/catalog/internal/tasks"
	"github.com/desertthunder/catalog/internal/ui"
)

// Browse launches the interactive terminal catalog browser.
func (r *Runner) Browse(ctx context.Context, cmd *cli.Command) error {
	catalog, err := r.open()
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/catalog-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	opts := tasks.BulkExportOpts{
		Format:     r.config.Export.Format,
		OutputDir:  r.config.Export.OutputDir,
		NumWorkers: 1,
		RateLimit:  r.config.Export.RateLimit,
	}
	model := ui.NewModel(ctx, ui.NewCatalog(catalog), tasks.NewExporter(catalog.Playlists, fileLogger), opts)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
