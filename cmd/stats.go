package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/urfave/cli/v3"

	"github.com/desertthunder/catalog/internal/models"
	"github.com/desertthunder/catalog/internal/shared"
	"github.com/desertthunder/catalog/internal/tasks"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	countStyle  = cellStyle.Align(lipgloss.Right)
)

// Stats prints row counts for the catalog tables, gathered concurrently.
func (r *Runner) Stats(ctx context.Context, cmd *cli.Command) error {
	ctx, cancel := withTimeout(ctx, cmd)
	defer cancel()

	catalog, err := r.open()
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}

	stats, err := tasks.NewStatsCollector(catalog.Stats).Collect(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(stats, cmd.Bool("pretty"))
	}
	return r.writePlain("%s\n", statsTable(stats))
}

func statsTable(s *models.Stats) string {
	rows := [][]string{
		{"Artists", shared.FormatCount(s.Artists)},
		{"Albums", shared.FormatCount(s.Albums)},
		{"Tracks", shared.FormatCount(s.Tracks)},
		{"Playlists", shared.FormatCount(s.Playlists)},
		{"Customers", shared.FormatCount(s.Customers)},
		{"Employees", shared.FormatCount(s.Employees)},
		{"Invoices", shared.FormatCount(s.Invoices)},
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))).
		Headers("Table", "Rows").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return countStyle
			default:
				return cellStyle
			}
		})
	return t.String()
}
