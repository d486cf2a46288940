package tasks

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/desertthunder/catalog/internal/models"
)

// Counter counts the rows of one named table.
//
// Implemented by [repositories.StatsRepository].
type Counter interface {
	Count(ctx context.Context, table string) (int64, error)
}

// StatsCollector builds the admin dashboard counts.
type StatsCollector struct {
	counter Counter
}

// NewStatsCollector creates a StatsCollector over counter.
func NewStatsCollector(counter Counter) *StatsCollector {
	return &StatsCollector{counter: counter}
}

// Collect counts every dashboard table concurrently.
//
// The counts share one derived context: the first failure cancels the others and no partial stats are returned.
func (s *StatsCollector) Collect(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats
	targets := []struct {
		table string
		dest  *int64
	}{
		{"track", &stats.Tracks},
		{"artist", &stats.Artists},
		{"album", &stats.Albums},
		{"customer", &stats.Customers},
		{"playlist", &stats.Playlists},
		{"employee", &stats.Employees},
		{"invoice", &stats.Invoices},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, target := range targets {
		g.Go(func() error {
			n, err := s.counter.Count(gctx, target.table)
			if err != nil {
				return fmt.Errorf("failed to count %s: %w", target.table, err)
			}
			*target.dest = n
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
