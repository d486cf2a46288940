package tasks

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/desertthunder/catalog/internal/formatter"
	"github.com/desertthunder/catalog/internal/models"
	"github.com/desertthunder/catalog/internal/shared"
)

// PlaylistSource loads playlists for export.
//
// Implemented by [repositories.PlaylistRepository].
type PlaylistSource interface {
	List(ctx context.Context) ([]models.Playlist, error)
	Export(ctx context.Context, id int64) (*models.PlaylistExport, error)
}

// BulkExportOpts contains configuration for bulk playlist exports.
type BulkExportOpts struct {
	Format     string  // Export format: json, csv, markdown, txt
	OutputDir  string  // Base output directory (default: catalog_export_{epoch})
	NumWorkers int     // Concurrent file writers (default: 4, max: 10)
	RateLimit  float64 // Playlist loads per second (default: 10)
}

// PlaylistExportJob is a loaded playlist waiting to be written.
type PlaylistExportJob struct {
	PlaylistID int64
	Export     *models.PlaylistExport
}

// PlaylistExportResult is the outcome of exporting one playlist.
type PlaylistExportResult struct {
	PlaylistID   int64    `json:"playlist_id"`
	PlaylistName string   `json:"playlist_name"`
	Success      bool     `json:"success"`
	Files        []string `json:"files"`
	Error        error    `json:"-"`
	ErrorMessage string   `json:"error,omitempty"`
}

// BulkExportResult summarizes a bulk export. It is also the manifest's content.
type BulkExportResult struct {
	TotalPlaylists    int                    `json:"total_playlists"`
	SuccessfulExports int                    `json:"successful_exports"`
	FailedExports     int                    `json:"failed_exports"`
	Format            string                 `json:"format"`
	OutputDirectory   string                 `json:"output_directory"`
	ManifestPath      string                 `json:"-"`
	ExportedAt        time.Time              `json:"exported_at"`
	Results           []PlaylistExportResult `json:"results"`
}

// Exporter writes playlists from a [PlaylistSource] to disk.
type Exporter struct {
	source PlaylistSource
	logger *log.Logger
}

// NewExporter creates an Exporter. A nil logger discards log output.
func NewExporter(source PlaylistSource, logger *log.Logger) *Exporter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Exporter{source: source, logger: logger}
}

func (o *BulkExportOpts) setDefaults() {
	if o.Format == "" {
		o.Format = "json"
	}
	if o.OutputDir == "" {
		o.OutputDir = fmt.Sprintf("catalog_export_%d", time.Now().Unix())
	}
	if o.NumWorkers <= 0 {
		o.NumWorkers = 4
	}
	if o.NumWorkers > 10 {
		o.NumWorkers = 10
	}
	if o.RateLimit <= 0 {
		o.RateLimit = 10.0
	}
}

// BulkExport exports playlists concurrently with rate limiting and progress tracking.
//
// An empty ids exports every playlist. A single producer loads playlists through the rate limiter and feeds a pool of
// workers that write files. A playlist that fails to load or write is recorded as failed and the rest continue.
// When ctx is cancelled, in-flight work is drained and ctx's error is returned with the partial result; no manifest is written.
func (e *Exporter) BulkExport(
	ctx context.Context,
	prog chan<- ProgressUpdate,
	ids []int64,
	opts BulkExportOpts,
) (*BulkExportResult, error) {
	if e.source == nil {
		return nil, fmt.Errorf("%w: playlist source not initialized", shared.ErrMissingArgument)
	}

	opts.setDefaults()
	if err := formatter.ValidateFormat(opts.Format); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		playlists, err := e.source.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list playlists: %w", err)
		}
		for _, p := range playlists {
			ids = append(ids, p.ID)
		}
		sendProgress(prog, listPlaylistsUpdate(len(ids)))
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &BulkExportResult{
		TotalPlaylists:  len(ids),
		Format:          opts.Format,
		OutputDirectory: opts.OutputDir,
		ExportedAt:      time.Now().UTC(),
		Results:         make([]PlaylistExportResult, 0, len(ids)),
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	jobs := make(chan PlaylistExportJob, len(ids))
	results := make(chan PlaylistExportResult, len(ids))

	var wg sync.WaitGroup
	for range opts.NumWorkers {
		wg.Add(1)
		go e.exportWorker(ctx, &wg, jobs, results, opts)
	}

	go func() {
		defer close(jobs)
		for i, id := range ids {
			if err := limiter.Wait(ctx); err != nil {
				return
			}

			export, err := e.source.Export(ctx, id)
			if err != nil {
				results <- PlaylistExportResult{
					PlaylistID:   id,
					PlaylistName: fmt.Sprintf("Unknown (%d)", id),
					Error:        fmt.Errorf("failed to load playlist: %w", err),
				}
				continue
			}

			sendProgress(prog, fetchPlaylistUpdate(i+1, len(ids), export))
			jobs <- PlaylistExportJob{PlaylistID: id, Export: export}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		completed++
		if res.Error != nil {
			res.ErrorMessage = res.Error.Error()
			result.FailedExports++
			e.logger.Warn("playlist export failed", "playlist_id", res.PlaylistID, "error", res.Error)
			sendProgress(prog, exportFailedUpdate(completed, len(ids), res.PlaylistName, res.Error))
		} else {
			result.SuccessfulExports++
			sendProgress(prog, exportCompletedUpdate(completed, len(ids), res.PlaylistName, len(res.Files)))
		}
		result.Results = append(result.Results, res)
	}

	slices.SortFunc(result.Results, func(a, b PlaylistExportResult) int {
		return cmp.Compare(a.PlaylistID, b.PlaylistID)
	})

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("export interrupted after %d of %d playlists: %w", completed, len(ids), err)
	}

	manifestPath := filepath.Join(opts.OutputDir, "export_manifest.json")
	if err := writeManifest(result, manifestPath); err != nil {
		return result, fmt.Errorf("export completed but failed to write manifest: %w", err)
	}
	result.ManifestPath = manifestPath
	sendProgress(prog, manifestUpdate(manifestPath))
	return result, nil
}

// exportWorker writes playlists from the jobs channel until it is closed or ctx is done.
func (e *Exporter) exportWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	jobs <-chan PlaylistExportJob,
	results chan<- PlaylistExportResult,
	opts BulkExportOpts,
) {
	defer wg.Done()

	for job := range jobs {
		if ctx.Err() != nil {
			return
		}
		results <- e.exportSinglePlaylist(job, opts)
	}
}

func (e *Exporter) exportSinglePlaylist(j PlaylistExportJob, opts BulkExportOpts) PlaylistExportResult {
	result := PlaylistExportResult{
		PlaylistID:   j.PlaylistID,
		PlaylistName: j.Export.Playlist.Name,
		Files:        []string{},
	}

	files, err := formatter.WriteExport(j.Export, opts.Format, opts.OutputDir)
	if err != nil {
		result.Error = fmt.Errorf("%s export failed: %w", opts.Format, err)
		return result
	}

	result.Files = files
	result.Success = true
	return result
}

func writeManifest(result *BulkExportResult, path string) error {
	data, err := shared.MarshalJSON(result, true)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
