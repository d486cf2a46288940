// package formatter renders playlist exports as CSV, Markdown, plain text or JSON
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/desertthunder/catalog/internal/models"
	"github.com/desertthunder/catalog/internal/shared"
)

// Formats lists the supported export formats.
var Formats = []string{"csv", "markdown", "txt", "json"}

// ValidateFormat reports an [shared.ErrInvalidFlag] error for unsupported formats.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return fmt.Errorf("%w: unsupported format %q (want one of %v)", shared.ErrInvalidFlag, format, Formats)
	}
	return nil
}

// BaseName is the file stem used for a playlist's export files, e.g. "playlist_5".
func BaseName(p models.Playlist) string {
	return fmt.Sprintf("playlist_%d", p.ID)
}

// ExportToCSV converts a PlaylistExport to CSV format with columns: ID, Name, Artist, Album, Duration, Milliseconds
func ExportToCSV(export *models.PlaylistExport) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Name", "Artist", "Album", "Duration", "Milliseconds"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, track := range export.Tracks {
		record := []string{
			strconv.FormatInt(track.TrackID, 10),
			track.TrackName,
			track.ArtistName,
			track.AlbumTitle,
			shared.FormatDuration(track.Milliseconds),
			strconv.FormatInt(track.Milliseconds, 10),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a PlaylistExport to a Markdown document with a numbered track list
func ExportToMarkdown(export *models.PlaylistExport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", export.Playlist.Name)
	fmt.Fprintf(&buf, "**Tracks**: %s\n", shared.FormatCount(int64(len(export.Tracks))))
	fmt.Fprintf(&buf, "**Length**: %s\n\n", shared.FormatDuration(export.Duration()))

	buf.WriteString("## Tracks\n\n")
	for i, track := range export.Tracks {
		albumPart := ""
		if track.AlbumTitle != "" {
			albumPart = fmt.Sprintf(" (%s)", track.AlbumTitle)
		}
		fmt.Fprintf(&buf, "%d. %s - %s%s [%s]\n",
			i+1, track.ArtistName, track.TrackName, albumPart, shared.FormatDuration(track.Milliseconds))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a PlaylistExport to plain text format
func ExportToText(export *models.PlaylistExport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Playlist: %s\n", export.Playlist.Name)
	fmt.Fprintf(&buf, "Tracks: %d\n\n", len(export.Tracks))

	for i, track := range export.Tracks {
		fmt.Fprintf(&buf, "%d. %s - %s\n", i+1, track.ArtistName, track.TrackName)
	}

	return buf.Bytes(), nil
}

// ExportToJSON converts a PlaylistExport to indented JSON
func ExportToJSON(export *models.PlaylistExport) ([]byte, error) {
	return shared.MarshalJSON(export, true)
}

// ToMetadataJSON generates a JSON representation of playlist metadata (without tracks)
func ToMetadataJSON(export *models.PlaylistExport) ([]byte, error) {
	return shared.MarshalJSON(struct {
		models.Playlist
		TrackCount   int   `json:"track_count"`
		Milliseconds int64 `json:"milliseconds"`
	}{export.Playlist, len(export.Tracks), export.Duration()}, true)
}

// CSVExportResult contains the paths of files created by WriteCSVExport
type CSVExportResult struct {
	TracksFile   string
	MetadataFile string
}

// WriteCSVExport writes {base}_tracks.csv and {base}_metadata.json.
//
// An empty baseFilepath defaults to [BaseName] in the working directory.
func WriteCSVExport(export *models.PlaylistExport, baseFilepath string) (*CSVExportResult, error) {
	if baseFilepath == "" {
		baseFilepath = BaseName(export.Playlist)
	}

	csvData, err := ExportToCSV(export)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CSV: %w", err)
	}

	tracksFile := baseFilepath + "_tracks.csv"
	if err := os.WriteFile(tracksFile, csvData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}

	metadataJSON, err := ToMetadataJSON(export)
	if err != nil {
		return nil, fmt.Errorf("failed to generate metadata JSON: %w", err)
	}

	metadataFile := baseFilepath + "_metadata.json"
	if err := os.WriteFile(metadataFile, metadataJSON, 0644); err != nil {
		return nil, fmt.Errorf("failed to write metadata file: %w", err)
	}

	return &CSVExportResult{TracksFile: tracksFile, MetadataFile: metadataFile}, nil
}

// WriteMarkdownExport writes {outputDir}/README.md, creating outputDir if needed.
func WriteMarkdownExport(export *models.PlaylistExport, outputDir string) (string, error) {
	if outputDir == "" {
		outputDir = BaseName(export.Playlist)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	mdData, err := ExportToMarkdown(export)
	if err != nil {
		return "", fmt.Errorf("failed to generate Markdown: %w", err)
	}

	mdFile := filepath.Join(outputDir, "README.md")
	if err := os.WriteFile(mdFile, mdData, 0644); err != nil {
		return "", fmt.Errorf("failed to write Markdown file: %w", err)
	}
	return mdFile, nil
}

// WriteTextExport exports a playlist to plain text format.
func WriteTextExport(export *models.PlaylistExport, path string) (string, error) {
	if path == "" {
		path = BaseName(export.Playlist) + "_tracks.txt"
	}

	textData, err := ExportToText(export)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if err := os.WriteFile(path, textData, 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}
	return path, nil
}

// WriteJSONExport writes the full export, tracks included, as indented JSON.
func WriteJSONExport(export *models.PlaylistExport, path string) (string, error) {
	if path == "" {
		path = BaseName(export.Playlist) + ".json"
	}

	data, err := ExportToJSON(export)
	if err != nil {
		return "", fmt.Errorf("JSON marshal failed: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("JSON write failed: %w", err)
	}
	return path, nil
}

// WriteExport writes export into dir using format and returns the files it created.
func WriteExport(export *models.PlaylistExport, format, dir string) ([]string, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}

	base := filepath.Join(dir, BaseName(export.Playlist))

	switch format {
	case "csv":
		res, err := WriteCSVExport(export, base)
		if err != nil {
			return nil, err
		}
		return []string{res.TracksFile, res.MetadataFile}, nil
	case "markdown":
		path, err := WriteMarkdownExport(export, base)
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	case "txt":
		path, err := WriteTextExport(export, base+"_tracks.txt")
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	default:
		path, err := WriteJSONExport(export, base+".json")
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	}
}
