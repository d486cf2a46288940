package formatter

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/catalog/internal/models"
	"github.com/desertthunder/catalog/internal/shared"
	th "github.com/desertthunder/catalog/internal/testing"
)

func testExport() *models.PlaylistExport {
	return &models.PlaylistExport{
		Playlist: models.Playlist{ID: 5, Name: "Road Trip"},
		Tracks: []models.PlaylistTrackRow{
			{
				TrackID:      1,
				TrackName:    "Song One",
				AlbumID:      10,
				AlbumTitle:   "Album One",
				ArtistName:   "Artist One",
				Milliseconds: 180000,
			},
			{
				TrackID:      2,
				TrackName:    "Song, Two",
				AlbumID:      11,
				ArtistName:   "Artist Two",
				Milliseconds: 240500,
			},
		},
	}
}

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(testExport())
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		output := string(data)

		if !strings.HasPrefix(output, "ID,Name,Artist,Album,Duration,Milliseconds\n") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "1,Song One,Artist One,Album One,3:00,180000") {
			t.Errorf("CSV missing track1 row, got: %s", output)
		}
		if !strings.Contains(output, `2,"Song, Two",Artist Two,,4:00,240500`) {
			t.Errorf("CSV should quote names containing commas, got: %s", output)
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(testExport())
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "# Road Trip") {
			t.Errorf("Markdown missing title")
		}
		if !strings.Contains(output, "**Tracks**: 2") {
			t.Errorf("Markdown missing track count")
		}
		if !strings.Contains(output, "**Length**: 7:00") {
			t.Errorf("Markdown missing total length, got: %s", output)
		}
		if !strings.Contains(output, "1. Artist One - Song One (Album One) [3:00]") {
			t.Errorf("Markdown missing track1, got: %s", output)
		}
		if !strings.Contains(output, "2. Artist Two - Song, Two [4:00]") {
			t.Errorf("Markdown missing track2 (no album), got: %s", output)
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(testExport())
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "Playlist: Road Trip") {
			t.Errorf("Text missing playlist name")
		}
		if !strings.Contains(output, "Tracks: 2") {
			t.Errorf("Text missing track count")
		}
		if !strings.Contains(output, "1. Artist One - Song One") {
			t.Errorf("Text missing track1")
		}
	})

	t.Run("ToMetadataJSON", func(t *testing.T) {
		data, err := ToMetadataJSON(testExport())
		if err != nil {
			t.Fatalf("ToMetadataJSON failed: %v", err)
		}

		output := string(data)

		for _, want := range []string{`"playlist_id": 5`, `"name": "Road Trip"`, `"track_count": 2`, `"milliseconds": 420500`} {
			if !strings.Contains(output, want) {
				t.Errorf("metadata missing %s, got: %s", want, output)
			}
		}
		if strings.Contains(output, "Song One") {
			t.Errorf("metadata should not include tracks")
		}
	})

	t.Run("ExportToJSON", func(t *testing.T) {
		data, err := ExportToJSON(testExport())
		if err != nil {
			t.Fatalf("ExportToJSON failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, `"Road Trip"`) {
			t.Errorf("JSON missing playlist name")
		}
		if !strings.Contains(output, `"track_name": "Song One"`) {
			t.Errorf("JSON missing track1 name")
		}
	})
}

func TestWriters(t *testing.T) {
	t.Run("WriteCSVExport", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "custom_export")

		result, err := WriteCSVExport(testExport(), base)
		if err != nil {
			t.Fatalf("WriteCSVExport failed: %v", err)
		}

		if result.TracksFile != base+"_tracks.csv" {
			t.Errorf("unexpected tracks file %q", result.TracksFile)
		}
		if result.MetadataFile != base+"_metadata.json" {
			t.Errorf("unexpected metadata file %q", result.MetadataFile)
		}

		th.AssertFileExists(t, result.TracksFile)
		th.AssertFileExists(t, result.MetadataFile)

		if content := th.MustReadFile(t, result.TracksFile); !strings.Contains(content, "Song One") {
			t.Errorf("CSV missing track data")
		}
	})

	t.Run("WriteMarkdownExport", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "road_trip")

		path, err := WriteMarkdownExport(testExport(), dir)
		if err != nil {
			t.Fatalf("WriteMarkdownExport failed: %v", err)
		}

		if path != filepath.Join(dir, "README.md") {
			t.Errorf("unexpected path %q", path)
		}
		if content := th.MustReadFile(t, path); !strings.Contains(content, "# Road Trip") {
			t.Errorf("Markdown file missing title")
		}
	})

	t.Run("WriteTextExport into missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "out.txt")

		if _, err := WriteTextExport(testExport(), path); err == nil {
			t.Error("expected error writing into a missing directory")
		}
	})
}

func TestWriteExport(t *testing.T) {
	tests := []struct {
		format string
		files  []string
	}{
		{"csv", []string{"playlist_5_tracks.csv", "playlist_5_metadata.json"}},
		{"markdown", []string{filepath.Join("playlist_5", "README.md")}},
		{"txt", []string{"playlist_5_tracks.txt"}},
		{"json", []string{"playlist_5.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			dir := t.TempDir()

			files, err := WriteExport(testExport(), tt.format, dir)
			if err != nil {
				t.Fatalf("WriteExport failed: %v", err)
			}

			if len(files) != len(tt.files) {
				t.Fatalf("expected %d files, got %v", len(tt.files), files)
			}
			for i, name := range tt.files {
				want := filepath.Join(dir, name)
				if files[i] != want {
					t.Errorf("file %d: expected %q, got %q", i, want, files[i])
				}
				if _, err := os.Stat(want); err != nil {
					t.Errorf("file %q not written: %v", want, err)
				}
			}
		})
	}

	t.Run("unsupported format", func(t *testing.T) {
		_, err := WriteExport(testExport(), "xml", t.TempDir())
		if !errors.Is(err, shared.ErrInvalidFlag) {
			t.Errorf("expected invalid flag error, got %v", err)
		}
	})
}
