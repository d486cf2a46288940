package models

import (
	"errors"
	"testing"

	"github.com/desertthunder/catalog/internal/shared"
)

func TestChanges(t *testing.T) {
	t.Run("Set keeps insertion order", func(t *testing.T) {
		var c Changes
		c.Set("name", "a")
		c.Set("album_id", int64(2))
		c.Set("composer", "c")

		cols := c.Columns()
		want := []string{"name", "album_id", "composer"}
		for i := range want {
			if cols[i] != want[i] {
				t.Fatalf("expected columns %v, got %v", want, cols)
			}
		}
	})

	t.Run("Set replaces in place", func(t *testing.T) {
		var c Changes
		c.Set("name", "first")
		c.Set("title", "x")
		c.Set("name", "second")

		if len(c) != 2 {
			t.Fatalf("expected 2 changes, got %d", len(c))
		}
		if c[0].Column != "name" || c.Values()[0] != "second" {
			t.Errorf("expected name=second at position 0, got %+v", c[0])
		}
	})
}

func TestValidate(t *testing.T) {
	email := "a@b.c"
	tc := []struct {
		name    string
		entity  Entity
		wantErr bool
	}{
		{name: "artist ok", entity: Artist{Name: "Miles Davis"}},
		{name: "artist blank", entity: Artist{Name: "   "}, wantErr: true},
		{name: "album ok", entity: Album{Title: "Kind of Blue", ArtistID: DefaultArtistID}},
		{name: "album blank", entity: Album{}, wantErr: true},
		{name: "track ok", entity: Track{Name: "So What", UnitPrice: 0.99}},
		{name: "track negative price", entity: Track{Name: "So What", UnitPrice: -1}, wantErr: true},
		{name: "playlist blank", entity: Playlist{}, wantErr: true},
		{name: "customer missing email", entity: Customer{FirstName: "A", LastName: "B"}, wantErr: true},
		{name: "customer ok", entity: Customer{FirstName: "A", LastName: "B", Email: email}},
		{name: "employee missing email", entity: Employee{FirstName: "A", LastName: "B"}, wantErr: true},
		{name: "employee ok", entity: Employee{FirstName: "A", LastName: "B", Email: &email}},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entity.Validate()
			if tt.wantErr {
				if !errors.Is(err, shared.ErrValidation) {
					t.Errorf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestPlaylistExportDuration(t *testing.T) {
	export := PlaylistExport{Tracks: []PlaylistTrackRow{{Milliseconds: 1000}, {Milliseconds: 2500}}}
	if got := export.Duration(); got != 3500 {
		t.Errorf("expected 3500, got %d", got)
	}
}
