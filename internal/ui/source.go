package ui

import (
	"context"

	"github.com/desertthunder/catalog/internal/models"
	"github.com/desertthunder/catalog/internal/repositories"
)

// Catalog is the read side of the catalog the browser needs.
type Catalog interface {
	Artists(ctx context.Context) ([]models.Artist, error)
	AlbumsByArtist(ctx context.Context, artistID int64) ([]models.AlbumRow, error)
	TracksByAlbum(ctx context.Context, albumID int64) ([]models.TrackRow, error)
	Playlists(ctx context.Context) ([]models.Playlist, error)
	PlaylistTracks(ctx context.Context, playlistID int64) ([]models.PlaylistTrackRow, error)
}

// repoCatalog adapts [repositories.Catalog] to [Catalog].
type repoCatalog struct {
	c *repositories.Catalog
}

// NewCatalog returns a [Catalog] reading from the repositories in c.
func NewCatalog(c *repositories.Catalog) Catalog {
	return repoCatalog{c: c}
}

func (r repoCatalog) Artists(ctx context.Context) ([]models.Artist, error) {
	return r.c.Artists.List(ctx)
}

func (r repoCatalog) AlbumsByArtist(ctx context.Context, artistID int64) ([]models.AlbumRow, error) {
	return r.c.Albums.ListByArtist(ctx, artistID)
}

func (r repoCatalog) TracksByAlbum(ctx context.Context, albumID int64) ([]models.TrackRow, error) {
	return r.c.Tracks.ListByAlbum(ctx, albumID)
}

func (r repoCatalog) Playlists(ctx context.Context) ([]models.Playlist, error) {
	return r.c.Playlists.List(ctx)
}

func (r repoCatalog) PlaylistTracks(ctx context.Context, playlistID int64) ([]models.PlaylistTrackRow, error) {
	return r.c.Playlists.Tracks(ctx, playlistID)
}
