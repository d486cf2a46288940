package repositories

import (
	"context"
	"database/sql"

	"github.com/desertthunder/catalog/internal/models"
)

var albumTable = &Table[models.Album]{
	name:      "album",
	entity:    "Album",
	key:       "album_id",
	columns:   []string{"album_id", "title", "artist_id"},
	updatable: []string{"title", "artist_id"},
	orderBy:   "title COLLATE NOCASE, album_id",
	scan:      scanAlbum,
}

// albumRows joins each album to its artist.
var albumRows = &Projection[models.AlbumRow]{
	from:    "album JOIN artist ON album.artist_id = artist.artist_id",
	columns: []string{"album.album_id", "album.title", "album.artist_id", "artist.name"},
	orderBy: "album.title COLLATE NOCASE, album.album_id",
	scan: func(s scanner) (models.AlbumRow, error) {
		var r models.AlbumRow
		err := s.Scan(&r.AlbumID, &r.Title, &r.ArtistID, &r.ArtistName)
		return r, err
	},
}

// AlbumRepository implements [models.Repository] for albums and serves album listings joined with artists.
type AlbumRepository struct {
	*crud[models.Album]
}

var _ models.Repository[models.Album] = (*AlbumRepository)(nil)

// NewAlbumRepository creates a new AlbumRepository with the given database connection
func NewAlbumRepository(db *sql.DB) *AlbumRepository {
	return &AlbumRepository{crud: newCrud(db, albumTable, albumValues)}
}

// ListWithArtists returns every album with its artist name, ordered by title.
func (r *AlbumRepository) ListWithArtists(ctx context.Context) ([]models.AlbumRow, error) {
	return albumRows.Query(ctx, r.db, nil)
}

// GetWithArtist returns the album with its artist name as a zero- or one-element list.
func (r *AlbumRepository) GetWithArtist(ctx context.Context, id int64) ([]models.AlbumRow, error) {
	return albumRows.Query(ctx, r.db, &Filter{Clause: "album.album_id = ?1", Arg: id})
}

// ListByArtist returns the albums of one artist, ordered by title.
func (r *AlbumRepository) ListByArtist(ctx context.Context, artistID int64) ([]models.AlbumRow, error) {
	return albumRows.Query(ctx, r.db, &Filter{Clause: "album.artist_id = ?1", Arg: artistID})
}

// albumValues substitutes the "no artist" sentinel when the artist is left out.
func albumValues(a models.Album) models.Changes {
	var c models.Changes
	c.Set("title", a.Title)
	c.Set("artist_id", orDefault(&a.ArtistID, models.DefaultArtistID))
	return c
}

func scanAlbum(s scanner) (models.Album, error) {
	var a models.Album
	err := s.Scan(&a.ID, &a.Title, &a.ArtistID)
	return a, err
}
