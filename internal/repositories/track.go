package repositories

import (
	"context"
	"database/sql"

	"github.com/desertthunder/catalog/internal/models"
)

var trackTable = &Table[models.Track]{
	name:   "track",
	entity: "Track",
	key:    "track_id",
	columns: []string{
		"track_id", "name", "album_id", "media_type_id", "genre_id",
		"composer", "milliseconds", "bytes", "unit_price",
	},
	updatable: []string{
		"name", "album_id", "media_type_id", "genre_id",
		"composer", "milliseconds", "bytes", "unit_price",
	},
	orderBy: "name COLLATE NOCASE, track_id",
	scan:    scanTrack,
}

// trackRows joins each track to its genre, album and album artist.
var trackRows = &Projection[models.TrackRow]{
	from: `track
		JOIN genre ON track.genre_id = genre.genre_id
		JOIN album ON track.album_id = album.album_id
		JOIN artist ON album.artist_id = artist.artist_id`,
	columns: []string{
		"track.track_id", "track.name", "track.album_id", "album.title", "track.composer",
		"artist.name", "COALESCE(genre.name, '')", "track.milliseconds", "track.unit_price",
	},
	orderBy: "track.name COLLATE NOCASE, track.track_id",
	scan: func(s scanner) (models.TrackRow, error) {
		var r models.TrackRow
		err := s.Scan(&r.TrackID, &r.TrackName, &r.AlbumID, &r.AlbumTitle, &r.Composer,
			&r.ArtistName, &r.Genre, &r.Milliseconds, &r.UnitPrice)
		return r, err
	},
}

// TrackRepository implements [models.Repository] for tracks and serves the joined track listings.
type TrackRepository struct {
	*crud[models.Track]
}

var _ models.Repository[models.Track] = (*TrackRepository)(nil)

// NewTrackRepository creates a new TrackRepository with the given database connection
func NewTrackRepository(db *sql.DB) *TrackRepository {
	return &TrackRepository{crud: newCrud(db, trackTable, trackValues)}
}

// ListRows returns every track with album, artist and genre names, ordered by track name.
func (r *TrackRepository) ListRows(ctx context.Context) ([]models.TrackRow, error) {
	return trackRows.Query(ctx, r.db, nil)
}

// ListByAlbum returns the tracks of one album.
func (r *TrackRepository) ListByAlbum(ctx context.Context, albumID int64) ([]models.TrackRow, error) {
	return trackRows.Query(ctx, r.db, &Filter{Clause: "track.album_id = ?1", Arg: albumID})
}

// ListByArtist returns the tracks on every album of one artist.
func (r *TrackRepository) ListByArtist(ctx context.Context, artistID int64) ([]models.TrackRow, error) {
	return trackRows.Query(ctx, r.db, &Filter{
		Clause: "track.album_id IN (SELECT album.album_id FROM album WHERE album.artist_id = ?1)",
		Arg:    artistID,
	})
}

// trackValues fills the album, media type and genre sentinels when they are left out.
func trackValues(t models.Track) models.Changes {
	var c models.Changes
	c.Set("name", t.Name)
	c.Set("album_id", orDefault(t.AlbumID, models.DefaultAlbumID))
	c.Set("media_type_id", orDefault(&t.MediaTypeID, models.DefaultMediaTypeID))
	c.Set("genre_id", orDefault(t.GenreID, models.DefaultGenreID))
	c.Set("composer", t.Composer)
	c.Set("milliseconds", t.Milliseconds)
	c.Set("bytes", t.Bytes)
	c.Set("unit_price", t.UnitPrice)
	return c
}

func scanTrack(s scanner) (models.Track, error) {
	var t models.Track
	err := s.Scan(&t.ID, &t.Name, &t.AlbumID, &t.MediaTypeID, &t.GenreID,
		&t.Composer, &t.Milliseconds, &t.Bytes, &t.UnitPrice)
	return t, err
}
