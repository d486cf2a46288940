package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/desertthunder/catalog/internal/models"
	"github.com/desertthunder/catalog/internal/shared"
)

var playlistTable = &Table[models.Playlist]{
	name:      "playlist",
	entity:    "Playlist",
	key:       "playlist_id",
	columns:   []string{"playlist_id", "name"},
	updatable: []string{"name"},
	orderBy:   "playlist_id",
	scan:      scanPlaylist,
}

// playlistTrackRows lists the tracks of a playlist with album and artist names.
var playlistTrackRows = &Projection[models.PlaylistTrackRow]{
	from: `playlist_track
		JOIN track ON playlist_track.track_id = track.track_id
		JOIN album ON track.album_id = album.album_id
		JOIN artist ON album.artist_id = artist.artist_id`,
	columns: []string{
		"track.track_id", "track.name", "track.album_id",
		"album.title", "artist.name", "track.milliseconds",
	},
	orderBy: "track.name COLLATE NOCASE, track.track_id",
	scan: func(s scanner) (models.PlaylistTrackRow, error) {
		var r models.PlaylistTrackRow
		err := s.Scan(&r.TrackID, &r.TrackName, &r.AlbumID, &r.AlbumTitle, &r.ArtistName, &r.Milliseconds)
		return r, err
	},
}

// PlaylistRepository implements [models.Repository] for playlists and manages
// the playlist_track association rows they own.
type PlaylistRepository struct {
	*crud[models.Playlist]
}

var _ models.Repository[models.Playlist] = (*PlaylistRepository)(nil)

// NewPlaylistRepository creates a new PlaylistRepository with the given database connection
func NewPlaylistRepository(db *sql.DB) *PlaylistRepository {
	return &PlaylistRepository{crud: newCrud(db, playlistTable, playlistValues)}
}

// Delete removes a playlist and all of its track associations in one transaction.
//
// If the playlist row cannot be deleted, the association deletes are rolled back.
func (r *PlaylistRepository) Delete(ctx context.Context, id int64) (*models.Playlist, error) {
	var deleted *models.Playlist

	err := WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM playlist_track WHERE playlist_id = ?1", id); err != nil {
			return storageError("delete playlist tracks", err)
		}

		p, err := playlistTable.Delete(ctx, tx, id)
		if err != nil {
			return err
		}
		deleted = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// AddTracks associates trackIDs with a playlist, in order, and returns the inserted rows.
//
// All rows are inserted in one transaction: a duplicate or unknown track leaves the playlist unchanged.
func (r *PlaylistRepository) AddTracks(ctx context.Context, playlistID int64, trackIDs []int64) ([]models.PlaylistTrack, error) {
	if len(trackIDs) == 0 {
		return nil, shared.NewValidationError("trackIds", "trackIds must be a non-empty array")
	}

	added := make([]models.PlaylistTrack, 0, len(trackIDs))

	err := WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := playlistTable.Get(ctx, tx, playlistID); err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx,
			"INSERT INTO playlist_track (playlist_id, track_id) VALUES (?1, ?2) RETURNING playlist_id, track_id")
		if err != nil {
			return storageError("prepare playlist track insert", err)
		}
		defer stmt.Close()

		for _, trackID := range trackIDs {
			var pt models.PlaylistTrack
			if err := stmt.QueryRowContext(ctx, playlistID, trackID).Scan(&pt.PlaylistID, &pt.TrackID); err != nil {
				return storageError(fmt.Sprintf("add track %d to playlist %d", trackID, playlistID), err)
			}
			added = append(added, pt)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}

// RemoveTrack deletes a single association row and returns it.
func (r *PlaylistRepository) RemoveTrack(ctx context.Context, playlistID, trackID int64) (*models.PlaylistTrack, error) {
	var pt models.PlaylistTrack
	err := r.db.QueryRowContext(ctx,
		"DELETE FROM playlist_track WHERE playlist_id = ?1 AND track_id = ?2 RETURNING playlist_id, track_id",
		playlistID, trackID,
	).Scan(&pt.PlaylistID, &pt.TrackID)
	if isNoRows(err) {
		return nil, shared.NewNotFoundError("Track in playlist")
	}
	if err != nil {
		return nil, storageError("remove track from playlist", err)
	}
	return &pt, nil
}

// Tracks returns the tracks of a playlist ordered by track name. An unknown playlist yields an empty list.
func (r *PlaylistRepository) Tracks(ctx context.Context, playlistID int64) ([]models.PlaylistTrackRow, error) {
	return playlistTrackRows.Query(ctx, r.db, &Filter{Clause: "playlist_track.playlist_id = ?1", Arg: playlistID})
}

// Export loads a playlist and its full track listing.
func (r *PlaylistRepository) Export(ctx context.Context, playlistID int64) (*models.PlaylistExport, error) {
	p, err := r.Get(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	tracks, err := r.Tracks(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	return &models.PlaylistExport{Playlist: *p, Tracks: tracks}, nil
}

func playlistValues(p models.Playlist) models.Changes {
	var c models.Changes
	c.Set("name", p.Name)
	return c
}

func scanPlaylist(s scanner) (models.Playlist, error) {
	var p models.Playlist
	err := s.Scan(&p.ID, &p.Name)
	return p, err
}
