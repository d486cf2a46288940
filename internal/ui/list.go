package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/desertthunder/catalog/internal/models"
	"github.com/desertthunder/catalog/internal/shared"
)

var (
	_ list.Item = menuItem{}
	_ list.Item = artistItem{}
	_ list.Item = albumItem{}
	_ list.Item = trackItem{}
	_ list.Item = playlistItem{}
	_ list.Item = playlistTrackItem{}
)

// menuItem is an entry of the top-level menu; target is the view it opens.
type menuItem struct {
	title, desc string
	target      ViewState
}

func (i menuItem) FilterValue() string { return i.title }
func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }

// artistItem wraps [models.Artist] to implement [list.Item].
type artistItem struct {
	artist models.Artist
}

func (i artistItem) FilterValue() string { return i.artist.Name }
func (i artistItem) Title() string       { return i.artist.Name }
func (i artistItem) Description() string { return fmt.Sprintf("artist #%d", i.artist.ID) }

// albumItem wraps [models.AlbumRow] to implement [list.Item].
type albumItem struct {
	album models.AlbumRow
}

func (i albumItem) FilterValue() string { return i.album.Title }
func (i albumItem) Title() string       { return i.album.Title }
func (i albumItem) Description() string { return i.album.ArtistName }

// trackItem wraps [models.TrackRow] to implement [list.Item].
type trackItem struct {
	track models.TrackRow
}

func (i trackItem) FilterValue() string { return i.track.TrackName }
func (i trackItem) Title() string       { return i.track.TrackName }
func (i trackItem) Description() string {
	return fmt.Sprintf("%s • %s • %s", shared.FormatDuration(i.track.Milliseconds), i.track.Genre, shared.FormatPrice(i.track.UnitPrice))
}

// playlistItem wraps [models.Playlist] to implement [list.Item].
type playlistItem struct {
	playlist models.Playlist
}

func (i playlistItem) FilterValue() string { return i.playlist.Name }
func (i playlistItem) Title() string       { return i.playlist.Name }
func (i playlistItem) Description() string { return fmt.Sprintf("playlist #%d", i.playlist.ID) }

// playlistTrackItem wraps [models.PlaylistTrackRow] to implement [list.Item].
type playlistTrackItem struct {
	track models.PlaylistTrackRow
}

func (i playlistTrackItem) FilterValue() string { return i.track.TrackName }
func (i playlistTrackItem) Title() string       { return i.track.TrackName }
func (i playlistTrackItem) Description() string {
	desc := i.track.ArtistName
	if i.track.AlbumTitle != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.track.AlbumTitle)
	}
	return fmt.Sprintf("%s • %s", desc, shared.FormatDuration(i.track.Milliseconds))
}

// toItems wraps each row as a [list.Item].
func toItems[T any](rows []T, wrap func(T) list.Item) []list.Item {
	items := make([]list.Item, len(rows))
	for i, row := range rows {
		items[i] = wrap(row)
	}
	return items
}
