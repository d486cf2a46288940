package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/desertthunder/catalog/internal/models"
	"github.com/desertthunder/catalog/internal/tasks"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgArtistsFetched MsgKind = iota
	MsgAlbumsFetched
	MsgTracksFetched
	MsgPlaylistsFetched
	MsgPlaylistTracksFetched
	MsgProgressUpdate
	MsgExportComplete
)

// fetched is the payload of every *Fetched message.
type fetched[T any] struct {
	rows []T
	err  error
}

// exported is the payload of [MsgExportComplete].
type exported struct {
	result *tasks.BulkExportResult
	err    error
}

// artistsFetchedMsg is the constructor for [MsgArtistsFetched]
func artistsFetchedMsg(rows []models.Artist, err error) Msg {
	return Msg{kind: MsgArtistsFetched, data: fetched[models.Artist]{rows, err}}
}

// albumsFetchedMsg is the constructor for [MsgAlbumsFetched]
func albumsFetchedMsg(rows []models.AlbumRow, err error) Msg {
	return Msg{kind: MsgAlbumsFetched, data: fetched[models.AlbumRow]{rows, err}}
}

// tracksFetchedMsg is the constructor for [MsgTracksFetched]
func tracksFetchedMsg(rows []models.TrackRow, err error) Msg {
	return Msg{kind: MsgTracksFetched, data: fetched[models.TrackRow]{rows, err}}
}

// playlistsFetchedMsg is the constructor for [MsgPlaylistsFetched]
func playlistsFetchedMsg(rows []models.Playlist, err error) Msg {
	return Msg{kind: MsgPlaylistsFetched, data: fetched[models.Playlist]{rows, err}}
}

// playlistTracksFetchedMsg is the constructor for [MsgPlaylistTracksFetched]
func playlistTracksFetchedMsg(rows []models.PlaylistTrackRow, err error) Msg {
	return Msg{kind: MsgPlaylistTracksFetched, data: fetched[models.PlaylistTrackRow]{rows, err}}
}

// progressUpdateMsg is the constructor for [MsgProgressUpdate]
func progressUpdateMsg(update tasks.ProgressUpdate) Msg {
	return Msg{kind: MsgProgressUpdate, data: update}
}

// exportCompleteMsg is the constructor for [MsgExportComplete]
func exportCompleteMsg(result *tasks.BulkExportResult, err error) Msg {
	return Msg{kind: MsgExportComplete, data: exported{result, err}}
}
