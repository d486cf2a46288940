// Package ui implements an interactive terminal catalog browser using bubbletea's Elm architecture.
//
// Views form two drill-down paths from the [MenuView]:
//  1. [ArtistListView] → [AlbumListView] → [TrackListView] : artists, their albums, an album's tracks
//  2. [PlaylistListView] → [PlaylistTrackView] : playlists and their tracks
//
// From a playlist, [ConfirmView], [ExportView] and [ResultView] export it to disk, streaming progress updates from a
// [tasks.Exporter] over a channel.
//
// The [Model] reads through the [Catalog] interface. Lists are paged and filtered client-side by bubbles/list.
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, e, y/n, q) with contextual help from bubbles/help.
package ui
