package models

// TrackRow is a track joined with its genre, album and artist.
//
// Display fields are read through the join on every query, so renames show up immediately.
type TrackRow struct {
	TrackID      int64   `json:"track_id"`
	TrackName    string  `json:"track_name"`
	AlbumID      int64   `json:"album_id"`
	AlbumTitle   string  `json:"album_title"`
	Composer     *string `json:"composer"`
	ArtistName   string  `json:"artist_name"`
	Genre        string  `json:"track_genre"`
	Milliseconds int64   `json:"milliseconds"`
	UnitPrice    float64 `json:"unit_price"`
}

// AlbumRow is an album joined with its artist.
type AlbumRow struct {
	AlbumID    int64  `json:"album_id"`
	Title      string `json:"title"`
	ArtistID   int64  `json:"artist_id"`
	ArtistName string `json:"artist_name"`
}

// PlaylistTrackRow is a track as listed in a playlist.
type PlaylistTrackRow struct {
	TrackID      int64  `json:"track_id"`
	TrackName    string `json:"track_name"`
	AlbumID      int64  `json:"album_id"`
	AlbumTitle   string `json:"album_title"`
	ArtistName   string `json:"artist_name"`
	Milliseconds int64  `json:"milliseconds"`
}

// PlaylistExport is a playlist with its full track listing, used by exporters.
type PlaylistExport struct {
	Playlist Playlist           `json:"playlist"`
	Tracks   []PlaylistTrackRow `json:"tracks"`
}

// Duration returns the summed length of every track in milliseconds.
func (e PlaylistExport) Duration() int64 {
	var total int64
	for _, t := range e.Tracks {
		total += t.Milliseconds
	}
	return total
}

// Stats holds row counts for the admin dashboard.
type Stats struct {
	Tracks    int64 `json:"tracks"`
	Artists   int64 `json:"artists"`
	Albums    int64 `json:"albums"`
	Customers int64 `json:"customers"`
	Playlists int64 `json:"playlists"`
	Employees int64 `json:"employees"`
	Invoices  int64 `json:"invoices"`
}
