package repositories

import "database/sql"

// Catalog groups every repository around one connection pool.
type Catalog struct {
	Artists   *ArtistRepository
	Albums    *AlbumRepository
	Tracks    *TrackRepository
	Playlists *PlaylistRepository
	Customers *CustomerRepository
	Employees *EmployeeRepository
	Stats     *StatsRepository
}

// NewCatalog creates a Catalog sharing db across all repositories.
func NewCatalog(db *sql.DB) *Catalog {
	return &Catalog{
		Artists:   NewArtistRepository(db),
		Albums:    NewAlbumRepository(db),
		Tracks:    NewTrackRepository(db),
		Playlists: NewPlaylistRepository(db),
		Customers: NewCustomerRepository(db),
		Employees: NewEmployeeRepository(db),
		Stats:     NewStatsRepository(db),
	}
}
