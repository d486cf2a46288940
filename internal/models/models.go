package models

import (
	"context"
	"strings"

	"github.com/desertthunder/catalog/internal/shared"
)

// Foreign keys substituted when a create request leaves a reference out.
// The rows are seeded by the bootstrap migration.
const (
	DefaultArtistID    int64 = 276 // "No Artist"
	DefaultAlbumID     int64 = 348 // "No Album"
	DefaultMediaTypeID int64 = 1
	DefaultGenreID     int64 = 1
)

// Entity is implemented by every catalog table row.
type Entity interface {
	Validate() error // Validate checks required fields before an insert
}

// Repository defines the data access operations shared by every catalog table.
type Repository[T Entity] interface {
	List(ctx context.Context) ([]T, error)                             // List returns every row in display order
	Get(ctx context.Context, id int64) (*T, error)                     // Get returns one row or a not-found error
	Create(ctx context.Context, v T) (*T, error)                       // Create inserts v and returns the stored row
	Update(ctx context.Context, id int64, changes Changes) (*T, error) // Update applies a partial update
	Delete(ctx context.Context, id int64) (*T, error)                  // Delete removes a row and returns it as it was
}

// Change is a single column assignment.
type Change struct {
	Column string
	Value  any
}

// Changes is an ordered list of column assignments. Order of insertion is preserved.
type Changes []Change

// Set records value for column, replacing an earlier value for the same column in place.
func (c *Changes) Set(column string, value any) {
	for i := range *c {
		if (*c)[i].Column == column {
			(*c)[i].Value = value
			return
		}
	}
	*c = append(*c, Change{Column: column, Value: value})
}

// Columns returns the assigned columns in order.
func (c Changes) Columns() []string {
	cols := make([]string, len(c))
	for i, ch := range c {
		cols[i] = ch.Column
	}
	return cols
}

// Values returns the assigned values in order.
func (c Changes) Values() []any {
	vals := make([]any, len(c))
	for i, ch := range c {
		vals[i] = ch.Value
	}
	return vals
}

// Artist is a row of the artist table.
type Artist struct {
	ID   int64  `json:"artist_id"`
	Name string `json:"name"`
}

func (a Artist) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return shared.NewValidationError("name", "Artist name is required")
	}
	return nil
}

// Album is a row of the album table.
type Album struct {
	ID       int64  `json:"album_id"`
	Title    string `json:"title"`
	ArtistID int64  `json:"artist_id"`
}

func (a Album) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return shared.NewValidationError("title", "Album title is required")
	}
	return nil
}

// Track is a row of the track table.
type Track struct {
	ID           int64   `json:"track_id"`
	Name         string  `json:"name"`
	AlbumID      *int64  `json:"album_id"`
	MediaTypeID  int64   `json:"media_type_id"`
	GenreID      *int64  `json:"genre_id"`
	Composer     *string `json:"composer"`
	Milliseconds int64   `json:"milliseconds"`
	Bytes        *int64  `json:"bytes"`
	UnitPrice    float64 `json:"unit_price"`
}

func (t Track) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return shared.NewValidationError("trackName", "Missing required fields: 'trackName' is required")
	}
	if t.UnitPrice < 0 {
		return shared.NewValidationError("unitPrice", "Invalid input: 'unitPrice' must not be negative")
	}
	if t.Milliseconds < 0 {
		return shared.NewValidationError("seconds", "Invalid input: 'seconds' must not be negative")
	}
	return nil
}

// Playlist is a row of the playlist table.
type Playlist struct {
	ID   int64  `json:"playlist_id"`
	Name string `json:"name"`
}

func (p Playlist) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return shared.NewValidationError("name", "Playlist name is required")
	}
	return nil
}

// PlaylistTrack is an association row: a track contained in a playlist.
type PlaylistTrack struct {
	PlaylistID int64 `json:"playlist_id"`
	TrackID    int64 `json:"track_id"`
}

// Customer is a row of the customer table.
type Customer struct {
	ID           int64   `json:"customer_id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Company      *string `json:"company"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Country      *string `json:"country"`
	PostalCode   *string `json:"postal_code"`
	Phone        *string `json:"phone"`
	Fax          *string `json:"fax"`
	Email        string  `json:"email"`
	SupportRepID *int64  `json:"support_rep_id"`
}

func (c Customer) Validate() error {
	if blank(c.FirstName) || blank(c.LastName) || blank(c.Email) {
		return shared.NewValidationError("firstName",
			"Missing required fields: 'firstName', 'lastName', and 'email' are required.")
	}
	return nil
}

// Employee is a row of the employee table.
type Employee struct {
	ID         int64   `json:"employee_id"`
	LastName   string  `json:"last_name"`
	FirstName  string  `json:"first_name"`
	Title      *string `json:"title"`
	ReportsTo  *int64  `json:"reports_to"`
	BirthDate  *string `json:"birth_date"`
	HireDate   *string `json:"hire_date"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	Country    *string `json:"country"`
	PostalCode *string `json:"postal_code"`
	Phone      *string `json:"phone"`
	Fax        *string `json:"fax"`
	Email      *string `json:"email"`
}

func (e Employee) Validate() error {
	if blank(e.FirstName) || blank(e.LastName) || e.Email == nil || blank(*e.Email) {
		return shared.NewValidationError("firstName",
			"Missing required fields: 'firstName', 'lastName', and 'email' are required.")
	}
	return nil
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }
