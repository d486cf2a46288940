package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/desertthunder/catalog/internal/models"
	"github.com/desertthunder/catalog/internal/repositories"
	"github.com/desertthunder/catalog/internal/shared"
)

func newArtistResource(repo *repositories.ArtistRepository) *resource[models.Artist] {
	return &resource[models.Artist]{
		repo:   repo,
		entity: "Artist",
		key:    "artist",
		fields: artistFields,
		build: func(f form) (models.Artist, error) {
			v, err := createValues(f, artistFields)
			if err != nil {
				return models.Artist{}, err
			}
			return models.Artist{Name: v.str("name")}, nil
		},
	}
}

func newAlbumResource(repo *repositories.AlbumRepository) *resource[models.Album] {
	return &resource[models.Album]{
		repo:   repo,
		entity: "Album",
		key:    "album",
		fields: albumFields,
		build: func(f form) (models.Album, error) {
			v, err := createValues(f, albumFields)
			if err != nil {
				return models.Album{}, err
			}
			return models.Album{Title: v.str("title"), ArtistID: v.int("artist_id")}, nil
		},
	}
}

func newTrackResource(repo *repositories.TrackRepository) *resource[models.Track] {
	return &resource[models.Track]{
		repo:   repo,
		entity: "Track",
		key:    "track",
		fields: trackUpdateFields,
		build: func(f form) (models.Track, error) {
			v, err := createValues(f, trackCreateFields)
			if err != nil {
				return models.Track{}, err
			}
			if !v.has("name") || !v.has("unit_price") {
				return models.Track{}, shared.NewValidationError("trackName",
					"Missing required fields: 'trackName' and 'unitPrice' are required")
			}
			return models.Track{
				Name:         v.str("name"),
				AlbumID:      v.intPtr("album_id"),
				MediaTypeID:  v.int("media_type_id"),
				GenreID:      v.intPtr("genre_id"),
				Composer:     v.strPtr("composer"),
				Milliseconds: v.int("milliseconds"),
				Bytes:        v.intPtr("bytes"),
				UnitPrice:    v.float("unit_price"),
			}, nil
		},
	}
}

func newPlaylistResource(repo *repositories.PlaylistRepository) *resource[models.Playlist] {
	return &resource[models.Playlist]{
		repo:   repo,
		entity: "Playlist",
		key:    "playlist",
		fields: playlistFields,
		build: func(f form) (models.Playlist, error) {
			v, err := createValues(f, playlistFields)
			if err != nil {
				return models.Playlist{}, err
			}
			return models.Playlist{Name: v.str("name")}, nil
		},
	}
}

func newCustomerResource(repo *repositories.CustomerRepository) *resource[models.Customer] {
	return &resource[models.Customer]{
		repo:   repo,
		entity: "Customer",
		key:    "customer",
		fields: customerFields,
		build: func(f form) (models.Customer, error) {
			v, err := createValues(f, customerFields)
			if err != nil {
				return models.Customer{}, err
			}
			return models.Customer{
				FirstName:    v.str("first_name"),
				LastName:     v.str("last_name"),
				Company:      v.strPtr("company"),
				Address:      v.strPtr("address"),
				City:         v.strPtr("city"),
				State:        v.strPtr("state"),
				Country:      v.strPtr("country"),
				PostalCode:   v.strPtr("postal_code"),
				Phone:        v.strPtr("phone"),
				Fax:          v.strPtr("fax"),
				Email:        v.str("email"),
				SupportRepID: v.intPtr("support_rep_id"),
			}, nil
		},
	}
}

func newEmployeeResource(repo *repositories.EmployeeRepository) *resource[models.Employee] {
	return &resource[models.Employee]{
		repo:   repo,
		entity: "Employee",
		key:    "employee",
		fields: employeeFields,
		build: func(f form) (models.Employee, error) {
			v, err := createValues(f, employeeFields)
			if err != nil {
				return models.Employee{}, err
			}
			return models.Employee{
				LastName:   v.str("last_name"),
				FirstName:  v.str("first_name"),
				Title:      v.strPtr("title"),
				ReportsTo:  v.intPtr("reports_to"),
				BirthDate:  v.strPtr("birth_date"),
				HireDate:   v.strPtr("hire_date"),
				Address:    v.strPtr("address"),
				City:       v.strPtr("city"),
				State:      v.strPtr("state"),
				Country:    v.strPtr("country"),
				PostalCode: v.strPtr("postal_code"),
				Phone:      v.strPtr("phone"),
				Fax:        v.strPtr("fax"),
				Email:      v.strPtr("email"),
			}, nil
		},
	}
}

func createValues(f form, fields []field) (values, error) {
	changes, err := f.changes(fields)
	if err != nil {
		return nil, err
	}
	return valuesOf(changes), nil
}

type albumHandler struct {
	*resource[models.Album]
	repo *repositories.AlbumRepository
}

func (h *albumHandler) list(c *gin.Context) {
	rows, err := h.repo.ListWithArtists(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// byArtist serves /albums/artist?artistId=N.
func (h *albumHandler) byArtist(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("artistId"), 10, 64)
	if err != nil || id <= 0 {
		c.Error(shared.NewValidationError("artistId", "Artist ID is required"))
		return
	}

	rows, err := h.repo.ListByArtist(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *albumHandler) get(c *gin.Context) {
	id, err := parseID(c, "id", "Album")
	if err != nil {
		c.Error(err)
		return
	}

	rows, err := h.repo.GetWithArtist(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

type trackHandler struct {
	*resource[models.Track]
	repo *repositories.TrackRepository
}

func (h *trackHandler) list(c *gin.Context) {
	rows, err := h.repo.ListRows(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *trackHandler) byArtist(c *gin.Context) {
	id, err := parseID(c, "id", "Artist")
	if err != nil {
		c.Error(err)
		return
	}

	rows, err := h.repo.ListByArtist(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *trackHandler) byAlbum(c *gin.Context) {
	id, err := parseID(c, "id", "Album")
	if err != nil {
		c.Error(err)
		return
	}

	rows, err := h.repo.ListByAlbum(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

type playlistHandler struct {
	*resource[models.Playlist]
	repo *repositories.PlaylistRepository
}

func (h *playlistHandler) addTracks(c *gin.Context) {
	id, err := parseID(c, "id", "Playlist")
	if err != nil {
		c.Error(err)
		return
	}

	f, err := bindForm(c)
	if err != nil {
		c.Error(err)
		return
	}

	trackIDs, err := f.ids("trackIds", "track_ids")
	if err != nil {
		c.Error(err)
		return
	}

	added, err := h.repo.AddTracks(c.Request.Context(), id, trackIDs)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Tracks added to playlist successfully", "tracks": added})
}

// tracks lists a playlist's tracks. An unknown or empty playlist yields an empty list.
func (h *playlistHandler) tracks(c *gin.Context) {
	id, err := parseID(c, "id", "Playlist")
	if err != nil {
		c.Error(err)
		return
	}

	rows, err := h.repo.Tracks(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *playlistHandler) removeTrack(c *gin.Context) {
	id, err := parseID(c, "id", "Playlist")
	if err != nil {
		c.Error(err)
		return
	}

	trackID, err := parseID(c, "trackId", "Track")
	if err != nil {
		c.Error(err)
		return
	}

	removed, err := h.repo.RemoveTrack(c.Request.Context(), id, trackID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Track removed from playlist successfully", "track": removed})
}

func (s *Server) adminStats(c *gin.Context) {
	stats, err := s.stats.Collect(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) healthz(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	if err := shared.PingDatabase(c.Request.Context(), s.db, 2*time.Second); err != nil {
		s.logger.Warn("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
