package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desertthunder/catalog/internal/repositories"
	"github.com/desertthunder/catalog/internal/shared"
	tu "github.com/desertthunder/catalog/internal/testing"
)

type testServer struct {
	*Server
	fixture tu.Fixture
}

func newTestServer(t *testing.T, cfg shared.ServerConfig) *testServer {
	t.Helper()

	db := tu.NewTestDB(t)
	fixture := tu.SeedCatalog(t, db)

	cfg.Mode = gin.TestMode
	s := New(Options{
		Catalog: repositories.NewCatalog(db),
		DB:      db,
		Logger:  shared.NewLogger(io.Discard),
		Config:  cfg,
	})
	return &testServer{Server: s, fixture: fixture}
}

func (ts *testServer) do(t *testing.T, method, path, body string, header ...string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	w := httptest.NewRecorder()
	ts.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, w)["error"]
}

func TestArtistRoutes(t *testing.T) {
	ts := newTestServer(t, shared.ServerConfig{})

	t.Run("list", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/api/artists", "")
		require.Equal(t, http.StatusOK, w.Code)

		rows := decode[[]map[string]any](t, w)
		require.Len(t, rows, 2)
		assert.Equal(t, "AC/DC", rows[0]["name"])
		assert.Equal(t, "No Artist", rows[1]["name"])
	})

	t.Run("get returns a one element array", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, fmt.Sprintf("/api/artists/%d", ts.fixture.ArtistID), "")
		require.Equal(t, http.StatusOK, w.Code)

		rows := decode[[]map[string]any](t, w)
		require.Len(t, rows, 1)
		assert.Equal(t, float64(ts.fixture.ArtistID), rows[0]["artist_id"])
	})

	t.Run("get unknown returns an empty array", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/api/artists/99999", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("get with a malformed id", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/api/artists/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Valid Artist ID is required", errorMessage(t, w))
	})

	t.Run("create", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/artists/add", `{"name":"Queen"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		body := decode[map[string]any](t, w)
		assert.Equal(t, "Artist added successfully", body["message"])
		artist := body["artist"].(map[string]any)
		assert.Equal(t, "Queen", artist["name"])
		assert.Greater(t, artist["artist_id"].(float64), float64(276))
	})

	t.Run("create without a name", func(t *testing.T) {
		before := tu.MustCount(t, ts.db, "artist", "")

		w := ts.do(t, http.MethodPost, "/api/artists/add", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Artist name is required", errorMessage(t, w))
		assert.Equal(t, before, tu.MustCount(t, ts.db, "artist", ""))
	})

	t.Run("create with malformed json", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/artists/add", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid JSON body", errorMessage(t, w))
	})

	t.Run("update", func(t *testing.T) {
		w := ts.do(t, http.MethodPut, fmt.Sprintf("/api/artists/update/%d", ts.fixture.ArtistID), `{"name":"AC-DC"}`)
		require.Equal(t, http.StatusOK, w.Code)

		body := decode[map[string]any](t, w)
		assert.Equal(t, "Artist updated successfully", body["message"])
		assert.Equal(t, "AC-DC", body["artist"].(map[string]any)["name"])
	})

	t.Run("update with no fields", func(t *testing.T) {
		w := ts.do(t, http.MethodPut, fmt.Sprintf("/api/artists/update/%d", ts.fixture.ArtistID), `{"bogus":"x"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "No fields provided for update", errorMessage(t, w))
	})

	t.Run("update unknown", func(t *testing.T) {
		w := ts.do(t, http.MethodPut, "/api/artists/update/99999", `{"name":"Nobody"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Artist not found", errorMessage(t, w))
	})

	t.Run("delete", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/artists/add", `{"name":"Temporary"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		id := int64(decode[map[string]any](t, w)["artist"].(map[string]any)["artist_id"].(float64))

		w = ts.do(t, http.MethodDelete, fmt.Sprintf("/api/artists/delete/%d", id), "")
		require.Equal(t, http.StatusOK, w.Code)
		body := decode[map[string]any](t, w)
		assert.Equal(t, "Artist deleted successfully", body["message"])
		assert.Equal(t, "Temporary", body["artist"].(map[string]any)["name"])

		w = ts.do(t, http.MethodDelete, fmt.Sprintf("/api/artists/delete/%d", id), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete referenced artist", func(t *testing.T) {
		w := ts.do(t, http.MethodDelete, fmt.Sprintf("/api/artists/delete/%d", ts.fixture.ArtistID), "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal server error", errorMessage(t, w))
	})
}

func TestAlbumRoutes(t *testing.T) {
	ts := newTestServer(t, shared.ServerConfig{})

	t.Run("list joins artist names", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/api/albums", "")
		require.Equal(t, http.StatusOK, w.Code)

		rows := decode[[]map[string]any](t, w)
		require.Len(t, rows, 2)
		assert.Equal(t, "For Those About To Rock", rows[0]["title"])
		assert.Equal(t, "AC/DC", rows[0]["artist_name"])
	})

	t.Run("get", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, fmt.Sprintf("/api/albums/%d", ts.fixture.AlbumID), "")
		require.Equal(t, http.StatusOK, w.Code)

		rows := decode[[]map[string]any](t, w)
		require.Len(t, rows, 1)
		assert.Equal(t, "AC/DC", rows[0]["artist_name"])
	})

	t.Run("by artist", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, fmt.Sprintf("/api/albums/artist?artistId=%d", ts.fixture.ArtistID), "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]map[string]any](t, w), 1)
	})

	t.Run("by artist without id", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/api/albums/artist", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Artist ID is required", errorMessage(t, w))
	})

	t.Run("create defaults to the placeholder artist", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/albums/add", `{"title":"Demo Tapes"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		album := decode[map[string]any](t, w)["album"].(map[string]any)
		assert.Equal(t, float64(276), album["artist_id"])
	})

	t.Run("create with non-numeric artist", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/albums/add", `{"title":"Demo Tapes","artistId":"abc"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid input: numeric value required for 'artistId'", errorMessage(t, w))
	})

	t.Run("create with an out of range artist", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/albums/add", `{"title":"Demo Tapes","artistId":"9223372036854775808"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid input: numeric value required for 'artistId'", errorMessage(t, w))
	})
}

func TestTrackRoutes(t *testing.T) {
	ts := newTestServer(t, shared.ServerConfig{})

	t.Run("list", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/api/tracks", "")
		require.Equal(t, http.StatusOK, w.Code)

		rows := decode[[]map[string]any](t, w)
		require.Len(t, rows, 3)
		assert.Equal(t, "balls to the wall", rows[0]["track_name"])
		assert.Equal(t, "Rock", rows[0]["track_genre"])
	})

	t.Run("by album and artist", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, fmt.Sprintf("/api/tracks/album/%d", ts.fixture.AlbumID), "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]map[string]any](t, w), 3)

		w = ts.do(t, http.MethodGet, fmt.Sprintf("/api/tracks/artist/%d", ts.fixture.ArtistID), "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]map[string]any](t, w), 3)

		w = ts.do(t, http.MethodGet, "/api/tracks/artist/99999", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("create converts seconds and price", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/tracks/add", `{"track_name":"Song A","seconds":185,"unit_price":"0.99"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		body := decode[map[string]any](t, w)
		assert.Equal(t, "Track added successfully", body["message"])
		track := body["track"].(map[string]any)
		assert.Equal(t, "Song A", track["name"])
		assert.Equal(t, float64(185000), track["milliseconds"])
		assert.Equal(t, 0.99, track["unit_price"])
		assert.Equal(t, float64(348), track["album_id"])
		assert.Equal(t, float64(1), track["genre_id"])
	})

	t.Run("create without a price", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/tracks/add", `{"trackName":"Song B"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Missing required fields: 'trackName' and 'unitPrice' are required", errorMessage(t, w))
	})

	t.Run("update ignores unknown keys", func(t *testing.T) {
		id := ts.fixture.TrackIDs[0]
		w := ts.do(t, http.MethodPut, fmt.Sprintf("/api/tracks/update/%d", id), `{"unitPrice":1.29,"track_id":7,"bogus":1}`)
		require.Equal(t, http.StatusOK, w.Code)

		track := decode[map[string]any](t, w)["track"].(map[string]any)
		assert.Equal(t, 1.29, track["unit_price"])
		assert.Equal(t, float64(id), track["track_id"])
		assert.Equal(t, "Put The Finger On You", track["name"])
	})

	t.Run("delete unknown", func(t *testing.T) {
		w := ts.do(t, http.MethodDelete, "/api/tracks/delete/99999", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Track not found", errorMessage(t, w))
	})
}

func TestPlaylistRoutes(t *testing.T) {
	ts := newTestServer(t, shared.ServerConfig{})
	playlistPath := func(format string, args ...any) string {
		return fmt.Sprintf("/api/playlists/%d"+format, append([]any{ts.fixture.PlaylistID}, args...)...)
	}

	t.Run("tracks", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, playlistPath("/tracks"), "")
		require.Equal(t, http.StatusOK, w.Code)

		rows := decode[[]map[string]any](t, w)
		require.Len(t, rows, 3)
		assert.Equal(t, "balls to the wall", rows[0]["track_name"])
	})

	t.Run("tracks of an unknown playlist", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/api/playlists/99999/tracks", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("add tracks", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/playlists/add", `{"name":"Mix"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		id := int64(decode[map[string]any](t, w)["playlist"].(map[string]any)["playlist_id"].(float64))

		body := fmt.Sprintf(`{"trackIds":[%d,%d]}`, ts.fixture.TrackIDs[0], ts.fixture.TrackIDs[1])
		w = ts.do(t, http.MethodPost, fmt.Sprintf("/api/playlists/%d/tracks/add", id), body)
		require.Equal(t, http.StatusCreated, w.Code)

		resp := decode[map[string]any](t, w)
		assert.Equal(t, "Tracks added to playlist successfully", resp["message"])
		assert.Len(t, resp["tracks"], 2)
		assert.Equal(t, 2, tu.MustCount(t, ts.db, "playlist_track", "playlist_id = ?", id))
	})

	t.Run("add duplicate tracks leaves the playlist unchanged", func(t *testing.T) {
		before := tu.MustCount(t, ts.db, "playlist_track", "")

		w := ts.do(t, http.MethodPost, playlistPath("/tracks/add"), fmt.Sprintf(`{"trackIds":[%d]}`, ts.fixture.TrackIDs[0]))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal server error", errorMessage(t, w))
		assert.Equal(t, before, tu.MustCount(t, ts.db, "playlist_track", ""))
	})

	t.Run("add tracks to unknown playlist", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/playlists/99999/tracks/add", `{"trackIds":[1]}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Playlist not found", errorMessage(t, w))
	})

	t.Run("add tracks without ids", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, playlistPath("/tracks/add"), `{"trackIds":[]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("remove track", func(t *testing.T) {
		trackID := ts.fixture.TrackIDs[2]

		w := ts.do(t, http.MethodDelete, playlistPath("/tracks/%d/delete", trackID), "")
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[map[string]any](t, w)
		assert.Equal(t, "Track removed from playlist successfully", resp["message"])
		assert.Equal(t, float64(trackID), resp["track"].(map[string]any)["track_id"])

		w = ts.do(t, http.MethodDelete, playlistPath("/tracks/%d/delete", trackID), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Track in playlist not found", errorMessage(t, w))
	})

	t.Run("delete cascades to associations", func(t *testing.T) {
		tracks := tu.MustCount(t, ts.db, "track", "")

		w := ts.do(t, http.MethodDelete, fmt.Sprintf("/api/playlists/delete/%d", ts.fixture.PlaylistID), "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Playlist deleted successfully", decode[map[string]any](t, w)["message"])
		assert.Zero(t, tu.MustCount(t, ts.db, "playlist_track", "playlist_id = ?", ts.fixture.PlaylistID))
		assert.Equal(t, tracks, tu.MustCount(t, ts.db, "track", ""))
	})
}

func TestPeopleRoutes(t *testing.T) {
	ts := newTestServer(t, shared.ServerConfig{})

	t.Run("employee create and list", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/employees/add",
			`{"firstName":"Andrew","lastName":"Adams","title":"General Manager","email":"andrew@chinookcorp.com"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		employee := decode[map[string]any](t, w)["employee"].(map[string]any)
		assert.Equal(t, "General Manager", employee["title"])

		w = ts.do(t, http.MethodGet, "/api/employees", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]map[string]any](t, w), 1)
	})

	t.Run("customer create", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/customers/add",
			`{"firstName":"Luís","lastName":"Gonçalves","email":"luisg@embraer.com.br","postalCode":"12227000","supportRepId":1}`)
		require.Equal(t, http.StatusCreated, w.Code)

		customer := decode[map[string]any](t, w)["customer"].(map[string]any)
		assert.Equal(t, "12227000", customer["postal_code"])
		assert.Equal(t, float64(1), customer["support_rep_id"])
	})

	t.Run("customer list is wrapped", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/api/customers", "")
		require.Equal(t, http.StatusOK, w.Code)

		body := decode[map[string][]map[string]any](t, w)
		require.Len(t, body["customers"], 1)
		assert.Equal(t, "Luís", body["customers"][0]["first_name"])
	})

	t.Run("customer with a non-numeric postal code", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/customers/add",
			`{"firstName":"Eduardo","lastName":"Martins","email":"eduardo@woodstock.com.br","postalCode":"T6G 2R3"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid input: numeric value required for 'postalCode'", errorMessage(t, w))
	})

	t.Run("customer without email", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/customers/add", `{"firstName":"Eduardo","lastName":"Martins"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Missing required fields: 'firstName', 'lastName', and 'email' are required.", errorMessage(t, w))
	})
}

func TestAdminRoutes(t *testing.T) {
	t.Run("stats", func(t *testing.T) {
		ts := newTestServer(t, shared.ServerConfig{})

		w := ts.do(t, http.MethodGet, "/api/admin/stats", "")
		require.Equal(t, http.StatusOK, w.Code)

		stats := decode[map[string]int64](t, w)
		assert.Equal(t, int64(3), stats["tracks"])
		assert.Equal(t, int64(2), stats["artists"])
		assert.Equal(t, int64(1), stats["playlists"])
	})

	t.Run("storage failures are not leaked", func(t *testing.T) {
		ts := newTestServer(t, shared.ServerConfig{})
		tu.MustExec(t, ts.db, "DROP TABLE invoice")

		w := ts.do(t, http.MethodGet, "/api/admin/stats", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal server error", errorMessage(t, w))
		assert.NotContains(t, w.Body.String(), "invoice")
	})

	t.Run("healthz", func(t *testing.T) {
		ts := newTestServer(t, shared.ServerConfig{})

		w := ts.do(t, http.MethodGet, "/api/healthz", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

		require.NoError(t, ts.db.Close())
		w = ts.do(t, http.MethodGet, "/api/healthz", "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestMiddleware(t *testing.T) {
	t.Run("unknown route", func(t *testing.T) {
		ts := newTestServer(t, shared.ServerConfig{})

		w := ts.do(t, http.MethodGet, "/api/nope", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "route not found", errorMessage(t, w))
	})

	t.Run("request id", func(t *testing.T) {
		ts := newTestServer(t, shared.ServerConfig{})

		w := ts.do(t, http.MethodGet, "/api/healthz", "")
		assert.NotEmpty(t, w.Header().Get(requestIDHeader))

		w = ts.do(t, http.MethodGet, "/api/healthz", "", requestIDHeader, "abc-123")
		assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
	})

	t.Run("cors", func(t *testing.T) {
		ts := newTestServer(t, shared.ServerConfig{CORSOrigins: []string{"http://localhost:3001"}})

		w := ts.do(t, http.MethodOptions, "/api/artists", "", "Origin", "http://localhost:3001")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:3001", w.Header().Get("Access-Control-Allow-Origin"))

		w = ts.do(t, http.MethodGet, "/api/artists", "", "Origin", "http://evil.example")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("rate limit", func(t *testing.T) {
		ts := newTestServer(t, shared.ServerConfig{RateLimit: 0.001, RateBurst: 1})

		w := ts.do(t, http.MethodGet, "/api/healthz", "")
		assert.Equal(t, http.StatusOK, w.Code)

		w = ts.do(t, http.MethodGet, "/api/healthz", "")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "too many requests", errorMessage(t, w))
	})

	t.Run("request deadline becomes 504", func(t *testing.T) {
		ts := newTestServer(t, shared.ServerConfig{RequestTimeout: shared.Duration{Duration: 10 * time.Millisecond}})
		ts.engine.GET("/api/slow", func(c *gin.Context) {
			ctx := c.Request.Context()
			<-ctx.Done()
			c.Error(fmt.Errorf("%w: failed to list tracks: %w", shared.ErrStorage, ctx.Err()))
		})

		w := ts.do(t, http.MethodGet, "/api/slow", "")
		assert.Equal(t, http.StatusGatewayTimeout, w.Code)
		assert.Equal(t, "request timed out", errorMessage(t, w))
	})

	t.Run("only server faults are logged", func(t *testing.T) {
		var buf bytes.Buffer
		db := tu.NewTestDB(t)
		tu.SeedCatalog(t, db)
		s := New(Options{
			Catalog: repositories.NewCatalog(db),
			DB:      db,
			Logger:  shared.NewLogger(&buf),
			Config:  shared.ServerConfig{Mode: gin.TestMode},
		})
		ts := &testServer{Server: s}

		w := ts.do(t, http.MethodPost, "/api/artists/add", `{"name":""}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.NotContains(t, buf.String(), "request failed")

		tu.MustExec(t, db, "DROP TABLE invoice")
		w = ts.do(t, http.MethodGet, "/api/admin/stats", "")
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, buf.String(), "request failed")
		assert.Contains(t, buf.String(), "invoice")
	})

	t.Run("panics become 500", func(t *testing.T) {
		ts := newTestServer(t, shared.ServerConfig{})
		ts.engine.GET("/api/panic", func(c *gin.Context) { panic("boom") })

		w := ts.do(t, http.MethodGet, "/api/panic", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal server error", errorMessage(t, w))
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", shared.NewValidationError("name", "Artist name is required"), http.StatusBadRequest, "Artist name is required"},
		{"not found", fmt.Errorf("lookup: %w", shared.NewNotFoundError("Album")), http.StatusNotFound, "Album not found"},
		{"deadline", fmt.Errorf("%w: failed to list: %w", shared.ErrStorage, context.DeadlineExceeded), http.StatusGatewayTimeout, "request timed out"},
		{"storage", fmt.Errorf("%w: failed to insert: %w", shared.ErrStorage, errors.New("disk I/O error")), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := classify(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.message, message)
		})
	}
}
