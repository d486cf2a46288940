package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/desertthunder/catalog/internal/repositories"
	"github.com/desertthunder/catalog/internal/shared"
	"github.com/desertthunder/catalog/internal/tasks"
)

const shutdownTimeout = 10 * time.Second

// Options holds the dependencies of a [Server].
type Options struct {
	Catalog *repositories.Catalog
	DB      *sql.DB // pinged by the health check
	Logger  *log.Logger
	Config  shared.ServerConfig
}

// Server serves the catalog API under /api.
type Server struct {
	engine  *gin.Engine
	catalog *repositories.Catalog
	stats   *tasks.StatsCollector
	db      *sql.DB
	logger  *log.Logger
	config  shared.ServerConfig
}

// New builds the router with its middleware stack and routes.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Config.Mode != "" {
		gin.SetMode(opts.Config.Mode)
	}

	s := &Server{
		engine:  gin.New(),
		catalog: opts.Catalog,
		stats:   tasks.NewStatsCollector(opts.Catalog.Stats),
		db:      opts.DB,
		logger:  shared.WithLogger(opts.Logger, "component", "server"),
		config:  opts.Config,
	}

	s.engine.Use(
		recovery(s.logger),
		requestID(),
		accessLog(s.logger),
		cors(s.config.CORSOrigins),
		rateLimit(s.config.RateLimit, s.config.RateBurst),
		timeout(s.config.RequestTimeout.Duration),
		errorHandler(s.logger),
	)
	s.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	s.routes(s.engine.Group("/api"))
	return s
}

// Handler returns the router as an [http.Handler].
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on the configured address until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("listening", "addr", srv.Addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func (s *Server) routes(api *gin.RouterGroup) {
	c := s.catalog

	artists := newArtistResource(c.Artists)
	g := api.Group("/artists")
	{
		g.GET("", artists.list)
		g.GET("/:id", artists.get)
		g.POST("/add", artists.create)
		g.PUT("/update/:id", artists.update)
		g.DELETE("/delete/:id", artists.delete)
	}

	albums := &albumHandler{repo: c.Albums, resource: newAlbumResource(c.Albums)}
	g = api.Group("/albums")
	{
		g.GET("", albums.list)
		g.GET("/artist", albums.byArtist)
		g.GET("/:id", albums.get)
		g.POST("/add", albums.create)
		g.PUT("/update/:id", albums.update)
		g.DELETE("/delete/:id", albums.delete)
	}

	tracks := &trackHandler{repo: c.Tracks, resource: newTrackResource(c.Tracks)}
	g = api.Group("/tracks")
	{
		g.GET("", tracks.list)
		g.GET("/artist/:id", tracks.byArtist)
		g.GET("/album/:id", tracks.byAlbum)
		g.POST("/add", tracks.create)
		g.PUT("/update/:id", tracks.update)
		g.DELETE("/delete/:id", tracks.delete)
	}

	playlists := &playlistHandler{repo: c.Playlists, resource: newPlaylistResource(c.Playlists)}
	g = api.Group("/playlists")
	{
		g.GET("", playlists.list)
		g.GET("/:id", playlists.get)
		g.POST("/add", playlists.create)
		g.PUT("/update/:id", playlists.update)
		g.DELETE("/delete/:id", playlists.delete)
		g.POST("/:id/tracks/add", playlists.addTracks)
		g.GET("/:id/tracks", playlists.tracks)
		g.DELETE("/:id/tracks/:trackId/delete", playlists.removeTrack)
	}

	customers := newCustomerResource(c.Customers)
	g = api.Group("/customers")
	{
		g.GET("", customers.listWrapped)
		g.POST("/add", customers.create)
		g.PUT("/update/:id", customers.update)
		g.DELETE("/delete/:id", customers.delete)
	}

	employees := newEmployeeResource(c.Employees)
	g = api.Group("/employees")
	{
		g.GET("", employees.list)
		g.POST("/add", employees.create)
		g.PUT("/update/:id", employees.update)
		g.DELETE("/delete/:id", employees.delete)
	}

	api.GET("/admin/stats", s.adminStats)
	api.GET("/healthz", s.healthz)
}
