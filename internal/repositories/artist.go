package repositories

import (
	"database/sql"

	"github.com/desertthunder/catalog/internal/models"
)

var artistTable = &Table[models.Artist]{
	name:      "artist",
	entity:    "Artist",
	key:       "artist_id",
	columns:   []string{"artist_id", "name"},
	updatable: []string{"name"},
	orderBy:   "name COLLATE NOCASE, artist_id",
	scan:      scanArtist,
}

// ArtistRepository implements [models.Repository] for artists.
type ArtistRepository struct {
	*crud[models.Artist]
}

var _ models.Repository[models.Artist] = (*ArtistRepository)(nil)

// NewArtistRepository creates a new ArtistRepository with the given database connection
func NewArtistRepository(db *sql.DB) *ArtistRepository {
	return &ArtistRepository{crud: newCrud(db, artistTable, artistValues)}
}

func artistValues(a models.Artist) models.Changes {
	var c models.Changes
	c.Set("name", a.Name)
	return c
}

func scanArtist(s scanner) (models.Artist, error) {
	var a models.Artist
	err := s.Scan(&a.ID, &a.Name)
	return a, err
}
