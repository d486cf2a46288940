package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/desertthunder/catalog/internal/models"
	"github.com/desertthunder/catalog/internal/shared"
)

// resource serves the list, get, create, update and delete routes shared by every entity.
type resource[T models.Entity] struct {
	repo   models.Repository[T]
	entity string                // display name, e.g. "Artist"
	key    string                // response envelope key, e.g. "artist"
	build  func(form) (T, error) // builds a new row from a create body
	fields []field               // update allowlist
}

func (r *resource[T]) list(c *gin.Context) {
	rows, err := r.repo.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// listWrapped responds with {"<key>s": [...]}.
func (r *resource[T]) listWrapped(c *gin.Context) {
	rows, err := r.repo.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{r.key + "s": rows})
}

// get responds with a zero- or one-element array.
func (r *resource[T]) get(c *gin.Context) {
	id, err := parseID(c, "id", r.entity)
	if err != nil {
		c.Error(err)
		return
	}

	row, err := r.repo.Get(c.Request.Context(), id)
	rows, err := asList(row, err)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (r *resource[T]) create(c *gin.Context) {
	f, err := bindForm(c)
	if err != nil {
		c.Error(err)
		return
	}

	v, err := r.build(f)
	if err != nil {
		c.Error(err)
		return
	}

	row, err := r.repo.Create(c.Request.Context(), v)
	if err != nil {
		c.Error(err)
		return
	}
	r.respond(c, http.StatusCreated, "added", row)
}

func (r *resource[T]) update(c *gin.Context) {
	id, err := parseID(c, "id", r.entity)
	if err != nil {
		c.Error(err)
		return
	}

	f, err := bindForm(c)
	if err != nil {
		c.Error(err)
		return
	}

	changes, err := f.changes(r.fields)
	if err != nil {
		c.Error(err)
		return
	}

	row, err := r.repo.Update(c.Request.Context(), id, changes)
	if err != nil {
		c.Error(err)
		return
	}
	r.respond(c, http.StatusOK, "updated", row)
}

func (r *resource[T]) delete(c *gin.Context) {
	id, err := parseID(c, "id", r.entity)
	if err != nil {
		c.Error(err)
		return
	}

	row, err := r.repo.Delete(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	r.respond(c, http.StatusOK, "deleted", row)
}

func (r *resource[T]) respond(c *gin.Context, status int, verb string, row any) {
	c.JSON(status, gin.H{
		"message": fmt.Sprintf("%s %s successfully", r.entity, verb),
		r.key:     row,
	})
}

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, param, entity string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, shared.NewValidationError(param, "Valid %s ID is required", entity)
	}
	return id, nil
}

// asList turns a single-row lookup into a zero- or one-element list.
func asList[T any](row *T, err error) ([]T, error) {
	if errors.Is(err, shared.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}
	return []T{*row}, nil
}
