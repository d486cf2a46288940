// Package server exposes the catalog repositories as a JSON REST API on gin.
//
// # Routes
//
// Every route is mounted under /api and grouped per entity (artists, albums, tracks, playlists, customers,
// employees) plus /admin/stats and /healthz. Entity routes share one generic resource that implements
// list, get, create, update and delete over a [models.Repository].
//
// # Request Bodies
//
// Bodies are decoded into a raw key/value form. Each entity declares a field table mapping input keys
// (camelCase, with snake_case aliases) to storage columns and a decoding kind. Partial updates are built
// from that table in its fixed order, skipping null, empty and zero values.
//
// # Errors
//
// Handlers push errors with c.Error and return. A single middleware maps them to responses:
//
//   - validation → 400 with the field message
//   - not found → 404 with the entity message
//   - deadline exceeded → 504
//   - anything else → 500 "internal server error", with the cause logged
//
// # Middleware
//
// Panic recovery, request ids, access logging, CORS, a per-client rate limit and a per-request
// timeout wrap every route.
package server
