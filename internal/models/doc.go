// Package models defines the catalog entities, their read models, and persistence interfaces.
//
// The package contains three categories of types:
//
// 1. Entities: one struct per table, serialized with the storage column names
//   - [Artist], [Album], [Track], [Playlist], [PlaylistTrack], [Customer], [Employee]
//
// 2. Read models: flattened rows produced by joins
//   - [TrackRow] : a track with its album title, artist name and genre
//   - [AlbumRow] : an album with its artist name
//   - [PlaylistTrackRow] : a track as listed inside a playlist
//   - [Stats] : table counts for the admin dashboard
//
// 3. Updates: [Changes] is the ordered column/value list consumed by partial updates.
//
// Entities implement [Entity]; the [Repository] interface defines the CRUD surface shared by every table.
package models
