// Package repositories implements SQLite persistence for the music catalog.
//
// Three generic pieces carry every query in the package:
//   - [Table] : a declarative table description that compiles get, list, insert, partial update,
//     delete and count statements. Partial updates take an ordered [models.Changes] list and
//     produce a single UPDATE ... RETURNING statement with numbered placeholders.
//   - [Projection] : a fixed join graph with one optional equality [Filter], producing flattened
//     read models such as [models.TrackRow] in a single statement.
//   - [WithTx] : runs a function inside a transaction that is rolled back on any error.
//
// Key Implementations:
//   - [ArtistRepository], [AlbumRepository], [TrackRepository] : catalog CRUD plus joined listings
//   - [PlaylistRepository] : playlists and their track associations, with transactional cascade delete
//   - [CustomerRepository], [EmployeeRepository] : contact records
//   - [StatsRepository] : table row counts
//
// [Catalog] bundles every repository around one injected *sql.DB pool.
//
// Errors: a missing row yields a [shared.NotFoundError]; any driver failure is wrapped with [shared.ErrStorage].
package repositories
