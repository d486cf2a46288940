// Package tasks runs the catalog's multi-step operations with progress reporting.
//
// # Operations
//
//  1. [StatsCollector.Collect] : Admin dashboard counts
//     - Counts seven tables concurrently under one errgroup
//     - The first failure cancels the remaining counts and fails the whole result
//
//  2. [Exporter.BulkExport] : Export playlists to disk
//     - Loads each playlist through a rate limiter
//     - Writes files with a bounded worker pool in the configured format
//     - Records per-playlist success or failure in an export_manifest.json
//
// # Progress Reporting
//
// Long-running operations accept a send-only [ProgressUpdate] channel, which may be nil.
// Updates use select with default, so a slow reader never blocks an operation.
package tasks
