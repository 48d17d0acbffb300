// Package tasks orchestrates list reconciliation runs with real-time progress reporting.
//
// # Pipeline
//
// [Engine.Run] drives five sequential phases:
//
//  1. Load the persisted search cache into memory
//  2. Snapshot the target list's existing items (404 is an empty list)
//  3. Resolve each input title, cache-first, collecting not-found titles
//  4. Flush new cache entries in one transaction, before any submission
//  5. Partition the addition plan into batches of at most ten and submit
//     them one at a time, waiting out the [Pacer] between batches
//
// # Idempotence
//
// Re-running with identical input adds nothing: every previously added item
// shows up in the existing-items snapshot and is skipped by [PlanAdditions].
// That restart path, not a transaction log, is the recovery mechanism for
// lost responses and interrupted runs.
//
// # Progress Reporting
//
// All phases emit [ProgressUpdate] values on a non-blocking channel.
// Updates use select with default to prevent blocking the pipeline.
//
// # Implementation
//
// [Engine] depends on:
//   - [API] : the Trakt client surface the pipeline uses
//   - [CacheStore] : search cache persistence (repositories.SearchCacheRepository)
//   - [Pacer] : inter-batch pacing (fixed interval by default)
package tasks
