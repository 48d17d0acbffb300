// Package repositories implements SQLite persistence for the search cache.
//
// [SearchCacheRepository] stores positive title → Trakt id resolutions only.
// Negative results are never persisted, so unresolved titles are re-queried
// on every run. A cached id is never re-validated against the catalog;
// staleness is an accepted limitation of the cache design.
package repositories
