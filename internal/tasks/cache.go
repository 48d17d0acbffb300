package tasks

import (
	"traktlist/internal/repositories"
	"traktlist/internal/trakt"
)

// CacheStore persists resolved titles across runs.
// Implemented by [repositories.SearchCacheRepository].
type CacheStore interface {
	LoadAll() (map[string]int64, error)
	SaveAll(entries []repositories.CacheEntry) error
}

// SearchCache is the in-memory view of the persisted search cache for one run.
//
// Keys are raw, trimmed, case-sensitive titles; "Inception" and "inception "
// are distinct entries. New resolutions accumulate as dirty entries and are
// flushed once, after resolution completes and before any batch submission.
type SearchCache struct {
	entries map[string]int64
	dirty   []repositories.CacheEntry
	hits    int
}

// NewSearchCache wraps a loaded title → id mapping. A nil map is valid and
// yields an empty cache.
func NewSearchCache(entries map[string]int64) *SearchCache {
	if entries == nil {
		entries = make(map[string]int64)
	}
	return &SearchCache{entries: entries}
}

// Lookup returns the cached id for an exact title match.
func (c *SearchCache) Lookup(title string) (int64, bool) {
	id, ok := c.entries[title]
	if ok {
		c.hits++
	}
	return id, ok
}

// Put records a positive resolution, both for the rest of this run and for
// the end-of-run flush. Negative results are never stored.
func (c *SearchCache) Put(title string, mediaType trakt.MediaType, id int64) {
	c.entries[title] = id
	c.dirty = append(c.dirty, repositories.CacheEntry{
		Title:     title,
		MediaType: string(mediaType),
		TraktID:   id,
	})
}

// Dirty returns the entries added since the cache was loaded.
func (c *SearchCache) Dirty() []repositories.CacheEntry { return c.dirty }

// Hits returns how many lookups were served from the cache this run.
func (c *SearchCache) Hits() int { return c.hits }

// Len returns the number of entries currently in memory.
func (c *SearchCache) Len() int { return len(c.entries) }
