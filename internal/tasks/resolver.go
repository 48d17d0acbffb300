package tasks

import (
	"context"
	"fmt"

	"traktlist/internal/shared"
	"traktlist/internal/trakt"
)

// TitleResolver turns free-text titles into Trakt catalog ids, cache-first.
type TitleResolver struct {
	api   API
	cache *SearchCache
}

// NewTitleResolver creates a resolver backed by the given API and cache.
func NewTitleResolver(api API, cache *SearchCache) *TitleResolver {
	return &TitleResolver{api: api, cache: cache}
}

// Resolve resolves a title to a Trakt id.
//
// A cache hit returns immediately with no network call. On a miss, the
// catalog is searched scoped to the media type and the first result is taken
// as-is; there is no ranking or disambiguation, so ambiguous titles can
// resolve to the wrong work. That behavior is deliberate and kept.
//
// An empty result set returns [shared.ErrTitleNotFound] and is not cached,
// so the next run re-queries the title. Any other failure propagates.
func (r *TitleResolver) Resolve(ctx context.Context, title string, mediaType trakt.MediaType) (int64, error) {
	if id, ok := r.cache.Lookup(title); ok {
		return id, nil
	}

	results, err := r.api.Search(ctx, mediaType, title)
	if err != nil {
		return 0, err
	}

	if len(results) == 0 {
		return 0, fmt.Errorf("%w: no %s matched %q", shared.ErrTitleNotFound, mediaType, title)
	}

	id, ok := results[0].TraktID()
	if !ok {
		return 0, fmt.Errorf("%w: search result for %q carried no %s entry", shared.ErrAPIRequest, title, mediaType)
	}

	r.cache.Put(title, mediaType, id)
	return id, nil
}
