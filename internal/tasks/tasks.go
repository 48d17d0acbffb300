package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"traktlist/internal/shared"
	"traktlist/internal/trakt"
)

// API defines the subset of the Trakt client the pipeline depends on.
// This abstraction allows for easier testing and decoupling from the concrete client.
type API interface {
	Search(ctx context.Context, mediaType trakt.MediaType, query string) ([]trakt.SearchResult, error)
	ListItems(ctx context.Context, username, slug string) ([]trakt.ListItem, error)
	AddListItems(ctx context.Context, username, slug string, payload trakt.AddItemsPayload) (*trakt.AddItemsResult, error)
}

// RunOptions describes one reconciliation run.
type RunOptions struct {
	Username  string          // Trakt username owning the list
	ListName  string          // List display name; the slug is derived from it
	MediaType trakt.MediaType // All titles in a run share one media type
	Titles    []string        // Free-text titles, one per input line
}

// RunResult contains all data from a completed reconciliation run.
type RunResult struct {
	Slug      string          // Derived list slug used for item routes
	Resolved  []trakt.MediaRef // Every title that resolved, in input order
	Planned   []trakt.MediaRef // Resolved items not already in the list
	Skipped   []trakt.MediaRef // Resolved items already present, not resubmitted
	NotFound  []string         // Titles with no catalog match
	Batches   []BatchResult    // Per-batch submission accounting
	CacheHits int              // Lookups served without a network call
	CacheAdds int              // New cache entries persisted this run
}

// Engine orchestrates reconciliation runs.
//
// Fully sequential: one title resolved at a time, one batch submitted at a
// time. Serial submission plus the inter-batch pacer is the rate limiting
// strategy; no requests are issued concurrently.
type Engine struct {
	api       API
	store     CacheStore
	pacer     Pacer
	batchSize int
}

// NewEngine creates an Engine. A nil pacer selects the default fixed
// interval; batchSize follows [NewReconciler] clamping.
func NewEngine(api API, store CacheStore, pacer Pacer, batchSize int) *Engine {
	if pacer == nil {
		pacer = NewIntervalPacer(DefaultBatchInterval)
	}
	return &Engine{api: api, store: store, pacer: pacer, batchSize: batchSize}
}

// Run executes the full pipeline for one input list.
//
// The cache is flushed once, after all titles are resolved and before any
// batch is submitted, so a crash during submission still preserves every
// resolution for the next run. A fatal error during resolution skips the
// flush entirely. Unresolved titles are collected, never fatal.
func (e *Engine) Run(ctx context.Context, progress chan<- ProgressUpdate, opts RunOptions) (*RunResult, error) {
	if e.api == nil {
		return nil, fmt.Errorf("%w: API client not initialized", shared.ErrAPIRequest)
	}
	if opts.Username == "" || opts.ListName == "" {
		return nil, fmt.Errorf("%w: username and list name are required", shared.ErrMissingArgument)
	}
	if opts.MediaType == "" {
		opts.MediaType = trakt.MediaTypeMovie
	}

	entries, err := e.store.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load search cache: %w", err)
	}
	cache := NewSearchCache(entries)
	sendProgress(progress, loadCacheUpdate(cache.Len()))

	result := &RunResult{Slug: shared.Slugify(opts.ListName)}
	reconciler := NewReconciler(e.api, e.pacer, e.batchSize)

	sendProgress(progress, fetchExistingUpdate(result.Slug))
	existing, err := reconciler.ExistingItems(ctx, opts.Username, result.Slug)
	if err != nil {
		return nil, err
	}
	sendProgress(progress, foundExistingUpdate(result.Slug, len(existing)))

	resolver := NewTitleResolver(e.api, cache)
	titles := trimTitles(opts.Titles)

	for i, title := range titles {
		sendProgress(progress, resolveTitleUpdate(i+1, len(titles), title))

		id, err := resolver.Resolve(ctx, title, opts.MediaType)
		if err != nil {
			if errors.Is(err, shared.ErrTitleNotFound) {
				result.NotFound = append(result.NotFound, title)
				continue
			}
			return nil, err
		}

		result.Resolved = append(result.Resolved, trakt.MediaRef{
			Type:    opts.MediaType,
			TraktID: id,
			Title:   title,
		})
	}

	// Flush before submission: resolution work survives a failed submit.
	result.CacheAdds = len(cache.Dirty())
	result.CacheHits = cache.Hits()
	sendProgress(progress, flushCacheUpdate(result.CacheAdds))
	if err := e.store.SaveAll(cache.Dirty()); err != nil {
		return nil, fmt.Errorf("failed to persist search cache: %w", err)
	}

	result.Planned = PlanAdditions(result.Resolved, existing)
	for _, ref := range result.Resolved {
		if _, found := existing[ref.TraktID]; found {
			result.Skipped = append(result.Skipped, ref)
		}
	}

	if len(result.Planned) == 0 {
		return result, nil
	}

	batches, err := reconciler.Submit(ctx, progress, opts.Username, result.Slug, result.Planned)
	result.Batches = batches
	if err != nil {
		return result, err
	}

	return result, nil
}

// trimTitles strips surrounding whitespace and drops empty lines, keeping
// input order. Titles are never case-folded; cache keys stay raw.
func trimTitles(titles []string) []string {
	trimmed := make([]string, 0, len(titles))
	for _, title := range titles {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		trimmed = append(trimmed, title)
	}
	return trimmed
}
