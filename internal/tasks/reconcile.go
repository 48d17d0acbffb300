package tasks

import (
	"context"
	"errors"
	"fmt"

	"traktlist/internal/shared"
	"traktlist/internal/trakt"
)

// maxBatchSize is the hard contract of the list mutation endpoint.
const maxBatchSize = 10

// BatchResult records one submitted batch and the server's accounting for it.
type BatchResult struct {
	Index    int               // Zero-based batch position
	Size     int               // Items in the batch
	Added    trakt.AddedCounts // Items the server reports as newly added
	Existing trakt.AddedCounts // Items the server already had
}

// Reconciler computes and submits the additions a target list is missing.
type Reconciler struct {
	api       API
	pacer     Pacer
	batchSize int
}

// NewReconciler creates a Reconciler. batchSize is clamped to [1, 10];
// zero selects the maximum.
func NewReconciler(api API, pacer Pacer, batchSize int) *Reconciler {
	if batchSize <= 0 || batchSize > maxBatchSize {
		batchSize = maxBatchSize
	}
	if pacer == nil {
		pacer = NewIntervalPacer(DefaultBatchInterval)
	}
	return &Reconciler{api: api, pacer: pacer, batchSize: batchSize}
}

// ExistingItems fetches the set of Trakt ids already present in the target
// list. A missing list is an empty set, not an error, so reconciling against
// a brand-new list works.
func (r *Reconciler) ExistingItems(ctx context.Context, username, slug string) (map[int64]struct{}, error) {
	items, err := r.api.ListItems(ctx, username, slug)
	if err != nil {
		if errors.Is(err, shared.ErrListNotFound) {
			return map[int64]struct{}{}, nil
		}
		return nil, err
	}

	existing := make(map[int64]struct{}, len(items))
	for _, item := range items {
		if id, ok := item.TraktID(); ok {
			existing[id] = struct{}{}
		}
	}

	return existing, nil
}

// PlanAdditions filters out refs already present in the target list,
// preserving input order. Pure function.
func PlanAdditions(resolved []trakt.MediaRef, existing map[int64]struct{}) []trakt.MediaRef {
	plan := make([]trakt.MediaRef, 0, len(resolved))
	for _, ref := range resolved {
		if _, found := existing[ref.TraktID]; !found {
			plan = append(plan, ref)
		}
	}
	return plan
}

// partition slices a plan into batches of at most size items, in order.
// No item is ever split across two batches.
func partition(plan []trakt.MediaRef, size int) [][]trakt.MediaRef {
	var batches [][]trakt.MediaRef
	for start := 0; start < len(plan); start += size {
		end := start + size
		if end > len(plan) {
			end = len(plan)
		}
		batches = append(batches, plan[start:end])
	}
	return batches
}

// Submit partitions the plan into batches and submits them sequentially,
// waiting out the pacer between batches.
//
// A failed batch aborts the run; batches already submitted are not rolled
// back. Items the server reports as existing were added by an earlier run
// whose response was lost, so re-runs converge without a transaction log.
func (r *Reconciler) Submit(ctx context.Context, progress chan<- ProgressUpdate, username, slug string, plan []trakt.MediaRef) ([]BatchResult, error) {
	batches := partition(plan, r.batchSize)
	results := make([]BatchResult, 0, len(batches))

	for i, batch := range batches {
		if err := r.pacer.Wait(ctx); err != nil {
			return results, fmt.Errorf("pacing wait interrupted: %w", err)
		}

		sendProgress(progress, submitBatchUpdate(i+1, len(batches), len(batch)))

		payload := trakt.NewAddItemsPayload(batch)
		res, err := r.api.AddListItems(ctx, username, slug, payload)
		if err != nil {
			return results, fmt.Errorf("batch %d/%d failed: %w", i+1, len(batches), err)
		}

		results = append(results, BatchResult{
			Index:    i,
			Size:     len(batch),
			Added:    res.Added,
			Existing: res.Existing,
		})
	}

	return results, nil
}
