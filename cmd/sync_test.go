package main

import (
	"strings"
	"testing"

	"traktlist/internal/tasks"
	"traktlist/internal/trakt"
)

func TestBatchTotals(t *testing.T) {
	t.Run("sums both media types across batches", func(t *testing.T) {
		batches := []tasks.BatchResult{
			{Index: 0, Size: 10, Added: trakt.AddedCounts{Movies: 7, Shows: 2}, Existing: trakt.AddedCounts{Movies: 1}},
			{Index: 1, Size: 4, Added: trakt.AddedCounts{Movies: 3}, Existing: trakt.AddedCounts{Shows: 1}},
		}

		added, existing := batchTotals(batches)

		if added != 12 {
			t.Errorf("expected 12 added, got %d", added)
		}
		if existing != 2 {
			t.Errorf("expected 2 existing, got %d", existing)
		}
	})

	t.Run("no batches", func(t *testing.T) {
		added, existing := batchTotals(nil)
		if added != 0 || existing != 0 {
			t.Errorf("expected zero totals, got %d added and %d existing", added, existing)
		}
	})
}

func TestPrintSummary(t *testing.T) {
	runner, output := newTestRunner(t)

	runner.printSummary("Watchlist", &tasks.RunResult{
		Slug: "watchlist",
		Resolved: []trakt.MediaRef{
			{Type: trakt.MediaTypeMovie, TraktID: 417, Title: "Inception"},
			{Type: trakt.MediaTypeMovie, TraktID: 72, Title: "Heat"},
		},
		Planned:  []trakt.MediaRef{{Type: trakt.MediaTypeMovie, TraktID: 417, Title: "Inception"}},
		Skipped:  []trakt.MediaRef{{Type: trakt.MediaTypeMovie, TraktID: 72, Title: "Heat"}},
		NotFound: []string{"NonexistentMovieXYZ123"},
		Batches: []tasks.BatchResult{
			{Index: 0, Size: 1, Added: trakt.AddedCounts{Movies: 1}},
		},
		CacheHits: 1,
		CacheAdds: 1,
	})

	out := output.String()

	for _, want := range []string{"watchlist", "Resolved", "Added", "Not found", "Cache: 1 hits, 1 new entries."} {
		if !strings.Contains(out, want) {
			t.Errorf("summary should mention %q, got:\n%s", want, out)
		}
	}
}
