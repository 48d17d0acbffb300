package tasks

import "fmt"

// ProgressUpdate represents a progress event during a reconciliation run.
//
// Used to send real-time updates to the CLI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
}

// Operation phase enumeration
type Phase int

const (
	LoadCache Phase = iota
	FetchExisting
	ResolveTitles
	FlushCache
	SubmitBatches
)

func (p Phase) String() string {
	switch p {
	case LoadCache:
		return "load_cache"
	case FetchExisting:
		return "fetch_existing"
	case ResolveTitles:
		return "resolve_titles"
	case FlushCache:
		return "flush_cache"
	case SubmitBatches:
		return "submit_batches"
	default:
		return ""
	}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default so progress reporting never stalls the run.
func sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

func loadCacheUpdate(entries int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   LoadCache,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Loaded search cache (%d entries)", entries),
	}
}

func fetchExistingUpdate(slug string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchExisting,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Fetching existing items for list %q...", slug),
	}
}

func foundExistingUpdate(slug string, count int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchExisting,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("List %q holds %d items", slug, count),
	}
}

func resolveTitleUpdate(step, total int, title string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ResolveTitles,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] %s", step, total, title),
	}
}

func flushCacheUpdate(added int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FlushCache,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Persisting %d new cache entries", added),
	}
}

func submitBatchUpdate(step, total, size int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SubmitBatches,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Submitting batch of %d...", step, total, size),
	}
}
