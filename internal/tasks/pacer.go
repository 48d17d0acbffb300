package tasks

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBatchInterval is the fixed wait imposed between list mutation
// batches to stay under Trakt's rate limiting. It is unconditional and
// ignores any rate-limit headers the server may return.
const DefaultBatchInterval = 5 * time.Second

// Pacer imposes a wait between consecutive batch submissions.
// Swappable for adaptive backoff, or a no-op in tests.
type Pacer interface {
	Wait(ctx context.Context) error
}

// intervalPacer waits out a fixed interval between calls using a
// [rate.Limiter] with burst 1, so the first call never blocks.
type intervalPacer struct {
	limiter *rate.Limiter
}

// NewIntervalPacer creates a Pacer with a fixed interval between batches.
// A non-positive interval falls back to [DefaultBatchInterval].
func NewIntervalPacer(interval time.Duration) Pacer {
	if interval <= 0 {
		interval = DefaultBatchInterval
	}
	return &intervalPacer{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

func (p *intervalPacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// NopPacer never waits. Used in tests and headless dry runs.
type NopPacer struct{}

func (NopPacer) Wait(ctx context.Context) error { return nil }
