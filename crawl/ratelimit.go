package crawl

import (
	"context"
	"time"

	"github.com/eatulrajput/campusgpt"
	"golang.org/x/time/rate"
)

var _ campusgpt.Limiter = (*DelayLimiter)(nil)

// DelayLimiter paces requests using a token bucket so that consecutive
// requests are separated by at least the configured delay. The crawl is
// single-host, so one bucket covers the whole job.
type DelayLimiter struct {
	limiter *rate.Limiter
}

// NewDelayLimiter creates a limiter enforcing delay between requests
// with a burst of 1 (no bursting allowed). A zero delay disables pacing.
func NewDelayLimiter(delay time.Duration) *DelayLimiter {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &DelayLimiter{limiter: rate.NewLimiter(limit, 1)}
}

// Wait blocks until the rate limit allows the next request.
// Returns an error if the context is canceled before the wait completes.
func (l *DelayLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
