package scrape

import (
	"context"

	"golang.org/x/time/rate"
)

// Pacer enforces the polite delay between page fetches using a token bucket.
// FBref rate-limits clients that fetch faster than roughly one page per
// half-minute, so the default interval is deliberately conservative.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a Pacer allowing one fetch per interval with no bursting.
func NewPacer(interval rate.Limit) *Pacer {
	return &Pacer{
		limiter: rate.NewLimiter(interval, 1),
	}
}

// Wait blocks until the next fetch is allowed.
// Returns an error if the context is canceled before the wait completes.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
