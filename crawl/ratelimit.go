package crawl

import (
	"context"
	"sync"

	"github.com/fwojciec/docset"
	"golang.org/x/time/rate"
)

var _ docset.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests per host so a mirror stays polite
// to the documentation site. Each host gets its own token bucket, so
// waiting on one host never slows fetches from another (assets served
// from a different host, for example).
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per
// second to each host, with a burst of 1 so requests cannot bunch up.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the host's rate limit admits another request, or
// the context is canceled.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
