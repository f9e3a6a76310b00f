package mock

import (
	"context"
	"time"

	"github.com/fwojciec/docset"
)

// Compile-time interface verification.
var (
	_ docset.Fetcher       = (*Fetcher)(nil)
	_ docset.RateGate      = (*RateGate)(nil)
	_ docset.DomainLimiter = (*DomainLimiter)(nil)
)

// Fetcher is a mock implementation of docset.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

// RateGate is a mock implementation of docset.RateGate.
// The zero value is an open gate with no delay.
type RateGate struct {
	WaitFn  func(ctx context.Context) error
	PauseFn func(ctx context.Context, retryAfter time.Duration) error
	DelayFn func() time.Duration
}

func (g *RateGate) Wait(ctx context.Context) error {
	if g.WaitFn == nil {
		return nil
	}
	return g.WaitFn(ctx)
}

func (g *RateGate) Pause(ctx context.Context, retryAfter time.Duration) error {
	if g.PauseFn == nil {
		return nil
	}
	return g.PauseFn(ctx, retryAfter)
}

func (g *RateGate) Delay() time.Duration {
	if g.DelayFn == nil {
		return 0
	}
	return g.DelayFn()
}

// DomainLimiter is a mock implementation of docset.DomainLimiter.
// The zero value never blocks.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.WaitFn == nil {
		return nil
	}
	return d.WaitFn(ctx, domain)
}
