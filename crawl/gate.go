package crawl

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/docset"
)

// Default adaptive gate configuration.
const (
	// DefaultRequestDelay is the starting delay between successive
	// requests per worker. The gate raises it after each 429.
	DefaultRequestDelay = 1 * time.Second

	// DefaultMaxRequestDelay caps the per-request delay.
	DefaultMaxRequestDelay = 60 * time.Second
)

// Compile-time interface verification.
var _ docset.RateGate = (*AdaptiveGate)(nil)

// AdaptiveGate implements docset.RateGate with a shared pause and an
// exponentially growing per-request delay. All workers block in Wait
// while one worker sleeps through a 429 back-off in Pause; the delay
// doubles on each pause so the request rate drops until the server
// stops rate limiting.
type AdaptiveGate struct {
	mu     sync.Mutex
	paused bool
	resume chan struct{}
	delay  time.Duration
	max    time.Duration
}

// GateOption configures an AdaptiveGate.
type GateOption func(*AdaptiveGate)

// WithRequestDelay sets the starting per-request delay.
func WithRequestDelay(d time.Duration) GateOption {
	return func(g *AdaptiveGate) { g.delay = d }
}

// WithMaxRequestDelay caps the per-request delay.
func WithMaxRequestDelay(d time.Duration) GateOption {
	return func(g *AdaptiveGate) { g.max = d }
}

// NewAdaptiveGate creates an open AdaptiveGate with default delays.
func NewAdaptiveGate(opts ...GateOption) *AdaptiveGate {
	g := &AdaptiveGate{
		delay: DefaultRequestDelay,
		max:   DefaultMaxRequestDelay,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Wait blocks while a pause is in progress, then sleeps the current
// per-request delay. Returns an error if the context is canceled.
func (g *AdaptiveGate) Wait(ctx context.Context) error {
	for {
		g.mu.Lock()
		if !g.paused {
			delay := g.delay
			g.mu.Unlock()
			if delay <= 0 {
				return nil
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				return nil
			}
		}
		resume := g.resume
		g.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-resume:
		}
	}
}

// Pause closes the gate, doubles the per-request delay, sleeps
// retryAfter, then reopens. If another worker is already handling a
// pause the call returns immediately; the caller blocks in its next
// Wait instead.
func (g *AdaptiveGate) Pause(ctx context.Context, retryAfter time.Duration) error {
	g.mu.Lock()
	if g.paused {
		g.mu.Unlock()
		return nil
	}
	g.paused = true
	g.resume = make(chan struct{})
	g.delay = min(g.delay*2, g.max)
	resume := g.resume
	g.mu.Unlock()

	// Reopen even on cancellation so blocked workers can observe the
	// canceled context themselves instead of hanging on the gate.
	defer func() {
		g.mu.Lock()
		g.paused = false
		g.mu.Unlock()
		close(resume)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(retryAfter):
		return nil
	}
}

// Delay returns the current per-request delay.
func (g *AdaptiveGate) Delay() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.delay
}
