package docset

import (
	"context"
	"time"
)

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch downloads the URL and returns the response body.
	// Non-2xx responses are reported as coded errors: 404 as ENOTFOUND,
	// 429 as ERATELIMITED (carrying any Retry-After value), other
	// statuses as EUNAVAILABLE.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases client resources.
	Close() error
}

// RateGate coordinates adaptive rate limiting across download workers.
// The gate is shared: when any worker observes a 429 response every
// worker pauses until the back-off elapses, and the per-request delay
// grows so the overall request rate drops after each 429.
type RateGate interface {
	// Wait blocks while a rate-limit pause is in progress, then sleeps
	// the current per-request delay. Returns an error if the context is
	// canceled first.
	Wait(ctx context.Context) error

	// Pause is called by a worker that received a 429. The first caller
	// closes the gate, doubles the per-request delay, sleeps retryAfter,
	// and reopens; concurrent callers return immediately and block in
	// their next Wait.
	Pause(ctx context.Context, retryAfter time.Duration) error

	// Delay returns the current per-request delay.
	Delay() time.Duration
}

// DomainLimiter provides per-domain politeness rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// LinkPriority represents crawl priority (higher = more important).
type LinkPriority int

// Link priority levels for crawl ordering.
const (
	PriorityIgnore     LinkPriority = 0
	PriorityFallback   LinkPriority = 10
	PriorityContent    LinkPriority = 50
	PriorityNavigation LinkPriority = 100
)

// DiscoveredLink represents a URL queued for mirroring.
type DiscoveredLink struct {
	URL      string
	Priority LinkPriority
	Text     string
}

// URLFrontier manages a mirror queue with deduplication.
type URLFrontier interface {
	// Push adds a link to the frontier.
	// Returns false if the URL has already been seen.
	Push(link DiscoveredLink) bool

	// Pop returns the next URL by priority.
	// Returns false if the frontier is empty.
	Pop() (DiscoveredLink, bool)

	// Len returns the number of URLs in the queue.
	Len() int

	// Seen returns true if the URL has been processed or queued.
	Seen(url string) bool
}
