// Package http provides HTTP-based implementations of docset.Fetcher
// and docset.VersionService for static documentation sites.
package http

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/docset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// browserHeaders mimic a real browser. Some documentation CDNs serve
// bot-detection pages to default Go user agents.
var browserHeaders = map[string]string{
	"User-Agent": "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/120.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.9",
}

// Ensure Fetcher implements docset.Fetcher at compile time.
var _ docset.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
// It does not execute JavaScript and is suitable for static sites only.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. Non-2xx statuses
// are reported as coded errors: 404 as ENOTFOUND, 429 as ERATELIMITED
// carrying any Retry-After value, everything else as EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", docset.Errorf(docset.EUNAVAILABLE, "request failed for %s: %v", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", docset.Errorf(docset.ENOTFOUND, "HTTP 404 for %s", url)

	case resp.StatusCode == http.StatusTooManyRequests:
		e := docset.Errorf(docset.ERATELIMITED, "HTTP 429 for %s", url)
		e.RetryAfter = parseRetryAfter(resp.Header.Get("Retry-After"))
		return "", e

	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", docset.Errorf(docset.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", docset.Errorf(docset.EUNAVAILABLE, "reading body for %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// parseRetryAfter handles both Retry-After forms: delay seconds and an
// HTTP date. Returns 0 when the header is absent or unparseable.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(value); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}
