// Package crawl provides documentation mirroring orchestration.
// It coordinates page downloading, adaptive rate limiting, HTML
// processing, and storage of pages into the docset bundle.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/fwojciec/docset"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Frontier configuration for recursive mirroring.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
	// maxMirrorPages limits the number of pages processed to prevent runaway crawls.
	maxMirrorPages = 1000
)

// Crawler mirrors documentation sites into a bundle.
type Crawler struct {
	Fetcher   docset.Fetcher
	Gate      docset.RateGate
	Domains   docset.DomainLimiter
	Processor docset.PageProcessor
	Links     docset.LinkExtractor
	Store     docset.PageStore
	Workers   int
	MaxPages  int

	// Logger, when set, receives debug progress tagged with the run id.
	Logger *slog.Logger
}

// Result holds the outcome of a crawl operation.
type Result struct {
	// RunID identifies the crawl in logs.
	RunID      string
	Downloaded int
	Cached     int
	Failed     int
	Bytes      int
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressDownloaded
	ProgressCached
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a crawl operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// crawlResult holds the outcome of processing a single page.
type crawlResult struct {
	url     string
	relpath string
	cached  bool
	bytes   int
	err     error
}

// CrawlPages downloads a known page list in parallel and saves processed
// HTML into the store. Pages already present on disk are counted as
// cached and not re-fetched, which makes interrupted builds resumable.
func (c *Crawler) CrawlPages(ctx context.Context, src *docset.Source, version string, pages []docset.Page, progress ProgressFunc) (*Result, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}

	workers := c.Workers
	if workers <= 0 {
		workers = 4
	}

	result := &Result{RunID: uuid.New().String()}
	total := len(pages)

	logger := c.logger().With("run_id", result.RunID)
	logger.Debug("page crawl started", "source", src.Name, "pages", total)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan crawlResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	go func() {
		for _, page := range pages {
			g.Go(func() error {
				resultCh <- c.processPage(gctx, src, version, page, logger)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	for r := range resultCh {
		completed.Add(1)
		c.tally(result, r, int(completed.Load()), total, progress)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	logger.Debug("page crawl finished",
		"downloaded", result.Downloaded, "cached", result.Cached, "failed", result.Failed)

	return result, nil
}

// processPage fetches (or reuses) one page from the static page list.
func (c *Crawler) processPage(ctx context.Context, src *docset.Source, version string, page docset.Page, logger *slog.Logger) crawlResult {
	relpath := page.Path + ".html"
	pageURL := src.PageURLFor(version, page.Path)
	r := crawlResult{url: pageURL, relpath: relpath}

	if c.Store.HasPage(relpath) {
		r.cached = true
		return r
	}

	html, err := FetchWithRetry(ctx, pageURL, c.Fetcher.Fetch, c.Gate, retryLog(logger))
	if err != nil {
		r.err = err
		return r
	}

	processed, err := c.Processor.Process(src, relpath, html)
	if err != nil {
		r.err = err
		return r
	}

	if err := c.Store.WritePage(relpath, processed); err != nil {
		r.err = err
		return r
	}

	r.bytes = len(processed)
	return r
}

// Mirror recursively mirrors the source's subtree starting from its base
// URL. Discovered links are followed when they stay on the same host,
// inside the source's include paths, and pass its reject filters.
//
// Pages are processed sequentially from the frontier to keep the
// politeness limiter simple; parallelism belongs to page-list crawls.
func (c *Crawler) Mirror(ctx context.Context, src *docset.Source, progress ProgressFunc) (*Result, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}

	base, err := url.Parse(src.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = maxMirrorPages
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(docset.DiscoveredLink{
		URL:      src.BaseURL,
		Priority: docset.PriorityNavigation,
	})

	result := &Result{RunID: uuid.New().String()}
	processed := 0

	logger := c.logger().With("run_id", result.RunID)
	logger.Debug("mirror started", "source", src.Name, "base_url", src.BaseURL)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted})
	}

	for {
		link, ok := frontier.Pop()
		if !ok {
			break
		}
		if processed >= maxPages {
			break
		}
		processed++

		if ctx.Err() != nil {
			break
		}

		r := c.mirrorPage(ctx, src, base, link, frontier, logger)
		c.tally(result, r, processed, 0, progress)
		if r.err != nil && ctx.Err() != nil {
			break
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished})
	}

	logger.Debug("mirror finished",
		"downloaded", result.Downloaded, "cached", result.Cached, "failed", result.Failed)

	return result, nil
}

// mirrorPage fetches (or reuses) one page, queues its in-scope links,
// and saves the processed HTML.
func (c *Crawler) mirrorPage(ctx context.Context, src *docset.Source, base *url.URL, link docset.DiscoveredLink, frontier *Frontier, logger *slog.Logger) crawlResult {
	r := crawlResult{url: link.URL}

	relpath, err := PagePath(base, link.URL)
	if err != nil {
		r.err = err
		return r
	}
	r.relpath = relpath

	var html string
	if c.Store.HasPage(relpath) {
		// Resume path: read the stored page so its links still feed the
		// frontier, but skip the network round trip.
		html, err = c.Store.ReadPage(relpath)
		if err != nil {
			r.err = err
			return r
		}
		r.cached = true
	} else {
		if c.Domains != nil {
			if err := c.Domains.Wait(ctx, base.Host); err != nil {
				r.err = err
				return r
			}
		}
		html, err = FetchWithRetry(ctx, link.URL, c.Fetcher.Fetch, c.Gate, retryLog(logger))
		if err != nil {
			r.err = err
			return r
		}
	}

	if c.Links != nil {
		links, err := c.Links.ExtractLinks(html, link.URL)
		if err == nil {
			for _, discovered := range links {
				if c.inScope(src, base, discovered.URL) {
					frontier.Push(discovered)
				}
			}
		}
	}

	if r.cached {
		return r
	}

	if docset.IsRedirect(html) {
		// Redirect stubs are followed through their links but never saved.
		return r
	}

	processed, err := c.Processor.Process(src, relpath, html)
	if err != nil {
		r.err = err
		return r
	}

	if err := c.Store.WritePage(relpath, processed); err != nil {
		r.err = err
		return r
	}

	r.bytes = len(processed)
	return r
}

// inScope reports whether a discovered URL should be mirrored.
func (c *Crawler) inScope(src *docset.Source, base *url.URL, rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Host != base.Host {
		return false
	}
	if src.Rejects(rawURL) {
		return false
	}

	if len(src.IncludePaths) == 0 {
		return strings.HasPrefix(u.Path, base.Path)
	}
	for _, prefix := range src.IncludePaths {
		if strings.HasPrefix(u.Path, prefix) {
			return true
		}
	}
	return false
}

// logger returns the configured logger or a discarding fallback.
func (c *Crawler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// retryLog adapts a run-scoped logger to the retry callback.
func retryLog(logger *slog.Logger) LogFunc {
	return func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...))
	}
}

// tally folds a page result into the crawl result and reports progress.
func (c *Crawler) tally(result *Result, r crawlResult, completed, total int, progress ProgressFunc) {
	switch {
	case r.err != nil:
		result.Failed++
		if progress != nil {
			progress(ProgressEvent{Type: ProgressFailed, Completed: completed, Total: total, URL: r.url, Error: r.err})
		}
	case r.cached:
		result.Cached++
		if progress != nil {
			progress(ProgressEvent{Type: ProgressCached, Completed: completed, Total: total, URL: r.url})
		}
	default:
		result.Downloaded++
		result.Bytes += r.bytes
		if progress != nil {
			progress(ProgressEvent{Type: ProgressDownloaded, Completed: completed, Total: total, URL: r.url})
		}
	}
}
