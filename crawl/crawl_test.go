package crawl_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/fwojciec/docset"
	"github.com/fwojciec/docset/crawl"
	"github.com/fwojciec/docset/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func navSource() *docset.Source {
	return &docset.Source{
		Name:    "transformers",
		Bundle:  "Transformers",
		BaseURL: "https://huggingface.co/docs/transformers/",
		NavURLs: []string{"https://huggingface.co/docs/transformers/v{version}/en/_toctree.yml"},
		PageURL: "https://huggingface.co/docs/transformers/v{version}/en/{page}",
	}
}

func mirrorSource() *docset.Source {
	return &docset.Source{
		Name:    "claude",
		Bundle:  "Claude_API",
		BaseURL: "https://platform.claude.com/docs/en/api/",
	}
}

func TestCrawler_CrawlPages(t *testing.T) {
	t.Parallel()

	t.Run("returns zero result for empty page list", func(t *testing.T) {
		t.Parallel()

		c := &crawl.Crawler{
			Fetcher:   &mock.Fetcher{},
			Processor: &mock.PageProcessor{},
			Store:     &mock.PageStore{},
			Workers:   2,
		}

		result, err := c.CrawlPages(context.Background(), navSource(), "4.50.0", nil, nil)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.NotEmpty(t, result.RunID)
		assert.Equal(t, 0, result.Downloaded)
		assert.Equal(t, 0, result.Cached)
		assert.Equal(t, 0, result.Failed)
	})

	t.Run("downloads, processes and stores pages", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		fetched := map[string]bool{}
		written := map[string]string{}

		c := &crawl.Crawler{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					mu.Lock()
					fetched[url] = true
					mu.Unlock()
					return "<html>raw</html>", nil
				},
			},
			Processor: &mock.PageProcessor{
				ProcessFn: func(_ *docset.Source, _, html string) (string, error) {
					return html + "<!-- processed -->", nil
				},
			},
			Store: &mock.PageStore{
				WritePageFn: func(relpath, html string) error {
					mu.Lock()
					written[relpath] = html
					mu.Unlock()
					return nil
				},
			},
			Workers: 2,
		}

		pages := []docset.Page{
			{Path: "model_doc/bert", Name: "BERT", Type: docset.TypeClass},
			{Path: "installation", Name: "Installation", Type: docset.TypeGuide},
		}

		result, err := c.CrawlPages(context.Background(), navSource(), "4.50.0", pages, nil)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Downloaded)
		assert.Equal(t, 0, result.Cached)
		assert.Equal(t, 0, result.Failed)
		assert.Positive(t, result.Bytes)

		assert.True(t, fetched["https://huggingface.co/docs/transformers/v4.50.0/en/model_doc/bert"])
		assert.True(t, fetched["https://huggingface.co/docs/transformers/v4.50.0/en/installation"])
		assert.Equal(t, "<html>raw</html><!-- processed -->", written["model_doc/bert.html"])
		assert.Equal(t, "<html>raw</html><!-- processed -->", written["installation.html"])
	})

	t.Run("skips pages already on disk", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		fetchCalls := 0

		c := &crawl.Crawler{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					mu.Lock()
					fetchCalls++
					mu.Unlock()
					return "<html></html>", nil
				},
			},
			Processor: &mock.PageProcessor{},
			Store: &mock.PageStore{
				HasPageFn: func(relpath string) bool {
					return relpath == "installation.html"
				},
			},
			Workers: 1,
		}

		pages := []docset.Page{
			{Path: "installation", Name: "Installation", Type: docset.TypeGuide},
			{Path: "quicktour", Name: "Quick tour", Type: docset.TypeGuide},
		}

		result, err := c.CrawlPages(context.Background(), navSource(), "4.50.0", pages, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Downloaded)
		assert.Equal(t, 1, result.Cached)
		assert.Equal(t, 1, fetchCalls, "cached page should not be fetched")
	})

	t.Run("counts failed pages without aborting the crawl", func(t *testing.T) {
		t.Parallel()

		c := &crawl.Crawler{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					if url == "https://huggingface.co/docs/transformers/v4.50.0/en/missing" {
						return "", docset.Errorf(docset.ENOTFOUND, "page not found")
					}
					return "<html></html>", nil
				},
			},
			Processor: &mock.PageProcessor{},
			Store:     &mock.PageStore{},
			Workers:   1,
		}

		pages := []docset.Page{
			{Path: "missing", Name: "Missing", Type: docset.TypeGuide},
			{Path: "installation", Name: "Installation", Type: docset.TypeGuide},
		}

		result, err := c.CrawlPages(context.Background(), navSource(), "4.50.0", pages, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Downloaded)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("reports progress events", func(t *testing.T) {
		t.Parallel()

		c := &crawl.Crawler{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "<html></html>", nil
				},
			},
			Processor: &mock.PageProcessor{},
			Store:     &mock.PageStore{},
			Workers:   1,
		}

		pages := []docset.Page{
			{Path: "installation", Name: "Installation", Type: docset.TypeGuide},
		}

		var events []crawl.ProgressType
		_, err := c.CrawlPages(context.Background(), navSource(), "4.50.0", pages, func(e crawl.ProgressEvent) {
			events = append(events, e.Type)
		})

		require.NoError(t, err)
		assert.Equal(t, []crawl.ProgressType{crawl.ProgressStarted, crawl.ProgressDownloaded, crawl.ProgressFinished}, events)
	})

	t.Run("rejects invalid source", func(t *testing.T) {
		t.Parallel()

		c := &crawl.Crawler{
			Fetcher:   &mock.Fetcher{},
			Processor: &mock.PageProcessor{},
			Store:     &mock.PageStore{},
		}

		_, err := c.CrawlPages(context.Background(), &docset.Source{}, "1.0", nil, nil)
		assert.Equal(t, docset.EINVALID, docset.ErrorCode(err))
	})

	t.Run("tags debug logs with the run id", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		c := &crawl.Crawler{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "<html></html>", nil
				},
			},
			Processor: &mock.PageProcessor{},
			Store:     &mock.PageStore{},
			Workers:   1,
			Logger:    slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
		}

		pages := []docset.Page{
			{Path: "installation", Name: "Installation", Type: docset.TypeGuide},
		}

		result, err := c.CrawlPages(context.Background(), navSource(), "4.50.0", pages, nil)

		require.NoError(t, err)
		require.NotEmpty(t, result.RunID)
		assert.Contains(t, buf.String(), "run_id="+result.RunID)
	})
}

func TestCrawler_Mirror(t *testing.T) {
	t.Parallel()

	t.Run("follows in-scope links and stores processed pages", func(t *testing.T) {
		t.Parallel()

		pages := map[string]string{
			"https://platform.claude.com/docs/en/api/": "<html>index</html>",
			"https://platform.claude.com/docs/en/api/messages": "<html>messages</html>",
		}
		links := map[string][]docset.DiscoveredLink{
			"https://platform.claude.com/docs/en/api/": {
				{URL: "https://platform.claude.com/docs/en/api/messages", Priority: docset.PriorityContent},
				{URL: "https://other.example.com/external", Priority: docset.PriorityContent},
			},
		}

		written := map[string]string{}

		c := &crawl.Crawler{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					html, ok := pages[url]
					if !ok {
						return "", docset.Errorf(docset.ENOTFOUND, "page not found")
					}
					return html, nil
				},
			},
			Links: &mock.LinkExtractor{
				ExtractLinksFn: func(_, baseURL string) ([]docset.DiscoveredLink, error) {
					return links[baseURL], nil
				},
			},
			Processor: &mock.PageProcessor{},
			Store: &mock.PageStore{
				WritePageFn: func(relpath, html string) error {
					written[relpath] = html
					return nil
				},
			},
		}

		result, err := c.Mirror(context.Background(), mirrorSource(), nil)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Downloaded)
		assert.Equal(t, 0, result.Failed)
		assert.Equal(t, "<html>index</html>", written["index.html"])
		assert.Equal(t, "<html>messages</html>", written["messages.html"])
		assert.NotContains(t, written, "external.html", "off-host link should not be mirrored")
	})

	t.Run("reads cached pages for links without refetching", func(t *testing.T) {
		t.Parallel()

		fetched := map[string]bool{}
		written := map[string]bool{}

		c := &crawl.Crawler{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					fetched[url] = true
					return "<html>page</html>", nil
				},
			},
			Links: &mock.LinkExtractor{
				ExtractLinksFn: func(html, _ string) ([]docset.DiscoveredLink, error) {
					if html == "<html>cached index</html>" {
						return []docset.DiscoveredLink{
							{URL: "https://platform.claude.com/docs/en/api/models", Priority: docset.PriorityContent},
						}, nil
					}
					return nil, nil
				},
			},
			Processor: &mock.PageProcessor{},
			Store: &mock.PageStore{
				HasPageFn: func(relpath string) bool {
					return relpath == "index.html"
				},
				ReadPageFn: func(relpath string) (string, error) {
					return "<html>cached index</html>", nil
				},
				WritePageFn: func(relpath, _ string) error {
					written[relpath] = true
					return nil
				},
			},
		}

		result, err := c.Mirror(context.Background(), mirrorSource(), nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Cached)
		assert.Equal(t, 1, result.Downloaded)
		assert.False(t, fetched["https://platform.claude.com/docs/en/api/"], "cached page should not be refetched")
		assert.True(t, fetched["https://platform.claude.com/docs/en/api/models"], "links from cached pages should still be followed")
		assert.False(t, written["index.html"], "cached page should not be rewritten")
	})

	t.Run("skips redirect stubs", func(t *testing.T) {
		t.Parallel()

		written := map[string]bool{}

		c := &crawl.Crawler{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return `<html><head><title>Redirecting...</title></head></html>`, nil
				},
			},
			Processor: &mock.PageProcessor{},
			Store: &mock.PageStore{
				WritePageFn: func(relpath, _ string) error {
					written[relpath] = true
					return nil
				},
			},
		}

		_, err := c.Mirror(context.Background(), mirrorSource(), nil)

		require.NoError(t, err)
		assert.Empty(t, written, "redirect pages should not be saved")
	})

	t.Run("honors reject filters", func(t *testing.T) {
		t.Parallel()

		src := mirrorSource()
		src.RejectExts = []string{".zip"}

		fetched := map[string]bool{}

		c := &crawl.Crawler{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					fetched[url] = true
					return "<html></html>", nil
				},
			},
			Links: &mock.LinkExtractor{
				ExtractLinksFn: func(_, baseURL string) ([]docset.DiscoveredLink, error) {
					if baseURL != src.BaseURL {
						return nil, nil
					}
					return []docset.DiscoveredLink{
						{URL: "https://platform.claude.com/docs/en/api/archive.zip", Priority: docset.PriorityContent},
					}, nil
				},
			},
			Processor: &mock.PageProcessor{},
			Store:     &mock.PageStore{},
		}

		_, err := c.Mirror(context.Background(), src, nil)

		require.NoError(t, err)
		assert.False(t, fetched["https://platform.claude.com/docs/en/api/archive.zip"], "rejected extension should not be fetched")
	})

	t.Run("tags debug logs with the run id", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		c := &crawl.Crawler{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "<html></html>", nil
				},
			},
			Processor: &mock.PageProcessor{},
			Store:     &mock.PageStore{},
			Logger:    slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
		}

		result, err := c.Mirror(context.Background(), mirrorSource(), nil)

		require.NoError(t, err)
		require.NotEmpty(t, result.RunID)
		assert.Contains(t, buf.String(), "run_id="+result.RunID)
	})

	t.Run("stops at the page limit", func(t *testing.T) {
		t.Parallel()

		n := 0
		c := &crawl.Crawler{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					n++
					return "<html></html>", nil
				},
			},
			Links: &mock.LinkExtractor{
				ExtractLinksFn: func(_, _ string) ([]docset.DiscoveredLink, error) {
					// Every page links to a new page, forever.
					return []docset.DiscoveredLink{
						{URL: "https://platform.claude.com/docs/en/api/page-" + string(rune('a'+n)), Priority: docset.PriorityContent},
					}, nil
				},
			},
			Processor: &mock.PageProcessor{},
			Store:     &mock.PageStore{},
			MaxPages:  3,
		}

		result, err := c.Mirror(context.Background(), mirrorSource(), nil)

		require.NoError(t, err)
		assert.Equal(t, 3, result.Downloaded+result.Failed)
	})
}
