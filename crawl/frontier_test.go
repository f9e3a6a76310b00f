package crawl_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/docset"
	"github.com/fwojciec/docset/crawl"
	"github.com/stretchr/testify/assert"
)

func TestFrontier_Push(t *testing.T) {
	t.Parallel()

	t.Run("rejects duplicate URLs", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(1000, 0.01)

		link := docset.DiscoveredLink{
			URL:      "https://docs.astral.sh/uv/getting-started/",
			Priority: docset.PriorityNavigation,
		}

		assert.True(t, f.Push(link), "first push should succeed")
		assert.False(t, f.Push(link), "duplicate URL should be rejected")
	})

	t.Run("deduplicates by fragment", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(1000, 0.01)

		ok := f.Push(docset.DiscoveredLink{URL: "https://docs.astral.sh/uv/pip/#installing", Priority: docset.PriorityContent})
		assert.True(t, ok)

		ok = f.Push(docset.DiscoveredLink{URL: "https://docs.astral.sh/uv/pip/#uninstalling", Priority: docset.PriorityContent})
		assert.False(t, ok, "URLs differing only by fragment should be duplicates")

		link, ok := f.Pop()
		assert.True(t, ok)
		assert.Equal(t, "https://docs.astral.sh/uv/pip/", link.URL, "fragment should be stripped")
	})
}

func TestFrontier_Pop_returnsHighestPriorityFirst(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	f.Push(docset.DiscoveredLink{URL: "https://docs.astral.sh/uv/reference/policies/", Priority: docset.PriorityFallback})
	f.Push(docset.DiscoveredLink{URL: "https://docs.astral.sh/uv/guides/install-python/", Priority: docset.PriorityContent})
	f.Push(docset.DiscoveredLink{URL: "https://docs.astral.sh/uv/", Priority: docset.PriorityNavigation})

	link, ok := f.Pop()
	assert.True(t, ok)
	assert.Equal(t, docset.PriorityNavigation, link.Priority)
	assert.Equal(t, "https://docs.astral.sh/uv/", link.URL)

	link, ok = f.Pop()
	assert.True(t, ok)
	assert.Equal(t, docset.PriorityContent, link.Priority)

	link, ok = f.Pop()
	assert.True(t, ok)
	assert.Equal(t, docset.PriorityFallback, link.Priority)

	_, ok = f.Pop()
	assert.False(t, ok, "pop on empty frontier should return false")
}

func TestFrontier_Len(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	assert.Equal(t, 0, f.Len(), "new frontier should be empty")

	f.Push(docset.DiscoveredLink{URL: "https://docs.astral.sh/uv/concepts/projects/", Priority: docset.PriorityContent})
	assert.Equal(t, 1, f.Len())

	f.Push(docset.DiscoveredLink{URL: "https://docs.astral.sh/uv/concepts/tools/", Priority: docset.PriorityContent})
	assert.Equal(t, 2, f.Len())

	f.Pop()
	assert.Equal(t, 1, f.Len())

	f.Pop()
	assert.Equal(t, 0, f.Len())
}

func TestFrontier_Seen(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	assert.False(t, f.Seen("https://docs.astral.sh/uv/concepts/cache/"), "unseen URL should return false")

	f.Push(docset.DiscoveredLink{URL: "https://docs.astral.sh/uv/concepts/cache/", Priority: docset.PriorityContent})
	assert.True(t, f.Seen("https://docs.astral.sh/uv/concepts/cache/"), "pushed URL should be seen")

	// Popping does not forget the URL.
	f.Pop()
	assert.True(t, f.Seen("https://docs.astral.sh/uv/concepts/cache/"), "popped URL should still be seen")
}

func TestFrontier_concurrentAccess(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(10000, 0.01)

	const goroutines = 10
	const opsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(goroutines * 2)

	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < opsPerGoroutine; j++ {
				f.Push(docset.DiscoveredLink{
					URL:      fmt.Sprintf("https://docs.astral.sh/uv/page-%d-%d/", id, j),
					Priority: docset.PriorityContent,
				})
			}
		}(i)
	}

	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < opsPerGoroutine; j++ {
				f.Pop()
				f.Len()
			}
		}()
	}

	wg.Wait()

	for i := 0; i < goroutines; i++ {
		for j := 0; j < opsPerGoroutine; j++ {
			url := fmt.Sprintf("https://docs.astral.sh/uv/page-%d-%d/", i, j)
			assert.True(t, f.Seen(url), "pushed URL %s should be seen", url)
		}
	}
}
