package crawl

import (
	"container/heap"
	"strings"
	"sync"

	"github.com/fwojciec/docset"
	"github.com/fwojciec/docset/bloom"
)

var _ docset.URLFrontier = (*Frontier)(nil)

// Frontier queues the links discovered during a mirror. Navigation
// pages come out before content so the crawl finds the site structure
// early, and a Bloom filter keeps revisited URLs out of the queue.
// Safe for concurrent use.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue *linkHeap
}

// NewFrontier creates a Frontier sized for n expected URLs with the
// given deduplication false positive rate.
func NewFrontier(n uint, fpRate float64) *Frontier {
	h := &linkHeap{}
	heap.Init(h)
	return &Frontier{
		seen:  bloom.NewFilter(n, fpRate),
		queue: h,
	}
}

// Push queues a link. Returns false when the URL has already been
// seen. Fragments are stripped first, so URLs differing only by
// fragment count as the same page.
func (f *Frontier) Push(link docset.DiscoveredLink) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	url := stripFragment(link.URL)
	if f.seen.Test(url) {
		return false
	}
	f.seen.Add(url)

	link.URL = url
	heap.Push(f.queue, link)
	return true
}

// Pop returns the queued link with the highest priority.
// The bool result is false when the frontier is empty.
func (f *Frontier) Pop() (docset.DiscoveredLink, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.queue.Len() == 0 {
		return docset.DiscoveredLink{}, false
	}
	link, _ := heap.Pop(f.queue).(docset.DiscoveredLink)
	return link, true
}

// Len returns the number of queued links.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queue.Len()
}

// Seen reports whether the URL has ever been queued. Popping does not
// forget a URL; that is what makes the deduplication work.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(stripFragment(rawURL))
}

// stripFragment drops the #fragment part of a URL.
func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}

// linkHeap is a max-heap of discovered links ordered by priority.
type linkHeap []docset.DiscoveredLink

func (h linkHeap) Len() int { return len(h) }

func (h linkHeap) Less(i, j int) bool {
	return h[i].Priority > h[j].Priority
}

func (h linkHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *linkHeap) Push(x any) {
	link, _ := x.(docset.DiscoveredLink)
	*h = append(*h, link)
}

func (h *linkHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}
