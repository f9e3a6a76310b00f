// Package bloom provides URL deduplication for the mirror frontier.
// A probabilistic set keeps the memory cost of remembering every
// visited URL flat no matter how large the documentation site is.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter is a Bloom filter over URL strings.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a URL.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test reports whether the URL may have been added. False positives
// are possible (a page skipped that was never visited), false
// negatives are not.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of URLs added.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
