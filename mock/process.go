package mock

import (
	"github.com/fwojciec/docset"
)

// Compile-time interface verification.
var (
	_ docset.PageProcessor = (*PageProcessor)(nil)
	_ docset.LinkExtractor = (*LinkExtractor)(nil)
)

// PageProcessor is a mock implementation of docset.PageProcessor.
// The zero value passes HTML through unchanged.
type PageProcessor struct {
	ProcessFn func(src *docset.Source, relpath, html string) (string, error)
}

func (p *PageProcessor) Process(src *docset.Source, relpath, html string) (string, error) {
	if p.ProcessFn == nil {
		return html, nil
	}
	return p.ProcessFn(src, relpath, html)
}

// LinkExtractor is a mock implementation of docset.LinkExtractor.
// The zero value finds no links.
type LinkExtractor struct {
	ExtractLinksFn func(html, baseURL string) ([]docset.DiscoveredLink, error)
}

func (e *LinkExtractor) ExtractLinks(html, baseURL string) ([]docset.DiscoveredLink, error) {
	if e.ExtractLinksFn == nil {
		return nil, nil
	}
	return e.ExtractLinksFn(html, baseURL)
}
