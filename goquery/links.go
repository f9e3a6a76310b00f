package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docset"
)

// Ensure LinkExtractor implements docset.LinkExtractor at compile time.
var _ docset.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor discovers candidate links on a mirrored page. Links in
// navigation chrome get the highest priority so a mirror reaches the
// section structure before leaf pages.
type LinkExtractor struct{}

// NewLinkExtractor creates a LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks parses HTML and returns the page's links resolved
// against baseURL. Fragment-only, mailto and javascript links are
// dropped; links to other hosts are kept for the caller's scope filter.
func (e *LinkExtractor) ExtractLinks(html, baseURL string) ([]docset.DiscoveredLink, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docset.Errorf(docset.EINTERNAL, "parsing page at %s: %v", baseURL, err)
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, docset.Errorf(docset.EINVALID, "invalid base URL %q: %v", baseURL, err)
	}

	var links []docset.DiscoveredLink
	seen := map[string]bool{}

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") ||
			strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)
		if resolved.Scheme != "http" && resolved.Scheme != "https" {
			return
		}
		resolved.Fragment = ""

		u := resolved.String()
		if seen[u] {
			return
		}
		seen[u] = true

		links = append(links, docset.DiscoveredLink{
			URL:      u,
			Priority: linkPriority(s),
			Text:     strings.TrimSpace(s.Text()),
		})
	})

	return links, nil
}

// linkPriority ranks a link by where it sits in the page.
func linkPriority(s *goquery.Selection) docset.LinkPriority {
	if s.ParentsFiltered("nav, aside, [class*=sidebar], [class*=toc], [role=navigation]").Length() > 0 {
		return docset.PriorityNavigation
	}
	if s.ParentsFiltered("main, article, [role=main]").Length() > 0 {
		return docset.PriorityContent
	}
	if s.ParentsFiltered("footer").Length() > 0 {
		return docset.PriorityFallback
	}
	return docset.PriorityContent
}
