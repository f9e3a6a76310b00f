// Package goquery implements HTML processing for docset pages: offline
// rewriting, Dash anchor injection, search index extraction, and link
// discovery.
package goquery

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docset"
)

// Ensure Processor implements docset.PageProcessor at compile time.
var _ docset.PageProcessor = (*Processor)(nil)

// Processor rewrites downloaded HTML for offline display inside the
// bundle. Scripts are stripped, root-relative URLs are made absolute
// so images and external links keep working, and the source's
// chrome-hiding CSS is injected when it isn't carried by a theme file.
type Processor struct {
	// CompiledCSSFile is the Documents-relative filename of the bundled
	// compiled stylesheet. When set, matching links are rewritten to it
	// with a path relative to the page's depth; when empty they are
	// absolutized so pages keep loading the stylesheet from the CDN.
	CompiledCSSFile string
}

// NewProcessor creates a Processor.
func NewProcessor() *Processor {
	return &Processor{}
}

// Process rewrites one page. The relpath determines how deep the page
// sits relative to the Documents root.
func (p *Processor) Process(src *docset.Source, relpath, html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", docset.Errorf(docset.EINTERNAL, "parsing %s: %v", relpath, err)
	}

	origin, err := siteOrigin(src.BaseURL)
	if err != nil {
		return "", err
	}

	// Client-side scripts never work from inside a docset.
	doc.Find("script").Remove()

	if p.CompiledCSSFile != "" && len(src.CompiledCSSMatch) > 0 {
		rewriteCompiledCSS(doc, src.CompiledCSSMatch, RelativeAssetPath(relpath, p.CompiledCSSFile))
	}

	absolutize(doc, origin)

	if src.ChromeCSS != "" && src.StyleFile == "" {
		injectStyle(doc, src.ChromeCSS)
	}

	out, err := doc.Html()
	if err != nil {
		return "", docset.Errorf(docset.EINTERNAL, "rendering %s: %v", relpath, err)
	}
	return out, nil
}

// siteOrigin reduces a base URL to its scheme://host origin.
func siteOrigin(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", docset.Errorf(docset.EINVALID, "invalid base URL %q: %v", baseURL, err)
	}
	return u.Scheme + "://" + u.Host, nil
}

// absolutize rewrites root-relative URLs against the site origin.
// Protocol-relative URLs ("//cdn...") are left alone.
func absolutize(doc *goquery.Document, origin string) {
	doc.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		if strings.HasPrefix(src, "/") && !strings.HasPrefix(src, "//") {
			s.SetAttr("src", origin+src)
		}
	})

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if strings.HasPrefix(href, "/") && !strings.HasPrefix(href, "//") {
			s.SetAttr("href", origin+href)
		}
	})

	doc.Find("link[rel=stylesheet]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if strings.HasPrefix(href, "/") && !strings.HasPrefix(href, "//") {
			s.SetAttr("href", origin+href)
		}
	})
}

// rewriteCompiledCSS points matching stylesheet links at the bundled
// copy. Runs before absolutize so unmatched links still get the CDN
// treatment.
func rewriteCompiledCSS(doc *goquery.Document, match []string, localPath string) {
	doc.Find("link[rel=stylesheet]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if containsAll(href, match) {
			s.SetAttr("href", localPath)
		}
	})
}

// FindStylesheetURL returns the absolute URL of the first stylesheet
// link in html whose href contains every match substring. The pageURL
// resolves relative hrefs.
func FindStylesheetURL(html, pageURL string, match []string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", false
	}
	page, err := url.Parse(pageURL)
	if err != nil {
		return "", false
	}

	var found string
	doc.Find("link[rel=stylesheet]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		if !containsAll(href, match) {
			return true
		}
		ref, err := url.Parse(href)
		if err != nil {
			return true
		}
		found = page.ResolveReference(ref).String()
		return false
	})
	return found, found != ""
}

// RelativeAssetPath returns the path from a page to an asset stored at
// the Documents root, one "../" per directory of page depth.
func RelativeAssetPath(relpath, filename string) string {
	return strings.Repeat("../", strings.Count(relpath, "/")) + filename
}

// containsAll reports whether s contains every substring.
func containsAll(s string, subs []string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

// injectStyle appends a <style> block to the document head, creating
// the head if the page lacks one.
func injectStyle(doc *goquery.Document, css string) {
	head := doc.Find("head")
	if head.Length() == 0 {
		doc.Find("html").PrependHtml("<head></head>")
		head = doc.Find("head")
	}
	head.AppendHtml(fmt.Sprintf("<style>%s</style>", css))
}
