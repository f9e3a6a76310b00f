package goquery

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docset"
)

// Indexer builds the Dash search index from the pages on disk and
// injects the dashAnchor elements Dash uses for its in-page table of
// contents. Anchor injection is idempotent so re-indexing an already
// processed bundle is safe.
type Indexer struct {
	Walker docset.PageWalker
	Store  docset.PageStore
	Index  docset.IndexService
}

// Stats summarizes an index build.
type Stats struct {
	Pages   int
	Entries int
}

// methodPathKeywords classify pages whose path names a CRUD operation.
var methodPathKeywords = []string{"create", "list", "get", "delete", "retrieve", "update", "cancel"}

// Build resets the search index and rebuilds it from every page in the
// bundle. Pages modified by anchor injection are written back; hashes
// of the serialized documents detect untouched pages so they are not
// rewritten on every build.
func (ix *Indexer) Build(ctx context.Context, src *docset.Source) (*Stats, error) {
	if err := ix.Index.Reset(ctx); err != nil {
		return nil, err
	}

	stats := &Stats{}
	var entries []*docset.Entry

	err := ix.Walker.WalkPages(func(relpath, html string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if docset.IsRedirect(html) {
			return nil
		}

		pageEntries, processed, err := ix.indexPage(src, relpath, html)
		if err != nil {
			return err
		}
		if len(pageEntries) == 0 {
			return nil
		}

		if xxhash.Sum64String(processed) != xxhash.Sum64String(html) {
			if err := ix.Store.WritePage(relpath, processed); err != nil {
				return err
			}
		}

		stats.Pages++
		entries = append(entries, pageEntries...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := ix.Index.CreateEntries(ctx, entries); err != nil {
		return nil, err
	}

	count, err := ix.Index.CountEntries(ctx)
	if err != nil {
		return nil, err
	}
	stats.Entries = count

	return stats, nil
}

// indexPage extracts the entries of one page and injects its anchors.
// Returns no entries when the page has no usable title.
func (ix *Indexer) indexPage(src *docset.Source, relpath, html string) ([]*docset.Entry, string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, "", docset.Errorf(docset.EINTERNAL, "parsing %s: %v", relpath, err)
	}

	var entries []*docset.Entry

	name, entryType := ix.pageEntry(src, relpath, doc)
	if name == "" {
		return nil, "", nil
	}
	entries = append(entries, &docset.Entry{Name: name, Type: entryType, Path: relpath})

	if src.APIPrefix != "" {
		entries = append(entries, ix.apiEntries(src, relpath, doc)...)
	}
	entries = append(entries, ix.headingEntries(src, relpath, doc)...)

	processed, err := doc.Html()
	if err != nil {
		return nil, "", docset.Errorf(docset.EINTERNAL, "rendering %s: %v", relpath, err)
	}
	return entries, processed, nil
}

// pageEntry resolves the page-level entry from the static page table,
// falling back to the cleaned <title> and a path-based type.
func (ix *Indexer) pageEntry(src *docset.Source, relpath string, doc *goquery.Document) (string, docset.EntryType) {
	title := docset.CleanTitle(strings.TrimSpace(doc.Find("title").First().Text()))
	if title == "Redirecting..." {
		return "", ""
	}

	if page, ok := src.PageFor(relpath); ok {
		name := page.Name
		if name == "" {
			name = title
		}
		return name, page.Type
	}

	if title == "" {
		return "", ""
	}
	return title, pathEntryType(src, relpath)
}

// pathEntryType falls back to the page path when no curated entry
// exists: the source's path-prefix types win, CRUD-named paths are
// methods, everything else is a guide.
func pathEntryType(src *docset.Source, relpath string) docset.EntryType {
	if t, ok := src.PathTypeFor(relpath); ok {
		return t
	}
	normalized := docset.NormalizePath(relpath)
	for _, kw := range methodPathKeywords {
		if strings.Contains(normalized, kw) {
			return docset.TypeMethod
		}
	}
	return docset.TypeGuide
}

// apiEntries indexes inline API reference spans (<span id="prefix.*">)
// and injects their anchors.
func (ix *Indexer) apiEntries(src *docset.Source, relpath string, doc *goquery.Document) []*docset.Entry {
	var entries []*docset.Entry

	doc.Find("span[id]").Each(func(_ int, s *goquery.Selection) {
		spanID, _ := s.Attr("id")
		if !strings.HasPrefix(spanID, src.APIPrefix) {
			return
		}

		headingText := strings.TrimSpace(s.Find("h3, h4, h5").First().Text())
		name, entryType := docset.ClassifyAPIEntry(spanID, headingText, src.APIPrefix)

		injectAnchor(s, entryType, name)
		entries = append(entries, &docset.Entry{
			Name: name,
			Type: entryType,
			Path: fmt.Sprintf("%s#%s", relpath, spanID),
		})
	})

	return entries
}

// headingEntries indexes identified headings and injects their anchors.
// The source's heading rules take precedence over text classification:
// reference pages enumerate uniform items (commands, settings,
// environment variables) that heading text alone cannot identify.
// Plain h4 headings get an in-page anchor but no index row.
func (ix *Indexer) headingEntries(src *docset.Source, relpath string, doc *goquery.Document) []*docset.Entry {
	var entries []*docset.Entry
	rules := src.HeadingRulesFor(relpath)

	doc.Find("h1[id], h2[id], h3[id], h4[id]").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		if id == "" {
			return
		}

		text := docset.CleanHeading(s.Text())
		if text == "" {
			return
		}

		tag := goquery.NodeName(s)
		for _, rule := range rules {
			if rule.Matches(relpath, tag, id) {
				injectAnchor(s, rule.Type, text)
				entries = append(entries, &docset.Entry{
					Name: text,
					Type: rule.Type,
					Path: fmt.Sprintf("%s#%s", relpath, id),
				})
				return
			}
		}

		if tag == "h4" {
			injectAnchor(s, docset.TypeSection, text)
			return
		}

		entryType := docset.ClassifyHeading(text)
		injectAnchor(s, entryType, text)
		entries = append(entries, &docset.Entry{
			Name: text,
			Type: entryType,
			Path: fmt.Sprintf("%s#%s", relpath, id),
		})
	})

	return entries
}

// injectAnchor prepends a dashAnchor element unless one is already
// present, keeping re-runs idempotent.
func injectAnchor(s *goquery.Selection, entryType docset.EntryType, name string) {
	if s.Find("a.dashAnchor").Length() > 0 {
		return
	}
	anchor := fmt.Sprintf(`<a name="//apple_ref/cpp/%s/%s" class="dashAnchor"></a>`,
		entryType, url.PathEscape(name))
	s.PrependHtml(anchor)
}
