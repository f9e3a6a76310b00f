// Package yaml implements docset.NavService on top of YAML navigation
// trees (the _toctree.yml format used by mdx documentation builds).
package yaml

import (
	"context"

	"github.com/fwojciec/docset"
	"gopkg.in/yaml.v3"
)

// Ensure NavService implements docset.NavService at compile time.
var _ docset.NavService = (*NavService)(nil)

// NavService resolves a source's page list from its navigation tree.
type NavService struct {
	Fetcher docset.Fetcher
}

// navNode is one node of the navigation tree. A node may carry a page
// (local), a display title, and nested sections, in any combination.
type navNode struct {
	Local    string    `yaml:"local"`
	Title    string    `yaml:"title"`
	Sections []navNode `yaml:"sections"`
}

// Pages fetches the source's navigation tree for the given version and
// returns its pages in navigation order. Candidate URLs are tried in
// order so a versioned tag can fall back to the main branch; ENOTFOUND
// is returned when none of them can be fetched.
func (s *NavService) Pages(ctx context.Context, src *docset.Source, version string) ([]docset.Page, error) {
	var lastErr error
	for _, url := range src.NavURLsFor(version) {
		body, err := s.Fetcher.Fetch(ctx, url)
		if err != nil {
			lastErr = err
			continue
		}

		pages, err := ParseToctree(body)
		if err != nil {
			lastErr = err
			continue
		}
		return pages, nil
	}

	if lastErr != nil {
		return nil, docset.Errorf(docset.ENOTFOUND, "no navigation tree for %s %s: %v", src.Name, version, lastErr)
	}
	return nil, docset.Errorf(docset.ENOTFOUND, "source %s has no navigation URLs", src.Name)
}

// ParseToctree parses a YAML navigation tree and collects (title, slug)
// pairs by walking nodes recursively. A node's title defaults to its
// slug when missing.
func ParseToctree(body string) ([]docset.Page, error) {
	var nodes []navNode
	if err := yaml.Unmarshal([]byte(body), &nodes); err != nil {
		return nil, docset.Errorf(docset.EINTERNAL, "parsing navigation tree: %v", err)
	}

	var pages []docset.Page
	var walk func(nodes []navNode)
	walk = func(nodes []navNode) {
		for _, node := range nodes {
			if node.Local != "" {
				title := node.Title
				if title == "" {
					title = node.Local
				}
				pages = append(pages, docset.Page{
					Path: node.Local,
					Name: title,
					Type: docset.TypeGuide,
				})
			}
			if len(node.Sections) > 0 {
				walk(node.Sections)
			}
		}
	}
	walk(nodes)

	return pages, nil
}
