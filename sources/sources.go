// Package sources holds the built-in documentation source definitions.
// Each source is pure data: the crawl scope, page tables, plist metadata
// and chrome-hiding CSS that distinguish one site from another.
package sources

import (
	"sort"

	"github.com/fwojciec/docset"
)

var registry = map[string]*docset.Source{
	Claude.Name:       Claude,
	OpenAI.Name:       OpenAI,
	Gemini.Name:       Gemini,
	UV.Name:           UV,
	Transformers.Name: Transformers,
}

// All returns every built-in source, sorted by name.
func All() []*docset.Source {
	srcs := make([]*docset.Source, 0, len(registry))
	for _, src := range registry {
		srcs = append(srcs, src)
	}
	sort.Slice(srcs, func(i, j int) bool { return srcs[i].Name < srcs[j].Name })
	return srcs
}

// Lookup returns the source registered under name.
func Lookup(name string) (*docset.Source, error) {
	src, ok := registry[name]
	if !ok {
		return nil, docset.Errorf(docset.ENOTFOUND, "unknown source %q", name)
	}
	return src, nil
}

// Names returns the registered source names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
