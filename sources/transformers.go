package sources

import "github.com/fwojciec/docset"

// Transformers packages the HuggingFace Transformers docs. Unlike the
// mirrored sources the page list comes from the repo's navigation tree,
// pinned to the latest release published on PyPI; the versioned tag is
// tried first and the main branch is the fallback for unreleased tags.
var Transformers = &docset.Source{
	Name:        "transformers",
	Bundle:      "transformers",
	DisplayName: "Transformers",
	Identifier:  "transformers",
	Platform:    "transformers",
	Keyword:     "transformers",
	IndexFile:   "index.html",
	FallbackURL: "https://huggingface.co/docs/transformers/v{version}/en/",
	JavaScript:  false,

	BaseURL: "https://huggingface.co/docs/transformers/",
	NavURLs: []string{
		"https://raw.githubusercontent.com/huggingface/transformers/v{version}/docs/source/en/_toctree.yml",
		"https://raw.githubusercontent.com/huggingface/transformers/main/docs/source/en/_toctree.yml",
	},
	PageURL: "https://huggingface.co/docs/transformers/v{version}/en/{page}",

	VersionURL:     "https://pypi.org/pypi/transformers/json",
	DefaultVersion: "4.47.0",

	// API reference pages anchor every documented symbol in a span with
	// this id prefix.
	APIPrefix: "transformers.",

	ChromeCSS: transformersCSS,

	// The site's compiled Tailwind build is served from a fingerprinted
	// URL; a copy is bundled so pages render offline.
	CompiledCSSFile:  "hf_style.css",
	CompiledCSSMatch: []string{"/front/build/", "style.css"},
}

const transformersCSS = `
body > header,
body > footer,
nav[aria-label="Main"],
.docs-nav,
.doc-sidebar,
div[class*="sidebar"],
div[class*="SVELTE_HYDRATER"] > header,
.fixed.top-0,
.sticky.top-0 {
    display: none !important;
}

main,
.docs-content,
.prose {
    margin-left: 0 !important;
    max-width: 100% !important;
    width: 100% !important;
}
`
