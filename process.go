package docset

// PageProcessor rewrites downloaded HTML for offline display inside the
// bundle: scripts stripped, relative URLs absolutized, chrome-hiding CSS
// applied, Dash anchors injected.
type PageProcessor interface {
	Process(src *Source, relpath, html string) (string, error)
}

// LinkExtractor extracts candidate links from a mirrored page.
type LinkExtractor interface {
	// ExtractLinks parses HTML and returns discovered links with
	// priority. The baseURL is used to resolve relative URLs; links to
	// other hosts are dropped.
	ExtractLinks(html, baseURL string) ([]DiscoveredLink, error)
}
