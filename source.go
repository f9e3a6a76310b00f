package docset

import (
	"regexp"
	"strings"
)

// Source describes one documentation site and how to package it.
// Differences between sites (page tables, plist metadata, crawl scope,
// chrome-hiding CSS) are data on this struct rather than separate code
// paths.
type Source struct {
	// Registry key, e.g. "transformers".
	Name string

	// Bundle directory stem; the output is <Bundle>.docset and <Bundle>.tgz.
	Bundle string

	// Info.plist metadata.
	DisplayName string // CFBundleName
	Identifier  string // CFBundleIdentifier
	Platform    string // DocSetPlatformFamily
	Keyword     string // DashDocSetKeyword (optional)
	IndexFile   string // dashIndexFilePath
	FallbackURL string // DashDocSetFallbackURL; may contain {version}
	JavaScript  bool   // isJavaScriptEnabled
	FullText    bool   // DashDocSetDefaultFTSEnabled

	// Root of the mirrored subtree. Discovered links outside this host or
	// outside IncludePaths are not followed.
	BaseURL string

	// Navigation-tree crawl. When NavURLs is set the page list comes from
	// a YAML navigation tree and pages are fetched in parallel from
	// PageURL. When empty the source is mirrored recursively from BaseURL.
	NavURLs []string // candidate toctree URLs; may contain {version}
	PageURL string   // page URL template with {version} and {page}

	// Version discovery for versioned sources (PyPI-style JSON endpoint).
	VersionURL     string
	DefaultVersion string

	// Span id prefix marking API reference entries, e.g. "transformers.".
	// Empty for sources without inline API anchors.
	APIPrefix string

	// Recursive mirror scope and filters.
	IncludePaths []string         // URL path prefixes to keep
	Reject       []*regexp.Regexp // URLs matching any pattern are skipped
	RejectExts   []string         // file extensions to skip, e.g. ".zip"

	// Static page table: known pages with curated names and types.
	Pages []Page

	// Path-prefix page classification for pages absent from the table.
	PathTypes []PathType

	// Heading indexing overrides for specific page subtrees.
	HeadingRules []HeadingRule

	// Chrome-hiding stylesheet. When StyleFile is set the CSS is appended
	// to that file inside Documents/ (mkdocs-style themes); otherwise it
	// is injected as a <style> tag into every page.
	ChromeCSS string
	StyleFile string

	// Compiled theme stylesheet bundling. Sites that serve their theme
	// from a fingerprinted build URL get a copy downloaded into
	// Documents/ as CompiledCSSFile so pages render offline; stylesheet
	// links whose URL contains every CompiledCSSMatch substring are
	// rewritten to it. When the download fails the links are left on
	// the CDN instead.
	CompiledCSSFile  string
	CompiledCSSMatch []string
}

// Page is one row of a source's static page table.
type Page struct {
	Path string // relative path without extension, e.g. "sdks/python"
	Name string // display name for the search index
	Type EntryType
}

// PathType classifies pages by path prefix, e.g. everything under
// "reference/" as a Section.
type PathType struct {
	Prefix string
	Type   EntryType
}

// HeadingRule assigns a fixed entry type to headings on matching pages.
// Reference pages often enumerate a uniform kind of item (CLI commands,
// settings, environment variables) that heading text alone cannot
// identify.
type HeadingRule struct {
	PathContains string   // page path substring the rule applies to
	Tags         []string // heading tags to index, e.g. "h2", "h3"
	IDPrefix     string   // heading id prefix filter; empty matches all
	Type         EntryType
}

// Matches reports whether the rule applies to a heading on a page.
func (r HeadingRule) Matches(relpath, tag, id string) bool {
	if !strings.Contains(relpath, r.PathContains) {
		return false
	}
	if r.IDPrefix != "" && !strings.HasPrefix(id, r.IDPrefix) {
		return false
	}
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Validate returns an error if the source definition is incomplete.
func (s *Source) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "source name required")
	}
	if s.Bundle == "" {
		return Errorf(EINVALID, "source bundle name required")
	}
	if s.BaseURL == "" {
		return Errorf(EINVALID, "source base URL required")
	}
	if len(s.NavURLs) > 0 && s.PageURL == "" {
		return Errorf(EINVALID, "source %q has navigation URLs but no page URL template", s.Name)
	}
	if s.CompiledCSSFile != "" && len(s.CompiledCSSMatch) == 0 {
		return Errorf(EINVALID, "source %q bundles a compiled stylesheet but has no link match", s.Name)
	}
	return nil
}

// Versioned reports whether the source resolves a version before building.
func (s *Source) Versioned() bool {
	return s.VersionURL != "" || len(s.NavURLs) > 0
}

// NavURLsFor expands the {version} placeholder in the navigation URLs.
func (s *Source) NavURLsFor(version string) []string {
	urls := make([]string, 0, len(s.NavURLs))
	for _, u := range s.NavURLs {
		urls = append(urls, strings.ReplaceAll(u, "{version}", version))
	}
	return urls
}

// PageURLFor expands the page URL template for a slug.
func (s *Source) PageURLFor(version, slug string) string {
	u := strings.ReplaceAll(s.PageURL, "{version}", version)
	return strings.ReplaceAll(u, "{page}", slug)
}

// FallbackURLFor expands the {version} placeholder in the fallback URL.
func (s *Source) FallbackURLFor(version string) string {
	return strings.ReplaceAll(s.FallbackURL, "{version}", version)
}

// PageFor looks up a file path in the static page table.
// The path is normalized before matching: ".html" and "/index.html"
// suffixes are stripped, as is a trailing slash.
func (s *Source) PageFor(relpath string) (Page, bool) {
	normalized := NormalizePath(relpath)
	for _, p := range s.Pages {
		if normalized == p.Path || strings.TrimSuffix(normalized, "/") == p.Path {
			return p, true
		}
	}
	return Page{}, false
}

// PathTypeFor classifies a page by its path prefix. Returns false when
// no prefix matches.
func (s *Source) PathTypeFor(relpath string) (EntryType, bool) {
	normalized := NormalizePath(relpath)
	for _, pt := range s.PathTypes {
		if strings.HasPrefix(normalized, pt.Prefix) {
			return pt.Type, true
		}
	}
	return "", false
}

// HeadingRulesFor returns the heading rules that apply to a page.
func (s *Source) HeadingRulesFor(relpath string) []HeadingRule {
	var rules []HeadingRule
	for _, r := range s.HeadingRules {
		if strings.Contains(relpath, r.PathContains) {
			rules = append(rules, r)
		}
	}
	return rules
}

// Rejects reports whether a URL is excluded by the source's filters.
func (s *Source) Rejects(rawURL string) bool {
	for _, ext := range s.RejectExts {
		if strings.HasSuffix(rawURL, ext) {
			return true
		}
	}
	for _, re := range s.Reject {
		if re.MatchString(rawURL) {
			return true
		}
	}
	return false
}

// NormalizePath converts a file path into page-table form: forward
// slashes, no ".html" extension, no "/index.html" suffix.
func NormalizePath(relpath string) string {
	normalized := strings.ReplaceAll(relpath, "\\", "/")
	if strings.HasSuffix(normalized, "/index.html") {
		return strings.TrimSuffix(normalized, "/index.html")
	}
	if normalized == "index.html" {
		return ""
	}
	return strings.TrimSuffix(normalized, ".html")
}
