package docset

import (
	"regexp"
	"strings"
)

// Heading-classification heuristics. These turn arbitrary documentation
// headings into typed search index entries. The rules are ordered: the
// first match wins, and headings nothing matches become plain sections.

var httpMethodRe = regexp.MustCompile(`^(get|post|put|patch|delete|head|options)\s+/`)

var headingKeywords = []struct {
	entryType EntryType
	keywords  []string
}{
	{TypeParameter, []string{"parameter", "request body", "query param", "path param", "header param", "body param", "properties", "arguments"}},
	{TypeValue, []string{"response", "returns", "return type"}},
	{TypeType, []string{"object", "schema", "enum"}},
	{TypeError, []string{"error", "status code"}},
	{TypeEvent, []string{"event", "streaming"}},
	{TypeSample, []string{"example", "sample", "usage"}},
}

// ClassifyHeading determines the entry type for a heading based on its text.
func ClassifyHeading(text string) EntryType {
	lower := strings.ToLower(text)

	if httpMethodRe.MatchString(lower) {
		return TypeMethod
	}

	for _, rule := range headingKeywords {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.entryType
			}
		}
	}

	return TypeSection
}

var classHeadingRe = regexp.MustCompile(`^class\s+`)

// ClassifyAPIEntry maps an API span id (e.g. "transformers.BertModel" or
// "transformers.BertModel.forward") to a display name and entry type.
// Top-level names are classes or functions depending on the heading text;
// one level of nesting is a method; anything deeper is an attribute.
func ClassifyAPIEntry(spanID, headingText, prefix string) (string, EntryType) {
	name := strings.TrimPrefix(spanID, prefix)
	parts := strings.Split(name, ".")

	switch {
	case len(parts) == 1:
		if classHeadingRe.MatchString(headingText) {
			return name, TypeClass
		}
		return name, TypeFunction
	case len(parts) == 2:
		return name, TypeMethod
	default:
		return name, TypeAttribute
	}
}

var (
	titlePipeRe       = regexp.MustCompile(`\s+\|\s+`)
	titleSeparators   = []string{" - ", " – ", " :: "}
	trailingDecorRe   = regexp.MustCompile(`[\x{00B6}#\s]+$`)
	privateUseGlyphRe = regexp.MustCompile(`\s*\x{E0A0}.*$`)
)

// CleanTitle strips site-name suffixes from a page title.
// "Quickstart | uv" and "Errors - Claude API" both become the bare name.
func CleanTitle(title string) string {
	title = strings.TrimSpace(titlePipeRe.Split(title, 2)[0])
	for _, sep := range titleSeparators {
		if idx := strings.Index(title, sep); idx != -1 {
			title = strings.TrimSpace(title[:idx])
			break
		}
	}
	return title
}

// CleanHeading strips trailing permalink glyphs (pilcrows, hash marks,
// icon-font glyphs) that themes append to heading text.
func CleanHeading(text string) string {
	text = privateUseGlyphRe.ReplaceAllString(text, "")
	return strings.TrimSpace(trailingDecorRe.ReplaceAllString(text, ""))
}

// IsRedirect reports whether an HTML document is a redirect stub.
// Mirroring tools occasionally save these; they carry no content and
// must not be indexed. Only the head of the document is inspected.
func IsRedirect(html string) bool {
	head := html
	if len(head) > 1000 {
		head = head[:1000]
	}
	return strings.Contains(head, "<title>Redirecting") ||
		strings.Contains(head, `http-equiv="refresh"`)
}
