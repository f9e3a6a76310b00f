package crawl

import (
	"net/url"
	"strings"
)

// PagePath converts a page URL into a file path relative to the bundle's
// Documents directory. The base URL's path prefix is stripped so the
// bundle root corresponds to the mirrored subtree root.
//
// Example: base https://example.com/docs/en/api/ and page
// https://example.com/docs/en/api/messages → messages.html
func PagePath(base *url.URL, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := strings.TrimPrefix(u.Path, strings.TrimSuffix(base.Path, "/"))
	path = strings.TrimPrefix(path, "/")

	// Root or trailing slash → index.html
	if path == "" {
		return "index.html", nil
	}
	if strings.HasSuffix(path, "/") {
		return path + "index.html", nil
	}

	// Keep real asset extensions; everything else gets .html
	if idx := strings.LastIndex(path, "."); idx > strings.LastIndex(path, "/") {
		return path, nil
	}
	return path + ".html", nil
}
