package docset

// PageStore persists processed HTML pages inside the bundle's Documents
// directory. Paths are relative, forward-slash separated.
type PageStore interface {
	// HasPage reports whether a page already exists on disk. Used for
	// resume: existing pages are re-indexed, not re-downloaded.
	HasPage(relpath string) bool

	// ReadPage returns the stored HTML for a page.
	// Returns ENOTFOUND if the page does not exist.
	ReadPage(relpath string) (string, error)

	// WritePage stores HTML for a page, creating parent directories.
	WritePage(relpath, html string) error
}

// PageWalker visits every HTML page in the bundle's Documents directory.
type PageWalker interface {
	// WalkPages calls fn for each HTML file with its relative path and
	// content. Asset trees (_static, _next) and 404 pages are skipped.
	// Walking stops on the first error returned by fn.
	WalkPages(fn func(relpath, html string) error) error
}
