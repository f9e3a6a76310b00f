// Package fs implements the on-disk docset bundle: the .docset
// directory tree, its page store, and the page walker.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docset"
)

// Ensure Bundle implements the storage interfaces at compile time.
var (
	_ docset.PageStore  = (*Bundle)(nil)
	_ docset.PageWalker = (*Bundle)(nil)
)

// Bundle is a <name>.docset directory tree:
//
//	<name>.docset/
//	  Contents/
//	    Info.plist
//	    Resources/
//	      docSet.dsidx
//	      Documents/
//	        ... mirrored HTML ...
//
// Page paths are relative to the Documents directory and use forward
// slashes.
type Bundle struct {
	baseDir string
	name    string
}

// NewBundle creates a Bundle rooted at baseDir/<name>.docset.
func NewBundle(baseDir, name string) *Bundle {
	return &Bundle{baseDir: baseDir, name: name}
}

// DocsetDir returns the path of the .docset directory.
func (b *Bundle) DocsetDir() string {
	return filepath.Join(b.baseDir, b.name+".docset")
}

// ContentsDir returns the path of the Contents directory.
func (b *Bundle) ContentsDir() string {
	return filepath.Join(b.DocsetDir(), "Contents")
}

// ResourcesDir returns the path of the Resources directory.
func (b *Bundle) ResourcesDir() string {
	return filepath.Join(b.ContentsDir(), "Resources")
}

// DocumentsDir returns the path of the Documents directory.
func (b *Bundle) DocumentsDir() string {
	return filepath.Join(b.ResourcesDir(), "Documents")
}

// PlistPath returns the path of the Info.plist file.
func (b *Bundle) PlistPath() string {
	return filepath.Join(b.ContentsDir(), "Info.plist")
}

// DBPath returns the path of the docSet.dsidx search index database.
func (b *Bundle) DBPath() string {
	return filepath.Join(b.ResourcesDir(), "docSet.dsidx")
}

// Scaffold creates the bundle directory skeleton.
func (b *Bundle) Scaffold() error {
	return os.MkdirAll(b.DocumentsDir(), 0755)
}

// Remove deletes the entire bundle tree. Used by fresh builds.
func (b *Bundle) Remove() error {
	return os.RemoveAll(b.DocsetDir())
}

// HasPage reports whether a non-empty page file exists.
func (b *Bundle) HasPage(relpath string) bool {
	info, err := os.Stat(b.pagePath(relpath))
	return err == nil && info.Size() > 0
}

// ReadPage returns the stored HTML for a page.
func (b *Bundle) ReadPage(relpath string) (string, error) {
	data, err := os.ReadFile(b.pagePath(relpath))
	if err != nil {
		if os.IsNotExist(err) {
			return "", docset.Errorf(docset.ENOTFOUND, "page not found: %s", relpath)
		}
		return "", err
	}
	return string(data), nil
}

// WritePage stores HTML for a page, creating parent directories.
func (b *Bundle) WritePage(relpath, html string) error {
	fullPath := b.pagePath(relpath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(html), 0644)
}

// WriteResource stores a non-page file (CSS, icons) under Documents.
func (b *Bundle) WriteResource(relpath string, data []byte) error {
	fullPath := b.pagePath(relpath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, data, 0644)
}

// AppendToResource appends data to a file under Documents, creating it
// if missing. Used to extend a theme stylesheet in place.
func (b *Bundle) AppendToResource(relpath string, data []byte) error {
	fullPath := b.pagePath(relpath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(fullPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(data)
	return err
}

// WriteIcon stores an icon file at the docset root, next to Contents.
func (b *Bundle) WriteIcon(name string, data []byte) error {
	return os.WriteFile(filepath.Join(b.DocsetDir(), name), data, 0644)
}

// WalkPages calls fn for each HTML page under Documents with its
// relative path and content. Asset trees (_static, _next), 404 pages
// and files with URL artifacts in their names are skipped. Walking
// stops on the first error returned by fn.
func (b *Bundle) WalkPages(fn func(relpath, html string) error) error {
	root := b.DocumentsDir()
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if skipDir(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".html") {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if skipPage(rel) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return fn(rel, string(data))
	})
}

// skipDir reports whether a directory holds build assets, not pages.
func skipDir(name string) bool {
	return name == "_static" || name == "_next"
}

// skipPage reports whether a page should be excluded from indexing.
func skipPage(rel string) bool {
	base := filepath.Base(rel)
	if base == "404.html" {
		return true
	}
	// Query strings and fragments baked into filenames come from crawler
	// artifacts, never from real pages.
	return strings.ContainsAny(rel, "?@")
}

// pagePath resolves a forward-slash relative path under Documents.
func (b *Bundle) pagePath(relpath string) string {
	return filepath.Join(b.DocumentsDir(), filepath.FromSlash(relpath))
}
