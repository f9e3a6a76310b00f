package mock

import (
	"github.com/fwojciec/docset"
)

// Compile-time interface verification.
var (
	_ docset.PageStore  = (*PageStore)(nil)
	_ docset.PageWalker = (*PageWalker)(nil)
)

// PageStore is a mock implementation of docset.PageStore.
// The zero value reports no pages and accepts all writes.
type PageStore struct {
	HasPageFn   func(relpath string) bool
	ReadPageFn  func(relpath string) (string, error)
	WritePageFn func(relpath, html string) error
}

func (s *PageStore) HasPage(relpath string) bool {
	if s.HasPageFn == nil {
		return false
	}
	return s.HasPageFn(relpath)
}

func (s *PageStore) ReadPage(relpath string) (string, error) {
	if s.ReadPageFn == nil {
		return "", docset.Errorf(docset.ENOTFOUND, "page not found: %s", relpath)
	}
	return s.ReadPageFn(relpath)
}

func (s *PageStore) WritePage(relpath, html string) error {
	if s.WritePageFn == nil {
		return nil
	}
	return s.WritePageFn(relpath, html)
}

// PageWalker is a mock implementation of docset.PageWalker.
type PageWalker struct {
	WalkPagesFn func(fn func(relpath, html string) error) error
}

func (w *PageWalker) WalkPages(fn func(relpath, html string) error) error {
	return w.WalkPagesFn(fn)
}
