package mock

import (
	"context"

	"github.com/fwojciec/docset"
)

var _ docset.IndexService = (*IndexService)(nil)

// IndexService is a mock implementation of docset.IndexService.
type IndexService struct {
	ResetFn         func(ctx context.Context) error
	CreateEntryFn   func(ctx context.Context, entry *docset.Entry) error
	CreateEntriesFn func(ctx context.Context, entries []*docset.Entry) error
	CountEntriesFn  func(ctx context.Context) (int, error)
}

func (s *IndexService) Reset(ctx context.Context) error {
	if s.ResetFn == nil {
		return nil
	}
	return s.ResetFn(ctx)
}

func (s *IndexService) CreateEntry(ctx context.Context, entry *docset.Entry) error {
	if s.CreateEntryFn == nil {
		return nil
	}
	return s.CreateEntryFn(ctx, entry)
}

func (s *IndexService) CreateEntries(ctx context.Context, entries []*docset.Entry) error {
	if s.CreateEntriesFn == nil {
		return nil
	}
	return s.CreateEntriesFn(ctx, entries)
}

func (s *IndexService) CountEntries(ctx context.Context) (int, error) {
	if s.CountEntriesFn == nil {
		return 0, nil
	}
	return s.CountEntriesFn(ctx)
}
