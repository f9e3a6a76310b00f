package mock

import (
	"context"

	"github.com/fwojciec/docset"
)

// Compile-time interface verification.
var (
	_ docset.NavService     = (*NavService)(nil)
	_ docset.VersionService = (*VersionService)(nil)
)

// NavService is a mock implementation of docset.NavService.
type NavService struct {
	PagesFn func(ctx context.Context, src *docset.Source, version string) ([]docset.Page, error)
}

func (s *NavService) Pages(ctx context.Context, src *docset.Source, version string) ([]docset.Page, error) {
	return s.PagesFn(ctx, src, version)
}

// VersionService is a mock implementation of docset.VersionService.
type VersionService struct {
	LatestVersionFn func(ctx context.Context, src *docset.Source) (string, error)
}

func (s *VersionService) LatestVersion(ctx context.Context, src *docset.Source) (string, error) {
	return s.LatestVersionFn(ctx, src)
}
