package docset

import "context"

// NavService resolves a source's page list from its navigation tree.
type NavService interface {
	// Pages fetches and walks the source's navigation tree for the given
	// version, returning (title, slug) pairs in navigation order.
	// Candidate URLs are tried in order; ENOTFOUND is returned when none
	// of them can be fetched.
	Pages(ctx context.Context, src *Source, version string) ([]Page, error)
}

// VersionService discovers the latest published version of a source.
type VersionService interface {
	// LatestVersion returns the newest version, falling back to the
	// source's DefaultVersion when the lookup endpoint is unavailable.
	LatestVersion(ctx context.Context, src *Source) (string, error)
}
