package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/fwojciec/docset"
)

// Ensure VersionService implements docset.VersionService at compile time.
var _ docset.VersionService = (*VersionService)(nil)

// VersionService discovers the latest published version of a source from
// a PyPI-style JSON endpoint ({"info": {"version": "..."}}).
type VersionService struct {
	client *http.Client
}

// NewVersionService creates a VersionService with a short lookup timeout.
func NewVersionService() *VersionService {
	return &VersionService{
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// LatestVersion returns the newest published version of the source.
// Lookup failures fall back to the source's DefaultVersion so an offline
// registry never blocks a build.
func (s *VersionService) LatestVersion(ctx context.Context, src *docset.Source) (string, error) {
	if src.VersionURL == "" {
		return src.DefaultVersion, nil
	}

	version, err := s.lookup(ctx, src.VersionURL)
	if err != nil {
		if src.DefaultVersion != "" {
			return src.DefaultVersion, nil
		}
		return "", err
	}
	return version, nil
}

func (s *VersionService) lookup(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", docset.Errorf(docset.EUNAVAILABLE, "version lookup failed for %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", docset.Errorf(docset.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	var payload struct {
		Info struct {
			Version string `json:"version"`
		} `json:"info"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", docset.Errorf(docset.EINTERNAL, "decoding version payload from %s: %v", url, err)
	}
	if payload.Info.Version == "" {
		return "", docset.Errorf(docset.ENOTFOUND, "no version in payload from %s", url)
	}

	return payload.Info.Version, nil
}
