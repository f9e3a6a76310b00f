package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/docset"
	docsethttp "github.com/fwojciec/docset/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body for 200", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>ok</html>"))
		}))
		defer srv.Close()

		f := docsethttp.NewFetcher()
		defer f.Close()

		html, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", html)
	})

	t.Run("sends browser-like headers", func(t *testing.T) {
		t.Parallel()

		var ua, accept string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ua = r.Header.Get("User-Agent")
			accept = r.Header.Get("Accept")
		}))
		defer srv.Close()

		f := docsethttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Contains(t, ua, "Mozilla/5.0")
		assert.Contains(t, accept, "text/html")
	})

	t.Run("maps 404 to ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		f := docsethttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		assert.Equal(t, docset.ENOTFOUND, docset.ErrorCode(err))
	})

	t.Run("maps 429 to ERATELIMITED with Retry-After", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", "30")
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		f := docsethttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		assert.Equal(t, docset.ERATELIMITED, docset.ErrorCode(err))
		retryAfter, ok := docset.RetryAfter(err)
		assert.True(t, ok)
		assert.Equal(t, 30*time.Second, retryAfter)
	})

	t.Run("maps 429 without Retry-After to zero pause", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		f := docsethttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		retryAfter, ok := docset.RetryAfter(err)
		assert.True(t, ok)
		assert.Zero(t, retryAfter)
	})

	t.Run("maps 500 to EUNAVAILABLE", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		f := docsethttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		assert.Equal(t, docset.EUNAVAILABLE, docset.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(time.Second)
		}))
		defer srv.Close()

		f := docsethttp.NewFetcher()
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := f.Fetch(ctx, srv.URL)
		assert.Error(t, err)
	})
}
