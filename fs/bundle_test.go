package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docset"
	"github.com/fwojciec/docset/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundle_paths(t *testing.T) {
	t.Parallel()

	b := fs.NewBundle("/out", "Claude_API")

	assert.Equal(t, filepath.Join("/out", "Claude_API.docset"), b.DocsetDir())
	assert.Equal(t, filepath.Join("/out", "Claude_API.docset", "Contents", "Info.plist"), b.PlistPath())
	assert.Equal(t, filepath.Join("/out", "Claude_API.docset", "Contents", "Resources", "docSet.dsidx"), b.DBPath())
	assert.Equal(t, filepath.Join("/out", "Claude_API.docset", "Contents", "Resources", "Documents"), b.DocumentsDir())
}

func TestBundle_Scaffold(t *testing.T) {
	t.Parallel()

	b := fs.NewBundle(t.TempDir(), "Test")
	require.NoError(t, b.Scaffold())

	info, err := os.Stat(b.DocumentsDir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestBundle_pages(t *testing.T) {
	t.Parallel()

	t.Run("writes and reads a page", func(t *testing.T) {
		t.Parallel()

		b := fs.NewBundle(t.TempDir(), "Test")
		require.NoError(t, b.Scaffold())

		require.NoError(t, b.WritePage("api/messages.html", "<html>messages</html>"))

		html, err := b.ReadPage("api/messages.html")
		require.NoError(t, err)
		assert.Equal(t, "<html>messages</html>", html)
	})

	t.Run("HasPage reflects page existence", func(t *testing.T) {
		t.Parallel()

		b := fs.NewBundle(t.TempDir(), "Test")
		require.NoError(t, b.Scaffold())

		assert.False(t, b.HasPage("missing.html"))

		require.NoError(t, b.WritePage("present.html", "<html></html>"))
		assert.True(t, b.HasPage("present.html"))
	})

	t.Run("HasPage is false for empty files", func(t *testing.T) {
		t.Parallel()

		b := fs.NewBundle(t.TempDir(), "Test")
		require.NoError(t, b.Scaffold())

		// An empty file is a truncated download, not a cached page.
		require.NoError(t, b.WritePage("empty.html", ""))
		assert.False(t, b.HasPage("empty.html"))
	})

	t.Run("ReadPage returns ENOTFOUND for missing pages", func(t *testing.T) {
		t.Parallel()

		b := fs.NewBundle(t.TempDir(), "Test")
		require.NoError(t, b.Scaffold())

		_, err := b.ReadPage("missing.html")
		assert.Equal(t, docset.ENOTFOUND, docset.ErrorCode(err))
	})
}

func TestBundle_WalkPages(t *testing.T) {
	t.Parallel()

	t.Run("visits HTML pages with relative paths", func(t *testing.T) {
		t.Parallel()

		b := fs.NewBundle(t.TempDir(), "Test")
		require.NoError(t, b.Scaffold())
		require.NoError(t, b.WritePage("index.html", "<html>index</html>"))
		require.NoError(t, b.WritePage("api/messages.html", "<html>messages</html>"))
		require.NoError(t, b.WriteResource("styles.css", []byte("body {}")))

		visited := map[string]string{}
		err := b.WalkPages(func(relpath, html string) error {
			visited[relpath] = html
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"index.html":        "<html>index</html>",
			"api/messages.html": "<html>messages</html>",
		}, visited)
	})

	t.Run("skips asset trees and 404 pages", func(t *testing.T) {
		t.Parallel()

		b := fs.NewBundle(t.TempDir(), "Test")
		require.NoError(t, b.Scaffold())
		require.NoError(t, b.WritePage("page.html", "<html></html>"))
		require.NoError(t, b.WritePage("404.html", "<html></html>"))
		require.NoError(t, b.WritePage("_static/doc.html", "<html></html>"))
		require.NoError(t, b.WritePage("_next/data.html", "<html></html>"))

		var visited []string
		err := b.WalkPages(func(relpath, _ string) error {
			visited = append(visited, relpath)
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"page.html"}, visited)
	})

	t.Run("stops on the first callback error", func(t *testing.T) {
		t.Parallel()

		b := fs.NewBundle(t.TempDir(), "Test")
		require.NoError(t, b.Scaffold())
		require.NoError(t, b.WritePage("a.html", "<html></html>"))
		require.NoError(t, b.WritePage("b.html", "<html></html>"))

		calls := 0
		err := b.WalkPages(func(_, _ string) error {
			calls++
			return docset.Errorf(docset.EINTERNAL, "boom")
		})

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestBundle_AppendToResource(t *testing.T) {
	t.Parallel()

	b := fs.NewBundle(t.TempDir(), "Test")
	require.NoError(t, b.Scaffold())

	require.NoError(t, b.WriteResource("css/style.css", []byte("body {}\n")))
	require.NoError(t, b.AppendToResource("css/style.css", []byte(".hidden { display: none }\n")))

	data, err := os.ReadFile(filepath.Join(b.DocumentsDir(), "css", "style.css"))
	require.NoError(t, err)
	assert.Equal(t, "body {}\n.hidden { display: none }\n", string(data))
}

func TestBundle_Remove(t *testing.T) {
	t.Parallel()

	b := fs.NewBundle(t.TempDir(), "Test")
	require.NoError(t, b.Scaffold())
	require.NoError(t, b.WritePage("page.html", "<html></html>"))

	require.NoError(t, b.Remove())

	_, err := os.Stat(b.DocsetDir())
	assert.True(t, os.IsNotExist(err))
}
