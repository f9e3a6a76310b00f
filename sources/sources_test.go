package sources_test

import (
	"testing"

	"github.com/fwojciec/docset"
	"github.com/fwojciec/docset/sources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("all sources are valid", func(t *testing.T) {
		t.Parallel()

		for _, src := range sources.All() {
			assert.NoError(t, src.Validate(), "source %s", src.Name)
		}
	})

	t.Run("names and bundles are unique", func(t *testing.T) {
		t.Parallel()

		names := make(map[string]bool)
		bundles := make(map[string]bool)
		for _, src := range sources.All() {
			assert.False(t, names[src.Name], "duplicate name %s", src.Name)
			assert.False(t, bundles[src.Bundle], "duplicate bundle %s", src.Bundle)
			names[src.Name] = true
			bundles[src.Bundle] = true
		}
	})

	t.Run("lookup finds a registered source", func(t *testing.T) {
		t.Parallel()

		src, err := sources.Lookup("uv")
		require.NoError(t, err)
		assert.Equal(t, "uv", src.Name)
	})

	t.Run("lookup of unknown source returns ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		_, err := sources.Lookup("nonexistent")
		require.Error(t, err)
		assert.Equal(t, docset.ENOTFOUND, docset.ErrorCode(err))
	})

	t.Run("names are sorted", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"claude", "gemini", "openai", "transformers", "uv"}, sources.Names())
	})
}

func TestClaude(t *testing.T) {
	t.Parallel()

	t.Run("page table resolves endpoint pages", func(t *testing.T) {
		t.Parallel()

		page, ok := sources.Claude.PageFor("messages.html")
		require.True(t, ok)
		assert.Equal(t, "POST /v1/messages", page.Name)
		assert.Equal(t, docset.TypeMethod, page.Type)
	})

	t.Run("rejects localized variants and binaries", func(t *testing.T) {
		t.Parallel()

		assert.True(t, sources.Claude.Rejects("https://platform.claude.com/docs/ja/api/overview"))
		assert.True(t, sources.Claude.Rejects("https://platform.claude.com/files/sdk.zip"))
		assert.False(t, sources.Claude.Rejects("https://platform.claude.com/docs/en/api/errors"))
	})

	t.Run("is not versioned", func(t *testing.T) {
		t.Parallel()

		assert.False(t, sources.Claude.Versioned())
	})
}

func TestOpenAI(t *testing.T) {
	t.Parallel()

	t.Run("page table resolves nested resource paths", func(t *testing.T) {
		t.Parallel()

		page, ok := sources.OpenAI.PageFor("resources/chat/subresources/completions/methods/create.html")
		require.True(t, ok)
		assert.Equal(t, "Create chat completion", page.Name)
		assert.Equal(t, docset.TypeMethod, page.Type)
	})

	t.Run("rejects query-string variants", func(t *testing.T) {
		t.Parallel()

		assert.True(t, sources.OpenAI.Rejects("https://developers.openai.com/api/reference/overview?lang=python"))
	})
}

func TestGemini(t *testing.T) {
	t.Parallel()

	t.Run("root page maps to the overview entry", func(t *testing.T) {
		t.Parallel()

		page, ok := sources.Gemini.PageFor("index.html")
		require.True(t, ok)
		assert.Equal(t, "Gemini API Overview", page.Name)
	})
}

func TestUV(t *testing.T) {
	t.Parallel()

	t.Run("reference pages classify as sections", func(t *testing.T) {
		t.Parallel()

		entryType, ok := sources.UV.PathTypeFor("reference/cli.html")
		require.True(t, ok)
		assert.Equal(t, docset.TypeSection, entryType)

		entryType, ok = sources.UV.PathTypeFor("configuration/files.html")
		require.True(t, ok)
		assert.Equal(t, docset.TypeSection, entryType)

		_, ok = sources.UV.PathTypeFor("guides/projects.html")
		assert.False(t, ok)
	})

	t.Run("cli headings index as commands", func(t *testing.T) {
		t.Parallel()

		rules := sources.UV.HeadingRulesFor("reference/cli.html")
		require.Len(t, rules, 1)
		assert.True(t, rules[0].Matches("reference/cli.html", "h2", "uv-pip-install"))
		assert.False(t, rules[0].Matches("reference/cli.html", "h2", "cli-reference"))
		assert.False(t, rules[0].Matches("reference/cli.html", "h1", "uv-pip-install"))
		assert.Equal(t, docset.TypeCommand, rules[0].Type)
	})

	t.Run("environment headings require the uv_ prefix", func(t *testing.T) {
		t.Parallel()

		rules := sources.UV.HeadingRulesFor("reference/environment.html")
		require.Len(t, rules, 1)
		assert.True(t, rules[0].Matches("reference/environment.html", "h3", "uv_cache_dir"))
		assert.False(t, rules[0].Matches("reference/environment.html", "h3", "xdg_config_home"))
		assert.Equal(t, docset.TypeEnvironment, rules[0].Type)
	})

	t.Run("chrome css goes into the theme stylesheet", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "stylesheets/extra.css", sources.UV.StyleFile)
		assert.NotEmpty(t, sources.UV.ChromeCSS)
	})
}

func TestTransformers(t *testing.T) {
	t.Parallel()

	t.Run("is versioned with a PyPI lookup", func(t *testing.T) {
		t.Parallel()

		assert.True(t, sources.Transformers.Versioned())
		assert.NotEmpty(t, sources.Transformers.VersionURL)
		assert.Equal(t, "4.47.0", sources.Transformers.DefaultVersion)
	})

	t.Run("nav urls try the tag before main", func(t *testing.T) {
		t.Parallel()

		urls := sources.Transformers.NavURLsFor("4.47.0")
		require.Len(t, urls, 2)
		assert.Equal(t, "https://raw.githubusercontent.com/huggingface/transformers/v4.47.0/docs/source/en/_toctree.yml", urls[0])
		assert.Contains(t, urls[1], "/main/")
	})

	t.Run("page urls expand version and slug", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t,
			"https://huggingface.co/docs/transformers/v4.47.0/en/model_doc/bert",
			sources.Transformers.PageURLFor("4.47.0", "model_doc/bert"))
	})

	t.Run("fallback url pins the version", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t,
			"https://huggingface.co/docs/transformers/v4.47.0/en/",
			sources.Transformers.FallbackURLFor("4.47.0"))
	})
}
