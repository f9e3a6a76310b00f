package sources

import "github.com/fwojciec/docset"

// UV mirrors the uv documentation site, a Material for MkDocs build.
// There is no curated page table; pages are titled from their <title>
// and the reference subtrees get typed heading entries instead.
var UV = &docset.Source{
	Name:        "uv",
	Bundle:      "uv",
	DisplayName: "uv",
	Identifier:  "uv",
	Platform:    "uv",
	IndexFile:   "index.html",
	FallbackURL: "https://docs.astral.sh/uv/",
	JavaScript:  true,

	BaseURL:      "https://docs.astral.sh/uv/",
	IncludePaths: []string{"/uv/"},

	PathTypes: []docset.PathType{
		{Prefix: "reference/", Type: docset.TypeSection},
		{Prefix: "configuration/", Type: docset.TypeSection},
	},

	HeadingRules: []docset.HeadingRule{
		{PathContains: "reference/cli", Tags: []string{"h2", "h3"}, IDPrefix: "uv", Type: docset.TypeCommand},
		{PathContains: "reference/settings", Tags: []string{"h3"}, Type: docset.TypeSetting},
		{PathContains: "reference/environment", Tags: []string{"h3"}, IDPrefix: "uv_", Type: docset.TypeEnvironment},
	},

	// Material themes load an extra.css hook, so the chrome CSS is
	// appended there instead of injected into every page.
	StyleFile: "stylesheets/extra.css",
	ChromeCSS: uvCSS,
}

const uvCSS = `
.md-header,
.md-sidebar--primary,
.md-sidebar--secondary,
.md-footer,
.md-search {
  display: none !important;
}

.md-main__inner {
  margin-top: 0 !important;
}

.md-content {
  margin-left: 0 !important;
  margin-right: 0 !important;
}

.md-container {
  padding-top: 0 !important;
}

@media screen and (min-width: 76.25em) {
  .md-main {
    min-height: auto !important;
  }
}
`
