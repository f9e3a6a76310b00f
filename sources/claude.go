package sources

import (
	"regexp"

	"github.com/fwojciec/docset"
)

// Claude mirrors the Claude (Anthropic) API reference. The site is a
// Mintlify build, so the crawl also pulls the /static/ and /_next/
// asset trees and the chrome CSS targets Mintlify selectors.
var Claude = &docset.Source{
	Name:        "claude",
	Bundle:      "Claude_API",
	DisplayName: "Claude API",
	Identifier:  "claude-api",
	Platform:    "claude",
	IndexFile:   "overview.html",
	FallbackURL: "https://platform.claude.com/docs/en/api/",
	JavaScript:  true,
	FullText:    true,

	BaseURL:      "https://platform.claude.com/docs/en/api/",
	IncludePaths: []string{"/docs/en/api/", "/static/", "/_next/"},
	RejectExts:   []string{".zip", ".tar.gz", ".whl", ".exe"},
	Reject: []*regexp.Regexp{
		// Localized page variants.
		regexp.MustCompile(`.*(/(de|es|fr|it|ja|ko|pt|zh)/).*`),
	},

	Pages: []docset.Page{
		// API overview
		{Path: "overview", Name: "API Overview", Type: docset.TypeGuide},
		{Path: "beta-headers", Name: "Beta Headers", Type: docset.TypeSetting},
		{Path: "errors", Name: "Errors", Type: docset.TypeError},
		{Path: "rate-limits", Name: "Rate Limits", Type: docset.TypeSetting},
		{Path: "service-tiers", Name: "Service Tiers", Type: docset.TypeSetting},
		{Path: "versioning", Name: "API Versioning", Type: docset.TypeSetting},
		{Path: "ip-addresses", Name: "IP Addresses", Type: docset.TypeSetting},
		{Path: "supported-regions", Name: "Supported Regions", Type: docset.TypeSetting},
		{Path: "openai-sdk", Name: "OpenAI SDK Compatibility", Type: docset.TypeGuide},
		// Client SDKs
		{Path: "client-sdks", Name: "Client SDKs", Type: docset.TypeGuide},
		{Path: "sdks/python", Name: "Python SDK", Type: docset.TypeLibrary},
		{Path: "sdks/typescript", Name: "TypeScript SDK", Type: docset.TypeLibrary},
		{Path: "sdks/java", Name: "Java SDK", Type: docset.TypeLibrary},
		{Path: "sdks/go", Name: "Go SDK", Type: docset.TypeLibrary},
		{Path: "sdks/ruby", Name: "Ruby SDK", Type: docset.TypeLibrary},
		{Path: "sdks/csharp", Name: "C# SDK", Type: docset.TypeLibrary},
		{Path: "sdks/php", Name: "PHP SDK", Type: docset.TypeLibrary},
		// Messages API
		{Path: "messages", Name: "POST /v1/messages", Type: docset.TypeMethod},
		{Path: "messages-streaming", Name: "Messages Streaming", Type: docset.TypeEvent},
		{Path: "messages-examples", Name: "Messages Examples", Type: docset.TypeSample},
		{Path: "messages-count-tokens", Name: "POST /v1/messages/count_tokens", Type: docset.TypeMethod},
		// Message Batches API
		{Path: "creating-message-batches", Name: "POST /v1/messages/batches", Type: docset.TypeMethod},
		{Path: "retrieving-message-batches", Name: "GET /v1/messages/batches/:id", Type: docset.TypeMethod},
		{Path: "listing-message-batches", Name: "GET /v1/messages/batches", Type: docset.TypeMethod},
		{Path: "canceling-message-batches", Name: "POST /v1/messages/batches/:id/cancel", Type: docset.TypeMethod},
		{Path: "retrieving-message-batch-results", Name: "GET /v1/messages/batches/:id/results", Type: docset.TypeMethod},
		{Path: "deleting-message-batches", Name: "DELETE /v1/messages/batches/:id", Type: docset.TypeMethod},
		// Models API
		{Path: "models-list", Name: "GET /v1/models", Type: docset.TypeMethod},
		{Path: "models-get", Name: "GET /v1/models/:id", Type: docset.TypeMethod},
		// Files API
		{Path: "files-create", Name: "POST /v1/files", Type: docset.TypeMethod},
		{Path: "files-list", Name: "GET /v1/files", Type: docset.TypeMethod},
		{Path: "files-get", Name: "GET /v1/files/:id", Type: docset.TypeMethod},
		{Path: "files-delete", Name: "DELETE /v1/files/:id", Type: docset.TypeMethod},
		{Path: "files-download", Name: "GET /v1/files/:id/content", Type: docset.TypeMethod},
		// Skills API
		{Path: "skills/create-skill", Name: "POST /v1/skills", Type: docset.TypeMethod},
		{Path: "skills/list-skills", Name: "GET /v1/skills", Type: docset.TypeMethod},
		{Path: "skills/get-skill", Name: "GET /v1/skills/:id", Type: docset.TypeMethod},
		{Path: "skills/update-skill", Name: "PUT /v1/skills/:id", Type: docset.TypeMethod},
		{Path: "skills/delete-skill", Name: "DELETE /v1/skills/:id", Type: docset.TypeMethod},
	},

	ChromeCSS: claudeCSS,
}

// Hides navigation chrome only; content styling is left alone so pages
// keep their original appearance.
const claudeCSS = `
#mintlify-sidebar,
.mint-sidebar,
.mint-header,
.mint-footer,
header[role="banner"],
nav[role="navigation"],
.sidebar,
.top-nav,
.site-header,
.site-footer,
.search-form,
.search-bar,
input[type="search"],
.breadcrumb,
.breadcrumbs,
.feedback-widget,
.page-rating,
.cookie-notification,
.cookie-banner,
[data-is-touch-wrapper] > nav,
button[aria-label="Search"],
div[id*="search"],
div[class*="search-overlay"] {
    display: none !important;
}

main,
.main-content,
article {
    margin-left: 0 !important;
    max-width: 100% !important;
    width: 100% !important;
}
`
