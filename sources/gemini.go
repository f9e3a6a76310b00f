package sources

import (
	"regexp"

	"github.com/fwojciec/docset"
)

// Gemini mirrors the Gemini API developer docs. The site runs on
// Google's devsite theme, hence the devsite-prefixed chrome selectors.
var Gemini = &docset.Source{
	Name:        "gemini",
	Bundle:      "Gemini_API",
	DisplayName: "Gemini API",
	Identifier:  "gemini-api",
	Platform:    "gemini",
	IndexFile:   "index.html",
	FallbackURL: "https://ai.google.dev/gemini-api/docs/",
	JavaScript:  true,
	FullText:    true,

	BaseURL:      "https://ai.google.dev/gemini-api/docs/",
	IncludePaths: []string{"/gemini-api/docs/", "/static/"},
	RejectExts:   []string{".zip", ".tar.gz", ".whl", ".exe"},
	Reject: []*regexp.Regexp{
		// Localized and query-string page variants.
		regexp.MustCompile(`.*[@?].*=.*`),
	},

	Pages: []docset.Page{
		// Get started
		{Path: "", Name: "Gemini API Overview", Type: docset.TypeGuide},
		{Path: "quickstart", Name: "Quickstart", Type: docset.TypeGuide},
		{Path: "api-key", Name: "API Keys", Type: docset.TypeGuide},
		{Path: "libraries", Name: "Libraries", Type: docset.TypeGuide},
		{Path: "interactions", Name: "Interactions API", Type: docset.TypeGuide},
		// Models
		{Path: "models", Name: "Gemini Models", Type: docset.TypeGuide},
		{Path: "gemini-3", Name: "Gemini 3", Type: docset.TypeGuide},
		{Path: "image-generation", Name: "Image Generation", Type: docset.TypeGuide},
		{Path: "video", Name: "Video Generation", Type: docset.TypeGuide},
		{Path: "music-generation", Name: "Music Generation", Type: docset.TypeGuide},
		{Path: "imagen", Name: "Imagen", Type: docset.TypeGuide},
		{Path: "embeddings", Name: "Embeddings", Type: docset.TypeGuide},
		{Path: "robotics-overview", Name: "Robotics", Type: docset.TypeGuide},
		{Path: "speech-generation", Name: "Text-to-Speech", Type: docset.TypeGuide},
		{Path: "pricing", Name: "Pricing", Type: docset.TypeGuide},
		{Path: "rate-limits", Name: "Rate Limits", Type: docset.TypeGuide},
		// Core capabilities
		{Path: "text-generation", Name: "Text Generation", Type: docset.TypeGuide},
		{Path: "image-understanding", Name: "Image Understanding", Type: docset.TypeGuide},
		{Path: "video-understanding", Name: "Video Understanding", Type: docset.TypeGuide},
		{Path: "document-processing", Name: "Document Processing", Type: docset.TypeGuide},
		{Path: "audio", Name: "Audio Understanding", Type: docset.TypeGuide},
		{Path: "thinking", Name: "Thinking", Type: docset.TypeGuide},
		{Path: "thought-signatures", Name: "Thought Signatures", Type: docset.TypeGuide},
		{Path: "structured-output", Name: "Structured Output", Type: docset.TypeGuide},
		{Path: "function-calling", Name: "Function Calling", Type: docset.TypeFunction},
		{Path: "long-context", Name: "Long Context", Type: docset.TypeGuide},
		// Tools and agents
		{Path: "tools", Name: "Tools Overview", Type: docset.TypeGuide},
		{Path: "deep-research", Name: "Deep Research", Type: docset.TypeGuide},
		{Path: "google-search", Name: "Google Search", Type: docset.TypeGuide},
		{Path: "maps-grounding", Name: "Google Maps", Type: docset.TypeGuide},
		{Path: "code-execution", Name: "Code Execution", Type: docset.TypeGuide},
		{Path: "url-context", Name: "URL Context", Type: docset.TypeGuide},
		{Path: "computer-use", Name: "Computer Use", Type: docset.TypeGuide},
		{Path: "file-search", Name: "File Search", Type: docset.TypeGuide},
		// Live API
		{Path: "live", Name: "Live API", Type: docset.TypeGuide},
		{Path: "live-guide", Name: "Live API Capabilities", Type: docset.TypeGuide},
		{Path: "live-tools", Name: "Live API Tool Use", Type: docset.TypeGuide},
		{Path: "live-session", Name: "Live API Session Management", Type: docset.TypeGuide},
		{Path: "ephemeral-tokens", Name: "Ephemeral Tokens", Type: docset.TypeGuide},
		// Guides
		{Path: "batch-api", Name: "Batch API", Type: docset.TypeGuide},
		{Path: "file-input-methods", Name: "Input Methods", Type: docset.TypeGuide},
		{Path: "files", Name: "Files API", Type: docset.TypeGuide},
		{Path: "caching", Name: "Context Caching", Type: docset.TypeGuide},
		{Path: "openai", Name: "OpenAI Compatibility", Type: docset.TypeGuide},
		{Path: "media-resolution", Name: "Media Resolution", Type: docset.TypeGuide},
		{Path: "tokens", Name: "Token Counting", Type: docset.TypeGuide},
		{Path: "prompting-strategies", Name: "Prompt Engineering", Type: docset.TypeGuide},
		{Path: "logs-datasets", Name: "Logs and Datasets", Type: docset.TypeGuide},
		{Path: "logs-policy", Name: "Data Logging and Sharing", Type: docset.TypeGuide},
		{Path: "safety-settings", Name: "Safety Settings", Type: docset.TypeGuide},
		{Path: "safety-guidance", Name: "Safety Guidance", Type: docset.TypeGuide},
		// Frameworks
		{Path: "langgraph-example", Name: "LangChain & LangGraph", Type: docset.TypeGuide},
		{Path: "crewai-example", Name: "CrewAI", Type: docset.TypeGuide},
		{Path: "llama-index", Name: "LlamaIndex", Type: docset.TypeGuide},
		{Path: "vercel-ai-sdk-example", Name: "Vercel AI SDK", Type: docset.TypeGuide},
		// Resources
		{Path: "migrate", Name: "Migrate to Gen AI SDK", Type: docset.TypeGuide},
		{Path: "changelog", Name: "Release Notes", Type: docset.TypeGuide},
		{Path: "deprecations", Name: "Deprecations", Type: docset.TypeGuide},
		{Path: "troubleshooting", Name: "API Troubleshooting", Type: docset.TypeGuide},
		{Path: "billing", Name: "Billing", Type: docset.TypeGuide},
		{Path: "partner-integration", Name: "Partner Integrations", Type: docset.TypeGuide},
		// Google AI Studio
		{Path: "ai-studio-quickstart", Name: "AI Studio Quickstart", Type: docset.TypeGuide},
		{Path: "aistudio-build-mode", Name: "AI Studio Build Mode", Type: docset.TypeGuide},
		{Path: "learnlm", Name: "LearnLM", Type: docset.TypeGuide},
		{Path: "troubleshoot-ai-studio", Name: "AI Studio Troubleshooting", Type: docset.TypeGuide},
		{Path: "workspace", Name: "Workspace Access", Type: docset.TypeGuide},
		// Google Cloud
		{Path: "migrate-to-cloud", Name: "Vertex AI Gemini API", Type: docset.TypeGuide},
		{Path: "oauth", Name: "OAuth Authentication", Type: docset.TypeGuide},
		// Policies
		{Path: "available-regions", Name: "Available Regions", Type: docset.TypeGuide},
		{Path: "usage-policies", Name: "Usage Policies", Type: docset.TypeGuide},
		{Path: "feedback-policies", Name: "Feedback Policies", Type: docset.TypeGuide},
	},

	ChromeCSS: geminiCSS,
}

const geminiCSS = `
header, nav,
[role="navigation"],
.devsite-header, .devsite-top-nav,
.devsite-sidebar, .devsite-toc,
.devsite-footer, .devsite-banner,
.devsite-search-form,
.devsite-nav, .devsite-book-nav,
.devsite-breadcrumb-list,
.devsite-page-rating,
.devsite-feedback,
.cookie-notification,
[data-is-touch-wrapper],
.glue-cookie-notification-bar {
    display: none !important;
}

.devsite-main-content,
.devsite-article-body,
article {
    margin: 0 auto !important;
    padding: 16px !important;
    max-width: 100% !important;
}

body {
    margin: 0 !important;
    padding: 0 !important;
}
`
