package sources

import (
	"regexp"

	"github.com/fwojciec/docset"
)

// OpenAI mirrors the OpenAI API reference. Endpoint pages sit deep
// under /resources/, so the crawl allows more depth than the other
// mirrored sources and the page table carries curated names for the
// generated resource paths.
var OpenAI = &docset.Source{
	Name:        "openai",
	Bundle:      "OpenAI_API",
	DisplayName: "OpenAI API",
	Identifier:  "openai-api",
	Platform:    "openai",
	IndexFile:   "overview.html",
	FallbackURL: "https://developers.openai.com/api/reference/",
	JavaScript:  true,
	FullText:    true,

	BaseURL:      "https://developers.openai.com/api/reference/",
	IncludePaths: []string{"/api/reference/", "/static/", "/_next/"},
	RejectExts:   []string{".zip", ".tar.gz", ".whl", ".exe"},
	Reject: []*regexp.Regexp{
		// Query-string page variants.
		regexp.MustCompile(`.*[@?].*=.*`),
	},

	Pages: []docset.Page{
		// Overview
		{Path: "overview", Name: "API Reference Overview", Type: docset.TypeGuide},
		// Responses
		{Path: "responses/overview", Name: "Responses Overview", Type: docset.TypeResource},
		{Path: "resources/responses/methods/create", Name: "Create a response", Type: docset.TypeMethod},
		{Path: "resources/responses/methods/retrieve", Name: "Retrieve a response", Type: docset.TypeMethod},
		{Path: "resources/responses/methods/delete", Name: "Delete a response", Type: docset.TypeMethod},
		{Path: "resources/responses/subresources/input_items/methods/list", Name: "List input items", Type: docset.TypeMethod},
		{Path: "resources/responses/subresources/input_tokens/methods/count", Name: "Count input tokens", Type: docset.TypeMethod},
		{Path: "resources/responses/methods/cancel", Name: "Cancel a response", Type: docset.TypeMethod},
		{Path: "resources/responses/methods/compact", Name: "Compact a response", Type: docset.TypeMethod},
		{Path: "resources/responses/streaming-events", Name: "Response streaming events", Type: docset.TypeEvent},
		// Conversations
		{Path: "resources/conversations/methods/create", Name: "Create a conversation", Type: docset.TypeMethod},
		{Path: "resources/conversations/methods/retrieve", Name: "Retrieve a conversation", Type: docset.TypeMethod},
		{Path: "resources/conversations/methods/update", Name: "Update a conversation", Type: docset.TypeMethod},
		{Path: "resources/conversations/methods/delete", Name: "Delete a conversation", Type: docset.TypeMethod},
		{Path: "resources/conversations/subresources/items/methods/create", Name: "Create conversation item", Type: docset.TypeMethod},
		{Path: "resources/conversations/subresources/items/methods/retrieve", Name: "Retrieve conversation item", Type: docset.TypeMethod},
		{Path: "resources/conversations/subresources/items/methods/delete", Name: "Delete conversation item", Type: docset.TypeMethod},
		{Path: "resources/conversations/subresources/items/methods/list", Name: "List conversation items", Type: docset.TypeMethod},
		// Webhooks
		{Path: "resources/webhooks", Name: "Webhooks", Type: docset.TypeEvent},
		// Chat Completions
		{Path: "chat-completions/overview", Name: "Chat Completions Overview", Type: docset.TypeResource},
		{Path: "resources/chat/subresources/completions/methods/create", Name: "Create chat completion", Type: docset.TypeMethod},
		{Path: "resources/chat/subresources/completions/methods/retrieve", Name: "Retrieve chat completion", Type: docset.TypeMethod},
		{Path: "resources/chat/subresources/completions/methods/update", Name: "Update chat completion", Type: docset.TypeMethod},
		{Path: "resources/chat/subresources/completions/methods/delete", Name: "Delete chat completion", Type: docset.TypeMethod},
		{Path: "resources/chat/subresources/completions/methods/list", Name: "List chat completions", Type: docset.TypeMethod},
		{Path: "resources/chat/subresources/completions/subresources/messages/methods/list", Name: "List chat messages", Type: docset.TypeMethod},
		{Path: "resources/chat/subresources/completions/streaming-events", Name: "Chat streaming events", Type: docset.TypeEvent},
		// Audio
		{Path: "resources/audio/subresources/transcriptions/methods/create", Name: "Create transcription", Type: docset.TypeMethod},
		{Path: "resources/audio/subresources/translations/methods/create", Name: "Create translation", Type: docset.TypeMethod},
		{Path: "resources/audio/subresources/speech/methods/create", Name: "Create speech", Type: docset.TypeMethod},
		{Path: "resources/audio/subresources/voices/methods/create", Name: "Create voice", Type: docset.TypeMethod},
		// Voice consents
		{Path: "resources/audio/subresources/voice_consents/methods/create", Name: "Create voice consent", Type: docset.TypeMethod},
		{Path: "resources/audio/subresources/voice_consents/methods/retrieve", Name: "Retrieve voice consent", Type: docset.TypeMethod},
		{Path: "resources/audio/subresources/voice_consents/methods/update", Name: "Update voice consent", Type: docset.TypeMethod},
		{Path: "resources/audio/subresources/voice_consents/methods/delete", Name: "Delete voice consent", Type: docset.TypeMethod},
		{Path: "resources/audio/subresources/voice_consents/methods/list", Name: "List voice consents", Type: docset.TypeMethod},
		// Videos
		{Path: "resources/videos/methods/create", Name: "Create video", Type: docset.TypeMethod},
		{Path: "resources/videos/methods/retrieve", Name: "Retrieve video", Type: docset.TypeMethod},
		{Path: "resources/videos/methods/delete", Name: "Delete video", Type: docset.TypeMethod},
		{Path: "resources/videos/methods/list", Name: "List videos", Type: docset.TypeMethod},
		{Path: "resources/videos/methods/download_content", Name: "Download video content", Type: docset.TypeMethod},
		{Path: "resources/videos/methods/remix", Name: "Remix video", Type: docset.TypeMethod},
		// Images
		{Path: "resources/images/methods/generate", Name: "Generate image", Type: docset.TypeMethod},
		{Path: "resources/images/methods/edit", Name: "Edit image", Type: docset.TypeMethod},
		{Path: "resources/images/methods/create_variation", Name: "Create image variation", Type: docset.TypeMethod},
		{Path: "resources/images/generation-streaming-events", Name: "Image generation streaming events", Type: docset.TypeEvent},
		{Path: "resources/images/edit-streaming-events", Name: "Image edit streaming events", Type: docset.TypeEvent},
		// Embeddings
		{Path: "resources/embeddings/methods/create", Name: "Create embedding", Type: docset.TypeMethod},
		// Evals
		{Path: "resources/evals/methods/create", Name: "Create eval", Type: docset.TypeMethod},
		{Path: "resources/evals/methods/retrieve", Name: "Retrieve eval", Type: docset.TypeMethod},
		{Path: "resources/evals/methods/update", Name: "Update eval", Type: docset.TypeMethod},
		{Path: "resources/evals/methods/delete", Name: "Delete eval", Type: docset.TypeMethod},
		{Path: "resources/evals/methods/list", Name: "List evals", Type: docset.TypeMethod},
		{Path: "resources/evals/subresources/runs/methods/create", Name: "Create eval run", Type: docset.TypeMethod},
		{Path: "resources/evals/subresources/runs/methods/retrieve", Name: "Retrieve eval run", Type: docset.TypeMethod},
		{Path: "resources/evals/subresources/runs/methods/delete", Name: "Delete eval run", Type: docset.TypeMethod},
		{Path: "resources/evals/subresources/runs/methods/list", Name: "List eval runs", Type: docset.TypeMethod},
		{Path: "resources/evals/subresources/runs/methods/cancel", Name: "Cancel eval run", Type: docset.TypeMethod},
		{Path: "resources/evals/subresources/runs/subresources/output_items/methods/retrieve", Name: "Retrieve eval output item", Type: docset.TypeMethod},
		{Path: "resources/evals/subresources/runs/subresources/output_items/methods/list", Name: "List eval output items", Type: docset.TypeMethod},
		// Fine tuning
		{Path: "resources/fine_tuning/subresources/jobs/methods/create", Name: "Create fine-tuning job", Type: docset.TypeMethod},
		{Path: "resources/fine_tuning/subresources/jobs/methods/retrieve", Name: "Retrieve fine-tuning job", Type: docset.TypeMethod},
		{Path: "resources/fine_tuning/subresources/jobs/methods/list", Name: "List fine-tuning jobs", Type: docset.TypeMethod},
		{Path: "resources/fine_tuning/subresources/jobs/methods/list_events", Name: "List fine-tuning events", Type: docset.TypeMethod},
		{Path: "resources/fine_tuning/subresources/jobs/methods/cancel", Name: "Cancel fine-tuning job", Type: docset.TypeMethod},
		{Path: "resources/fine_tuning/subresources/jobs/methods/pause", Name: "Pause fine-tuning job", Type: docset.TypeMethod},
		{Path: "resources/fine_tuning/subresources/jobs/methods/resume", Name: "Resume fine-tuning job", Type: docset.TypeMethod},
		{Path: "resources/fine_tuning/subresources/jobs/subresources/checkpoints/methods/list", Name: "List fine-tuning checkpoints", Type: docset.TypeMethod},
		{Path: "resources/fine_tuning/subresources/checkpoints/subresources/permissions/methods/create", Name: "Create checkpoint permission", Type: docset.TypeMethod},
		{Path: "resources/fine_tuning/subresources/checkpoints/subresources/permissions/methods/retrieve", Name: "Retrieve checkpoint permission", Type: docset.TypeMethod},
		{Path: "resources/fine_tuning/subresources/checkpoints/subresources/permissions/methods/delete", Name: "Delete checkpoint permission", Type: docset.TypeMethod},
		{Path: "resources/fine_tuning/subresources/alpha/subresources/graders/methods/run", Name: "Run grader", Type: docset.TypeMethod},
		{Path: "resources/fine_tuning/subresources/alpha/subresources/graders/methods/validate", Name: "Validate grader", Type: docset.TypeMethod},
		// Batches
		{Path: "resources/batches/methods/create", Name: "Create batch", Type: docset.TypeMethod},
		{Path: "resources/batches/methods/retrieve", Name: "Retrieve batch", Type: docset.TypeMethod},
		{Path: "resources/batches/methods/list", Name: "List batches", Type: docset.TypeMethod},
		{Path: "resources/batches/methods/cancel", Name: "Cancel batch", Type: docset.TypeMethod},
		// Files
		{Path: "resources/files/methods/list", Name: "List files", Type: docset.TypeMethod},
		{Path: "resources/files/methods/create", Name: "Create file", Type: docset.TypeMethod},
		{Path: "resources/files/methods/retrieve", Name: "Retrieve file", Type: docset.TypeMethod},
		{Path: "resources/files/methods/delete", Name: "Delete file", Type: docset.TypeMethod},
		{Path: "resources/files/methods/content", Name: "Retrieve file content", Type: docset.TypeMethod},
		// Uploads
		{Path: "resources/uploads/methods/create", Name: "Create upload", Type: docset.TypeMethod},
		{Path: "resources/uploads/methods/cancel", Name: "Cancel upload", Type: docset.TypeMethod},
		{Path: "resources/uploads/methods/complete", Name: "Complete upload", Type: docset.TypeMethod},
		{Path: "resources/uploads/subresources/parts/methods/create", Name: "Create upload part", Type: docset.TypeMethod},
		// Models
		{Path: "resources/models/methods/retrieve", Name: "Retrieve model", Type: docset.TypeMethod},
		{Path: "resources/models/methods/delete", Name: "Delete model", Type: docset.TypeMethod},
		{Path: "resources/models/methods/list", Name: "List models", Type: docset.TypeMethod},
		// Moderations
		{Path: "resources/moderations/methods/create", Name: "Create moderation", Type: docset.TypeMethod},
		// Vector stores
		{Path: "resources/vector_stores/methods/create", Name: "Create vector store", Type: docset.TypeMethod},
		{Path: "resources/vector_stores/methods/retrieve", Name: "Retrieve vector store", Type: docset.TypeMethod},
		{Path: "resources/vector_stores/methods/update", Name: "Update vector store", Type: docset.TypeMethod},
		{Path: "resources/vector_stores/methods/delete", Name: "Delete vector store", Type: docset.TypeMethod},
		{Path: "resources/vector_stores/methods/list", Name: "List vector stores", Type: docset.TypeMethod},
		{Path: "resources/vector_stores/methods/search", Name: "Search vector store", Type: docset.TypeMethod},
		{Path: "resources/vector_stores/subresources/files/methods/list", Name: "List vector store files", Type: docset.TypeMethod},
		{Path: "resources/vector_stores/subresources/files/methods/create", Name: "Create vector store file", Type: docset.TypeMethod},
		{Path: "resources/vector_stores/subresources/files/methods/retrieve", Name: "Retrieve vector store file", Type: docset.TypeMethod},
		{Path: "resources/vector_stores/subresources/files/methods/update", Name: "Update vector store file", Type: docset.TypeMethod},
		{Path: "resources/vector_stores/subresources/files/methods/delete", Name: "Delete vector store file", Type: docset.TypeMethod},
		{Path: "resources/vector_stores/subresources/files/methods/content", Name: "Retrieve vector store file content", Type: docset.TypeMethod},
		{Path: "resources/vector_stores/subresources/file_batches/methods/create", Name: "Create vector store file batch", Type: docset.TypeMethod},
		{Path: "resources/vector_stores/subresources/file_batches/methods/retrieve", Name: "Retrieve vector store file batch", Type: docset.TypeMethod},
		{Path: "resources/vector_stores/subresources/file_batches/methods/list_files", Name: "List vector store batch files", Type: docset.TypeMethod},
		{Path: "resources/vector_stores/subresources/file_batches/methods/cancel", Name: "Cancel vector store file batch", Type: docset.TypeMethod},
		// ChatKit
		{Path: "resources/beta/subresources/chatkit/subresources/sessions/methods/create", Name: "Create ChatKit session", Type: docset.TypeMethod},
		{Path: "resources/beta/subresources/chatkit/subresources/sessions/methods/cancel", Name: "Cancel ChatKit session", Type: docset.TypeMethod},
		{Path: "resources/beta/subresources/chatkit/subresources/threads/methods/retrieve", Name: "Retrieve ChatKit thread", Type: docset.TypeMethod},
		{Path: "resources/beta/subresources/chatkit/subresources/threads/methods/delete", Name: "Delete ChatKit thread", Type: docset.TypeMethod},
		{Path: "resources/beta/subresources/chatkit/subresources/threads/methods/list_items", Name: "List ChatKit thread items", Type: docset.TypeMethod},
		{Path: "resources/beta/subresources/chatkit/subresources/threads/methods/list", Name: "List ChatKit threads", Type: docset.TypeMethod},
		// Containers
		{Path: "resources/containers/methods/create", Name: "Create container", Type: docset.TypeMethod},
		{Path: "resources/containers/methods/retrieve", Name: "Retrieve container", Type: docset.TypeMethod},
		{Path: "resources/containers/methods/delete", Name: "Delete container", Type: docset.TypeMethod},
		{Path: "resources/containers/methods/list", Name: "List containers", Type: docset.TypeMethod},
		{Path: "resources/containers/subresources/files/methods/list", Name: "List container files", Type: docset.TypeMethod},
		{Path: "resources/containers/subresources/files/methods/create", Name: "Create container file", Type: docset.TypeMethod},
		{Path: "resources/containers/subresources/files/methods/retrieve", Name: "Retrieve container file", Type: docset.TypeMethod},
		{Path: "resources/containers/subresources/files/methods/delete", Name: "Delete container file", Type: docset.TypeMethod},
		{Path: "resources/containers/subresources/files/subresources/content/methods/retrieve", Name: "Retrieve container file content", Type: docset.TypeMethod},
		// Skills
		{Path: "resources/skills/methods/create", Name: "Create skill", Type: docset.TypeMethod},
		{Path: "resources/skills/methods/retrieve", Name: "Retrieve skill", Type: docset.TypeMethod},
		{Path: "resources/skills/subresources/content/methods/retrieve", Name: "Retrieve skill content", Type: docset.TypeMethod},
		{Path: "resources/skills/methods/update", Name: "Update skill", Type: docset.TypeMethod},
		{Path: "resources/skills/methods/delete", Name: "Delete skill", Type: docset.TypeMethod},
		{Path: "resources/skills/methods/list", Name: "List skills", Type: docset.TypeMethod},
		{Path: "resources/skills/subresources/versions/methods/create", Name: "Create skill version", Type: docset.TypeMethod},
		{Path: "resources/skills/subresources/versions/methods/retrieve", Name: "Retrieve skill version", Type: docset.TypeMethod},
		{Path: "resources/skills/subresources/versions/subresources/content/methods/retrieve", Name: "Retrieve skill version content", Type: docset.TypeMethod},
		{Path: "resources/skills/subresources/versions/methods/delete", Name: "Delete skill version", Type: docset.TypeMethod},
		{Path: "resources/skills/subresources/versions/methods/list", Name: "List skill versions", Type: docset.TypeMethod},
		// Realtime
		{Path: "resources/realtime/subresources/calls/methods/accept", Name: "Accept realtime call", Type: docset.TypeMethod},
		{Path: "resources/realtime/subresources/calls/methods/hangup", Name: "Hangup realtime call", Type: docset.TypeMethod},
		{Path: "resources/realtime/subresources/calls/methods/refer", Name: "Refer realtime call", Type: docset.TypeMethod},
		{Path: "resources/realtime/subresources/calls/methods/reject", Name: "Reject realtime call", Type: docset.TypeMethod},
		{Path: "resources/realtime/subresources/client_secrets/methods/create", Name: "Create client secret", Type: docset.TypeMethod},
		{Path: "resources/realtime/client-events", Name: "Realtime client events", Type: docset.TypeEvent},
		{Path: "resources/realtime/server-events", Name: "Realtime server events", Type: docset.TypeEvent},
		// Administration
		{Path: "administration/overview", Name: "Administration Overview", Type: docset.TypeResource},
		{Path: "resources/organization/subresources/audit_logs/methods/get_costs", Name: "Get costs", Type: docset.TypeMethod},
		{Path: "resources/organization/subresources/audit_logs/methods/list", Name: "List audit logs", Type: docset.TypeMethod},
		{Path: "resources/organization/subresources/audit_logs/subresources/admin_api_keys/methods/create", Name: "Create admin API key", Type: docset.TypeMethod},
		{Path: "resources/organization/subresources/audit_logs/subresources/admin_api_keys/methods/retrieve", Name: "Retrieve admin API key", Type: docset.TypeMethod},
		{Path: "resources/organization/subresources/audit_logs/subresources/admin_api_keys/methods/delete", Name: "Delete admin API key", Type: docset.TypeMethod},
		{Path: "resources/organization/subresources/audit_logs/subresources/admin_api_keys/methods/list", Name: "List admin API keys", Type: docset.TypeMethod},
		// Usage
		{Path: "resources/organization/subresources/audit_logs/subresources/usage/methods/get_audio_speeches", Name: "Get audio speeches usage", Type: docset.TypeMethod},
		{Path: "resources/organization/subresources/audit_logs/subresources/usage/methods/get_audio_transcriptions", Name: "Get audio transcriptions usage", Type: docset.TypeMethod},
		{Path: "resources/organization/subresources/audit_logs/subresources/usage/methods/get_code_interpreter_sessions", Name: "Get code interpreter usage", Type: docset.TypeMethod},
		{Path: "resources/organization/subresources/audit_logs/subresources/usage/methods/get_completions", Name: "Get completions usage", Type: docset.TypeMethod},
		{Path: "resources/organization/subresources/audit_logs/subresources/usage/methods/get_embeddings", Name: "Get embeddings usage", Type: docset.TypeMethod},
		{Path: "resources/organization/subresources/audit_logs/subresources/usage/methods/get_images", Name: "Get images usage", Type: docset.TypeMethod},
		{Path: "resources/organization/subresources/audit_logs/subresources/usage/methods/get_moderations", Name: "Get moderations usage", Type: docset.TypeMethod},
		{Path: "resources/organization/subresources/audit_logs/subresources/usage/methods/get_vector_stores", Name: "Get vector stores usage", Type: docset.TypeMethod},
		// Invites
		{Path: "resources/organization/subresources/invites/methods/create", Name: "Create invite", Type: docset.TypeMethod},
		{Path: "resources/organization/subresources/invites/methods/retrieve", Name: "Retrieve invite", Type: docset.TypeMethod},
		{Path: "resources/organization/subresources/invites/methods/delete", Name: "Delete invite", Type: docset.TypeMethod},
		{Path: "resources/organization/subresources/invites/methods/list", Name: "List invites", Type: docset.TypeMethod},
		// Users
		{Path: "resources/organization/subresources/users/methods/retrieve", Name: "Retrieve user", Type: docset.TypeMethod},
		{Path: "resources/organization/subresources/users/methods/update", Name: "Update user", Type: docset.TypeMethod},
		{Path: "resources/organization/subresources/users/methods/delete", Name: "Delete user", Type: docset.TypeMethod},
		{Path: "resources/organization/subresources/users/methods/list", Name: "List users", Type: docset.TypeMethod},
		// Projects
		{Path: "resources/organization/subresources/projects/methods/create", Name: "Create project", Type: docset.TypeMethod},
		{Path: "resources/organization/subresources/projects/methods/retrieve", Name: "Retrieve project", Type: docset.TypeMethod},
		{Path: "resources/organization/subresources/projects/methods/update", Name: "Update project", Type: docset.TypeMethod},
		{Path: "resources/organization/subresources/projects/methods/list", Name: "List projects", Type: docset.TypeMethod},
		{Path: "resources/organization/subresources/projects/methods/archive", Name: "Archive project", Type: docset.TypeMethod},
		// Legacy
		{Path: "resources/completions/methods/create", Name: "Create completion (legacy)", Type: docset.TypeMethod},
		{Path: "realtime-beta/overview", Name: "Realtime Beta Overview (legacy)", Type: docset.TypeResource},
		{Path: "resources/realtime/subresources/sessions/methods/create", Name: "Create realtime session (legacy)", Type: docset.TypeMethod},
		{Path: "resources/realtime/subresources/transcription_sessions/methods/create", Name: "Create transcription session (legacy)", Type: docset.TypeMethod},
		{Path: "resources/beta/subresources/threads/methods/create", Name: "Create thread (legacy)", Type: docset.TypeMethod},
		{Path: "resources/beta/subresources/threads/methods/create_and_run", Name: "Create and run thread (legacy)", Type: docset.TypeMethod},
		{Path: "resources/beta/subresources/threads/methods/retrieve", Name: "Retrieve thread (legacy)", Type: docset.TypeMethod},
		{Path: "resources/beta/subresources/threads/methods/update", Name: "Update thread (legacy)", Type: docset.TypeMethod},
		{Path: "resources/beta/subresources/threads/methods/delete", Name: "Delete thread (legacy)", Type: docset.TypeMethod},
		{Path: "resources/beta/subresources/assistants/methods/create", Name: "Create assistant (legacy)", Type: docset.TypeMethod},
		{Path: "resources/beta/subresources/assistants/methods/retrieve", Name: "Retrieve assistant (legacy)", Type: docset.TypeMethod},
		{Path: "resources/beta/subresources/assistants/methods/update", Name: "Update assistant (legacy)", Type: docset.TypeMethod},
		{Path: "resources/beta/subresources/assistants/methods/delete", Name: "Delete assistant (legacy)", Type: docset.TypeMethod},
		{Path: "resources/beta/subresources/assistants/methods/list", Name: "List assistants (legacy)", Type: docset.TypeMethod},
		{Path: "resources/beta/subresources/assistants/streaming-events", Name: "Assistants streaming events (legacy)", Type: docset.TypeEvent},
	},

	ChromeCSS: openaiCSS,
}

const openaiCSS = `
header,
nav,
[role="navigation"],
.sidebar,
.top-nav,
.site-header,
.site-footer,
footer,
.search-form,
.search-bar,
input[type="search"],
.breadcrumb,
.breadcrumbs,
.feedback-widget,
.page-rating,
.cookie-notification,
.cookie-banner,
button[aria-label="Search"],
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
