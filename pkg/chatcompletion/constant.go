package chatcompletion

import "time"

const (
	// DefaultBaseURL is the OpenAI-compatible endpoint served by a local Ollama
	DefaultBaseURL = "http://localhost:11434/v1"

	// DefaultModel is the model requested when none is configured
	DefaultModel = "llama3"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	completionsPath = "/chat/completions"
)

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
