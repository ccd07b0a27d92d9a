package chatcompletion

import "context"

// IChatCompletion is a client for any OpenAI-compatible chat/completions endpoint
// (Ollama, LM Studio, DeepSeek, OpenAI).
type IChatCompletion interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
