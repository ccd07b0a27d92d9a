package llmprovider

import (
	"context"
	"fmt"
	"strings"

	"social-arch/pkg/chatcompletion"
	"social-arch/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.Client
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.Client) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		GoogleSearch:      req.GoogleSearch,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}
	if req.JSON {
		geminiReq.ResponseMIMEType = gemini.MIMETypeJSON
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for Gemini
func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	return &gemini.Content{Role: geminiRole(msg.Role), Parts: parts}
}

// geminiRole maps normalized roles onto the two roles Gemini accepts in contents.
func geminiRole(role string) string {
	if role == "assistant" {
		return "model"
	}
	return role
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i, msg := range msgs {
		contents[i] = *convertToGeminiContent(&msg)
	}
	return contents
}

func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: "assistant", Parts: parts}
}

// ChatCompletionAdapter adapts pkg/chatcompletion to llmprovider.Provider interface.
// name distinguishes deployments of the same protocol ("local", "custom", "deepseek").
type ChatCompletionAdapter struct {
	name   string
	client chatcompletion.IChatCompletion
}

// NewChatCompletionAdapter creates a new chat completion adapter
func NewChatCompletionAdapter(name string, client chatcompletion.IChatCompletion) *ChatCompletionAdapter {
	return &ChatCompletionAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *ChatCompletionAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	ccReq := &chatcompletion.Request{
		Messages:    convertToChatMessages(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	// System instruction travels as the first message
	if req.SystemInstruction != nil && len(req.SystemInstruction.Parts) > 0 {
		systemMsg := chatcompletion.Message{
			Role:    chatcompletion.RoleSystem,
			Content: joinParts(req.SystemInstruction.Parts),
		}
		ccReq.Messages = append([]chatcompletion.Message{systemMsg}, ccReq.Messages...)
	}

	resp, err := a.client.GenerateContent(ctx, ccReq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.name, err)
	}

	return convertFromChatResponse(a.name, resp), nil
}

// Name returns the provider name
func (a *ChatCompletionAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *ChatCompletionAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for chat completions
func convertToChatMessages(msgs []Message) []chatcompletion.Message {
	messages := make([]chatcompletion.Message, 0, len(msgs))
	for _, msg := range msgs {
		role := msg.Role
		if role == "" {
			role = chatcompletion.RoleUser
		}
		messages = append(messages, chatcompletion.Message{
			Role:    role,
			Content: joinParts(msg.Parts),
		})
	}
	return messages
}

func joinParts(parts []Part) string {
	texts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	return strings.Join(texts, "\n")
}

func convertFromChatResponse(name string, resp *chatcompletion.Response) *Response {
	parts := []Part{}
	if text := resp.Text(); text != "" {
		parts = append(parts, Part{Text: text})
	}

	return &Response{
		Content: Message{
			Role:  "assistant",
			Parts: parts,
		},
		ProviderName: name,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
}
