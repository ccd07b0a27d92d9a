package gemini

import "context"

// Client calls the generateContent endpoint of the Generative Language API.
// A Request may ask for google_search grounding and a JSON response MIME type;
// trend scans use both. Safe for concurrent use.
type Client interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	// Model is the model name placed in the request path.
	Model() string
}

// New validates cfg, fills its defaults and returns a Client.
func New(cfg Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
