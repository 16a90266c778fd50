package openai

import "context"

// IOpenAI defines the interface for an OpenAI-compatible chat client.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	// GenerateContent sends a chat completion request
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// StreamContent opens a streaming chat completion. Events are delivered
	// on the returned channel, which is closed when the stream ends.
	StreamContent(ctx context.Context, req *Request) (<-chan StreamEvent, error)

	// Model returns the model being used
	Model() string
}

// New creates a new client with the given configuration
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg), nil
}
