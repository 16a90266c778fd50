package llmprovider

import (
	"context"

	"wedding-assistant/pkg/openai"
)

// OpenAIAdapter adapts pkg/openai to the Provider interface. Since the
// client speaks the OpenAI wire format, one adapter covers every
// OpenAI-compatible gateway; the name distinguishes configured instances.
type OpenAIAdapter struct {
	name   string
	client openai.IOpenAI
}

// NewOpenAIAdapter creates an adapter around an OpenAI-compatible client.
func NewOpenAIAdapter(name string, client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &openai.Request{
		SystemInstruction: convertToOpenAIContent(req.SystemInstruction),
		Messages:          convertToOpenAIContents(req.Messages),
		Tools:             convertToOpenAITools(req.Tools),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	usage := &Usage{}
	if resp.Usage != nil {
		usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}

	return &Response{
		Content:      convertFromOpenAIContent(resp.Content),
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

// StreamContent implements Streamer
func (a *OpenAIAdapter) StreamContent(ctx context.Context, req *Request) (<-chan StreamEvent, error) {
	upstream, err := a.client.StreamContent(ctx, &openai.Request{
		SystemInstruction: convertToOpenAIContent(req.SystemInstruction),
		Messages:          convertToOpenAIContents(req.Messages),
		Tools:             convertToOpenAITools(req.Tools),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	events := make(chan StreamEvent)
	go func() {
		defer close(events)
		for ev := range upstream {
			out := StreamEvent{
				TextDelta:        ev.TextDelta,
				FunctionCallName: ev.FunctionCallName,
				FunctionCallArgs: ev.FunctionCallArgs,
				Err:              ev.Err,
			}
			if ev.Usage != nil {
				out.Usage = &Usage{
					InputTokens:  ev.Usage.InputTokens,
					OutputTokens: ev.Usage.OutputTokens,
					TotalTokens:  ev.Usage.TotalTokens,
				}
			}
			events <- out
		}
	}()

	return events, nil
}

// Name returns the configured provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

func convertToOpenAIContent(msg *Message) *openai.Content {
	if msg == nil {
		return nil
	}
	parts := make([]openai.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = openai.Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &openai.FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &openai.FunctionResponse{
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	return &openai.Content{Role: msg.Role, Parts: parts}
}

func convertToOpenAIContents(msgs []Message) []openai.Content {
	contents := make([]openai.Content, len(msgs))
	for i, msg := range msgs {
		contents[i] = *convertToOpenAIContent(&msg)
	}
	return contents
}

func convertToOpenAITools(tools []Tool) []openai.Tool {
	openAITools := make([]openai.Tool, len(tools))
	for i, t := range tools {
		openAITools[i] = openai.Tool{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		}
	}
	return openAITools
}

func convertFromOpenAIContent(content openai.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &FunctionResponse{
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	return Message{Role: content.Role, Parts: parts}
}
