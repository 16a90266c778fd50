package openai

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// StreamContent opens a streaming chat completion. The returned channel
// delivers text deltas and function-call fragments as they arrive and is
// closed when the server finishes or the transport fails. A malformed SSE
// frame is skipped, not fatal; only a transport-level failure produces an
// event with Err set before the channel closes.
func (c *clientImpl) StreamContent(ctx context.Context, req *Request) (<-chan StreamEvent, error) {
	openAIReq := c.transformRequest(req)
	openAIReq.Stream = true

	body, err := json.Marshal(openAIReq)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to marshal stream request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create stream request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: stream call failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &APIError{StatusCode: resp.StatusCode, Message: string(bodyBytes)}
	}

	events := make(chan StreamEvent)
	go c.readStream(resp.Body, events)

	return events, nil
}

// readStream consumes SSE frames from the response body and forwards them
// as StreamEvents. The function-call name is forwarded once; argument
// fragments are forwarded as-is and must be concatenated by the consumer.
func (c *clientImpl) readStream(body io.ReadCloser, events chan<- StreamEvent) {
	defer close(events)
	defer body.Close()

	sawFunctionName := false

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !strings.HasPrefix(line, "data:") {
			continue
		}

		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "[DONE]" {
			return
		}

		var chunk openAIStreamChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			// Bad frame: skip, keep the stream alive.
			continue
		}

		if chunk.Usage != nil {
			events <- StreamEvent{Usage: &Usage{
				InputTokens:  chunk.Usage.PromptTokens,
				OutputTokens: chunk.Usage.CompletionTokens,
				TotalTokens:  chunk.Usage.TotalTokens,
			}}
		}

		if len(chunk.Choices) == 0 {
			continue
		}
		delta := chunk.Choices[0].Delta

		if delta.Content != "" {
			events <- StreamEvent{TextDelta: delta.Content}
		}

		for _, tc := range delta.ToolCalls {
			if tc.Function.Name != "" && !sawFunctionName {
				sawFunctionName = true
				events <- StreamEvent{FunctionCallName: tc.Function.Name}
			}
			if tc.Function.Arguments != "" {
				events <- StreamEvent{FunctionCallArgs: tc.Function.Arguments}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		events <- StreamEvent{Err: fmt.Errorf("openai: stream transport error: %w", err)}
	}
}
