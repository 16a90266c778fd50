package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wedding-assistant/internal/assistant"
	"wedding-assistant/pkg/llmprovider"
	"wedding-assistant/pkg/openai"
)

// StreamChat runs one turn, delivering text incrementally. The returned
// channel emits zero or more text deltas and closes after exactly one
// terminal StreamCompleted frame. Tool execution happens only after the
// provider stream ends; the narrated tool result is emitted as a final
// delta before completion. Failures collapse into a completed frame
// carrying the fallback response, with history left untouched.
func (o *Orchestrator) StreamChat(ctx context.Context, message string, actx AssistantContext) <-chan StreamEvent {
	out := make(chan StreamEvent)
	start := time.Now()

	convID := resolveConversationID(actx.ConversationID)
	conv := o.conversation(convID)

	go func() {
		defer close(out)

		conv.mu.Lock()
		defer conv.mu.Unlock()

		resp, err := o.runStreamTurn(ctx, conv, message, actx, out)
		if err != nil {
			o.l.Errorf(ctx, "orchestrator: stream turn failed for conversation %s: %v", convID, err)
			out <- StreamEvent{Kind: StreamCompleted, Response: o.fallback(convID, start)}
			return
		}
		resp.Metadata.ResponseTimeMs = time.Since(start).Milliseconds()
		out <- StreamEvent{Kind: StreamCompleted, Response: resp}
	}()

	return out
}

func (o *Orchestrator) runStreamTurn(ctx context.Context, conv *Conversation, message string, actx AssistantContext, out chan<- StreamEvent) (*Response, error) {
	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: buildSystemPrompt(actx)}},
		},
		Messages:    append(historyToProvider(conv.messages), userMessage(message)),
		Tools:       o.selectTools(message),
		Temperature: o.cfg.Temperature,
		MaxTokens:   o.cfg.MaxTokens,
	}

	events, err := o.llm.StreamContent(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("opening provider stream: %w", err)
	}

	var (
		text     strings.Builder
		argsBuf  strings.Builder
		toolName string
		tokens   int
	)
	for ev := range events {
		if ev.Err != nil {
			return nil, fmt.Errorf("provider stream: %w", ev.Err)
		}
		if ev.Usage != nil {
			tokens += ev.Usage.TotalTokens
		}
		if ev.FunctionCallName != "" {
			toolName = ev.FunctionCallName
		}
		argsBuf.WriteString(ev.FunctionCallArgs)
		if ev.TextDelta != "" {
			text.WriteString(ev.TextDelta)
			out <- StreamEvent{Kind: StreamTextDelta, TextDelta: ev.TextDelta}
		}
	}

	var toolsUsed []string
	finalMessage := text.String()

	if toolName != "" {
		args := openai.ParseArguments(argsBuf.String())
		if args == nil {
			o.l.Warnf(ctx, "orchestrator: malformed streamed arguments for tool %s, skipping execution", toolName)
			if strings.TrimSpace(finalMessage) == "" {
				finalMessage = fallbackMessage
				out <- StreamEvent{Kind: StreamTextDelta, TextDelta: finalMessage}
			}
		} else {
			out <- StreamEvent{Kind: StreamToolCall, ToolName: toolName}

			executor := assistant.NewExecutor(o.registry, actx.Scope(), o.l)
			result := executor.Execute(ctx, toolName, args)
			toolsUsed = append(toolsUsed, toolName)

			assistantReply := llmprovider.Message{
				Role: "assistant",
				Parts: []llmprovider.Part{
					{Text: text.String()},
					{FunctionCall: &llmprovider.FunctionCall{Name: toolName, Args: args}},
				},
			}
			narrated, narrTokens, err := o.narrate(ctx, req, assistantReply, toolName, result)
			if err != nil {
				return nil, fmt.Errorf("narration call: %w", err)
			}
			tokens += narrTokens
			finalMessage = narrated
			if narrated != "" {
				out <- StreamEvent{Kind: StreamTextDelta, TextDelta: narrated}
			}
		}
	}

	if strings.TrimSpace(finalMessage) == "" {
		finalMessage = fallbackMessage
		out <- StreamEvent{Kind: StreamTextDelta, TextDelta: finalMessage}
	}

	conv.append(o.cfg.HistoryLimit,
		Message{Role: "user", Content: message},
		Message{Role: "assistant", Content: finalMessage},
	)

	firedTool := ""
	if len(toolsUsed) > 0 {
		firedTool = toolsUsed[0]
	}

	return &Response{
		Message:        finalMessage,
		ConversationID: conv.ID,
		ToolsUsed:      toolsUsed,
		Suggestions:    deriveSuggestions(firedTool, actx.PlanningStage),
		Metadata:       Metadata{TokensUsed: tokens},
	}, nil
}
