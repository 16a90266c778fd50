package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"wedding-assistant/internal/assistant"
	"wedding-assistant/pkg/llmprovider"
)

// Chat runs one conversational turn. It never returns an error: every
// failure collapses into the fixed fallback response, and a failed turn
// leaves the conversation history untouched.
func (o *Orchestrator) Chat(ctx context.Context, message string, actx AssistantContext) *Response {
	start := time.Now()

	convID := resolveConversationID(actx.ConversationID)
	conv := o.conversation(convID)

	conv.mu.Lock()
	defer conv.mu.Unlock()

	resp, err := o.runTurn(ctx, conv, message, actx)
	if err != nil {
		o.l.Errorf(ctx, "orchestrator: turn failed for conversation %s: %v", convID, err)
		return o.fallback(convID, start)
	}

	resp.Metadata.ResponseTimeMs = time.Since(start).Milliseconds()
	return resp
}

// runTurn executes the per-turn state machine. Caller holds conv.mu.
// History is appended only on success, at the very end.
func (o *Orchestrator) runTurn(ctx context.Context, conv *Conversation, message string, actx AssistantContext) (*Response, error) {
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

	first, err := o.llm.GenerateContent(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("first provider call: %w", err)
	}

	tokens := tokensOf(first)
	replyText, call := splitReply(first)

	var toolsUsed []string
	finalMessage := replyText

	if call != nil {
		if call.Args == nil {
			// Malformed arguments: treat as no tool used, keep whatever
			// text accompanied the call.
			o.l.Warnf(ctx, "orchestrator: malformed arguments for tool %s, skipping execution", call.Name)
			if strings.TrimSpace(finalMessage) == "" {
				finalMessage = fallbackMessage
			}
		} else {
			executor := assistant.NewExecutor(o.registry, actx.Scope(), o.l)
			result := executor.Execute(ctx, call.Name, call.Args)
			toolsUsed = append(toolsUsed, call.Name)

			narrated, narrTokens, err := o.narrate(ctx, req, first.Content, call.Name, result)
			if err != nil {
				return nil, fmt.Errorf("narration call: %w", err)
			}
			tokens += narrTokens
			finalMessage = narrated
		}
	}

	if strings.TrimSpace(finalMessage) == "" {
		finalMessage = fallbackMessage
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

// narrate issues the second provider call: the first reply plus a
// function-role message carrying the serialized execution result, with
// no tools offered, so the model narrates the outcome in plain language.
func (o *Orchestrator) narrate(ctx context.Context, first *llmprovider.Request, assistantReply llmprovider.Message, toolName string, result assistant.ExecutionResult) (string, int, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return "", 0, fmt.Errorf("serializing tool result: %w", err)
	}

	messages := append([]llmprovider.Message{}, first.Messages...)
	messages = append(messages, assistantReply, llmprovider.Message{
		Role: "function",
		Parts: []llmprovider.Part{{
			FunctionResponse: &llmprovider.FunctionResponse{
				Name:     toolName,
				Response: json.RawMessage(payload),
			},
		}},
	})

	resp, err := o.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: first.SystemInstruction,
		Messages:          messages,
		Temperature:       first.Temperature,
		MaxTokens:         first.MaxTokens,
	})
	if err != nil {
		return "", 0, err
	}

	text, _ := splitReply(resp)
	return text, tokensOf(resp), nil
}

// fallback builds the fixed apology response.
func (o *Orchestrator) fallback(convID string, start time.Time) *Response {
	return &Response{
		Message:        fallbackMessage,
		ConversationID: convID,
		Suggestions:    fallbackSuggestions,
		Metadata:       Metadata{ResponseTimeMs: time.Since(start).Milliseconds()},
	}
}

// splitReply extracts the reply text and the first function call, if
// any, from a provider response.
func splitReply(resp *llmprovider.Response) (string, *llmprovider.FunctionCall) {
	var text strings.Builder
	var call *llmprovider.FunctionCall
	for _, part := range resp.Content.Parts {
		text.WriteString(part.Text)
		if part.FunctionCall != nil && call == nil {
			call = part.FunctionCall
		}
	}
	return text.String(), call
}

func tokensOf(resp *llmprovider.Response) int {
	if resp.Usage == nil {
		return 0
	}
	return resp.Usage.TotalTokens
}

// historyToProvider maps stored messages to provider messages. Function
// messages are never stored, so only user/assistant roles appear.
func historyToProvider(history []Message) []llmprovider.Message {
	out := make([]llmprovider.Message, 0, len(history)+1)
	for _, m := range history {
		out = append(out, llmprovider.Message{
			Role:  m.Role,
			Parts: []llmprovider.Part{{Text: m.Content}},
		})
	}
	return out
}

func userMessage(text string) llmprovider.Message {
	return llmprovider.Message{Role: "user", Parts: []llmprovider.Part{{Text: text}}}
}
