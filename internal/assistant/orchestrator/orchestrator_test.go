package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"wedding-assistant/internal/assistant"
	"wedding-assistant/internal/model"
	"wedding-assistant/pkg/llmprovider"
	"wedding-assistant/pkg/log"
)

type mockLLM struct {
	generateFn func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
	streamFn   func(ctx context.Context, req *llmprovider.Request) (<-chan llmprovider.StreamEvent, error)
	requests   []*llmprovider.Request
}

func (m *mockLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.requests = append(m.requests, req)
	return m.generateFn(ctx, req)
}

func (m *mockLLM) StreamContent(ctx context.Context, req *llmprovider.Request) (<-chan llmprovider.StreamEvent, error) {
	m.requests = append(m.requests, req)
	return m.streamFn(ctx, req)
}

type fakeTool struct {
	name    string
	execute func(ctx context.Context, sc model.Scope, params map[string]interface{}) (*assistant.ToolResult, error)
}

func (t *fakeTool) Name() string        { return t.name }
func (t *fakeTool) Description() string { return "test tool" }
func (t *fakeTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
		"required":   []string{},
	}
}
func (t *fakeTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (*assistant.ToolResult, error) {
	if t.execute != nil {
		return t.execute(ctx, sc, params)
	}
	return &assistant.ToolResult{Message: "ok"}, nil
}

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, args ...any)  {}

var _ log.Logger = nopLogger{}

func textResponse(text string) *llmprovider.Response {
	return &llmprovider.Response{
		Content: llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: text}}},
		Usage:   &llmprovider.Usage{TotalTokens: 10},
	}
}

func testRegistry() *assistant.ToolRegistry {
	registry := assistant.NewToolRegistry()
	registry.Register(&fakeTool{name: "get_budget_summary"})
	registry.Register(&fakeTool{name: "add_checklist_task"})
	registry.Register(&fakeTool{name: "search_venues"})
	registry.Register(&fakeTool{name: "search_vendors"})
	registry.Register(&fakeTool{name: "get_recommendations"})
	registry.Register(&fakeTool{name: "update_preferences"})
	return registry
}

func newTestOrchestrator(llm LLM) *Orchestrator {
	return New(testRegistry(), llm, Config{HistoryLimit: 20}, nopLogger{})
}

func TestChatPlainText(t *testing.T) {
	llm := &mockLLM{
		generateFn: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
			return textResponse("Congrats on the engagement!"), nil
		},
	}
	o := newTestOrchestrator(llm)

	resp := o.Chat(context.Background(), "hello", AssistantContext{UserID: "u1"})
	if resp.Message != "Congrats on the engagement!" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.ConversationID == "" || !strings.HasPrefix(resp.ConversationID, "conv_") {
		t.Errorf("conversationId = %q", resp.ConversationID)
	}
	if len(resp.ToolsUsed) != 0 {
		t.Errorf("toolsUsed = %v", resp.ToolsUsed)
	}
	if len(llm.requests) != 1 {
		t.Fatalf("provider calls = %d, want 1", len(llm.requests))
	}

	history := o.GetConversationHistory(resp.ConversationID)
	if len(history) != 2 || history[0].Role != "user" || history[1].Role != "assistant" {
		t.Errorf("history = %+v", history)
	}
}

func TestChatTwoCallToolFlow(t *testing.T) {
	var executed bool
	registry := assistant.NewToolRegistry()
	registry.Register(&fakeTool{
		name: "get_budget_summary",
		execute: func(ctx context.Context, sc model.Scope, params map[string]interface{}) (*assistant.ToolResult, error) {
			executed = true
			if sc.UserID != "u1" || sc.WeddingID != "w1" {
				t.Errorf("scope = %+v", sc)
			}
			return &assistant.ToolResult{Data: map[string]interface{}{"remaining": 600000}, Message: "summary ready"}, nil
		},
	})

	call := 0
	llm := &mockLLM{}
	llm.generateFn = func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
		call++
		if call == 1 {
			if len(req.Tools) == 0 {
				t.Error("first call offered no tools")
			}
			return &llmprovider.Response{
				Content: llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{
					FunctionCall: &llmprovider.FunctionCall{Name: "get_budget_summary", Args: map[string]interface{}{}},
				}}},
				Usage: &llmprovider.Usage{TotalTokens: 20},
			}, nil
		}
		if len(req.Tools) != 0 {
			t.Error("narration call offered tools")
		}
		return textResponse("You have ₹6,00,000 remaining."), nil
	}

	o := New(registry, llm, Config{HistoryLimit: 20}, nopLogger{})
	resp := o.Chat(context.Background(), "what's my budget status", AssistantContext{UserID: "u1", WeddingID: "w1"})

	if !executed {
		t.Fatal("tool was not executed")
	}
	if call != 2 {
		t.Fatalf("provider calls = %d, want 2", call)
	}
	if resp.Message != "You have ₹6,00,000 remaining." {
		t.Errorf("message = %q", resp.Message)
	}
	if len(resp.ToolsUsed) != 1 || resp.ToolsUsed[0] != "get_budget_summary" {
		t.Errorf("toolsUsed = %v", resp.ToolsUsed)
	}
	if resp.Metadata.TokensUsed != 30 {
		t.Errorf("tokensUsed = %d, want 30", resp.Metadata.TokensUsed)
	}

	// The function-role message fed back for narration must be valid JSON.
	second := llm.requests[1]
	last := second.Messages[len(second.Messages)-1]
	if last.Role != "function" {
		t.Fatalf("last message role = %q", last.Role)
	}
	raw, ok := last.Parts[0].FunctionResponse.Response.(json.RawMessage)
	if !ok {
		t.Fatalf("function response payload is %T", last.Parts[0].FunctionResponse.Response)
	}
	var decoded assistant.ExecutionResult
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("function payload is not valid JSON: %v", err)
	}
	if !decoded.Success || decoded.Message != "summary ready" {
		t.Errorf("decoded result = %+v", decoded)
	}
}

func TestChatToolFailureStillNarrated(t *testing.T) {
	registry := assistant.NewToolRegistry()
	registry.Register(&fakeTool{
		name: "get_budget_summary",
		execute: func(ctx context.Context, sc model.Scope, params map[string]interface{}) (*assistant.ToolResult, error) {
			return nil, errors.New("Failed to fetch budget summary")
		},
	})

	call := 0
	llm := &mockLLM{}
	llm.generateFn = func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
		call++
		if call == 1 {
			return &llmprovider.Response{
				Content: llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{
					FunctionCall: &llmprovider.FunctionCall{Name: "get_budget_summary", Args: map[string]interface{}{}},
				}}},
			}, nil
		}
		last := req.Messages[len(req.Messages)-1]
		raw := last.Parts[0].FunctionResponse.Response.(json.RawMessage)
		var result assistant.ExecutionResult
		if err := json.Unmarshal(raw, &result); err != nil {
			t.Fatalf("bad payload: %v", err)
		}
		if result.Success {
			t.Error("expected success=false forwarded to narration")
		}
		return textResponse("I couldn't retrieve your budget summary right now."), nil
	}

	o := New(registry, llm, Config{HistoryLimit: 20}, nopLogger{})
	resp := o.Chat(context.Background(), "budget status", AssistantContext{UserID: "u1"})

	if call != 2 {
		t.Fatalf("provider calls = %d, want 2", call)
	}
	if resp.Message != "I couldn't retrieve your budget summary right now." {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestChatMalformedArgumentsFallsBackToText(t *testing.T) {
	llm := &mockLLM{
		generateFn: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
			return &llmprovider.Response{
				Content: llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{
					{Text: "Let me add that."},
					{FunctionCall: &llmprovider.FunctionCall{Name: "add_checklist_task", Args: nil}},
				}},
			}, nil
		},
	}
	o := newTestOrchestrator(llm)

	resp := o.Chat(context.Background(), "add a task", AssistantContext{UserID: "u1"})
	if resp.Message != "Let me add that." {
		t.Errorf("message = %q", resp.Message)
	}
	if len(resp.ToolsUsed) != 0 {
		t.Errorf("toolsUsed = %v", resp.ToolsUsed)
	}
	if len(llm.requests) != 1 {
		t.Errorf("provider calls = %d, want 1", len(llm.requests))
	}
}

func TestChatProviderFailureReturnsFallback(t *testing.T) {
	llm := &mockLLM{
		generateFn: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
			return nil, errors.New("network timeout")
		},
	}
	o := newTestOrchestrator(llm)

	// Seed history with one good turn.
	good := &mockLLM{generateFn: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
		return textResponse("hi"), nil
	}}
	o.llm = good
	first := o.Chat(context.Background(), "hello", AssistantContext{UserID: "u1"})
	before := o.GetConversationHistory(first.ConversationID)

	o.llm = llm
	resp := o.Chat(context.Background(), "hello again", AssistantContext{UserID: "u1", ConversationID: first.ConversationID})

	if resp.Message != fallbackMessage {
		t.Errorf("message = %q", resp.Message)
	}
	if len(resp.Suggestions) != 3 {
		t.Errorf("suggestions = %v", resp.Suggestions)
	}
	after := o.GetConversationHistory(first.ConversationID)
	if len(after) != len(before) {
		t.Fatalf("failed turn changed history: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if after[i] != before[i] {
			t.Errorf("history[%d] changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestHistorySlidingWindow(t *testing.T) {
	turn := 0
	llm := &mockLLM{
		generateFn: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
			return textResponse(fmt.Sprintf("reply %d", turn)), nil
		},
	}
	o := newTestOrchestrator(llm)

	convID := "conv_window"
	for turn = 1; turn <= 23; turn++ {
		o.Chat(context.Background(), fmt.Sprintf("message %d", turn), AssistantContext{UserID: "u1", ConversationID: convID})
	}

	history := o.GetConversationHistory(convID)
	if len(history) != 20 {
		t.Fatalf("history length = %d, want 20", len(history))
	}
	// Oldest retained pair is turn 14; newest is turn 23.
	if history[0].Content != "message 14" {
		t.Errorf("oldest = %q, want %q", history[0].Content, "message 14")
	}
	if history[19].Content != "reply 23" {
		t.Errorf("newest = %q, want %q", history[19].Content, "reply 23")
	}
}

func TestClearConversationIdempotent(t *testing.T) {
	llm := &mockLLM{generateFn: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
		return textResponse("hi"), nil
	}}
	o := newTestOrchestrator(llm)

	resp := o.Chat(context.Background(), "hello", AssistantContext{UserID: "u1"})
	o.ClearConversation(resp.ConversationID)
	o.ClearConversation(resp.ConversationID)
	o.ClearConversation("never_existed")

	if got := o.GetConversationHistory(resp.ConversationID); len(got) != 0 {
		t.Errorf("history after clear = %+v", got)
	}
}

func TestSelectToolsDeterministicWithBaseline(t *testing.T) {
	o := newTestOrchestrator(&mockLLM{})

	names := func(tools []llmprovider.Tool) []string {
		out := make([]string, len(tools))
		for i, tl := range tools {
			out[i] = tl.Name
		}
		return out
	}

	first := names(o.selectTools("what's my budget status"))
	second := names(o.selectTools("what's my budget status"))
	if fmt.Sprint(first) != fmt.Sprint(second) {
		t.Errorf("selection not deterministic: %v vs %v", first, second)
	}

	has := func(set []string, name string) bool {
		for _, n := range set {
			if n == name {
				return true
			}
		}
		return false
	}

	if !has(first, "get_budget_summary") {
		t.Errorf("budget words did not select budget tools: %v", first)
	}
	// SEARCH and PREFERENCES are always offered.
	for _, baseline := range []string{"search_venues", "search_vendors", "get_recommendations", "update_preferences"} {
		if !has(first, baseline) {
			t.Errorf("baseline tool %s missing: %v", baseline, first)
		}
	}

	plain := names(o.selectTools("tell me a joke"))
	if has(plain, "get_budget_summary") || has(plain, "add_checklist_task") {
		t.Errorf("unrelated message selected category tools: %v", plain)
	}
}

func TestDeriveSuggestionsBounds(t *testing.T) {
	for tool := range toolSuggestions {
		for _, stage := range []model.PlanningStage{"", model.StageJustEngaged, model.StageBooking, model.StageFinalizing, model.StageWeddingMonth} {
			got := deriveSuggestions(tool, stage)
			if len(got) > 4 {
				t.Errorf("deriveSuggestions(%s, %s) returned %d suggestions", tool, stage, len(got))
			}
		}
	}
	if got := deriveSuggestions("", model.StageBooking); len(got) == 0 || len(got) > 4 {
		t.Errorf("no-tool suggestions = %v", got)
	}
}

func TestBuildSystemPromptOmitsAbsentFields(t *testing.T) {
	bare := buildSystemPrompt(AssistantContext{UserID: "u1"})
	if strings.Contains(bare, "Budget status") || strings.Contains(bare, "Planning stage") {
		t.Errorf("bare prompt leaked absent sections: %q", bare)
	}

	full := buildSystemPrompt(AssistantContext{
		UserID:        "u1",
		BudgetInfo:    &BudgetInfo{Total: 1000000, Spent: 400000, Remaining: 600000},
		PlanningStage: model.StageBooking,
	})
	for _, want := range []string{"1000000", "400000", "600000", "booking"} {
		if !strings.Contains(full, want) {
			t.Errorf("prompt missing %q: %q", want, full)
		}
	}
}

func TestStreamChatDeltasAndCompletion(t *testing.T) {
	llm := &mockLLM{
		streamFn: func(ctx context.Context, req *llmprovider.Request) (<-chan llmprovider.StreamEvent, error) {
			events := make(chan llmprovider.StreamEvent, 3)
			events <- llmprovider.StreamEvent{TextDelta: "Hello "}
			events <- llmprovider.StreamEvent{TextDelta: "there!"}
			events <- llmprovider.StreamEvent{Usage: &llmprovider.Usage{TotalTokens: 5}}
			close(events)
			return events, nil
		},
	}
	o := newTestOrchestrator(llm)

	var deltas []string
	var completed *Response
	for ev := range o.StreamChat(context.Background(), "hello", AssistantContext{UserID: "u1"}) {
		switch ev.Kind {
		case StreamTextDelta:
			deltas = append(deltas, ev.TextDelta)
		case StreamCompleted:
			completed = ev.Response
		}
	}

	if strings.Join(deltas, "") != "Hello there!" {
		t.Errorf("deltas = %v", deltas)
	}
	if completed == nil || completed.Message != "Hello there!" {
		t.Fatalf("completed = %+v", completed)
	}
	if len(o.GetConversationHistory(completed.ConversationID)) != 2 {
		t.Errorf("history not appended after stream")
	}
}

func TestStreamChatExecutesToolAfterStream(t *testing.T) {
	registry := assistant.NewToolRegistry()
	executed := false
	registry.Register(&fakeTool{
		name: "search_venues",
		execute: func(ctx context.Context, sc model.Scope, params map[string]interface{}) (*assistant.ToolResult, error) {
			executed = true
			return &assistant.ToolResult{Message: "Found 3 venues in Jaipur"}, nil
		},
	})

	llm := &mockLLM{
		streamFn: func(ctx context.Context, req *llmprovider.Request) (<-chan llmprovider.StreamEvent, error) {
			events := make(chan llmprovider.StreamEvent, 3)
			events <- llmprovider.StreamEvent{FunctionCallName: "search_venues"}
			events <- llmprovider.StreamEvent{FunctionCallArgs: `{"city":`}
			events <- llmprovider.StreamEvent{FunctionCallArgs: `"Jaipur"}`}
			close(events)
			return events, nil
		},
		generateFn: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
			return textResponse("I found 3 great venues in Jaipur."), nil
		},
	}

	o := New(registry, llm, Config{HistoryLimit: 20}, nopLogger{})

	var toolEvents, completedEvents int
	var final *Response
	for ev := range o.StreamChat(context.Background(), "find venues in jaipur", AssistantContext{UserID: "u1"}) {
		switch ev.Kind {
		case StreamToolCall:
			toolEvents++
			if ev.ToolName != "search_venues" {
				t.Errorf("tool name = %q", ev.ToolName)
			}
		case StreamCompleted:
			completedEvents++
			final = ev.Response
		}
	}

	if !executed {
		t.Fatal("tool was not executed after stream")
	}
	if toolEvents != 1 || completedEvents != 1 {
		t.Errorf("toolEvents=%d completedEvents=%d", toolEvents, completedEvents)
	}
	if final.Message != "I found 3 great venues in Jaipur." {
		t.Errorf("final message = %q", final.Message)
	}
	if len(final.ToolsUsed) != 1 || final.ToolsUsed[0] != "search_venues" {
		t.Errorf("toolsUsed = %v", final.ToolsUsed)
	}
}

func TestStreamChatFailureEmitsFallback(t *testing.T) {
	llm := &mockLLM{
		streamFn: func(ctx context.Context, req *llmprovider.Request) (<-chan llmprovider.StreamEvent, error) {
			return nil, errors.New("gateway down")
		},
	}
	o := newTestOrchestrator(llm)

	var final *Response
	for ev := range o.StreamChat(context.Background(), "hello", AssistantContext{UserID: "u1", ConversationID: "conv_x"}) {
		if ev.Kind == StreamCompleted {
			final = ev.Response
		}
	}

	if final == nil || final.Message != fallbackMessage {
		t.Fatalf("final = %+v", final)
	}
	if len(o.GetConversationHistory("conv_x")) != 0 {
		t.Error("failed stream turn touched history")
	}
}
