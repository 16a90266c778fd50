package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"wedding-assistant/internal/model"
	"wedding-assistant/pkg/log"
)

type stubTool struct {
	name     string
	params   map[string]interface{}
	execute  func(ctx context.Context, sc model.Scope, params map[string]interface{}) (*ToolResult, error)
}

func (t *stubTool) Name() string        { return t.name }
func (t *stubTool) Description() string { return "stub" }
func (t *stubTool) Parameters() map[string]interface{} {
	if t.params != nil {
		return t.params
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
		"required":   []string{},
	}
}
func (t *stubTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (*ToolResult, error) {
	if t.execute != nil {
		return t.execute(ctx, sc, params)
	}
	return &ToolResult{Message: "done"}, nil
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

func TestRegistryInsertionOrderAndLookup(t *testing.T) {
	r := NewToolRegistry()
	r.Register(&stubTool{name: "add_budget_item"})
	r.Register(&stubTool{name: "add_checklist_task"})
	r.Register(&stubTool{name: "search_venues"})

	if _, ok := r.Get("add_budget_item"); !ok {
		t.Error("registered tool not found")
	}
	if _, ok := r.Get("nope"); ok {
		t.Error("unknown tool found")
	}

	list := r.List()
	if len(list) != 3 || list[0].Name() != "add_budget_item" || list[2].Name() != "search_venues" {
		names := make([]string, len(list))
		for i, tl := range list {
			names[i] = tl.Name()
		}
		t.Errorf("insertion order lost: %v", names)
	}
}

func TestRegistryDuplicateFirstWins(t *testing.T) {
	r := NewToolRegistry()
	first := &stubTool{name: "add_guest"}
	r.Register(first)
	r.Register(&stubTool{name: "add_guest"})

	if got := len(r.List()); got != 1 {
		t.Fatalf("registry size = %d, want 1", got)
	}
	tool, _ := r.Get("add_guest")
	if tool.(*stubTool) != first {
		t.Error("duplicate registration replaced the original")
	}
}

func TestRegistryCategoriesBySubstring(t *testing.T) {
	r := NewToolRegistry()
	r.Register(&stubTool{name: "add_budget_item"})
	r.Register(&stubTool{name: "get_budget_summary"})
	r.Register(&stubTool{name: "update_rsvp_status"})
	r.Register(&stubTool{name: "get_recommendations"})
	r.Register(&stubTool{name: "export_planning_data"})

	cats := r.Categories()
	if got := len(cats[CategoryBudget]); got != 2 {
		t.Errorf("BUDGET tools = %d, want 2", got)
	}
	if got := len(cats[CategoryGuests]); got != 1 {
		t.Errorf("GUESTS tools = %d, want 1", got)
	}
	if got := len(cats[CategorySearch]); got != 1 {
		t.Errorf("SEARCH tools = %d, want 1", got)
	}
	if got := len(cats[CategoryExport]); got != 1 {
		t.Errorf("EXPORT tools = %d, want 1", got)
	}
}

func TestExecutorUnknownTool(t *testing.T) {
	e := NewExecutor(NewToolRegistry(), model.Scope{UserID: "u1"}, nopLogger{})

	result := e.Execute(context.Background(), "fly_to_moon", map[string]interface{}{})
	if result.Success {
		t.Error("expected failure")
	}
	if !strings.Contains(result.Error, "Unknown tool: fly_to_moon") {
		t.Errorf("error = %q", result.Error)
	}
}

func TestExecutorValidatesRequiredParams(t *testing.T) {
	r := NewToolRegistry()
	r.Register(&stubTool{
		name: "add_guest",
		params: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"name": map[string]interface{}{"type": "string"},
			},
			"required": []string{"name"},
		},
	})
	e := NewExecutor(r, model.Scope{UserID: "u1"}, nopLogger{})

	result := e.Execute(context.Background(), "add_guest", map[string]interface{}{})
	if result.Success || !strings.Contains(result.Error, "missing required parameter: name") {
		t.Errorf("result = %+v", result)
	}

	result = e.Execute(context.Background(), "add_guest", map[string]interface{}{
		"name":    "Priya",
		"unknown": true,
	})
	if result.Success || !strings.Contains(result.Error, "unknown parameter: unknown") {
		t.Errorf("result = %+v", result)
	}

	result = e.Execute(context.Background(), "add_guest", map[string]interface{}{"name": "Priya"})
	if !result.Success {
		t.Errorf("result = %+v", result)
	}
}

func TestExecutorToolErrorBecomesFailedResult(t *testing.T) {
	r := NewToolRegistry()
	r.Register(&stubTool{
		name: "get_budget_summary",
		execute: func(ctx context.Context, sc model.Scope, params map[string]interface{}) (*ToolResult, error) {
			return nil, errors.New("Failed to fetch budget summary")
		},
	})
	e := NewExecutor(r, model.Scope{UserID: "u1"}, nopLogger{})

	result := e.Execute(context.Background(), "get_budget_summary", map[string]interface{}{})
	if result.Success || result.Error != "Failed to fetch budget summary" {
		t.Errorf("result = %+v", result)
	}
}

func TestExecutorRecoversFromPanic(t *testing.T) {
	r := NewToolRegistry()
	r.Register(&stubTool{
		name: "search_venues",
		execute: func(ctx context.Context, sc model.Scope, params map[string]interface{}) (*ToolResult, error) {
			panic("boom")
		},
	})
	e := NewExecutor(r, model.Scope{UserID: "u1"}, nopLogger{})

	result := e.Execute(context.Background(), "search_venues", map[string]interface{}{})
	if result.Success || !strings.Contains(result.Error, "boom") {
		t.Errorf("result = %+v", result)
	}
}

func TestExecutorSuccessCarriesDataAndMessage(t *testing.T) {
	r := NewToolRegistry()
	r.Register(&stubTool{
		name: "get_guest_count",
		execute: func(ctx context.Context, sc model.Scope, params map[string]interface{}) (*ToolResult, error) {
			return &ToolResult{Data: map[string]int{"total": 120}, Message: "120 invited"}, nil
		},
	})
	e := NewExecutor(r, model.Scope{UserID: "u1"}, nopLogger{})

	result := e.Execute(context.Background(), "get_guest_count", map[string]interface{}{})
	if !result.Success || result.Message != "120 invited" {
		t.Errorf("result = %+v", result)
	}
	if data, ok := result.Data.(map[string]int); !ok || data["total"] != 120 {
		t.Errorf("data = %+v", result.Data)
	}
}
