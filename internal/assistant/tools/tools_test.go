package tools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"wedding-assistant/internal/assistant"
	"wedding-assistant/internal/model"
	"wedding-assistant/internal/planning"
	"wedding-assistant/pkg/gcalendar"
	"wedding-assistant/pkg/log"
)

type mockPlanning struct {
	planning.API

	createTaskFn   func(ctx context.Context, sc model.Scope, req planning.CreateChecklistTaskRequest) (*planning.ChecklistTask, error)
	listTasksFn    func(ctx context.Context, sc model.Scope, req planning.ListChecklistTasksRequest) ([]planning.ChecklistTask, error)
	addBudgetFn    func(ctx context.Context, sc model.Scope, req planning.AddBudgetItemRequest) (*planning.BudgetItem, error)
	addMilestoneFn func(ctx context.Context, sc model.Scope, req planning.AddMilestoneRequest) (*planning.Milestone, error)
	searchVenuesFn func(ctx context.Context, sc model.Scope, req planning.VenueSearchRequest) ([]planning.Venue, error)
	updateRSVPFn   func(ctx context.Context, sc model.Scope, id, status string) (*planning.Guest, error)
}

func (m *mockPlanning) CreateChecklistTask(ctx context.Context, sc model.Scope, req planning.CreateChecklistTaskRequest) (*planning.ChecklistTask, error) {
	return m.createTaskFn(ctx, sc, req)
}

func (m *mockPlanning) ListChecklistTasks(ctx context.Context, sc model.Scope, req planning.ListChecklistTasksRequest) ([]planning.ChecklistTask, error) {
	return m.listTasksFn(ctx, sc, req)
}

func (m *mockPlanning) AddBudgetItem(ctx context.Context, sc model.Scope, req planning.AddBudgetItemRequest) (*planning.BudgetItem, error) {
	return m.addBudgetFn(ctx, sc, req)
}

func (m *mockPlanning) AddTimelineMilestone(ctx context.Context, sc model.Scope, req planning.AddMilestoneRequest) (*planning.Milestone, error) {
	return m.addMilestoneFn(ctx, sc, req)
}

func (m *mockPlanning) SearchVenues(ctx context.Context, sc model.Scope, req planning.VenueSearchRequest) ([]planning.Venue, error) {
	return m.searchVenuesFn(ctx, sc, req)
}

func (m *mockPlanning) UpdateRSVPStatus(ctx context.Context, sc model.Scope, id, status string) (*planning.Guest, error) {
	return m.updateRSVPFn(ctx, sc, id, status)
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

func TestFormatINR(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "₹0"},
		{500, "₹500"},
		{50000, "₹50,000"},
		{150000, "₹1,50,000"},
		{12345678, "₹1,23,45,678"},
	}
	for _, c := range cases {
		if got := formatINR(c.amount); got != c.want {
			t.Errorf("formatINR(%v) = %q, want %q", c.amount, got, c.want)
		}
	}
}

func TestAddBudgetItemMessage(t *testing.T) {
	p := &mockPlanning{
		addBudgetFn: func(ctx context.Context, sc model.Scope, req planning.AddBudgetItemRequest) (*planning.BudgetItem, error) {
			return &planning.BudgetItem{
				ID:            "b1",
				Item:          req.Item,
				Category:      req.Category,
				EstimatedCost: req.EstimatedCost,
			}, nil
		},
	}
	tool := NewAddBudgetItemTool(p, nopLogger{})

	out, err := tool.Execute(context.Background(), model.Scope{UserID: "u1"}, map[string]interface{}{
		"name":             "Catering advance",
		"category":         "Catering",
		"estimated_amount": float64(50000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Message != "Added ₹50,000 for Catering" {
		t.Errorf("message = %q", out.Message)
	}
}

func TestAddChecklistTaskPropagatesScope(t *testing.T) {
	var gotScope model.Scope
	p := &mockPlanning{
		createTaskFn: func(ctx context.Context, sc model.Scope, req planning.CreateChecklistTaskRequest) (*planning.ChecklistTask, error) {
			gotScope = sc
			return &planning.ChecklistTask{ID: "t1", Title: req.Title, Category: req.Category}, nil
		},
	}
	tool := NewAddChecklistTaskTool(p, nopLogger{})

	sc := model.Scope{UserID: "u1", WeddingID: "w1"}
	out, err := tool.Execute(context.Background(), sc, map[string]interface{}{
		"title": "Book the caterer",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotScope != sc {
		t.Errorf("scope = %+v, want %+v", gotScope, sc)
	}
	if !strings.Contains(out.Message, "Book the caterer") {
		t.Errorf("message = %q", out.Message)
	}
}

func TestGetChecklistTasksCountsPending(t *testing.T) {
	p := &mockPlanning{
		listTasksFn: func(ctx context.Context, sc model.Scope, req planning.ListChecklistTasksRequest) ([]planning.ChecklistTask, error) {
			return []planning.ChecklistTask{
				{ID: "1", Title: "a", Completed: true},
				{ID: "2", Title: "b"},
				{ID: "3", Title: "c"},
			}, nil
		},
	}
	tool := NewGetChecklistTasksTool(p, nopLogger{})

	out, err := tool.Execute(context.Background(), model.Scope{UserID: "u1"}, map[string]interface{}{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Message != "Found 3 tasks (2 pending)" {
		t.Errorf("message = %q", out.Message)
	}
}

func TestAddTimelineMilestoneWithoutCalendar(t *testing.T) {
	p := &mockPlanning{
		addMilestoneFn: func(ctx context.Context, sc model.Scope, req planning.AddMilestoneRequest) (*planning.Milestone, error) {
			return &planning.Milestone{ID: "m1", Title: req.Title, Date: req.Date}, nil
		},
	}
	tool := NewAddTimelineMilestoneTool(p, nil, gcalendar.EventDefaults{}, nopLogger{})

	out, err := tool.Execute(context.Background(), model.Scope{UserID: "u1"}, map[string]interface{}{
		"title": "Send invitations",
		"date":  "2026-11-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.Message, "Send invitations") || !strings.Contains(out.Message, "2026-11-01") {
		t.Errorf("message = %q", out.Message)
	}
}

func TestSearchVenuesError(t *testing.T) {
	p := &mockPlanning{
		searchVenuesFn: func(ctx context.Context, sc model.Scope, req planning.VenueSearchRequest) ([]planning.Venue, error) {
			return nil, errors.New("backend down")
		},
	}
	tool := NewSearchVenuesTool(p, nopLogger{})

	_, err := tool.Execute(context.Background(), model.Scope{UserID: "u1"}, map[string]interface{}{
		"city": "Jaipur",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "backend down") {
		t.Errorf("error = %v", err)
	}
}

func TestUpdateRSVPStatusMessage(t *testing.T) {
	p := &mockPlanning{
		updateRSVPFn: func(ctx context.Context, sc model.Scope, id, status string) (*planning.Guest, error) {
			return &planning.Guest{ID: id, Name: "Priya", RSVPStatus: status}, nil
		},
	}
	tool := NewUpdateRSVPStatusTool(p, nopLogger{})

	out, err := tool.Execute(context.Background(), model.Scope{UserID: "u1"}, map[string]interface{}{
		"guest_id":    "g1",
		"rsvp_status": "confirmed",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Message != "Priya is now confirmed" {
		t.Errorf("message = %q", out.Message)
	}
}

func TestRegisterAllRegistersEveryTool(t *testing.T) {
	registry := assistant.NewToolRegistry()
	RegisterAll(registry, &mockPlanning{}, nil, gcalendar.EventDefaults{}, nopLogger{})

	if got := len(registry.List()); got != 18 {
		t.Fatalf("registered %d tools, want 18", got)
	}

	// Every registered tool must be reachable through keyword category
	// selection, otherwise the model can never see it.
	seen := map[string]bool{}
	for _, toolsInCategory := range registry.Categories() {
		for _, tool := range toolsInCategory {
			seen[tool.Name()] = true
		}
	}
	for _, tool := range registry.List() {
		if !seen[tool.Name()] {
			t.Errorf("tool %s not assigned to any category", tool.Name())
		}
	}
}
