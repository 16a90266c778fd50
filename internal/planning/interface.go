package planning

import (
	"context"

	"wedding-assistant/internal/model"
)

// API is the planning backend surface the assistant's tools execute
// against. Every call is scoped to the user (and wedding, when known)
// carried in the Scope. Implementations are safe for concurrent use.
type API interface {
	// Checklist
	CreateChecklistTask(ctx context.Context, sc model.Scope, req CreateChecklistTaskRequest) (*ChecklistTask, error)
	CompleteChecklistTask(ctx context.Context, sc model.Scope, id string) (*ChecklistTask, error)
	DeleteChecklistTask(ctx context.Context, sc model.Scope, id string) error
	ListChecklistTasks(ctx context.Context, sc model.Scope, req ListChecklistTasksRequest) ([]ChecklistTask, error)

	// Budget
	AddBudgetItem(ctx context.Context, sc model.Scope, req AddBudgetItemRequest) (*BudgetItem, error)
	UpdateBudgetItem(ctx context.Context, sc model.Scope, id string, req UpdateBudgetItemRequest) (*BudgetItem, error)
	GetBudgetSummary(ctx context.Context, sc model.Scope) (*BudgetSummary, error)
	SetTotalBudget(ctx context.Context, sc model.Scope, amount float64) (*BudgetSettings, error)

	// Timeline
	AddTimelineMilestone(ctx context.Context, sc model.Scope, req AddMilestoneRequest) (*Milestone, error)
	GenerateTimeline(ctx context.Context, sc model.Scope, req GenerateTimelineRequest) ([]Milestone, error)

	// Guests
	AddGuest(ctx context.Context, sc model.Scope, req AddGuestRequest) (*Guest, error)
	UpdateRSVPStatus(ctx context.Context, sc model.Scope, id, status string) (*Guest, error)
	GetGuestCount(ctx context.Context, sc model.Scope) (*GuestCount, error)

	// Marketplace search
	SearchVenues(ctx context.Context, sc model.Scope, req VenueSearchRequest) ([]Venue, error)
	SearchVendors(ctx context.Context, sc model.Scope, req VendorSearchRequest) ([]Vendor, error)
	GetRecommendations(ctx context.Context, sc model.Scope, req RecommendationsRequest) ([]Recommendation, error)

	// Preferences & export
	UpdatePreferences(ctx context.Context, sc model.Scope, req PreferencesUpdate) (*PreferencesUpdate, error)
	ExportPlanningData(ctx context.Context, sc model.Scope, format string) (*ExportResult, error)
}
