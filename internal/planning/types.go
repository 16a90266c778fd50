package planning

// ChecklistTask is one checklist entry owned by a user's wedding.
type ChecklistTask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Priority  string `json:"priority"` // low, medium, high
	DueDate   string `json:"dueDate,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Completed bool   `json:"completed"`
}

// CreateChecklistTaskRequest creates a checklist entry.
type CreateChecklistTaskRequest struct {
	Title    string `json:"title"`
	Category string `json:"category,omitempty"`
	Priority string `json:"priority,omitempty"`
	DueDate  string `json:"dueDate,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// ListChecklistTasksRequest filters the checklist.
type ListChecklistTasksRequest struct {
	Category  string
	Completed *bool
}

// BudgetItem is one line item of the wedding budget.
type BudgetItem struct {
	ID            string  `json:"id"`
	Category      string  `json:"category"`
	Item          string  `json:"item"`
	EstimatedCost float64 `json:"estimatedCost"`
	ActualCost    float64 `json:"actualCost,omitempty"`
	Vendor        string  `json:"vendor,omitempty"`
	Paid          bool    `json:"paid"`
	Notes         string  `json:"notes,omitempty"`
}

// AddBudgetItemRequest creates a budget line item.
type AddBudgetItemRequest struct {
	Category      string  `json:"category"`
	Item          string  `json:"item"`
	EstimatedCost float64 `json:"estimatedCost"`
	Vendor        string  `json:"vendor,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}

// UpdateBudgetItemRequest patches a budget line item. Nil fields are
// left untouched by the backend.
type UpdateBudgetItemRequest struct {
	EstimatedCost *float64 `json:"estimatedCost,omitempty"`
	ActualCost    *float64 `json:"actualCost,omitempty"`
	Paid          *bool    `json:"paid,omitempty"`
	Vendor        *string  `json:"vendor,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

// CategorySpend is per-category budget aggregation.
type CategorySpend struct {
	Category  string  `json:"category"`
	Estimated float64 `json:"estimated"`
	Spent     float64 `json:"spent"`
}

// BudgetSummary aggregates the wedding budget.
type BudgetSummary struct {
	TotalBudget float64         `json:"totalBudget"`
	Estimated   float64         `json:"estimated"`
	Spent       float64         `json:"spent"`
	Remaining   float64         `json:"remaining"`
	Categories  []CategorySpend `json:"categories,omitempty"`
}

// BudgetSettings holds the overall budget configuration.
type BudgetSettings struct {
	TotalBudget float64 `json:"totalBudget"`
	Currency    string  `json:"currency,omitempty"`
}

// Milestone is one timeline entry.
type Milestone struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"` // YYYY-MM-DD
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Completed   bool   `json:"completed"`
}

// AddMilestoneRequest creates a timeline entry.
type AddMilestoneRequest struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

// GenerateTimelineRequest asks the backend to build a default milestone
// plan working backwards from the wedding date.
type GenerateTimelineRequest struct {
	WeddingDate string `json:"weddingDate"`
}

// Guest is one guest list entry.
type Guest struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Side       string `json:"side,omitempty"`  // bride, groom, both
	Group      string `json:"group,omitempty"` // family, friends, work
	PlusOnes   int    `json:"plusOnes"`
	RSVPStatus string `json:"rsvpStatus"` // pending, confirmed, declined
}

// AddGuestRequest creates a guest list entry.
type AddGuestRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Side     string `json:"side,omitempty"`
	Group    string `json:"group,omitempty"`
	PlusOnes int    `json:"plusOnes,omitempty"`
}

// GuestCount aggregates guest list state.
type GuestCount struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Declined  int `json:"declined"`
	Pending   int `json:"pending"`
	PlusOnes  int `json:"plusOnes"`
}

// VenueSearchRequest filters the venue catalog.
type VenueSearchRequest struct {
	City      string  `json:"city,omitempty"`
	Capacity  int     `json:"capacity,omitempty"`
	BudgetMin float64 `json:"budgetMin,omitempty"`
	BudgetMax float64 `json:"budgetMax,omitempty"`
	VenueType string  `json:"venueType,omitempty"`
}

// Venue is one venue search result.
type Venue struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	City     string  `json:"city"`
	Capacity int     `json:"capacity"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating,omitempty"`
	Type     string  `json:"type,omitempty"`
}

// VendorSearchRequest filters the vendor catalog.
type VendorSearchRequest struct {
	City      string  `json:"city,omitempty"`
	Category  string  `json:"category,omitempty"` // photographer, caterer, decorator...
	BudgetMax float64 `json:"budgetMax,omitempty"`
}

// Vendor is one vendor search result.
type Vendor struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	City     string  `json:"city"`
	Category string  `json:"category"`
	Price    float64 `json:"price,omitempty"`
	Rating   float64 `json:"rating,omitempty"`
}

// RecommendationsRequest asks the backend for personalized suggestions.
type RecommendationsRequest struct {
	Category string `json:"category,omitempty"`
	Limit    int    `json:"limit,omitempty"`
}

// Recommendation is one personalized suggestion.
type Recommendation struct {
	Type   string  `json:"type"` // venue or vendor
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Reason string  `json:"reason,omitempty"`
	Score  float64 `json:"score,omitempty"`
}

// PreferencesUpdate replaces the couple's stored preferences.
type PreferencesUpdate struct {
	Theme         string   `json:"theme,omitempty"`
	Season        string   `json:"season,omitempty"`
	GuestEstimate int      `json:"guestEstimate,omitempty"`
	BudgetRange   string   `json:"budgetRange,omitempty"`
	Locations     []string `json:"locations,omitempty"`
}

// ExportResult is the outcome of an export request.
type ExportResult struct {
	URL       string `json:"url"`
	Format    string `json:"format"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}
