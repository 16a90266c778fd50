package planning

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"wedding-assistant/internal/model"
)

// Client is the HTTP wrapper for the planning backend REST API.
type Client struct {
	baseURL      string
	serviceToken string
	httpClient   *http.Client
}

// NewClient creates a new planning backend client.
func NewClient(baseURL, serviceToken string) *Client {
	return &Client{
		baseURL:      baseURL,
		serviceToken: serviceToken,
		httpClient:   &http.Client{Timeout: 15 * time.Second},
	}
}

// scopeQuery builds the userId/weddingId query every scoped call carries.
func scopeQuery(sc model.Scope) url.Values {
	q := url.Values{}
	q.Set("userId", sc.UserID)
	if sc.WeddingID != "" {
		q.Set("weddingId", sc.WeddingID)
	}
	return q
}

// call issues one request and decodes the JSON response into out (out may
// be nil for calls whose body is irrelevant). Non-2xx responses become an
// error carrying the status and a capped slice of the body.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, in, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("planning: failed to marshal %s %s request: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("planning: failed to build %s %s request: %w", method, path, err)
	}
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.serviceToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("planning: %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("planning: %s %s error %d: %s", method, path, resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("planning: failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

// CreateChecklistTask creates a checklist entry via POST /api/planning/checklist.
func (c *Client) CreateChecklistTask(ctx context.Context, sc model.Scope, req CreateChecklistTaskRequest) (*ChecklistTask, error) {
	var task ChecklistTask
	if err := c.call(ctx, http.MethodPost, "/api/planning/checklist", scopeQuery(sc), req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CompleteChecklistTask marks a checklist entry done via PATCH /api/planning/checklist/{id}.
func (c *Client) CompleteChecklistTask(ctx context.Context, sc model.Scope, id string) (*ChecklistTask, error) {
	var task ChecklistTask
	patch := map[string]bool{"completed": true}
	if err := c.call(ctx, http.MethodPatch, "/api/planning/checklist/"+url.PathEscape(id), scopeQuery(sc), patch, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteChecklistTask removes a checklist entry via DELETE /api/planning/checklist/{id}.
func (c *Client) DeleteChecklistTask(ctx context.Context, sc model.Scope, id string) error {
	return c.call(ctx, http.MethodDelete, "/api/planning/checklist/"+url.PathEscape(id), scopeQuery(sc), nil, nil)
}

// ListChecklistTasks lists checklist entries via GET /api/planning/checklist.
func (c *Client) ListChecklistTasks(ctx context.Context, sc model.Scope, req ListChecklistTasksRequest) ([]ChecklistTask, error) {
	q := scopeQuery(sc)
	if req.Category != "" {
		q.Set("category", req.Category)
	}
	if req.Completed != nil {
		q.Set("completed", strconv.FormatBool(*req.Completed))
	}

	var tasks []ChecklistTask
	if err := c.call(ctx, http.MethodGet, "/api/planning/checklist", q, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// AddBudgetItem creates a budget line item via POST /api/planning/budget.
func (c *Client) AddBudgetItem(ctx context.Context, sc model.Scope, req AddBudgetItemRequest) (*BudgetItem, error) {
	var item BudgetItem
	if err := c.call(ctx, http.MethodPost, "/api/planning/budget", scopeQuery(sc), req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateBudgetItem patches a budget line item via PATCH /api/planning/budget/{id}.
func (c *Client) UpdateBudgetItem(ctx context.Context, sc model.Scope, id string, req UpdateBudgetItemRequest) (*BudgetItem, error) {
	var item BudgetItem
	if err := c.call(ctx, http.MethodPatch, "/api/planning/budget/"+url.PathEscape(id), scopeQuery(sc), req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// GetBudgetSummary fetches aggregates via GET /api/planning/budget/summary.
func (c *Client) GetBudgetSummary(ctx context.Context, sc model.Scope) (*BudgetSummary, error) {
	var summary BudgetSummary
	if err := c.call(ctx, http.MethodGet, "/api/planning/budget/summary", scopeQuery(sc), nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// SetTotalBudget stores the overall budget via PUT /api/planning/budget/settings.
func (c *Client) SetTotalBudget(ctx context.Context, sc model.Scope, amount float64) (*BudgetSettings, error) {
	var settings BudgetSettings
	body := map[string]float64{"totalBudget": amount}
	if err := c.call(ctx, http.MethodPut, "/api/planning/budget/settings", scopeQuery(sc), body, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// AddTimelineMilestone creates a timeline entry via POST /api/planning/timeline.
func (c *Client) AddTimelineMilestone(ctx context.Context, sc model.Scope, req AddMilestoneRequest) (*Milestone, error) {
	var milestone Milestone
	if err := c.call(ctx, http.MethodPost, "/api/planning/timeline", scopeQuery(sc), req, &milestone); err != nil {
		return nil, err
	}
	return &milestone, nil
}

// GenerateTimeline builds a default plan via POST /api/planning/timeline/generate.
func (c *Client) GenerateTimeline(ctx context.Context, sc model.Scope, req GenerateTimelineRequest) ([]Milestone, error) {
	var milestones []Milestone
	if err := c.call(ctx, http.MethodPost, "/api/planning/timeline/generate", scopeQuery(sc), req, &milestones); err != nil {
		return nil, err
	}
	return milestones, nil
}

// AddGuest creates a guest entry via POST /api/planning/guests.
func (c *Client) AddGuest(ctx context.Context, sc model.Scope, req AddGuestRequest) (*Guest, error) {
	var guest Guest
	if err := c.call(ctx, http.MethodPost, "/api/planning/guests", scopeQuery(sc), req, &guest); err != nil {
		return nil, err
	}
	return &guest, nil
}

// UpdateRSVPStatus updates a guest RSVP via PATCH /api/planning/guests/{id}/rsvp.
func (c *Client) UpdateRSVPStatus(ctx context.Context, sc model.Scope, id, status string) (*Guest, error) {
	var guest Guest
	body := map[string]string{"rsvpStatus": status}
	if err := c.call(ctx, http.MethodPatch, "/api/planning/guests/"+url.PathEscape(id)+"/rsvp", scopeQuery(sc), body, &guest); err != nil {
		return nil, err
	}
	return &guest, nil
}

// GetGuestCount fetches guest aggregates via GET /api/planning/guests/count.
func (c *Client) GetGuestCount(ctx context.Context, sc model.Scope) (*GuestCount, error) {
	var count GuestCount
	if err := c.call(ctx, http.MethodGet, "/api/planning/guests/count", scopeQuery(sc), nil, &count); err != nil {
		return nil, err
	}
	return &count, nil
}

// SearchVenues queries the venue catalog via POST /api/venues.
func (c *Client) SearchVenues(ctx context.Context, sc model.Scope, req VenueSearchRequest) ([]Venue, error) {
	var venues []Venue
	if err := c.call(ctx, http.MethodPost, "/api/venues", scopeQuery(sc), req, &venues); err != nil {
		return nil, err
	}
	return venues, nil
}

// SearchVendors queries the vendor catalog via POST /api/vendors.
func (c *Client) SearchVendors(ctx context.Context, sc model.Scope, req VendorSearchRequest) ([]Vendor, error) {
	var vendors []Vendor
	if err := c.call(ctx, http.MethodPost, "/api/vendors", scopeQuery(sc), req, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

// GetRecommendations fetches personalized picks via POST /api/ai/recommendations.
func (c *Client) GetRecommendations(ctx context.Context, sc model.Scope, req RecommendationsRequest) ([]Recommendation, error) {
	var recs []Recommendation
	if err := c.call(ctx, http.MethodPost, "/api/ai/recommendations", scopeQuery(sc), req, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// UpdatePreferences stores preferences via PUT /api/preferences.
func (c *Client) UpdatePreferences(ctx context.Context, sc model.Scope, req PreferencesUpdate) (*PreferencesUpdate, error) {
	var prefs PreferencesUpdate
	if err := c.call(ctx, http.MethodPut, "/api/preferences", scopeQuery(sc), req, &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

// ExportPlanningData requests a data export via POST /api/planning/export.
func (c *Client) ExportPlanningData(ctx context.Context, sc model.Scope, format string) (*ExportResult, error) {
	var result ExportResult
	body := map[string]string{"format": format}
	if err := c.call(ctx, http.MethodPost, "/api/planning/export", scopeQuery(sc), body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

var _ API = (*Client)(nil)
