package tools

import (
	"context"
	"fmt"

	"wedding-assistant/internal/assistant"
	"wedding-assistant/internal/model"
	"wedding-assistant/internal/planning"
	"wedding-assistant/pkg/log"
)

// formatINR renders an amount the way users type budgets, e.g. ₹50,000.
func formatINR(amount float64) string {
	n := int64(amount)
	if n < 0 {
		return "-" + formatINR(-amount)
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return "₹" + s
	}
	// Indian grouping: last three digits, then groups of two.
	out := s[len(s)-3:]
	s = s[:len(s)-3]
	for len(s) > 2 {
		out = s[len(s)-2:] + "," + out
		s = s[:len(s)-2]
	}
	return "₹" + s + "," + out
}

// AddBudgetItemTool records a budget line item.
type AddBudgetItemTool struct {
	planning planning.API
	l        log.Logger
}

func NewAddBudgetItemTool(p planning.API, l log.Logger) *AddBudgetItemTool {
	return &AddBudgetItemTool{planning: p, l: l}
}

func (t *AddBudgetItemTool) Name() string {
	return "add_budget_item"
}

func (t *AddBudgetItemTool) Description() string {
	return "Add an expense item to the wedding budget with an estimated amount."
}

func (t *AddBudgetItemTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"name": map[string]interface{}{
				"type":        "string",
				"description": "What the expense is for, e.g. 'Catering advance'",
			},
			"category": map[string]interface{}{
				"type":        "string",
				"description": "Budget category: Venue, Catering, Photography, Attire, Decor, Music, Other",
			},
			"estimated_amount": map[string]interface{}{
				"type":        "number",
				"description": "Estimated cost in rupees",
			},
			"notes": map[string]interface{}{
				"type":        "string",
				"description": "Optional notes",
			},
		},
		"required": []string{"name", "category", "estimated_amount"},
	}
}

type addBudgetItemInput struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	EstimatedAmount float64 `json:"estimated_amount"`
	Notes           string  `json:"notes"`
}

func (t *AddBudgetItemTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (*assistant.ToolResult, error) {
	input, err := parseParams[addBudgetItemInput](params)
	if err != nil {
		return nil, err
	}

	t.l.Infof(ctx, "add_budget_item: user=%s category=%s amount=%.0f", sc.UserID, input.Category, input.EstimatedAmount)

	item, err := t.planning.AddBudgetItem(ctx, sc, planning.AddBudgetItemRequest{
		Category:      input.Category,
		Item:          input.Name,
		EstimatedCost: input.EstimatedAmount,
		Notes:         input.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add budget item: %w", err)
	}

	return &assistant.ToolResult{
		Data:    item,
		Message: fmt.Sprintf("Added %s for %s", formatINR(item.EstimatedCost), item.Category),
	}, nil
}

// UpdateBudgetItemTool updates an existing budget item.
type UpdateBudgetItemTool struct {
	planning planning.API
	l        log.Logger
}

func NewUpdateBudgetItemTool(p planning.API, l log.Logger) *UpdateBudgetItemTool {
	return &UpdateBudgetItemTool{planning: p, l: l}
}

func (t *UpdateBudgetItemTool) Name() string {
	return "update_budget_item"
}

func (t *UpdateBudgetItemTool) Description() string {
	return "Update a budget item's estimated or actual spent amount by its id."
}

func (t *UpdateBudgetItemTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"item_id": map[string]interface{}{
				"type":        "string",
				"description": "Id of the budget item",
			},
			"estimated_amount": map[string]interface{}{
				"type":        "number",
				"description": "New estimated cost in rupees",
			},
			"spent_amount": map[string]interface{}{
				"type":        "number",
				"description": "Amount actually spent in rupees",
			},
			"paid": map[string]interface{}{
				"type":        "boolean",
				"description": "Whether this item has been paid",
			},
			"notes": map[string]interface{}{
				"type":        "string",
				"description": "Optional notes",
			},
		},
		"required": []string{"item_id"},
	}
}

type updateBudgetItemInput struct {
	ItemID          string   `json:"item_id"`
	EstimatedAmount *float64 `json:"estimated_amount"`
	SpentAmount     *float64 `json:"spent_amount"`
	Paid            *bool    `json:"paid"`
	Notes           *string  `json:"notes"`
}

func (t *UpdateBudgetItemTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (*assistant.ToolResult, error) {
	input, err := parseParams[updateBudgetItemInput](params)
	if err != nil {
		return nil, err
	}

	item, err := t.planning.UpdateBudgetItem(ctx, sc, input.ItemID, planning.UpdateBudgetItemRequest{
		EstimatedCost: input.EstimatedAmount,
		ActualCost:    input.SpentAmount,
		Paid:          input.Paid,
		Notes:         input.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update budget item: %w", err)
	}

	return &assistant.ToolResult{
		Data:    item,
		Message: fmt.Sprintf("Updated %s in %s", item.Item, item.Category),
	}, nil
}

// GetBudgetSummaryTool reports totals and per-category spend.
type GetBudgetSummaryTool struct {
	planning planning.API
	l        log.Logger
}

func NewGetBudgetSummaryTool(p planning.API, l log.Logger) *GetBudgetSummaryTool {
	return &GetBudgetSummaryTool{planning: p, l: l}
}

func (t *GetBudgetSummaryTool) Name() string {
	return "get_budget_summary"
}

func (t *GetBudgetSummaryTool) Description() string {
	return "Get the budget summary: total budget, estimated, spent, remaining and per-category breakdown."
}

func (t *GetBudgetSummaryTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
		"required":   []string{},
	}
}

func (t *GetBudgetSummaryTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (*assistant.ToolResult, error) {
	summary, err := t.planning.GetBudgetSummary(ctx, sc)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch budget summary: %w", err)
	}

	return &assistant.ToolResult{
		Data: summary,
		Message: fmt.Sprintf("Budget %s, spent %s, remaining %s",
			formatINR(summary.TotalBudget), formatINR(summary.Spent), formatINR(summary.Remaining)),
	}, nil
}

// SetTotalBudgetTool sets the overall wedding budget.
type SetTotalBudgetTool struct {
	planning planning.API
	l        log.Logger
}

func NewSetTotalBudgetTool(p planning.API, l log.Logger) *SetTotalBudgetTool {
	return &SetTotalBudgetTool{planning: p, l: l}
}

func (t *SetTotalBudgetTool) Name() string {
	return "set_total_budget"
}

func (t *SetTotalBudgetTool) Description() string {
	return "Set or change the total wedding budget."
}

func (t *SetTotalBudgetTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"total_budget": map[string]interface{}{
				"type":        "number",
				"description": "Total budget in rupees",
			},
		},
		"required": []string{"total_budget"},
	}
}

type setTotalBudgetInput struct {
	TotalBudget float64 `json:"total_budget"`
}

func (t *SetTotalBudgetTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (*assistant.ToolResult, error) {
	input, err := parseParams[setTotalBudgetInput](params)
	if err != nil {
		return nil, err
	}

	settings, err := t.planning.SetTotalBudget(ctx, sc, input.TotalBudget)
	if err != nil {
		return nil, fmt.Errorf("failed to set total budget: %w", err)
	}

	return &assistant.ToolResult{
		Data:    settings,
		Message: fmt.Sprintf("Total budget set to %s", formatINR(settings.TotalBudget)),
	}, nil
}

var (
	_ assistant.Tool = (*AddBudgetItemTool)(nil)
	_ assistant.Tool = (*UpdateBudgetItemTool)(nil)
	_ assistant.Tool = (*GetBudgetSummaryTool)(nil)
	_ assistant.Tool = (*SetTotalBudgetTool)(nil)
)
