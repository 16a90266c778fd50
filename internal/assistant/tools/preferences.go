package tools

import (
	"context"
	"fmt"

	"wedding-assistant/internal/assistant"
	"wedding-assistant/internal/model"
	"wedding-assistant/internal/planning"
	"wedding-assistant/pkg/log"
)

// UpdatePreferencesTool stores the couple's planning preferences, which
// feed recommendations.
type UpdatePreferencesTool struct {
	planning planning.API
	l        log.Logger
}

func NewUpdatePreferencesTool(p planning.API, l log.Logger) *UpdatePreferencesTool {
	return &UpdatePreferencesTool{planning: p, l: l}
}

func (t *UpdatePreferencesTool) Name() string {
	return "update_preferences"
}

func (t *UpdatePreferencesTool) Description() string {
	return "Save the couple's wedding preferences: theme, season, guest estimate, budget range and preferred locations."
}

func (t *UpdatePreferencesTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"theme": map[string]interface{}{
				"type":        "string",
				"description": "Wedding theme, e.g. 'traditional', 'destination', 'minimalist'",
			},
			"season": map[string]interface{}{
				"type":        "string",
				"description": "Preferred season or month",
			},
			"guest_estimate": map[string]interface{}{
				"type":        "number",
				"description": "Rough expected guest count",
			},
			"budget_range": map[string]interface{}{
				"type":        "string",
				"description": "Budget range, e.g. '10-15 lakh'",
			},
			"locations": map[string]interface{}{
				"type":        "array",
				"description": "Preferred cities or regions",
				"items":       map[string]interface{}{"type": "string"},
			},
		},
		"required": []string{},
	}
}

type updatePreferencesInput struct {
	Theme         string   `json:"theme"`
	Season        string   `json:"season"`
	GuestEstimate int      `json:"guest_estimate"`
	BudgetRange   string   `json:"budget_range"`
	Locations     []string `json:"locations"`
}

func (t *UpdatePreferencesTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (*assistant.ToolResult, error) {
	input, err := parseParams[updatePreferencesInput](params)
	if err != nil {
		return nil, err
	}

	prefs, err := t.planning.UpdatePreferences(ctx, sc, planning.PreferencesUpdate{
		Theme:         input.Theme,
		Season:        input.Season,
		GuestEstimate: input.GuestEstimate,
		BudgetRange:   input.BudgetRange,
		Locations:     input.Locations,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update preferences: %w", err)
	}

	return &assistant.ToolResult{
		Data:    prefs,
		Message: "Preferences saved. Future recommendations will use them.",
	}, nil
}

var _ assistant.Tool = (*UpdatePreferencesTool)(nil)
