package tools

import (
	"context"
	"fmt"

	"wedding-assistant/internal/assistant"
	"wedding-assistant/internal/model"
	"wedding-assistant/internal/planning"
	"wedding-assistant/pkg/log"
)

// SearchVenuesTool queries the venue catalog.
type SearchVenuesTool struct {
	planning planning.API
	l        log.Logger
}

func NewSearchVenuesTool(p planning.API, l log.Logger) *SearchVenuesTool {
	return &SearchVenuesTool{planning: p, l: l}
}

func (t *SearchVenuesTool) Name() string {
	return "search_venues"
}

func (t *SearchVenuesTool) Description() string {
	return "Search wedding venues by city, guest capacity, budget range and venue type."
}

func (t *SearchVenuesTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"city": map[string]interface{}{
				"type":        "string",
				"description": "City to search in",
			},
			"capacity": map[string]interface{}{
				"type":        "number",
				"description": "Minimum guest capacity",
			},
			"budget_min": map[string]interface{}{
				"type":        "number",
				"description": "Minimum price in rupees",
			},
			"budget_max": map[string]interface{}{
				"type":        "number",
				"description": "Maximum price in rupees",
			},
			"venue_type": map[string]interface{}{
				"type":        "string",
				"description": "Venue type: banquet hall, resort, lawn, palace, beach",
			},
		},
		"required": []string{},
	}
}

type searchVenuesInput struct {
	City      string  `json:"city"`
	Capacity  int     `json:"capacity"`
	BudgetMin float64 `json:"budget_min"`
	BudgetMax float64 `json:"budget_max"`
	VenueType string  `json:"venue_type"`
}

func (t *SearchVenuesTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (*assistant.ToolResult, error) {
	input, err := parseParams[searchVenuesInput](params)
	if err != nil {
		return nil, err
	}

	t.l.Infof(ctx, "search_venues: user=%s city=%q type=%q", sc.UserID, input.City, input.VenueType)

	venues, err := t.planning.SearchVenues(ctx, sc, planning.VenueSearchRequest{
		City:      input.City,
		Capacity:  input.Capacity,
		BudgetMin: input.BudgetMin,
		BudgetMax: input.BudgetMax,
		VenueType: input.VenueType,
	})
	if err != nil {
		return nil, fmt.Errorf("venue search failed: %w", err)
	}

	message := fmt.Sprintf("Found %d venues", len(venues))
	if input.City != "" {
		message = fmt.Sprintf("Found %d venues in %s", len(venues), input.City)
	}

	return &assistant.ToolResult{Data: venues, Message: message}, nil
}

// SearchVendorsTool queries the vendor catalog.
type SearchVendorsTool struct {
	planning planning.API
	l        log.Logger
}

func NewSearchVendorsTool(p planning.API, l log.Logger) *SearchVendorsTool {
	return &SearchVendorsTool{planning: p, l: l}
}

func (t *SearchVendorsTool) Name() string {
	return "search_vendors"
}

func (t *SearchVendorsTool) Description() string {
	return "Search wedding vendors (photographers, caterers, decorators, makeup artists) by city, category and budget."
}

func (t *SearchVendorsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"city": map[string]interface{}{
				"type":        "string",
				"description": "City to search in",
			},
			"category": map[string]interface{}{
				"type":        "string",
				"description": "Vendor category: photographer, caterer, decorator, makeup, music, mehendi",
			},
			"budget_max": map[string]interface{}{
				"type":        "number",
				"description": "Maximum price in rupees",
			},
		},
		"required": []string{},
	}
}

type searchVendorsInput struct {
	City      string  `json:"city"`
	Category  string  `json:"category"`
	BudgetMax float64 `json:"budget_max"`
}

func (t *SearchVendorsTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (*assistant.ToolResult, error) {
	input, err := parseParams[searchVendorsInput](params)
	if err != nil {
		return nil, err
	}

	vendors, err := t.planning.SearchVendors(ctx, sc, planning.VendorSearchRequest{
		City:      input.City,
		Category:  input.Category,
		BudgetMax: input.BudgetMax,
	})
	if err != nil {
		return nil, fmt.Errorf("vendor search failed: %w", err)
	}

	message := fmt.Sprintf("Found %d vendors", len(vendors))
	if input.Category != "" {
		message = fmt.Sprintf("Found %d %s vendors", len(vendors), input.Category)
	}

	return &assistant.ToolResult{Data: vendors, Message: message}, nil
}

// GetRecommendationsTool fetches personalized venue and vendor suggestions.
type GetRecommendationsTool struct {
	planning planning.API
	l        log.Logger
}

func NewGetRecommendationsTool(p planning.API, l log.Logger) *GetRecommendationsTool {
	return &GetRecommendationsTool{planning: p, l: l}
}

func (t *GetRecommendationsTool) Name() string {
	return "get_recommendations"
}

func (t *GetRecommendationsTool) Description() string {
	return "Get personalized venue and vendor recommendations based on the couple's stored preferences."
}

func (t *GetRecommendationsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"category": map[string]interface{}{
				"type":        "string",
				"description": "Optional category to narrow recommendations, e.g. 'venue' or 'photographer'",
			},
			"limit": map[string]interface{}{
				"type":        "number",
				"description": "Maximum number of recommendations to return",
			},
		},
		"required": []string{},
	}
}

type getRecommendationsInput struct {
	Category string `json:"category"`
	Limit    int    `json:"limit"`
}

func (t *GetRecommendationsTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (*assistant.ToolResult, error) {
	input, err := parseParams[getRecommendationsInput](params)
	if err != nil {
		return nil, err
	}

	recs, err := t.planning.GetRecommendations(ctx, sc, planning.RecommendationsRequest{
		Category: input.Category,
		Limit:    input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recommendations: %w", err)
	}

	return &assistant.ToolResult{
		Data:    recs,
		Message: fmt.Sprintf("Picked %d recommendations for you", len(recs)),
	}, nil
}

var (
	_ assistant.Tool = (*SearchVenuesTool)(nil)
	_ assistant.Tool = (*SearchVendorsTool)(nil)
	_ assistant.Tool = (*GetRecommendationsTool)(nil)
)
