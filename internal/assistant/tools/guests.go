package tools

import (
	"context"
	"fmt"

	"wedding-assistant/internal/assistant"
	"wedding-assistant/internal/model"
	"wedding-assistant/internal/planning"
	"wedding-assistant/pkg/log"
)

// AddGuestTool adds a guest to the guest list.
type AddGuestTool struct {
	planning planning.API
	l        log.Logger
}

func NewAddGuestTool(p planning.API, l log.Logger) *AddGuestTool {
	return &AddGuestTool{planning: p, l: l}
}

func (t *AddGuestTool) Name() string {
	return "add_guest"
}

func (t *AddGuestTool) Description() string {
	return "Add a guest to the wedding guest list."
}

func (t *AddGuestTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"name": map[string]interface{}{
				"type":        "string",
				"description": "Guest's full name",
			},
			"side": map[string]interface{}{
				"type":        "string",
				"description": "Which side the guest belongs to: bride, groom, both",
			},
			"group": map[string]interface{}{
				"type":        "string",
				"description": "Optional group, e.g. 'family', 'college friends'",
			},
			"plus_ones": map[string]interface{}{
				"type":        "number",
				"description": "Number of additional people this guest brings",
			},
		},
		"required": []string{"name"},
	}
}

type addGuestInput struct {
	Name     string `json:"name"`
	Side     string `json:"side"`
	Group    string `json:"group"`
	PlusOnes int    `json:"plus_ones"`
}

func (t *AddGuestTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (*assistant.ToolResult, error) {
	input, err := parseParams[addGuestInput](params)
	if err != nil {
		return nil, err
	}

	guest, err := t.planning.AddGuest(ctx, sc, planning.AddGuestRequest{
		Name:     input.Name,
		Side:     input.Side,
		Group:    input.Group,
		PlusOnes: input.PlusOnes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add guest: %w", err)
	}

	return &assistant.ToolResult{
		Data:    guest,
		Message: fmt.Sprintf("Added %s to the guest list", guest.Name),
	}, nil
}

// UpdateRSVPStatusTool records a guest's RSVP.
type UpdateRSVPStatusTool struct {
	planning planning.API
	l        log.Logger
}

func NewUpdateRSVPStatusTool(p planning.API, l log.Logger) *UpdateRSVPStatusTool {
	return &UpdateRSVPStatusTool{planning: p, l: l}
}

func (t *UpdateRSVPStatusTool) Name() string {
	return "update_rsvp_status"
}

func (t *UpdateRSVPStatusTool) Description() string {
	return "Update a guest's RSVP status by their id."
}

func (t *UpdateRSVPStatusTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"guest_id": map[string]interface{}{
				"type":        "string",
				"description": "Id of the guest",
			},
			"rsvp_status": map[string]interface{}{
				"type":        "string",
				"description": "New status: pending, confirmed, declined",
			},
		},
		"required": []string{"guest_id", "rsvp_status"},
	}
}

type updateRSVPStatusInput struct {
	GuestID    string `json:"guest_id"`
	RSVPStatus string `json:"rsvp_status"`
}

func (t *UpdateRSVPStatusTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (*assistant.ToolResult, error) {
	input, err := parseParams[updateRSVPStatusInput](params)
	if err != nil {
		return nil, err
	}

	guest, err := t.planning.UpdateRSVPStatus(ctx, sc, input.GuestID, input.RSVPStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to update RSVP status: %w", err)
	}

	return &assistant.ToolResult{
		Data:    guest,
		Message: fmt.Sprintf("%s is now %s", guest.Name, guest.RSVPStatus),
	}, nil
}

// GetGuestCountTool summarizes guest list numbers.
type GetGuestCountTool struct {
	planning planning.API
	l        log.Logger
}

func NewGetGuestCountTool(p planning.API, l log.Logger) *GetGuestCountTool {
	return &GetGuestCountTool{planning: p, l: l}
}

func (t *GetGuestCountTool) Name() string {
	return "get_guest_count"
}

func (t *GetGuestCountTool) Description() string {
	return "Get guest counts: total invited, confirmed, declined and pending."
}

func (t *GetGuestCountTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
		"required":   []string{},
	}
}

func (t *GetGuestCountTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (*assistant.ToolResult, error) {
	count, err := t.planning.GetGuestCount(ctx, sc)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guest count: %w", err)
	}

	return &assistant.ToolResult{
		Data: count,
		Message: fmt.Sprintf("%d invited: %d confirmed, %d declined, %d pending",
			count.Total, count.Confirmed, count.Declined, count.Pending),
	}, nil
}

var (
	_ assistant.Tool = (*AddGuestTool)(nil)
	_ assistant.Tool = (*UpdateRSVPStatusTool)(nil)
	_ assistant.Tool = (*GetGuestCountTool)(nil)
)
