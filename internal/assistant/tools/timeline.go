package tools

import (
	"context"
	"fmt"

	"wedding-assistant/internal/assistant"
	"wedding-assistant/internal/model"
	"wedding-assistant/internal/planning"
	"wedding-assistant/pkg/gcalendar"
	"wedding-assistant/pkg/log"
)

// AddTimelineMilestoneTool adds a milestone to the wedding timeline. When a
// Google Calendar client is configured, the milestone is mirrored there as an
// all-day event on a best-effort basis.
type AddTimelineMilestoneTool struct {
	planning planning.API
	calendar *gcalendar.Client
	consts   gcalendar.EventDefaults
	l        log.Logger
}

func NewAddTimelineMilestoneTool(p planning.API, cal *gcalendar.Client, consts gcalendar.EventDefaults, l log.Logger) *AddTimelineMilestoneTool {
	return &AddTimelineMilestoneTool{planning: p, calendar: cal, consts: consts, l: l}
}

func (t *AddTimelineMilestoneTool) Name() string {
	return "add_timeline_milestone"
}

func (t *AddTimelineMilestoneTool) Description() string {
	return "Add a dated milestone to the wedding timeline, e.g. 'Send invitations' on a specific date."
}

func (t *AddTimelineMilestoneTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"title": map[string]interface{}{
				"type":        "string",
				"description": "Milestone title",
			},
			"date": map[string]interface{}{
				"type":        "string",
				"description": "Milestone date in YYYY-MM-DD format",
			},
			"description": map[string]interface{}{
				"type":        "string",
				"description": "Optional details",
			},
		},
		"required": []string{"title", "date"},
	}
}

type addTimelineMilestoneInput struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

func (t *AddTimelineMilestoneTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (*assistant.ToolResult, error) {
	input, err := parseParams[addTimelineMilestoneInput](params)
	if err != nil {
		return nil, err
	}

	milestone, err := t.planning.AddTimelineMilestone(ctx, sc, planning.AddMilestoneRequest{
		Title:       input.Title,
		Date:        input.Date,
		Description: input.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add milestone: %w", err)
	}

	if t.calendar != nil {
		_, calErr := t.calendar.CreateMilestoneEvent(ctx, gcalendar.MilestoneEventRequest{
			CalendarID:  t.consts.CalendarID,
			Title:       milestone.Title,
			Description: milestone.Description,
			Date:        milestone.Date,
			Timezone:    t.consts.Timezone,
		})
		if calErr != nil {
			// Calendar mirroring must never fail the milestone itself.
			t.l.Warnf(ctx, "calendar mirror failed for milestone %s: %v", milestone.ID, calErr)
		}
	}

	return &assistant.ToolResult{
		Data:    milestone,
		Message: fmt.Sprintf("Added milestone %q on %s", milestone.Title, milestone.Date),
	}, nil
}

// GenerateTimelineTool asks the planning service to build a stage-appropriate
// timeline from the wedding date.
type GenerateTimelineTool struct {
	planning planning.API
	l        log.Logger
}

func NewGenerateTimelineTool(p planning.API, l log.Logger) *GenerateTimelineTool {
	return &GenerateTimelineTool{planning: p, l: l}
}

func (t *GenerateTimelineTool) Name() string {
	return "generate_timeline"
}

func (t *GenerateTimelineTool) Description() string {
	return "Generate a full set of timeline milestones working backwards from the wedding date."
}

func (t *GenerateTimelineTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"wedding_date": map[string]interface{}{
				"type":        "string",
				"description": "Wedding date in YYYY-MM-DD format",
			},
		},
		"required": []string{"wedding_date"},
	}
}

type generateTimelineInput struct {
	WeddingDate string `json:"wedding_date"`
}

func (t *GenerateTimelineTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (*assistant.ToolResult, error) {
	input, err := parseParams[generateTimelineInput](params)
	if err != nil {
		return nil, err
	}

	milestones, err := t.planning.GenerateTimeline(ctx, sc, planning.GenerateTimelineRequest{
		WeddingDate: input.WeddingDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate timeline: %w", err)
	}

	return &assistant.ToolResult{
		Data:    milestones,
		Message: fmt.Sprintf("Generated %d milestones leading up to %s", len(milestones), input.WeddingDate),
	}, nil
}

var (
	_ assistant.Tool = (*AddTimelineMilestoneTool)(nil)
	_ assistant.Tool = (*GenerateTimelineTool)(nil)
)
