package tools

import (
	"context"
	"fmt"
	"strings"

	"wedding-assistant/internal/assistant"
	"wedding-assistant/internal/model"
	"wedding-assistant/internal/planning"
	"wedding-assistant/pkg/log"
)

// ExportPlanningDataTool produces a downloadable export of all planning
// data for the wedding.
type ExportPlanningDataTool struct {
	planning planning.API
	l        log.Logger
}

func NewExportPlanningDataTool(p planning.API, l log.Logger) *ExportPlanningDataTool {
	return &ExportPlanningDataTool{planning: p, l: l}
}

func (t *ExportPlanningDataTool) Name() string {
	return "export_planning_data"
}

func (t *ExportPlanningDataTool) Description() string {
	return "Export the full planning data (checklist, budget, timeline, guests) as a downloadable file."
}

func (t *ExportPlanningDataTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"format": map[string]interface{}{
				"type":        "string",
				"description": "Export format: pdf or csv. Defaults to pdf.",
			},
		},
		"required": []string{},
	}
}

type exportPlanningDataInput struct {
	Format string `json:"format"`
}

func (t *ExportPlanningDataTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (*assistant.ToolResult, error) {
	input, err := parseParams[exportPlanningDataInput](params)
	if err != nil {
		return nil, err
	}

	format := strings.ToLower(input.Format)
	if format == "" {
		format = "pdf"
	}

	result, err := t.planning.ExportPlanningData(ctx, sc, format)
	if err != nil {
		return nil, fmt.Errorf("export failed: %w", err)
	}

	return &assistant.ToolResult{
		Data:    result,
		Message: fmt.Sprintf("Your %s export is ready: %s", strings.ToUpper(result.Format), result.URL),
	}, nil
}

var _ assistant.Tool = (*ExportPlanningDataTool)(nil)
