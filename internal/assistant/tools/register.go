package tools

import (
	"wedding-assistant/internal/assistant"
	"wedding-assistant/internal/planning"
	"wedding-assistant/pkg/gcalendar"
	"wedding-assistant/pkg/log"
)

// RegisterAll wires every tool into the registry. The calendar client may
// be nil; milestone mirroring is skipped in that case.
func RegisterAll(registry *assistant.ToolRegistry, p planning.API, cal *gcalendar.Client, calDefaults gcalendar.EventDefaults, l log.Logger) {
	registry.Register(NewAddChecklistTaskTool(p, l))
	registry.Register(NewCompleteChecklistTaskTool(p, l))
	registry.Register(NewRemoveChecklistTaskTool(p, l))
	registry.Register(NewGetChecklistTasksTool(p, l))

	registry.Register(NewAddBudgetItemTool(p, l))
	registry.Register(NewUpdateBudgetItemTool(p, l))
	registry.Register(NewGetBudgetSummaryTool(p, l))
	registry.Register(NewSetTotalBudgetTool(p, l))

	registry.Register(NewAddTimelineMilestoneTool(p, cal, calDefaults, l))
	registry.Register(NewGenerateTimelineTool(p, l))

	registry.Register(NewAddGuestTool(p, l))
	registry.Register(NewUpdateRSVPStatusTool(p, l))
	registry.Register(NewGetGuestCountTool(p, l))

	registry.Register(NewSearchVenuesTool(p, l))
	registry.Register(NewSearchVendorsTool(p, l))
	registry.Register(NewGetRecommendationsTool(p, l))

	registry.Register(NewUpdatePreferencesTool(p, l))

	registry.Register(NewExportPlanningDataTool(p, l))
}
