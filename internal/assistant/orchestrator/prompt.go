package orchestrator

import (
	"fmt"
	"strings"
)

// buildSystemPrompt assembles the system prompt from the context fields
// that are present. Absent fields contribute nothing; no placeholder
// text is emitted for missing data. The output is deterministic for a
// given context.
func buildSystemPrompt(actx AssistantContext) string {
	var b strings.Builder
	b.WriteString(systemPromptBase)

	if ev := actx.EventDetails; ev != nil {
		if ev.WeddingDate != "" {
			fmt.Fprintf(&b, "\nThe wedding is on %s.", ev.WeddingDate)
		}
		if ev.City != "" {
			fmt.Fprintf(&b, "\nThe wedding city is %s.", ev.City)
		}
		if ev.VenueName != "" {
			fmt.Fprintf(&b, "\nThe booked venue is %s.", ev.VenueName)
		}
		if ev.GuestCount > 0 {
			fmt.Fprintf(&b, "\nAround %d guests are expected.", ev.GuestCount)
		}
	}

	if bi := actx.BudgetInfo; bi != nil {
		fmt.Fprintf(&b, "\nBudget status: total %.0f, spent %.0f, remaining %.0f.",
			bi.Total, bi.Spent, bi.Remaining)
	}

	if p := actx.Preferences; p != nil {
		var prefs []string
		if p.Theme != "" {
			prefs = append(prefs, "theme "+p.Theme)
		}
		if p.Season != "" {
			prefs = append(prefs, "season "+p.Season)
		}
		if p.BudgetRange != "" {
			prefs = append(prefs, "budget range "+p.BudgetRange)
		}
		if len(p.Locations) > 0 {
			prefs = append(prefs, "preferred locations "+strings.Join(p.Locations, ", "))
		}
		if len(prefs) > 0 {
			fmt.Fprintf(&b, "\nCouple's preferences: %s.", strings.Join(prefs, "; "))
		}
	}

	if actx.PlanningStage != "" {
		fmt.Fprintf(&b, "\nPlanning stage: %s.", actx.PlanningStage)
	}

	return b.String()
}
