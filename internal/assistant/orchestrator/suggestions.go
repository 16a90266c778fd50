package orchestrator

import "wedding-assistant/internal/model"

// toolSuggestions keys follow-up prompts on the tool that fired.
var toolSuggestions = map[string][]string{
	"add_checklist_task":     {"Show me my pending tasks", "What should I prioritize next?"},
	"complete_checklist_task": {"What's left on my checklist?", "Generate a timeline for the rest"},
	"remove_checklist_task":  {"Show me my checklist"},
	"get_checklist_tasks":    {"Add a new task", "What should I book first?"},
	"add_budget_item":        {"What's my budget status?", "Where can I save money?"},
	"update_budget_item":     {"Show my budget summary"},
	"get_budget_summary":     {"Add a budget item", "Find vendors within my budget"},
	"set_total_budget":       {"Break my budget down by category", "Find venues in my budget"},
	"add_timeline_milestone": {"Show my full timeline", "What's my next deadline?"},
	"generate_timeline":      {"Add the first milestone to my checklist", "What should I book first?"},
	"add_guest":              {"How many guests so far?", "Add another guest"},
	"update_rsvp_status":     {"Show my guest count", "Who hasn't responded yet?"},
	"get_guest_count":        {"Add a guest", "Send reminders to pending guests"},
	"search_venues":          {"Show me more venues", "Compare these venues", "What's my venue budget?"},
	"search_vendors":         {"Show me more vendors", "Find vendors in another category"},
	"get_recommendations":    {"Tell me more about the first one", "Refine my preferences"},
	"update_preferences":     {"Get recommendations based on my preferences", "Find matching venues"},
	"export_planning_data":   {"What's still pending on my checklist?"},
}

// stageSuggestions pad by planning stage when a tool fired.
var stageSuggestions = map[model.PlanningStage]string{
	model.StageJustEngaged:  "Help me set a total budget",
	model.StageBooking:      "Find photographers near me",
	model.StageFinalizing:   "Check my RSVP status",
	model.StageWeddingMonth: "What's due this week?",
}

// noToolSuggestions apply when the turn was pure conversation.
var noToolSuggestions = []string{
	"Show me my planning checklist",
	"What's my budget status?",
	"Find venues near me",
	"Generate my wedding timeline",
}

// deriveSuggestions picks 0-4 follow-up prompts keyed on the fired tool
// and the planning stage. Advisory only.
func deriveSuggestions(firedTool string, stage model.PlanningStage) []string {
	if firedTool == "" {
		return noToolSuggestions
	}

	out := append([]string{}, toolSuggestions[firedTool]...)
	if s, ok := stageSuggestions[stage]; ok {
		out = append(out, s)
	}
	if len(out) > 4 {
		out = out[:4]
	}
	return out
}
