package orchestrator

import (
	"strings"

	"wedding-assistant/internal/assistant"
	"wedding-assistant/pkg/llmprovider"
)

// selectionRule maps message keywords to a tool category. Rules are
// evaluated in order; every matching rule contributes its category.
type selectionRule struct {
	keywords []string
	category assistant.Category
}

// selectionRules is the fixed keyword table. SEARCH and PREFERENCES are
// always included as a baseline regardless of keywords, so they carry no
// rule for their own names.
var selectionRules = []selectionRule{
	{keywords: []string{"checklist", "task", "todo", "to-do", "to do"}, category: assistant.CategoryChecklist},
	{keywords: []string{"budget", "cost", "spend", "spent", "price", "expense", "money"}, category: assistant.CategoryBudget},
	{keywords: []string{"timeline", "milestone", "schedule", "deadline", "when should"}, category: assistant.CategoryTimeline},
	{keywords: []string{"guest", "rsvp", "invite", "invitation"}, category: assistant.CategoryGuests},
	{keywords: []string{"export", "download", "pdf"}, category: assistant.CategoryExport},
}

// singleToolRules surface one specific tool rather than a whole category.
var singleToolRules = []struct {
	keywords []string
	toolName string
}{
	{keywords: []string{"venue", "hall", "banquet", "resort", "lawn"}, toolName: "search_venues"},
	{keywords: []string{"vendor", "photographer", "caterer", "decorator", "makeup", "mehendi"}, toolName: "search_vendors"},
}

// selectTools picks the tool subset offered to the model for one turn.
// Selection is a pure function of the lowercased message text: the union
// of every matching rule's tools plus the SEARCH and PREFERENCES
// baseline, deduplicated, in registry insertion order.
func (o *Orchestrator) selectTools(message string) []llmprovider.Tool {
	lowered := strings.ToLower(message)

	selected := map[string]bool{}
	for _, t := range o.registry.CategoryTools(assistant.CategorySearch) {
		selected[t.Name()] = true
	}
	for _, t := range o.registry.CategoryTools(assistant.CategoryPreferences) {
		selected[t.Name()] = true
	}

	for _, rule := range selectionRules {
		if containsAny(lowered, rule.keywords) {
			for _, t := range o.registry.CategoryTools(rule.category) {
				selected[t.Name()] = true
			}
		}
	}
	for _, rule := range singleToolRules {
		if containsAny(lowered, rule.keywords) {
			selected[rule.toolName] = true
		}
	}

	var out []llmprovider.Tool
	for _, t := range o.registry.List() {
		if selected[t.Name()] {
			out = append(out, assistant.ToFunctionDefinition(t))
		}
	}
	return out
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
