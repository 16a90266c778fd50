package assistant

import (
	"strings"

	"wedding-assistant/pkg/llmprovider"
)

// categorySubstrings maps each category to the name substrings that place
// a tool in it, evaluated in this fixed order. A tool whose name matches
// no substring belongs to no category and is only ever offered to the
// model through the full catalog, never through keyword selection. Keep
// this table in sync when adding tools.
var categorySubstrings = []struct {
	category   Category
	substrings []string
}{
	{CategoryChecklist, []string{"checklist"}},
	{CategoryBudget, []string{"budget"}},
	{CategoryTimeline, []string{"timeline"}},
	{CategoryGuests, []string{"guest", "rsvp"}},
	{CategorySearch, []string{"search", "recommendations"}},
	{CategoryPreferences, []string{"preferences"}},
	{CategoryExport, []string{"export"}},
}

// ToolRegistry holds the fixed tool catalog. The catalog is assembled at
// startup and read-only afterwards; category views are derived once on
// first access.
type ToolRegistry struct {
	tools   map[string]Tool
	ordered []Tool

	categories map[Category][]Tool
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry, preserving insertion order.
// A duplicate name is ignored: the first registration wins.
func (r *ToolRegistry) Register(tool Tool) {
	if _, exists := r.tools[tool.Name()]; exists {
		return
	}
	r.tools[tool.Name()] = tool
	r.ordered = append(r.ordered, tool)
	r.categories = nil
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools in insertion order.
func (r *ToolRegistry) List() []Tool {
	out := make([]Tool, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Categories returns the derived category views, computed by substring
// match on tool names.
func (r *ToolRegistry) Categories() map[Category][]Tool {
	if r.categories == nil {
		r.categories = make(map[Category][]Tool)
		for _, tool := range r.ordered {
			name := strings.ToLower(tool.Name())
			for _, cs := range categorySubstrings {
				for _, sub := range cs.substrings {
					if strings.Contains(name, sub) {
						r.categories[cs.category] = append(r.categories[cs.category], tool)
						break
					}
				}
			}
		}
	}
	return r.categories
}

// CategoryTools returns the tools of one category, nil if empty.
func (r *ToolRegistry) CategoryTools(c Category) []Tool {
	return r.Categories()[c]
}

// ToFunctionDefinitions converts all tools to the LLM function calling
// format, in insertion order.
func (r *ToolRegistry) ToFunctionDefinitions() []llmprovider.Tool {
	defs := make([]llmprovider.Tool, 0, len(r.ordered))
	for _, tool := range r.ordered {
		defs = append(defs, ToFunctionDefinition(tool))
	}
	return defs
}
