package assistant

import (
	"context"

	"wedding-assistant/internal/model"
	"wedding-assistant/pkg/llmprovider"
)

// Tool represents an assistant tool that can be called by the LLM.
type Tool interface {
	// Name returns the tool name (used in function calling).
	Name() string

	// Description returns what the tool does (for the LLM).
	Description() string

	// Parameters returns the JSON schema for tool parameters.
	Parameters() map[string]interface{}

	// Execute runs the tool for the given scope with already-parsed
	// arguments.
	Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (*ToolResult, error)
}

// ToolResult is what a successful tool run produces: the structured data
// for the model to narrate plus a short human-readable confirmation.
type ToolResult struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ExecutionResult is the normalized outcome of one tool call. Failures
// are data, not errors: the executor never lets an error escape, since it
// sits inline in a conversation turn that must always produce an outcome.
type ExecutionResult struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Category is a derived grouping of tools used for keyword selection.
type Category string

const (
	CategoryChecklist   Category = "CHECKLIST"
	CategoryBudget      Category = "BUDGET"
	CategoryTimeline    Category = "TIMELINE"
	CategoryGuests      Category = "GUESTS"
	CategorySearch      Category = "SEARCH"
	CategoryPreferences Category = "PREFERENCES"
	CategoryExport      Category = "EXPORT"
)

// ToFunctionDefinition converts a tool to the LLM function calling format.
func ToFunctionDefinition(tool Tool) llmprovider.Tool {
	return llmprovider.Tool{
		Name:        tool.Name(),
		Description: tool.Description(),
		Parameters:  tool.Parameters(),
	}
}
