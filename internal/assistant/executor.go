package assistant

import (
	"context"
	"fmt"

	"wedding-assistant/internal/model"
	"wedding-assistant/pkg/log"
)

// Executor runs exactly one tool call and normalizes every outcome into
// an ExecutionResult. It is bound to the scope it was built for; a new
// Executor is constructed per conversation turn.
type Executor struct {
	registry *ToolRegistry
	sc       model.Scope
	l        log.Logger
}

// NewExecutor creates an Executor scoped to the given user/wedding.
func NewExecutor(registry *ToolRegistry, sc model.Scope, l log.Logger) *Executor {
	return &Executor{
		registry: registry,
		sc:       sc,
		l:        l,
	}
}

// Execute dispatches by exact tool name. It never returns an error and
// never panics past its boundary: unknown tools, schema violations,
// handler errors, and panics all become failed results.
func (e *Executor) Execute(ctx context.Context, name string, params map[string]interface{}) (result ExecutionResult) {
	defer func() {
		if r := recover(); r != nil {
			e.l.Errorf(ctx, "executor: tool %s panicked: %v", name, r)
			result = ExecutionResult{Success: false, Error: fmt.Sprintf("tool %s failed: %v", name, r)}
		}
	}()

	tool, ok := e.registry.Get(name)
	if !ok {
		return ExecutionResult{Success: false, Error: fmt.Sprintf("Unknown tool: %s", name)}
	}

	if err := validateParams(tool.Parameters(), params); err != nil {
		return ExecutionResult{Success: false, Error: err.Error()}
	}

	e.l.Infof(ctx, "executor: running tool %s for user %s", name, e.sc.UserID)

	out, err := tool.Execute(ctx, e.sc, params)
	if err != nil {
		e.l.Warnf(ctx, "executor: tool %s failed: %v", name, err)
		return ExecutionResult{Success: false, Error: err.Error()}
	}

	result = ExecutionResult{Success: true}
	if out != nil {
		result.Data = out.Data
		result.Message = out.Message
	}
	return result
}

// validateParams checks the model's arguments against the tool schema
// before dispatch: every required field must be present and no unknown
// field is accepted. The model's output is untrusted input.
func validateParams(schema, params map[string]interface{}) error {
	properties, _ := schema["properties"].(map[string]interface{})

	if required, ok := schema["required"].([]string); ok {
		for _, field := range required {
			if _, present := params[field]; !present {
				return fmt.Errorf("missing required parameter: %s", field)
			}
		}
	}

	for key := range params {
		if _, known := properties[key]; !known {
			return fmt.Errorf("unknown parameter: %s", key)
		}
	}

	return nil
}
