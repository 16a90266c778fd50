package tools

import (
	"context"
	"fmt"

	"wedding-assistant/internal/assistant"
	"wedding-assistant/internal/model"
	"wedding-assistant/internal/planning"
	"wedding-assistant/pkg/log"
)

// AddChecklistTaskTool creates a planning checklist task.
type AddChecklistTaskTool struct {
	planning planning.API
	l        log.Logger
}

func NewAddChecklistTaskTool(p planning.API, l log.Logger) *AddChecklistTaskTool {
	return &AddChecklistTaskTool{planning: p, l: l}
}

func (t *AddChecklistTaskTool) Name() string {
	return "add_checklist_task"
}

func (t *AddChecklistTaskTool) Description() string {
	return "Add a task to the wedding planning checklist. Use when the user wants to remember to do something."
}

func (t *AddChecklistTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"title": map[string]interface{}{
				"type":        "string",
				"description": "Short task title, e.g. 'Book the caterer'",
			},
			"category": map[string]interface{}{
				"type":        "string",
				"description": "Planning category: Venue, Catering, Photography, Attire, Decor, Music, Other",
			},
			"priority": map[string]interface{}{
				"type":        "string",
				"description": "Task priority: low, medium, high",
			},
			"due_date": map[string]interface{}{
				"type":        "string",
				"description": "Optional due date in YYYY-MM-DD format",
			},
		},
		"required": []string{"title"},
	}
}

type addChecklistTaskInput struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Priority string `json:"priority"`
	DueDate  string `json:"due_date"`
}

func (t *AddChecklistTaskTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (*assistant.ToolResult, error) {
	input, err := parseParams[addChecklistTaskInput](params)
	if err != nil {
		return nil, err
	}

	t.l.Infof(ctx, "add_checklist_task: user=%s title=%q", sc.UserID, input.Title)

	task, err := t.planning.CreateChecklistTask(ctx, sc, planning.CreateChecklistTaskRequest{
		Title:    input.Title,
		Category: input.Category,
		Priority: input.Priority,
		DueDate:  input.DueDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add checklist task: %w", err)
	}

	message := fmt.Sprintf("Added task: %q", task.Title)
	if task.Category != "" {
		message = fmt.Sprintf("Added task: %q to %s", task.Title, task.Category)
	}

	return &assistant.ToolResult{Data: task, Message: message}, nil
}

// CompleteChecklistTaskTool marks a checklist task done.
type CompleteChecklistTaskTool struct {
	planning planning.API
	l        log.Logger
}

func NewCompleteChecklistTaskTool(p planning.API, l log.Logger) *CompleteChecklistTaskTool {
	return &CompleteChecklistTaskTool{planning: p, l: l}
}

func (t *CompleteChecklistTaskTool) Name() string {
	return "complete_checklist_task"
}

func (t *CompleteChecklistTaskTool) Description() string {
	return "Mark a checklist task as completed by its id."
}

func (t *CompleteChecklistTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"task_id": map[string]interface{}{
				"type":        "string",
				"description": "Id of the checklist task to complete",
			},
		},
		"required": []string{"task_id"},
	}
}

type completeChecklistTaskInput struct {
	TaskID string `json:"task_id"`
}

func (t *CompleteChecklistTaskTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (*assistant.ToolResult, error) {
	input, err := parseParams[completeChecklistTaskInput](params)
	if err != nil {
		return nil, err
	}

	task, err := t.planning.CompleteChecklistTask(ctx, sc, input.TaskID)
	if err != nil {
		return nil, fmt.Errorf("failed to complete checklist task: %w", err)
	}

	return &assistant.ToolResult{
		Data:    task,
		Message: fmt.Sprintf("Marked %q as done", task.Title),
	}, nil
}

// RemoveChecklistTaskTool deletes a checklist task.
type RemoveChecklistTaskTool struct {
	planning planning.API
	l        log.Logger
}

func NewRemoveChecklistTaskTool(p planning.API, l log.Logger) *RemoveChecklistTaskTool {
	return &RemoveChecklistTaskTool{planning: p, l: l}
}

func (t *RemoveChecklistTaskTool) Name() string {
	return "remove_checklist_task"
}

func (t *RemoveChecklistTaskTool) Description() string {
	return "Remove a task from the checklist by its id."
}

func (t *RemoveChecklistTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"task_id": map[string]interface{}{
				"type":        "string",
				"description": "Id of the checklist task to remove",
			},
		},
		"required": []string{"task_id"},
	}
}

type removeChecklistTaskInput struct {
	TaskID string `json:"task_id"`
}

func (t *RemoveChecklistTaskTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (*assistant.ToolResult, error) {
	input, err := parseParams[removeChecklistTaskInput](params)
	if err != nil {
		return nil, err
	}

	if err := t.planning.DeleteChecklistTask(ctx, sc, input.TaskID); err != nil {
		return nil, fmt.Errorf("failed to remove checklist task: %w", err)
	}

	return &assistant.ToolResult{Message: "Removed the task from your checklist"}, nil
}

// GetChecklistTasksTool lists checklist tasks.
type GetChecklistTasksTool struct {
	planning planning.API
	l        log.Logger
}

func NewGetChecklistTasksTool(p planning.API, l log.Logger) *GetChecklistTasksTool {
	return &GetChecklistTasksTool{planning: p, l: l}
}

func (t *GetChecklistTasksTool) Name() string {
	return "get_checklist_tasks"
}

func (t *GetChecklistTasksTool) Description() string {
	return "List checklist tasks, optionally filtered by category or completion state."
}

func (t *GetChecklistTasksTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"category": map[string]interface{}{
				"type":        "string",
				"description": "Optional category filter",
			},
			"completed": map[string]interface{}{
				"type":        "boolean",
				"description": "Optional completion filter: true for done tasks, false for pending",
			},
		},
		"required": []string{},
	}
}

type getChecklistTasksInput struct {
	Category  string `json:"category"`
	Completed *bool  `json:"completed"`
}

func (t *GetChecklistTasksTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (*assistant.ToolResult, error) {
	input, err := parseParams[getChecklistTasksInput](params)
	if err != nil {
		return nil, err
	}

	tasks, err := t.planning.ListChecklistTasks(ctx, sc, planning.ListChecklistTasksRequest{
		Category:  input.Category,
		Completed: input.Completed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch checklist tasks: %w", err)
	}

	pending := 0
	for _, task := range tasks {
		if !task.Completed {
			pending++
		}
	}

	return &assistant.ToolResult{
		Data:    tasks,
		Message: fmt.Sprintf("Found %d tasks (%d pending)", len(tasks), pending),
	}, nil
}

var (
	_ assistant.Tool = (*AddChecklistTaskTool)(nil)
	_ assistant.Tool = (*CompleteChecklistTaskTool)(nil)
	_ assistant.Tool = (*RemoveChecklistTaskTool)(nil)
	_ assistant.Tool = (*GetChecklistTasksTool)(nil)
)
