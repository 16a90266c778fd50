package orchestrator

import (
	"sync"

	"wedding-assistant/internal/model"
)

// AssistantContext is the per-call input bag. It is used only to build
// the system prompt and to scope tool execution; it is never stored.
type AssistantContext struct {
	UserID         string             `json:"userId"`
	ConversationID string             `json:"conversationId,omitempty"`
	WeddingID      string             `json:"weddingId,omitempty"`
	Preferences    *UserPreferences   `json:"userPreferences,omitempty"`
	BudgetInfo     *BudgetInfo        `json:"budgetInfo,omitempty"`
	EventDetails   *EventDetails      `json:"eventDetails,omitempty"`
	PlanningStage  model.PlanningStage `json:"planningStage,omitempty"`
}

// Scope returns the execution scope tools run under for this call.
func (c AssistantContext) Scope() model.Scope {
	return model.Scope{UserID: c.UserID, WeddingID: c.WeddingID}
}

// UserPreferences mirrors the couple's stored preferences for prompting.
type UserPreferences struct {
	Theme       string   `json:"theme,omitempty"`
	Season      string   `json:"season,omitempty"`
	BudgetRange string   `json:"budgetRange,omitempty"`
	Locations   []string `json:"locations,omitempty"`
}

// BudgetInfo carries live budget numbers for the system prompt.
type BudgetInfo struct {
	Total     float64 `json:"total"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
}

// EventDetails carries known wedding facts for the system prompt.
type EventDetails struct {
	WeddingDate string `json:"weddingDate,omitempty"` // YYYY-MM-DD
	City        string `json:"city,omitempty"`
	VenueName   string `json:"venueName,omitempty"`
	GuestCount  int    `json:"guestCount,omitempty"`
}

// Message is one entry of a conversation's sliding window.
type Message struct {
	Role         string `json:"role"` // user, assistant, function
	Content      string `json:"content"`
	FunctionName string `json:"functionName,omitempty"`
}

// Conversation owns one id's message window. Turns on the same id are
// serialized by mu; concurrent turns on different ids do not contend.
type Conversation struct {
	ID string

	mu       sync.Mutex
	messages []Message
}

// Metadata reports per-turn accounting.
type Metadata struct {
	TokensUsed     int   `json:"tokensUsed"`
	ResponseTimeMs int64 `json:"responseTimeMs"`
}

// Response is the outcome of one chat turn. A Response is always
// produced; failures surface as the fallback message, never as an error.
type Response struct {
	Message        string   `json:"message"`
	ConversationID string   `json:"conversationId"`
	ToolsUsed      []string `json:"toolsUsed,omitempty"`
	Suggestions    []string `json:"suggestions"`
	Metadata       Metadata `json:"metadata"`
}

// StreamEventKind discriminates streaming frames.
type StreamEventKind string

const (
	// StreamTextDelta carries an incremental fragment of assistant text.
	StreamTextDelta StreamEventKind = "text_delta"
	// StreamToolCall announces the tool being executed for this turn.
	StreamToolCall StreamEventKind = "tool_call"
	// StreamCompleted is the terminal frame carrying the full Response.
	StreamCompleted StreamEventKind = "completed"
)

// StreamEvent is one frame of a streaming chat turn. The channel always
// ends with exactly one StreamCompleted frame.
type StreamEvent struct {
	Kind      StreamEventKind `json:"kind"`
	TextDelta string          `json:"textDelta,omitempty"`
	ToolName  string          `json:"toolName,omitempty"`
	Response  *Response       `json:"response,omitempty"`
}
