package http

import (
	"wedding-assistant/internal/assistant/orchestrator"
	"wedding-assistant/internal/model"
)

// --- Request DTOs ---

type chatReq struct {
	Message        string          `json:"message" binding:"required"`
	UserID         string          `json:"userId" binding:"required"`
	ConversationID string          `json:"conversationId"`
	WeddingID      string          `json:"weddingId"`
	PlanningStage  string          `json:"planningStage"`
	Preferences    *preferencesReq `json:"userPreferences"`
	BudgetInfo     *budgetInfoReq  `json:"budgetInfo"`
	EventDetails   *eventReq       `json:"eventDetails"`
}

type preferencesReq struct {
	Theme       string   `json:"theme"`
	Season      string   `json:"season"`
	BudgetRange string   `json:"budgetRange"`
	Locations   []string `json:"locations"`
}

type budgetInfoReq struct {
	Total     float64 `json:"total"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
}

type eventReq struct {
	WeddingDate string `json:"weddingDate"`
	City        string `json:"city"`
	VenueName   string `json:"venueName"`
	GuestCount  int    `json:"guestCount"`
}

func (r chatReq) toContext() orchestrator.AssistantContext {
	actx := orchestrator.AssistantContext{
		UserID:         r.UserID,
		ConversationID: r.ConversationID,
		WeddingID:      r.WeddingID,
		PlanningStage:  model.PlanningStage(r.PlanningStage),
	}
	if r.Preferences != nil {
		actx.Preferences = &orchestrator.UserPreferences{
			Theme:       r.Preferences.Theme,
			Season:      r.Preferences.Season,
			BudgetRange: r.Preferences.BudgetRange,
			Locations:   r.Preferences.Locations,
		}
	}
	if r.BudgetInfo != nil {
		actx.BudgetInfo = &orchestrator.BudgetInfo{
			Total:     r.BudgetInfo.Total,
			Spent:     r.BudgetInfo.Spent,
			Remaining: r.BudgetInfo.Remaining,
		}
	}
	if r.EventDetails != nil {
		actx.EventDetails = &orchestrator.EventDetails{
			WeddingDate: r.EventDetails.WeddingDate,
			City:        r.EventDetails.City,
			VenueName:   r.EventDetails.VenueName,
			GuestCount:  r.EventDetails.GuestCount,
		}
	}
	return actx
}

// --- Response DTOs ---

type chatResp struct {
	Message        string       `json:"message"`
	ConversationID string       `json:"conversationId"`
	ToolsUsed      []string     `json:"toolsUsed"`
	Suggestions    []string     `json:"suggestions"`
	Metadata       metadataResp `json:"metadata"`
}

type metadataResp struct {
	TokensUsed     int   `json:"tokensUsed"`
	ResponseTimeMs int64 `json:"responseTimeMs"`
}

func newChatResp(r *orchestrator.Response) chatResp {
	toolsUsed := r.ToolsUsed
	if toolsUsed == nil {
		toolsUsed = []string{}
	}
	suggestions := r.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	return chatResp{
		Message:        r.Message,
		ConversationID: r.ConversationID,
		ToolsUsed:      toolsUsed,
		Suggestions:    suggestions,
		Metadata: metadataResp{
			TokensUsed:     r.Metadata.TokensUsed,
			ResponseTimeMs: r.Metadata.ResponseTimeMs,
		},
	}
}

type historyResp struct {
	ConversationID string        `json:"conversationId"`
	Messages       []messageResp `json:"messages"`
}

type messageResp struct {
	Role         string `json:"role"`
	Content      string `json:"content"`
	FunctionName string `json:"functionName,omitempty"`
}

func newHistoryResp(id string, msgs []orchestrator.Message) historyResp {
	out := historyResp{ConversationID: id, Messages: make([]messageResp, 0, len(msgs))}
	for _, m := range msgs {
		out.Messages = append(out.Messages, messageResp{
			Role:         m.Role,
			Content:      m.Content,
			FunctionName: m.FunctionName,
		})
	}
	return out
}
