package http

import (
	"io"

	"github.com/gin-gonic/gin"

	"wedding-assistant/internal/assistant/orchestrator"
	"wedding-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a message to the wedding assistant
// @Description Runs one conversational turn: the assistant may call planning tools and returns a narrated reply with follow-up suggestions.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat request"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/assistant/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := h.orch.Chat(ctx, req.Message, req.toContext())
	response.OK(c, newChatResp(resp))
}

// ChatStream godoc
// @Summary     Send a message and stream the reply
// @Description Same turn semantics as /chat, delivered as Server-Sent Events: text deltas, an optional tool_call event, then a terminal completed event with the full response.
// @Tags        Assistant
// @Accept      json
// @Produce     text/event-stream
// @Param       body body chatReq true "Chat request"
// @Success     200 {string} string "SSE stream"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/assistant/chat/stream [POST]
func (h *handler) ChatStream(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	events := h.orch.StreamChat(ctx, req.Message, req.toContext())
	c.Stream(func(w io.Writer) bool {
		ev, ok := <-events
		if !ok {
			return false
		}
		switch ev.Kind {
		case orchestrator.StreamTextDelta:
			c.SSEvent("delta", gin.H{"text": ev.TextDelta})
		case orchestrator.StreamToolCall:
			c.SSEvent("tool_call", gin.H{"tool": ev.ToolName})
		case orchestrator.StreamCompleted:
			c.SSEvent("completed", newChatResp(ev.Response))
		}
		return true
	})
}

// History godoc
// @Summary     Get conversation history
// @Description Returns the current sliding-window history for a conversation id, or an empty list for an unknown id.
// @Tags        Assistant
// @Produce     json
// @Param       id path string true "Conversation ID"
// @Success     200 {object} historyResp
// @Router      /api/v1/assistant/conversations/{id}/history [GET]
func (h *handler) History(c *gin.Context) {
	id := c.Param("id")
	response.OK(c, newHistoryResp(id, h.orch.GetConversationHistory(id)))
}

// Clear godoc
// @Summary     Clear a conversation
// @Description Deletes the stored history for a conversation id. Clearing an unknown id succeeds.
// @Tags        Assistant
// @Produce     json
// @Param       id path string true "Conversation ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/assistant/conversations/{id} [DELETE]
func (h *handler) Clear(c *gin.Context) {
	id := c.Param("id")
	h.orch.ClearConversation(id)
	response.OK(c, gin.H{"cleared": id})
}
