package http

import (
	"github.com/gin-gonic/gin"

	"wedding-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Chat
// routes are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)
	rg.POST("/chat/stream", mw.RateLimit(), h.ChatStream)

	conversations := rg.Group("/conversations")
	{
		conversations.GET("/:id/history", h.History)
		conversations.DELETE("/:id", h.Clear)
	}
}
