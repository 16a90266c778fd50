package http

import (
	"github.com/gin-gonic/gin"

	"wedding-assistant/internal/assistant/orchestrator"
	"wedding-assistant/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	ChatStream(c *gin.Context)
	History(c *gin.Context)
	Clear(c *gin.Context)
}

type handler struct {
	l    log.Logger
	orch *orchestrator.Orchestrator
}

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, orch *orchestrator.Orchestrator) *handler {
	return &handler{
		l:    l,
		orch: orch,
	}
}

var _ Handler = (*handler)(nil)
