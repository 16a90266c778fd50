package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errMessageRequired = errors.New("message is required")

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (r chatReq) validate() error {
	if r.Message == "" {
		return errMessageRequired
	}
	return nil
}
