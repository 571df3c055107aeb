package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-server/internal/chat"
	"clinic-server/internal/utils"
)

// ChatHandler serves the public site's chat widget.
type ChatHandler struct{}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler() *ChatHandler {
	return &ChatHandler{}
}

// ChatRequest represents a visitor message.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Reply classifies the message against the rule table and returns the
// canned response. Stateless: no conversation memory is kept.
func (h *ChatHandler) Reply(c *gin.Context) {
	var req ChatRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": chat.Reply(req.Message)})
}
