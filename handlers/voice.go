package handlers

import (
	"net/http"
	"strings"

	"aria/services/voice"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VoiceHandler exposes the command pipeline over HTTP.
type VoiceHandler struct {
	Svc    voice.VoiceService
	Logger *zap.Logger
}

type commandRequest struct {
	Text string `json:"text" binding:"required"`
}

// Command handles POST /api/voice/command. It classifies the utterance and
// executes the resulting intent for the authenticated user.
func (h *VoiceHandler) Command(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req commandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Error("Command: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text must not be empty"})
		return
	}

	intent := h.Svc.Parse(text)
	result := h.Svc.Dispatch(c.Request.Context(), userID.(string), intent)

	resp := gin.H{
		"kind":          intent.Kind(),
		"intent":        intent,
		"confirmations": result.Confirmations,
		"success":       result.Success,
	}
	if result.FailureReason != "" {
		resp["failureReason"] = result.FailureReason
	}
	c.JSON(http.StatusOK, resp)
}

// Parse handles POST /api/voice/parse. It classifies an utterance without
// executing it, which clients use for previews and debugging.
func (h *VoiceHandler) Parse(c *gin.Context) {
	var req commandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	intent := h.Svc.Parse(strings.TrimSpace(req.Text))
	c.JSON(http.StatusOK, gin.H{
		"kind":   intent.Kind(),
		"intent": intent,
	})
}
