package handlers

import (
	"net/http"

	"aria/services/usage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UsageHandler serves feature usage counters.
type UsageHandler struct {
	Svc    usage.UsageService
	Logger *zap.Logger
}

// Me handles GET /api/usage/me.
func (h *UsageHandler) Me(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stats, err := h.Svc.Stats(c.Request.Context(), userID.(string))
	if err != nil {
		h.Logger.Error("Me: failed to fetch usage stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch usage stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Increment handles POST /api/usage/increment. Clients report feature use
// that happens entirely on-device.
func (h *UsageHandler) Increment(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Feature string `json:"feature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Svc.Increment(c.Request.Context(), userID.(string), req.Feature); err != nil {
		h.Logger.Error("Increment: failed to record usage", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record usage"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recorded"})
}
