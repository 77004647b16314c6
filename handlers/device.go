package handlers

import (
	"net/http"

	"aria/services/device"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DeviceHandler lets a device drain its pending automation directives.
type DeviceHandler struct {
	Gateway *device.DirectiveGateway
	Logger  *zap.Logger
}

// Directives handles GET /api/device/directives. The device calls this on
// each FCM nudge (and on reconnect) and executes what it receives in order.
func (h *DeviceHandler) Directives(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	directives, err := h.Gateway.Drain(c.Request.Context(), userID.(string))
	if err != nil {
		h.Logger.Error("Directives: failed to drain queue", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch directives"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"directives": directives})
}
