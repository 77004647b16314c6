package handlers

import (
	"net/http"
	"strconv"

	"aria/models"
	"aria/services/inbox"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InboxHandler receives messaging notifications relayed by the device.
type InboxHandler struct {
	Log    *inbox.Log
	Logger *zap.Logger
}

// Notify handles POST /api/inbox/notify. The device posts each messaging
// notification it observes so later voice queries can answer from the log.
func (h *InboxHandler) Notify(c *gin.Context) {
	if _, exists := c.Get("userID"); !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Sender    string `json:"sender" binding:"required"`
		Text      string `json:"text" binding:"required"`
		App       string `json:"app" binding:"required"`
		Timestamp int64  `json:"timestamp"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	h.Log.Record(models.LoggedMessage{
		Sender:    req.Sender,
		Text:      req.Text,
		App:       req.App,
		Timestamp: req.Timestamp,
	})
	c.JSON(http.StatusOK, gin.H{"message": "recorded"})
}

// Recent handles GET /api/inbox/recent?since=<epoch millis>.
func (h *InboxHandler) Recent(c *gin.Context) {
	if _, exists := c.Get("userID"); !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var since int64
	if raw := c.Query("since"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "since must be epoch milliseconds"})
			return
		}
		since = parsed
	}
	c.JSON(http.StatusOK, gin.H{"messages": h.Log.MessagesAfter(since)})
}
