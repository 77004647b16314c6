package handlers

import (
	"net/http"

	"aria/models"
	"aria/services/contacts"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler serves address book sync and lookup.
type ContactHandler struct {
	Svc    contacts.ContactService
	Logger *zap.Logger
}

// Sync handles POST /api/contacts/sync. The device pushes its full address
// book; the stored copy is replaced wholesale.
func (h *ContactHandler) Sync(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Contacts []models.Contact `json:"contacts" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Svc.SyncContacts(c.Request.Context(), userID.(string), req.Contacts); err != nil {
		h.Logger.Error("Sync: failed to replace contacts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sync contacts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"synced": len(req.Contacts)})
}

// List handles GET /api/contacts.
func (h *ContactHandler) List(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	all, err := h.Svc.ListContacts(c.Request.Context(), userID.(string))
	if err != nil {
		h.Logger.Error("List: failed to fetch contacts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch contacts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": all})
}

// Resolve handles GET /api/contacts/resolve?name=. It runs the same fuzzy
// match used during dispatch, which is handy for client-side previews.
func (h *ContactHandler) Resolve(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name query parameter is required"})
		return
	}

	match, err := h.Svc.FindContact(c.Request.Context(), userID.(string), name)
	if err != nil {
		h.Logger.Error("Resolve: lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	if match == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no matching contact"})
		return
	}
	c.JSON(http.StatusOK, match)
}
