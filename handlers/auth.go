package handlers

import (
	"net/http"

	"aria/services/usage"
	"aria/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves registration, login and password recovery.
type AuthHandler struct {
	Svc     user.UserService
	Tracker *usage.Tracker
	Logger  *zap.Logger
}

// Signup handles POST /api/auth/signup. It stages a pending registration
// and emails a verification OTP.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Svc.InitiateRegistration(req.Name, req.Email, req.Password); err != nil {
		h.Logger.Error("Signup failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OTP sent, verify to complete registration"})
}

// VerifyOTP handles POST /api/auth/verify-otp and completes registration.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
		OTP   string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	registered, err := h.Svc.CompleteRegistration(req.Email, req.OTP)
	if err != nil {
		h.Logger.Error("OTP verification failed", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":    registered.ID,
		"name":  registered.Name,
		"email": registered.Email,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	token, usr, err := h.Svc.Authenticate(req.Email, req.Password)
	if err != nil {
		h.Logger.Error("Login failed", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	// Telemetry starts once a real session exists.
	if h.Tracker != nil {
		h.Tracker.Arm()
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    usr.ID,
			"name":  usr.Name,
			"email": usr.Email,
		},
	})
}

// ForgotPassword handles POST /api/auth/forgot-password.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Svc.ForgotPassword(req.Email); err != nil {
		h.Logger.Error("ForgotPassword failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "request failed, please try again"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "if the account exists, an OTP has been sent"})
}

// ResetPassword handles POST /api/auth/reset-password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req struct {
		Email       string `json:"email" binding:"required,email"`
		OTP         string `json:"otp" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Svc.ResetPassword(req.Email, req.OTP, req.NewPassword); err != nil {
		h.Logger.Error("ResetPassword failed", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

// Profile handles GET /api/users/me.
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	usr, err := h.Svc.GetUserByID(userID.(string))
	if err != nil {
		h.Logger.Error("Profile: failed to fetch user", zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":    usr.ID,
		"name":  usr.Name,
		"email": usr.Email,
	})
}

// SetFCMToken handles POST /api/users/fcm-token.
func (h *AuthHandler) SetFCMToken(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Svc.SetFCMToken(userID.(string), req.Token); err != nil {
		h.Logger.Error("SetFCMToken failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "token stored"})
}
