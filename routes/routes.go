package routes

import (
	"net/http"
	"time"

	"aria/handlers"
	"aria/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and password recovery.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.Auth.Signup)
		api.POST("/verify-otp", hb.Auth.VerifyOTP)
		api.POST("/login", hb.Auth.Login)
		api.POST("/forgot-password", hb.Auth.ForgotPassword)
		api.POST("/reset-password", hb.Auth.ResetPassword)
	}
}

// RegisterUserRoutes registers the authenticated user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.Auth.Profile)
		api.POST("/fcm-token", hb.Auth.SetFCMToken)
	}
}

// RegisterVoiceRoutes registers the command pipeline endpoints.
func RegisterVoiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/voice")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/command", hb.Voice.Command)
		api.POST("/parse", hb.Voice.Parse)
		api.POST("/transcribe", hb.Voice.Transcribe)
	}
}

// RegisterContactRoutes registers address book sync and lookup.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/contacts")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/sync", hb.Contact.Sync)
		api.GET("", hb.Contact.List)
		api.GET("/resolve", hb.Contact.Resolve)
	}
}

// RegisterUsageRoutes registers the telemetry endpoints.
func RegisterUsageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/usage")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.Usage.Me)
		api.POST("/increment", hb.Usage.Increment)
	}
}

// RegisterInboxRoutes registers the notification log endpoints.
func RegisterInboxRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/inbox")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/notify", hb.Inbox.Notify)
		api.GET("/recent", hb.Inbox.Recent)
	}
}

// RegisterDeviceRoutes registers the directive drain endpoint.
func RegisterDeviceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/device")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/directives", hb.Device.Directives)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Aria"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterVoiceRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterUsageRoutes(r, hb)
	RegisterInboxRoutes(r, hb)
	RegisterDeviceRoutes(r, hb)
}
