package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aria/config"
	"aria/cron"
	"aria/database"
	calendarRepoPkg "aria/database/repository/calendar"
	contactRepoPkg "aria/database/repository/contact"
	usageRepoPkg "aria/database/repository/usage"
	userRepoPkg "aria/database/repository/user"
	"aria/handlers"
	"aria/routes"
	"aria/services/calendar"
	"aria/services/contacts"
	"aria/services/device"
	"aria/services/inbox"
	"aria/services/usage"
	"aria/services/user"
	"aria/services/voice"
	"aria/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	contactRepo := contactRepoPkg.NewMongoContactRepo()
	calendarRepo := calendarRepoPkg.NewMongoCalendarRepo()
	usageRepo := usageRepoPkg.NewMongoUsageRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	contactService := &contacts.DefaultContactService{
		Repo: contactRepo,
	}
	calendarService := &calendar.DefaultCalendarService{
		Repo: calendarRepo,
	}
	usageService := &usage.DefaultUsageService{
		Repo: usageRepo,
	}
	tracker := usage.NewTracker(usageService)
	notificationLog := inbox.NewLog()

	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDirectiveDB,
	})
	gateway := device.NewDirectiveGateway(utils.GetDirectiveQueueClient(), taskClient)

	voiceService := &voice.DefaultVoiceService{
		Parser:    voice.NewParser(),
		Contacts:  contactService,
		Calendar:  calendarService,
		Messenger: gateway,
		Dialer:    gateway,
		Cab:       gateway,
		Launcher:  gateway,
		Speaker:   gateway,
		Inbox:     notificationLog,
		Usage:     tracker,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,
		Auth:     &handlers.AuthHandler{Svc: userService, Tracker: tracker, Logger: logger},
		Voice:    &handlers.VoiceHandler{Svc: voiceService, Logger: logger},
		Contact:  &handlers.ContactHandler{Svc: contactService, Logger: logger},
		Usage:    &handlers.UsageHandler{Svc: usageService, Logger: logger},
		Inbox:    &handlers.InboxHandler{Log: notificationLog, Logger: logger},
		Device:   &handlers.DeviceHandler{Gateway: gateway, Logger: logger},
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background worker for directive push nudges.
	cron.InitDirectiveWorker(userRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	if err := taskClient.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close task client: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
