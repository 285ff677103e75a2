// File: synkt/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"synkt/config"
	"synkt/cron"
	"synkt/database"
	availabilityRepoPkg "synkt/database/repository/availability"
	groupRepoPkg "synkt/database/repository/group"
	userRepoPkg "synkt/database/repository/user"
	"synkt/handlers"
	"synkt/middleware"
	"synkt/routes"
	"synkt/services/calendar"
	"synkt/services/group"
	"synkt/services/scheduling"
	"synkt/services/user"
	"synkt/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	availRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	groupRepo := groupRepoPkg.NewMongoGroupRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	calendarService := &calendar.DefaultCalendarService{
		Repo:     availRepo,
		Provider: calendar.NoopProvider{},
	}

	schedulingEngine := &scheduling.DefaultSchedulingEngine{
		Users:        userRepo,
		Availability: availRepo,
		Policy:       scheduling.DefaultPolicy(),
	}

	groupService := &group.DefaultGroupService{
		Repo:               groupRepo,
		Engine:             schedulingEngine,
		DurationMinutes:    config.AppConfig.DefaultDurationMinutes,
		ProposedTimesLimit: config.AppConfig.ProposedTimesLimit,
	}

	// Background calendar-sync worker and its enqueue client.
	cron.InitSyncWorker(calendarService)
	syncClient := cron.NewSyncClient()
	defer syncClient.Close()

	// handlers.
	calendarHandler := handlers.NewCalendarHandler(calendarService, schedulingEngine, utils.GetCacheClient(), syncClient)
	groupHandler := handlers.NewGroupHandler(groupService)
	userHandler := handlers.NewUserHandler(userService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Calendar endpoints.
		GetAvailabilityHandler:  calendarHandler.GetAvailabilityHandler,
		SaveAvailabilityHandler: calendarHandler.SaveAvailabilityHandler,
		GenerateMockHandler:     calendarHandler.GenerateMockHandler,
		SyncCalendarHandler:     calendarHandler.SyncCalendarHandler,
		FindBestTimesHandler:    calendarHandler.FindBestTimesHandler,

		// Group endpoints.
		CreateGroupHandler:        groupHandler.CreateGroupHandler,
		GetGroupHandler:           groupHandler.GetGroupHandler,
		GetGroupsByUserHandler:    groupHandler.GetGroupsByUserHandler,
		AddGroupMemberHandler:     groupHandler.AddGroupMemberHandler,
		CalculateBestTimesHandler: groupHandler.CalculateBestTimesHandler,
		VoteHandler:               groupHandler.VoteHandler,

		// User endpoints.
		CreateUserHandler:     userHandler.CreateUserHandler,
		GetUserByIDHandler:    userHandler.GetUserByIDHandler,
		GetUserByEmailHandler: userHandler.GetUserByEmailHandler,
		UpdateUserHandler:     userHandler.UpdateUserHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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

	logger.Sugar().Info("main: server stopped gracefully")
}
