// File: lacquer/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lacquer/config"
	"lacquer/cron"
	"lacquer/database"
	"lacquer/database/repository"
	"lacquer/handlers"
	"lacquer/middleware"
	"lacquer/routes"
	"lacquer/services/appointment"
	"lacquer/services/auth"
	"lacquer/services/availability"
	"lacquer/services/blocked"
	"lacquer/services/catalog"
	"lacquer/services/hours"
	"lacquer/services/notification"
	"lacquer/services/tasks"
	"lacquer/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	aptRepo := repository.NewGormAppointmentRepository(database.DB)
	blockedRepo := repository.NewGormBlockedDateRepository(database.DB)
	hoursRepo := repository.NewGormOpenHourRepository(database.DB)
	serviceRepo := repository.NewGormServiceRepository(database.DB)
	adminRepo := repository.NewGormAdminRepository(database.DB)

	// services.
	checker := &availability.Checker{
		Appointments: aptRepo,
		BlockedDates: blockedRepo,
		OpenHours:    hoursRepo,
		Services:     serviceRepo,
	}
	catalogService := &catalog.DefaultCatalogService{Repo: serviceRepo}
	hoursService := &hours.DefaultHoursService{Repo: hoursRepo}
	blockedService := &blocked.DefaultBlockedService{Repo: blockedRepo}
	authService := &auth.DefaultAuthService{Repo: adminRepo}
	appointmentService := &appointment.DefaultAppointmentService{
		Repo:      aptRepo,
		Checker:   checker,
		Verifier:  appointment.NewRecaptchaVerifier(),
		Reminders: tasks.NewAsynqReminderScheduler(),
	}

	// Seed default data on first boot. Each routine is idempotent.
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	if err := authService.SeedDefaultAdmin(seedCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to seed admin user: %v", err)
	}
	if err := catalogService.SeedDefaults(seedCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to seed services: %v", err)
	}
	if err := hoursService.InitializeDefaults(seedCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to seed open hours: %v", err)
	}
	cancelSeed()

	// Background reminder worker and health monitor.
	cron.InitReminderWorker(&notification.LogNotificationService{}, aptRepo)
	utils.StartHealthMonitor(database.DB, utils.GetAuthCacheClient())

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:         handlers.NewAuthHandler(authService),
		Appointments: handlers.NewAppointmentHandler(appointmentService),
		BlockedDates: handlers.NewBlockedDateHandler(blockedService),
		OpenHours:    handlers.NewOpenHourHandler(hoursService),
		Services:     handlers.NewServiceHandler(catalogService),
		Availability: handlers.NewAvailabilityHandler(checker),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "3001"
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
