package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ratemystore/ratemystore-backend/config"
	"github.com/ratemystore/ratemystore-backend/internal/app/controller"
	"github.com/ratemystore/ratemystore-backend/internal/app/repository"
	"github.com/ratemystore/ratemystore-backend/internal/app/service"
	"github.com/ratemystore/ratemystore-backend/internal/db"
	"github.com/ratemystore/ratemystore-backend/internal/middleware"
	"github.com/ratemystore/ratemystore-backend/internal/router"
	"github.com/ratemystore/ratemystore-backend/internal/scheduler"
	"github.com/ratemystore/ratemystore-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Rate My Store Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Seed the bootstrap admin account (no-op when already present)
	if err := db.SeedAdmin(&cfg.Admin); err != nil {
		logger.Warn("Failed to seed admin account", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	storeRepo := repository.NewStoreRepository(db.GetDB())
	ratingRepo := repository.NewRatingRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.TokenExpiry)
	storeService := service.NewStoreService(storeRepo, ratingRepo, userRepo)
	ratingService := service.NewRatingService(ratingRepo, storeRepo)
	userService := service.NewUserService(userRepo, storeRepo, ratingRepo)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	storeController := controller.NewStoreController(storeService)
	ratingController := controller.NewRatingController(ratingService)
	adminController := controller.NewAdminController(userService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Setup router
	r := router.NewRouter(
		authController,
		storeController,
		ratingController,
		adminController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start the nightly rating average reconcile
	ratingScheduler := scheduler.NewRatingScheduler(ratingRepo)
	if err := ratingScheduler.Start(); err != nil {
		logger.Warn("Failed to start rating scheduler", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer ratingScheduler.Stop()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
