// File: /main.go
package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"log"
	"time"
	"travelmap-api/config"
	"travelmap-api/database"
	"travelmap-api/jobs"
	"travelmap-api/middleware"
	"travelmap-api/routes"
	"travelmap-api/services"
)

func main() {
	// Load .env if present; real deployments set env vars directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed database with the base catalog (optional - for development)
	if err := database.SeedData(db); err != nil {
		log.Printf("Warning: Failed to seed database: %v", err)
	}

	// Services
	emailService := services.NewEmailService(cfg)
	mediaService := services.NewMediaService(cfg)

	// Sweep abandoned media uploads in the background
	mediaCleanup := jobs.NewMediaCleanupJob(db, mediaService, 6*time.Hour)
	mediaCleanup.Start()
	defer mediaCleanup.Stop()

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(routes.SetupCORS())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.RateLimit(100, 20))
	router.Use(middleware.ValidateJSON())

	// Setup routes
	routes.SetupRoutes(router, db, cfg, emailService, mediaService)

	// Start server
	log.Printf("Starting TravelMap API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
