package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/taskmanager-simple/api/v1"
	"github.com/taskmanager-simple/config"
	"github.com/taskmanager-simple/database"
)

func main() {
	// Load .env before anything reads the environment
	config.LoadEnv()

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Connect to database and run migrations
	database.Initialize()

	// Seed the demo account when asked to (dev/docker profiles only)
	if config.SeedDevUser() {
		if err := database.SeedDevUser(); err != nil {
			log.Fatalf("Failed to seed dev user: %v", err)
		}
	}

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Register v1 API routes
	v1.RegisterRoutes(router.Group("/api/v1"))

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	log.Printf("🚀 Task Manager API starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
