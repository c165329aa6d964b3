package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/taskmanager-simple/middleware"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		authGroup.POST("/logout", Logout)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Project endpoints - protected by AuthMiddleware
	projectGroup := router.Group("/projects")
	projectGroup.Use(middleware.AuthMiddleware())
	{
		projectGroup.GET("", ListProjects)
		projectGroup.POST("", CreateProject)
		projectGroup.GET("/:id", GetProject)
		projectGroup.PUT("/:id", UpdateProject)
		projectGroup.DELETE("/:id", DeleteProject)
	}

	// Task endpoints - protected by AuthMiddleware
	taskGroup := router.Group("/tasks")
	taskGroup.Use(middleware.AuthMiddleware())
	{
		taskGroup.GET("", ListTasks)
		taskGroup.POST("", CreateTask)
		taskGroup.PATCH("/:id/complete", CompleteTask)
		taskGroup.DELETE("/:id", DeleteTask)
	}
}
