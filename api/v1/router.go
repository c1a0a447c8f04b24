package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/portfolio-simple/middleware"
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

	// User lookup and creation
	userGroup := router.Group("/user")
	{
		userGroup.GET("", GetUserByEmail)
		userGroup.POST("", CreateUser)
	}

	// Project endpoints - reads are public, mutations admin only
	projectGroup := router.Group("/projects")
	{
		projectGroup.GET("", ListProjects)
		projectGroup.GET("/:id", GetProject)
		projectGroup.POST("", middleware.AuthMiddleware(), middleware.AdminMiddleware(), CreateProject)
		projectGroup.PUT("/:id", middleware.AuthMiddleware(), middleware.AdminMiddleware(), UpdateProject)
		projectGroup.DELETE("/:id", middleware.AuthMiddleware(), middleware.AdminMiddleware(), DeleteProject)

		// Comment tree - reads public, writes need a session
		projectGroup.GET("/:id/comments", ListComments)
		projectGroup.POST("/:id/comments", middleware.AuthMiddleware(), CreateComment)
		projectGroup.PUT("/:id/comments", middleware.AuthMiddleware(), UpdateComment)
		projectGroup.DELETE("/:id/comments", middleware.AuthMiddleware(), DeleteComment)

		// Reactions - reads public, writes need a session
		projectGroup.GET("/:id/reactions", ListReactions)
		projectGroup.POST("/:id/reactions", middleware.AuthMiddleware(), CreateReaction)
		projectGroup.DELETE("/:id/reactions", middleware.AuthMiddleware(), DeleteReaction)
	}

	// News endpoints - reads public, mutations admin only
	newsGroup := router.Group("/news")
	{
		newsGroup.GET("", ListNews)
		newsGroup.POST("", middleware.AuthMiddleware(), middleware.AdminMiddleware(), CreateNews)
		newsGroup.PUT("", middleware.AuthMiddleware(), middleware.AdminMiddleware(), UpdateNews)
		newsGroup.DELETE("", middleware.AuthMiddleware(), middleware.AdminMiddleware(), DeleteNews)
	}

	// Contact form relay
	router.POST("/contact", Contact)
}
