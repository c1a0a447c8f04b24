package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/portfolio-simple/api/v1"
	"github.com/portfolio-simple/config"
	"github.com/portfolio-simple/database"
	"github.com/portfolio-simple/lib/mailer"
	"github.com/portfolio-simple/services"
)

func main() {
	// Load environment and connect to the database
	config.LoadEnv()
	database.Initialize()

	// Outbound mail collaborator for the contact form
	services.Mailer = mailer.NewClientFromEnv()

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Initialize router
	router := gin.Default()
	router.HandleMethodNotAllowed = true

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Register API routes
	v1.RegisterRoutes(router.Group("/api/v1"))

	port := config.GetEnv("PORT", "8080")

	log.Printf("🚀 Portfolio API starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
