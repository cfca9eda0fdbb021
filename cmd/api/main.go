package main

import (
	"fmt"
	"log"
	"os"

	"court-proforma/internal/api/handlers"
	"court-proforma/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	computeHandler := handlers.NewComputeHandler()
	projectionHandler := handlers.NewProjectionHandler()
	statementsHandler := handlers.NewStatementsHandler()
	capitalHandler := handlers.NewCapitalHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/compute", computeHandler.Run)
		api.POST("/scenarios/compare", computeHandler.Compare)

		api.POST("/projection", projectionHandler.Run)
		api.POST("/statements", statementsHandler.Run)
		api.POST("/capital", capitalHandler.Run)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
