package main

import (
	"log"
	"net/http"
	"os"

	"hostel-management-api/config"
	"hostel-management-api/payments"
	"hostel-management-api/routes"
	"hostel-management-api/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present (ok if missing in prod)
	_ = godotenv.Load()

	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	cfg := config.Load()

	st, err := store.New(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := st.SeedPlans(); err != nil {
		log.Fatal("Failed to seed plans:", err)
	}

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Hostel Meal Management API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Hostel meal management server is running",
			"health":  "/health",
		})
	})

	routes.SetupRoutes(r, st, payments.NewStripeGateway(cfg.StripeSecretKey))

	log.Printf("Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
