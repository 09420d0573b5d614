package main

import (
	"log"
	"net/http"
	"time"

	"restaurant-menu-api/config"
	"restaurant-menu-api/handlers"
	"restaurant-menu-api/routes"
	"restaurant-menu-api/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// Open storage: per-category partitions + cart + users
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open storage:", err)
	}
	defer store.Close()
	log.Println("✅ Database connected and migrated successfully")

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS for the React frontend
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Barrel & Born Menu API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":    "🍽️ Welcome to the Barrel & Born Menu API",
			"menu":       "/api/menu-items",
			"categories": "/api/categories",
			"health":     "/health",
		})
	})

	// Register all routes
	h := handlers.New(store, cfg.JWTSecret)
	routes.SetupRoutes(r, h)

	// Start server
	log.Printf("🚀 Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
