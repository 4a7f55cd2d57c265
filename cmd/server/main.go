package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/AnshRaj112/shopora-backend/internal/config"
	"github.com/AnshRaj112/shopora-backend/internal/database"
	"github.com/AnshRaj112/shopora-backend/internal/handlers"
	"github.com/AnshRaj112/shopora-backend/internal/middleware"
	"github.com/AnshRaj112/shopora-backend/internal/routes"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	// Load configuration
	cfg := config.Load()

	// Connect to MongoDB
	log.Printf("Connecting to MongoDB...")
	if err := database.Connect(cfg.MongoURI); err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect()

	// Connect to Redis (rate limiting)
	log.Printf("Connecting to Redis...")
	if err := database.ConnectRedis(cfg.RedisURI); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer database.DisconnectRedis()

	handlers.Init(cfg)
	log.Printf("Main server: %s (shop admin %s)", cfg.MainServerURL, cfg.ShopAdminID)

	// Setup router
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.IsProduction() {
		r.Use(middleware.SecurityHeaders)
		log.Println("✅ Production security headers enabled")
	}

	// Health check (no rate limit)
	r.Get("/health", handlers.Health)

	// API routes behind the Redis rate limiter
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimitMiddleware)
		routes.SetupRoutes(r)
	})

	log.Println("📋 Registered routes:")
	log.Println("  GET  /health")
	log.Println("  GET  /api/products")
	log.Println("  GET  /api/products/{id}")
	log.Println("  GET  /api/products/search/{query}")
	log.Println("  POST /api/users/register")
	log.Println("  GET  /api/users/{id}")
	log.Println("  POST /api/users/{id}/cart")
	log.Println("  GET  /api/users/{id}/cart")
	log.Println("  POST /api/users/{id}/orders")
	log.Println("  GET  /api/users/{id}/orders")
	log.Println("  GET  /api/shop-data")
	log.Println("  GET  /api/app-config")

	log.Printf("🚀 Shopora backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
