package main

import (
	"context"                    // context package is needed for Redis operations
	"log"                        // log package is needed for logging
	"maloga/internal/api"        // Custom package for API handlers
	"maloga/internal/config"     // Custom package for configuration
	"maloga/internal/middleware" // Custom package for middleware

	// For loading .env files
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client (cache + change-notification bus)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes
	r.POST("/auth/register", api.RegisterHandler(db))          // Registration endpoint
	r.POST("/auth/login", api.LoginHandler(db, cfg.JWTSecret)) // Login endpoint

	// Public routes
	r.GET("/listings", api.ListListingsHandler(db, redisClient))             // Marketplace browse (active only)
	r.GET("/listings/:id/seller", api.SellerContactHandler(db))              // Seller contact details
	r.GET("/slaughterhouses", api.ListSlaughterhousesHandler(db, redisClient)) // Facility directory
	r.GET("/education", api.ListResourcesHandler(db))                        // Educational resources
	r.GET("/questions", api.ListQuestionsHandler(db))                        // Forum threads
	r.GET("/videos", api.ListVideosHandler(db))                              // Shared videos
	r.GET("/events", api.EventsHandler(redisClient))                         // Change-notification stream (SSE)
	r.Static("/uploads", cfg.UploadDir)                                      // Uploaded listing images

	// Authenticated routes (protected by JWT)
	authGroup := r.Group("/")
	authGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	authGroup.GET("/auth/me", api.MeHandler(db))                                // Identity, roles, admin badge
	authGroup.POST("/listings", api.CreateListingHandler(db, redisClient))      // Create listing (pending until approved)
	authGroup.DELETE("/listings/:id", api.DeleteListingHandler(db, redisClient)) // Delete own listing
	authGroup.POST("/listings/images", api.UploadImageHandler(cfg))             // Listing image upload
	authGroup.POST("/questions", api.CreateQuestionHandler(db, redisClient))    // Ask a question
	authGroup.POST("/questions/:id/answers", api.CreateAnswerHandler(db, redisClient)) // Answer a question
	authGroup.POST("/videos", api.CreateVideoHandler(db, redisClient))          // Share a video
	authGroup.POST("/videos/:id/like", api.ToggleLikeHandler(db, redisClient))  // Toggle a like

	// Admin routes (protected, superadmin only)
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.SuperAdminOnlyMiddleware(db))
	adminGroup.GET("/stats", api.DashboardStatsHandler(db))                          // Dashboard figures
	adminGroup.GET("/commissions", api.ListCommissionsHandler(db, redisClient))      // Commission records
	adminGroup.GET("/users", api.ListUsersHandler(db))                               // Users with their roles
	adminGroup.PUT("/users/:id/role", api.SetUserRoleHandler(db, redisClient))       // Replace a role assignment
	adminGroup.GET("/listings", api.AdminListListingsHandler(db))                    // All listings, any status
	adminGroup.PUT("/listings/:id/status", api.SetListingStatusHandler(db, redisClient)) // Approve or reject
	adminGroup.DELETE("/listings/:id", api.AdminDeleteListingHandler(db, redisClient))   // Moderation delete
	adminGroup.POST("/education", api.CreateResourceHandler(db, redisClient))        // Add educational material
	adminGroup.DELETE("/education/:id", api.DeleteResourceHandler(db, redisClient))  // Remove educational material

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
