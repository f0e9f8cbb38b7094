package api

import (
	"context"                // Context for Redis operations
	"net/http"               // HTTP status codes
	"time"                   // Time durations
	"maloga/internal/domain" // Importing domain models
	"maloga/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// slaughterhousesCacheKey caches the facility directory. The directory
// only changes by operator action, so a short TTL is plenty.
const slaughterhousesCacheKey = "slaughterhouses:all"

// ListSlaughterhousesHandler returns the facility directory ordered by name
func ListSlaughterhousesHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()        // Use background context for Redis
		var cached []domain.Slaughterhouse // Cached directory
		// Try to get cached response
		found, err := utils.GetCache(ctx, rdb, slaughterhousesCacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"slaughterhouses": cached, "cached": true})
			return
		}
		var facilities []domain.Slaughterhouse // Slice to hold facilities
		if err := db.Order("name").Find(&facilities).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch slaughterhouses"})
			return
		}
		_ = utils.SetCache(ctx, rdb, slaughterhousesCacheKey, facilities, 60*time.Second) // Cache for 60 seconds
		c.JSON(http.StatusOK, gin.H{"slaughterhouses": facilities, "cached": false})      // Return the directory
	}
}
