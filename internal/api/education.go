package api

import (
	"context"                // Context for Redis operations
	"net/http"               // HTTP status codes
	"maloga/internal/domain" // Importing domain models
	"maloga/internal/events" // Change notification signals

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library

	"github.com/sirupsen/logrus" // Logging library
)

// CreateResourceRequest represents new educational material
type CreateResourceRequest struct {
	Title       string `json:"title" binding:"required"` // Resource title
	Description string `json:"description"`              // Resource summary
	Category    string `json:"category"`                 // e.g. cattle, health, management
	Type        string `json:"type"`                     // video, article or course
	Duration    string `json:"duration"`                 // e.g. "30 min", "15 min read"
	URL         string `json:"url" binding:"required"`   // Where the material lives
}

// ListResourcesHandler returns educational resources, newest first
func ListResourcesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var resources []domain.EducationalResource // Slice to hold resources
		if err := db.Order("created_at desc").Find(&resources).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch resources"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"resources": resources}) // Return the resources
	}
}

// CreateResourceHandler adds educational material. Mounted under the
// admin group, so the superadmin gate has already run.
func CreateResourceHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req CreateResourceRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		resourceType := req.Type // Default the type when omitted
		if resourceType == "" {
			resourceType = domain.ResourceVideo
		}
		// Validate the resource type value
		if !domain.ValidResourceType(resourceType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource type"})
			return
		}
		// Build and save the resource
		resource := domain.EducationalResource{
			Title:       req.Title,       // Resource title
			Description: req.Description, // Summary
			Category:    req.Category,    // Category
			Type:        resourceType,    // Material type
			Duration:    req.Duration,    // Duration hint
			URL:         req.URL,         // Material URL
			CreatedBy:   userID.(uint),   // Creating admin
		}
		if err := db.Create(&resource).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // Creating admin ID
				"error":   err.Error(), // Error message
			}).Error("Failed to create resource")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create resource"})
			return
		}
		_ = events.Publish(context.Background(), rdb, "educational_resources") // Signal subscribers to re-fetch
		c.JSON(http.StatusCreated, gin.H{"resource": resource})                // Return the new resource
	}
}

// DeleteResourceHandler removes educational material (admin group)
func DeleteResourceHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Delete by ID
		res := db.Delete(&domain.EducationalResource{}, "id = ?", c.Param("id"))
		if res.Error != nil {
			logrus.WithFields(logrus.Fields{
				"resource_id": c.Param("id"),     // Target resource ID
				"error":       res.Error.Error(), // Error message
			}).Error("Failed to delete resource")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete resource"})
			return
		}
		// No row matched
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
			return
		}
		_ = events.Publish(context.Background(), rdb, "educational_resources") // Signal subscribers to re-fetch
		c.JSON(http.StatusOK, gin.H{"message": "Resource deleted successfully"})
	}
}
