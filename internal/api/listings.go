package api

import (
	"context"                 // Context for Redis operations
	"net/http"                // HTTP status codes
	"path/filepath"           // Filesystem path joining
	"time"                    // Time durations
	"maloga/internal/config"  // Application configuration
	"maloga/internal/domain"  // Importing domain models
	"maloga/internal/events"  // Change notification signals
	"maloga/internal/storage" // Upload path derivation
	"maloga/internal/utils"   // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library

	"github.com/sirupsen/logrus" // Logging library
)

// listingsCacheKey caches the public marketplace read
const listingsCacheKey = "listings:active"

// CreateListingRequest represents a new listing submission
type CreateListingRequest struct {
	Title       string   `json:"title" binding:"required"`        // Listing title
	Description string   `json:"description"`                     // Breed, age, health condition, etc.
	Price       float64  `json:"price" binding:"gte=0"`           // Asking price, non-negative
	Location    string   `json:"location" binding:"required"`     // Where the animal is kept
	Category    string   `json:"category" binding:"required"`     // cattle, goat, sheep, poultry or other
	ImageURLs   []string `json:"image_urls" binding:"required"`   // Ordered image URLs, at least one
}

// ListListingsHandler returns active marketplace listings, newest first
func ListListingsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Use background context for Redis
		var cached []domain.Listing // Cached listing slice
		// Try to get cached response
		found, err := utils.GetCache(ctx, rdb, listingsCacheKey, &cached)
		if err == nil && found {
			// Return cached listings
			c.JSON(http.StatusOK, gin.H{"listings": cached, "cached": true})
			return
		}
		var listings []domain.Listing // Slice to hold listings
		// Only active listings are publicly visible
		if err := db.Where("status = ?", domain.ListingActive).
			Order("created_at desc").
			Find(&listings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch listings"}) // Return on error
			return
		}
		_ = utils.SetCache(ctx, rdb, listingsCacheKey, listings, 60*time.Second) // Cache for 60 seconds
		c.JSON(http.StatusOK, gin.H{"listings": listings, "cached": false})      // Return the listings
	}
}

// CreateListingHandler creates a listing owned by the authenticated user.
// The listing starts in pending status and stays off the marketplace
// until an admin approves it.
func CreateListingHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req CreateListingRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// At least one image is required; nothing is written otherwise
		if len(req.ImageURLs) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "At least one image is required"})
			return
		}
		// Validate the category value
		if !domain.ValidCategory(req.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}
		// Build the listing; status is forced to pending regardless of input
		listing := domain.Listing{
			SellerID:    userID.(uint),         // Owning user
			Title:       req.Title,             // Listing title
			Description: req.Description,       // Description
			Price:       req.Price,             // Asking price
			Location:    req.Location,          // Location
			Category:    req.Category,          // Category
			ImageURLs:   req.ImageURLs,         // Image URLs
			Status:      domain.ListingPending, // Hidden until approved
		}
		// Save the listing
		if err := db.Create(&listing).Error; err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"seller_id": userID,      // Owning user ID
				"error":     err.Error(), // Error message
			}).Error("Failed to create listing") // Log creation failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create listing"})
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"seller_id":  userID,       // Owning user ID
			"listing_id": listing.ID,   // New listing ID
			"category":   req.Category, // Listing category
		}).Info("Listing created")
		ctx := context.Background()                                   // Context for Redis operations
		_ = utils.DeleteCache(ctx, rdb, listingsCacheKey)             // Invalidate the marketplace cache
		_ = events.Publish(ctx, rdb, "livestock_listings")            // Signal subscribers to re-fetch
		c.JSON(http.StatusCreated, gin.H{"listing": listing})         // Return the new listing
	}
}

// DeleteListingHandler lets a seller remove their own listing. The
// seller_id condition makes deleting someone else's listing a no-op.
func DeleteListingHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Delete only when both the ID and the owner match
		res := db.Where("id = ? AND seller_id = ?", c.Param("id"), userID).Delete(&domain.Listing{})
		if res.Error != nil {
			logrus.WithFields(logrus.Fields{
				"seller_id":  userID,            // Caller user ID
				"listing_id": c.Param("id"),     // Target listing ID
				"error":      res.Error.Error(), // Error message
			}).Error("Failed to delete listing")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete listing"})
			return
		}
		// No row matched: not found or not owned by the caller
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
			return
		}
		ctx := context.Background()                        // Context for Redis operations
		_ = utils.DeleteCache(ctx, rdb, listingsCacheKey)  // Invalidate the marketplace cache
		_ = events.Publish(ctx, rdb, "livestock_listings") // Signal subscribers to re-fetch
		c.JSON(http.StatusOK, gin.H{"message": "Listing deleted successfully"})
	}
}

// SellerContactHandler returns the contact details for a listing's
// seller, shown in the contact dialog.
func SellerContactHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var listing domain.Listing // Fetch the listing first
		if err := db.First(&listing, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
			return
		}
		var seller domain.User // Fetch the seller's profile
		if err := db.First(&seller, listing.SellerID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Could not fetch seller information"})
			return
		}
		// Only the public contact fields are exposed
		c.JSON(http.StatusOK, gin.H{
			"full_name": seller.FullName, // Display name
			"phone":     seller.Phone,    // Contact phone
		})
	}
}

// UploadImageHandler stores a listing image under a random name in the
// uploading user's directory and returns its public URL.
func UploadImageHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		file, err := c.FormFile("image") // The uploaded file
		if err != nil {
			// No file in the multipart form
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
			return
		}
		// Random object name under the user's prefix, extension preserved
		objectPath := storage.ObjectPath(userID.(uint), file.Filename)
		dest := filepath.Join(cfg.UploadDir, filepath.FromSlash(objectPath))
		// Write the file to the upload directory
		if err := c.SaveUploadedFile(file, dest); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // Uploading user ID
				"error":   err.Error(), // Error message
			}).Error("Failed to store image")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
			return
		}
		// Return the derived public URL
		c.JSON(http.StatusCreated, gin.H{"url": storage.PublicURL(cfg.BaseURL, objectPath)})
	}
}
