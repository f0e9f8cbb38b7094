package api

import (
	"context"                // Context for Redis operations
	"errors"                 // Error inspection
	"net/http"               // HTTP status codes
	"maloga/internal/domain" // Importing domain models
	"maloga/internal/events" // Change notification signals

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library

	"github.com/sirupsen/logrus" // Logging library
)

// CreateVideoRequest represents a new video share
type CreateVideoRequest struct {
	Title       string `json:"title" binding:"required"` // Video title
	Description string `json:"description"`              // Video description
	URL         string `json:"url" binding:"required"`   // Playback URL
	Category    string `json:"category"`                 // Topic tag
}

// ListVideosHandler returns all videos, newest first
func ListVideosHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var videos []domain.Video // Slice to hold videos
		if err := db.Order("created_at desc").Find(&videos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch videos"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"videos": videos}) // Return the videos
	}
}

// CreateVideoHandler shares a new video owned by the authenticated user
func CreateVideoHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req CreateVideoRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Build and save the video
		video := domain.Video{
			UserID:      userID.(uint),   // Owning user
			Title:       req.Title,       // Video title
			Description: req.Description, // Description
			URL:         req.URL,         // Playback URL
			Category:    req.Category,    // Topic tag
		}
		if err := db.Create(&video).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // Owning user ID
				"error":   err.Error(), // Error message
			}).Error("Failed to create video")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create video"})
			return
		}
		_ = events.Publish(context.Background(), rdb, "videos") // Signal subscribers to re-fetch
		c.JSON(http.StatusCreated, gin.H{"video": video})       // Return the new video
	}
}

// ToggleLikeHandler flips the caller's like on a video: the (video,
// user) row is deleted if present, inserted otherwise. The stored like
// count is then recounted in a separate write, so it is best effort and
// can transiently diverge from the true row count until the next toggle
// heals it. Toggling twice restores the original state.
func ToggleLikeHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var video domain.Video // The video being liked
		if err := db.First(&video, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
			return
		}
		var like domain.VideoLike // Existing like row, if any
		err := db.Where("video_id = ? AND user_id = ?", video.ID, userID).First(&like).Error
		liked := false // Whether the toggle ended in the liked state
		switch {
		case err == nil:
			// Row exists: the toggle removes the like
			if err := db.Delete(&like).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update like"})
				return
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// No row: the toggle adds the like
			if err := db.Create(&domain.VideoLike{VideoID: video.ID, UserID: userID.(uint)}).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update like"})
				return
			}
			liked = true
		default:
			// Lookup itself failed
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update like"})
			return
		}
		// Recount into the denormalized counter. This is an independent
		// write: if it fails the like row still stands and the next
		// successful toggle corrects the count.
		var count int64 // True like row count
		if err := db.Model(&domain.VideoLike{}).Where("video_id = ?", video.ID).Count(&count).Error; err == nil {
			if err := db.Model(&video).Update("likes", count).Error; err != nil {
				logrus.WithFields(logrus.Fields{
					"video_id": video.ID,    // Target video ID
					"error":    err.Error(), // Error message
				}).Error("Failed to update like count")
			}
		}
		_ = events.Publish(context.Background(), rdb, "video_likes")  // Signal subscribers to re-fetch
		c.JSON(http.StatusOK, gin.H{"liked": liked, "likes": count})  // Return the toggle outcome
	}
}
