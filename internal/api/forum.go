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

// CreateQuestionRequest represents a new forum question
type CreateQuestionRequest struct {
	Title    string `json:"title" binding:"required"`   // Question title
	Content  string `json:"content" binding:"required"` // Question body
	Category string `json:"category"`                   // health, feeding, breeding, marketing or general
}

// CreateAnswerRequest represents a reply to a question
type CreateAnswerRequest struct {
	Content string `json:"content" binding:"required"` // Answer body
}

// ListQuestionsHandler returns all questions with their answers, newest
// question first. The list is always read fresh: forum consumers
// re-fetch on every change signal.
func ListQuestionsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var questions []domain.Question // Slice to hold questions
		// Preload answers so each thread renders in one read
		if err := db.Preload("Answers").Order("created_at desc").Find(&questions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"questions": questions}) // Return the threads
	}
}

// CreateQuestionHandler posts a new question by the authenticated user
func CreateQuestionHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req CreateQuestionRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Build and save the question
		question := domain.Question{
			UserID:   userID.(uint), // Asking user
			Title:    req.Title,     // Question title
			Content:  req.Content,   // Question body
			Category: req.Category,  // Topic category
		}
		if err := db.Create(&question).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // Asking user ID
				"error":   err.Error(), // Error message
			}).Error("Failed to create question")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create question"})
			return
		}
		_ = events.Publish(context.Background(), rdb, "questions") // Signal subscribers to re-fetch
		c.JSON(http.StatusCreated, gin.H{"question": question})    // Return the new question
	}
}

// CreateAnswerHandler posts a reply to an existing question
func CreateAnswerHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req CreateAnswerRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var question domain.Question // The question being answered
		// Answers to missing questions are rejected, not orphaned
		if err := db.First(&question, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
			return
		}
		// Build and save the answer
		answer := domain.Answer{
			QuestionID: question.ID,   // Parent question
			UserID:     userID.(uint), // Answering user
			Content:    req.Content,   // Answer body
		}
		if err := db.Create(&answer).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":     userID,      // Answering user ID
				"question_id": question.ID, // Parent question ID
				"error":       err.Error(), // Error message
			}).Error("Failed to create answer")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create answer"})
			return
		}
		_ = events.Publish(context.Background(), rdb, "answers") // Signal subscribers to re-fetch
		c.JSON(http.StatusCreated, gin.H{"answer": answer})      // Return the new answer
	}
}
