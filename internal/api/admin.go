package api

import (
	"context"                // Context for Redis operations
	"net/http"               // HTTP status codes
	"strconv"                // String conversion
	"time"                   // Time durations
	"maloga/internal/domain" // Importing domain models
	"maloga/internal/events" // Change notification signals
	"maloga/internal/roles"  // Role queries
	"maloga/internal/stats"  // Commission aggregation
	"maloga/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library

	"github.com/sirupsen/logrus" // Logging library
)

// UserAdminResponse represents the user data returned to admins
type UserAdminResponse struct {
	ID        uint     `json:"id"`         // User ID
	Username  string   `json:"username"`   // Username
	FullName  string   `json:"full_name"`  // Display name
	Phone     string   `json:"phone"`      // Contact phone
	CreatedAt int64    `json:"created_at"` // Registration timestamp
	Roles     []string `json:"roles"`      // Assigned role rows
}

// ListingAdminResponse represents a listing with its seller's name
type ListingAdminResponse struct {
	domain.Listing        // The listing row
	SellerName     string `json:"seller_name"` // Seller display name, "Unknown" when missing
}

// SetRoleRequest represents a role assignment change
type SetRoleRequest struct {
	Role string `json:"role" binding:"required"` // admin, superadmin, seller, buyer or none
}

// SetListingStatusRequest represents a moderation decision
type SetListingStatusRequest struct {
	Status string `json:"status" binding:"required"` // active or inactive, nothing else
}

// DashboardStatsHandler returns the dashboard figures: entity counts
// plus the commission totals reduced from the raw records.
func DashboardStatsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var totalListings int64 // Listing count
		if err := db.Model(&domain.Listing{}).Count(&totalListings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard data"})
			return
		}
		var totalUsers int64 // User count
		if err := db.Model(&domain.User{}).Count(&totalUsers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard data"})
			return
		}
		var commissions []domain.Commission // All commission records
		if err := db.Find(&commissions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard data"})
			return
		}
		totals := stats.AggregateCommissions(commissions) // Reduce into the dashboard totals
		c.JSON(http.StatusOK, gin.H{
			"total_listings":      totalListings, // All listings, any status
			"total_users":         totalUsers,    // Registered accounts
			"total_commissions":   totals.Total,  // Revenue over all records
			"pending_commissions": totals.Pending, // Revenue awaiting completion
		})
	}
}

// ListCommissionsHandler returns commission records, newest first, with
// pagination and a short-lived cache.
func ListCommissionsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Use background context for Redis
		// Create a cache key based on pagination parameters
		cacheKey := "admin:commissions:page=" + c.DefaultQuery("page", "1") + ":size=" + c.DefaultQuery("page_size", "20")
		// Try to get cached response
		var cached struct {
			Commissions []domain.Commission `json:"commissions"` // List of commissions
			Page        int                 `json:"page"`        // Current page
			PageSize    int                 `json:"page_size"`   // Page size
			Total       int64               `json:"total"`       // Total number of records
			TotalPages  int                 `json:"total_pages"` // Total pages
		}
		// If cached data found, return it
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"commissions": cached.Commissions, // List of commissions
				"page":        cached.Page,        // Current page
				"page_size":   cached.PageSize,    // Page size
				"total":       cached.Total,       // Total number of records
				"total_pages": cached.TotalPages,  // Total pages
				"cached":      true,               // Indicate response is from cache
			})
			return
		}
		page := 1      // Default page number
		pageSize := 20 // Default page size
		if p := c.Query("page"); p != "" {
			if v, err := strconv.Atoi(p); err == nil && v > 0 {
				page = v // Set page if valid
			}
		}
		// Check and set page size within limits
		if ps := c.Query("page_size"); ps != "" {
			if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
				pageSize = v // Set page size
			}
		}
		offset := (page - 1) * pageSize // Calculate offset for pagination
		var total int64                 // Total record count
		if err := db.Model(&domain.Commission{}).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count commissions"})
			return
		}
		var commissions []domain.Commission // Slice to hold records
		// Fetch the requested page, newest first
		if err := db.Order("created_at desc").Offset(offset).Limit(pageSize).Find(&commissions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch commissions"})
			return
		}
		totalPages := (int(total) + pageSize - 1) / pageSize // Calculate total pages
		respData := gin.H{
			"commissions": commissions, // List of commissions
			"page":        page,        // Current page
			"page_size":   pageSize,    // Page size
			"total":       total,       // Total number of records
			"total_pages": totalPages,  // Total pages
			"cached":      false,       // Indicate response is not from cache
		}
		// Cache the response for future requests
		_ = utils.SetCache(ctx, rdb, cacheKey, respData, 60*time.Second)
		c.JSON(http.StatusOK, respData) // Return the response
	}
}

// ListUsersHandler returns all users joined with their role rows,
// newest registration first.
func ListUsersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []domain.User // Slice to hold users
		if err := db.Order("created_at desc").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		var roleRows []domain.UserRole // All role assignments in one read
		if err := db.Find(&roleRows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch roles"})
			return
		}
		// Group role rows by user
		rolesByUser := make(map[uint][]string, len(users))
		for _, r := range roleRows {
			rolesByUser[r.UserID] = append(rolesByUser[r.UserID], r.Role)
		}
		// Map users to the admin response format
		resp := make([]UserAdminResponse, len(users))
		for i, u := range users {
			resp[i] = UserAdminResponse{
				ID:        u.ID,              // User ID
				Username:  u.Username,        // Username
				FullName:  u.FullName,        // Display name
				Phone:     u.Phone,           // Contact phone
				CreatedAt: u.CreatedAt,       // Registration timestamp
				Roles:     rolesByUser[u.ID], // Assigned roles
			}
		}
		c.JSON(http.StatusOK, gin.H{"users": resp, "total": len(resp)}) // Return the users
	}
}

// SetUserRoleHandler replaces a user's role assignment. "none" clears
// every role row; any concrete role leaves exactly one row.
func SetUserRoleHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		targetID, err := strconv.ParseUint(c.Param("id"), 10, 64) // Target user ID from the path
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}
		var req SetRoleRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// The target must exist; role rows for ghosts are not created
		var target domain.User
		if err := db.First(&target, targetID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		// Atomic replace inside one transaction
		if err := roles.SetRole(db, target.ID, req.Role); err != nil {
			logrus.WithFields(logrus.Fields{
				"target_id": target.ID,   // Target user ID
				"role":      req.Role,    // Requested role
				"error":     err.Error(), // Error message
			}).Error("Failed to update role")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update user role"})
			return
		}
		// Log the role change
		logrus.WithFields(logrus.Fields{
			"target_id": target.ID, // Target user ID
			"role":      req.Role,  // New role value
		}).Info("Role updated")
		_ = events.Publish(context.Background(), rdb, "user_roles") // Signal subscribers to re-fetch
		c.JSON(http.StatusOK, gin.H{"message": "User role updated successfully"})
	}
}

// AdminListListingsHandler returns every listing regardless of status,
// with the seller's name resolved, newest first.
func AdminListListingsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var listings []domain.Listing // Slice to hold listings
		if err := db.Order("created_at desc").Find(&listings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch listings"})
			return
		}
		var sellers []domain.User // All users in one read for the name join
		if err := db.Find(&sellers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sellers"})
			return
		}
		// Index seller names by ID
		nameByID := make(map[uint]string, len(sellers))
		for _, s := range sellers {
			nameByID[s.ID] = s.FullName
		}
		// Attach seller names to listings
		resp := make([]ListingAdminResponse, len(listings))
		for i, l := range listings {
			name := nameByID[l.SellerID] // Seller display name
			if name == "" {
				name = "Unknown" // Deleted or nameless account
			}
			resp[i] = ListingAdminResponse{Listing: l, SellerName: name}
		}
		c.JSON(http.StatusOK, gin.H{"listings": resp, "total": len(resp)}) // Return the listings
	}
}

// SetListingStatusHandler approves or rejects a listing. Only the
// exact values "active" and "inactive" are reachable through this
// control path.
func SetListingStatusHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetListingStatusRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Restrict the reachable statuses
		if req.Status != domain.ListingActive && req.Status != domain.ListingInactive {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be active or inactive"})
			return
		}
		// Apply the status transition
		res := db.Model(&domain.Listing{}).Where("id = ?", c.Param("id")).Update("status", req.Status)
		if res.Error != nil {
			logrus.WithFields(logrus.Fields{
				"listing_id": c.Param("id"),     // Target listing ID
				"status":     req.Status,        // Requested status
				"error":      res.Error.Error(), // Error message
			}).Error("Failed to update listing status")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update listing"})
			return
		}
		// No row matched
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
			return
		}
		// Log the moderation decision
		logrus.WithFields(logrus.Fields{
			"listing_id": c.Param("id"), // Target listing ID
			"status":     req.Status,    // New status
		}).Info("Listing moderated")
		ctx := context.Background()                        // Context for Redis operations
		_ = utils.DeleteCache(ctx, rdb, listingsCacheKey)  // The marketplace view changed
		_ = events.Publish(ctx, rdb, "livestock_listings") // Signal subscribers to re-fetch
		c.JSON(http.StatusOK, gin.H{"message": "Listing updated successfully"})
	}
}

// AdminDeleteListingHandler removes any listing regardless of owner
// (moderation delete).
func AdminDeleteListingHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Delete by ID only; the admin gate already ran
		res := db.Delete(&domain.Listing{}, "id = ?", c.Param("id"))
		if res.Error != nil {
			logrus.WithFields(logrus.Fields{
				"listing_id": c.Param("id"),     // Target listing ID
				"error":      res.Error.Error(), // Error message
			}).Error("Failed to delete listing")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete listing"})
			return
		}
		// No row matched
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
			return
		}
		ctx := context.Background()                        // Context for Redis operations
		_ = utils.DeleteCache(ctx, rdb, listingsCacheKey)  // The marketplace view changed
		_ = events.Publish(ctx, rdb, "livestock_listings") // Signal subscribers to re-fetch
		c.JSON(http.StatusOK, gin.H{"message": "Listing deleted successfully"})
	}
}
