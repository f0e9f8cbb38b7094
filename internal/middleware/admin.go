package middleware

import (
	"net/http"              // HTTP status codes
	"maloga/internal/roles" // Role queries

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// SuperAdminOnlyMiddleware re-reads the user's role rows from the
// database on each request and admits only holders of the superadmin
// role. Role state is never cached between requests, so a revoked role
// takes effect immediately.
func SuperAdminOnlyMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Check for a superadmin role row
		ok, err := roles.IsSuperAdmin(db, userID.(uint))
		if err != nil || !ok {
			// On any error or missing role, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		// If superadmin, proceed to the next handler
		c.Next()
	}
}
