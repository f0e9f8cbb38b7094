package roles

import (
	"fmt"           // Error formatting
	"maloga/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// RolesFor returns every role row assigned to the user, oldest first.
// Multiple rows are tolerated; callers that need a single value take the first.
func RolesFor(db *gorm.DB, userID uint) ([]string, error) {
	var rows []domain.UserRole // Role rows for the user
	// Query role assignments ordered by creation
	if err := db.Where("user_id = ?", userID).Order("created_at asc").Find(&rows).Error; err != nil {
		return nil, err // Return error if the query fails
	}
	out := make([]string, len(rows)) // Role names only
	for i, r := range rows {
		out[i] = r.Role // Copy role value
	}
	return out, nil
}

// IsSuperAdmin reports whether any role row for the user is superadmin.
// This is the gate for the admin dashboard and all moderation endpoints.
func IsSuperAdmin(db *gorm.DB, userID uint) (bool, error) {
	var count int64 // Matching row count
	// Count superadmin rows for the user
	err := db.Model(&domain.UserRole{}).
		Where("user_id = ? AND role = ?", userID, domain.RoleSuperAdmin).
		Count(&count).Error
	return count > 0, err
}

// IsAdmin reports whether the user holds any admin-tier role (admin or
// superadmin). Used for the coarser navigation badge; nothing is gated
// on it alone.
func IsAdmin(db *gorm.DB, userID uint) (bool, error) {
	var count int64 // Matching row count
	// Count admin-tier rows for the user
	err := db.Model(&domain.UserRole{}).
		Where("user_id = ? AND role IN ?", userID, []string{domain.RoleAdmin, domain.RoleSuperAdmin}).
		Count(&count).Error
	return count > 0, err
}

// SetRole replaces the user's role assignment. Passing domain.RoleNone
// deletes all role rows and inserts nothing; any other valid role leaves
// exactly one row holding that role. Delete and insert run in one
// transaction so a concurrent read never observes the transient
// "no role" state between them.
func SetRole(db *gorm.DB, userID uint, role string) error {
	// Reject unknown role values before touching the database
	if role != domain.RoleNone && !domain.ValidRole(role) {
		return fmt.Errorf("invalid role %q", role)
	}
	// Atomic delete-then-insert
	return db.Transaction(func(tx *gorm.DB) error {
		// Remove every existing role row for the user
		if err := tx.Where("user_id = ?", userID).Delete(&domain.UserRole{}).Error; err != nil {
			return err // Return error to rollback
		}
		// "none" means cleared: nothing to insert
		if role == domain.RoleNone {
			return nil // Commit with zero rows
		}
		// Insert the single replacement row
		if err := tx.Create(&domain.UserRole{UserID: userID, Role: role}).Error; err != nil {
			return err // Return error to rollback
		}
		return nil // Commit transaction
	})
}
