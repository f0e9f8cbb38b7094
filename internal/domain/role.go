package domain

// Role values assignable to a user
const (
	RoleAdmin      = "admin"      // Platform admin
	RoleSuperAdmin = "superadmin" // Full dashboard access
	RoleSeller     = "seller"     // May list livestock
	RoleBuyer      = "buyer"      // May browse and contact sellers
	RoleNone       = "none"       // Sentinel: clears all role rows
)

// UserRole Model (one row grants one role to one user)
type UserRole struct {
	ID        uint   `gorm:"primaryKey" json:"id"`                   // Primary key
	UserID    uint   `gorm:"index;not null" json:"user_id"`          // Foreign key to User
	Role      string `gorm:"not null" json:"role"`                   // admin, superadmin, seller or buyer
	CreatedAt int64  `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}

// ValidRole reports whether r is an assignable role value
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleSuperAdmin, RoleSeller, RoleBuyer:
		return true
	}
	return false
}
