package domain

// User Model (auth identity plus the public profile fields)
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`                   // Primary key
	Username  string `gorm:"unique;not null" json:"username"`        // Unique username
	Password  string `gorm:"not null" json:"-"`                      // Hashed password, never serialized
	FullName  string `json:"full_name"`                              // Display name shown to buyers
	Phone     string `json:"phone"`                                  // Contact phone number
	CreatedAt int64  `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}
