package domain

// Video Model (a farmer-shared video)
type Video struct {
	ID          uint   `gorm:"primaryKey" json:"id"`                   // Primary key
	UserID      uint   `gorm:"index;not null" json:"user_id"`          // Foreign key to the owning User
	Title       string `gorm:"not null" json:"title"`                  // Video title
	Description string `json:"description"`                            // Video description
	URL         string `gorm:"not null" json:"url"`                    // Playback URL
	Category    string `json:"category"`                               // Free-form topic tag
	Likes       int64  `gorm:"default:0" json:"likes"`                 // Denormalized like count, recounted after each toggle
	CreatedAt   int64  `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}

// VideoLike Model (a unique video/user like pair)
type VideoLike struct {
	ID        uint  `gorm:"primaryKey" json:"id"`                                 // Primary key
	VideoID   uint  `gorm:"uniqueIndex:idx_video_user;not null" json:"video_id"`  // Foreign key to Video
	UserID    uint  `gorm:"uniqueIndex:idx_video_user;not null" json:"user_id"`   // Foreign key to User
	CreatedAt int64 `gorm:"autoCreateTime:milli" json:"created_at"`               // Timestamp of creation in milliseconds
}
