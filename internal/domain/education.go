package domain

// Educational resource types
const (
	ResourceVideo   = "video"
	ResourceArticle = "article"
	ResourceCourse  = "course"
)

// ValidResourceType checks if a string is a known resource type
func ValidResourceType(t string) bool {
	switch t {
	case ResourceVideo, ResourceArticle, ResourceCourse:
		return true
	}
	return false
}

// EducationalResource Model (training material curated by admins)
type EducationalResource struct {
	ID          uint   `gorm:"primaryKey" json:"id"`                   // Primary key
	Title       string `gorm:"not null" json:"title"`                  // Resource title
	Description string `json:"description"`                            // Resource summary
	Category    string `json:"category"`                               // e.g. cattle, health, management
	Type        string `gorm:"default:video" json:"type"`              // video, article or course
	Duration    string `json:"duration"`                               // e.g. "30 min", "15 min read"
	URL         string `gorm:"not null" json:"url"`                    // Where the material lives
	CreatedBy   uint   `gorm:"index" json:"created_by"`                // Foreign key to the creating admin User
	CreatedAt   int64  `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}
