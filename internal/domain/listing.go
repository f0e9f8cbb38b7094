package domain

// Listing statuses
const (
	ListingPending  = "pending"  // Awaiting admin approval, hidden from the marketplace
	ListingActive   = "active"   // Publicly visible
	ListingInactive = "inactive" // Rejected or withdrawn by an admin
)

// Listing categories
const (
	CategoryCattle  = "cattle"
	CategoryGoat    = "goat"
	CategorySheep   = "sheep"
	CategoryPoultry = "poultry"
	CategoryOther   = "other"
)

// Listing Model (a livestock item offered on the marketplace)
type Listing struct {
	ID          uint     `gorm:"primaryKey" json:"id"`                   // Primary key
	SellerID    uint     `gorm:"index;not null" json:"seller_id"`        // Foreign key to the owning User
	Title       string   `gorm:"not null" json:"title"`                  // Listing title
	Description string   `json:"description"`                            // Breed, age, health condition, etc.
	Price       float64  `gorm:"not null" json:"price"`                  // Asking price, non-negative
	Location    string   `json:"location"`                               // Where the animal is kept
	Category    string   `gorm:"not null" json:"category"`               // cattle, goat, sheep, poultry or other
	ImageURLs   []string `gorm:"serializer:json" json:"image_urls"`      // Ordered image URLs, at least one
	Status      string   `gorm:"default:pending" json:"status"`          // pending, active or inactive
	CreatedAt   int64    `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}

// ValidCategory reports whether c is a known listing category
func ValidCategory(c string) bool {
	switch c {
	case CategoryCattle, CategoryGoat, CategorySheep, CategoryPoultry, CategoryOther:
		return true
	}
	return false
}
