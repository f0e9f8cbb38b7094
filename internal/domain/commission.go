package domain

// Commission statuses
const (
	CommissionPending   = "pending"   // Sale agreed, fee not yet collected
	CommissionCompleted = "completed" // Fee collected
)

// Commission Model (platform fee record tied to a sale)
type Commission struct {
	ID               uint    `gorm:"primaryKey" json:"id"`                   // Primary key
	ListingID        uint    `gorm:"index" json:"listing_id"`                // Foreign key to Listing
	SellerID         uint    `gorm:"index" json:"seller_id"`                 // Foreign key to the selling User
	Amount           float64 `json:"amount"`                                 // Sale amount
	CommissionRate   float64 `json:"commission_rate"`                        // Fee percentage
	CommissionAmount float64 `json:"commission_amount"`                      // Amount * CommissionRate / 100
	Status           string  `gorm:"default:pending" json:"status"`          // pending or completed
	CreatedAt        int64   `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}
