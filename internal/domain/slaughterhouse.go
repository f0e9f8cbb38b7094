package domain

// Slaughterhouse Model (a processing facility in the directory)
type Slaughterhouse struct {
	ID             uint    `gorm:"primaryKey" json:"id"`                   // Primary key
	Name           string  `gorm:"not null" json:"name"`                   // Facility name
	Location       string  `json:"location"`                               // Town or county
	PricePerKg     float64 `json:"price_per_kg"`                           // Processing price per kilogram
	ServiceFee     float64 `json:"service_fee"`                            // Flat service fee
	Phone          string  `json:"phone"`                                  // Contact phone number
	Address        string  `json:"address"`                                // Street address
	OperatingHours string  `json:"operating_hours"`                        // e.g. "Mon-Sat 6am-6pm"
	CreatedAt      int64   `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}
