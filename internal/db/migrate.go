package db

import (
	"maloga/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Migrate performs automatic migration for the database schema
func Migrate(dsn string) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{}) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	err = db.AutoMigrate(
		&domain.User{},
		&domain.UserRole{},
		&domain.Listing{},
		&domain.Commission{},
		&domain.Question{},
		&domain.Answer{},
		&domain.Video{},
		&domain.VideoLike{},
		&domain.Slaughterhouse{},
		&domain.EducationalResource{},
	)
	if err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	seedSlaughterhouses(db)             // Seed the directory if empty
	logrus.Info("Migration completed.") // Log successful migration
}

// seedSlaughterhouses inserts the initial facility directory on first
// run. The directory is read-only through the API, so an empty table
// would leave the locator page permanently blank.
func seedSlaughterhouses(db *gorm.DB) {
	var count int64 // Existing facility count
	if err := db.Model(&domain.Slaughterhouse{}).Count(&count).Error; err != nil || count > 0 {
		return // Already seeded, or count failed; leave the table alone
	}
	seed := []domain.Slaughterhouse{
		{Name: "Nairobi Meat Works", Location: "Nairobi", PricePerKg: 45, ServiceFee: 500, Phone: "+254700000001", Address: "Enterprise Rd, Industrial Area", OperatingHours: "Mon-Sat 6am-6pm"},
		{Name: "Nakuru Processors", Location: "Nakuru", PricePerKg: 40, ServiceFee: 400, Phone: "+254700000002", Address: "Kenyatta Ave, Nakuru", OperatingHours: "Mon-Fri 7am-5pm"},
		{Name: "Mombasa Abattoir", Location: "Mombasa", PricePerKg: 50, ServiceFee: 600, Phone: "+254700000003", Address: "Port Reitz Rd, Changamwe", OperatingHours: "Daily 5am-7pm"},
	}
	if err := db.Create(&seed).Error; err != nil {
		logrus.Errorf("failed to seed slaughterhouses: %v", err) // Non-fatal: directory can be filled by hand
	}
}
