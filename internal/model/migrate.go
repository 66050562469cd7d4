package model

import "gorm.io/gorm"

// AutoMigrate migrates all booking-core entities.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Tenant{},
		&ProviderType{},
		&Trainer{},
		&Availability{},
		&Booking{},
		&Client{},
	)
}
