package database

import (
	"github.com/playpals/playpals-backend/internal/models"
	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) error {
	// pg_trgm backs the fuzzy search endpoints (% operator, SIMILARITY).
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`).Error; err != nil {
		return err
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.TurfOwner{},
		&models.Booking{},
		&models.SportsAmenity{},
		&models.SportsAmenityBooking{},
		&models.Review{},
		&models.OTP{},
	)
	if err != nil {
		return err
	}

	// Trigram indexes for the search endpoints
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_turf_owners_turf_name_trgm ON turf_owners USING gin (turf_name gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_turf_owners_turf_location_trgm ON turf_owners USING gin (turf_location gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_sports_amenities_name_trgm ON sports_amenities USING gin (name gin_trgm_ops)`,
	}
	for _, stmt := range indexes {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	// Seat counters must never go negative
	db.Exec(`ALTER TABLE turf_owners DROP CONSTRAINT IF EXISTS turf_owners_available_seats_check`)
	if err := db.Exec(`ALTER TABLE turf_owners ADD CONSTRAINT turf_owners_available_seats_check CHECK (available_seats >= 0)`).Error; err != nil {
		return err
	}
	db.Exec(`ALTER TABLE sports_amenities DROP CONSTRAINT IF EXISTS sports_amenities_quantity_check`)
	if err := db.Exec(`ALTER TABLE sports_amenities ADD CONSTRAINT sports_amenities_quantity_check CHECK (quantity >= 0)`).Error; err != nil {
		return err
	}

	return nil
}
