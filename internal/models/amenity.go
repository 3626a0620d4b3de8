package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// OwnerType discriminates who listed a rental amenity.
type OwnerType string

const (
	OwnerTypeUser      OwnerType = "USER"
	OwnerTypeTurfOwner OwnerType = "TURFOWNER"
)

// SportsAmenity is rentable sports equipment listed by a user or a turf owner.
type SportsAmenity struct {
	gorm.Model
	Name         string         `json:"name" gorm:"not null"`
	Description  string         `json:"description"`
	Category     string         `json:"category"`
	PricePerHour float64        `json:"pricePerHour" gorm:"not null"`
	Quantity     int            `json:"quantity" gorm:"not null"`
	Photos       pq.StringArray `json:"photos" gorm:"type:text[]"`
	IsAvailable  bool           `json:"isAvailable" gorm:"default:true"`
	OwnerType    OwnerType      `json:"ownerType" gorm:"not null"`
	UserID       *uint          `json:"userId"`
	TurfOwnerID  *uint          `json:"turfOwnerId"`
}

// TableName specifies the table name
func (SportsAmenity) TableName() string {
	return "sports_amenities"
}

type SportsAmenityBooking struct {
	gorm.Model
	UserID     uint          `json:"userId" gorm:"not null"`
	User       User          `json:"-"`
	AmenityID  uint          `json:"amenityId" gorm:"not null"`
	Amenity    SportsAmenity `json:"-" gorm:"foreignKey:AmenityID"`
	BookedFrom time.Time     `json:"bookedFrom" gorm:"not null"`
	BookedTo   time.Time     `json:"bookedTo" gorm:"not null"`
	Quantity   int           `json:"quantity" gorm:"not null"`
	TotalPrice float64       `json:"totalPrice" gorm:"not null"`
	Status     BookingStatus `json:"status" gorm:"not null;default:'PENDING'"`
}

// TableName specifies the table name
func (SportsAmenityBooking) TableName() string {
	return "sports_amenity_bookings"
}

// RentalPrice computes the charge for renting quantity units over the
// [from, to) window at the given hourly rate.
func RentalPrice(from, to time.Time, pricePerHour float64, quantity int) float64 {
	hours := to.Sub(from).Hours()
	return hours * pricePerHour * float64(quantity)
}
