package models

import (
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type TurfOwner struct {
	gorm.Model
	Name         string `json:"name" gorm:"column:name;not null"`
	Email        string `json:"email" gorm:"column:email;unique;not null"`
	Password     string `json:"-" gorm:"-:migration"`
	PasswordHash string `json:"-" gorm:"column:password_hash;not null"`
	PhoneNumber  string `json:"phoneNumber" gorm:"column:phone_number"`

	TurfName        string         `json:"turfName" gorm:"column:turf_name;not null"`
	TurfLocation    string         `json:"turfLocation" gorm:"column:turf_location;not null"`
	TurfDescription string         `json:"turfDescription" gorm:"column:turf_description"`
	TurfSize        string         `json:"turfSize" gorm:"column:turf_size"`
	TurfGames       pq.StringArray `json:"turfGames" gorm:"column:turf_games;type:text[]"`
	TurfPhotos      pq.StringArray `json:"turfPhotos" gorm:"column:turf_photos;type:text[]"`
	Amenities       pq.StringArray `json:"amenities" gorm:"column:amenities;type:text[]"`
	ProfilePhoto    string         `json:"profilePhoto" gorm:"column:profile_photo"`

	PricePerPerson    float64           `json:"pricePerPerson" gorm:"column:price_per_person"`
	TotalSeats        int               `json:"totalSeats" gorm:"column:total_seats"`
	AvailableSeats    int               `json:"availableSeats" gorm:"column:available_seats"`
	Available         bool              `json:"available" gorm:"column:available;default:true"`
	AvailabilitySlots AvailabilitySlots `json:"availabilitySlots" gorm:"column:availability_slots;type:jsonb"`

	Ratings      float64 `json:"ratings" gorm:"column:ratings;default:0"`
	CountReviews int     `json:"countReviews" gorm:"column:count_reviews;default:0"`

	Bookings []Booking       `json:"-" gorm:"foreignKey:TurfID"`
	Reviews  []Review        `json:"-" gorm:"foreignKey:TurfID"`
	Rentals  []SportsAmenity `json:"-" gorm:"foreignKey:TurfOwnerID"`
}

// TableName specifies the table name
func (TurfOwner) TableName() string {
	return "turf_owners"
}

func (t *TurfOwner) HashPassword() error {
	if t.Password == "" {
		return nil
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(t.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	t.PasswordHash = string(hashedPassword)
	return nil
}

func (t *TurfOwner) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(t.PasswordHash), []byte(password))
}
