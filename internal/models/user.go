package models

import (
	"time"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name            string         `json:"name" gorm:"column:name;not null"`
	Email           string         `json:"email" gorm:"column:email;unique;not null"`
	Password        string         `json:"-" gorm:"-:migration"` // Temporary field for password handling
	PasswordHash    string         `json:"-" gorm:"column:password_hash;not null"`
	DOB             time.Time      `json:"dob" gorm:"column:dob"`
	Gender          string         `json:"gender" gorm:"column:gender"`
	City            string         `json:"city" gorm:"column:city"`
	ProfilePhoto    string         `json:"profilePhoto" gorm:"column:profile_photo"`
	GamePreferences pq.StringArray `json:"gamePreferences" gorm:"column:game_preferences;type:text[]"`

	Bookings        []Booking              `json:"-"`
	AmenityBookings []SportsAmenityBooking `json:"-"`
	Reviews         []Review               `json:"-"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

func (u *User) HashPassword() error {
	if u.Password == "" {
		return nil
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
