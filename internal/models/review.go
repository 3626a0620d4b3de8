package models

import "gorm.io/gorm"

// Review is unique per (user, turf); the constraint is enforced by a
// composite unique index created in RunMigrations.
type Review struct {
	gorm.Model
	UserID  uint      `json:"userId" gorm:"not null;index:idx_reviews_user_turf,unique"`
	User    User      `json:"-"`
	TurfID  uint      `json:"turfId" gorm:"not null;index:idx_reviews_user_turf,unique"`
	Turf    TurfOwner `json:"-" gorm:"foreignKey:TurfID"`
	Rating  float64   `json:"rating" gorm:"not null"`
	Comment string    `json:"comment"`
	Photo   string    `json:"photo"`
}

// NextAverageRating folds one more rating into a running average.
func NextAverageRating(oldAvg float64, oldCount int, rating float64) float64 {
	return (oldAvg*float64(oldCount) + rating) / float64(oldCount+1)
}
