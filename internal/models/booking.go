package models

import (
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
)

type Booking struct {
	gorm.Model
	UserID        uint          `json:"userId" gorm:"not null"`
	User          User          `json:"-"`
	TurfID        uint          `json:"turfId" gorm:"not null"`
	Turf          TurfOwner     `json:"-" gorm:"foreignKey:TurfID"`
	NumberOfSeats int           `json:"numberOfSeats" gorm:"not null"`
	BookedFrom    time.Time     `json:"bookedFrom" gorm:"not null"`
	BookedTo      time.Time     `json:"bookedTo" gorm:"not null"`
	Day           string        `json:"day" gorm:"not null"`
	OrderID       string        `json:"orderId" gorm:"column:order_id"`
	Status        BookingStatus `json:"status" gorm:"not null;default:'PENDING'"`
}
