package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/playpals/playpals-backend/internal/models"
	"github.com/playpals/playpals-backend/pkg/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookTurfInput struct {
	TurfID        uint   `json:"turfId" binding:"required"`
	NumberOfSeats int    `json:"numberOfSeats" binding:"required,min=1"`
	Day           string `json:"day" binding:"required"`
	BookedFrom    string `json:"bookedFrom" binding:"required"` // HH:MM
	BookedTo      string `json:"bookedTo" binding:"required"`   // HH:MM
}

var errTurfNotFound = errors.New("turf not found")

// reserveSeats takes seats out of a turf's availability under a row lock:
// the matching slot is decremented (and dropped at zero) and the turf-level
// aggregate reduced. Must run inside a transaction.
func reserveSeats(tx *gorm.DB, turfID uint, seats int, day, from, to string) (*models.TurfOwner, error) {
	var turf models.TurfOwner
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&turf, turfID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errTurfNotFound
		}
		return nil, err
	}

	if turf.AvailableSeats < seats {
		return nil, models.ErrInsufficientSeats
	}

	updated, err := turf.AvailabilitySlots.Reserve(day, from, to, seats)
	if err != nil {
		return nil, err
	}

	turf.AvailabilitySlots = updated
	turf.AvailableSeats -= seats
	if err := tx.Save(&turf).Error; err != nil {
		return nil, err
	}
	return &turf, nil
}

func bookingErrorStatus(err error) int {
	switch {
	case errors.Is(err, errTurfNotFound):
		return 404
	case errors.Is(err, models.ErrDayNotAvailable),
		errors.Is(err, models.ErrSlotNotFound),
		errors.Is(err, models.ErrInsufficientSeats),
		errors.Is(err, models.ErrInvalidTimeWindow):
		return 400
	default:
		return 500
	}
}

// BookTurf reserves seats on a turf and records a pending booking. The
// requested weekday resolves to its next calendar occurrence and the clock
// times are attached to that date.
func BookTurf(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input BookTurfInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		date, err := utils.NextWeekday(input.Day, time.Now())
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		bookedFrom, err := utils.CombineClock(date, input.BookedFrom)
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		bookedTo, err := utils.CombineClock(date, input.BookedTo)
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if !bookedFrom.Before(bookedTo) {
			c.JSON(400, gin.H{"error": "bookedFrom must be before bookedTo"})
			return
		}

		var booking models.Booking
		err = db.Transaction(func(tx *gorm.DB) error {
			if _, err := reserveSeats(tx, input.TurfID, input.NumberOfSeats, input.Day, input.BookedFrom, input.BookedTo); err != nil {
				return err
			}

			booking = models.Booking{
				UserID:        userId,
				TurfID:        input.TurfID,
				NumberOfSeats: input.NumberOfSeats,
				BookedFrom:    bookedFrom,
				BookedTo:      bookedTo,
				Day:           input.Day,
				Status:        models.BookingStatusPending,
			}
			return tx.Create(&booking).Error
		})
		if err != nil {
			status := bookingErrorStatus(err)
			if status == 500 {
				c.JSON(500, gin.H{"error": "Failed to create booking"})
				return
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(201, gin.H{"status": true, "message": "Turf booked successfully", "data": booking})
	}
}

// GetBookings returns the user's turf bookings split into upcoming and past.
func GetBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var bookings []models.Booking
		if err := db.Where("user_id = ?", userId).
			Preload("Turf").
			Order("booked_from asc").
			Find(&bookings).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch bookings"})
			return
		}

		now := time.Now()
		upcoming := make([]models.Booking, 0)
		past := make([]models.Booking, 0)
		for _, b := range bookings {
			if b.BookedFrom.After(now) {
				upcoming = append(upcoming, b)
			} else {
				past = append(past, b)
			}
		}

		c.JSON(200, gin.H{
			"status": true,
			"data": gin.H{
				"upcoming": upcoming,
				"past":     past,
			},
		})
	}
}
