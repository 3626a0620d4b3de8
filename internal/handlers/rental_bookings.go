package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/playpals/playpals-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookRentalInput struct {
	Quantity   int       `json:"quantity" binding:"required,min=1"`
	BookedFrom time.Time `json:"bookedFrom" binding:"required"`
	BookedTo   time.Time `json:"bookedTo" binding:"required"`
}

var (
	errRentalNotFound    = errors.New("rental not found")
	errRentalUnavailable = errors.New("rental is not available")
	errNotEnoughQuantity = errors.New("requested quantity exceeds available stock")
)

// BookRental rents out equipment for a time window. The amenity row is
// locked while its stock is decremented; the listing goes unavailable when
// stock hits zero.
func BookRental(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input BookRentalInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if !input.BookedFrom.Before(input.BookedTo) {
			c.JSON(400, gin.H{"error": "bookedFrom must be before bookedTo"})
			return
		}

		var booking models.SportsAmenityBooking
		err := db.Transaction(func(tx *gorm.DB) error {
			var rental models.SportsAmenity
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&rental, c.Param("id")).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errRentalNotFound
				}
				return err
			}

			if !rental.IsAvailable {
				return errRentalUnavailable
			}
			if input.Quantity > rental.Quantity {
				return errNotEnoughQuantity
			}

			rental.Quantity -= input.Quantity
			if rental.Quantity == 0 {
				rental.IsAvailable = false
			}
			if err := tx.Save(&rental).Error; err != nil {
				return err
			}

			booking = models.SportsAmenityBooking{
				UserID:     userId,
				AmenityID:  rental.ID,
				BookedFrom: input.BookedFrom,
				BookedTo:   input.BookedTo,
				Quantity:   input.Quantity,
				TotalPrice: models.RentalPrice(input.BookedFrom, input.BookedTo, rental.PricePerHour, input.Quantity),
				Status:     models.BookingStatusConfirmed,
			}
			return tx.Create(&booking).Error
		})
		if err != nil {
			switch {
			case errors.Is(err, errRentalNotFound):
				c.JSON(404, gin.H{"error": err.Error()})
			case errors.Is(err, errRentalUnavailable), errors.Is(err, errNotEnoughQuantity):
				c.JSON(400, gin.H{"error": err.Error()})
			default:
				c.JSON(500, gin.H{"error": "Failed to book rental"})
			}
			return
		}

		c.JSON(201, gin.H{"status": true, "message": "Rental booked successfully", "data": booking})
	}
}

// GetRentalBookings lists the user's equipment rentals.
func GetRentalBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var bookings []models.SportsAmenityBooking
		if err := db.Where("user_id = ?", userId).
			Preload("Amenity").
			Order("booked_from asc").
			Find(&bookings).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch rental bookings"})
			return
		}

		c.JSON(200, gin.H{"status": true, "data": bookings})
	}
}
