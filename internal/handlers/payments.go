package handlers

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/playpals/playpals-backend/internal/models"
	"github.com/playpals/playpals-backend/internal/services"
	"github.com/playpals/playpals-backend/pkg/utils"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CreateOrderInput struct {
	TurfID        uint    `json:"turfId" binding:"required"`
	NumberOfSeats int     `json:"numberOfSeats" binding:"required,min=1"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Day           string  `json:"day" binding:"required"`
	BookedFrom    string  `json:"bookedFrom" binding:"required"` // HH:MM
	BookedTo      string  `json:"bookedTo" binding:"required"`   // HH:MM
}

// CreateOrder validates the requested seats and amount against the turf's
// advertised price and slots, records a pending booking holding the seats,
// and opens a payment-gateway order for it.
func CreateOrder(db *gorm.DB, gateway services.OrderCreator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input CreateOrderInput
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

		var booking models.Booking
		var order *services.PaymentOrder
		err = db.Transaction(func(tx *gorm.DB) error {
			turf, err := reserveSeats(tx, input.TurfID, input.NumberOfSeats, input.Day, input.BookedFrom, input.BookedTo)
			if err != nil {
				return err
			}

			expected := turf.PricePerPerson * float64(input.NumberOfSeats)
			if math.Abs(expected-input.Amount) > 0.01 {
				return errAmountMismatch
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
			if err := tx.Create(&booking).Error; err != nil {
				return err
			}

			// Gateway amounts are in paise; the receipt ties the order
			// back to the booking row.
			order, err = gateway.CreateOrder(int64(math.Round(input.Amount*100)), fmt.Sprint(booking.ID), map[string]interface{}{
				"bookingId": booking.ID,
				"userId":    userId,
				"turfId":    input.TurfID,
			})
			if err != nil {
				return err
			}

			booking.OrderID = order.OrderID
			return tx.Save(&booking).Error
		})
		if err != nil {
			if errors.Is(err, errAmountMismatch) {
				c.JSON(400, gin.H{"error": err.Error()})
				return
			}
			status := bookingErrorStatus(err)
			if status == 500 {
				log.WithError(err).Error("Order creation failed")
				c.JSON(500, gin.H{"success": false, "message": "Order creation failed"})
				return
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, gin.H{
			"success":   true,
			"orderId":   order.OrderID,
			"amount":    order.Amount,
			"currency":  order.Currency,
			"bookingId": booking.ID,
		})
	}
}

var errAmountMismatch = errors.New("amount does not match seats x price per person")

type VerifyPaymentInput struct {
	OrderID   string `json:"orderId" binding:"required"`
	PaymentID string `json:"paymentId" binding:"required"`
	Signature string `json:"signature" binding:"required"`
	BookingID uint   `json:"bookingId" binding:"required"`
}

// VerifyPayment recomputes the gateway's HMAC signature over
// orderId|paymentId and confirms the booking only on a match. A mismatch
// leaves the booking pending.
func VerifyPayment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input VerifyPaymentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		secret := os.Getenv("RAZORPAY_KEY_SECRET")
		if !services.VerifyPaymentSignature(input.OrderID, input.PaymentID, input.Signature, secret) {
			c.JSON(400, gin.H{"success": false, "message": "Invalid signature"})
			return
		}

		var booking models.Booking
		if err := db.Preload("User").Preload("Turf").First(&booking, input.BookingID).Error; err != nil {
			c.JSON(404, gin.H{"error": "Booking not found"})
			return
		}

		booking.Status = models.BookingStatusConfirmed
		if err := db.Save(&booking).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to confirm booking"})
			return
		}

		if err := utils.SendBookingConfirmedEmail(booking.User.Email, booking.Turf.TurfName, booking.Day); err != nil {
			log.WithError(err).Warn("Confirmation email not sent")
		}

		c.JSON(200, gin.H{
			"success": true,
			"message": "Payment verified & booking confirmed",
		})
	}
}
