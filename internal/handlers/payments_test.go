package handlers

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/playpals/playpals-backend/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestVerifyPaymentRejectsInvalidSignature(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_SECRET", "payment-test-secret")
	gin.SetMode(gin.TestMode)

	// Signature check happens before any database access
	r := gin.New()
	r.POST("/payments/verify", VerifyPayment(nil))

	w := postJSON(r, "/payments/verify",
		`{"orderId":"order_1","paymentId":"pay_1","signature":"bogus","bookingId":11}`)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid signature")
}

func TestVerifyPaymentRejectsMissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/payments/verify", VerifyPayment(nil))

	w := postJSON(r, "/payments/verify", `{"orderId":"order_1"}`)
	assert.Equal(t, 400, w.Code)
}

func TestVerifyPaymentSignatureMatchesGatewayScheme(t *testing.T) {
	secret := "payment-test-secret"
	sig := services.PaymentSignature("order_1", "pay_1", secret)
	assert.True(t, services.VerifyPaymentSignature("order_1", "pay_1", sig, secret))
}

func TestCreateOrderRejectsMalformedInput(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/payments/create-order", CreateOrder(nil, nil))

	// Missing amount and window
	w := postJSON(r, "/payments/create-order", `{"turfId":1,"numberOfSeats":2}`)
	assert.Equal(t, 400, w.Code)

	// Unknown weekday fails before any gateway call
	w = postJSON(r, "/payments/create-order",
		`{"turfId":1,"numberOfSeats":2,"amount":600,"day":"NODAY","bookedFrom":"10:00","bookedTo":"11:00"}`)
	assert.Equal(t, 400, w.Code)
}

type captureGateway struct {
	receipt string
}

func (g *captureGateway) CreateOrder(amountPaise int64, receipt string, notes map[string]interface{}) (*services.PaymentOrder, error) {
	g.receipt = receipt
	return &services.PaymentOrder{OrderID: "order_test", Amount: amountPaise, Currency: "INR"}, nil
}

func TestCreateOrderUsesBookingIDAsReceipt(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)

	slots := `[{"day":"MONDAY","slots":[{"start":"06:00","end":"22:00","availableSeats":10}]}]`

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "turf_owners"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "price_per_person", "available_seats", "available", "availability_slots"}).
			AddRow(1, 300.0, 10, true, slots))
	mock.ExpectExec(`UPDATE "turf_owners"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec(`UPDATE "bookings"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	gateway := &captureGateway{}
	r := gin.New()
	r.POST("/payments/create-order", CreateOrder(db, gateway))

	w := postJSON(r, "/payments/create-order",
		`{"turfId":1,"numberOfSeats":2,"amount":600,"day":"MONDAY","bookedFrom":"10:00","bookedTo":"11:00"}`)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "7", gateway.receipt)
	assert.Contains(t, w.Body.String(), `"orderId":"order_test"`)
	assert.Contains(t, w.Body.String(), `"bookingId":7`)
	assert.NoError(t, mock.ExpectationsWereMet())
}
