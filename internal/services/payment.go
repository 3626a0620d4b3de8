package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	razorpay "github.com/razorpay/razorpay-go"
	log "github.com/sirupsen/logrus"
)

// PaymentOrder is the gateway order a client pays against.
type PaymentOrder struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// OrderCreator creates remote payment-gateway orders. Handlers depend on the
// interface so tests can stub the gateway.
type OrderCreator interface {
	CreateOrder(amountPaise int64, receipt string, notes map[string]interface{}) (*PaymentOrder, error)
}

type razorpayGateway struct {
	client *razorpay.Client
}

// NewPaymentGateway builds a Razorpay-backed OrderCreator from
// RAZORPAY_KEY_ID / RAZORPAY_KEY_SECRET.
func NewPaymentGateway() (OrderCreator, error) {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")
	if keyID == "" || keySecret == "" {
		return nil, fmt.Errorf("razorpay credentials not configured")
	}
	return &razorpayGateway{client: razorpay.NewClient(keyID, keySecret)}, nil
}

func (g *razorpayGateway) CreateOrder(amountPaise int64, receipt string, notes map[string]interface{}) (*PaymentOrder, error) {
	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": "INR",
		"receipt":  receipt,
		"notes":    notes,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("gateway order creation failed: %v", err)
	}

	orderID, _ := body["id"].(string)
	if orderID == "" {
		return nil, fmt.Errorf("gateway returned no order id")
	}

	log.WithFields(log.Fields{"orderId": orderID, "receipt": receipt}).Info("Payment order created")

	return &PaymentOrder{
		OrderID:  orderID,
		Amount:   amountPaise,
		Currency: "INR",
	}, nil
}

// PaymentSignature computes the gateway callback signature:
// hex(HMAC-SHA256(secret, orderId + "|" + paymentId)).
func PaymentSignature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyPaymentSignature checks a client-supplied signature in constant time.
func VerifyPaymentSignature(orderID, paymentID, signature, secret string) bool {
	expected := PaymentSignature(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
