package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyPaymentSignature(t *testing.T) {
	secret := "test_key_secret"
	sig := PaymentSignature("order_abc123", "pay_xyz789", secret)

	assert.True(t, VerifyPaymentSignature("order_abc123", "pay_xyz789", sig, secret))

	// Tampering with any component must fail verification
	assert.False(t, VerifyPaymentSignature("order_abc124", "pay_xyz789", sig, secret))
	assert.False(t, VerifyPaymentSignature("order_abc123", "pay_xyz790", sig, secret))
	assert.False(t, VerifyPaymentSignature("order_abc123", "pay_xyz789", sig, "other_secret"))
	assert.False(t, VerifyPaymentSignature("order_abc123", "pay_xyz789", "deadbeef", secret))
}

func TestPaymentSignatureIsDeterministicHex(t *testing.T) {
	a := PaymentSignature("order_1", "pay_1", "s")
	b := PaymentSignature("order_1", "pay_1", "s")

	assert.Equal(t, a, b)
	assert.Len(t, a, 64) // hex-encoded SHA-256
}

func TestPaymentSignatureSeparatorMatters(t *testing.T) {
	// "a|bc" and "ab|c" must not collide
	assert.NotEqual(t,
		PaymentSignature("a", "bc", "s"),
		PaymentSignature("ab", "c", "s"))
}
