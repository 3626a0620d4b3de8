package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOTP(t *testing.T) {
	otp := GenerateOTP("player@example.com-20260107153000")

	assert.Len(t, otp, 4)
	for _, ch := range otp {
		assert.True(t, ch >= '0' && ch <= '9')
	}

	// Deterministic for the same key
	assert.Equal(t, otp, GenerateOTP("player@example.com-20260107153000"))
}
