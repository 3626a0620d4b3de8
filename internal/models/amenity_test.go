package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRentalPrice(t *testing.T) {
	from := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	// 3 hours x 150/hr x 2 units
	assert.InDelta(t, 900, RentalPrice(from, from.Add(3*time.Hour), 150, 2), 1e-9)

	// Fractional hours charge proportionally
	assert.InDelta(t, 75, RentalPrice(from, from.Add(30*time.Minute), 150, 1), 1e-9)
}
