package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextAverageRatingEqualsArithmeticMean(t *testing.T) {
	ratings := []float64{5, 3, 4, 2, 5, 1, 4}

	avg := 0.0
	for i, r := range ratings {
		avg = NextAverageRating(avg, i, r)
	}

	sum := 0.0
	for _, r := range ratings {
		sum += r
	}
	assert.InDelta(t, sum/float64(len(ratings)), avg, 1e-9)
}

func TestNextAverageRatingFirstReview(t *testing.T) {
	assert.InDelta(t, 4.5, NextAverageRating(0, 0, 4.5), 1e-9)
}
