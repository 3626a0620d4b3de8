package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/playpals/playpals-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	user := &models.User{Model: gorm.Model{ID: 42}, Email: "player@example.com"}
	tokenString, err := GenerateUserToken(user)
	require.NoError(t, err)

	token, err := ValidateToken(tokenString)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(42), claims["id"])
	assert.Equal(t, AccountTypeUser, claims["userType"])
}

func TestTurfOwnerTokenCarriesOwnerType(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	owner := &models.TurfOwner{Model: gorm.Model{ID: 7}, Email: "owner@example.com"}
	tokenString, err := GenerateTurfOwnerToken(owner)
	require.NoError(t, err)

	token, err := ValidateToken(tokenString)
	require.NoError(t, err)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, AccountTypeTurfOwner, claims["userType"])
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	user := &models.User{Model: gorm.Model{ID: 1}, Email: "a@b.c"}
	tokenString, err := GenerateUserToken(user)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-two")
	token, err := ValidateToken(tokenString)
	if err == nil {
		assert.False(t, token.Valid)
	}
}
