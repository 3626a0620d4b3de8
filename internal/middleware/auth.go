package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/playpals/playpals-backend/internal/services"
	"github.com/playpals/playpals-backend/pkg/utils"
)

// AuthMiddleware validates the signed token from the Authorization header or
// the token cookie and attaches the account identity to the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		// First try to get token from Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		// If not found in header, try the cookie set at login
		if tokenString == "" {
			if cookie, err := c.Cookie("token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			c.JSON(401, gin.H{"error": "Authorization header or token cookie required"})
			c.Abort()
			return
		}

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.JSON(401, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		if services.RedisClient != nil {
			revoked, err := services.IsTokenRevoked(c.Request.Context(), tokenString)
			if err == nil && revoked {
				c.JSON(401, gin.H{"error": "Token has been logged out"})
				c.Abort()
				return
			}
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(401, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		id, ok := claims["id"].(float64)
		if !ok {
			c.JSON(401, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}
		userType, _ := claims["userType"].(string)

		c.Set("userId", uint(id))
		c.Set("userType", userType)
		c.Set("token", tokenString)
		c.Next()
	}
}

// RequireUser rejects requests whose token does not belong to a player account.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("userType") != utils.AccountTypeUser {
			c.JSON(403, gin.H{"error": "User account required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireTurfOwner rejects requests whose token does not belong to a turf owner.
func RequireTurfOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("userType") != utils.AccountTypeTurfOwner {
			c.JSON(403, gin.H{"error": "Turf owner account required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
