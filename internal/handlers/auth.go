package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/playpals/playpals-backend/internal/models"
	"github.com/playpals/playpals-backend/internal/services"
	"github.com/playpals/playpals-backend/pkg/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Name            string   `form:"name" binding:"required"`
	Email           string   `form:"email" binding:"required,email"`
	Password        string   `form:"password" binding:"required,min=6"`
	DOB             string   `form:"dob"`
	Gender          string   `form:"gender"`
	City            string   `form:"city"`
	GamePreferences []string `form:"gamePreferences"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

const tokenCookieMaxAge = 7 * 24 * 3600

// Register creates a user account from a multipart form, with an optional
// profile photo that is pushed to cloud storage.
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var existing models.User
		if result := db.Where("email = ?", input.Email).First(&existing); result.Error == nil {
			c.JSON(400, gin.H{"error": "User already exists. Please login"})
			return
		}

		var dob time.Time
		if input.DOB != "" {
			parsed, err := time.Parse("2006-01-02", input.DOB)
			if err != nil {
				c.JSON(400, gin.H{"error": "Invalid dob, expected YYYY-MM-DD"})
				return
			}
			dob = parsed
		}

		var profilePhoto string
		if file, err := c.FormFile("profilePhoto"); err == nil {
			url, err := services.UploadImage(file, "profiles")
			if err != nil {
				c.JSON(500, gin.H{"error": "Failed to upload profile photo", "details": err.Error()})
				return
			}
			profilePhoto = url
		}

		user := models.User{
			Name:            input.Name,
			Email:           input.Email,
			Password:        input.Password,
			DOB:             dob,
			Gender:          input.Gender,
			City:            input.City,
			ProfilePhoto:    profilePhoto,
			GamePreferences: pq.StringArray(input.GamePreferences),
		}
		if err := user.HashPassword(); err != nil {
			c.JSON(500, gin.H{"error": "Failed to hash password"})
			return
		}

		if result := db.Create(&user); result.Error != nil {
			c.JSON(500, gin.H{"error": "Failed to create user: " + result.Error.Error()})
			return
		}

		token, err := utils.GenerateUserToken(&user)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to generate token"})
			return
		}
		c.SetCookie("token", token, tokenCookieMaxAge, "/", "", true, true)

		c.JSON(201, gin.H{
			"message": "User successfully signed up",
			"token":   token,
			"user":    user,
		})
	}
}

// Login authenticates a user and issues a token both in the body and as an
// httpOnly cookie.
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if result := db.Where("email = ?", input.Email).First(&user); result.Error != nil {
			c.JSON(401, gin.H{"error": "Invalid credentials"})
			return
		}

		if err := user.CheckPassword(input.Password); err != nil {
			c.JSON(401, gin.H{"error": "Invalid credentials"})
			return
		}

		token, err := utils.GenerateUserToken(&user)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to generate token"})
			return
		}
		c.SetCookie("token", token, tokenCookieMaxAge, "/", "", true, true)

		c.JSON(200, gin.H{
			"message": "Login successful",
			"token":   token,
			"user":    user,
		})
	}
}

// Logout clears the cookie and revokes the presented token in Redis for the
// remainder of its lifetime.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetString("token")
		if token != "" && services.RedisClient != nil {
			// Tokens live for 7 days; revoking for the full window is
			// simpler than decoding the exact remaining TTL.
			if err := services.RevokeToken(c.Request.Context(), token, 7*24*time.Hour); err != nil {
				c.JSON(500, gin.H{"error": "Failed to revoke token"})
				return
			}
		}
		c.SetCookie("token", "", -1, "/", "", true, true)
		c.JSON(200, gin.H{"message": "Logged out successfully"})
	}
}

// ResetPasswordRequestInput defines the input for requesting a password reset
type ResetPasswordRequestInput struct {
	Email string `json:"email" binding:"required,email"`
}

// RequestPasswordReset initiates the password reset process
func RequestPasswordReset(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ResetPasswordRequestInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if result := db.Where("email = ?", input.Email).First(&user); result.Error != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		// Invalidate all previous unused OTPs for this user
		if result := db.Model(&models.OTP{}).
			Where("user_id = ? AND type = ? AND used = ? AND expires_at > ?",
				user.ID, models.OTPTypePasswordReset, false, time.Now()).
			Update("used", true); result.Error != nil {
			c.JSON(500, gin.H{"error": "Failed to invalidate previous OTPs"})
			return
		}

		// Timestamp keys each request so repeated resets get distinct codes
		timestamp := time.Now().Format("20060102150405")
		uniqueKey := fmt.Sprintf("%s-%s", input.Email, timestamp)
		otp := utils.GenerateOTP(uniqueKey)

		otpRecord := models.OTP{
			UserID:    user.ID,
			Code:      otp,
			Type:      models.OTPTypePasswordReset,
			ExpiresAt: time.Now().Add(utils.OTPExpiration),
		}

		if result := db.Create(&otpRecord); result.Error != nil {
			c.JSON(500, gin.H{"error": "Failed to generate OTP"})
			return
		}

		if err := utils.SendPasswordResetOTP(user.Email, otp); err != nil {
			c.JSON(500, gin.H{"error": "Failed to send OTP: " + err.Error()})
			return
		}

		c.JSON(200, gin.H{"message": "Password reset OTP sent successfully via email"})
	}
}

// VerifyOTPInput defines the input for verifying OTP
type VerifyOTPInput struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

// ResetPasswordInput defines the input for resetting password
type ResetPasswordInput struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// VerifyOTP verifies if an OTP is valid
func VerifyOTP(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input VerifyOTPInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if result := db.Where("email = ?", input.Email).First(&user); result.Error != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		var otpRecord models.OTP
		if result := db.Where("user_id = ? AND code = ? AND type = ? AND used = ? AND expires_at > ?",
			user.ID, input.OTP, models.OTPTypePasswordReset, false, time.Now()).
			First(&otpRecord); result.Error != nil {
			c.JSON(400, gin.H{"error": "Invalid or expired OTP"})
			return
		}

		// Not marked as used yet; consumed during the actual reset
		c.JSON(200, gin.H{"message": "OTP verified successfully", "valid": true})
	}
}

// ResetPassword resets the user's password after OTP verification
func ResetPassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ResetPasswordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if result := db.Where("email = ?", input.Email).First(&user); result.Error != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		var otpRecord models.OTP
		if result := db.Where("user_id = ? AND code = ? AND type = ? AND used = ? AND expires_at > ?",
			user.ID, input.OTP, models.OTPTypePasswordReset, false, time.Now()).
			First(&otpRecord); result.Error != nil {
			c.JSON(400, gin.H{"error": "Invalid or expired OTP"})
			return
		}

		// Immediately mark OTP as used to prevent replay
		if err := db.Model(&models.OTP{}).Where("id = ?", otpRecord.ID).Update("used", true).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to mark OTP as used"})
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to hash password"})
			return
		}

		user.PasswordHash = string(hashedPassword)
		if result := db.Save(&user); result.Error != nil {
			c.JSON(500, gin.H{"error": "Failed to update password"})
			return
		}

		c.JSON(200, gin.H{"message": "Password reset successful"})
	}
}

// ChangePasswordInput defines the input for an authenticated password change
type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// ChangePassword updates the password for a logged-in user
func ChangePassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input ChangePasswordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, userId).Error; err != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		if err := user.CheckPassword(input.OldPassword); err != nil {
			c.JSON(401, gin.H{"error": "Incorrect current password"})
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to hash password"})
			return
		}

		user.PasswordHash = string(hashedPassword)
		if err := db.Save(&user).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update password"})
			return
		}

		c.JSON(200, gin.H{"message": "Password changed successfully"})
	}
}
