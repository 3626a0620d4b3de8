package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/playpals/playpals-backend/internal/models"
	"github.com/playpals/playpals-backend/internal/services"
	"gorm.io/gorm"
)

// GetProfile retrieves the logged-in user's profile
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var user models.User
		if err := db.First(&user, userId).Error; err != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		c.JSON(200, gin.H{"status": true, "data": user})
	}
}

// GetUser retrieves a user's public profile by id
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.First(&user, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		c.JSON(200, gin.H{
			"status": true,
			"data": gin.H{
				"id":              user.ID,
				"name":            user.Name,
				"city":            user.City,
				"profilePhoto":    user.ProfilePhoto,
				"gamePreferences": user.GamePreferences,
			},
		})
	}
}

// GetUsers lists all users
func GetUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Find(&users).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch users"})
			return
		}

		c.JSON(200, gin.H{"status": true, "data": users})
	}
}

// UpdateProfile updates the user's profile information, including an
// optional replacement profile photo.
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input struct {
			Name            *string  `form:"name"`
			Gender          *string  `form:"gender"`
			City            *string  `form:"city"`
			GamePreferences []string `form:"gamePreferences"`
		}

		if err := c.ShouldBind(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, userId).Error; err != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		// Update fields individually to handle empty strings properly
		if input.Name != nil {
			user.Name = *input.Name
		}
		if input.Gender != nil {
			user.Gender = *input.Gender
		}
		if input.City != nil {
			user.City = *input.City
		}
		if input.GamePreferences != nil {
			user.GamePreferences = pq.StringArray(input.GamePreferences)
		}

		if file, err := c.FormFile("profilePhoto"); err == nil {
			url, err := services.UploadImage(file, "profiles")
			if err != nil {
				c.JSON(500, gin.H{"error": "Failed to upload profile photo", "details": err.Error()})
				return
			}
			user.ProfilePhoto = url
		}

		if err := db.Save(&user).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update profile"})
			return
		}

		c.JSON(200, gin.H{"status": true, "data": user})
	}
}
