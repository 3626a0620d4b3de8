package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/playpals/playpals-backend/internal/models"
	"github.com/playpals/playpals-backend/internal/services"
	"github.com/playpals/playpals-backend/pkg/utils"
	"gorm.io/gorm"
)

type TurfOwnerSignupInput struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	PhoneNumber  string `json:"phoneNumber"`
	TurfName     string `json:"turfName" binding:"required"`
	TurfLocation string `json:"turfLocation" binding:"required"`
}

// SignupTurfOwner registers a turf owner with the basic turf listing fields.
func SignupTurfOwner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input TurfOwnerSignupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var existing models.TurfOwner
		if result := db.Where("email = ?", input.Email).First(&existing); result.Error == nil {
			c.JSON(400, gin.H{"error": "Turf owner already exists. Please login"})
			return
		}

		owner := models.TurfOwner{
			Name:         input.Name,
			Email:        input.Email,
			Password:     input.Password,
			PhoneNumber:  input.PhoneNumber,
			TurfName:     input.TurfName,
			TurfLocation: input.TurfLocation,
			Available:    true,
		}
		if err := owner.HashPassword(); err != nil {
			c.JSON(500, gin.H{"error": "Failed to hash password"})
			return
		}

		if result := db.Create(&owner); result.Error != nil {
			c.JSON(500, gin.H{"error": "Failed to create turf owner: " + result.Error.Error()})
			return
		}

		token, err := utils.GenerateTurfOwnerToken(&owner)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to generate token"})
			return
		}
		c.SetCookie("token", token, tokenCookieMaxAge, "/", "", true, true)

		c.JSON(201, gin.H{
			"message":   "Turf owner successfully signed up",
			"token":     token,
			"turfOwner": owner,
		})
	}
}

// LoginTurfOwner authenticates a turf owner.
func LoginTurfOwner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var owner models.TurfOwner
		if result := db.Where("email = ?", input.Email).First(&owner); result.Error != nil {
			c.JSON(401, gin.H{"error": "Invalid credentials"})
			return
		}

		if err := owner.CheckPassword(input.Password); err != nil {
			c.JSON(401, gin.H{"error": "Invalid credentials"})
			return
		}

		token, err := utils.GenerateTurfOwnerToken(&owner)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to generate token"})
			return
		}
		c.SetCookie("token", token, tokenCookieMaxAge, "/", "", true, true)

		c.JSON(200, gin.H{
			"message":   "Login successful",
			"token":     token,
			"turfOwner": owner,
		})
	}
}

// UpdateTurfDetails fills in or updates the turf listing: description,
// pricing, capacity, availability slots and photos (multipart form).
func UpdateTurfDetails(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerId := c.GetUint("userId")

		var owner models.TurfOwner
		if err := db.First(&owner, ownerId).Error; err != nil {
			c.JSON(404, gin.H{"error": "Turf owner not found"})
			return
		}

		var input struct {
			TurfDescription   *string  `form:"turfDescription"`
			TurfSize          *string  `form:"turfSize"`
			TurfGames         []string `form:"turfGames"`
			Amenities         []string `form:"amenities"`
			PricePerPerson    *float64 `form:"pricePerPerson"`
			TotalSeats        *int     `form:"totalSeats"`
			Available         *bool    `form:"available"`
			AvailabilitySlots *string  `form:"availabilitySlots"`
		}

		if err := c.ShouldBind(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if input.TurfDescription != nil {
			owner.TurfDescription = *input.TurfDescription
		}
		if input.TurfSize != nil {
			owner.TurfSize = *input.TurfSize
		}
		if input.TurfGames != nil {
			owner.TurfGames = pq.StringArray(input.TurfGames)
		}
		if input.Amenities != nil {
			owner.Amenities = pq.StringArray(input.Amenities)
		}
		if input.PricePerPerson != nil {
			owner.PricePerPerson = *input.PricePerPerson
		}
		if input.TotalSeats != nil {
			owner.TotalSeats = *input.TotalSeats
			owner.AvailableSeats = *input.TotalSeats
		}
		if input.Available != nil {
			owner.Available = *input.Available
		}

		// Availability slots arrive as a JSON document in the form field
		if input.AvailabilitySlots != nil && *input.AvailabilitySlots != "" {
			var slots models.AvailabilitySlots
			if err := json.Unmarshal([]byte(*input.AvailabilitySlots), &slots); err != nil {
				c.JSON(400, gin.H{"error": "Invalid availabilitySlots document: " + err.Error()})
				return
			}
			owner.AvailabilitySlots = slots.Normalize()
		}

		if file, err := c.FormFile("profilePhoto"); err == nil {
			url, err := services.UploadImage(file, "profiles")
			if err != nil {
				c.JSON(500, gin.H{"error": "Failed to upload profile photo", "details": err.Error()})
				return
			}
			owner.ProfilePhoto = url
		}

		if form, err := c.MultipartForm(); err == nil {
			if files := form.File["turfPhotos"]; len(files) > 0 {
				if len(files) > 5 {
					c.JSON(400, gin.H{"error": "At most 5 turf photos allowed"})
					return
				}
				urls, err := services.UploadImages(files, "turfs")
				if err != nil {
					c.JSON(500, gin.H{"error": "Failed to upload turf photos", "details": err.Error()})
					return
				}
				owner.TurfPhotos = pq.StringArray(urls)
			}
		}

		if err := db.Save(&owner).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update turf details"})
			return
		}

		c.JSON(200, gin.H{"status": true, "message": "Turf owner updated successfully", "data": owner})
	}
}

// GetTurfs lists all turfs currently open for booking.
func GetTurfs(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var owners []models.TurfOwner
		if err := db.Where("available = ?", true).Order("turf_name asc").Find(&owners).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch turfs"})
			return
		}

		c.JSON(200, gin.H{"status": true, "data": owners})
	}
}

// GetTurf retrieves one turf listing by id.
func GetTurf(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var owner models.TurfOwner
		if err := db.First(&owner, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Turf not found"})
			return
		}

		c.JSON(200, gin.H{"status": true, "data": owner})
	}
}
