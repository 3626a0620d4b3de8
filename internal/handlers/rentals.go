package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/playpals/playpals-backend/internal/models"
	"github.com/playpals/playpals-backend/internal/services"
	"github.com/playpals/playpals-backend/pkg/utils"
	"gorm.io/gorm"
)

// CreateRental lists new rentable equipment. The owner is taken from the
// token, with ownerType picking whether the lister is a user or turf owner.
func CreateRental(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name         string  `form:"name" binding:"required"`
			Description  string  `form:"description"`
			Category     string  `form:"category" binding:"required"`
			PricePerHour float64 `form:"pricePerHour" binding:"required,gt=0"`
			Quantity     int     `form:"quantity" binding:"required,min=1"`
			OwnerType    string  `form:"ownerType" binding:"required"`
		}

		if err := c.ShouldBind(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		ownerType := models.OwnerType(input.OwnerType)
		if ownerType != models.OwnerTypeUser && ownerType != models.OwnerTypeTurfOwner {
			c.JSON(400, gin.H{"error": "Invalid ownerType. Must be 'USER' or 'TURFOWNER'"})
			return
		}

		accountId := c.GetUint("userId")
		accountType := c.GetString("userType")

		var userID, turfOwnerID *uint
		switch {
		case ownerType == models.OwnerTypeUser && accountType == utils.AccountTypeUser:
			userID = &accountId
		case ownerType == models.OwnerTypeTurfOwner && accountType == utils.AccountTypeTurfOwner:
			turfOwnerID = &accountId
		default:
			c.JSON(400, gin.H{"error": "ownerType does not match the logged-in account"})
			return
		}

		var photos []string
		if form, err := c.MultipartForm(); err == nil {
			if files := form.File["photos"]; len(files) > 0 {
				urls, err := services.UploadImages(files, "amenities")
				if err != nil {
					c.JSON(500, gin.H{"error": "Failed to upload photos", "details": err.Error()})
					return
				}
				photos = urls
			}
		}

		rental := models.SportsAmenity{
			Name:         input.Name,
			Description:  input.Description,
			Category:     input.Category,
			PricePerHour: input.PricePerHour,
			Quantity:     input.Quantity,
			Photos:       pq.StringArray(photos),
			IsAvailable:  true,
			OwnerType:    ownerType,
			UserID:       userID,
			TurfOwnerID:  turfOwnerID,
		}

		if err := db.Create(&rental).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create rental", "details": err.Error()})
			return
		}

		c.JSON(201, rental)
	}
}

// GetRentals lists all available rentals
func GetRentals(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rentals []models.SportsAmenity
		if err := db.Where("is_available = ?", true).Order("name asc").Find(&rentals).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch rentals"})
			return
		}

		c.JSON(200, rentals)
	}
}

// GetRental retrieves one rental by id
func GetRental(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rental models.SportsAmenity
		if err := db.First(&rental, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Rental not found"})
			return
		}

		c.JSON(200, rental)
	}
}

// UpdateRental updates a listing; only its owner may modify it.
func UpdateRental(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rental models.SportsAmenity
		if err := db.First(&rental, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Rental not found"})
			return
		}

		if !ownsRental(c, &rental) {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		var input struct {
			Name         *string  `form:"name"`
			Description  *string  `form:"description"`
			Category     *string  `form:"category"`
			PricePerHour *float64 `form:"pricePerHour"`
			Quantity     *int     `form:"quantity"`
			IsAvailable  *bool    `form:"isAvailable"`
		}

		if err := c.ShouldBind(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if input.Name != nil {
			rental.Name = *input.Name
		}
		if input.Description != nil {
			rental.Description = *input.Description
		}
		if input.Category != nil {
			rental.Category = *input.Category
		}
		if input.PricePerHour != nil {
			rental.PricePerHour = *input.PricePerHour
		}
		if input.Quantity != nil {
			rental.Quantity = *input.Quantity
		}
		if input.IsAvailable != nil {
			rental.IsAvailable = *input.IsAvailable
		}

		if form, err := c.MultipartForm(); err == nil {
			if files := form.File["photos"]; len(files) > 0 {
				urls, err := services.UploadImages(files, "amenities")
				if err != nil {
					c.JSON(500, gin.H{"error": "Failed to upload photos", "details": err.Error()})
					return
				}
				rental.Photos = pq.StringArray(urls)
			}
		}

		if err := db.Save(&rental).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update rental"})
			return
		}

		c.JSON(200, rental)
	}
}

// DeleteRental removes a listing; only its owner may delete it.
func DeleteRental(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rental models.SportsAmenity
		if err := db.First(&rental, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Rental not found"})
			return
		}

		if !ownsRental(c, &rental) {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		if err := db.Delete(&rental).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to delete rental"})
			return
		}

		c.JSON(200, gin.H{"message": "Rental deleted successfully"})
	}
}

func ownsRental(c *gin.Context, rental *models.SportsAmenity) bool {
	accountId := c.GetUint("userId")
	switch c.GetString("userType") {
	case utils.AccountTypeUser:
		return rental.UserID != nil && *rental.UserID == accountId
	case utils.AccountTypeTurfOwner:
		return rental.TurfOwnerID != nil && *rental.TurfOwnerID == accountId
	}
	return false
}
