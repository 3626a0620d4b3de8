package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/playpals/playpals-backend/internal/models"
	"github.com/playpals/playpals-backend/internal/services"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateReview records a user's review of a turf, one per (user, turf), and
// folds the rating into the turf's running average under a row lock.
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input struct {
			TurfID  uint    `form:"turfId" binding:"required"`
			Rating  float64 `form:"rating" binding:"required,min=1,max=5"`
			Comment string  `form:"comment"`
		}

		if err := c.ShouldBind(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var existing models.Review
		if err := db.Where("user_id = ? AND turf_id = ?", userId, input.TurfID).First(&existing).Error; err == nil {
			c.JSON(400, gin.H{"error": "You have already reviewed this turf"})
			return
		}

		var photo string
		if file, err := c.FormFile("photo"); err == nil {
			url, err := services.UploadImage(file, "reviews")
			if err != nil {
				c.JSON(500, gin.H{"error": "Failed to upload photo", "details": err.Error()})
				return
			}
			photo = url
		}

		var review models.Review
		err := db.Transaction(func(tx *gorm.DB) error {
			var turf models.TurfOwner
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&turf, input.TurfID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errTurfNotFound
				}
				return err
			}

			review = models.Review{
				UserID:  userId,
				TurfID:  input.TurfID,
				Rating:  input.Rating,
				Comment: input.Comment,
				Photo:   photo,
			}
			if err := tx.Create(&review).Error; err != nil {
				return err
			}

			turf.Ratings = models.NextAverageRating(turf.Ratings, turf.CountReviews, input.Rating)
			turf.CountReviews++
			return tx.Save(&turf).Error
		})
		if err != nil {
			if errors.Is(err, errTurfNotFound) {
				c.JSON(404, gin.H{"error": err.Error()})
				return
			}
			// The unique (user_id, turf_id) index catches creates that
			// raced past the duplicate check above.
			c.JSON(400, gin.H{"error": "Failed to create review: " + err.Error()})
			return
		}

		c.JSON(201, gin.H{"success": true, "review": review})
	}
}

// GetTurfReviews lists all reviews for a turf with reviewer names attached.
func GetTurfReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reviews []models.Review
		if err := db.Where("turf_id = ?", c.Param("turfId")).
			Preload("User").
			Find(&reviews).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch reviews"})
			return
		}

		out := make([]gin.H, 0, len(reviews))
		for _, r := range reviews {
			out = append(out, gin.H{
				"id":      r.ID,
				"rating":  r.Rating,
				"comment": r.Comment,
				"photo":   r.Photo,
				"user": gin.H{
					"name":         r.User.Name,
					"profilePhoto": r.User.ProfilePhoto,
				},
			})
		}

		c.JSON(200, out)
	}
}

// GetUserReviews lists the logged-in user's reviews with turf details.
func GetUserReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var reviews []models.Review
		if err := db.Where("user_id = ?", userId).
			Preload("Turf").
			Find(&reviews).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch user reviews"})
			return
		}

		out := make([]gin.H, 0, len(reviews))
		for _, r := range reviews {
			out = append(out, gin.H{
				"id":      r.ID,
				"rating":  r.Rating,
				"comment": r.Comment,
				"photo":   r.Photo,
				"turf": gin.H{
					"turfName":     r.Turf.TurfName,
					"turfLocation": r.Turf.TurfLocation,
				},
			})
		}

		c.JSON(200, out)
	}
}

// UpdateReview edits a review; only its author may do so. The turf's rating
// aggregate is not recomputed on edit.
func UpdateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input struct {
			Rating  *float64 `json:"rating"`
			Comment *string  `json:"comment"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var review models.Review
		if err := db.First(&review, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Review not found"})
			return
		}

		if review.UserID != userId {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		if input.Rating != nil {
			if *input.Rating < 1 || *input.Rating > 5 {
				c.JSON(400, gin.H{"error": "Rating must be between 1 and 5"})
				return
			}
			review.Rating = *input.Rating
		}
		if input.Comment != nil {
			review.Comment = *input.Comment
		}

		if err := db.Save(&review).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update review"})
			return
		}

		c.JSON(200, review)
	}
}

// DeleteReview removes a review; only its author may do so. The turf's
// rating aggregate is not recomputed on delete.
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var review models.Review
		if err := db.First(&review, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Review not found"})
			return
		}

		if review.UserID != userId {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		if err := db.Delete(&review).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to delete review"})
			return
		}

		c.JSON(200, gin.H{"message": "Review deleted successfully"})
	}
}
