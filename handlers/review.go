package handlers

import (
	"net/http"

	"localchef-api/config"
	"localchef-api/models"

	"github.com/gin-gonic/gin"
)

type ReviewRequest struct {
	Email   string `json:"email" binding:"required,email"`
	MealID  string `json:"meal_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ListAllReviews returns every review
func ListAllReviews(c *gin.Context) {
	var reviews []models.Review
	if err := config.DB.Find(&reviews).Error; err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// ListReviewsByEmail returns reviews authored by the email query param.
func ListReviewsByEmail(c *gin.Context) {
	var reviews []models.Review
	if err := config.DB.Where("email = ?", c.Query("email")).Find(&reviews).Error; err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReview appends a review. Reviews have no update or delete path.
func CreateReview(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review := models.Review{
		Email:   req.Email,
		MealID:  req.MealID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if err := config.DB.Create(&review).Error; err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, review)
}
