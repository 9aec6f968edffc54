package handlers

import (
	"errors"
	"net/http"

	"localchef-api/config"
	"localchef-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FavoriteRequest struct {
	Email    string `json:"email" binding:"required,email"`
	MealID   string `json:"meal_id" binding:"required"`
	MealName string `json:"meal_name"`
}

// CreateFavorite bookmarks a meal for a user. The (email, meal_id) uniqueness
// check is a read followed by an insert, not an atomic conditional write, so
// two concurrent duplicate requests can both pass the check.
func CreateFavorite(c *gin.Context) {
	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Favorite
	err := config.DB.Where("email = ? AND meal_id = ?", req.Email, req.MealID).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Favorite already exists"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		internalError(c)
		return
	}

	fav := models.Favorite{
		Email:    req.Email,
		MealID:   req.MealID,
		MealName: req.MealName,
	}
	if err := config.DB.Create(&fav).Error; err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, fav)
}

// ListFavoritesByEmail returns favorites for the email query param; the email
// is required to form the query at all.
func ListFavoritesByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}

	var favorites []models.Favorite
	if err := config.DB.Where("email = ?", email).Find(&favorites).Error; err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, favorites)
}

// DeleteFavorite removes a favorite by id. A missing id is a zero-row ack.
func DeleteFavorite(c *gin.Context) {
	result := config.DB.Delete(&models.Favorite{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted_count": result.RowsAffected})
}
