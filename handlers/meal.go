package handlers

import (
	"errors"
	"net/http"

	"localchef-api/config"
	"localchef-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MealRequest struct {
	ChefEmail    string  `json:"chef_email" binding:"required,email"`
	Name         string  `json:"name" binding:"required"`
	Price        float64 `json:"price"`
	Ingredients  string  `json:"ingredients"`
	DeliveryTime string  `json:"delivery_time"`
	Experience   string  `json:"experience"`
}

// ListMeals returns every meal
func ListMeals(c *gin.Context) {
	var meals []models.Meal
	if err := config.DB.Find(&meals).Error; err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, meals)
}

// GetMeal returns one meal by id
func GetMeal(c *gin.Context) {
	var meal models.Meal
	err := config.DB.First(&meal, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		return
	}
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, meal)
}

// ListMealsByChef returns all meals owned by a chef email
func ListMealsByChef(c *gin.Context) {
	var meals []models.Meal
	if err := config.DB.Where("chef_email = ?", c.Param("email")).Find(&meals).Error; err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, meals)
}

// CreateMeal inserts a meal; creation time is stamped server-side.
func CreateMeal(c *gin.Context) {
	var req MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal := models.Meal{
		ChefEmail:    req.ChefEmail,
		Name:         req.Name,
		Price:        req.Price,
		Ingredients:  req.Ingredients,
		DeliveryTime: req.DeliveryTime,
		Experience:   req.Experience,
	}
	if err := config.DB.Create(&meal).Error; err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, meal)
}

// UpdateMeal updates the mutable fields of a meal by id.
func UpdateMeal(c *gin.Context) {
	var req MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := config.DB.Model(&models.Meal{}).Where("id = ?", c.Param("id")).Updates(map[string]interface{}{
		"name":          req.Name,
		"price":         req.Price,
		"ingredients":   req.Ingredients,
		"delivery_time": req.DeliveryTime,
		"experience":    req.Experience,
	})
	if result.Error != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"modified_count": result.RowsAffected})
}

// DeleteMeal deletes a meal by id. Deleting a missing id is a zero-row ack,
// matching the store's delete semantics.
func DeleteMeal(c *gin.Context) {
	result := config.DB.Delete(&models.Meal{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted_count": result.RowsAffected})
}

// internalError is the shared 500 response; backend failures never leak
// driver details to the client.
func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
