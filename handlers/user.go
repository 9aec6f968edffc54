package handlers

import (
	"errors"
	"net/http"

	"localchef-api/config"
	"localchef-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	Password string `json:"password"` // optional; only needed for /auth/login
}

// CreateUser inserts a user record. Role and status are server defaults; role
// never starts at anything other than "user".
func CreateUser(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{
		Email:  req.Email,
		Name:   req.Name,
		Role:   models.RoleUser,
		Status: "active",
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			internalError(c)
			return
		}
		user.PasswordHash = string(hash)
	}

	if err := config.DB.Create(&user).Error; err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUser returns a user by email
func GetUser(c *gin.Context) {
	var user models.User
	err := config.DB.First(&user, "email = ?", c.Param("email")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUserRole returns just the role for an email, defaulting to "user" when
// no record exists.
func GetUserRole(c *gin.Context) {
	var user models.User
	err := config.DB.First(&user, "email = ?", c.Param("email")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, gin.H{"role": models.RoleUser})
		return
	}
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": user.Role})
}
