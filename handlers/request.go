package handlers

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"

	"localchef-api/config"
	"localchef-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RoleRequestInput struct {
	Email string             `json:"email" binding:"required,email"`
	Type  models.RequestType `json:"type" binding:"required"`
}

type RequestStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// CreateRoleRequest records a user's ask to be promoted.
func CreateRoleRequest(c *gin.Context) {
	var req RoleRequestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request := models.RoleRequest{
		Email:  req.Email,
		Type:   req.Type,
		Status: models.RequestPending,
	}
	if err := config.DB.Create(&request).Error; err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, request)
}

// ListRoleRequests returns every role request
func ListRoleRequests(c *gin.Context) {
	var requests []models.RoleRequest
	if err := config.DB.Find(&requests).Error; err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// UpdateRoleRequest applies the approval workflow: look up the request,
// persist the new status, and on approval mutate the requester's user record
// according to the requested type. The lookup and the writes are separate
// store operations, not a transaction.
func UpdateRoleRequest(c *gin.Context) {
	var req RequestStatusInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var request models.RoleRequest
	err := config.DB.First(&request, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}
	if err != nil {
		internalError(c)
		return
	}

	if err := config.DB.Model(&request).Update("status", req.Status).Error; err != nil {
		internalError(c)
		return
	}

	if req.Status == models.RequestApproved {
		switch request.Type {
		case models.RequestChef:
			// Informational 4-digit id; collisions are not checked and there
			// is no retry.
			chefID := fmt.Sprintf("%d", 1000+rand.Intn(9000))
			config.DB.Model(&models.User{}).Where("email = ?", request.Email).
				Updates(map[string]interface{}{"role": models.RoleChef, "chef_id": chefID})
		case models.RequestAdmin:
			config.DB.Model(&models.User{}).Where("email = ?", request.Email).
				Update("role", models.RoleAdmin)
		}
		// Any other type: the request status changes but no user mutation
		// occurs.
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request updated"})
}
