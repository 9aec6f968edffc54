package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Live is the root liveness probe
func Live(c *gin.Context) {
	c.String(http.StatusOK, "localchef bazar server is running")
}

// Health reports service health for monitors
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "Localchef Bazar API",
	})
}
