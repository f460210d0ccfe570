package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"attendance_backend/internal/models"
)

type GeofenceHandler struct {
	DB *gorm.DB
}

func NewGeofenceHandler(db *gorm.DB) *GeofenceHandler { return &GeofenceHandler{DB: db} }

func (h *GeofenceHandler) List(c *gin.Context) {
	var rows []models.Geofence
	if err := h.DB.Order("id asc").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch geofences"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "geofences": rows})
}
