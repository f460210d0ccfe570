// internal/handlers/leave_handler.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"attendance_backend/internal/models"
)

type LeaveHandler struct {
	DB *gorm.DB
}

func NewLeaveHandler(db *gorm.DB) *LeaveHandler { return &LeaveHandler{DB: db} }

type LeaveReq struct {
	LeaveType string    `json:"leaveType" binding:"required"`
	FromDate  time.Time `json:"fromDate" binding:"required"`
	ToDate    time.Time `json:"toDate" binding:"required"`
	Reason    string    `json:"reason"`
}

func (h *LeaveHandler) Create(c *gin.Context) {
	var req LeaveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body", "detail": err.Error()})
		return
	}

	row := models.LeaveRequest{
		ID:        uuid.NewString(),
		UserID:    c.GetUint("user_id"),
		LeaveType: req.LeaveType,
		FromDate:  req.FromDate,
		ToDate:    req.ToDate,
		Reason:    req.Reason,
		Status:    models.LeavePending,
	}
	if err := h.DB.Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to submit leave request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Leave request submitted",
		"request": row,
	})
}

func (h *LeaveHandler) List(c *gin.Context) {
	userID := c.GetUint("user_id")

	var rows []models.LeaveRequest
	if err := h.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch leave requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "requests": rows})
}
