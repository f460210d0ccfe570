// internal/handlers/auth_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"attendance_backend/internal/identity"
	"attendance_backend/internal/models"
)

const tokenTTL = 7 * 24 * time.Hour

type AuthHandler struct {
	DB        *gorm.DB
	Verifier  identity.Verifier
	JWTSecret string
}

func NewAuthHandler(db *gorm.DB, v identity.Verifier, secret string) *AuthHandler {
	return &AuthHandler{DB: db, Verifier: v, JWTSecret: secret}
}

type GoogleVerifyReq struct {
	IDToken string `json:"idToken" binding:"required"`
}

// GoogleVerify exchanges a provider ID token for a session JWT, creating the
// local user on first sign-in and refreshing profile fields on revisits.
func (h *AuthHandler) GoogleVerify(c *gin.Context) {
	var req GoogleVerifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "ID token is required"})
		return
	}

	id, err := h.Verifier.Verify(c.Request.Context(), req.IDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid Google token"})
		return
	}

	var u models.User
	err = h.DB.Where("google_id = ?", id.SubjectID).First(&u).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		u = models.User{
			GoogleID:    id.SubjectID,
			Email:       strings.ToLower(strings.TrimSpace(id.Email)),
			DisplayName: id.DisplayName,
			PhotoURL:    id.PhotoURL,
			IsActive:    true,
		}
		if err := h.DB.Create(&u).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "register failed"})
			return
		}
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "lookup failed"})
		return
	default:
		u.DisplayName = id.DisplayName
		u.PhotoURL = id.PhotoURL
		if err := h.DB.Save(&u).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "update failed"})
			return
		}
	}

	claims := jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.JWTSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "sign token failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   signed,
		"user": gin.H{
			"id":          u.ID,
			"email":       u.Email,
			"displayName": u.DisplayName,
			"photoUrl":    u.PhotoURL,
			"googleId":    u.GoogleID,
			"createdAt":   u.CreatedAt,
		},
	})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	userID := c.GetUint("user_id")

	var u models.User
	if err := h.DB.First(&u, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"id":          u.ID,
		"email":       u.Email,
		"displayName": u.DisplayName,
		"photoUrl":    u.PhotoURL,
		"googleId":    u.GoogleID,
		"isActive":    u.IsActive,
		"lastSyncAt":  u.LastSyncAt,
		"createdAt":   u.CreatedAt,
	})
}
