// internal/routes/router.go
package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"attendance_backend/internal/config"
	"attendance_backend/internal/handlers"
	"attendance_backend/internal/identity"
	"attendance_backend/internal/middleware"
	"attendance_backend/internal/storage"
)

func NewRouter(db *gorm.DB, cfg config.Config) *gin.Engine {
	r := gin.Default()

	store := storage.NewStore(db)
	verifier := identity.NewGoogleVerifier(cfg.GoogleClientID)

	authH := handlers.NewAuthHandler(db, verifier, cfg.JWTSecret)
	syncH := handlers.NewSyncHandler(store)
	geoH := handlers.NewGeofenceHandler(db)
	leaveH := handlers.NewLeaveHandler(db)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)
		api.POST("/auth/google-verify", authH.GoogleVerify)
	}

	authed := r.Group("/api")
	authed.Use(middleware.AuthRequired(cfg.JWTSecret))
	{
		authed.POST("/sync-logs", syncH.SyncLogs)
		authed.GET("/attendance-logs", syncH.ListLogs)
		authed.GET("/users/profile", authH.Profile)
		authed.GET("/geofences", geoH.List)
		authed.POST("/leave-requests", leaveH.Create)
		authed.GET("/leave-requests", leaveH.List)
	}

	return r
}
