// internal/storage/db.go
package storage

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"attendance_backend/internal/models"
)

func OpenDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.AttendanceLog{},
		&models.Geofence{},
		&models.LeaveRequest{},
	); err != nil {
		log.Fatal("failed migrate: ", err)
	}

	seedGeofences(db)

	return db
}

// seedGeofences installs a default office geofence so a fresh deployment has
// reference data for clients to compute against.
func seedGeofences(db *gorm.DB) {
	var n int64
	if err := db.Model(&models.Geofence{}).Count(&n).Error; err != nil || n > 0 {
		return
	}
	gf := models.Geofence{
		Name:         "Main Office",
		Latitude:     37.7749,
		Longitude:    -122.4194,
		RadiusMeters: 100,
	}
	if err := db.Create(&gf).Error; err != nil {
		log.Printf("seed geofence: %v", err)
	}
}
