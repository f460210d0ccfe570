// internal/models/geofence.go
package models

import "time"

// Geofence is read-only reference data; the server never does geofence math,
// clients compute withinGeofence against these definitions.
type Geofence struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Latitude     float64   `gorm:"not null" json:"latitude"`
	Longitude    float64   `gorm:"not null" json:"longitude"`
	RadiusMeters float64   `gorm:"not null" json:"radiusMeters"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
