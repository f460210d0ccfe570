// internal/models/user.go
package models

import "time"

type User struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	GoogleID    string     `gorm:"uniqueIndex;not null" json:"googleId"`
	Email       string     `gorm:"uniqueIndex;not null" json:"email"`
	DisplayName string     `gorm:"not null" json:"displayName"`
	PhotoURL    string     `json:"photoUrl"`
	IsActive    bool       `gorm:"not null;default:true" json:"isActive"`
	LastSyncAt  *time.Time `json:"lastSyncAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}
