package models

import "time"

type ActionType string

const (
	ActionClockIn  ActionType = "clockIn"
	ActionClockOut ActionType = "clockOut"
	ActionBreak    ActionType = "break"
)

func (t ActionType) Valid() bool {
	switch t {
	case ActionClockIn, ActionClockOut, ActionBreak:
		return true
	}
	return false
}

// AttendanceLog is one attendance action as observed on a device. ClientID is
// the client-generated idempotency key: at most one stored row per value.
type AttendanceLog struct {
	ID                   string     `gorm:"type:varchar(36);primaryKey" json:"serverId"`
	UserID               uint       `gorm:"index:idx_user_client_ts,priority:1;not null" json:"userId"`
	ClientID             string     `gorm:"uniqueIndex;not null" json:"clientId"`
	ActionType           ActionType `gorm:"type:varchar(20);not null" json:"actionType"`
	ClientTimestamp      time.Time  `gorm:"index:idx_user_client_ts,priority:2,sort:desc;not null" json:"clientTimestamp"`
	ServerTimestamp      time.Time  `gorm:"not null" json:"serverTimestamp"`
	Latitude             float64    `gorm:"not null" json:"latitude"`
	Longitude            float64    `gorm:"not null" json:"longitude"`
	Accuracy             float64    `gorm:"not null" json:"accuracy"`
	WithinGeofence       bool       `gorm:"not null" json:"withinGeofence"`
	DistanceFromGeofence *float64   `json:"distanceFromGeofence,omitempty"`
	Notes                string     `json:"notes,omitempty"`
	DeviceID             string     `gorm:"index" json:"deviceId,omitempty"`
	NetworkType          string     `json:"networkType,omitempty"`
}
