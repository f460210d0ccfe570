package models

import "time"

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

type LeaveRequest struct {
	ID        string      `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID    uint        `gorm:"index;not null" json:"userId"`
	LeaveType string      `gorm:"type:varchar(30);not null" json:"leaveType"`
	FromDate  time.Time   `gorm:"not null" json:"fromDate"`
	ToDate    time.Time   `gorm:"not null" json:"toDate"`
	Reason    string      `json:"reason"`
	Status    LeaveStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}
