package models

import "time"

// AuditModel is one mutation audit row. UnlockRequestID links the
// row to the unlock request that authorized a locked edit.
type AuditModel struct {
	ID              string  `gorm:"primaryKey"`
	OrganizationID  string  `gorm:"index"`
	MemberID        string
	Event           string
	TimeEntryID     string
	UnlockRequestID *string `gorm:"index"`
	CreatedAt       time.Time
}

func (AuditModel) TableName() string { return "audits" }
