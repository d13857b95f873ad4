package models

import "time"

type UnlockRequestModel struct {
	ID                string  `gorm:"primaryKey"`
	OrganizationID    string  `gorm:"index:idx_unlock_requests_org_status"`
	ProjectID         string  `gorm:"index:idx_unlock_requests_project_status"`
	RequesterMemberID string  `gorm:"index:idx_unlock_requests_requester_status"`
	ApproverMemberID  *string
	Reason            *string
	Status            string `gorm:"default:pending;index:idx_unlock_requests_org_status;index:idx_unlock_requests_project_status;index:idx_unlock_requests_requester_status"`
	ApprovedAt        *time.Time
	RejectedAt        *time.Time
	ExpiresAt         *time.Time
	Organization      OrganizationModel `gorm:"foreignKey:OrganizationID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Project           ProjectModel      `gorm:"foreignKey:ProjectID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Requester         MemberModel       `gorm:"foreignKey:RequesterMemberID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (UnlockRequestModel) TableName() string { return "unlock_requests" }
