package models

import "time"

type ProjectModel struct {
	ID             string `gorm:"primaryKey"`
	OrganizationID string `gorm:"index"`
	Name           string
	Organization   OrganizationModel `gorm:"foreignKey:OrganizationID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (ProjectModel) TableName() string { return "projects" }

// ProjectMemberModel is the project membership join used by the
// manager capability check.
type ProjectMemberModel struct {
	ID        string       `gorm:"primaryKey"`
	ProjectID string       `gorm:"index:idx_project_members_pair,unique"`
	MemberID  string       `gorm:"index:idx_project_members_pair,unique"`
	Project   ProjectModel `gorm:"foreignKey:ProjectID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Member    MemberModel  `gorm:"foreignKey:MemberID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time
}

func (ProjectMemberModel) TableName() string { return "project_members" }
