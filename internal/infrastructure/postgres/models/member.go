package models

import "time"

type MemberModel struct {
	ID             string `gorm:"primaryKey"`
	OrganizationID string `gorm:"index"`
	UserID         string `gorm:"index"`
	Role           string
	Organization   OrganizationModel `gorm:"foreignKey:OrganizationID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (MemberModel) TableName() string { return "members" }
