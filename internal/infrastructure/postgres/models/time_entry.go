package models

import "time"

type TimeEntryModel struct {
	ID             string  `gorm:"primaryKey"`
	OrganizationID string  `gorm:"index"`
	MemberID       string  `gorm:"index"`
	ProjectID      *string `gorm:"index"`
	Start          time.Time
	End            *time.Time
	Description    string
	Organization   OrganizationModel `gorm:"foreignKey:OrganizationID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Member         MemberModel       `gorm:"foreignKey:MemberID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (TimeEntryModel) TableName() string { return "time_entries" }
