package models

import "time"

type OrganizationModel struct {
	ID              string `gorm:"primaryKey"`
	Name            string
	LockHorizonDays *int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (OrganizationModel) TableName() string { return "organizations" }
