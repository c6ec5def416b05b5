package models

import (
	"time"

	"gorm.io/datatypes"
)

type ClientModel struct {
	ID                 uint           `gorm:"primaryKey"`
	SID                string         `gorm:"uniqueIndex;size:32;not null"`
	Name               string         `gorm:"size:255;not null"`
	Email              string         `gorm:"uniqueIndex;size:255;not null"`
	Phone              string         `gorm:"size:20;not null"`
	ClientType         string         `gorm:"size:20;not null;index"`
	SoftwareID         *uint          `gorm:"index"`
	ServiceIDs         datatypes.JSON `gorm:"type:json"`
	PackageID          *uint          `gorm:"index"`
	ExpiresAt          *time.Time     `gorm:"index"`
	AdminSuspended     bool           `gorm:"not null;default:false"`
	ExternalID         *string        `gorm:"size:128"`
	RegistrationStatus string         `gorm:"size:20;not null"`
	Source             string         `gorm:"size:20;not null"`
	CreatedBy          string         `gorm:"size:64"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (ClientModel) TableName() string {
	return "clients"
}
