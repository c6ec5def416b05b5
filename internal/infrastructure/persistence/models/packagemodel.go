package models

import (
	"time"

	"gorm.io/datatypes"
)

type PackageModel struct {
	ID            uint           `gorm:"primaryKey"`
	SID           string         `gorm:"uniqueIndex;size:32;not null"`
	Name          string         `gorm:"size:255;not null"`
	PackageType   string         `gorm:"size:20;not null;index"`
	SoftwareID    *uint          `gorm:"index"`
	ServiceIDs    datatypes.JSON `gorm:"type:json"`
	DurationValue int            `gorm:"not null"`
	DurationUnit  string         `gorm:"size:16;not null"`
	Amount        int64          `gorm:"not null"`
	Currency      string         `gorm:"size:10;not null;default:'INR'"`
	Description   string         `gorm:"type:text"`
	IsActive      bool           `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (PackageModel) TableName() string {
	return "packages"
}
