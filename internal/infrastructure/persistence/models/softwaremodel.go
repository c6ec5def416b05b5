package models

import "time"

type SoftwareModel struct {
	ID                  uint   `gorm:"primaryKey"`
	SID                 string `gorm:"uniqueIndex;size:32;not null"`
	Name                string `gorm:"size:255;not null"`
	Description         string `gorm:"type:text"`
	Notes               string `gorm:"type:text"`
	FrontendURL         string `gorm:"type:text"`
	RegisterAPILink     string `gorm:"type:text"`
	GetAllAPILink       string `gorm:"type:text"`
	DeleteAPILink       string `gorm:"type:text"`
	UpdateStatusAPILink string `gorm:"type:text"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (SoftwareModel) TableName() string {
	return "softwares"
}
