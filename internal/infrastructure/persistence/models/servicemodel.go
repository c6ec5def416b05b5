package models

import "time"

type ServiceModel struct {
	ID          uint   `gorm:"primaryKey"`
	SID         string `gorm:"uniqueIndex;size:32;not null"`
	Name        string `gorm:"size:255;not null"`
	Amount      int64  `gorm:"not null"`
	Currency    string `gorm:"size:10;not null;default:'INR'"`
	Description string `gorm:"type:text"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ServiceModel) TableName() string {
	return "services"
}
