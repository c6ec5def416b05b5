package models

import "time"

type PositionModel struct {
	ID           uint   `gorm:"primaryKey"`
	SID          string `gorm:"uniqueIndex;size:32;not null"`
	Name         string `gorm:"size:255;not null"`
	DepartmentID uint   `gorm:"index;not null"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (PositionModel) TableName() string {
	return "positions"
}
