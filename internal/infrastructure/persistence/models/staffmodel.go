package models

import "time"

type StaffModel struct {
	ID           uint   `gorm:"primaryKey"`
	SID          string `gorm:"uniqueIndex;size:32;not null"`
	Name         string `gorm:"size:255;not null"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	DepartmentID *uint  `gorm:"index"`
	PositionID   *uint  `gorm:"index"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (StaffModel) TableName() string {
	return "staff"
}
