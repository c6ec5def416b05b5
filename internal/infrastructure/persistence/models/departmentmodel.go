package models

import "time"

type DepartmentModel struct {
	ID        uint   `gorm:"primaryKey"`
	SID       string `gorm:"uniqueIndex;size:32;not null"`
	Name      string `gorm:"uniqueIndex;size:255;not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DepartmentModel) TableName() string {
	return "departments"
}
