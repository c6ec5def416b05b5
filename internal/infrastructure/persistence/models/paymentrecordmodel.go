package models

import (
	"time"

	"gorm.io/datatypes"
)

// PaymentRecordModel rows are append-only. The unique index on
// gateway_order_id anchors settlement idempotency.
type PaymentRecordModel struct {
	ID               uint           `gorm:"primaryKey"`
	SID              string         `gorm:"uniqueIndex;size:32;not null"`
	ClientID         uint           `gorm:"index;not null"`
	PackageID        uint           `gorm:"index;not null"`
	Amount           int64          `gorm:"not null"`
	Currency         string         `gorm:"size:10;not null;default:'INR'"`
	GatewayOrderID   string         `gorm:"uniqueIndex;size:128;not null"`
	GatewayPaymentID string         `gorm:"size:128"`
	GatewaySignature string         `gorm:"size:256"`
	Status           string         `gorm:"size:20;not null;index"`
	Metadata         datatypes.JSON `gorm:"type:json"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (PaymentRecordModel) TableName() string {
	return "payment_records"
}
