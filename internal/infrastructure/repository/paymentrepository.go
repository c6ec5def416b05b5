package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vendra-inc/vendra/internal/domain/payment"
	"github.com/vendra-inc/vendra/internal/infrastructure/persistence/mappers"
	"github.com/vendra-inc/vendra/internal/infrastructure/persistence/models"
	"github.com/vendra-inc/vendra/internal/shared/db"
)

// PaymentRepository persists the append-only ledger. Create surfaces the raw
// duplicate-key error so the settlement path can detect a concurrent replay.
type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, record *payment.Record) error {
	model, err := mappers.PaymentRecordToModel(record)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create payment record: %w", err)
	}

	record.SetID(model.ID)

	return nil
}

func (r *PaymentRepository) Update(ctx context.Context, record *payment.Record) error {
	model, err := mappers.PaymentRecordToModel(record)
	if err != nil {
		return err
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PaymentRecordModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"gateway_payment_id": model.GatewayPaymentID,
			"gateway_signature":  model.GatewaySignature,
			"status":             model.Status,
			"metadata":           model.Metadata,
			"updated_at":         model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update payment record: %w", result.Error)
	}

	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uint) (*payment.Record, error) {
	var model models.PaymentRecordModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("payment record not found")
		}
		return nil, fmt.Errorf("failed to get payment record: %w", err)
	}

	return mappers.PaymentRecordToDomain(&model)
}

func (r *PaymentRepository) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*payment.Record, error) {
	var model models.PaymentRecordModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("gateway_order_id = ?", gatewayOrderID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("payment record not found")
		}
		return nil, fmt.Errorf("failed to get payment record by gateway order id: %w", err)
	}

	return mappers.PaymentRecordToDomain(&model)
}

func (r *PaymentRepository) ListByClientID(ctx context.Context, clientID uint) ([]*payment.Record, error) {
	var recordModels []models.PaymentRecordModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&recordModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list payment records: %w", err)
	}

	result := make([]*payment.Record, 0, len(recordModels))
	for i := range recordModels {
		record, err := mappers.PaymentRecordToDomain(&recordModels[i])
		if err != nil {
			return nil, err
		}
		result = append(result, record)
	}

	return result, nil
}

func (r *PaymentRepository) ExistsByPackageID(ctx context.Context, packageID uint) (bool, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PaymentRecordModel{}).
		Where("package_id = ?", packageID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check payment records by package: %w", err)
	}

	return count > 0, nil
}
