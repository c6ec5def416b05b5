package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vendra-inc/vendra/internal/domain/catalog"
	"github.com/vendra-inc/vendra/internal/infrastructure/persistence/mappers"
	"github.com/vendra-inc/vendra/internal/infrastructure/persistence/models"
	"github.com/vendra-inc/vendra/internal/shared/db"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, service *catalog.Service) error {
	model := mappers.ServiceToModel(service)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	service.SetID(model.ID)

	return nil
}

func (r *ServiceRepository) Update(ctx context.Context, service *catalog.Service) error {
	model := mappers.ServiceToModel(service)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ServiceModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":        model.Name,
			"amount":      model.Amount,
			"currency":    model.Currency,
			"description": model.Description,
			"is_active":   model.IsActive,
			"updated_at":  model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update service: %w", result.Error)
	}

	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.ServiceModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete service: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("service not found")
	}

	return nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id uint) (*catalog.Service, error) {
	var model models.ServiceModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("service not found")
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	return mappers.ServiceToDomain(&model), nil
}

func (r *ServiceRepository) GetBySID(ctx context.Context, sid string) (*catalog.Service, error) {
	var model models.ServiceModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("service not found")
		}
		return nil, fmt.Errorf("failed to get service by sid: %w", err)
	}

	return mappers.ServiceToDomain(&model), nil
}

func (r *ServiceRepository) GetByIDs(ctx context.Context, ids []uint) ([]*catalog.Service, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var serviceModels []models.ServiceModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("id IN ?", ids).
		Find(&serviceModels).Error; err != nil {
		return nil, fmt.Errorf("failed to get services by ids: %w", err)
	}

	result := make([]*catalog.Service, 0, len(serviceModels))
	for i := range serviceModels {
		result = append(result, mappers.ServiceToDomain(&serviceModels[i]))
	}

	return result, nil
}

func (r *ServiceRepository) List(ctx context.Context) ([]*catalog.Service, error) {
	var serviceModels []models.ServiceModel

	if err := db.GetTxFromContext(ctx, r.db).
		Order("created_at DESC").
		Find(&serviceModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	result := make([]*catalog.Service, 0, len(serviceModels))
	for i := range serviceModels {
		result = append(result, mappers.ServiceToDomain(&serviceModels[i]))
	}

	return result, nil
}
