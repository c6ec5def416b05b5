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

type SoftwareRepository struct {
	db *gorm.DB
}

func NewSoftwareRepository(db *gorm.DB) *SoftwareRepository {
	return &SoftwareRepository{db: db}
}

func (r *SoftwareRepository) Create(ctx context.Context, software *catalog.Software) error {
	model := mappers.SoftwareToModel(software)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create software: %w", err)
	}

	software.SetID(model.ID)

	return nil
}

func (r *SoftwareRepository) Update(ctx context.Context, software *catalog.Software) error {
	model := mappers.SoftwareToModel(software)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SoftwareModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":                   model.Name,
			"description":            model.Description,
			"notes":                  model.Notes,
			"frontend_url":           model.FrontendURL,
			"register_api_link":      model.RegisterAPILink,
			"get_all_api_link":       model.GetAllAPILink,
			"delete_api_link":        model.DeleteAPILink,
			"update_status_api_link": model.UpdateStatusAPILink,
			"updated_at":             model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update software: %w", result.Error)
	}

	return nil
}

func (r *SoftwareRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.SoftwareModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete software: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("software not found")
	}

	return nil
}

func (r *SoftwareRepository) GetByID(ctx context.Context, id uint) (*catalog.Software, error) {
	var model models.SoftwareModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("software not found")
		}
		return nil, fmt.Errorf("failed to get software: %w", err)
	}

	return mappers.SoftwareToDomain(&model), nil
}

func (r *SoftwareRepository) GetBySID(ctx context.Context, sid string) (*catalog.Software, error) {
	var model models.SoftwareModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("software not found")
		}
		return nil, fmt.Errorf("failed to get software by sid: %w", err)
	}

	return mappers.SoftwareToDomain(&model), nil
}

func (r *SoftwareRepository) List(ctx context.Context) ([]*catalog.Software, error) {
	var softwareModels []models.SoftwareModel

	if err := db.GetTxFromContext(ctx, r.db).
		Order("created_at DESC").
		Find(&softwareModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list software: %w", err)
	}

	result := make([]*catalog.Software, 0, len(softwareModels))
	for i := range softwareModels {
		result = append(result, mappers.SoftwareToDomain(&softwareModels[i]))
	}

	return result, nil
}
