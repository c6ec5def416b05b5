package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vendra-inc/vendra/internal/domain/hr"
	"github.com/vendra-inc/vendra/internal/infrastructure/persistence/mappers"
	"github.com/vendra-inc/vendra/internal/infrastructure/persistence/models"
	"github.com/vendra-inc/vendra/internal/shared/db"
)

type PositionRepository struct {
	db *gorm.DB
}

func NewPositionRepository(db *gorm.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

func (r *PositionRepository) Create(ctx context.Context, position *hr.Position) error {
	model := mappers.PositionToModel(position)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create position: %w", err)
	}

	position.SetID(model.ID)

	return nil
}

func (r *PositionRepository) Update(ctx context.Context, position *hr.Position) error {
	model := mappers.PositionToModel(position)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PositionModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"department_id": model.DepartmentID,
			"is_active":     model.IsActive,
			"updated_at":    model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update position: %w", result.Error)
	}

	return nil
}

func (r *PositionRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.PositionModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete position: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("position not found")
	}

	return nil
}

func (r *PositionRepository) GetByID(ctx context.Context, id uint) (*hr.Position, error) {
	var model models.PositionModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("position not found")
		}
		return nil, fmt.Errorf("failed to get position: %w", err)
	}

	return mappers.PositionToDomain(&model), nil
}

func (r *PositionRepository) GetBySID(ctx context.Context, sid string) (*hr.Position, error) {
	var model models.PositionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("position not found")
		}
		return nil, fmt.Errorf("failed to get position by sid: %w", err)
	}

	return mappers.PositionToDomain(&model), nil
}

func (r *PositionRepository) List(ctx context.Context) ([]*hr.Position, error) {
	var positionModels []models.PositionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Order("created_at DESC").
		Find(&positionModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}

	result := make([]*hr.Position, 0, len(positionModels))
	for i := range positionModels {
		result = append(result, mappers.PositionToDomain(&positionModels[i]))
	}

	return result, nil
}

func (r *PositionRepository) ListByDepartmentID(ctx context.Context, departmentID uint) ([]*hr.Position, error) {
	var positionModels []models.PositionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("department_id = ?", departmentID).
		Order("created_at DESC").
		Find(&positionModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list positions by department: %w", err)
	}

	result := make([]*hr.Position, 0, len(positionModels))
	for i := range positionModels {
		result = append(result, mappers.PositionToDomain(&positionModels[i]))
	}

	return result, nil
}

func (r *PositionRepository) CountByDepartmentID(ctx context.Context, departmentID uint) (int64, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PositionModel{}).
		Where("department_id = ?", departmentID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count positions by department: %w", err)
	}

	return count, nil
}
