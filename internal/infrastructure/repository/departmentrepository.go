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

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) Create(ctx context.Context, department *hr.Department) error {
	model := mappers.DepartmentToModel(department)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create department: %w", err)
	}

	department.SetID(model.ID)

	return nil
}

func (r *DepartmentRepository) Update(ctx context.Context, department *hr.Department) error {
	model := mappers.DepartmentToModel(department)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.DepartmentModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"is_active":  model.IsActive,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update department: %w", result.Error)
	}

	return nil
}

func (r *DepartmentRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.DepartmentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete department: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("department not found")
	}

	return nil
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id uint) (*hr.Department, error) {
	var model models.DepartmentModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("department not found")
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	return mappers.DepartmentToDomain(&model), nil
}

func (r *DepartmentRepository) GetBySID(ctx context.Context, sid string) (*hr.Department, error) {
	var model models.DepartmentModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("department not found")
		}
		return nil, fmt.Errorf("failed to get department by sid: %w", err)
	}

	return mappers.DepartmentToDomain(&model), nil
}

func (r *DepartmentRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.DepartmentModel{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check department name: %w", err)
	}

	return count > 0, nil
}

func (r *DepartmentRepository) List(ctx context.Context) ([]*hr.Department, error) {
	var departmentModels []models.DepartmentModel

	if err := db.GetTxFromContext(ctx, r.db).
		Order("created_at DESC").
		Find(&departmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	result := make([]*hr.Department, 0, len(departmentModels))
	for i := range departmentModels {
		result = append(result, mappers.DepartmentToDomain(&departmentModels[i]))
	}

	return result, nil
}
