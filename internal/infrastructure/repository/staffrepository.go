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

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) Create(ctx context.Context, staff *hr.Staff) error {
	model := mappers.StaffToModel(staff)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create staff: %w", err)
	}

	staff.SetID(model.ID)

	return nil
}

func (r *StaffRepository) Update(ctx context.Context, staff *hr.Staff) error {
	model := mappers.StaffToModel(staff)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.StaffModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"email":         model.Email,
			"password_hash": model.PasswordHash,
			"department_id": model.DepartmentID,
			"position_id":   model.PositionID,
			"is_active":     model.IsActive,
			"updated_at":    model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update staff: %w", result.Error)
	}

	return nil
}

func (r *StaffRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.StaffModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete staff: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("staff not found")
	}

	return nil
}

func (r *StaffRepository) GetByID(ctx context.Context, id uint) (*hr.Staff, error) {
	var model models.StaffModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("staff not found")
		}
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}

	return mappers.StaffToDomain(&model), nil
}

func (r *StaffRepository) GetBySID(ctx context.Context, sid string) (*hr.Staff, error) {
	var model models.StaffModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("staff not found")
		}
		return nil, fmt.Errorf("failed to get staff by sid: %w", err)
	}

	return mappers.StaffToDomain(&model), nil
}

func (r *StaffRepository) GetByEmail(ctx context.Context, email string) (*hr.Staff, error) {
	var model models.StaffModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("email = ?", email).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("staff not found")
		}
		return nil, fmt.Errorf("failed to get staff by email: %w", err)
	}

	return mappers.StaffToDomain(&model), nil
}

func (r *StaffRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.StaffModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check staff email: %w", err)
	}

	return count > 0, nil
}

func (r *StaffRepository) List(ctx context.Context, offset, limit int) ([]*hr.Staff, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.StaffModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count staff: %w", err)
	}

	if limit > 0 {
		query = query.Offset(offset).Limit(limit)
	}

	var staffModels []models.StaffModel
	if err := query.Order("created_at DESC").Find(&staffModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list staff: %w", err)
	}

	result := make([]*hr.Staff, 0, len(staffModels))
	for i := range staffModels {
		result = append(result, mappers.StaffToDomain(&staffModels[i]))
	}

	return result, total, nil
}

func (r *StaffRepository) CountByDepartmentID(ctx context.Context, departmentID uint) (int64, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.StaffModel{}).
		Where("department_id = ?", departmentID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count staff by department: %w", err)
	}

	return count, nil
}

func (r *StaffRepository) CountByPositionID(ctx context.Context, positionID uint) (int64, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.StaffModel{}).
		Where("position_id = ?", positionID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count staff by position: %w", err)
	}

	return count, nil
}
