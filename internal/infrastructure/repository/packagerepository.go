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

type PackageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

func (r *PackageRepository) Create(ctx context.Context, pkg *catalog.Package) error {
	model, err := mappers.PackageToModel(pkg)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}

	pkg.SetID(model.ID)

	return nil
}

func (r *PackageRepository) Update(ctx context.Context, pkg *catalog.Package) error {
	model, err := mappers.PackageToModel(pkg)
	if err != nil {
		return err
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PackageModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":           model.Name,
			"software_id":    model.SoftwareID,
			"service_ids":    model.ServiceIDs,
			"duration_value": model.DurationValue,
			"duration_unit":  model.DurationUnit,
			"amount":         model.Amount,
			"currency":       model.Currency,
			"description":    model.Description,
			"is_active":      model.IsActive,
			"updated_at":     model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update package: %w", result.Error)
	}

	return nil
}

func (r *PackageRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.PackageModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete package: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("package not found")
	}

	return nil
}

func (r *PackageRepository) GetByID(ctx context.Context, id uint) (*catalog.Package, error) {
	var model models.PackageModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("package not found")
		}
		return nil, fmt.Errorf("failed to get package: %w", err)
	}

	return mappers.PackageToDomain(&model)
}

func (r *PackageRepository) GetBySID(ctx context.Context, sid string) (*catalog.Package, error) {
	var model models.PackageModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("package not found")
		}
		return nil, fmt.Errorf("failed to get package by sid: %w", err)
	}

	return mappers.PackageToDomain(&model)
}

func (r *PackageRepository) List(ctx context.Context, filter catalog.PackageFilter) ([]*catalog.Package, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.PackageModel{})

	if filter.Type != nil {
		query = query.Where("package_type = ?", filter.Type.String())
	}
	if filter.SoftwareID != nil {
		query = query.Where("software_id = ?", *filter.SoftwareID)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var packageModels []models.PackageModel
	if err := query.Order("created_at DESC").Find(&packageModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	result := make([]*catalog.Package, 0, len(packageModels))
	for i := range packageModels {
		pkg, err := mappers.PackageToDomain(&packageModels[i])
		if err != nil {
			return nil, err
		}
		result = append(result, pkg)
	}

	return result, nil
}

func (r *PackageRepository) CountBySoftwareID(ctx context.Context, softwareID uint) (int64, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PackageModel{}).
		Where("software_id = ?", softwareID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count packages by software: %w", err)
	}

	return count, nil
}
