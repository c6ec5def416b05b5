package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vendra-inc/vendra/internal/domain/client"
	"github.com/vendra-inc/vendra/internal/infrastructure/persistence/mappers"
	"github.com/vendra-inc/vendra/internal/infrastructure/persistence/models"
	"github.com/vendra-inc/vendra/internal/shared/db"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	model, err := mappers.ClientToModel(c)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	c.SetID(model.ID)

	return nil
}

func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	model, err := mappers.ClientToModel(c)
	if err != nil {
		return err
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ClientModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":                model.Name,
			"email":               model.Email,
			"phone":               model.Phone,
			"service_ids":         model.ServiceIDs,
			"package_id":          model.PackageID,
			"expires_at":          model.ExpiresAt,
			"admin_suspended":     model.AdminSuspended,
			"external_id":         model.ExternalID,
			"registration_status": model.RegistrationStatus,
			"source":              model.Source,
			"updated_at":          model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update client: %w", result.Error)
	}

	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.ClientModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("client not found")
	}

	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id uint) (*client.Client, error) {
	var model models.ClientModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("client not found")
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return mappers.ClientToDomain(&model)
}

func (r *ClientRepository) GetBySID(ctx context.Context, sid string) (*client.Client, error) {
	var model models.ClientModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("client not found")
		}
		return nil, fmt.Errorf("failed to get client by sid: %w", err)
	}

	return mappers.ClientToDomain(&model)
}

func (r *ClientRepository) GetByEmail(ctx context.Context, email string) (*client.Client, error) {
	var model models.ClientModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("email = ?", email).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("client not found")
		}
		return nil, fmt.Errorf("failed to get client by email: %w", err)
	}

	return mappers.ClientToDomain(&model)
}

func (r *ClientRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ClientModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check client email: %w", err)
	}

	return count > 0, nil
}

func (r *ClientRepository) List(ctx context.Context, filter client.Filter) ([]*client.Client, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.ClientModel{})

	if filter.Type != nil {
		query = query.Where("client_type = ?", *filter.Type)
	}
	if filter.SoftwareID != nil {
		query = query.Where("software_id = ?", *filter.SoftwareID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		if offset < 0 {
			offset = 0
		}
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var clientModels []models.ClientModel
	if err := query.Order("created_at DESC").Find(&clientModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}

	result := make([]*client.Client, 0, len(clientModels))
	for i := range clientModels {
		c, err := mappers.ClientToDomain(&clientModels[i])
		if err != nil {
			return nil, 0, err
		}
		result = append(result, c)
	}

	return result, total, nil
}

func (r *ClientRepository) CountBySoftwareID(ctx context.Context, softwareID uint) (int64, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ClientModel{}).
		Where("software_id = ?", softwareID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count clients by software: %w", err)
	}

	return count, nil
}
