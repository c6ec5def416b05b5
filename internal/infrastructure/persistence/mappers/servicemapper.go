package mappers

import (
	"github.com/vendra-inc/vendra/internal/domain/catalog"
	vo "github.com/vendra-inc/vendra/internal/domain/catalog/valueobjects"
	"github.com/vendra-inc/vendra/internal/infrastructure/persistence/models"
)

func ServiceToModel(s *catalog.Service) *models.ServiceModel {
	return &models.ServiceModel{
		ID:          s.ID(),
		SID:         s.SID(),
		Name:        s.Name(),
		Amount:      s.Price().AmountInPaise(),
		Currency:    s.Price().Currency(),
		Description: s.Description(),
		IsActive:    s.IsActive(),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}
}

func ServiceToDomain(model *models.ServiceModel) *catalog.Service {
	price := vo.NewMoney(model.Amount, model.Currency)

	return catalog.ReconstructService(
		model.ID,
		model.SID,
		model.Name,
		price,
		model.Description,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
