package mappers

import (
	"fmt"

	"github.com/vendra-inc/vendra/internal/domain/catalog"
	vo "github.com/vendra-inc/vendra/internal/domain/catalog/valueobjects"
	"github.com/vendra-inc/vendra/internal/infrastructure/persistence/models"
)

func PackageToModel(p *catalog.Package) (*models.PackageModel, error) {
	serviceIDs, err := uintSliceToJSON(p.ServiceIDs())
	if err != nil {
		return nil, err
	}

	return &models.PackageModel{
		ID:            p.ID(),
		SID:           p.SID(),
		Name:          p.Name(),
		PackageType:   p.Type().String(),
		SoftwareID:    p.SoftwareID(),
		ServiceIDs:    serviceIDs,
		DurationValue: p.Duration().Value(),
		DurationUnit:  p.Duration().Unit().String(),
		Amount:        p.Price().AmountInPaise(),
		Currency:      p.Price().Currency(),
		Description:   p.Description(),
		IsActive:      p.IsActive(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}, nil
}

func PackageToDomain(model *models.PackageModel) (*catalog.Package, error) {
	packageType, err := vo.NewPackageType(model.PackageType)
	if err != nil {
		return nil, fmt.Errorf("invalid package type: %w", err)
	}

	unit, err := vo.NewDurationUnit(model.DurationUnit)
	if err != nil {
		return nil, fmt.Errorf("invalid duration unit: %w", err)
	}

	duration, err := vo.NewDuration(model.DurationValue, unit)
	if err != nil {
		return nil, fmt.Errorf("invalid duration: %w", err)
	}

	serviceIDs, err := jsonToUintSlice(model.ServiceIDs)
	if err != nil {
		return nil, err
	}

	price := vo.NewMoney(model.Amount, model.Currency)

	return catalog.ReconstructPackage(
		model.ID,
		model.SID,
		model.Name,
		packageType,
		model.SoftwareID,
		serviceIDs,
		duration,
		price,
		model.Description,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
