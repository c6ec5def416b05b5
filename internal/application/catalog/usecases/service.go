package usecases

import (
	"context"
	"fmt"

	"github.com/vendra-inc/vendra/internal/application/catalog/dto"
	"github.com/vendra-inc/vendra/internal/domain/catalog"
	vo "github.com/vendra-inc/vendra/internal/domain/catalog/valueobjects"
	apperrors "github.com/vendra-inc/vendra/internal/shared/errors"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

// CreateServiceUseCase registers a standalone service offering.
type CreateServiceUseCase struct {
	serviceRepo catalog.ServiceRepository
	logger      logger.Interface
}

func NewCreateServiceUseCase(serviceRepo catalog.ServiceRepository, logger logger.Interface) *CreateServiceUseCase {
	return &CreateServiceUseCase{serviceRepo: serviceRepo, logger: logger}
}

func (uc *CreateServiceUseCase) Execute(ctx context.Context, req dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	svc, err := catalog.NewService(req.Name, vo.NewMoneyFromRupees(req.Price, "INR"), req.Description)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.serviceRepo.Create(ctx, svc); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("service with this name already exists")
		}
		uc.logger.Errorw("failed to save service", "error", err, "name", req.Name)
		return nil, fmt.Errorf("failed to save service: %w", err)
	}

	uc.logger.Infow("service created", "sid", svc.SID(), "name", svc.Name())

	resp := toServiceResponse(svc)
	return &resp, nil
}

// UpdateServiceUseCase replaces the admin-editable service fields.
type UpdateServiceUseCase struct {
	serviceRepo catalog.ServiceRepository
	logger      logger.Interface
}

func NewUpdateServiceUseCase(serviceRepo catalog.ServiceRepository, logger logger.Interface) *UpdateServiceUseCase {
	return &UpdateServiceUseCase{serviceRepo: serviceRepo, logger: logger}
}

func (uc *UpdateServiceUseCase) Execute(ctx context.Context, sid string, req dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	svc, err := uc.serviceRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, apperrors.NewNotFoundError("service not found")
	}

	if err := svc.UpdateDetails(req.Name, vo.NewMoneyFromRupees(req.Price, "INR"), req.Description); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.serviceRepo.Update(ctx, svc); err != nil {
		uc.logger.Errorw("failed to update service", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to update service: %w", err)
	}

	resp := toServiceResponse(svc)
	return &resp, nil
}

// ToggleServiceStatusUseCase flips a service's availability.
type ToggleServiceStatusUseCase struct {
	serviceRepo catalog.ServiceRepository
	logger      logger.Interface
}

func NewToggleServiceStatusUseCase(serviceRepo catalog.ServiceRepository, logger logger.Interface) *ToggleServiceStatusUseCase {
	return &ToggleServiceStatusUseCase{serviceRepo: serviceRepo, logger: logger}
}

func (uc *ToggleServiceStatusUseCase) Execute(ctx context.Context, sid string) (*dto.ServiceResponse, error) {
	svc, err := uc.serviceRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, apperrors.NewNotFoundError("service not found")
	}

	svc.ToggleActive()

	if err := uc.serviceRepo.Update(ctx, svc); err != nil {
		uc.logger.Errorw("failed to toggle service status", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to toggle service status: %w", err)
	}

	uc.logger.Infow("service status toggled", "sid", sid, "is_active", svc.IsActive())

	resp := toServiceResponse(svc)
	return &resp, nil
}

// DeleteServiceUseCase removes a service. Removal is refused while a package
// still bundles it.
type DeleteServiceUseCase struct {
	serviceRepo catalog.ServiceRepository
	packageRepo catalog.PackageRepository
	logger      logger.Interface
}

func NewDeleteServiceUseCase(serviceRepo catalog.ServiceRepository, packageRepo catalog.PackageRepository, logger logger.Interface) *DeleteServiceUseCase {
	return &DeleteServiceUseCase{serviceRepo: serviceRepo, packageRepo: packageRepo, logger: logger}
}

func (uc *DeleteServiceUseCase) Execute(ctx context.Context, sid string) error {
	svc, err := uc.serviceRepo.GetBySID(ctx, sid)
	if err != nil {
		return apperrors.NewNotFoundError("service not found")
	}

	serviceType := vo.PackageTypeService
	pkgs, err := uc.packageRepo.List(ctx, catalog.PackageFilter{Type: &serviceType})
	if err != nil {
		return fmt.Errorf("failed to list service packages: %w", err)
	}
	for _, pkg := range pkgs {
		if pkg.IncludesService(svc.ID()) {
			return apperrors.NewConflictError("service is bundled in a package and cannot be deleted")
		}
	}

	if err := uc.serviceRepo.Delete(ctx, svc.ID()); err != nil {
		uc.logger.Errorw("failed to delete service", "error", err, "sid", sid)
		return fmt.Errorf("failed to delete service: %w", err)
	}

	uc.logger.Infow("service deleted", "sid", sid, "name", svc.Name())
	return nil
}

// ListServicesUseCase returns all service offerings.
type ListServicesUseCase struct {
	serviceRepo catalog.ServiceRepository
	logger      logger.Interface
}

func NewListServicesUseCase(serviceRepo catalog.ServiceRepository, logger logger.Interface) *ListServicesUseCase {
	return &ListServicesUseCase{serviceRepo: serviceRepo, logger: logger}
}

func (uc *ListServicesUseCase) Execute(ctx context.Context) ([]dto.ServiceResponse, error) {
	items, err := uc.serviceRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list services", "error", err)
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	responses := make([]dto.ServiceResponse, 0, len(items))
	for _, svc := range items {
		responses = append(responses, toServiceResponse(svc))
	}
	return responses, nil
}
