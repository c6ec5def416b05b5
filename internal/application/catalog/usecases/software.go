package usecases

import (
	"context"
	"fmt"

	"github.com/vendra-inc/vendra/internal/application/catalog/dto"
	"github.com/vendra-inc/vendra/internal/domain/catalog"
	"github.com/vendra-inc/vendra/internal/domain/client"
	apperrors "github.com/vendra-inc/vendra/internal/shared/errors"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

// CreateSoftwareUseCase registers a new software product in the catalog.
type CreateSoftwareUseCase struct {
	softwareRepo catalog.SoftwareRepository
	logger       logger.Interface
}

func NewCreateSoftwareUseCase(softwareRepo catalog.SoftwareRepository, logger logger.Interface) *CreateSoftwareUseCase {
	return &CreateSoftwareUseCase{softwareRepo: softwareRepo, logger: logger}
}

func (uc *CreateSoftwareUseCase) Execute(ctx context.Context, req dto.CreateSoftwareRequest) (*dto.SoftwareResponse, error) {
	sw, err := catalog.NewSoftware(req.Name, req.Description, catalog.BridgeEndpoints{
		RegisterAPILink:     req.RegisterAPILink,
		GetAllAPILink:       req.GetAllAPILink,
		DeleteAPILink:       req.DeleteAPILink,
		UpdateStatusAPILink: req.UpdateStatusAPILink,
	})
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	sw.SetNotes(req.Notes)
	sw.SetFrontendURL(req.FrontendURL)

	if err := uc.softwareRepo.Create(ctx, sw); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("software with this name already exists")
		}
		uc.logger.Errorw("failed to save software", "error", err, "name", req.Name)
		return nil, fmt.Errorf("failed to save software: %w", err)
	}

	uc.logger.Infow("software created", "sid", sw.SID(), "name", sw.Name())

	resp := toSoftwareResponse(sw)
	return &resp, nil
}

// UpdateSoftwareUseCase replaces the admin-editable software fields.
type UpdateSoftwareUseCase struct {
	softwareRepo catalog.SoftwareRepository
	logger       logger.Interface
}

func NewUpdateSoftwareUseCase(softwareRepo catalog.SoftwareRepository, logger logger.Interface) *UpdateSoftwareUseCase {
	return &UpdateSoftwareUseCase{softwareRepo: softwareRepo, logger: logger}
}

func (uc *UpdateSoftwareUseCase) Execute(ctx context.Context, sid string, req dto.UpdateSoftwareRequest) (*dto.SoftwareResponse, error) {
	sw, err := uc.softwareRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, apperrors.NewNotFoundError("software not found")
	}

	err = sw.UpdateDetails(req.Name, req.Description, req.Notes, req.FrontendURL, catalog.BridgeEndpoints{
		RegisterAPILink:     req.RegisterAPILink,
		GetAllAPILink:       req.GetAllAPILink,
		DeleteAPILink:       req.DeleteAPILink,
		UpdateStatusAPILink: req.UpdateStatusAPILink,
	})
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.softwareRepo.Update(ctx, sw); err != nil {
		uc.logger.Errorw("failed to update software", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to update software: %w", err)
	}

	resp := toSoftwareResponse(sw)
	return &resp, nil
}

// DeleteSoftwareUseCase removes a software product. Removal is refused while
// clients or packages still reference it.
type DeleteSoftwareUseCase struct {
	softwareRepo catalog.SoftwareRepository
	packageRepo  catalog.PackageRepository
	clientRepo   client.Repository
	logger       logger.Interface
}

func NewDeleteSoftwareUseCase(
	softwareRepo catalog.SoftwareRepository,
	packageRepo catalog.PackageRepository,
	clientRepo client.Repository,
	logger logger.Interface,
) *DeleteSoftwareUseCase {
	return &DeleteSoftwareUseCase{
		softwareRepo: softwareRepo,
		packageRepo:  packageRepo,
		clientRepo:   clientRepo,
		logger:       logger,
	}
}

func (uc *DeleteSoftwareUseCase) Execute(ctx context.Context, sid string) error {
	sw, err := uc.softwareRepo.GetBySID(ctx, sid)
	if err != nil {
		return apperrors.NewNotFoundError("software not found")
	}

	clientCount, err := uc.clientRepo.CountBySoftwareID(ctx, sw.ID())
	if err != nil {
		return fmt.Errorf("failed to count software clients: %w", err)
	}
	if clientCount > 0 {
		return apperrors.NewConflictError("software has registered clients and cannot be deleted")
	}

	pkgCount, err := uc.packageRepo.CountBySoftwareID(ctx, sw.ID())
	if err != nil {
		return fmt.Errorf("failed to count software packages: %w", err)
	}
	if pkgCount > 0 {
		return apperrors.NewConflictError("software has packages and cannot be deleted")
	}

	if err := uc.softwareRepo.Delete(ctx, sw.ID()); err != nil {
		uc.logger.Errorw("failed to delete software", "error", err, "sid", sid)
		return fmt.Errorf("failed to delete software: %w", err)
	}

	uc.logger.Infow("software deleted", "sid", sid, "name", sw.Name())
	return nil
}

// ListSoftwareUseCase returns the full catalog of software products.
type ListSoftwareUseCase struct {
	softwareRepo catalog.SoftwareRepository
	logger       logger.Interface
}

func NewListSoftwareUseCase(softwareRepo catalog.SoftwareRepository, logger logger.Interface) *ListSoftwareUseCase {
	return &ListSoftwareUseCase{softwareRepo: softwareRepo, logger: logger}
}

func (uc *ListSoftwareUseCase) Execute(ctx context.Context) ([]dto.SoftwareResponse, error) {
	items, err := uc.softwareRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list software", "error", err)
		return nil, fmt.Errorf("failed to list software: %w", err)
	}

	responses := make([]dto.SoftwareResponse, 0, len(items))
	for _, sw := range items {
		responses = append(responses, toSoftwareResponse(sw))
	}
	return responses, nil
}
