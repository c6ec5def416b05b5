package usecases

import (
	"context"
	"fmt"

	"github.com/vendra-inc/vendra/internal/application/client/dto"
	"github.com/vendra-inc/vendra/internal/domain/catalog"
	"github.com/vendra-inc/vendra/internal/domain/client"
	vo "github.com/vendra-inc/vendra/internal/domain/client/valueobjects"
	"github.com/vendra-inc/vendra/internal/shared/biztime"
	"github.com/vendra-inc/vendra/internal/shared/constants"
	apperrors "github.com/vendra-inc/vendra/internal/shared/errors"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

// UpdateClientUseCase replaces the admin-editable contact fields and, for
// service clients, the assigned service set. Subscription state is only ever
// changed by settlement or the suspension toggle.
type UpdateClientUseCase struct {
	clientRepo  client.Repository
	serviceRepo catalog.ServiceRepository
	resolver    *refResolver
	logger      logger.Interface
}

func NewUpdateClientUseCase(
	clientRepo client.Repository,
	softwareRepo catalog.SoftwareRepository,
	serviceRepo catalog.ServiceRepository,
	packageRepo catalog.PackageRepository,
	logger logger.Interface,
) *UpdateClientUseCase {
	return &UpdateClientUseCase{
		clientRepo:  clientRepo,
		serviceRepo: serviceRepo,
		resolver:    newRefResolver(softwareRepo, serviceRepo, packageRepo, logger),
		logger:      logger,
	}
}

func (uc *UpdateClientUseCase) Execute(ctx context.Context, sid string, req dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	cl, err := uc.clientRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, apperrors.NewNotFoundError("client not found")
	}

	phone, err := vo.NewPhone(req.Phone, constants.DefaultCountryCode)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if req.Email != cl.Email() {
		exists, err := uc.clientRepo.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check client email: %w", err)
		}
		if exists {
			return nil, apperrors.NewConflictError("client with this email already exists")
		}
	}

	if err := cl.UpdateContact(req.Name, req.Email, phone); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if cl.Type().IsService() && len(req.ServiceIDs) > 0 {
		ids := make([]uint, 0, len(req.ServiceIDs))
		for _, svcSID := range req.ServiceIDs {
			svc, err := uc.serviceRepo.GetBySID(ctx, svcSID)
			if err != nil {
				return nil, apperrors.NewNotFoundError(fmt.Sprintf("service %s not found", svcSID))
			}
			ids = append(ids, svc.ID())
		}
		if err := cl.AssignServices(ids); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if err := uc.clientRepo.Update(ctx, cl); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("client with this email already exists")
		}
		uc.logger.Errorw("failed to update client", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	resp := uc.resolver.resolve(ctx, cl, biztime.NowUTC())
	return &resp, nil
}
