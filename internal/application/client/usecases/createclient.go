package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/vendra-inc/vendra/internal/application/client/bridge"
	"github.com/vendra-inc/vendra/internal/application/client/dto"
	"github.com/vendra-inc/vendra/internal/domain/catalog"
	"github.com/vendra-inc/vendra/internal/domain/client"
	vo "github.com/vendra-inc/vendra/internal/domain/client/valueobjects"
	"github.com/vendra-inc/vendra/internal/shared/biztime"
	"github.com/vendra-inc/vendra/internal/shared/constants"
	apperrors "github.com/vendra-inc/vendra/internal/shared/errors"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

// CreateClientUseCase registers a client, optionally starts its first
// subscription term, and mirrors the account to the software's own backend.
// The mirror call is best-effort: its outcome lands in the registration
// status, never in the request result.
type CreateClientUseCase struct {
	clientRepo   client.Repository
	softwareRepo catalog.SoftwareRepository
	serviceRepo  catalog.ServiceRepository
	packageRepo  catalog.PackageRepository
	provisioner  bridge.ExternalProvisioner
	resolver     *refResolver
	logger       logger.Interface
}

func NewCreateClientUseCase(
	clientRepo client.Repository,
	softwareRepo catalog.SoftwareRepository,
	serviceRepo catalog.ServiceRepository,
	packageRepo catalog.PackageRepository,
	provisioner bridge.ExternalProvisioner,
	logger logger.Interface,
) *CreateClientUseCase {
	return &CreateClientUseCase{
		clientRepo:   clientRepo,
		softwareRepo: softwareRepo,
		serviceRepo:  serviceRepo,
		packageRepo:  packageRepo,
		provisioner:  provisioner,
		resolver:     newRefResolver(softwareRepo, serviceRepo, packageRepo, logger),
		logger:       logger,
	}
}

func (uc *CreateClientUseCase) Execute(ctx context.Context, req dto.CreateClientRequest, createdBy string) (*dto.ClientResponse, error) {
	phone, err := vo.NewPhone(req.Phone, constants.DefaultCountryCode)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	clientType, err := vo.NewClientType(req.Type)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	exists, err := uc.clientRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check client email: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("client with this email already exists")
	}

	params := client.NewClientParams{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     phone,
		Type:      clientType,
		CreatedBy: createdBy,
	}

	var sw *catalog.Software
	if clientType.IsSoftware() {
		sw, err = uc.softwareRepo.GetBySID(ctx, req.SoftwareID)
		if err != nil {
			return nil, apperrors.NewNotFoundError("software not found")
		}
		swID := sw.ID()
		params.SoftwareID = &swID
	} else {
		serviceIDs, _, err := uc.resolveServiceSIDs(ctx, req.ServiceIDs)
		if err != nil {
			return nil, err
		}
		params.ServiceIDs = serviceIDs
	}

	cl, err := client.NewClient(params)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if req.PackageID != "" {
		pkg, err := uc.packageRepo.GetBySID(ctx, req.PackageID)
		if err != nil {
			return nil, apperrors.NewNotFoundError("package not found")
		}
		if err := client.CheckPackageApplies(cl, pkg); err != nil {
			if errors.Is(err, client.ErrPackageInactive) {
				return nil, apperrors.NewNotFoundError("package is not active")
			}
			return nil, apperrors.NewValidationError(err.Error())
		}
		if err := cl.StartInitialTerm(pkg.ID(), pkg.Duration(), biztime.NowUTC()); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	// Mirror to the software's backend before the local insert so the row
	// lands with its final registration status. A bridge failure still
	// creates the client: the admin sees the failed status and can retry.
	if clientType.IsSoftware() {
		uc.registerExternally(ctx, sw, cl)
	} else {
		cl.MarkRegistration(vo.RegistrationSkipped, nil)
	}

	if err := uc.clientRepo.Create(ctx, cl); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("client with this email already exists")
		}
		uc.logger.Errorw("failed to save client", "error", err, "email", req.Email)
		return nil, fmt.Errorf("failed to save client: %w", err)
	}

	uc.logger.Infow("client created",
		"sid", cl.SID(),
		"email", cl.Email(),
		"type", cl.Type().String(),
		"registration_status", string(cl.RegistrationStatus()),
	)

	resp := uc.resolver.resolve(ctx, cl, biztime.NowUTC())
	return &resp, nil
}

func (uc *CreateClientUseCase) registerExternally(ctx context.Context, sw *catalog.Software, cl *client.Client) {
	result, err := uc.provisioner.Register(ctx, sw.Endpoints(), bridge.RegisterRequest{
		Name:  cl.Name(),
		Email: cl.Email(),
		Phone: cl.Phone().String(),
	})
	if err != nil {
		uc.logger.Warnw("external registration failed", "client_email", cl.Email(), "software", sw.Name(), "error", err)
		cl.MarkRegistration(vo.RegistrationFailed, nil)
		return
	}

	var externalID *string
	if result.ExternalID != "" {
		externalID = &result.ExternalID
	}
	cl.MarkRegistration(result.Status, externalID)
}

func (uc *CreateClientUseCase) resolveServiceSIDs(ctx context.Context, sids []string) ([]uint, []string, error) {
	if len(sids) == 0 {
		return nil, nil, apperrors.NewValidationError("service client requires at least one service")
	}
	ids := make([]uint, 0, len(sids))
	resolved := make([]string, 0, len(sids))
	for _, sid := range sids {
		svc, err := uc.serviceRepo.GetBySID(ctx, sid)
		if err != nil {
			return nil, nil, apperrors.NewNotFoundError(fmt.Sprintf("service %s not found", sid))
		}
		if !svc.IsActive() {
			return nil, nil, apperrors.NewNotFoundError(fmt.Sprintf("service %s is not active", sid))
		}
		ids = append(ids, svc.ID())
		resolved = append(resolved, svc.SID())
	}
	return ids, resolved, nil
}
