package usecases

import (
	"context"
	"fmt"

	"github.com/vendra-inc/vendra/internal/application/client/dto"
	"github.com/vendra-inc/vendra/internal/domain/catalog"
	cvo "github.com/vendra-inc/vendra/internal/domain/catalog/valueobjects"
	"github.com/vendra-inc/vendra/internal/domain/client"
	"github.com/vendra-inc/vendra/internal/shared/biztime"
	apperrors "github.com/vendra-inc/vendra/internal/shared/errors"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

// NotesRenderer turns the software's markdown renewal notes into HTML that
// is safe to inject into the public renewal page.
type NotesRenderer interface {
	RenderSafeHTML(markdown string) (string, error)
}

// GetPublicClientInfoUseCase backs the unauthenticated renewal page for
// software clients, looked up by email. It exposes the client's effective
// state and the packages it can renew with, nothing more.
type GetPublicClientInfoUseCase struct {
	clientRepo   client.Repository
	softwareRepo catalog.SoftwareRepository
	packageRepo  catalog.PackageRepository
	renderer     NotesRenderer
	logger       logger.Interface
}

func NewGetPublicClientInfoUseCase(
	clientRepo client.Repository,
	softwareRepo catalog.SoftwareRepository,
	packageRepo catalog.PackageRepository,
	renderer NotesRenderer,
	logger logger.Interface,
) *GetPublicClientInfoUseCase {
	return &GetPublicClientInfoUseCase{
		clientRepo:   clientRepo,
		softwareRepo: softwareRepo,
		packageRepo:  packageRepo,
		renderer:     renderer,
		logger:       logger,
	}
}

func (uc *GetPublicClientInfoUseCase) Execute(ctx context.Context, email string) (*dto.PublicClientInfoResponse, error) {
	cl, err := uc.clientRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.NewNotFoundError("no client registered with this email")
	}
	if !cl.Type().IsSoftware() {
		return nil, apperrors.NewNotFoundError("no software client registered with this email")
	}

	sw, err := uc.softwareRepo.GetByID(ctx, *cl.SoftwareID())
	if err != nil {
		uc.logger.Errorw("client references missing software", "client_sid", cl.SID(), "software_id", *cl.SoftwareID())
		return nil, fmt.Errorf("failed to load client software: %w", err)
	}

	info := dto.PublicClientInfo{
		ID:           cl.SID(),
		Name:         cl.Name(),
		Email:        cl.Email(),
		SoftwareName: sw.Name(),
		FrontendURL:  sw.FrontendURL(),
		IsActive:     cl.IsActive(biztime.NowUTC()),
		ExpiryDate:   cl.ExpiresAt(),
	}

	if sw.Notes() != "" {
		html, err := uc.renderer.RenderSafeHTML(sw.Notes())
		if err != nil {
			uc.logger.Warnw("failed to render software notes", "software_sid", sw.SID(), "error", err)
		} else {
			info.NotesHTML = html
		}
	}

	swID := sw.ID()
	softwareType := cvo.PackageTypeSoftware
	pkgs, err := uc.packageRepo.List(ctx, catalog.PackageFilter{
		Type:       &softwareType,
		SoftwareID: &swID,
		ActiveOnly: true,
	})
	if err != nil {
		uc.logger.Errorw("failed to list renewable packages", "error", err, "software_sid", sw.SID())
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	return &dto.PublicClientInfoResponse{
		Client:   info,
		Packages: toPackageOptions(pkgs),
	}, nil
}

// GetPublicServiceClientInfoUseCase is the service-client variant, looked up
// by client SID since service clients share no software email namespace.
type GetPublicServiceClientInfoUseCase struct {
	clientRepo  client.Repository
	packageRepo catalog.PackageRepository
	logger      logger.Interface
}

func NewGetPublicServiceClientInfoUseCase(
	clientRepo client.Repository,
	packageRepo catalog.PackageRepository,
	logger logger.Interface,
) *GetPublicServiceClientInfoUseCase {
	return &GetPublicServiceClientInfoUseCase{
		clientRepo:  clientRepo,
		packageRepo: packageRepo,
		logger:      logger,
	}
}

func (uc *GetPublicServiceClientInfoUseCase) Execute(ctx context.Context, clientSID string) (*dto.PublicClientInfoResponse, error) {
	cl, err := uc.clientRepo.GetBySID(ctx, clientSID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("client not found")
	}
	if !cl.Type().IsService() {
		return nil, apperrors.NewNotFoundError("client not found")
	}

	serviceType := cvo.PackageTypeService
	pkgs, err := uc.packageRepo.List(ctx, catalog.PackageFilter{
		Type:       &serviceType,
		ActiveOnly: true,
	})
	if err != nil {
		uc.logger.Errorw("failed to list renewable packages", "error", err, "client_sid", clientSID)
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	// Only packages covering at least one of the client's services are
	// renewable for it.
	applicable := pkgs[:0]
	for _, pkg := range pkgs {
		for _, svcID := range cl.ServiceIDs() {
			if pkg.IncludesService(svcID) {
				applicable = append(applicable, pkg)
				break
			}
		}
	}

	return &dto.PublicClientInfoResponse{
		Client: dto.PublicClientInfo{
			ID:         cl.SID(),
			Name:       cl.Name(),
			Email:      cl.Email(),
			IsActive:   cl.IsActive(biztime.NowUTC()),
			ExpiryDate: cl.ExpiresAt(),
		},
		Packages: toPackageOptions(applicable),
	}, nil
}

func toPackageOptions(pkgs []*catalog.Package) []dto.PublicPackageOption {
	options := make([]dto.PublicPackageOption, 0, len(pkgs))
	for _, pkg := range pkgs {
		options = append(options, dto.PublicPackageOption{
			ID:            pkg.SID(),
			Name:          pkg.Name(),
			DurationValue: pkg.Duration().Value(),
			DurationUnit:  pkg.Duration().Unit().String(),
			Price:         pkg.Price().AmountInRupees(),
			Description:   pkg.Description(),
		})
	}
	return options
}
