package usecases

import (
	"context"
	"fmt"

	"github.com/vendra-inc/vendra/internal/application/catalog/dto"
	"github.com/vendra-inc/vendra/internal/domain/catalog"
	vo "github.com/vendra-inc/vendra/internal/domain/catalog/valueobjects"
	"github.com/vendra-inc/vendra/internal/domain/payment"
	apperrors "github.com/vendra-inc/vendra/internal/shared/errors"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

// CreatePackageUseCase assembles a renewable package for one software or a
// bundle of services.
type CreatePackageUseCase struct {
	packageRepo  catalog.PackageRepository
	softwareRepo catalog.SoftwareRepository
	serviceRepo  catalog.ServiceRepository
	logger       logger.Interface
}

func NewCreatePackageUseCase(
	packageRepo catalog.PackageRepository,
	softwareRepo catalog.SoftwareRepository,
	serviceRepo catalog.ServiceRepository,
	logger logger.Interface,
) *CreatePackageUseCase {
	return &CreatePackageUseCase{
		packageRepo:  packageRepo,
		softwareRepo: softwareRepo,
		serviceRepo:  serviceRepo,
		logger:       logger,
	}
}

func (uc *CreatePackageUseCase) Execute(ctx context.Context, req dto.CreatePackageRequest) (*dto.PackageResponse, error) {
	duration, err := buildDuration(req.DurationValue, req.DurationUnit)
	if err != nil {
		return nil, err
	}
	price := vo.NewMoneyFromRupees(req.Price, "INR")

	pkgType, err := vo.NewPackageType(req.Type)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	var pkg *catalog.Package
	var softwareSID, softwareName string
	var serviceSIDs []string

	switch pkgType {
	case vo.PackageTypeSoftware:
		sw, err := uc.softwareRepo.GetBySID(ctx, req.SoftwareID)
		if err != nil {
			return nil, apperrors.NewNotFoundError("software not found")
		}
		pkg, err = catalog.NewSoftwarePackage(req.Name, sw.ID(), duration, price, req.Description)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		softwareSID, softwareName = sw.SID(), sw.Name()

	case vo.PackageTypeService:
		serviceIDs, sids, err := uc.resolveServices(ctx, req.ServiceIDs)
		if err != nil {
			return nil, err
		}
		pkg, err = catalog.NewServicePackage(req.Name, serviceIDs, duration, price, req.Description)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		serviceSIDs = sids
	}

	if err := uc.packageRepo.Create(ctx, pkg); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("package with this name already exists")
		}
		uc.logger.Errorw("failed to save package", "error", err, "name", req.Name)
		return nil, fmt.Errorf("failed to save package: %w", err)
	}

	uc.logger.Infow("package created", "sid", pkg.SID(), "name", pkg.Name(), "type", pkg.Type().String())

	resp := toPackageResponse(pkg, softwareSID, softwareName, serviceSIDs)
	return &resp, nil
}

func (uc *CreatePackageUseCase) resolveServices(ctx context.Context, sids []string) ([]uint, []string, error) {
	return resolveServiceSIDs(ctx, uc.serviceRepo, sids)
}

// UpdatePackageUseCase replaces the admin-editable package fields and rescopes
// the package within its type.
type UpdatePackageUseCase struct {
	packageRepo  catalog.PackageRepository
	softwareRepo catalog.SoftwareRepository
	serviceRepo  catalog.ServiceRepository
	logger       logger.Interface
}

func NewUpdatePackageUseCase(
	packageRepo catalog.PackageRepository,
	softwareRepo catalog.SoftwareRepository,
	serviceRepo catalog.ServiceRepository,
	logger logger.Interface,
) *UpdatePackageUseCase {
	return &UpdatePackageUseCase{
		packageRepo:  packageRepo,
		softwareRepo: softwareRepo,
		serviceRepo:  serviceRepo,
		logger:       logger,
	}
}

func (uc *UpdatePackageUseCase) Execute(ctx context.Context, sid string, req dto.UpdatePackageRequest) (*dto.PackageResponse, error) {
	pkg, err := uc.packageRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, apperrors.NewNotFoundError("package not found")
	}

	duration, err := buildDuration(req.DurationValue, req.DurationUnit)
	if err != nil {
		return nil, err
	}

	if err := pkg.UpdateDetails(req.Name, duration, vo.NewMoneyFromRupees(req.Price, "INR"), req.Description); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	var softwareSID, softwareName string
	var serviceSIDs []string

	switch {
	case pkg.Type().IsSoftware() && req.SoftwareID != "":
		sw, err := uc.softwareRepo.GetBySID(ctx, req.SoftwareID)
		if err != nil {
			return nil, apperrors.NewNotFoundError("software not found")
		}
		swID := sw.ID()
		if err := pkg.Rescope(&swID, nil); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		softwareSID, softwareName = sw.SID(), sw.Name()

	case pkg.Type().IsService() && len(req.ServiceIDs) > 0:
		serviceIDs, sids, err := resolveServiceSIDs(ctx, uc.serviceRepo, req.ServiceIDs)
		if err != nil {
			return nil, err
		}
		if err := pkg.Rescope(nil, serviceIDs); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		serviceSIDs = sids
	}

	if err := uc.packageRepo.Update(ctx, pkg); err != nil {
		uc.logger.Errorw("failed to update package", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to update package: %w", err)
	}

	resp := toPackageResponse(pkg, softwareSID, softwareName, serviceSIDs)
	return &resp, nil
}

// TogglePackageStatusUseCase flips a package's availability on the public
// renewal page.
type TogglePackageStatusUseCase struct {
	packageRepo catalog.PackageRepository
	logger      logger.Interface
}

func NewTogglePackageStatusUseCase(packageRepo catalog.PackageRepository, logger logger.Interface) *TogglePackageStatusUseCase {
	return &TogglePackageStatusUseCase{packageRepo: packageRepo, logger: logger}
}

func (uc *TogglePackageStatusUseCase) Execute(ctx context.Context, sid string) (*dto.PackageResponse, error) {
	pkg, err := uc.packageRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, apperrors.NewNotFoundError("package not found")
	}

	pkg.ToggleActive()

	if err := uc.packageRepo.Update(ctx, pkg); err != nil {
		uc.logger.Errorw("failed to toggle package status", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to toggle package status: %w", err)
	}

	uc.logger.Infow("package status toggled", "sid", sid, "is_active", pkg.IsActive())

	resp := toPackageResponse(pkg, "", "", nil)
	return &resp, nil
}

// DeletePackageUseCase removes a package. The payment ledger is append-only,
// so a package with settled payments stays forever.
type DeletePackageUseCase struct {
	packageRepo catalog.PackageRepository
	paymentRepo payment.Repository
	logger      logger.Interface
}

func NewDeletePackageUseCase(packageRepo catalog.PackageRepository, paymentRepo payment.Repository, logger logger.Interface) *DeletePackageUseCase {
	return &DeletePackageUseCase{packageRepo: packageRepo, paymentRepo: paymentRepo, logger: logger}
}

func (uc *DeletePackageUseCase) Execute(ctx context.Context, sid string) error {
	pkg, err := uc.packageRepo.GetBySID(ctx, sid)
	if err != nil {
		return apperrors.NewNotFoundError("package not found")
	}

	hasPayments, err := uc.paymentRepo.ExistsByPackageID(ctx, pkg.ID())
	if err != nil {
		return fmt.Errorf("failed to check package payments: %w", err)
	}
	if hasPayments {
		return apperrors.NewConflictError("package has payment history and cannot be deleted")
	}

	if err := uc.packageRepo.Delete(ctx, pkg.ID()); err != nil {
		uc.logger.Errorw("failed to delete package", "error", err, "sid", sid)
		return fmt.Errorf("failed to delete package: %w", err)
	}

	uc.logger.Infow("package deleted", "sid", sid, "name", pkg.Name())
	return nil
}

// ListPackagesUseCase lists packages, optionally narrowed by type, software
// or availability.
type ListPackagesUseCase struct {
	packageRepo  catalog.PackageRepository
	softwareRepo catalog.SoftwareRepository
	serviceRepo  catalog.ServiceRepository
	logger       logger.Interface
}

func NewListPackagesUseCase(
	packageRepo catalog.PackageRepository,
	softwareRepo catalog.SoftwareRepository,
	serviceRepo catalog.ServiceRepository,
	logger logger.Interface,
) *ListPackagesUseCase {
	return &ListPackagesUseCase{
		packageRepo:  packageRepo,
		softwareRepo: softwareRepo,
		serviceRepo:  serviceRepo,
		logger:       logger,
	}
}

func (uc *ListPackagesUseCase) Execute(ctx context.Context, req dto.ListPackagesRequest) ([]dto.PackageResponse, error) {
	filter := catalog.PackageFilter{ActiveOnly: req.ActiveOnly}

	if req.Type != "" {
		t, err := vo.NewPackageType(req.Type)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		filter.Type = &t
	}
	if req.SoftwareID != "" {
		sw, err := uc.softwareRepo.GetBySID(ctx, req.SoftwareID)
		if err != nil {
			return nil, apperrors.NewNotFoundError("software not found")
		}
		swID := sw.ID()
		filter.SoftwareID = &swID
	}

	pkgs, err := uc.packageRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list packages", "error", err)
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	// Resolve referenced software and service SIDs in one pass each.
	softwareBySID, softwareNames := uc.softwareIndex(ctx, pkgs)
	serviceSIDs := uc.serviceIndex(ctx, pkgs)

	responses := make([]dto.PackageResponse, 0, len(pkgs))
	for _, pkg := range pkgs {
		var swSID, swName string
		if pkg.SoftwareID() != nil {
			swSID = softwareBySID[*pkg.SoftwareID()]
			swName = softwareNames[*pkg.SoftwareID()]
		}
		sids := make([]string, 0, len(pkg.ServiceIDs()))
		for _, svcID := range pkg.ServiceIDs() {
			if sid, ok := serviceSIDs[svcID]; ok {
				sids = append(sids, sid)
			}
		}
		responses = append(responses, toPackageResponse(pkg, swSID, swName, sids))
	}
	return responses, nil
}

func (uc *ListPackagesUseCase) softwareIndex(ctx context.Context, pkgs []*catalog.Package) (map[uint]string, map[uint]string) {
	sids := make(map[uint]string)
	names := make(map[uint]string)
	for _, pkg := range pkgs {
		if pkg.SoftwareID() == nil {
			continue
		}
		if _, ok := sids[*pkg.SoftwareID()]; ok {
			continue
		}
		sw, err := uc.softwareRepo.GetByID(ctx, *pkg.SoftwareID())
		if err != nil {
			uc.logger.Warnw("package references missing software", "software_id", *pkg.SoftwareID())
			continue
		}
		sids[sw.ID()] = sw.SID()
		names[sw.ID()] = sw.Name()
	}
	return sids, names
}

func (uc *ListPackagesUseCase) serviceIndex(ctx context.Context, pkgs []*catalog.Package) map[uint]string {
	var ids []uint
	seen := make(map[uint]bool)
	for _, pkg := range pkgs {
		for _, svcID := range pkg.ServiceIDs() {
			if !seen[svcID] {
				seen[svcID] = true
				ids = append(ids, svcID)
			}
		}
	}
	if len(ids) == 0 {
		return nil
	}

	services, err := uc.serviceRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Warnw("failed to resolve package services", "error", err)
		return nil
	}
	index := make(map[uint]string, len(services))
	for _, svc := range services {
		index[svc.ID()] = svc.SID()
	}
	return index
}

func buildDuration(value int, unit string) (vo.Duration, error) {
	u, err := vo.NewDurationUnit(unit)
	if err != nil {
		return vo.Duration{}, apperrors.NewValidationError(err.Error())
	}
	d, err := vo.NewDuration(value, u)
	if err != nil {
		return vo.Duration{}, apperrors.NewValidationError(err.Error())
	}
	return d, nil
}

func resolveServiceSIDs(ctx context.Context, repo catalog.ServiceRepository, sids []string) ([]uint, []string, error) {
	if len(sids) == 0 {
		return nil, nil, apperrors.NewValidationError("at least one service is required")
	}

	ids := make([]uint, 0, len(sids))
	resolved := make([]string, 0, len(sids))
	for _, sid := range sids {
		svc, err := repo.GetBySID(ctx, sid)
		if err != nil {
			return nil, nil, apperrors.NewNotFoundError(fmt.Sprintf("service %s not found", sid))
		}
		ids = append(ids, svc.ID())
		resolved = append(resolved, svc.SID())
	}
	return ids, resolved, nil
}
