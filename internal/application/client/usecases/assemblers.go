package usecases

import (
	"context"
	"time"

	"github.com/vendra-inc/vendra/internal/application/client/dto"
	"github.com/vendra-inc/vendra/internal/domain/catalog"
	"github.com/vendra-inc/vendra/internal/domain/client"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

func toClientResponse(cl *client.Client, now time.Time, swSID, swName string, serviceSIDs []string, pkgSID string) dto.ClientResponse {
	resp := dto.ClientResponse{
		ID:                 cl.SID(),
		Name:               cl.Name(),
		Email:              cl.Email(),
		Phone:              cl.Phone().String(),
		Type:               cl.Type().String(),
		SoftwareID:         swSID,
		SoftwareName:       swName,
		ServiceIDs:         serviceSIDs,
		PackageID:          pkgSID,
		ExpiryDate:         cl.ExpiresAt(),
		IsActive:           cl.IsActive(now),
		AdminSuspended:     cl.AdminSuspended(),
		RegistrationStatus: string(cl.RegistrationStatus()),
		Source:             string(cl.Source()),
		CreatedBy:          cl.CreatedBy(),
		CreatedAt:          cl.CreatedAt(),
		UpdatedAt:          cl.UpdatedAt(),
	}
	if cl.ExternalID() != nil {
		resp.ExternalID = *cl.ExternalID()
	}
	return resp
}

// refResolver resolves the numeric references a client row carries into the
// SIDs and names the API exposes. Lookups are best-effort: a missing
// reference is logged and rendered empty rather than failing the request.
type refResolver struct {
	softwareRepo catalog.SoftwareRepository
	serviceRepo  catalog.ServiceRepository
	packageRepo  catalog.PackageRepository
	logger       logger.Interface
}

func newRefResolver(
	softwareRepo catalog.SoftwareRepository,
	serviceRepo catalog.ServiceRepository,
	packageRepo catalog.PackageRepository,
	logger logger.Interface,
) *refResolver {
	return &refResolver{
		softwareRepo: softwareRepo,
		serviceRepo:  serviceRepo,
		packageRepo:  packageRepo,
		logger:       logger,
	}
}

func (r *refResolver) resolve(ctx context.Context, cl *client.Client, now time.Time) dto.ClientResponse {
	var swSID, swName, pkgSID string
	var serviceSIDs []string

	if cl.SoftwareID() != nil {
		if sw, err := r.softwareRepo.GetByID(ctx, *cl.SoftwareID()); err == nil {
			swSID, swName = sw.SID(), sw.Name()
		} else {
			r.logger.Warnw("client references missing software", "client_sid", cl.SID(), "software_id", *cl.SoftwareID())
		}
	}
	if len(cl.ServiceIDs()) > 0 {
		if services, err := r.serviceRepo.GetByIDs(ctx, cl.ServiceIDs()); err == nil {
			for _, svc := range services {
				serviceSIDs = append(serviceSIDs, svc.SID())
			}
		} else {
			r.logger.Warnw("failed to resolve client services", "client_sid", cl.SID(), "error", err)
		}
	}
	if cl.PackageID() != nil {
		if pkg, err := r.packageRepo.GetByID(ctx, *cl.PackageID()); err == nil {
			pkgSID = pkg.SID()
		} else {
			r.logger.Warnw("client references missing package", "client_sid", cl.SID(), "package_id", *cl.PackageID())
		}
	}

	return toClientResponse(cl, now, swSID, swName, serviceSIDs, pkgSID)
}
