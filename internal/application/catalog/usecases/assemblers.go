package usecases

import (
	"github.com/vendra-inc/vendra/internal/application/catalog/dto"
	"github.com/vendra-inc/vendra/internal/domain/catalog"
)

func toSoftwareResponse(sw *catalog.Software) dto.SoftwareResponse {
	ep := sw.Endpoints()
	return dto.SoftwareResponse{
		ID:                  sw.SID(),
		Name:                sw.Name(),
		Description:         sw.Description(),
		Notes:               sw.Notes(),
		FrontendURL:         sw.FrontendURL(),
		RegisterAPILink:     ep.RegisterAPILink,
		GetAllAPILink:       ep.GetAllAPILink,
		DeleteAPILink:       ep.DeleteAPILink,
		UpdateStatusAPILink: ep.UpdateStatusAPILink,
		CreatedAt:           sw.CreatedAt(),
		UpdatedAt:           sw.UpdatedAt(),
	}
}

func toServiceResponse(svc *catalog.Service) dto.ServiceResponse {
	return dto.ServiceResponse{
		ID:          svc.SID(),
		Name:        svc.Name(),
		Price:       svc.Price().AmountInRupees(),
		Description: svc.Description(),
		IsActive:    svc.IsActive(),
		CreatedAt:   svc.CreatedAt(),
		UpdatedAt:   svc.UpdatedAt(),
	}
}

// toPackageResponse leaves SoftwareID/ServiceIDs translation to the caller:
// the aggregate carries numeric IDs, the API speaks SIDs.
func toPackageResponse(pkg *catalog.Package, softwareSID, softwareName string, serviceSIDs []string) dto.PackageResponse {
	return dto.PackageResponse{
		ID:            pkg.SID(),
		Name:          pkg.Name(),
		Type:          pkg.Type().String(),
		SoftwareID:    softwareSID,
		SoftwareName:  softwareName,
		ServiceIDs:    serviceSIDs,
		DurationValue: pkg.Duration().Value(),
		DurationUnit:  pkg.Duration().Unit().String(),
		Price:         pkg.Price().AmountInRupees(),
		Description:   pkg.Description(),
		IsActive:      pkg.IsActive(),
		CreatedAt:     pkg.CreatedAt(),
		UpdatedAt:     pkg.UpdatedAt(),
	}
}
