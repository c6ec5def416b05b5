package mappers

import (
	"github.com/vendra-inc/vendra/internal/domain/catalog"
	"github.com/vendra-inc/vendra/internal/infrastructure/persistence/models"
)

func SoftwareToModel(s *catalog.Software) *models.SoftwareModel {
	endpoints := s.Endpoints()

	return &models.SoftwareModel{
		ID:                  s.ID(),
		SID:                 s.SID(),
		Name:                s.Name(),
		Description:         s.Description(),
		Notes:               s.Notes(),
		FrontendURL:         s.FrontendURL(),
		RegisterAPILink:     endpoints.RegisterAPILink,
		GetAllAPILink:       endpoints.GetAllAPILink,
		DeleteAPILink:       endpoints.DeleteAPILink,
		UpdateStatusAPILink: endpoints.UpdateStatusAPILink,
		CreatedAt:           s.CreatedAt(),
		UpdatedAt:           s.UpdatedAt(),
	}
}

func SoftwareToDomain(model *models.SoftwareModel) *catalog.Software {
	endpoints := catalog.BridgeEndpoints{
		RegisterAPILink:     model.RegisterAPILink,
		GetAllAPILink:       model.GetAllAPILink,
		DeleteAPILink:       model.DeleteAPILink,
		UpdateStatusAPILink: model.UpdateStatusAPILink,
	}

	return catalog.ReconstructSoftware(
		model.ID,
		model.SID,
		model.Name,
		model.Description,
		model.Notes,
		model.FrontendURL,
		endpoints,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
