package mappers

import (
	"fmt"

	"github.com/vendra-inc/vendra/internal/domain/client"
	vo "github.com/vendra-inc/vendra/internal/domain/client/valueobjects"
	"github.com/vendra-inc/vendra/internal/infrastructure/persistence/models"
)

func ClientToModel(c *client.Client) (*models.ClientModel, error) {
	serviceIDs, err := uintSliceToJSON(c.ServiceIDs())
	if err != nil {
		return nil, err
	}

	return &models.ClientModel{
		ID:                 c.ID(),
		SID:                c.SID(),
		Name:               c.Name(),
		Email:              c.Email(),
		Phone:              c.Phone().String(),
		ClientType:         c.Type().String(),
		SoftwareID:         c.SoftwareID(),
		ServiceIDs:         serviceIDs,
		PackageID:          c.PackageID(),
		ExpiresAt:          c.ExpiresAt(),
		AdminSuspended:     c.AdminSuspended(),
		ExternalID:         c.ExternalID(),
		RegistrationStatus: c.RegistrationStatus().String(),
		Source:             c.Source().String(),
		CreatedBy:          c.CreatedBy(),
		CreatedAt:          c.CreatedAt(),
		UpdatedAt:          c.UpdatedAt(),
	}, nil
}

func ClientToDomain(model *models.ClientModel) (*client.Client, error) {
	clientType, err := vo.NewClientType(model.ClientType)
	if err != nil {
		return nil, fmt.Errorf("invalid client type: %w", err)
	}

	registrationStatus := vo.RegistrationStatus(model.RegistrationStatus)
	if !registrationStatus.IsValid() {
		return nil, fmt.Errorf("invalid registration status: %s", model.RegistrationStatus)
	}

	serviceIDs, err := jsonToUintSlice(model.ServiceIDs)
	if err != nil {
		return nil, err
	}

	return client.ReconstructClient(client.ReconstructClientParams{
		ID:                 model.ID,
		SID:                model.SID,
		Name:               model.Name,
		Email:              model.Email,
		Phone:              vo.ReconstructPhone(model.Phone),
		Type:               clientType,
		SoftwareID:         model.SoftwareID,
		ServiceIDs:         serviceIDs,
		PackageID:          model.PackageID,
		ExpiresAt:          model.ExpiresAt,
		AdminSuspended:     model.AdminSuspended,
		ExternalID:         model.ExternalID,
		RegistrationStatus: registrationStatus,
		Source:             vo.ClientSource(model.Source),
		CreatedBy:          model.CreatedBy,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	})
}
