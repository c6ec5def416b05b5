package usecases

import (
	"context"

	"github.com/vendra-inc/vendra/internal/application/client/bridge"
	"github.com/vendra-inc/vendra/internal/application/client/dto"
	"github.com/vendra-inc/vendra/internal/domain/catalog"
	"github.com/vendra-inc/vendra/internal/domain/client"
	apperrors "github.com/vendra-inc/vendra/internal/shared/errors"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

// ListExternalAccountsUseCase pulls the account list from a software's own
// backend and marks which accounts already have a local row, matched by
// email. Backends predate this system, so unlinked accounts are expected.
type ListExternalAccountsUseCase struct {
	clientRepo   client.Repository
	softwareRepo catalog.SoftwareRepository
	provisioner  bridge.ExternalProvisioner
	logger       logger.Interface
}

func NewListExternalAccountsUseCase(
	clientRepo client.Repository,
	softwareRepo catalog.SoftwareRepository,
	provisioner bridge.ExternalProvisioner,
	logger logger.Interface,
) *ListExternalAccountsUseCase {
	return &ListExternalAccountsUseCase{
		clientRepo:   clientRepo,
		softwareRepo: softwareRepo,
		provisioner:  provisioner,
		logger:       logger,
	}
}

func (uc *ListExternalAccountsUseCase) Execute(ctx context.Context, softwareSID string) ([]dto.ExternalAccountResponse, error) {
	sw, err := uc.softwareRepo.GetBySID(ctx, softwareSID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("software not found")
	}

	if !sw.Endpoints().IsConfigured() {
		return nil, apperrors.NewValidationError("software has no external backend configured")
	}

	accounts, err := uc.provisioner.ListAccounts(ctx, sw.Endpoints())
	if err != nil {
		uc.logger.Warnw("failed to list external accounts",
			"software", sw.Name(),
			"error", err,
		)
		return nil, apperrors.NewExternalBridgeError("failed to reach external backend")
	}

	items := make([]dto.ExternalAccountResponse, 0, len(accounts))
	for _, account := range accounts {
		item := dto.ExternalAccountResponse{
			ExternalID: account.ExternalID,
			Name:       account.Name,
			Email:      account.Email,
			Active:     account.Active,
		}
		if cl, err := uc.clientRepo.GetByEmail(ctx, account.Email); err == nil {
			item.Linked = true
			item.ClientID = cl.SID()
		}
		items = append(items, item)
	}

	return items, nil
}
