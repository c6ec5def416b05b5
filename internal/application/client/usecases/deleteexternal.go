package usecases

import (
	"context"
	"fmt"

	"github.com/vendra-inc/vendra/internal/application/client/bridge"
	"github.com/vendra-inc/vendra/internal/application/client/dto"
	"github.com/vendra-inc/vendra/internal/domain/catalog"
	"github.com/vendra-inc/vendra/internal/domain/client"
	apperrors "github.com/vendra-inc/vendra/internal/shared/errors"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

// DeleteExternalClientUseCase removes an account that lives on a software's
// own backend. The account may or may not have a local row: backends predate
// this system and can hold accounts created elsewhere. Remote deletion must
// succeed before any local row is touched.
type DeleteExternalClientUseCase struct {
	clientRepo   client.Repository
	softwareRepo catalog.SoftwareRepository
	provisioner  bridge.ExternalProvisioner
	logger       logger.Interface
}

func NewDeleteExternalClientUseCase(
	clientRepo client.Repository,
	softwareRepo catalog.SoftwareRepository,
	provisioner bridge.ExternalProvisioner,
	logger logger.Interface,
) *DeleteExternalClientUseCase {
	return &DeleteExternalClientUseCase{
		clientRepo:   clientRepo,
		softwareRepo: softwareRepo,
		provisioner:  provisioner,
		logger:       logger,
	}
}

func (uc *DeleteExternalClientUseCase) Execute(ctx context.Context, req dto.DeleteExternalRequest) error {
	sw, err := uc.softwareRepo.GetBySID(ctx, req.SoftwareID)
	if err != nil {
		return apperrors.NewNotFoundError("software not found")
	}

	if err := uc.provisioner.Delete(ctx, sw.Endpoints(), req.ExternalID); err != nil {
		uc.logger.Warnw("external account deletion failed",
			"external_id", req.ExternalID,
			"software", sw.Name(),
			"error", err,
		)
		return err
	}

	// Drop the local mirror if one exists. A purely remote account simply
	// has nothing to drop.
	cl, err := uc.clientRepo.GetByEmail(ctx, req.ClientEmail)
	if err != nil {
		uc.logger.Infow("external account removed without local row", "email", req.ClientEmail, "external_id", req.ExternalID)
		return nil
	}

	if err := uc.clientRepo.Delete(ctx, cl.ID()); err != nil {
		uc.logger.Errorw("failed to delete local client after external deletion", "error", err, "sid", cl.SID())
		return fmt.Errorf("failed to delete client: %w", err)
	}

	uc.logger.Infow("external client deleted", "sid", cl.SID(), "email", cl.Email(), "external_id", req.ExternalID)
	return nil
}
