package usecases

import (
	"context"
	"fmt"

	"github.com/vendra-inc/vendra/internal/application/client/bridge"
	"github.com/vendra-inc/vendra/internal/domain/catalog"
	"github.com/vendra-inc/vendra/internal/domain/client"
	apperrors "github.com/vendra-inc/vendra/internal/shared/errors"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

// DeleteClientUseCase removes a client. For externally-mirrored clients the
// remote account is deleted FIRST and must succeed: deleting locally while
// the remote copy lives would orphan an account nobody can manage anymore.
type DeleteClientUseCase struct {
	clientRepo   client.Repository
	softwareRepo catalog.SoftwareRepository
	provisioner  bridge.ExternalProvisioner
	logger       logger.Interface
}

func NewDeleteClientUseCase(
	clientRepo client.Repository,
	softwareRepo catalog.SoftwareRepository,
	provisioner bridge.ExternalProvisioner,
	logger logger.Interface,
) *DeleteClientUseCase {
	return &DeleteClientUseCase{
		clientRepo:   clientRepo,
		softwareRepo: softwareRepo,
		provisioner:  provisioner,
		logger:       logger,
	}
}

func (uc *DeleteClientUseCase) Execute(ctx context.Context, sid string) error {
	cl, err := uc.clientRepo.GetBySID(ctx, sid)
	if err != nil {
		return apperrors.NewNotFoundError("client not found")
	}

	if cl.Source().IsExternal() && cl.ExternalID() != nil && cl.SoftwareID() != nil {
		sw, err := uc.softwareRepo.GetByID(ctx, *cl.SoftwareID())
		if err != nil {
			return fmt.Errorf("failed to load client software: %w", err)
		}
		if err := uc.provisioner.Delete(ctx, sw.Endpoints(), *cl.ExternalID()); err != nil {
			uc.logger.Warnw("external deletion failed, keeping local row",
				"client_sid", cl.SID(),
				"external_id", *cl.ExternalID(),
				"error", err,
			)
			return err
		}
	}

	if err := uc.clientRepo.Delete(ctx, cl.ID()); err != nil {
		uc.logger.Errorw("failed to delete client", "error", err, "sid", sid)
		return fmt.Errorf("failed to delete client: %w", err)
	}

	uc.logger.Infow("client deleted", "sid", sid, "email", cl.Email())
	return nil
}
