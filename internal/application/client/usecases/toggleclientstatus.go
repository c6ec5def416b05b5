package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/vendra-inc/vendra/internal/application/client/bridge"
	"github.com/vendra-inc/vendra/internal/application/client/dto"
	"github.com/vendra-inc/vendra/internal/domain/catalog"
	"github.com/vendra-inc/vendra/internal/domain/client"
	"github.com/vendra-inc/vendra/internal/shared/biztime"
	apperrors "github.com/vendra-inc/vendra/internal/shared/errors"
	"github.com/vendra-inc/vendra/internal/shared/goroutine"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

// ToggleClientStatusUseCase flips the manual suspension flag. Expiry is
// untouched: a suspended client with a live subscription resumes exactly
// where it left off. For externally-mirrored clients the new effective state
// is pushed to the software's backend asynchronously, best-effort.
type ToggleClientStatusUseCase struct {
	clientRepo   client.Repository
	softwareRepo catalog.SoftwareRepository
	provisioner  bridge.ExternalProvisioner
	resolver     *refResolver
	logger       logger.Interface
}

func NewToggleClientStatusUseCase(
	clientRepo client.Repository,
	softwareRepo catalog.SoftwareRepository,
	serviceRepo catalog.ServiceRepository,
	packageRepo catalog.PackageRepository,
	provisioner bridge.ExternalProvisioner,
	logger logger.Interface,
) *ToggleClientStatusUseCase {
	return &ToggleClientStatusUseCase{
		clientRepo:   clientRepo,
		softwareRepo: softwareRepo,
		provisioner:  provisioner,
		resolver:     newRefResolver(softwareRepo, serviceRepo, packageRepo, logger),
		logger:       logger,
	}
}

func (uc *ToggleClientStatusUseCase) Execute(ctx context.Context, sid string) (*dto.ClientResponse, error) {
	cl, err := uc.clientRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, apperrors.NewNotFoundError("client not found")
	}

	cl.ToggleSuspended()

	if err := uc.clientRepo.Update(ctx, cl); err != nil {
		uc.logger.Errorw("failed to toggle client status", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to toggle client status: %w", err)
	}

	now := biztime.NowUTC()
	uc.logger.Infow("client suspension toggled",
		"sid", cl.SID(),
		"admin_suspended", cl.AdminSuspended(),
		"is_active", cl.IsActive(now),
	)

	uc.pushStatusExternally(cl, now)

	resp := uc.resolver.resolve(ctx, cl, now)
	return &resp, nil
}

func (uc *ToggleClientStatusUseCase) pushStatusExternally(cl *client.Client, now time.Time) {
	if cl.ExternalID() == nil || cl.SoftwareID() == nil {
		return
	}
	externalID := *cl.ExternalID()
	softwareID := *cl.SoftwareID()
	active := cl.IsActive(now)

	goroutine.SafeGo(uc.logger, "bridge-status-push", func() {
		pushCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		sw, err := uc.softwareRepo.GetByID(pushCtx, softwareID)
		if err != nil {
			uc.logger.Warnw("failed to load software for status push", "software_id", softwareID, "error", err)
			return
		}
		if sw.Endpoints().UpdateStatusAPILink == "" {
			return
		}
		if err := uc.provisioner.UpdateStatus(pushCtx, sw.Endpoints(), externalID, active); err != nil {
			uc.logger.Warnw("failed to push client status externally",
				"client_sid", cl.SID(),
				"external_id", externalID,
				"error", err,
			)
		}
	})
}
