package usecases

import (
	"context"
	"fmt"

	"github.com/vendra-inc/vendra/internal/application/client/dto"
	"github.com/vendra-inc/vendra/internal/domain/catalog"
	"github.com/vendra-inc/vendra/internal/domain/client"
	"github.com/vendra-inc/vendra/internal/domain/payment"
	apperrors "github.com/vendra-inc/vendra/internal/shared/errors"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

// GetClientHistoryUseCase returns a client's payment ledger, newest first.
type GetClientHistoryUseCase struct {
	clientRepo  client.Repository
	paymentRepo payment.Repository
	packageRepo catalog.PackageRepository
	logger      logger.Interface
}

func NewGetClientHistoryUseCase(
	clientRepo client.Repository,
	paymentRepo payment.Repository,
	packageRepo catalog.PackageRepository,
	logger logger.Interface,
) *GetClientHistoryUseCase {
	return &GetClientHistoryUseCase{
		clientRepo:  clientRepo,
		paymentRepo: paymentRepo,
		packageRepo: packageRepo,
		logger:      logger,
	}
}

func (uc *GetClientHistoryUseCase) Execute(ctx context.Context, clientSID string) ([]dto.PaymentHistoryEntry, error) {
	cl, err := uc.clientRepo.GetBySID(ctx, clientSID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("client not found")
	}

	records, err := uc.paymentRepo.ListByClientID(ctx, cl.ID())
	if err != nil {
		uc.logger.Errorw("failed to list client payments", "error", err, "client_sid", clientSID)
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	// Package rows repeat across records; resolve each once.
	pkgSIDs := make(map[uint]string)
	pkgNames := make(map[uint]string)

	entries := make([]dto.PaymentHistoryEntry, 0, len(records))
	for _, rec := range records {
		if _, ok := pkgSIDs[rec.PackageID()]; !ok {
			if pkg, err := uc.packageRepo.GetByID(ctx, rec.PackageID()); err == nil {
				pkgSIDs[rec.PackageID()] = pkg.SID()
				pkgNames[rec.PackageID()] = pkg.Name()
			} else {
				uc.logger.Warnw("payment references missing package", "payment_sid", rec.SID(), "package_id", rec.PackageID())
				pkgSIDs[rec.PackageID()] = ""
			}
		}

		entries = append(entries, dto.PaymentHistoryEntry{
			ID:               rec.SID(),
			PackageID:        pkgSIDs[rec.PackageID()],
			PackageName:      pkgNames[rec.PackageID()],
			Amount:           rec.Amount().AmountInRupees(),
			Currency:         rec.Amount().Currency(),
			GatewayOrderID:   rec.GatewayOrderID(),
			GatewayPaymentID: rec.GatewayPaymentID(),
			Status:           string(rec.Status()),
			CreatedAt:        rec.CreatedAt(),
		})
	}
	return entries, nil
}
