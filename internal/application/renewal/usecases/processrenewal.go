package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/vendra-inc/vendra/internal/application/renewal/gateway"
	"github.com/vendra-inc/vendra/internal/domain/catalog"
	"github.com/vendra-inc/vendra/internal/domain/client"
	"github.com/vendra-inc/vendra/internal/domain/payment"
	pvo "github.com/vendra-inc/vendra/internal/domain/payment/valueobjects"
	"github.com/vendra-inc/vendra/internal/shared/biztime"
	apperrors "github.com/vendra-inc/vendra/internal/shared/errors"
	"github.com/vendra-inc/vendra/internal/shared/goroutine"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

// ReceiptNotifier delivers a renewal receipt after settlement. Delivery is
// best-effort and never affects the settlement outcome.
type ReceiptNotifier interface {
	SendRenewalReceipt(ctx context.Context, cmd ReceiptCommand) error
}

// ReceiptCommand carries everything the receipt template needs.
type ReceiptCommand struct {
	ClientName     string
	ClientEmail    string
	PackageName    string
	AmountInRupees float64
	Currency       string
	PaymentSID     string
	NewExpiryDate  time.Time
}

// TransactionManager runs a function inside a single database transaction.
// Satisfied by db.TransactionManager.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ProcessRenewalCommand struct {
	ClientSID        string
	PackageSID       string
	GatewayOrderID   string
	GatewayPaymentID string
	GatewaySignature string
}

type ProcessRenewalResult struct {
	PaymentSID    string
	NewExpiryDate time.Time
	AlreadyDone   bool
}

// ProcessRenewalUseCase settles a paid checkout: it verifies the gateway
// signature, then atomically appends a verified ledger record and extends
// the client's subscription. The unique constraint on the gateway order ID
// makes retried and concurrent settlements converge on a single extension.
type ProcessRenewalUseCase struct {
	clientRepo  client.Repository
	packageRepo catalog.PackageRepository
	paymentRepo payment.Repository
	gateway     gateway.PaymentGateway
	txManager   TransactionManager
	notifier    ReceiptNotifier // Optional
	logger      logger.Interface
}

func NewProcessRenewalUseCase(
	clientRepo client.Repository,
	packageRepo catalog.PackageRepository,
	paymentRepo payment.Repository,
	gw gateway.PaymentGateway,
	txManager TransactionManager,
	logger logger.Interface,
) *ProcessRenewalUseCase {
	return &ProcessRenewalUseCase{
		clientRepo:  clientRepo,
		packageRepo: packageRepo,
		paymentRepo: paymentRepo,
		gateway:     gw,
		txManager:   txManager,
		logger:      logger,
	}
}

// SetReceiptNotifier sets the receipt notifier (optional dependency injection)
func (uc *ProcessRenewalUseCase) SetReceiptNotifier(notifier ReceiptNotifier) {
	uc.notifier = notifier
}

func (uc *ProcessRenewalUseCase) Execute(ctx context.Context, cmd ProcessRenewalCommand) (*ProcessRenewalResult, error) {
	if cmd.GatewayOrderID == "" || cmd.GatewayPaymentID == "" || cmd.GatewaySignature == "" {
		return nil, apperrors.NewValidationError("payment details are incomplete")
	}

	// Signature first: nothing below runs for a forged settlement.
	if err := uc.gateway.VerifySignature(cmd.GatewayOrderID, cmd.GatewayPaymentID, cmd.GatewaySignature); err != nil {
		uc.logger.Warnw("renewal signature verification failed",
			"client_sid", cmd.ClientSID,
			"gateway_order_id", cmd.GatewayOrderID,
			"gateway_payment_id", cmd.GatewayPaymentID,
		)
		return nil, apperrors.NewSignatureMismatchError("payment signature verification failed")
	}

	// Idempotency: a verified record for this order means a prior attempt
	// already extended the subscription.
	if existing, err := uc.paymentRepo.GetByGatewayOrderID(ctx, cmd.GatewayOrderID); err == nil && existing != nil {
		if existing.Status() == pvo.PaymentStatusVerified {
			return uc.replaySettledResult(ctx, existing)
		}
	}

	cl, err := uc.clientRepo.GetBySID(ctx, cmd.ClientSID)
	if err != nil {
		uc.logger.Warnw("renewal for unknown client", "client_sid", cmd.ClientSID, "error", err)
		return nil, apperrors.NewNotFoundError("client not found")
	}

	pkg, err := uc.packageRepo.GetBySID(ctx, cmd.PackageSID)
	if err != nil {
		uc.logger.Warnw("renewal for unknown package", "package_sid", cmd.PackageSID, "error", err)
		return nil, apperrors.NewNotFoundError("package not found")
	}

	if err := checkPackageApplies(cl, pkg); err != nil {
		uc.logger.Warnw("renewal package mismatch",
			"client_sid", cl.SID(),
			"package_sid", pkg.SID(),
			"client_type", cl.Type().String(),
			"package_type", pkg.Type().String(),
		)
		return nil, err
	}

	record, err := payment.NewRecord(cl.ID(), pkg.ID(), pkg.Price(), cmd.GatewayOrderID, cmd.GatewayPaymentID, cmd.GatewaySignature)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := record.MarkVerified(); err != nil {
		return nil, apperrors.NewInternalError("failed to settle payment record")
	}

	now := biztime.NowUTC()
	var newExpiry time.Time

	txErr := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		newExpiry = cl.ExtendSubscription(pkg.ID(), pkg.Duration(), now)
		record.SetMetadata("new_expiry", biztime.FormatMetadataTime(newExpiry))

		if err := uc.paymentRepo.Create(txCtx, record); err != nil {
			return fmt.Errorf("failed to record payment: %w", err)
		}
		if err := uc.clientRepo.Update(txCtx, cl); err != nil {
			return fmt.Errorf("failed to extend subscription: %w", err)
		}
		return nil
	})
	if txErr != nil {
		// A duplicate gateway order ID means a concurrent settlement won the
		// race; fall back to its result instead of reporting a failure.
		if apperrors.IsDuplicateError(txErr) {
			uc.logger.Infow("concurrent settlement detected", "gateway_order_id", cmd.GatewayOrderID)
			if existing, err := uc.paymentRepo.GetByGatewayOrderID(ctx, cmd.GatewayOrderID); err == nil && existing != nil {
				return uc.replaySettledResult(ctx, existing)
			}
		}
		uc.logger.Errorw("renewal settlement failed",
			"error", txErr,
			"client_sid", cl.SID(),
			"gateway_order_id", cmd.GatewayOrderID,
		)
		return nil, apperrors.NewInternalError("failed to process renewal")
	}

	uc.logger.Infow("renewal settled",
		"client_sid", cl.SID(),
		"package_sid", pkg.SID(),
		"payment_sid", record.SID(),
		"new_expiry", newExpiry,
	)

	uc.sendReceipt(cl, pkg, record, newExpiry)

	return &ProcessRenewalResult{
		PaymentSID:    record.SID(),
		NewExpiryDate: newExpiry,
	}, nil
}

// replaySettledResult rebuilds the response of a settlement that already
// happened, without touching the ledger or the client again.
func (uc *ProcessRenewalUseCase) replaySettledResult(ctx context.Context, record *payment.Record) (*ProcessRenewalResult, error) {
	uc.logger.Infow("renewal already settled", "gateway_order_id", record.GatewayOrderID(), "payment_sid", record.SID())

	result := &ProcessRenewalResult{
		PaymentSID:  record.SID(),
		AlreadyDone: true,
	}

	if raw, ok := record.Metadata()["new_expiry"].(string); ok {
		if t, err := biztime.ParseMetadataTime(raw); err == nil {
			result.NewExpiryDate = t
			return result, nil
		}
	}

	// Older records without the metadata fall back to the current expiry.
	cl, err := uc.clientRepo.GetByID(ctx, record.ClientID())
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load settled renewal")
	}
	if cl.ExpiresAt() != nil {
		result.NewExpiryDate = *cl.ExpiresAt()
	}
	return result, nil
}

func (uc *ProcessRenewalUseCase) sendReceipt(cl *client.Client, pkg *catalog.Package, record *payment.Record, newExpiry time.Time) {
	if uc.notifier == nil {
		return
	}

	cmd := ReceiptCommand{
		ClientName:     cl.Name(),
		ClientEmail:    cl.Email(),
		PackageName:    pkg.Name(),
		AmountInRupees: record.Amount().AmountInRupees(),
		Currency:       record.Amount().Currency(),
		PaymentSID:     record.SID(),
		NewExpiryDate:  newExpiry,
	}

	goroutine.SafeGo(uc.logger, "renewal-receipt", func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := uc.notifier.SendRenewalReceipt(sendCtx, cmd); err != nil {
			uc.logger.Warnw("failed to send renewal receipt", "error", err, "client_email", cmd.ClientEmail)
		}
	})
}

// checkPackageApplies maps the shared catalog scoping rule onto the renewal
// conflict code: an inactive or out-of-scope package is a 409 here, never a
// state change.
func checkPackageApplies(cl *client.Client, pkg *catalog.Package) error {
	if err := client.CheckPackageApplies(cl, pkg); err != nil {
		return apperrors.NewPackageMismatchError(err.Error())
	}
	return nil
}
