package usecases

import (
	"context"
	"strings"

	"github.com/vendra-inc/vendra/internal/application/renewal/gateway"
	"github.com/vendra-inc/vendra/internal/shared/errors"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

type CreateOrderCommand struct {
	AmountInRupees int64
	Currency       string
}

type CreateOrderResult struct {
	OrderID  string
	Amount   int64
	Currency string
}

// CreateOrderUseCase registers an order with the payment gateway ahead of
// the hosted checkout. It is a stateless passthrough: nothing is persisted
// until settlement, so an abandoned checkout leaves no trace.
type CreateOrderUseCase struct {
	gateway gateway.PaymentGateway
	logger  logger.Interface
}

func NewCreateOrderUseCase(gw gateway.PaymentGateway, logger logger.Interface) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		gateway: gw,
		logger:  logger,
	}
}

func (uc *CreateOrderUseCase) Execute(ctx context.Context, cmd CreateOrderCommand) (*CreateOrderResult, error) {
	if cmd.AmountInRupees <= 0 {
		return nil, errors.NewValidationError("amount must be positive")
	}

	currency := strings.ToUpper(strings.TrimSpace(cmd.Currency))
	if currency == "" {
		currency = "INR"
	}

	// The gateway expects the smallest currency unit.
	amountInPaise := cmd.AmountInRupees * 100

	order, err := uc.gateway.CreateOrder(ctx, amountInPaise, currency)
	if err != nil {
		uc.logger.Errorw("failed to create gateway order", "error", err, "amount", amountInPaise, "currency", currency)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewGatewayError("payment gateway order creation failed")
	}

	uc.logger.Infow("gateway order created", "order_id", order.ID, "amount", order.Amount, "currency", order.Currency)

	return &CreateOrderResult{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
	}, nil
}
