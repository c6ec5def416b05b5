package payment

import "context"

// Repository persists the payment ledger. The gateway order ID carries a
// unique constraint: it is the idempotency anchor for settlement.
type Repository interface {
	Create(ctx context.Context, record *Record) error
	Update(ctx context.Context, record *Record) error
	GetByID(ctx context.Context, id uint) (*Record, error)
	GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*Record, error)
	ListByClientID(ctx context.Context, clientID uint) ([]*Record, error)
	ExistsByPackageID(ctx context.Context, packageID uint) (bool, error)
}
