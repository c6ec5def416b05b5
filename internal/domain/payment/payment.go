// Package payment holds the append-only payment ledger. One record exists per
// renewal attempt that reached gateway checkout; verified and failed records
// are terminal and never mutated afterwards.
package payment

import (
	"fmt"
	"time"

	cvo "github.com/vendra-inc/vendra/internal/domain/catalog/valueobjects"
	vo "github.com/vendra-inc/vendra/internal/domain/payment/valueobjects"
	"github.com/vendra-inc/vendra/internal/shared/biztime"
	"github.com/vendra-inc/vendra/internal/shared/id"
)

// Record is a single entry in a client's payment history.
type Record struct {
	id               uint
	sid              string
	clientID         uint
	packageID        uint
	amount           cvo.Money
	gatewayOrderID   string
	gatewayPaymentID string
	gatewaySignature string
	status           vo.PaymentStatus

	metadata map[string]interface{}

	createdAt time.Time
	updatedAt time.Time
}

func NewRecord(clientID, packageID uint, amount cvo.Money, gatewayOrderID, gatewayPaymentID, gatewaySignature string) (*Record, error) {
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if packageID == 0 {
		return nil, fmt.Errorf("package ID is required")
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive")
	}
	if gatewayOrderID == "" {
		return nil, fmt.Errorf("gateway order ID is required")
	}

	now := biztime.NowUTC()
	return &Record{
		sid:              id.MustGenerateWithPrefix(id.PrefixPayment, id.DefaultLength),
		clientID:         clientID,
		packageID:        packageID,
		amount:           amount,
		gatewayOrderID:   gatewayOrderID,
		gatewayPaymentID: gatewayPaymentID,
		gatewaySignature: gatewaySignature,
		status:           vo.PaymentStatusPending,
		metadata:         make(map[string]interface{}),
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// MarkVerified settles the record. Verifying an already-verified record is a
// no-op so retried settlements stay idempotent; any other terminal state is
// rejected.
func (r *Record) MarkVerified() error {
	if r.status == vo.PaymentStatusVerified {
		return nil
	}
	if r.status != vo.PaymentStatusPending {
		return fmt.Errorf("cannot verify payment with status %s", r.status)
	}

	r.status = vo.PaymentStatusVerified
	r.updatedAt = biztime.NowUTC()
	return nil
}

// MarkFailed records a terminal failure with a reason.
func (r *Record) MarkFailed(reason string) error {
	if r.status.IsFinal() {
		return fmt.Errorf("cannot mark payment as failed with final status %s", r.status)
	}

	r.status = vo.PaymentStatusFailed
	r.metadata["failure_reason"] = reason
	r.updatedAt = biztime.NowUTC()
	return nil
}

// SetMetadata sets a metadata key-value pair.
func (r *Record) SetMetadata(key string, value interface{}) {
	if r.metadata == nil {
		r.metadata = make(map[string]interface{})
	}
	r.metadata[key] = value
	r.updatedAt = biztime.NowUTC()
}

func (r *Record) ID() uint                          { return r.id }
func (r *Record) SID() string                       { return r.sid }
func (r *Record) ClientID() uint                    { return r.clientID }
func (r *Record) PackageID() uint                   { return r.packageID }
func (r *Record) Amount() cvo.Money                 { return r.amount }
func (r *Record) GatewayOrderID() string            { return r.gatewayOrderID }
func (r *Record) GatewayPaymentID() string          { return r.gatewayPaymentID }
func (r *Record) GatewaySignature() string          { return r.gatewaySignature }
func (r *Record) Status() vo.PaymentStatus          { return r.status }
func (r *Record) Metadata() map[string]interface{}  { return r.metadata }
func (r *Record) CreatedAt() time.Time              { return r.createdAt }
func (r *Record) UpdatedAt() time.Time              { return r.updatedAt }

// SetID sets the record ID after persistence.
func (r *Record) SetID(idVal uint) { r.id = idVal }

// ReconstructRecordParams mirrors the persisted row.
type ReconstructRecordParams struct {
	ID               uint
	SID              string
	ClientID         uint
	PackageID        uint
	Amount           cvo.Money
	GatewayOrderID   string
	GatewayPaymentID string
	GatewaySignature string
	Status           vo.PaymentStatus
	Metadata         map[string]interface{}
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func ReconstructRecord(p ReconstructRecordParams) (*Record, error) {
	if !p.Status.IsValid() {
		return nil, fmt.Errorf("invalid payment status: %s", p.Status)
	}
	metadata := p.Metadata
	if metadata == nil {
		metadata = make(map[string]interface{})
	}

	return &Record{
		id:               p.ID,
		sid:              p.SID,
		clientID:         p.ClientID,
		packageID:        p.PackageID,
		amount:           p.Amount,
		gatewayOrderID:   p.GatewayOrderID,
		gatewayPaymentID: p.GatewayPaymentID,
		gatewaySignature: p.GatewaySignature,
		status:           p.Status,
		metadata:         metadata,
		createdAt:        p.CreatedAt,
		updatedAt:        p.UpdatedAt,
	}, nil
}
