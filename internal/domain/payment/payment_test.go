package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cvo "github.com/vendra-inc/vendra/internal/domain/catalog/valueobjects"
	vo "github.com/vendra-inc/vendra/internal/domain/payment/valueobjects"
)

func newPendingRecord(t *testing.T) *Record {
	t.Helper()
	r, err := NewRecord(1, 2, cvo.NewMoneyFromRupees(999, "INR"), "order_abc", "pay_abc", "sig_abc")
	require.NoError(t, err)
	return r
}

func TestNewRecord(t *testing.T) {
	r := newPendingRecord(t)

	assert.Contains(t, r.SID(), "pay_")
	assert.Equal(t, vo.PaymentStatusPending, r.Status())
	assert.Equal(t, "order_abc", r.GatewayOrderID())
	assert.NotNil(t, r.Metadata())
}

func TestNewRecord_Validation(t *testing.T) {
	amount := cvo.NewMoneyFromRupees(999, "INR")

	_, err := NewRecord(0, 2, amount, "order", "pay", "sig")
	assert.Error(t, err, "client required")

	_, err = NewRecord(1, 0, amount, "order", "pay", "sig")
	assert.Error(t, err, "package required")

	_, err = NewRecord(1, 2, cvo.NewMoney(0, "INR"), "order", "pay", "sig")
	assert.Error(t, err, "positive amount required")

	_, err = NewRecord(1, 2, amount, "", "pay", "sig")
	assert.Error(t, err, "gateway order ID required")
}

func TestRecord_MarkVerified(t *testing.T) {
	r := newPendingRecord(t)

	require.NoError(t, r.MarkVerified())
	assert.Equal(t, vo.PaymentStatusVerified, r.Status())

	// Re-verifying a settled record is a no-op, not an error.
	require.NoError(t, r.MarkVerified())
	assert.Equal(t, vo.PaymentStatusVerified, r.Status())
}

func TestRecord_MarkFailed(t *testing.T) {
	r := newPendingRecord(t)

	require.NoError(t, r.MarkFailed("signature mismatch"))
	assert.Equal(t, vo.PaymentStatusFailed, r.Status())
	assert.Equal(t, "signature mismatch", r.Metadata()["failure_reason"])
}

func TestRecord_TerminalStatesAreFinal(t *testing.T) {
	verified := newPendingRecord(t)
	require.NoError(t, verified.MarkVerified())
	assert.Error(t, verified.MarkFailed("late failure"), "verified record cannot fail")

	failed := newPendingRecord(t)
	require.NoError(t, failed.MarkFailed("declined"))
	assert.Error(t, failed.MarkVerified(), "failed record cannot be verified")
	assert.Error(t, failed.MarkFailed("again"), "failed record stays failed")
}

func TestRecord_SetMetadata(t *testing.T) {
	r := newPendingRecord(t)

	r.SetMetadata("new_expiry", "2025-07-01T00:00:00Z")
	assert.Equal(t, "2025-07-01T00:00:00Z", r.Metadata()["new_expiry"])
}

func TestPaymentStatus(t *testing.T) {
	assert.True(t, vo.PaymentStatusVerified.IsFinal())
	assert.True(t, vo.PaymentStatusFailed.IsFinal())
	assert.False(t, vo.PaymentStatusPending.IsFinal())
	assert.True(t, vo.PaymentStatusVerified.IsVerified())
	assert.False(t, vo.PaymentStatus("refunded").IsValid())
}
