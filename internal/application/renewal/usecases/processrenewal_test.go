package usecases

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendra-inc/vendra/internal/application/renewal/gateway"
	"github.com/vendra-inc/vendra/internal/domain/catalog"
	cvo "github.com/vendra-inc/vendra/internal/domain/catalog/valueobjects"
	"github.com/vendra-inc/vendra/internal/domain/client"
	clientvo "github.com/vendra-inc/vendra/internal/domain/client/valueobjects"
	"github.com/vendra-inc/vendra/internal/domain/payment"
	pvo "github.com/vendra-inc/vendra/internal/domain/payment/valueobjects"
	"github.com/vendra-inc/vendra/internal/shared/errors"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

const testKeySecret = "test_key_secret"

// fakeGateway verifies signatures the same way the real gateway does, so
// tampered-signature tests exercise the actual HMAC path.
type fakeGateway struct {
	secret string
}

func (g *fakeGateway) CreateOrder(ctx context.Context, amount int64, currency string) (*gateway.Order, error) {
	return &gateway.Order{ID: "order_fake", Amount: amount, Currency: currency}, nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) error {
	mac := hmac.New(sha256.New, []byte(g.secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return fmt.Errorf("signature mismatch")
	}
	return nil
}

func signOrder(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testKeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

type fakeClientRepo struct {
	bySID   map[string]*client.Client
	byID    map[uint]*client.Client
	updated int
}

func newFakeClientRepo(clients ...*client.Client) *fakeClientRepo {
	r := &fakeClientRepo{bySID: map[string]*client.Client{}, byID: map[uint]*client.Client{}}
	for _, c := range clients {
		r.bySID[c.SID()] = c
		r.byID[c.ID()] = c
	}
	return r
}

func (r *fakeClientRepo) Create(ctx context.Context, c *client.Client) error { return nil }
func (r *fakeClientRepo) Update(ctx context.Context, c *client.Client) error {
	r.updated++
	return nil
}
func (r *fakeClientRepo) Delete(ctx context.Context, id uint) error { return nil }
func (r *fakeClientRepo) GetByID(ctx context.Context, id uint) (*client.Client, error) {
	if c, ok := r.byID[id]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("client not found")
}
func (r *fakeClientRepo) GetBySID(ctx context.Context, sid string) (*client.Client, error) {
	if c, ok := r.bySID[sid]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("client not found")
}
func (r *fakeClientRepo) GetByEmail(ctx context.Context, email string) (*client.Client, error) {
	return nil, fmt.Errorf("client not found")
}
func (r *fakeClientRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}
func (r *fakeClientRepo) List(ctx context.Context, filter client.Filter) ([]*client.Client, int64, error) {
	return nil, 0, nil
}
func (r *fakeClientRepo) CountBySoftwareID(ctx context.Context, softwareID uint) (int64, error) {
	return 0, nil
}

type fakePackageRepo struct {
	bySID map[string]*catalog.Package
}

func newFakePackageRepo(pkgs ...*catalog.Package) *fakePackageRepo {
	r := &fakePackageRepo{bySID: map[string]*catalog.Package{}}
	for _, p := range pkgs {
		r.bySID[p.SID()] = p
	}
	return r
}

func (r *fakePackageRepo) Create(ctx context.Context, pkg *catalog.Package) error { return nil }
func (r *fakePackageRepo) Update(ctx context.Context, pkg *catalog.Package) error { return nil }
func (r *fakePackageRepo) Delete(ctx context.Context, id uint) error              { return nil }
func (r *fakePackageRepo) GetByID(ctx context.Context, id uint) (*catalog.Package, error) {
	return nil, fmt.Errorf("package not found")
}
func (r *fakePackageRepo) GetBySID(ctx context.Context, sid string) (*catalog.Package, error) {
	if p, ok := r.bySID[sid]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("package not found")
}
func (r *fakePackageRepo) List(ctx context.Context, filter catalog.PackageFilter) ([]*catalog.Package, error) {
	return nil, nil
}
func (r *fakePackageRepo) CountBySoftwareID(ctx context.Context, softwareID uint) (int64, error) {
	return 0, nil
}

type fakePaymentRepo struct {
	byOrderID    map[string]*payment.Record
	failCreateAs error
	created      int
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{byOrderID: map[string]*payment.Record{}}
}

func (r *fakePaymentRepo) Create(ctx context.Context, rec *payment.Record) error {
	if r.failCreateAs != nil {
		return r.failCreateAs
	}
	if _, ok := r.byOrderID[rec.GatewayOrderID()]; ok {
		return fmt.Errorf("Duplicate entry '%s' for key 'uk_gateway_order_id'", rec.GatewayOrderID())
	}
	r.byOrderID[rec.GatewayOrderID()] = rec
	r.created++
	return nil
}
func (r *fakePaymentRepo) Update(ctx context.Context, rec *payment.Record) error { return nil }
func (r *fakePaymentRepo) GetByID(ctx context.Context, id uint) (*payment.Record, error) {
	return nil, fmt.Errorf("payment not found")
}
func (r *fakePaymentRepo) GetByGatewayOrderID(ctx context.Context, orderID string) (*payment.Record, error) {
	if rec, ok := r.byOrderID[orderID]; ok {
		return rec, nil
	}
	return nil, fmt.Errorf("payment not found")
}
func (r *fakePaymentRepo) ListByClientID(ctx context.Context, clientID uint) ([]*payment.Record, error) {
	return nil, nil
}
func (r *fakePaymentRepo) ExistsByPackageID(ctx context.Context, packageID uint) (bool, error) {
	return false, nil
}

// fakeTxManager runs the function directly; the fakes have no real
// transactional state to protect.
type fakeTxManager struct{}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newSoftwareClient(t *testing.T, softwareID uint, expiresAt *time.Time) *client.Client {
	t.Helper()
	phone, err := clientvo.NewPhone("9876543210", "+91")
	require.NoError(t, err)

	swID := softwareID
	cl, err := client.NewClient(client.NewClientParams{
		Name:       "Asha Rao",
		Email:      "asha@example.com",
		Phone:      phone,
		Type:       clientvo.ClientTypeSoftware,
		SoftwareID: &swID,
	})
	require.NoError(t, err)
	cl.SetID(1)

	if expiresAt != nil {
		// Rebuild with the wanted expiry to keep the scenario deterministic.
		rebuilt, err := client.ReconstructClient(client.ReconstructClientParams{
			ID:                 cl.ID(),
			SID:                cl.SID(),
			Name:               cl.Name(),
			Email:              cl.Email(),
			Phone:              cl.Phone(),
			Type:               cl.Type(),
			SoftwareID:         cl.SoftwareID(),
			PackageID:          nil,
			ExpiresAt:          expiresAt,
			RegistrationStatus: cl.RegistrationStatus(),
			Source:             cl.Source(),
			CreatedAt:          cl.CreatedAt(),
			UpdatedAt:          cl.UpdatedAt(),
		})
		require.NoError(t, err)
		return rebuilt
	}
	return cl
}

func monthlyDuration(t *testing.T) cvo.Duration {
	t.Helper()
	d, err := cvo.NewDuration(1, cvo.UnitMonths)
	require.NoError(t, err)
	return d
}

func newMonthlyPackage(t *testing.T, softwareID uint) *catalog.Package {
	t.Helper()
	pkg, err := catalog.NewSoftwarePackage("Monthly", softwareID, monthlyDuration(t), cvo.NewMoneyFromRupees(500, "INR"), "")
	require.NoError(t, err)
	pkg.SetID(10)
	return pkg
}

func newRenewalUC(clientRepo *fakeClientRepo, pkgRepo *fakePackageRepo, payRepo *fakePaymentRepo) *ProcessRenewalUseCase {
	return NewProcessRenewalUseCase(
		clientRepo,
		pkgRepo,
		payRepo,
		&fakeGateway{secret: testKeySecret},
		&fakeTxManager{},
		logger.NewLogger(),
	)
}

func TestProcessRenewalUseCase_Execute_ExtendsFromCurrentExpiry(t *testing.T) {
	expiry := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	cl := newSoftwareClient(t, 5, &expiry)
	pkg := newMonthlyPackage(t, 5)

	clientRepo := newFakeClientRepo(cl)
	payRepo := newFakePaymentRepo()
	uc := newRenewalUC(clientRepo, newFakePackageRepo(pkg), payRepo)

	result, err := uc.Execute(context.Background(), ProcessRenewalCommand{
		ClientSID:        cl.SID(),
		PackageSID:       pkg.SID(),
		GatewayOrderID:   "order_abc",
		GatewayPaymentID: "pay_xyz",
		GatewaySignature: signOrder("order_abc", "pay_xyz"),
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.AlreadyDone)
	assert.Equal(t, 1, payRepo.created)
	assert.Equal(t, 1, clientRepo.updated)

	// The client renewed before expiry, so the month is added on top of the
	// remaining term, not on top of now.
	assert.Equal(t, expiry.AddDate(0, 1, 0), result.NewExpiryDate)
	require.NotNil(t, cl.ExpiresAt())
	assert.Equal(t, result.NewExpiryDate, *cl.ExpiresAt())
	assert.False(t, cl.AdminSuspended())

	rec := payRepo.byOrderID["order_abc"]
	require.NotNil(t, rec)
	assert.Equal(t, pvo.PaymentStatusVerified, rec.Status())
	assert.Equal(t, pkg.Price().AmountInPaise(), rec.Amount().AmountInPaise())
}

func TestProcessRenewalUseCase_Execute_ExpiredClientExtendsFromNow(t *testing.T) {
	expiry := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	cl := newSoftwareClient(t, 5, &expiry)
	pkg := newMonthlyPackage(t, 5)

	uc := newRenewalUC(newFakeClientRepo(cl), newFakePackageRepo(pkg), newFakePaymentRepo())

	before := time.Now().UTC()
	result, err := uc.Execute(context.Background(), ProcessRenewalCommand{
		ClientSID:        cl.SID(),
		PackageSID:       pkg.SID(),
		GatewayOrderID:   "order_late",
		GatewayPaymentID: "pay_late",
		GatewaySignature: signOrder("order_late", "pay_late"),
	})

	require.NoError(t, err)
	// The lapsed term contributes nothing: the new expiry is about one month
	// from now, not from the old expiry.
	assert.True(t, result.NewExpiryDate.After(before.AddDate(0, 1, -1)))
	assert.True(t, result.NewExpiryDate.Before(before.AddDate(0, 1, 1)))
}

func TestProcessRenewalUseCase_Execute_TamperedSignature(t *testing.T) {
	expiry := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	cl := newSoftwareClient(t, 5, &expiry)
	pkg := newMonthlyPackage(t, 5)

	clientRepo := newFakeClientRepo(cl)
	payRepo := newFakePaymentRepo()
	uc := newRenewalUC(clientRepo, newFakePackageRepo(pkg), payRepo)

	result, err := uc.Execute(context.Background(), ProcessRenewalCommand{
		ClientSID:        cl.SID(),
		PackageSID:       pkg.SID(),
		GatewayOrderID:   "order_abc",
		GatewayPaymentID: "pay_xyz",
		GatewaySignature: signOrder("order_abc", "pay_DIFFERENT"),
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsSignatureMismatchError(err))
	assert.Equal(t, 0, payRepo.created)
	assert.Equal(t, 0, clientRepo.updated)
	assert.Equal(t, expiry, *cl.ExpiresAt())
}

func TestProcessRenewalUseCase_Execute_ReplayIsIdempotent(t *testing.T) {
	expiry := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	cl := newSoftwareClient(t, 5, &expiry)
	pkg := newMonthlyPackage(t, 5)

	clientRepo := newFakeClientRepo(cl)
	payRepo := newFakePaymentRepo()
	uc := newRenewalUC(clientRepo, newFakePackageRepo(pkg), payRepo)

	cmd := ProcessRenewalCommand{
		ClientSID:        cl.SID(),
		PackageSID:       pkg.SID(),
		GatewayOrderID:   "order_once",
		GatewayPaymentID: "pay_once",
		GatewaySignature: signOrder("order_once", "pay_once"),
	}

	first, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	assert.True(t, second.AlreadyDone)
	assert.Equal(t, first.PaymentSID, second.PaymentSID)
	assert.Equal(t, first.NewExpiryDate, second.NewExpiryDate)

	// One ledger row, one extension.
	assert.Equal(t, 1, payRepo.created)
	assert.Equal(t, 1, clientRepo.updated)
	assert.Equal(t, first.NewExpiryDate, *cl.ExpiresAt())
}

func TestProcessRenewalUseCase_Execute_PackageMismatch(t *testing.T) {
	expiry := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	cl := newSoftwareClient(t, 5, &expiry)
	otherPkg := newMonthlyPackage(t, 99)

	payRepo := newFakePaymentRepo()
	uc := newRenewalUC(newFakeClientRepo(cl), newFakePackageRepo(otherPkg), payRepo)

	result, err := uc.Execute(context.Background(), ProcessRenewalCommand{
		ClientSID:        cl.SID(),
		PackageSID:       otherPkg.SID(),
		GatewayOrderID:   "order_abc",
		GatewayPaymentID: "pay_xyz",
		GatewaySignature: signOrder("order_abc", "pay_xyz"),
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsPackageMismatchError(err))
	assert.Equal(t, 0, payRepo.created)
}

func TestProcessRenewalUseCase_Execute_RenewalLiftsSuspension(t *testing.T) {
	expiry := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	cl := newSoftwareClient(t, 5, &expiry)
	cl.ToggleSuspended()
	require.True(t, cl.AdminSuspended())

	pkg := newMonthlyPackage(t, 5)
	uc := newRenewalUC(newFakeClientRepo(cl), newFakePackageRepo(pkg), newFakePaymentRepo())

	_, err := uc.Execute(context.Background(), ProcessRenewalCommand{
		ClientSID:        cl.SID(),
		PackageSID:       pkg.SID(),
		GatewayOrderID:   "order_abc",
		GatewayPaymentID: "pay_xyz",
		GatewaySignature: signOrder("order_abc", "pay_xyz"),
	})

	require.NoError(t, err)
	assert.False(t, cl.AdminSuspended())
}

func TestProcessRenewalUseCase_Execute_InactivePackageRejected(t *testing.T) {
	expiry := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	cl := newSoftwareClient(t, 5, &expiry)
	pkg := newMonthlyPackage(t, 5)
	pkg.ToggleActive()

	uc := newRenewalUC(newFakeClientRepo(cl), newFakePackageRepo(pkg), newFakePaymentRepo())

	_, err := uc.Execute(context.Background(), ProcessRenewalCommand{
		ClientSID:        cl.SID(),
		PackageSID:       pkg.SID(),
		GatewayOrderID:   "order_abc",
		GatewayPaymentID: "pay_xyz",
		GatewaySignature: signOrder("order_abc", "pay_xyz"),
	})

	require.Error(t, err)
	assert.True(t, errors.IsPackageMismatchError(err))
}

func TestProcessRenewalUseCase_Execute_IncompleteDetails(t *testing.T) {
	uc := newRenewalUC(newFakeClientRepo(), newFakePackageRepo(), newFakePaymentRepo())

	_, err := uc.Execute(context.Background(), ProcessRenewalCommand{
		ClientSID:      "cl_x",
		PackageSID:     "pkg_x",
		GatewayOrderID: "order_abc",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
