package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vendra-inc/vendra/internal/domain/catalog"
	cvo "github.com/vendra-inc/vendra/internal/domain/catalog/valueobjects"
	"github.com/vendra-inc/vendra/internal/domain/client"
	clvo "github.com/vendra-inc/vendra/internal/domain/client/valueobjects"
	"github.com/vendra-inc/vendra/internal/domain/hr"
	"github.com/vendra-inc/vendra/internal/domain/payment"
	"github.com/vendra-inc/vendra/internal/infrastructure/migration"
	apperrors "github.com/vendra-inc/vendra/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(migration.AutoMigrateModels()...)
	require.NoError(t, err)

	return db
}

func createTestSoftware(t *testing.T, db *gorm.DB, name string) *catalog.Software {
	sw, err := catalog.NewSoftware(name, "test software", catalog.BridgeEndpoints{
		RegisterAPILink: "https://example.com/register",
		DeleteAPILink:   "https://example.com/users/:id",
	})
	require.NoError(t, err)

	repo := NewSoftwareRepository(db)
	require.NoError(t, repo.Create(context.Background(), sw))
	return sw
}

func createTestClient(t *testing.T, db *gorm.DB, email string, softwareID uint) *client.Client {
	phone, err := clvo.NewPhone("9876543210", "+91")
	require.NoError(t, err)

	cl, err := client.NewClient(client.NewClientParams{
		Name:       "Test Client",
		Email:      email,
		Phone:      phone,
		Type:       clvo.ClientTypeSoftware,
		SoftwareID: &softwareID,
		CreatedBy:  "admin",
	})
	require.NoError(t, err)

	repo := NewClientRepository(db)
	require.NoError(t, repo.Create(context.Background(), cl))
	return cl
}

func TestSoftwareRepository_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSoftwareRepository(db)
	ctx := context.Background()

	sw := createTestSoftware(t, db, "Billing Suite")
	assert.NotZero(t, sw.ID())

	found, err := repo.GetBySID(ctx, sw.SID())
	require.NoError(t, err)
	assert.Equal(t, "Billing Suite", found.Name())
	assert.Equal(t, "https://example.com/users/:id", found.Endpoints().DeleteAPILink)

	err = found.UpdateDetails("Billing Suite v2", "updated", "**notes**", "https://app.example.com", found.Endpoints())
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, found))

	reloaded, err := repo.GetByID(ctx, sw.ID())
	require.NoError(t, err)
	assert.Equal(t, "Billing Suite v2", reloaded.Name())
	assert.Equal(t, "**notes**", reloaded.Notes())

	require.NoError(t, repo.Delete(ctx, sw.ID()))
	_, err = repo.GetByID(ctx, sw.ID())
	assert.Error(t, err)
}

func TestPackageRepository_ServiceScopeRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPackageRepository(db)
	ctx := context.Background()

	duration, err := cvo.NewDuration(3, cvo.UnitMonths)
	require.NoError(t, err)

	pkg, err := catalog.NewServicePackage("Quarterly Bundle", []uint{4, 7}, duration, cvo.NewMoneyFromRupees(1500, "INR"), "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, pkg))

	found, err := repo.GetBySID(ctx, pkg.SID())
	require.NoError(t, err)
	assert.Equal(t, []uint{4, 7}, found.ServiceIDs())
	assert.Equal(t, 3, found.Duration().Value())
	assert.Equal(t, cvo.UnitMonths, found.Duration().Unit())
	assert.Equal(t, int64(150000), found.Price().AmountInPaise())
}

func TestPackageRepository_ListFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPackageRepository(db)
	ctx := context.Background()

	sw := createTestSoftware(t, db, "CRM")
	duration, err := cvo.NewDuration(1, cvo.UnitMonths)
	require.NoError(t, err)

	swPkg, err := catalog.NewSoftwarePackage("CRM Monthly", sw.ID(), duration, cvo.NewMoneyFromRupees(500, "INR"), "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, swPkg))

	svcPkg, err := catalog.NewServicePackage("Support Monthly", []uint{1}, duration, cvo.NewMoneyFromRupees(300, "INR"), "")
	require.NoError(t, err)
	svcPkg.ToggleActive()
	require.NoError(t, repo.Create(ctx, svcPkg))

	all, err := repo.List(ctx, catalog.PackageFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	softwareType := cvo.PackageTypeSoftware
	bySoftware, err := repo.List(ctx, catalog.PackageFilter{Type: &softwareType})
	require.NoError(t, err)
	require.Len(t, bySoftware, 1)
	assert.Equal(t, swPkg.SID(), bySoftware[0].SID())

	active, err := repo.List(ctx, catalog.PackageFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, swPkg.SID(), active[0].SID())
}

func TestClientRepository_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	sw := createTestSoftware(t, db, "POS")
	cl := createTestClient(t, db, "shop@example.com", sw.ID())

	found, err := repo.GetByEmail(ctx, "shop@example.com")
	require.NoError(t, err)
	assert.Equal(t, cl.SID(), found.SID())
	assert.Equal(t, "+919876543210", found.Phone().String())
	assert.Equal(t, clvo.RegistrationPending, found.RegistrationStatus())
	assert.Nil(t, found.ExpiresAt())

	duration, err := cvo.NewDuration(1, cvo.UnitMonths)
	require.NoError(t, err)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	newExpiry := found.ExtendSubscription(9, duration, now)
	require.NoError(t, repo.Update(ctx, found))

	reloaded, err := repo.GetBySID(ctx, cl.SID())
	require.NoError(t, err)
	require.NotNil(t, reloaded.ExpiresAt())
	assert.True(t, newExpiry.Equal(*reloaded.ExpiresAt()))
	require.NotNil(t, reloaded.PackageID())
	assert.Equal(t, uint(9), *reloaded.PackageID())

	exists, err := repo.ExistsByEmail(ctx, "shop@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "other@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestClientRepository_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	sw := createTestSoftware(t, db, "POS")
	createTestClient(t, db, "dup@example.com", sw.ID())

	phone, err := clvo.NewPhone("9876500000", "+91")
	require.NoError(t, err)
	second, err := client.NewClient(client.NewClientParams{
		Name:       "Second",
		Email:      "dup@example.com",
		Phone:      phone,
		Type:       clvo.ClientTypeSoftware,
		SoftwareID: ptr(sw.ID()),
	})
	require.NoError(t, err)

	err = repo.Create(ctx, second)
	require.Error(t, err)
	assert.True(t, apperrors.IsDuplicateError(err))
}

func TestClientRepository_ListPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	sw := createTestSoftware(t, db, "POS")
	createTestClient(t, db, "a@example.com", sw.ID())
	createTestClient(t, db, "b@example.com", sw.ID())
	createTestClient(t, db, "c@example.com", sw.ID())

	page, total, err := repo.List(ctx, client.Filter{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, page, 2)

	softwareType := clvo.ClientTypeSoftware.String()
	filtered, total, err := repo.List(ctx, client.Filter{Type: &softwareType, Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, filtered, 1)

	count, err := repo.CountBySoftwareID(ctx, sw.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestPaymentRepository_GatewayOrderIDUnique(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	record, err := payment.NewRecord(1, 2, cvo.NewMoneyFromRupees(500, "INR"), "order_abc", "pay_123", "sig")
	require.NoError(t, err)
	require.NoError(t, record.MarkVerified())
	require.NoError(t, repo.Create(ctx, record))

	duplicate, err := payment.NewRecord(1, 2, cvo.NewMoneyFromRupees(500, "INR"), "order_abc", "pay_456", "sig2")
	require.NoError(t, err)
	err = repo.Create(ctx, duplicate)
	require.Error(t, err)
	assert.True(t, apperrors.IsDuplicateError(err))
}

func TestPaymentRepository_MetadataRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	record, err := payment.NewRecord(1, 2, cvo.NewMoneyFromRupees(500, "INR"), "order_meta", "pay_meta", "sig")
	require.NoError(t, err)
	require.NoError(t, record.MarkVerified())
	record.SetMetadata("new_expiry", "2026-04-01T10:00:00Z")
	require.NoError(t, repo.Create(ctx, record))

	found, err := repo.GetByGatewayOrderID(ctx, "order_meta")
	require.NoError(t, err)
	assert.Equal(t, "2026-04-01T10:00:00Z", found.Metadata()["new_expiry"])
	assert.True(t, found.Status().IsVerified())

	history, err := repo.ListByClientID(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	exists, err := repo.ExistsByPackageID(ctx, 2)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestStaffRepository_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	deptRepo := NewDepartmentRepository(db)
	dept, err := hr.NewDepartment("Engineering")
	require.NoError(t, err)
	require.NoError(t, deptRepo.Create(ctx, dept))

	posRepo := NewPositionRepository(db)
	pos, err := hr.NewPosition("Backend Developer", dept.ID())
	require.NoError(t, err)
	require.NoError(t, posRepo.Create(ctx, pos))

	staffRepo := NewStaffRepository(db)
	staff, err := hr.NewStaff("Dev One", "dev@example.com", "$2a$04$hash", ptr(dept.ID()), ptr(pos.ID()))
	require.NoError(t, err)
	require.NoError(t, staffRepo.Create(ctx, staff))

	found, err := staffRepo.GetByEmail(ctx, "dev@example.com")
	require.NoError(t, err)
	assert.Equal(t, staff.SID(), found.SID())
	assert.True(t, found.IsActive())

	list, total, err := staffRepo.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, list, 1)

	count, err := staffRepo.CountByDepartmentID(ctx, dept.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = posRepo.CountByDepartmentID(ctx, dept.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	byDept, err := posRepo.ListByDepartmentID(ctx, dept.ID())
	require.NoError(t, err)
	assert.Len(t, byDept, 1)
}

func TestDepartmentRepository_ExistsByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDepartmentRepository(db)
	ctx := context.Background()

	dept, err := hr.NewDepartment("Sales")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, dept))

	exists, err := repo.ExistsByName(ctx, "Sales")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(ctx, "Marketing")
	require.NoError(t, err)
	assert.False(t, exists)
}

func ptr[T any](v T) *T { return &v }
