package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendra-inc/vendra/internal/application/client/bridge"
	"github.com/vendra-inc/vendra/internal/application/client/dto"
	"github.com/vendra-inc/vendra/internal/domain/catalog"
	cvo "github.com/vendra-inc/vendra/internal/domain/catalog/valueobjects"
	"github.com/vendra-inc/vendra/internal/domain/client"
	clientvo "github.com/vendra-inc/vendra/internal/domain/client/valueobjects"
	apperrors "github.com/vendra-inc/vendra/internal/shared/errors"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

type fakeClientStore struct {
	bySID   map[string]*client.Client
	created []*client.Client
	deleted []uint
}

func newFakeClientStore(clients ...*client.Client) *fakeClientStore {
	s := &fakeClientStore{bySID: map[string]*client.Client{}}
	for _, c := range clients {
		s.bySID[c.SID()] = c
	}
	return s
}

func (s *fakeClientStore) Create(ctx context.Context, c *client.Client) error {
	s.created = append(s.created, c)
	return nil
}
func (s *fakeClientStore) Update(ctx context.Context, c *client.Client) error { return nil }
func (s *fakeClientStore) Delete(ctx context.Context, id uint) error {
	s.deleted = append(s.deleted, id)
	return nil
}
func (s *fakeClientStore) GetByID(ctx context.Context, id uint) (*client.Client, error) {
	return nil, fmt.Errorf("client not found")
}
func (s *fakeClientStore) GetBySID(ctx context.Context, sid string) (*client.Client, error) {
	if c, ok := s.bySID[sid]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("client not found")
}
func (s *fakeClientStore) GetByEmail(ctx context.Context, email string) (*client.Client, error) {
	return nil, fmt.Errorf("client not found")
}
func (s *fakeClientStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}
func (s *fakeClientStore) List(ctx context.Context, filter client.Filter) ([]*client.Client, int64, error) {
	return nil, 0, nil
}
func (s *fakeClientStore) CountBySoftwareID(ctx context.Context, softwareID uint) (int64, error) {
	return 0, nil
}

type fakeSoftwareStore struct {
	bySID map[string]*catalog.Software
	byID  map[uint]*catalog.Software
}

func newFakeSoftwareStore(softwares ...*catalog.Software) *fakeSoftwareStore {
	s := &fakeSoftwareStore{bySID: map[string]*catalog.Software{}, byID: map[uint]*catalog.Software{}}
	for _, sw := range softwares {
		s.bySID[sw.SID()] = sw
		s.byID[sw.ID()] = sw
	}
	return s
}

func (s *fakeSoftwareStore) Create(ctx context.Context, sw *catalog.Software) error { return nil }
func (s *fakeSoftwareStore) Update(ctx context.Context, sw *catalog.Software) error { return nil }
func (s *fakeSoftwareStore) Delete(ctx context.Context, id uint) error              { return nil }
func (s *fakeSoftwareStore) GetByID(ctx context.Context, id uint) (*catalog.Software, error) {
	if sw, ok := s.byID[id]; ok {
		return sw, nil
	}
	return nil, fmt.Errorf("software not found")
}
func (s *fakeSoftwareStore) GetBySID(ctx context.Context, sid string) (*catalog.Software, error) {
	if sw, ok := s.bySID[sid]; ok {
		return sw, nil
	}
	return nil, fmt.Errorf("software not found")
}
func (s *fakeSoftwareStore) List(ctx context.Context) ([]*catalog.Software, error) {
	return nil, nil
}

type fakeServiceStore struct {
	bySID map[string]*catalog.Service
}

func newFakeServiceStore(services ...*catalog.Service) *fakeServiceStore {
	s := &fakeServiceStore{bySID: map[string]*catalog.Service{}}
	for _, svc := range services {
		s.bySID[svc.SID()] = svc
	}
	return s
}

func (s *fakeServiceStore) Create(ctx context.Context, svc *catalog.Service) error { return nil }
func (s *fakeServiceStore) Update(ctx context.Context, svc *catalog.Service) error { return nil }
func (s *fakeServiceStore) Delete(ctx context.Context, id uint) error              { return nil }
func (s *fakeServiceStore) GetByID(ctx context.Context, id uint) (*catalog.Service, error) {
	return nil, fmt.Errorf("service not found")
}
func (s *fakeServiceStore) GetBySID(ctx context.Context, sid string) (*catalog.Service, error) {
	if svc, ok := s.bySID[sid]; ok {
		return svc, nil
	}
	return nil, fmt.Errorf("service not found")
}
func (s *fakeServiceStore) GetByIDs(ctx context.Context, ids []uint) ([]*catalog.Service, error) {
	return nil, nil
}
func (s *fakeServiceStore) List(ctx context.Context) ([]*catalog.Service, error) {
	return nil, nil
}

type fakePackageStore struct {
	bySID map[string]*catalog.Package
}

func newFakePackageStore(pkgs ...*catalog.Package) *fakePackageStore {
	s := &fakePackageStore{bySID: map[string]*catalog.Package{}}
	for _, p := range pkgs {
		s.bySID[p.SID()] = p
	}
	return s
}

func (s *fakePackageStore) Create(ctx context.Context, pkg *catalog.Package) error { return nil }
func (s *fakePackageStore) Update(ctx context.Context, pkg *catalog.Package) error { return nil }
func (s *fakePackageStore) Delete(ctx context.Context, id uint) error              { return nil }
func (s *fakePackageStore) GetByID(ctx context.Context, id uint) (*catalog.Package, error) {
	for _, p := range s.bySID {
		if p.ID() == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("package not found")
}
func (s *fakePackageStore) GetBySID(ctx context.Context, sid string) (*catalog.Package, error) {
	if p, ok := s.bySID[sid]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("package not found")
}
func (s *fakePackageStore) List(ctx context.Context, filter catalog.PackageFilter) ([]*catalog.Package, error) {
	return nil, nil
}
func (s *fakePackageStore) CountBySoftwareID(ctx context.Context, softwareID uint) (int64, error) {
	return 0, nil
}

type fakeProvisioner struct {
	registerErr   error
	deleteErr     error
	registerCalls int
	deleteCalls   int
}

func (p *fakeProvisioner) Register(ctx context.Context, endpoints catalog.BridgeEndpoints, req bridge.RegisterRequest) (*bridge.RegisterResult, error) {
	p.registerCalls++
	if p.registerErr != nil {
		return nil, p.registerErr
	}
	return &bridge.RegisterResult{ExternalID: "ext-1", Status: clientvo.RegistrationSuccess}, nil
}
func (p *fakeProvisioner) Delete(ctx context.Context, endpoints catalog.BridgeEndpoints, externalID string) error {
	p.deleteCalls++
	return p.deleteErr
}
func (p *fakeProvisioner) UpdateStatus(ctx context.Context, endpoints catalog.BridgeEndpoints, externalID string, active bool) error {
	return nil
}
func (p *fakeProvisioner) ListAccounts(ctx context.Context, endpoints catalog.BridgeEndpoints) ([]bridge.Account, error) {
	return nil, nil
}

func newTestSoftware(t *testing.T, id uint, name string) *catalog.Software {
	t.Helper()
	sw, err := catalog.NewSoftware(name, "", catalog.BridgeEndpoints{
		RegisterAPILink: "https://backend.example.com/register",
	})
	require.NoError(t, err)
	sw.SetID(id)
	return sw
}

func newTestPackage(t *testing.T, id, softwareID uint) *catalog.Package {
	t.Helper()
	d, err := cvo.NewDuration(1, cvo.UnitMonths)
	require.NoError(t, err)
	pkg, err := catalog.NewSoftwarePackage("Monthly", softwareID, d, cvo.NewMoneyFromRupees(500, "INR"), "")
	require.NoError(t, err)
	pkg.SetID(id)
	return pkg
}

func newCreateUC(
	clients *fakeClientStore,
	softwares *fakeSoftwareStore,
	services *fakeServiceStore,
	packages *fakePackageStore,
	prov *fakeProvisioner,
) *CreateClientUseCase {
	return NewCreateClientUseCase(clients, softwares, services, packages, prov, logger.NewLogger())
}

func TestCreateClientUseCase_Execute_RejectsInactivePackage(t *testing.T) {
	sw := newTestSoftware(t, 7, "LedgerPro")
	pkg := newTestPackage(t, 10, 99)
	pkg.ToggleActive()
	require.False(t, pkg.IsActive())

	clients := newFakeClientStore()
	uc := newCreateUC(clients, newFakeSoftwareStore(sw), newFakeServiceStore(), newFakePackageStore(pkg), &fakeProvisioner{})

	_, err := uc.Execute(context.Background(), dto.CreateClientRequest{
		Name:       "Asha Rao",
		Email:      "asha@example.com",
		Phone:      "9876543210",
		Type:       "software",
		SoftwareID: sw.SID(),
		PackageID:  pkg.SID(),
	}, "admin")

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
	assert.Empty(t, clients.created)
}

func TestCreateClientUseCase_Execute_RejectsPackageScopedToOtherSoftware(t *testing.T) {
	sw := newTestSoftware(t, 7, "LedgerPro")
	pkg := newTestPackage(t, 10, 99)

	clients := newFakeClientStore()
	uc := newCreateUC(clients, newFakeSoftwareStore(sw), newFakeServiceStore(), newFakePackageStore(pkg), &fakeProvisioner{})

	_, err := uc.Execute(context.Background(), dto.CreateClientRequest{
		Name:       "Asha Rao",
		Email:      "asha@example.com",
		Phone:      "9876543210",
		Type:       "software",
		SoftwareID: sw.SID(),
		PackageID:  pkg.SID(),
	}, "admin")

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Empty(t, clients.created)
}

func TestCreateClientUseCase_Execute_StartsTermForApplicablePackage(t *testing.T) {
	sw := newTestSoftware(t, 7, "LedgerPro")
	pkg := newTestPackage(t, 10, 7)

	clients := newFakeClientStore()
	uc := newCreateUC(clients, newFakeSoftwareStore(sw), newFakeServiceStore(), newFakePackageStore(pkg), &fakeProvisioner{})

	resp, err := uc.Execute(context.Background(), dto.CreateClientRequest{
		Name:       "Asha Rao",
		Email:      "asha@example.com",
		Phone:      "9876543210",
		Type:       "software",
		SoftwareID: sw.SID(),
		PackageID:  pkg.SID(),
	}, "admin")

	require.NoError(t, err)
	require.Len(t, clients.created, 1)
	created := clients.created[0]
	require.NotNil(t, created.PackageID())
	assert.Equal(t, pkg.ID(), *created.PackageID())
	require.NotNil(t, created.ExpiresAt())
	assert.Equal(t, pkg.SID(), resp.PackageID)
}

func TestCreateClientUseCase_Execute_FailedRegistrationStillCreates(t *testing.T) {
	sw := newTestSoftware(t, 7, "LedgerPro")
	prov := &fakeProvisioner{registerErr: fmt.Errorf("backend unreachable")}

	clients := newFakeClientStore()
	uc := newCreateUC(clients, newFakeSoftwareStore(sw), newFakeServiceStore(), newFakePackageStore(), prov)

	resp, err := uc.Execute(context.Background(), dto.CreateClientRequest{
		Name:       "Asha Rao",
		Email:      "asha@example.com",
		Phone:      "9876543210",
		Type:       "software",
		SoftwareID: sw.SID(),
	}, "admin")

	require.NoError(t, err)
	assert.Equal(t, 1, prov.registerCalls)
	require.Len(t, clients.created, 1)
	assert.Equal(t, clientvo.RegistrationFailed, clients.created[0].RegistrationStatus())
	assert.Nil(t, clients.created[0].ExternalID())
	assert.Equal(t, string(clientvo.RegistrationFailed), resp.RegistrationStatus)
}

func TestCreateClientUseCase_Execute_RejectsInactiveService(t *testing.T) {
	svc, err := catalog.NewService("Onsite Training", cvo.NewMoneyFromRupees(2000, "INR"), "")
	require.NoError(t, err)
	svc.SetID(3)
	svc.ToggleActive()
	require.False(t, svc.IsActive())

	clients := newFakeClientStore()
	uc := newCreateUC(clients, newFakeSoftwareStore(), newFakeServiceStore(svc), newFakePackageStore(), &fakeProvisioner{})

	_, err = uc.Execute(context.Background(), dto.CreateClientRequest{
		Name:       "Asha Rao",
		Email:      "asha@example.com",
		Phone:      "9876543210",
		Type:       "service",
		ServiceIDs: []string{svc.SID()},
	}, "admin")

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
	assert.Empty(t, clients.created)
}
