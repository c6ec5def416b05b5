package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cvo "github.com/vendra-inc/vendra/internal/domain/catalog/valueobjects"
	vo "github.com/vendra-inc/vendra/internal/domain/client/valueobjects"
)

func testPhone(t *testing.T) vo.Phone {
	t.Helper()
	p, err := vo.NewPhone("9876543210", "+91")
	require.NoError(t, err)
	return p
}

func newSoftwareClient(t *testing.T) *Client {
	t.Helper()
	swID := uint(7)
	c, err := NewClient(NewClientParams{
		Name:       "Acme Corp",
		Email:      "billing@acme.example",
		Phone:      testPhone(t),
		Type:       vo.ClientTypeSoftware,
		SoftwareID: &swID,
		CreatedBy:  "admin",
	})
	require.NoError(t, err)
	return c
}

func months(t *testing.T, n int) cvo.Duration {
	t.Helper()
	d, err := cvo.NewDuration(n, cvo.UnitMonths)
	require.NoError(t, err)
	return d
}

func TestNewClient(t *testing.T) {
	c := newSoftwareClient(t)

	assert.Contains(t, c.SID(), "cl_")
	assert.Equal(t, "billing@acme.example", c.Email())
	assert.Equal(t, vo.RegistrationPending, c.RegistrationStatus())
	assert.Equal(t, vo.SourceInternal, c.Source())
	assert.Nil(t, c.ExpiresAt())
	assert.False(t, c.IsActive(time.Now().UTC()), "no subscription term yet")
}

func TestNewClient_NormalizesEmail(t *testing.T) {
	swID := uint(7)
	c, err := NewClient(NewClientParams{
		Name:       "Acme",
		Email:      "  Billing@Acme.Example ",
		Phone:      testPhone(t),
		Type:       vo.ClientTypeSoftware,
		SoftwareID: &swID,
	})
	require.NoError(t, err)
	assert.Equal(t, "billing@acme.example", c.Email())
}

func TestNewClient_TypeInvariants(t *testing.T) {
	swID := uint(7)

	_, err := NewClient(NewClientParams{
		Name:  "Acme",
		Email: "a@b.example",
		Phone: testPhone(t),
		Type:  vo.ClientTypeSoftware,
	})
	assert.Error(t, err, "software client needs a software")

	_, err = NewClient(NewClientParams{
		Name:       "Acme",
		Email:      "a@b.example",
		Phone:      testPhone(t),
		Type:       vo.ClientTypeSoftware,
		SoftwareID: &swID,
		ServiceIDs: []uint{1},
	})
	assert.Error(t, err, "software client cannot hold services")

	_, err = NewClient(NewClientParams{
		Name:       "Acme",
		Email:      "a@b.example",
		Phone:      testPhone(t),
		Type:       vo.ClientTypeService,
		SoftwareID: &swID,
	})
	assert.Error(t, err, "service client cannot hold a software")
}

func TestClient_StartInitialTerm(t *testing.T) {
	c := newSoftwareClient(t)
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, c.StartInitialTerm(3, months(t, 1), now))

	require.NotNil(t, c.ExpiresAt())
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), *c.ExpiresAt())
	assert.Equal(t, uint(3), *c.PackageID())
	assert.True(t, c.IsActive(now))

	assert.Error(t, c.StartInitialTerm(4, months(t, 1), now), "cannot start a second initial term")
}

func TestClient_ExtendSubscription_Expired(t *testing.T) {
	c := newSoftwareClient(t)
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, c.StartInitialTerm(3, months(t, 1), now))

	// Renew well after expiry: the new term starts from the renewal instant.
	later := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	expiry := c.ExtendSubscription(3, months(t, 1), later)

	assert.Equal(t, time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC), expiry)
	assert.True(t, c.IsActive(later))
}

func TestClient_ExtendSubscription_EarlyRenewalKeepsRemainder(t *testing.T) {
	c := newSoftwareClient(t)
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, c.StartInitialTerm(3, months(t, 1), now))

	// Renew mid-term: the new term stacks on the current expiry.
	early := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	expiry := c.ExtendSubscription(3, months(t, 1), early)

	assert.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), expiry)
}

func TestClient_ExtendSubscription_ThirtyDayTerm(t *testing.T) {
	days := func(n int) cvo.Duration {
		d, err := cvo.NewDuration(n, cvo.UnitDays)
		require.NoError(t, err)
		return d
	}

	tests := []struct {
		name       string
		renewedAt  time.Time
		wantExpiry time.Time
	}{
		{
			name:       "before expiry stacks on the old expiry",
			renewedAt:  time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			wantExpiry: time.Date(2024, 2, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "after expiry counts from the renewal instant",
			renewedAt:  time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			wantExpiry: time.Date(2024, 2, 19, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newSoftwareClient(t)
			start := time.Date(2023, 12, 11, 0, 0, 0, 0, time.UTC)
			require.NoError(t, c.StartInitialTerm(3, days(30), start))
			require.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), *c.ExpiresAt())

			expiry := c.ExtendSubscription(3, days(30), tt.renewedAt)
			assert.Equal(t, tt.wantExpiry, expiry)
		})
	}
}

func TestClient_ExtendSubscription_LiftsSuspension(t *testing.T) {
	c := newSoftwareClient(t)
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, c.StartInitialTerm(3, months(t, 1), now))
	c.ToggleSuspended()
	assert.False(t, c.IsActive(now))

	c.ExtendSubscription(3, months(t, 1), now)
	assert.False(t, c.AdminSuspended())
	assert.True(t, c.IsActive(now))
}

func TestClient_ExtendSubscription_SwitchesPackage(t *testing.T) {
	c := newSoftwareClient(t)
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, c.StartInitialTerm(3, months(t, 1), now))
	c.ExtendSubscription(9, months(t, 12), now.Add(time.Hour))

	assert.Equal(t, uint(9), *c.PackageID())
}

func TestClient_IsActive(t *testing.T) {
	c := newSoftwareClient(t)
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, c.StartInitialTerm(3, months(t, 1), now))

	assert.True(t, c.IsActive(now))
	assert.False(t, c.IsActive(now.AddDate(0, 2, 0)))
	assert.True(t, c.HasExpired(now.AddDate(0, 2, 0)))
	assert.False(t, c.HasExpired(now))

	c.ToggleSuspended()
	assert.False(t, c.IsActive(now), "suspension overrides a valid term")
	assert.False(t, c.HasExpired(now), "suspension is not expiry")
}

func TestClient_AssignServices(t *testing.T) {
	svc, err := NewClient(NewClientParams{
		Name:       "Beta LLC",
		Email:      "ops@beta.example",
		Phone:      testPhone(t),
		Type:       vo.ClientTypeService,
		ServiceIDs: []uint{1},
	})
	require.NoError(t, err)

	require.NoError(t, svc.AssignServices([]uint{2, 3}))
	assert.Equal(t, []uint{2, 3}, svc.ServiceIDs())

	assert.Error(t, svc.AssignServices(nil))

	sw := newSoftwareClient(t)
	assert.Error(t, sw.AssignServices([]uint{1}), "software client cannot hold services")
}

func TestClient_MarkRegistration(t *testing.T) {
	c := newSoftwareClient(t)

	extID := "ext-42"
	c.MarkRegistration(vo.RegistrationSuccess, &extID)

	assert.Equal(t, vo.RegistrationSuccess, c.RegistrationStatus())
	require.NotNil(t, c.ExternalID())
	assert.Equal(t, "ext-42", *c.ExternalID())
	assert.Equal(t, vo.SourceExternal, c.Source())

	c2 := newSoftwareClient(t)
	c2.MarkRegistration(vo.RegistrationFailed, nil)
	assert.Equal(t, vo.RegistrationFailed, c2.RegistrationStatus())
	assert.Nil(t, c2.ExternalID())
	assert.Equal(t, vo.SourceInternal, c2.Source())
}
