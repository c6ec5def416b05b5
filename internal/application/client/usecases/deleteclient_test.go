package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendra-inc/vendra/internal/domain/client"
	clientvo "github.com/vendra-inc/vendra/internal/domain/client/valueobjects"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

func newExternalClient(t *testing.T, softwareID uint, externalID string) *client.Client {
	t.Helper()
	phone, err := clientvo.NewPhone("9876543210", "+91")
	require.NoError(t, err)

	swID := softwareID
	extID := externalID
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	cl, err := client.ReconstructClient(client.ReconstructClientParams{
		ID:                 1,
		SID:                "cl_external1",
		Name:               "Ravi Menon",
		Email:              "ravi@example.com",
		Phone:              phone,
		Type:               clientvo.ClientTypeSoftware,
		SoftwareID:         &swID,
		ExternalID:         &extID,
		RegistrationStatus: clientvo.RegistrationSuccess,
		Source:             clientvo.SourceExternal,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
	require.NoError(t, err)
	return cl
}

func TestDeleteClientUseCase_Execute_BridgeFailureKeepsLocalRow(t *testing.T) {
	sw := newTestSoftware(t, 7, "LedgerPro")
	cl := newExternalClient(t, 7, "ext-42")
	prov := &fakeProvisioner{deleteErr: fmt.Errorf("backend unreachable")}

	clients := newFakeClientStore(cl)
	uc := NewDeleteClientUseCase(clients, newFakeSoftwareStore(sw), prov, logger.NewLogger())

	err := uc.Execute(context.Background(), cl.SID())

	require.Error(t, err)
	assert.Equal(t, 1, prov.deleteCalls)
	assert.Empty(t, clients.deleted)
}

func TestDeleteClientUseCase_Execute_DeletesExternalRemoteFirst(t *testing.T) {
	sw := newTestSoftware(t, 7, "LedgerPro")
	cl := newExternalClient(t, 7, "ext-42")
	prov := &fakeProvisioner{}

	clients := newFakeClientStore(cl)
	uc := NewDeleteClientUseCase(clients, newFakeSoftwareStore(sw), prov, logger.NewLogger())

	err := uc.Execute(context.Background(), cl.SID())

	require.NoError(t, err)
	assert.Equal(t, 1, prov.deleteCalls)
	assert.Equal(t, []uint{cl.ID()}, clients.deleted)
}

func TestDeleteClientUseCase_Execute_InternalClientSkipsBridge(t *testing.T) {
	phone, err := clientvo.NewPhone("9876543210", "+91")
	require.NoError(t, err)
	cl, err := client.NewClient(client.NewClientParams{
		Name:  "Asha Rao",
		Email: "asha@example.com",
		Phone: phone,
		Type:  clientvo.ClientTypeService,
	})
	require.NoError(t, err)
	cl.SetID(2)

	prov := &fakeProvisioner{}
	clients := newFakeClientStore(cl)
	uc := NewDeleteClientUseCase(clients, newFakeSoftwareStore(), prov, logger.NewLogger())

	err = uc.Execute(context.Background(), cl.SID())

	require.NoError(t, err)
	assert.Zero(t, prov.deleteCalls)
	assert.Equal(t, []uint{cl.ID()}, clients.deleted)
}
