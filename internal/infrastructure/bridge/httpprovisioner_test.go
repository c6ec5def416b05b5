package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbridge "github.com/vendra-inc/vendra/internal/application/client/bridge"
	"github.com/vendra-inc/vendra/internal/domain/catalog"
	vo "github.com/vendra-inc/vendra/internal/domain/client/valueobjects"
	"github.com/vendra-inc/vendra/internal/shared/config"
	"github.com/vendra-inc/vendra/internal/shared/errors"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

func newProvisioner() *HTTPProvisioner {
	return NewHTTPProvisioner(config.BridgeConfig{TimeoutSeconds: 2}, logger.NewLogger())
}

func TestHTTPProvisioner_Register(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var payload registerPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Asha Rao", payload.Name)
		assert.Equal(t, "asha@example.com", payload.Email)
		assert.Equal(t, "+919876543210", payload.Phone)

		json.NewEncoder(w).Encode(map[string]string{"id": "ext_42"})
	}))
	defer server.Close()

	result, err := newProvisioner().Register(context.Background(), catalog.BridgeEndpoints{
		RegisterAPILink: server.URL + "/users",
	}, appbridge.RegisterRequest{
		Name:  "Asha Rao",
		Email: "asha@example.com",
		Phone: "+919876543210",
	})

	require.NoError(t, err)
	assert.Equal(t, vo.RegistrationSuccess, result.Status)
	assert.Equal(t, "ext_42", result.ExternalID)
}

func TestHTTPProvisioner_Register_NoEndpointSkips(t *testing.T) {
	result, err := newProvisioner().Register(context.Background(), catalog.BridgeEndpoints{}, appbridge.RegisterRequest{
		Name:  "Asha Rao",
		Email: "asha@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, vo.RegistrationSkipped, result.Status)
	assert.Empty(t, result.ExternalID)
}

func TestHTTPProvisioner_Register_ConflictMeansAlreadyExists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"id": "ext_7"})
	}))
	defer server.Close()

	result, err := newProvisioner().Register(context.Background(), catalog.BridgeEndpoints{
		RegisterAPILink: server.URL + "/users",
	}, appbridge.RegisterRequest{Name: "Asha Rao", Email: "asha@example.com"})

	require.NoError(t, err)
	assert.Equal(t, vo.RegistrationAlreadyExists, result.Status)
	assert.Equal(t, "ext_7", result.ExternalID)
}

func TestHTTPProvisioner_Register_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	result, err := newProvisioner().Register(context.Background(), catalog.BridgeEndpoints{
		RegisterAPILink: server.URL + "/users",
	}, appbridge.RegisterRequest{Name: "Asha Rao", Email: "asha@example.com"})

	require.Error(t, err)
	assert.True(t, errors.IsExternalBridgeError(err))
	assert.Equal(t, vo.RegistrationFailed, result.Status)
}

func TestHTTPProvisioner_Delete_ExpandsIDPlaceholder(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := newProvisioner().Delete(context.Background(), catalog.BridgeEndpoints{
		DeleteAPILink: server.URL + "/users/:id",
	}, "ext_42")

	require.NoError(t, err)
	assert.Equal(t, "/users/ext_42", gotPath)
}

func TestHTTPProvisioner_Delete_RemoteNotFoundIsFine(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	err := newProvisioner().Delete(context.Background(), catalog.BridgeEndpoints{
		DeleteAPILink: server.URL + "/users/:id",
	}, "ext_42")

	assert.NoError(t, err)
}

func TestHTTPProvisioner_Delete_NoEndpointFails(t *testing.T) {
	err := newProvisioner().Delete(context.Background(), catalog.BridgeEndpoints{}, "ext_42")

	require.Error(t, err)
	assert.True(t, errors.IsExternalBridgeError(err))
}

func TestHTTPProvisioner_UpdateStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/users/ext_42/status", r.URL.Path)

		var payload updateStatusPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.False(t, payload.Active)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := newProvisioner().UpdateStatus(context.Background(), catalog.BridgeEndpoints{
		UpdateStatusAPILink: server.URL + "/users/:id/status",
	}, "ext_42", false)

	assert.NoError(t, err)
}

func TestHTTPProvisioner_ListAccounts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]appbridge.Account{
			{ExternalID: "ext_1", Name: "A", Email: "a@example.com", Active: true},
			{ExternalID: "ext_2", Name: "B", Email: "b@example.com", Active: false},
		})
	}))
	defer server.Close()

	accounts, err := newProvisioner().ListAccounts(context.Background(), catalog.BridgeEndpoints{
		GetAllAPILink: server.URL + "/users",
	})

	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "ext_1", accounts[0].ExternalID)
	assert.False(t, accounts[1].Active)
}
