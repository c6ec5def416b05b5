// Package bridge defines the external registration port: some software
// products run their own account backend, and clients created here must be
// mirrored there.
package bridge

import (
	"context"

	"github.com/vendra-inc/vendra/internal/domain/catalog"
	vo "github.com/vendra-inc/vendra/internal/domain/client/valueobjects"
)

// RegisterRequest carries the client fields the remote backend needs.
type RegisterRequest struct {
	Name  string
	Email string
	Phone string
}

// RegisterResult reports the remote outcome. ExternalID is empty when the
// registration was skipped or failed.
type RegisterResult struct {
	ExternalID string
	Status     vo.RegistrationStatus
}

// Account is a remote account row as the backend reports it.
type Account struct {
	ExternalID string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Active     bool   `json:"active"`
}

// ExternalProvisioner mirrors client lifecycle events to a software's own
// backend. A software with no configured endpoints is not an error: Register
// reports the skipped status and the other calls are never made for it.
type ExternalProvisioner interface {
	Register(ctx context.Context, endpoints catalog.BridgeEndpoints, req RegisterRequest) (*RegisterResult, error)
	Delete(ctx context.Context, endpoints catalog.BridgeEndpoints, externalID string) error
	UpdateStatus(ctx context.Context, endpoints catalog.BridgeEndpoints, externalID string, active bool) error
	ListAccounts(ctx context.Context, endpoints catalog.BridgeEndpoints) ([]Account, error)
}
