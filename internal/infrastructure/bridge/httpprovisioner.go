// Package bridge implements the external registration provisioner over
// plain HTTP against each software's own admin API.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	appbridge "github.com/vendra-inc/vendra/internal/application/client/bridge"
	"github.com/vendra-inc/vendra/internal/domain/catalog"
	vo "github.com/vendra-inc/vendra/internal/domain/client/valueobjects"
	"github.com/vendra-inc/vendra/internal/shared/config"
	apperrors "github.com/vendra-inc/vendra/internal/shared/errors"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

const (
	defaultTimeout = 10 * time.Second

	// Maximum response body size for bridge APIs (256KB)
	maxResponseSize = 256 << 10

	idPlaceholder = ":id"
)

type registerPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type registerResponse struct {
	ID      string `json:"id"`
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

type updateStatusPayload struct {
	Active bool `json:"active"`
}

// HTTPProvisioner calls whatever endpoint URLs the software record carries.
// Every call is bounded by a single timeout; the remote backends are outside
// our control and must never stall an admin request indefinitely.
type HTTPProvisioner struct {
	httpClient *http.Client
	logger     logger.Interface
}

func NewHTTPProvisioner(cfg config.BridgeConfig, logger logger.Interface) *HTTPProvisioner {
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return &HTTPProvisioner{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

var _ appbridge.ExternalProvisioner = (*HTTPProvisioner)(nil)

// Register creates the account remotely. A 409 from the backend means the
// account already exists there, which the caller treats as success.
func (p *HTTPProvisioner) Register(ctx context.Context, endpoints catalog.BridgeEndpoints, req appbridge.RegisterRequest) (*appbridge.RegisterResult, error) {
	if endpoints.RegisterAPILink == "" {
		return &appbridge.RegisterResult{Status: vo.RegistrationSkipped}, nil
	}

	body, err := json.Marshal(registerPayload{Name: req.Name, Email: req.Email, Phone: req.Phone})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal register payload: %w", err)
	}

	resp, respBody, err := p.do(ctx, http.MethodPost, endpoints.RegisterAPILink, body)
	if err != nil {
		p.logger.Warnw("bridge registration failed", "url", endpoints.RegisterAPILink, "error", err)
		return &appbridge.RegisterResult{Status: vo.RegistrationFailed}, apperrors.NewExternalBridgeError("external registration failed")
	}

	switch {
	case resp.StatusCode == http.StatusConflict:
		var parsed registerResponse
		_ = json.Unmarshal(respBody, &parsed)
		return &appbridge.RegisterResult{
			ExternalID: firstNonEmpty(parsed.ID, parsed.UserID),
			Status:     vo.RegistrationAlreadyExists,
		}, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var parsed registerResponse
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			p.logger.Warnw("bridge returned unparseable registration response", "url", endpoints.RegisterAPILink)
			return &appbridge.RegisterResult{Status: vo.RegistrationFailed}, apperrors.NewExternalBridgeError("invalid registration response")
		}
		return &appbridge.RegisterResult{
			ExternalID: firstNonEmpty(parsed.ID, parsed.UserID),
			Status:     vo.RegistrationSuccess,
		}, nil
	default:
		p.logger.Warnw("bridge registration rejected", "url", endpoints.RegisterAPILink, "status", resp.StatusCode)
		return &appbridge.RegisterResult{Status: vo.RegistrationFailed}, apperrors.NewExternalBridgeError(fmt.Sprintf("external registration returned status %d", resp.StatusCode))
	}
}

func (p *HTTPProvisioner) Delete(ctx context.Context, endpoints catalog.BridgeEndpoints, externalID string) error {
	if endpoints.DeleteAPILink == "" {
		return apperrors.NewExternalBridgeError("software has no delete endpoint configured")
	}
	if externalID == "" {
		return apperrors.NewValidationError("external ID is required")
	}

	url := strings.ReplaceAll(endpoints.DeleteAPILink, idPlaceholder, externalID)
	resp, _, err := p.do(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return apperrors.NewExternalBridgeError("external deletion failed")
	}
	// A remote 404 means the account is already gone; deleting locally is safe.
	if resp.StatusCode == http.StatusNotFound {
		p.logger.Infow("bridge account already absent", "url", url)
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.NewExternalBridgeError(fmt.Sprintf("external deletion returned status %d", resp.StatusCode))
	}
	return nil
}

func (p *HTTPProvisioner) UpdateStatus(ctx context.Context, endpoints catalog.BridgeEndpoints, externalID string, active bool) error {
	if endpoints.UpdateStatusAPILink == "" {
		return apperrors.NewExternalBridgeError("software has no update-status endpoint configured")
	}
	if externalID == "" {
		return apperrors.NewValidationError("external ID is required")
	}

	body, err := json.Marshal(updateStatusPayload{Active: active})
	if err != nil {
		return fmt.Errorf("failed to marshal status payload: %w", err)
	}

	url := strings.ReplaceAll(endpoints.UpdateStatusAPILink, idPlaceholder, externalID)
	resp, _, err := p.do(ctx, http.MethodPut, url, body)
	if err != nil {
		return apperrors.NewExternalBridgeError("external status update failed")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.NewExternalBridgeError(fmt.Sprintf("external status update returned status %d", resp.StatusCode))
	}
	return nil
}

func (p *HTTPProvisioner) ListAccounts(ctx context.Context, endpoints catalog.BridgeEndpoints) ([]appbridge.Account, error) {
	if endpoints.GetAllAPILink == "" {
		return nil, apperrors.NewExternalBridgeError("software has no list endpoint configured")
	}

	resp, respBody, err := p.do(ctx, http.MethodGet, endpoints.GetAllAPILink, nil)
	if err != nil {
		return nil, apperrors.NewExternalBridgeError("external account listing failed")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewExternalBridgeError(fmt.Sprintf("external account listing returned status %d", resp.StatusCode))
	}

	var accounts []appbridge.Account
	if err := json.Unmarshal(respBody, &accounts); err != nil {
		return nil, apperrors.NewExternalBridgeError("invalid account listing response")
	}
	return accounts, nil
}

func (p *HTTPProvisioner) do(ctx context.Context, method, url string, body []byte) (*http.Response, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build bridge request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read bridge response: %w", err)
	}
	return resp, respBody, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
