// Package razorpay implements the renewal payment gateway against the
// Razorpay Orders REST API.
package razorpay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vendra-inc/vendra/internal/application/renewal/gateway"
	"github.com/vendra-inc/vendra/internal/shared/config"
	apperrors "github.com/vendra-inc/vendra/internal/shared/errors"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

const (
	defaultBaseURL = "https://api.razorpay.com"
	ordersPath     = "/v1/orders"
	defaultTimeout = 15 * time.Second

	// Maximum response body size for the orders API (64KB)
	maxResponseSize = 64 << 10
)

type orderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// Gateway talks to Razorpay with API key basic auth. Order creation is the
// only server-side call; settlement verification is pure HMAC and never
// touches the network.
type Gateway struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
	logger     logger.Interface
}

func NewGateway(cfg config.RazorpayConfig, logger logger.Interface) *Gateway {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	return &Gateway{
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		baseURL:   baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

var _ gateway.PaymentGateway = (*Gateway)(nil)

func (g *Gateway) CreateOrder(ctx context.Context, amount int64, currency string) (*gateway.Order, error) {
	body, err := json.Marshal(orderRequest{Amount: amount, Currency: currency})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+ordersPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(g.keyID, g.keySecret)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.Errorw("razorpay order request failed", "error", err)
		return nil, apperrors.NewGatewayError("payment gateway is unreachable")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, apperrors.NewGatewayError("failed to read gateway response")
	}

	if resp.StatusCode != http.StatusOK {
		var gwErr errorResponse
		_ = json.Unmarshal(respBody, &gwErr)
		g.logger.Errorw("razorpay order creation rejected",
			"status", resp.StatusCode,
			"code", gwErr.Error.Code,
			"description", gwErr.Error.Description,
		)
		return nil, apperrors.NewGatewayError("payment gateway rejected the order")
	}

	var order orderResponse
	if err := json.Unmarshal(respBody, &order); err != nil {
		return nil, apperrors.NewGatewayError("invalid gateway response")
	}
	if order.ID == "" {
		return nil, apperrors.NewGatewayError("gateway returned an empty order ID")
	}

	return &gateway.Order{
		ID:       order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
	}, nil
}

// VerifySignature checks the checkout signature: HMAC-SHA256 over
// "orderID|paymentID" keyed with the API secret, hex encoded.
func (g *Gateway) VerifySignature(orderID, paymentID, signature string) error {
	if orderID == "" || paymentID == "" || signature == "" {
		return fmt.Errorf("incomplete signature payload")
	}

	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return fmt.Errorf("signature mismatch for order %s", orderID)
	}
	return nil
}
