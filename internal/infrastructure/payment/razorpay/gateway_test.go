package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendra-inc/vendra/internal/shared/config"
	"github.com/vendra-inc/vendra/internal/shared/errors"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

func newTestGateway(baseURL string) *Gateway {
	return NewGateway(config.RazorpayConfig{
		KeyID:     "rzp_test_key",
		KeySecret: "rzp_test_secret",
		BaseURL:   baseURL,
	}, logger.NewLogger())
}

func TestGateway_CreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "rzp_test_secret", pass)

		var req orderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(50000), req.Amount)
		assert.Equal(t, "INR", req.Currency)

		json.NewEncoder(w).Encode(orderResponse{
			ID:       "order_test123",
			Amount:   req.Amount,
			Currency: req.Currency,
			Status:   "created",
		})
	}))
	defer server.Close()

	gw := newTestGateway(server.URL)

	order, err := gw.CreateOrder(context.Background(), 50000, "INR")

	require.NoError(t, err)
	assert.Equal(t, "order_test123", order.ID)
	assert.Equal(t, int64(50000), order.Amount)
	assert.Equal(t, "INR", order.Currency)
}

func TestGateway_CreateOrder_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"amount too small"}}`))
	}))
	defer server.Close()

	gw := newTestGateway(server.URL)

	_, err := gw.CreateOrder(context.Background(), 1, "INR")

	require.Error(t, err)
	assert.True(t, errors.IsGatewayError(err))
}

func TestGateway_CreateOrder_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	gw := newTestGateway(server.URL)

	_, err := gw.CreateOrder(context.Background(), 50000, "INR")

	require.Error(t, err)
	assert.True(t, errors.IsGatewayError(err))
}

func TestGateway_VerifySignature(t *testing.T) {
	gw := newTestGateway("")

	mac := hmac.New(sha256.New, []byte("rzp_test_secret"))
	mac.Write([]byte("order_abc|pay_xyz"))
	valid := hex.EncodeToString(mac.Sum(nil))

	assert.NoError(t, gw.VerifySignature("order_abc", "pay_xyz", valid))
	assert.Error(t, gw.VerifySignature("order_abc", "pay_other", valid))
	assert.Error(t, gw.VerifySignature("order_abc", "pay_xyz", "deadbeef"))
	assert.Error(t, gw.VerifySignature("", "pay_xyz", valid))
}
