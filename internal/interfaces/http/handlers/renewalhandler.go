package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	clientusecases "github.com/vendra-inc/vendra/internal/application/client/usecases"
	"github.com/vendra-inc/vendra/internal/application/renewal/usecases"
	"github.com/vendra-inc/vendra/internal/shared/id"
	"github.com/vendra-inc/vendra/internal/shared/logger"
	"github.com/vendra-inc/vendra/internal/shared/utils"
)

// CreateOrderRequest carries the checkout amount in rupees. The gateway
// is paid in paise, conversion happens in the use case.
type CreateOrderRequest struct {
	Amount   int64  `json:"amount" binding:"required,gt=0"`
	Currency string `json:"currency"`
}

// PaymentDetails carries the field names Razorpay's checkout handback
// delivers to the frontend.
type PaymentDetails struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

type ProcessRenewalRequest struct {
	ClientID       string         `json:"clientId" binding:"required,client_sid"`
	PackageID      string         `json:"packageId" binding:"required,package_sid"`
	PaymentDetails PaymentDetails `json:"paymentDetails" binding:"required"`
}

// RenewalHandler serves the public renewal flow: lookup, order creation
// and settlement. None of these routes sit behind auth.
type RenewalHandler struct {
	createOrderUC         *usecases.CreateOrderUseCase
	processRenewalUC      *usecases.ProcessRenewalUseCase
	publicClientInfoUC    *clientusecases.GetPublicClientInfoUseCase
	publicServiceClientUC *clientusecases.GetPublicServiceClientInfoUseCase
	logger                logger.Interface
}

func NewRenewalHandler(
	createOrderUC *usecases.CreateOrderUseCase,
	processRenewalUC *usecases.ProcessRenewalUseCase,
	publicClientInfoUC *clientusecases.GetPublicClientInfoUseCase,
	publicServiceClientUC *clientusecases.GetPublicServiceClientInfoUseCase,
) *RenewalHandler {
	return &RenewalHandler{
		createOrderUC:         createOrderUC,
		processRenewalUC:      processRenewalUC,
		publicClientInfoUC:    publicClientInfoUC,
		publicServiceClientUC: publicServiceClientUC,
		logger:                logger.NewLogger(),
	}
}

func (h *RenewalHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create order request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "a positive amount is required")
		return
	}

	result, err := h.createOrderUC.Execute(c.Request.Context(), usecases.CreateOrderCommand{
		AmountInRupees: req.Amount,
		Currency:       req.Currency,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order created", gin.H{
		"order": gin.H{
			"id":       result.OrderID,
			"amount":   result.Amount,
			"currency": result.Currency,
		},
	})
}

func (h *RenewalHandler) ProcessRenewal(c *gin.Context) {
	var req ProcessRenewalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid process renewal request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.processRenewalUC.Execute(c.Request.Context(), usecases.ProcessRenewalCommand{
		ClientSID:        req.ClientID,
		PackageSID:       req.PackageID,
		GatewayOrderID:   req.PaymentDetails.RazorpayOrderID,
		GatewayPaymentID: req.PaymentDetails.RazorpayPaymentID,
		GatewaySignature: req.PaymentDetails.RazorpaySignature,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "Renewal processed successfully"
	if result.AlreadyDone {
		message = "Renewal already processed"
	}

	utils.SuccessResponse(c, http.StatusOK, message, gin.H{
		"paymentId":     result.PaymentSID,
		"newExpiryDate": result.NewExpiryDate,
	})
}

func (h *RenewalHandler) GetPublicClientInfo(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "email query parameter is required")
		return
	}

	result, err := h.publicClientInfoUC.Execute(c.Request.Context(), email)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *RenewalHandler) GetPublicServiceClientInfo(c *gin.Context) {
	sid := strings.TrimSpace(c.Query("id"))
	if sid == "" || id.ValidatePrefix(sid, id.PrefixClient) != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "a valid client id is required")
		return
	}

	result, err := h.publicServiceClientUC.Execute(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
