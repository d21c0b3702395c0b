package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gigpay/gigpay-api/internal/services"
)

// PaymentHandler exposes the payment orchestrator over HTTP.
type PaymentHandler struct {
	common *CommonServices
}

func NewPaymentHandler(common *CommonServices) *PaymentHandler {
	return &PaymentHandler{common: common}
}

// PaymentResponse wraps a payment result with the explorer link for the UI.
type PaymentResponse struct {
	services.PaymentResult
	ExplorerURL string `json:"explorer_url,omitempty"`
}

// ProcessPayment handles POST /payments. The result is always 200 with a
// uniform success/error body; the flow itself never partially succeeds from
// the caller's perspective.
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var req services.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid payment request: " + err.Error()})
		return
	}

	result := h.common.Payments.ProcessPayment(c.Request.Context(), req)

	resp := PaymentResponse{PaymentResult: result}
	if result.Success {
		resp.ExplorerURL = services.ExplorerTxURL(result.TransactionHash)
	}

	c.JSON(http.StatusOK, resp)
}

// GetStatus handles GET /payments/status, returning the observable payment
// status record.
func (h *PaymentHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.common.Payments.Status().Load())
}

// GetBalance handles GET /payments/balance.
func (h *PaymentHandler) GetBalance(c *gin.Context) {
	balance, ok := h.common.Payments.GetUSDCBalance(c.Request.Context())
	if !ok {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Balance unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": balance, "currency": "USDC"})
}

// GetTransactionStatus handles GET /payments/transactions/:hash.
func (h *PaymentHandler) GetTransactionStatus(c *gin.Context) {
	status, err := h.common.Payments.GetTransactionStatus(c.Request.Context(), c.Param("hash"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transaction not found"})
		return
	}
	c.JSON(http.StatusOK, status)
}
