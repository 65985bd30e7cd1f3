package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/techchallenge/pagamentos-service/internal/core"
	"github.com/techchallenge/pagamentos-service/internal/port/input"
)

// PaymentHandler is a primary adapter (HTTP handler)
type PaymentHandler struct {
	paymentService input.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService input.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreatePaymentRequest represents the HTTP request to create a payment
type CreatePaymentRequest struct {
	OrderID   string  `json:"order_id"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Reference string  `json:"reference"`
}

// PaymentResponse represents the HTTP response for a payment
type PaymentResponse struct {
	ID        string  `json:"id"`
	OrderID   string  `json:"order_id"`
	Status    string  `json:"status"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Reference string  `json:"reference"`
	CreatedAt string  `json:"created_at"`
}

// WebhookRequest represents the processor's webhook payload
type WebhookRequest struct {
	PaymentStatus string `json:"payment_status"`
	PaymentCode   string `json:"payment_code"`
}

func toResponse(p *core.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		OrderID:   p.OrderID,
		Status:    string(p.Status),
		Amount:    p.Amount,
		Method:    p.Method,
		Reference: p.Reference,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}

// CreatePayment handles payment creation
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	var req CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	// Convert to service request
	serviceReq := input.CreatePaymentRequest{
		OrderID:   req.OrderID,
		Amount:    req.Amount,
		Method:    req.Method,
		Reference: req.Reference,
	}

	// Call service (input port)
	payment, err := h.paymentService.CreatePayment(serviceReq)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to create payment",
		})
	}

	return c.JSON(http.StatusOK, toResponse(payment))
}

// ListPayments handles retrieval of all payments
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	payments, err := h.paymentService.ListPayments()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to list payments",
		})
	}

	responses := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		responses = append(responses, toResponse(&payments[i]))
	}

	return c.JSON(http.StatusOK, responses)
}

// Webhook handles the processor's asynchronous payment outcome
func (h *PaymentHandler) Webhook(c echo.Context) error {
	paymentID := c.QueryParam("payment_id")
	if paymentID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "payment_id is required",
		})
	}

	var req WebhookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	notification := input.WebhookNotification{
		PaymentStatus: req.PaymentStatus,
		PaymentCode:   req.PaymentCode,
	}

	if err := h.paymentService.HandleWebhook(paymentID, notification); err != nil {
		if errors.Is(err, core.ErrPaymentNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "Payment not found",
			})
		}
		if errors.Is(err, core.ErrInvalidOrderID) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Invalid order ID format",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to process webhook",
		})
	}

	return c.NoContent(http.StatusOK)
}
