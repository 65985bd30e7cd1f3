package input

import (
	"github.com/techchallenge/pagamentos-service/internal/core"
)

// PaymentService is an input port (primary port) for payment operations
// Primary adapters (HTTP handlers) will use this
type PaymentService interface {
	// CreatePayment creates a new payment and notifies the external processor
	CreatePayment(req CreatePaymentRequest) (*core.Payment, error)

	// ListPayments retrieves all stored payments
	ListPayments() ([]core.Payment, error)

	// HandleWebhook applies the processor's asynchronous outcome to a stored payment
	HandleWebhook(paymentID string, notification WebhookNotification) error
}

// CreatePaymentRequest represents the request to create a payment
type CreatePaymentRequest struct {
	OrderID   string
	Amount    float64
	Method    string
	Reference string
}

// WebhookNotification represents the processor's webhook payload
type WebhookNotification struct {
	PaymentStatus string
	PaymentCode   string
}
