package core

import (
	"errors"
	"time"
)

// PaymentStatus represents the outcome recorded on a payment
type PaymentStatus string

const (
	// PaymentStatusNone is the initial state of a freshly created payment
	PaymentStatusNone     PaymentStatus = ""
	PaymentStatusFailed   PaymentStatus = "Falha"
	PaymentStatusApproved PaymentStatus = "Aprovado"
	PaymentStatusDeclined PaymentStatus = "Recusado"
)

var (
	// ErrPaymentNotFound is returned when a payment id has no stored record
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrInvalidOrderID is returned when a stored order id cannot be parsed as an integer
	ErrInvalidOrderID = errors.New("invalid order id format")
)

// Payment represents a payment domain entity
type Payment struct {
	ID        string
	OrderID   string
	Status    PaymentStatus
	Amount    float64
	Method    string
	Reference string
	CreatedAt time.Time
}

// IsFinal checks if the payment already carries a webhook outcome
func (p *Payment) IsFinal() bool {
	return p.Status == PaymentStatusApproved || p.Status == PaymentStatusDeclined
}

// StatusChangeEvent is the message published to the exchange when a payment
// is approved. Field names follow the wire contract consumed by the order service.
type StatusChangeEvent struct {
	PedidoID    int    `json:"pedido_id"`
	PagamentoID string `json:"pagamento_id"`
	Status      string `json:"status"`
}
