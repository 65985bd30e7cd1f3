package output

import (
	"github.com/techchallenge/pagamentos-service/internal/core"
)

// PaymentRepository is an output port (secondary port) for payment data access
// Secondary adapters (database implementations) will implement this
type PaymentRepository interface {
	// Create inserts a new payment and assigns its id
	Create(payment *core.Payment) error

	// FindByID retrieves a payment by its id, returning core.ErrPaymentNotFound when absent
	FindByID(id string) (*core.Payment, error)

	// FindAll retrieves every stored payment
	FindAll() ([]core.Payment, error)

	// Save upserts a payment by id
	Save(payment *core.Payment) error
}
