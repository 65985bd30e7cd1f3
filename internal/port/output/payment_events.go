package output

import (
	"github.com/techchallenge/pagamentos-service/internal/core"
)

// PaymentEvents is an output port (secondary port) for payment event publishing
// Secondary adapters (RabbitMQ implementations) will implement this
type PaymentEvents interface {
	// PublishStatusChange publishes a status-change event for downstream consumers
	PublishStatusChange(event core.StatusChangeEvent) error
	// Close closes the messaging connection
	Close() error
}
