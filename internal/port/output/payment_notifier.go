package output

// PaymentNotifier is an output port (secondary port) for notifying the external
// payment processor that a payment was created and where to deliver its webhook
type PaymentNotifier interface {
	// Notify informs the processor of a new payment; any non-2xx response or
	// transport failure is surfaced as an error
	Notify(webhookURL string, amount float64) error
}
