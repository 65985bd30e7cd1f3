package service

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/techchallenge/pagamentos-service/internal/core"
	"github.com/techchallenge/pagamentos-service/internal/port/input"
	"github.com/techchallenge/pagamentos-service/internal/port/output"
)

// webhookStatusSuccess is the only inbound status that approves a payment
const webhookStatusSuccess = "success"

// PaymentServiceImpl implements the PaymentService input port
type PaymentServiceImpl struct {
	paymentRepo    output.PaymentRepository
	notifier       output.PaymentNotifier
	events         output.PaymentEvents
	webhookBaseURL string
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo output.PaymentRepository,
	notifier output.PaymentNotifier,
	events output.PaymentEvents,
	webhookBaseURL string,
) input.PaymentService {
	return &PaymentServiceImpl{
		paymentRepo:    paymentRepo,
		notifier:       notifier,
		events:         events,
		webhookBaseURL: webhookBaseURL,
	}
}

// CreatePayment persists a new payment and notifies the external processor.
// A failed notification marks the record "Falha" but the record is still
// returned to the caller, not an error.
func (s *PaymentServiceImpl) CreatePayment(req input.CreatePaymentRequest) (*core.Payment, error) {
	payment := &core.Payment{
		OrderID:   req.OrderID,
		Amount:    req.Amount,
		Method:    req.Method,
		Reference: req.Reference,
		CreatedAt: time.Now(),
	}

	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	webhookURL := fmt.Sprintf("%s/webhook?payment_id=%s", s.webhookBaseURL, payment.ID)
	if err := s.notifier.Notify(webhookURL, payment.Amount); err != nil {
		log.Printf("Payment notification failed for %s: %v", payment.ID, err)
		payment.Status = core.PaymentStatusFailed
		if err := s.paymentRepo.Save(payment); err != nil {
			return nil, fmt.Errorf("failed to save payment: %w", err)
		}
	}

	return payment, nil
}

// ListPayments retrieves all stored payments
func (s *PaymentServiceImpl) ListPayments() ([]core.Payment, error) {
	payments, err := s.paymentRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// HandleWebhook applies the processor's outcome to the stored payment. A
// "success" status approves the payment and publishes a status-change event;
// anything else declines it silently. Deliveries are not deduplicated, so a
// retried webhook re-runs the same transition.
func (s *PaymentServiceImpl) HandleWebhook(paymentID string, notification input.WebhookNotification) error {
	payment, err := s.paymentRepo.FindByID(paymentID)
	if err != nil {
		return err
	}

	if notification.PaymentStatus == webhookStatusSuccess {
		orderID, err := strconv.Atoi(payment.OrderID)
		if err != nil {
			return fmt.Errorf("%w: %q", core.ErrInvalidOrderID, payment.OrderID)
		}

		payment.Status = core.PaymentStatusApproved
		event := core.StatusChangeEvent{
			PedidoID:    orderID,
			PagamentoID: payment.ID,
			Status:      string(core.PaymentStatusApproved),
		}
		if err := s.events.PublishStatusChange(event); err != nil {
			return fmt.Errorf("failed to publish status change: %w", err)
		}
	} else {
		payment.Status = core.PaymentStatusDeclined
	}

	if err := s.paymentRepo.Save(payment); err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}

	return nil
}
