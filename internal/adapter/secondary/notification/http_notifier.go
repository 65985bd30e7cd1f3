package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/techchallenge/pagamentos-service/internal/port/output"
)

// MockProcessorRequest is the body sent to the external payment processor
type MockProcessorRequest struct {
	WebhookURL string  `json:"webhook_url"`
	Value      float64 `json:"value"`
}

// HTTPNotifier is a secondary adapter that implements PaymentNotifier output port
type HTTPNotifier struct {
	endpoint string
	client   *http.Client
}

// NewHTTPNotifier creates a notifier posting to the given processor endpoint
func NewHTTPNotifier(endpoint string) output.PaymentNotifier {
	client := &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
		},
		Timeout: 10 * time.Second,
	}
	return &HTTPNotifier{endpoint: endpoint, client: client}
}

// Notify posts the webhook callback URL and amount to the processor. Any
// transport failure or non-2xx status is returned as an error; the caller
// decides how to recover.
func (n *HTTPNotifier) Notify(webhookURL string, amount float64) error {
	payload := MockProcessorRequest{
		WebhookURL: webhookURL,
		Value:      amount,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	log.Printf("Notification request body: %s", body)

	resp, err := n.client.Post(n.endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notification request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notification request returned status %d", resp.StatusCode)
	}

	return nil
}
