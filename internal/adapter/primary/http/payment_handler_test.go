package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/techchallenge/pagamentos-service/internal/core"
	"github.com/techchallenge/pagamentos-service/internal/port/input"
)

type fakeService struct {
	createFn  func(input.CreatePaymentRequest) (*core.Payment, error)
	listFn    func() ([]core.Payment, error)
	webhookFn func(string, input.WebhookNotification) error
}

func (f *fakeService) CreatePayment(req input.CreatePaymentRequest) (*core.Payment, error) {
	return f.createFn(req)
}

func (f *fakeService) ListPayments() ([]core.Payment, error) {
	return f.listFn()
}

func (f *fakeService) HandleWebhook(paymentID string, notification input.WebhookNotification) error {
	return f.webhookFn(paymentID, notification)
}

func newContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestCreatePayment_ReturnsPersistedRecord(t *testing.T) {
	svc := &fakeService{
		createFn: func(req input.CreatePaymentRequest) (*core.Payment, error) {
			require.Equal(t, "42", req.OrderID)
			require.Equal(t, 99.9, req.Amount)
			return &core.Payment{ID: "abc123", OrderID: req.OrderID, Amount: req.Amount, Method: req.Method}, nil
		},
	}
	handler := NewPaymentHandler(svc)

	c, rec := newContext(t, http.MethodPost, "/pagamentos", `{"order_id":"42","amount":99.9,"method":"pix"}`)
	require.NoError(t, handler.CreatePayment(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp PaymentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "abc123", resp.ID)
	require.Equal(t, "42", resp.OrderID)
	require.Equal(t, 99.9, resp.Amount)
}

func TestCreatePayment_FailedNotificationStillReturnsRecord(t *testing.T) {
	svc := &fakeService{
		createFn: func(req input.CreatePaymentRequest) (*core.Payment, error) {
			return &core.Payment{ID: "abc123", Status: core.PaymentStatusFailed}, nil
		},
	}
	handler := NewPaymentHandler(svc)

	c, rec := newContext(t, http.MethodPost, "/pagamentos", `{"amount":10}`)
	require.NoError(t, handler.CreatePayment(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp PaymentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Falha", resp.Status)
}

func TestCreatePayment_InvalidBody(t *testing.T) {
	svc := &fakeService{}
	handler := NewPaymentHandler(svc)

	c, rec := newContext(t, http.MethodPost, "/pagamentos", `{"amount":"not-a-number"}`)
	require.NoError(t, handler.CreatePayment(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPayments_ReturnsArray(t *testing.T) {
	svc := &fakeService{
		listFn: func() ([]core.Payment, error) {
			return []core.Payment{
				{ID: "p-1", OrderID: "1"},
				{ID: "p-2", OrderID: "2", Status: core.PaymentStatusApproved},
			}, nil
		},
	}
	handler := NewPaymentHandler(svc)

	c, rec := newContext(t, http.MethodGet, "/pagamentos", "")
	require.NoError(t, handler.ListPayments(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []PaymentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	require.Equal(t, "Aprovado", resp[1].Status)
}

func TestWebhook_MissingPaymentID(t *testing.T) {
	svc := &fakeService{}
	handler := NewPaymentHandler(svc)

	c, rec := newContext(t, http.MethodPost, "/webhook", `{"payment_status":"success"}`)
	require.NoError(t, handler.Webhook(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebhook_UnknownPayment(t *testing.T) {
	svc := &fakeService{
		webhookFn: func(string, input.WebhookNotification) error {
			return core.ErrPaymentNotFound
		},
	}
	handler := NewPaymentHandler(svc)

	c, rec := newContext(t, http.MethodPost, "/webhook?payment_id=missing", `{"payment_status":"success"}`)
	require.NoError(t, handler.Webhook(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWebhook_InvalidOrderID(t *testing.T) {
	svc := &fakeService{
		webhookFn: func(string, input.WebhookNotification) error {
			return core.ErrInvalidOrderID
		},
	}
	handler := NewPaymentHandler(svc)

	c, rec := newContext(t, http.MethodPost, "/webhook?payment_id=abc123", `{"payment_status":"success"}`)
	require.NoError(t, handler.Webhook(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebhook_Success_NoBody(t *testing.T) {
	var gotID string
	var gotNotification input.WebhookNotification
	svc := &fakeService{
		webhookFn: func(paymentID string, notification input.WebhookNotification) error {
			gotID = paymentID
			gotNotification = notification
			return nil
		},
	}
	handler := NewPaymentHandler(svc)

	c, rec := newContext(t, http.MethodPost, "/webhook?payment_id=abc123", `{"payment_status":"success","payment_code":"ok"}`)
	require.NoError(t, handler.Webhook(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Zero(t, rec.Body.Len())
	require.Equal(t, "abc123", gotID)
	require.Equal(t, input.WebhookNotification{PaymentStatus: "success", PaymentCode: "ok"}, gotNotification)
}
