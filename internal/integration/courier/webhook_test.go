package courier

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"grocery-be/internal/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockApplier struct {
	mock.Mock
}

func (m *MockApplier) ApplyCourierStatus(ctx context.Context, consignmentID, invoice, courierStatus string) (*order.Order, error) {
	args := m.Called(ctx, consignmentID, invoice, courierStatus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func TestWebhookHandler(t *testing.T) {
	const body = `{"notification_type":"delivery_status","consignment_id":1424107,"invoice":"ORD-1","status":"delivered"}`

	t.Run("Success", func(t *testing.T) {
		applier := new(MockApplier)
		applier.On("ApplyCourierStatus", mock.Anything, "1424107", "ORD-1", "delivered").
			Return(&order.Order{ID: 3, Status: order.StatusDelivered}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/courier", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer hook-token")
		rec := httptest.NewRecorder()

		NewWebhookHandler(applier, "hook-token").ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "success")
		applier.AssertExpectations(t)
	})

	t.Run("BadToken", func(t *testing.T) {
		applier := new(MockApplier)
		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/courier", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()

		NewWebhookHandler(applier, "hook-token").ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		applier.AssertNotCalled(t, "ApplyCourierStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("NoTokenConfigured", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/courier", strings.NewReader(body))
		rec := httptest.NewRecorder()

		NewWebhookHandler(new(MockApplier), "").ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("UnknownOrder", func(t *testing.T) {
		applier := new(MockApplier)
		applier.On("ApplyCourierStatus", mock.Anything, "1424107", "ORD-1", "delivered").
			Return(nil, order.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/courier", strings.NewReader(body))
		req.Header.Set("X-Webhook-Token", "hook-token")
		rec := httptest.NewRecorder()

		NewWebhookHandler(applier, "hook-token").ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("OtherNotificationIgnored", func(t *testing.T) {
		applier := new(MockApplier)
		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/courier",
			strings.NewReader(`{"notification_type":"tracking_update","consignment_id":1}`))
		req.Header.Set("Authorization", "Bearer hook-token")
		rec := httptest.NewRecorder()

		NewWebhookHandler(applier, "hook-token").ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "ignored")
	})
}
