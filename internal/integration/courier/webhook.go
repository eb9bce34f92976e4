package courier

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strconv"
	"strings"

	"grocery-be/internal/logger"
	"grocery-be/internal/order"
	"grocery-be/internal/transport"

	"go.uber.org/zap"
)

type StatusApplier interface {
	ApplyCourierStatus(ctx context.Context, consignmentID, invoice, courierStatus string) (*order.Order, error)
}

// WebhookHandler receives delivery status callbacks from the courier.
type WebhookHandler struct {
	Orders StatusApplier
	token  string
}

func NewWebhookHandler(orders StatusApplier, token string) *WebhookHandler {
	if token == "" {
		logger.L().Warn("courier webhook token is empty, callbacks will be rejected")
	}
	return &WebhookHandler{Orders: orders, token: token}
}

func (h *WebhookHandler) verify(r *http.Request) error {
	got := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
	if got == "" {
		got = r.Header.Get("X-Webhook-Token")
	}
	if h.token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) != 1 {
		return ErrInvalidToken
	}
	return nil
}

func (h *WebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := logger.FromCtx(r.Context()).With(zap.String("handler", "CourierWebhook"))

	if err := h.verify(r); err != nil {
		transport.WriteError(w, r, err)
		return
	}

	var payload WebhookPayload
	if err := transport.DecodeJSON(r, &payload); err != nil {
		transport.WriteError(w, r, err)
		return
	}

	if payload.NotificationType != "" && payload.NotificationType != "delivery_status" {
		log.Info("ignoring courier notification", zap.String("type", payload.NotificationType))
		transport.WriteJSON(w, http.StatusOK, map[string]string{"status": "ignored"})
		return
	}

	consignmentID := ""
	if payload.ConsignmentID > 0 {
		consignmentID = strconv.FormatInt(payload.ConsignmentID, 10)
	}
	if consignmentID == "" && payload.Invoice == "" {
		transport.WriteError(w, r, ErrMissingReference)
		return
	}

	o, err := h.Orders.ApplyCourierStatus(r.Context(), consignmentID, payload.Invoice, payload.Status)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}

	log.Info("courier status applied", zap.Int64("order_id", o.ID), zap.String("courier_status", payload.Status))
	transport.WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
