package api

import (
	"net/http"

	"grocery-be/internal/integration/courier"
	"grocery-be/internal/integration/whatsapp"
	"grocery-be/internal/order"
	"grocery-be/internal/transport"
)

func (h *Handler) shipOrder(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}

	var in courier.ShipInput
	if r.ContentLength != 0 {
		if err := transport.DecodeJSON(r, &in); err != nil {
			transport.WriteError(w, r, err)
			return
		}
	}

	o, err := h.Courier.Ship(r.Context(), id, in)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, order.ToView(o))
}

func (h *Handler) courierBalance(w http.ResponseWriter, r *http.Request) {
	b, err := h.Courier.Balance(r.Context())
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, b)
}

func (h *Handler) courierStatus(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	st, err := h.Courier.Status(r.Context(), q.Get("consignmentId"), q.Get("trackingCode"), q.Get("invoice"))
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, st)
}

func (h *Handler) sendWhatsApp(w http.ResponseWriter, r *http.Request) {
	var in whatsapp.SendInput
	if err := transport.DecodeJSON(r, &in); err != nil {
		transport.WriteError(w, r, err)
		return
	}
	res, err := h.WhatsApp.Send(r.Context(), in)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) broadcastWhatsApp(w http.ResponseWriter, r *http.Request) {
	var in whatsapp.BroadcastInput
	if err := transport.DecodeJSON(r, &in); err != nil {
		transport.WriteError(w, r, err)
		return
	}
	res, err := h.WhatsApp.Broadcast(r.Context(), in)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) cartRecovery(w http.ResponseWriter, r *http.Request) {
	var in whatsapp.CartRecoveryInput
	if err := transport.DecodeJSON(r, &in); err != nil {
		transport.WriteError(w, r, err)
		return
	}
	res, err := h.WhatsApp.CartRecovery(r.Context(), in)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) fraudCheck(w http.ResponseWriter, r *http.Request) {
	res, err := h.FraudCheck.Check(r.Context(), r.URL.Query().Get("phone"))
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, res)
}
