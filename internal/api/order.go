package api

import (
	"net/http"
	"strings"

	"grocery-be/internal/analytics"
	"grocery-be/internal/order"
	"grocery-be/internal/transaction"
	"grocery-be/internal/transport"
)

type statusRequest struct {
	Status string `json:"status"`
}

type bulkStatusRequest struct {
	IDs    []string `json:"ids"`
	Status string   `json:"status"`
}

type bulkStatusResponse struct {
	Updated int                `json:"updated"`
	Failed  int                `json:"failed"`
	Results []order.BulkResult `json:"results"`
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var in order.CheckoutInput
	if err := transport.DecodeJSON(r, &in); err != nil {
		transport.WriteError(w, r, err)
		return
	}
	o, err := h.Orders.Checkout(r.Context(), in)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusCreated, order.ToView(o))
}

func (h *Handler) getOrderByNumber(w http.ResponseWriter, r *http.Request) {
	o, err := h.Orders.GetByNumber(r.Context(), r.PathValue("orderNumber"))
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, order.ToView(o))
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p, l, err := page(r)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	from, to, err := transaction.ParseRange(q.Get("from"), q.Get("to"))
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}

	res, err := h.Orders.List(r.Context(), order.ListFilter{
		Status: strings.TrimSpace(q.Get("status")),
		Search: strings.TrimSpace(q.Get("search")),
		From:   from,
		To:     to,
		Page:   p,
		Limit:  l,
	})
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	o, err := h.Orders.Get(r.Context(), id)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, order.ToView(o))
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	var in statusRequest
	if err := transport.DecodeJSON(r, &in); err != nil {
		transport.WriteError(w, r, err)
		return
	}
	o, err := h.Orders.UpdateStatus(r.Context(), id, in.Status)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, order.ToView(o))
}

func (h *Handler) bulkOrderStatus(w http.ResponseWriter, r *http.Request) {
	var in bulkStatusRequest
	if err := transport.DecodeJSON(r, &in); err != nil {
		transport.WriteError(w, r, err)
		return
	}
	results, err := h.Orders.BulkUpdateStatus(r.Context(), in.IDs, in.Status)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}

	res := bulkStatusResponse{Results: results}
	for _, br := range results {
		if br.Success {
			res.Updated++
		} else {
			res.Failed++
		}
	}
	transport.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) orderAnalytics(w http.ResponseWriter, r *http.Request) {
	days, err := transport.QueryInt(r, "days", analytics.DefaultDays)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	top, err := transport.QueryInt(r, "top", analytics.DefaultTop)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}

	report, err := h.Analytics.OrderReport(r.Context(), days, top)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, report)
}
