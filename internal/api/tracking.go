package api

import (
	"net/http"
	"strings"

	"grocery-be/internal/tracking"
	"grocery-be/internal/transaction"
	"grocery-be/internal/transport"
)

func (h *Handler) track(w http.ResponseWriter, r *http.Request) {
	var in tracking.RecordInput
	if err := transport.DecodeJSON(r, &in); err != nil {
		transport.WriteError(w, r, err)
		return
	}

	e, err := h.Tracking.Record(r.Context(), in, tracking.RequestMeta{
		UserAgent: r.UserAgent(),
		IPAddress: clientIP(r),
	})
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	if e == nil {
		transport.WriteJSON(w, http.StatusOK, map[string]bool{"success": true, "recorded": false})
		return
	}
	transport.WriteJSON(w, http.StatusCreated, tracking.ToView(e))
}

func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
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

	res, err := h.Tracking.List(r.Context(), tracking.ListFilter{
		EventType: strings.TrimSpace(q.Get("eventType")),
		SessionID: strings.TrimSpace(q.Get("sessionId")),
		ProductID: strings.TrimSpace(q.Get("productId")),
		From:      from,
		To:        to,
		Page:      p,
		Limit:     l,
	})
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) eventSummary(w http.ResponseWriter, r *http.Request) {
	days, err := transport.QueryInt(r, "days", 30)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	sum, err := h.Tracking.Summary(r.Context(), days)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, sum)
}
