package api

import (
	"net/http"
	"strings"

	"grocery-be/internal/transaction"
	"grocery-be/internal/transport"
)

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
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

	res, err := h.Transactions.List(r.Context(), transaction.ListFilter{
		Type:     strings.ToLower(strings.TrimSpace(q.Get("type"))),
		Category: strings.TrimSpace(q.Get("category")),
		From:     from,
		To:       to,
		Page:     p,
		Limit:    l,
	})
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	var in transaction.CreateInput
	if err := transport.DecodeJSON(r, &in); err != nil {
		transport.WriteError(w, r, err)
		return
	}
	t, err := h.Transactions.Create(r.Context(), in)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusCreated, transaction.ToView(t))
}

func (h *Handler) transactionSummary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to, err := transaction.ParseRange(q.Get("from"), q.Get("to"))
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	sum, err := h.Transactions.Summary(r.Context(), from, to)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, sum)
}

func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	if err := h.Transactions.Delete(r.Context(), id); err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
