package api

import (
	"net/http"

	"grocery-be/internal/review"
	"grocery-be/internal/transport"
)

type productReviewsResponse struct {
	*review.Page
	Rating *review.ProductRating `json:"rating"`
}

func (h *Handler) listProductReviews(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	p, l, err := page(r)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	res, rating, err := h.Reviews.ListApproved(r.Context(), id, p, l)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, productReviewsResponse{Page: res, Rating: rating})
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	var in review.CreateInput
	if err := transport.DecodeJSON(r, &in); err != nil {
		transport.WriteError(w, r, err)
		return
	}
	rv, err := h.Reviews.Create(r.Context(), id, in)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusCreated, review.ToView(rv))
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	p, l, err := page(r)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}

	f := review.ListFilter{Page: p, Limit: l}
	if raw := r.URL.Query().Get("productId"); raw != "" {
		id, err := transport.QueryInt(r, "productId", 0)
		if err != nil {
			transport.WriteError(w, r, err)
			return
		}
		f.ProductID = int64(id)
	}
	switch r.URL.Query().Get("approved") {
	case "true":
		v := true
		f.Approved = &v
	case "false":
		v := false
		f.Approved = &v
	}

	res, err := h.Reviews.List(r.Context(), f)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) approveReview(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	rv, err := h.Reviews.Approve(r.Context(), id)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, review.ToView(rv))
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	if err := h.Reviews.Delete(r.Context(), id); err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
