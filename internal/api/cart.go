package api

import (
	"net/http"

	"grocery-be/internal/cart"
	"grocery-be/internal/transport"
)

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	v, err := h.Carts.Get(r.Context(), r.PathValue("sessionId"))
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, v)
}

// addCartItem serves both POST /api/cart/items (new session) and
// POST /api/cart/{sessionId}/items.
func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var in cart.AddItemInput
	if err := transport.DecodeJSON(r, &in); err != nil {
		transport.WriteError(w, r, err)
		return
	}
	v, err := h.Carts.AddItem(r.Context(), r.PathValue("sessionId"), in)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, v)
}

func (h *Handler) setCartQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := transport.PathID(r, "productId")
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	var in cart.SetQuantityInput
	if err := transport.DecodeJSON(r, &in); err != nil {
		transport.WriteError(w, r, err)
		return
	}
	v, err := h.Carts.SetQuantity(r.Context(), r.PathValue("sessionId"), productID, in.Quantity)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, v)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	productID, err := transport.PathID(r, "productId")
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	v, err := h.Carts.RemoveItem(r.Context(), r.PathValue("sessionId"), productID)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, v)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Carts.Clear(r.Context(), r.PathValue("sessionId")); err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
