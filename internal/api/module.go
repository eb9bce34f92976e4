package api

import (
	"context"
	"net/http"

	"grocery-be/internal/module"
	"grocery-be/internal/transport"
)

type moduleStatusResponse struct {
	ID      string `json:"id"`
	Enabled bool   `json:"enabled"`
}

func (h *Handler) listModules(w http.ResponseWriter, r *http.Request) {
	views, err := h.Modules.List(r.Context())
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, views)
}

func (h *Handler) getModule(w http.ResponseWriter, r *http.Request) {
	h.writeModule(w, r, h.Modules.Get)
}

func (h *Handler) purchaseModule(w http.ResponseWriter, r *http.Request) {
	h.writeModule(w, r, h.Modules.Purchase)
}

func (h *Handler) enableModule(w http.ResponseWriter, r *http.Request) {
	h.writeModule(w, r, h.Modules.Enable)
}

func (h *Handler) disableModule(w http.ResponseWriter, r *http.Request) {
	h.writeModule(w, r, h.Modules.Disable)
}

func (h *Handler) writeModule(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id string) (*module.View, error)) {
	v, err := op(r.Context(), r.PathValue("id"))
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, v)
}

func (h *Handler) updateModuleSettings(w http.ResponseWriter, r *http.Request) {
	var partial map[string]any
	if err := transport.DecodeJSON(r, &partial); err != nil {
		transport.WriteError(w, r, err)
		return
	}
	v, err := h.Modules.UpdateSettings(r.Context(), r.PathValue("id"), partial)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, v)
}

// moduleStatus is the public gating query used by the storefront. Unknown
// ids report disabled.
func (h *Handler) moduleStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	transport.WriteJSON(w, http.StatusOK, moduleStatusResponse{
		ID:      id,
		Enabled: h.Modules.IsModuleEnabled(r.Context(), id),
	})
}
