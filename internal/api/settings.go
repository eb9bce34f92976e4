package api

import (
	"net/http"

	"grocery-be/internal/settings"
	"grocery-be/internal/transport"
)

func (h *Handler) publicSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.Settings.Get(r.Context())
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, settings.ToPublicView(s))
}

func (h *Handler) adminSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.Settings.Get(r.Context())
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, settings.ToAdminView(s))
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var in settings.UpdateInput
	if err := transport.DecodeJSON(r, &in); err != nil {
		transport.WriteError(w, r, err)
		return
	}
	s, err := h.Settings.Update(r.Context(), in)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, settings.ToAdminView(s))
}
