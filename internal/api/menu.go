package api

import (
	"net/http"
	"strings"

	"grocery-be/internal/menu"
	"grocery-be/internal/transport"
)

func (h *Handler) publicMenus(w http.ResponseWriter, r *http.Request) {
	loc := menu.Location(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("location"))))
	ms, err := h.Menus.List(r.Context(), menu.ListFilter{Location: loc, ActiveOnly: true})
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, menu.ToViews(ms))
}

func (h *Handler) listMenus(w http.ResponseWriter, r *http.Request) {
	loc := menu.Location(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("location"))))
	ms, err := h.Menus.List(r.Context(), menu.ListFilter{Location: loc})
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, menu.ToViews(ms))
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	m, err := h.Menus.Get(r.Context(), id)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, menu.ToView(m))
}

func (h *Handler) createMenu(w http.ResponseWriter, r *http.Request) {
	var in menu.CreateInput
	if err := transport.DecodeJSON(r, &in); err != nil {
		transport.WriteError(w, r, err)
		return
	}
	m, err := h.Menus.Create(r.Context(), in)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusCreated, menu.ToView(m))
}

func (h *Handler) updateMenu(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	var in menu.UpdateInput
	if err := transport.DecodeJSON(r, &in); err != nil {
		transport.WriteError(w, r, err)
		return
	}
	m, err := h.Menus.Update(r.Context(), id, in)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, menu.ToView(m))
}

func (h *Handler) deleteMenu(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	if err := h.Menus.Delete(r.Context(), id); err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
