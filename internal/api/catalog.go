package api

import (
	"net/http"
	"strconv"
	"strings"

	"grocery-be/internal/apperr"
	"grocery-be/internal/category"
	"grocery-be/internal/product"
	"grocery-be/internal/transport"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	h.writeCategories(w, r, true)
}

func (h *Handler) adminListCategories(w http.ResponseWriter, r *http.Request) {
	h.writeCategories(w, r, false)
}

func (h *Handler) writeCategories(w http.ResponseWriter, r *http.Request, activeOnly bool) {
	cs, err := h.Categories.List(r.Context(), category.ListFilter{
		Search:     strings.TrimSpace(r.URL.Query().Get("search")),
		ActiveOnly: activeOnly,
	})
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, category.ToViews(cs))
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	c, err := h.Categories.Get(r.Context(), id)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, category.ToView(c))
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var in category.CreateInput
	if err := transport.DecodeJSON(r, &in); err != nil {
		transport.WriteError(w, r, err)
		return
	}
	c, err := h.Categories.Create(r.Context(), in)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusCreated, category.ToView(c))
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	var in category.UpdateInput
	if err := transport.DecodeJSON(r, &in); err != nil {
		transport.WriteError(w, r, err)
		return
	}
	c, err := h.Categories.Update(r.Context(), id, in)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, category.ToView(c))
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	if err := h.Categories.Delete(r.Context(), id); err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// productFilter reads the shared list query parameters. category may be a
// numeric id or a slug.
func productFilter(r *http.Request) (product.ListFilter, error) {
	q := r.URL.Query()
	p, l, err := page(r)
	if err != nil {
		return product.ListFilter{}, err
	}

	f := product.ListFilter{
		Search:  strings.TrimSpace(q.Get("search")),
		InStock: queryBool(r, "inStock"),
		Page:    p,
		Limit:   l,
	}
	if raw := strings.TrimSpace(q.Get("category")); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			if id < 1 {
				return product.ListFilter{}, apperr.Invalid("invalid category")
			}
			f.CategoryID = id
		} else {
			f.CategorySlug = raw
		}
	}
	return f, nil
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	f, err := productFilter(r)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	f.ActiveOnly = true

	res, err := h.Products.List(r.Context(), f)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) adminListProducts(w http.ResponseWriter, r *http.Request) {
	f, err := productFilter(r)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	res, err := h.Products.List(r.Context(), f)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, res)
}

// getProduct accepts either a numeric id or a slug.
func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	ref := r.PathValue("id")

	var (
		p   *product.Product
		err error
	)
	if id, convErr := strconv.ParseInt(ref, 10, 64); convErr == nil {
		p, err = h.Products.Get(r.Context(), id)
	} else {
		p, err = h.Products.GetBySlug(r.Context(), ref)
	}
	if err == nil && !p.IsActive {
		err = product.ErrProductNotFound
	}
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, product.ToView(p))
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var in product.CreateInput
	if err := transport.DecodeJSON(r, &in); err != nil {
		transport.WriteError(w, r, err)
		return
	}
	p, err := h.Products.Create(r.Context(), in)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusCreated, product.ToView(p))
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	var in product.UpdateInput
	if err := transport.DecodeJSON(r, &in); err != nil {
		transport.WriteError(w, r, err)
		return
	}
	p, err := h.Products.Update(r.Context(), id, in)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, product.ToView(p))
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := transport.PathID(r, "id")
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	if err := h.Products.Delete(r.Context(), id); err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
