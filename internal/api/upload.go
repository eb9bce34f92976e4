package api

import (
	"errors"
	"net/http"

	"grocery-be/internal/transport"
	"grocery-be/internal/upload"
)

// multipart overhead allowed on top of the file size limit
const formOverhead = 1 << 20

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, upload.MaxSize+formOverhead)

	file, _, err := r.FormFile("file")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			transport.WriteError(w, r, upload.ErrFileTooLarge)
			return
		}
		transport.WriteError(w, r, upload.ErrNoFile)
		return
	}
	defer file.Close()

	res, err := h.Uploads.Save(r.Context(), file)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusCreated, res)
}
