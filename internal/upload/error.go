package upload

import "grocery-be/internal/apperr"

var (
	ErrNoFile          = apperr.New(apperr.ErrInvalidInput, "file_required", "multipart field \"file\" is required")
	ErrFileTooLarge    = apperr.New(apperr.ErrInvalidInput, "file_too_large", "file must be at most 5 MiB")
	ErrUnsupportedType = apperr.New(apperr.ErrInvalidInput, "unsupported_file_type", "only jpeg, png, webp and gif images are allowed")
)
