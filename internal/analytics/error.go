package analytics

import "grocery-be/internal/apperr"

var (
	ErrInvalidDays = apperr.New(apperr.ErrInvalidInput, "invalid_days", "days must be between 1 and 365")
	ErrInvalidTop  = apperr.New(apperr.ErrInvalidInput, "invalid_top", "top must be a positive integer")
)
