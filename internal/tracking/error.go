package tracking

import "grocery-be/internal/apperr"

var (
	ErrInvalidEventType = apperr.New(apperr.ErrInvalidInput, "invalid_event_type",
		"eventType must be one of page_view, click, purchase, add_to_cart, remove_from_cart, search, custom")
	ErrMetadataTooLarge = apperr.New(apperr.ErrInvalidInput, "metadata_too_large", "metadata must have at most 50 keys")
	ErrInvalidDays      = apperr.New(apperr.ErrInvalidInput, "invalid_days", "days must be between 1 and 365")
)
