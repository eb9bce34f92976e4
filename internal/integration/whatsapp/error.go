package whatsapp

import "grocery-be/internal/apperr"

var (
	ErrInvalidPhone  = apperr.New(apperr.ErrInvalidInput, "invalid_phone", "recipient phone number is invalid")
	ErrEmptyMessage  = apperr.New(apperr.ErrInvalidInput, "empty_message", "message cannot be empty")
	ErrNoRecipients  = apperr.New(apperr.ErrInvalidInput, "no_recipients", "at least one recipient is required")
	ErrTooManyPeople = apperr.New(apperr.ErrInvalidInput, "too_many_recipients", "a broadcast can reach at most 500 recipients")
)
