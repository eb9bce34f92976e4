package transaction

import "grocery-be/internal/apperr"

var (
	ErrTransactionNotFound = apperr.New(apperr.ErrNotFound, "transaction_not_found", "transaction not found")
	ErrInvalidType         = apperr.New(apperr.ErrInvalidInput, "invalid_type", "type must be income or expense")
	ErrInvalidAmount       = apperr.New(apperr.ErrInvalidInput, "invalid_amount", "amount must be greater than zero")
	ErrEmptyCategory       = apperr.New(apperr.ErrInvalidInput, "invalid_category", "category is required")
	ErrInvalidDate         = apperr.New(apperr.ErrInvalidInput, "invalid_date", "date must be YYYY-MM-DD or RFC3339")
)
