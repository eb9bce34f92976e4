package settings

import "grocery-be/internal/apperr"

var (
	ErrInvalidTaxRate  = apperr.New(apperr.ErrInvalidInput, "invalid_tax_rate", "tax rate must be between 0 and 100")
	ErrNegativeFee     = apperr.New(apperr.ErrInvalidInput, "invalid_fee", "delivery fee and threshold must not be negative")
	ErrEmptySiteName   = apperr.New(apperr.ErrInvalidInput, "invalid_site_name", "site name cannot be empty")
	ErrNothingToUpdate = apperr.New(apperr.ErrInvalidInput, "empty_update", "no settings fields provided")
)
