package product

import "grocery-be/internal/apperr"

var (
	ErrProductNotFound  = apperr.New(apperr.ErrNotFound, "product_not_found", "product not found")
	ErrEmptyName        = apperr.New(apperr.ErrInvalidInput, "invalid_name", "product name cannot be empty")
	ErrNegativePrice    = apperr.New(apperr.ErrInvalidInput, "invalid_price", "price must not be negative")
	ErrNegativeStock    = apperr.New(apperr.ErrInvalidInput, "invalid_stock", "stock must not be negative")
	ErrDuplicateSlug    = apperr.New(apperr.ErrInvalidInput, "duplicate_slug", "a product with this name already exists")
	ErrCategoryNotFound = apperr.New(apperr.ErrInvalidInput, "invalid_category", "category does not exist")
)
