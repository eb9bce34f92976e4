package cart

import "grocery-be/internal/apperr"

var (
	ErrInvalidSession     = apperr.New(apperr.ErrInvalidInput, "invalid_session", "cart session id must be a uuid")
	ErrInvalidQuantity    = apperr.New(apperr.ErrInvalidInput, "invalid_quantity", "quantity must be at least 1")
	ErrInvalidProduct     = apperr.New(apperr.ErrInvalidInput, "invalid_product", "productId must be a numeric id")
	ErrProductUnavailable = apperr.New(apperr.ErrInvalidInput, "product_unavailable", "product is not available")
	ErrInsufficientStock  = apperr.New(apperr.ErrInvalidInput, "insufficient_stock", "not enough stock for requested quantity")
	ErrCartItemNotFound   = apperr.New(apperr.ErrNotFound, "cart_item_not_found", "cart item not found")
)
