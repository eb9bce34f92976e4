package order

import "grocery-be/internal/apperr"

var (
	ErrOrderNotFound       = apperr.New(apperr.ErrNotFound, "order_not_found", "order not found")
	ErrInvalidStatus       = apperr.New(apperr.ErrInvalidInput, "invalid_status", "status must be one of pending, processing, shipped, delivered, cancelled")
	ErrEmptyOrder          = apperr.New(apperr.ErrInvalidInput, "empty_order", "order must contain at least one item")
	ErrInvalidQuantity     = apperr.New(apperr.ErrInvalidInput, "invalid_quantity", "item quantity must be at least 1")
	ErrInvalidProduct      = apperr.New(apperr.ErrInvalidInput, "invalid_product", "productId must be a numeric id")
	ErrProductUnavailable  = apperr.New(apperr.ErrInvalidInput, "product_unavailable", "one or more products are not available")
	ErrInsufficientStock   = apperr.New(apperr.ErrInvalidInput, "insufficient_stock", "not enough stock for one or more items")
	ErrMissingCustomerInfo = apperr.New(apperr.ErrInvalidInput, "missing_customer_info", "customer name, phone and address are required")
	ErrInvalidPhone        = apperr.New(apperr.ErrInvalidInput, "invalid_phone", "customer phone must be a valid mobile number")
	ErrNoIDs               = apperr.New(apperr.ErrInvalidInput, "empty_ids", "at least one order id is required")
)
