package courier

import "grocery-be/internal/apperr"

var (
	ErrMissingReference = apperr.New(apperr.ErrInvalidInput, "missing_reference",
		"one of consignmentId, trackingCode or invoice is required")
	ErrAlreadyShipped    = apperr.New(apperr.ErrInvalidInput, "already_shipped", "order already has a consignment")
	ErrOrderNotShippable = apperr.New(apperr.ErrInvalidInput, "order_not_shippable", "cancelled or delivered orders cannot be shipped")
	ErrRejected          = apperr.New(apperr.ErrInvalidInput, "courier_rejected", "courier rejected the consignment")
	ErrInvalidToken      = apperr.New(apperr.ErrUnauthorized, "invalid_webhook_token", "invalid webhook token")
)
