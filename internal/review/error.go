package review

import "grocery-be/internal/apperr"

var (
	ErrReviewNotFound  = apperr.New(apperr.ErrNotFound, "review_not_found", "review not found")
	ErrProductNotFound = apperr.New(apperr.ErrNotFound, "product_not_found", "product not found")
	ErrInvalidRating   = apperr.New(apperr.ErrInvalidInput, "invalid_rating", "rating must be between 1 and 5")
	ErrEmptyName       = apperr.New(apperr.ErrInvalidInput, "invalid_name", "name is required")
	ErrCommentTooLong  = apperr.New(apperr.ErrInvalidInput, "comment_too_long", "comment must be at most 2000 characters")
)
