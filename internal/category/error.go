package category

import "grocery-be/internal/apperr"

var (
	ErrCategoryNotFound = apperr.New(apperr.ErrNotFound, "category_not_found", "category not found")
	ErrEmptyName        = apperr.New(apperr.ErrInvalidInput, "invalid_name", "category name cannot be empty")
	ErrDuplicateSlug    = apperr.New(apperr.ErrInvalidInput, "duplicate_slug", "a category with this name already exists")
	ErrCategoryInUse    = apperr.New(apperr.ErrInvalidInput, "category_in_use", "category still has products")
)
