package menu

import "grocery-be/internal/apperr"

var (
	ErrMenuNotFound    = apperr.New(apperr.ErrNotFound, "menu_not_found", "menu not found")
	ErrEmptyName       = apperr.New(apperr.ErrInvalidInput, "invalid_name", "menu name cannot be empty")
	ErrInvalidLocation = apperr.New(apperr.ErrInvalidInput, "invalid_location", "location must be one of header, footer, sidebar")
	ErrInvalidItem     = apperr.New(apperr.ErrInvalidInput, "invalid_item", "every menu item needs a label and url")
	ErrTooDeep         = apperr.New(apperr.ErrInvalidInput, "menu_too_deep", "menu items nest at most 3 levels")
)
