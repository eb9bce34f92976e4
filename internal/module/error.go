package module

import "grocery-be/internal/apperr"

var (
	ErrUnknownModule = apperr.New(apperr.ErrNotFound, "module_not_found", "module not found")
	ErrNotPurchased  = apperr.New(apperr.ErrForbidden, "module_not_purchased", "module has not been purchased")
	ErrCoreModule    = apperr.New(apperr.ErrForbidden, "core_module_locked", "core modules cannot be disabled")
	ErrEmptySettings = apperr.Invalid("settings update must contain at least one key")
)
