package fraudcheck

import "grocery-be/internal/apperr"

var ErrInvalidPhone = apperr.New(apperr.ErrInvalidInput, "invalid_phone", "phone must be a valid 11 digit mobile number")
