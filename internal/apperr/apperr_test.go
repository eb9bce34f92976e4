package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"invalid", Invalid("name is required"), http.StatusBadRequest},
		{"not found coded", New(ErrNotFound, "order_not_found", "order not found"), http.StatusNotFound},
		{"forbidden wrapped", fmt.Errorf("enable: %w", New(ErrForbidden, "module_not_purchased", "x")), http.StatusForbidden},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"plain", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestCode(t *testing.T) {
	assert.Equal(t, "module_not_purchased", Code(New(ErrForbidden, "module_not_purchased", "module not purchased")))
	assert.Equal(t, "not_found", Code(fmt.Errorf("%w: menu", ErrNotFound)))
	assert.Equal(t, "internal_error", Code(errors.New("boom")))
}
