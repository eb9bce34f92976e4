package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAccessToken(t *testing.T) {
	tests := []struct {
		name   string
		cookie *http.Cookie
		header string
		want   string
	}{
		{name: "cookie wins over header", cookie: &http.Cookie{Name: AccessTokenCookie, Value: "from-cookie"}, header: "Bearer from-header", want: "from-cookie"},
		{name: "bearer header", header: "Bearer from-header", want: "from-header"},
		{name: "scheme is case insensitive", header: "bearer from-header", want: "from-header"},
		{name: "empty cookie falls back", cookie: &http.Cookie{Name: AccessTokenCookie, Value: ""}, header: "Bearer from-header", want: "from-header"},
		{name: "other cookie ignored", cookie: &http.Cookie{Name: "session", Value: "x"}, want: ""},
		{name: "basic auth rejected", header: "Basic YWRtaW46cGFzcw==", want: ""},
		{name: "bare token rejected", header: "from-header", want: ""},
		{name: "nothing", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
			if tc.cookie != nil {
				req.AddCookie(tc.cookie)
			}
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			assert.Equal(t, tc.want, ExtractAccessToken(req))
		})
	}
}
