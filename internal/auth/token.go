package auth

import (
	"net/http"
	"strings"
)

// AccessTokenCookie is the HttpOnly cookie set on admin login.
const AccessTokenCookie = "access_token"

// ExtractAccessToken reads the admin token from the login cookie, falling
// back to an "Authorization: Bearer" header for API clients.
func ExtractAccessToken(r *http.Request) string {
	if c, err := r.Cookie(AccessTokenCookie); err == nil && c.Value != "" {
		return c.Value
	}

	scheme, token, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
