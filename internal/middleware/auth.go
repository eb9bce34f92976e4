package middleware

import (
	"net/http"

	"grocery-be/internal/auth"
	"grocery-be/internal/logger"
	"grocery-be/internal/transport"

	"go.uber.org/zap"
)

// TokenParser validates an admin access token.
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// RequireAdmin rejects requests without a valid admin token.
func RequireAdmin(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := parser.Parse(auth.ExtractAccessToken(r))
			if err != nil {
				transport.WriteError(w, r, err)
				return
			}

			ctx := auth.WithClaims(r.Context(), claims)
			ctx = logger.With(ctx, zap.String("admin", claims.Username))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
