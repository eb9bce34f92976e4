package middleware

import (
	"context"
	"fmt"
	"net/http"

	"grocery-be/internal/apperr"
	"grocery-be/internal/logger"
	"grocery-be/internal/metrics"
	"grocery-be/internal/transport"

	"go.uber.org/zap"
)

// ModuleChecker answers entitlement checks. Implementations fail closed.
type ModuleChecker interface {
	IsModuleEnabled(ctx context.Context, moduleID string) bool
}

// RequireModule responds 403 unless moduleID is enabled.
func RequireModule(checker ModuleChecker, moduleID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !checker.IsModuleEnabled(r.Context(), moduleID) {
				metrics.Default.Counter(metrics.EntitlementDenials).Inc()
				logger.FromCtx(r.Context()).Info("module gate denied request",
					zap.String("module_id", moduleID),
					zap.String("path", r.URL.Path),
				)
				transport.WriteError(w, r, apperr.New(
					apperr.ErrForbidden,
					"module_disabled",
					fmt.Sprintf("module %s is not enabled", moduleID),
				))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
