package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shareregistry/backoffice/internal/platform/httpx"
)

type contextKey struct{}

// ClaimsFromContext returns the claims RequireAuth stored, or nil.
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(contextKey{}).(*Claims)
	return claims
}

// WithClaims stores claims on ctx.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, contextKey{}, claims)
}

// RequireAuth rejects requests without a valid, unrevoked bearer token.
func RequireAuth(service *Service, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearer(r.Header.Get("Authorization"))
			if !ok {
				httpx.RespondError(w, unauthorized("missing bearer token"))
				return
			}
			claims, err := service.Verify(r.Context(), token)
			if err != nil {
				if httpx.StatusFor(err) == http.StatusInternalServerError {
					logger.Error("verify token", slog.Any("error", err))
				}
				httpx.RespondError(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func bearer(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
