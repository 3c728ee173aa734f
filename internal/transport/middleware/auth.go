package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/cycletrack-backend/internal/domain"
	"github.com/heartmarshall/cycletrack-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*domain.User, error)
}

type userCtxKey struct{}

// UserFromCtx returns the user resolved by SessionGate.
func UserFromCtx(ctx context.Context) (*domain.User, bool) {
	u, ok := ctx.Value(userCtxKey{}).(*domain.User)
	return u, ok && u != nil
}

// SessionGate requires a valid bearer token on every path that does not start
// with one of publicPrefixes. The resolved user and its id hash are stored in
// the request context.
func SessionGate(validator tokenValidator, publicPrefixes []string, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path, publicPrefixes) {
				next.ServeHTTP(w, r)
				return
			}

			token := extractBearerToken(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, codeUnauthorized, "missing bearer token")
				return
			}

			user, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					logger.DebugContext(r.Context(), "token rejected", slog.String("error", err.Error()))
					writeError(w, http.StatusUnauthorized, codeUnauthorized, "invalid or expired token")
					return
				}
				logger.ErrorContext(r.Context(), "token validation failed",
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					slog.String("error", err.Error()))
				writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
				return
			}

			noteUser(r.Context(), user.UserIDHash)
			ctx := ctxutil.WithUserIDHash(r.Context(), user.UserIDHash)
			ctx = context.WithValue(ctx, userCtxKey{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func isPublicPath(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// extractBearerToken returns "" unless the header is "Bearer <token>".
// The scheme is case-insensitive.
func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
