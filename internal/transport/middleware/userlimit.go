package middleware

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/cycletrack-backend/pkg/ctxutil"
)

type windowLimiter interface {
	Allow(ctx context.Context, key string, now time.Time) (bool, time.Duration, error)
}

// UserRateLimit limits authenticated requests per user_id_hash. It must run
// after SessionGate. If the limiter backend fails the request is let through.
func UserRateLimit(limiter windowLimiter, clock clockwork.Clock, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userIDHash, ok := ctxutil.UserIDHashFromCtx(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			allowed, retry, err := limiter.Allow(r.Context(), userIDHash, clock.Now())
			if err != nil {
				logger.WarnContext(r.Context(), "user rate limiter unavailable",
					slog.String("user_id_hash", userIDHash),
					slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retry.Seconds()))))
				writeError(w, http.StatusTooManyRequests, codeRateLimited, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
