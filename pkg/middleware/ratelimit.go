package middleware

import (
	"net/http"
	"strconv"

	"cinema-reservation/pkg/ratelimit"
	"cinema-reservation/pkg/utils"

	"go.uber.org/zap"
)

// RateLimit caps requests per authenticated user. A nil limiter disables it.
// Redis failures let the request through.
func RateLimit(limiter *ratelimit.Limiter, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.RemoteAddr
			if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
				key = userID.String()
			}

			allowed, err := limiter.Allow(r.Context(), key)
			if err != nil {
				logger.Warn("Rate limiter unavailable", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				w.Header().Set("Retry-After", strconv.Itoa(int(limiter.Window().Seconds())))
				utils.ResponseTooManyRequests(w, "Too many requests, try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
