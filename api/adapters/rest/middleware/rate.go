package middleware

import (
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimiter admits rps requests per second on one route with a burst of one.
// Requests wait for their turn; those that cannot get one before their
// deadline are answered 429, those whose client went away 408.
type RateLimiter struct {
	log     *slog.Logger
	route   string
	limiter *rate.Limiter
}

// NewRateLimiter returns a limiter that rejects every request when rps is not positive.
func NewRateLimiter(log *slog.Logger, route string, rps int) *RateLimiter {
	burst := 1
	if rps <= 0 {
		burst = 0
	}
	return &RateLimiter{
		log:     log,
		route:   route,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := rl.limiter.Wait(r.Context()); err != nil {
			if r.Context().Err() != nil {
				writeStatus(w, http.StatusRequestTimeout)
				return
			}
			rl.log.Debug("rate exceeded, request rejected", "route", rl.route, "error", err)
			w.Header().Set("Retry-After", "1")
			writeStatus(w, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
