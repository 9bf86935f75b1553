package middleware

import (
	"log/slog"
	"net/http"
)

// ConcurrencyLimiter bounds the in-flight requests of one route. A request
// arriving while every slot is taken is answered 503 at once, never queued.
type ConcurrencyLimiter struct {
	log   *slog.Logger
	route string
	slots chan struct{}
}

func NewConcurrencyLimiter(log *slog.Logger, route string, concurrency int) *ConcurrencyLimiter {
	return &ConcurrencyLimiter{
		log:   log,
		route: route,
		slots: make(chan struct{}, max(concurrency, 1)),
	}
}

func (cl *ConcurrencyLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case cl.slots <- struct{}{}:
		default:
			cl.log.Debug("route busy, request rejected", "route", cl.route, "in_flight", cap(cl.slots))
			w.Header().Set("Retry-After", "1")
			writeStatus(w, http.StatusServiceUnavailable)
			return
		}
		defer func() { <-cl.slots }()
		next.ServeHTTP(w, r)
	})
}
