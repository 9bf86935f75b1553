package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"
)

type recorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *recorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *recorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

func (r *recorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// Logging records one line per request with the reply status and the body
// sizes in both directions. Server errors are logged as warnings.
func Logging(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &recorder{ResponseWriter: w}
		next.ServeHTTP(rec, req)

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}
		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.Log(req.Context(), level, "request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", status,
			"request_bytes", req.ContentLength,
			"reply_bytes", rec.bytes,
			"duration", time.Since(start),
		)
	})
}

func PanicRecovery(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("panic recovered",
					"error", err,
					"method", req.Method,
					"path", req.URL.Path,
					"stack", string(debug.Stack()),
				)
				writeStatus(w, http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, req)
	})
}
