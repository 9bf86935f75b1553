package middleware_test

import (
	"context"
	"keyword-index/api/adapters/rest"
	"keyword-index/api/adapters/rest/middleware"
	"keyword-index/api/core"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func termsHandler(t *testing.T, limiter *middleware.RateLimiter) http.Handler {
	t.Helper()
	ctrl := gomock.NewController(t)
	extractor := core.NewMockExtractor(ctrl)
	extractor.EXPECT().Terms(gomock.Any(), "go going").Return([]string{"go", "going"}, nil).AnyTimes()
	return limiter.Limit(rest.NewTermsHandler(slog.Default(), extractor))
}

func termsRequest(ctx context.Context) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/api/terms", strings.NewReader(`{"text":"go going"}`)).WithContext(ctx)
}

func TestRateLimitTerms(t *testing.T) {
	testCases := []struct {
		desc     string
		rps      int
		requests int
	}{
		{desc: "requests under the rate", rps: 10, requests: 5},
		{desc: "requests over the rate", rps: 5, requests: 10},
		{desc: "requests at the rate", rps: 50, requests: 50},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			handler := termsHandler(t, middleware.NewRateLimiter(slog.Default(), "terms", tc.rps))

			var wg sync.WaitGroup
			var served atomic.Int32

			start := time.Now()
			for range tc.requests {
				wg.Go(func() {
					w := httptest.NewRecorder()
					handler.ServeHTTP(w, termsRequest(context.Background()))
					if w.Code == http.StatusOK {
						served.Add(1)
					}
				})
			}
			wg.Wait()

			require.Equal(t, tc.requests, int(served.Load()))
			actualRPS := float64(served.Load()) / time.Since(start).Seconds()
			require.LessOrEqual(t, actualRPS, float64(tc.rps)*1.3)
		})
	}
}

func TestRateLimitTermsRejects(t *testing.T) {
	testCases := []struct {
		desc string
		rps  int
	}{
		{desc: "zero rate", rps: 0},
		{desc: "negative rate", rps: -1},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			handler := termsHandler(t, middleware.NewRateLimiter(slog.Default(), "terms", tc.rps))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, termsRequest(context.Background()))

			requireErrorReply(t, w, http.StatusTooManyRequests)
			require.Equal(t, "1", w.Header().Get("Retry-After"))
		})
	}
}

func TestRateLimitTermsDeadline(t *testing.T) {
	handler := termsHandler(t, middleware.NewRateLimiter(slog.Default(), "terms", 1))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, termsRequest(context.Background()))
	require.Equal(t, http.StatusOK, w.Code)

	// the next token is a second away, past this request's deadline
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, termsRequest(ctx))
	requireErrorReply(t, w, http.StatusTooManyRequests)

	ctx, cancel = context.WithCancel(context.Background())
	cancel()
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, termsRequest(ctx))
	requireErrorReply(t, w, http.StatusRequestTimeout)
}
