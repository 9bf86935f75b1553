package middleware_test

import (
	"bytes"
	"keyword-index/api/adapters/rest"
	"keyword-index/api/adapters/rest/middleware"
	"keyword-index/api/core"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPanicRecovery(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	handler := middleware.PanicRecovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("stemmer exploded")
	}), log)

	req := httptest.NewRequest(http.MethodPost, "/api/keywords", nil)
	w := httptest.NewRecorder()

	require.NotPanics(t, func() { handler.ServeHTTP(w, req) })
	requireErrorReply(t, w, http.StatusInternalServerError)
	require.Contains(t, buf.String(), "panic recovered")
	require.Contains(t, buf.String(), "stemmer exploded")
	require.Contains(t, buf.String(), "path=/api/keywords")
}

func TestLogging(t *testing.T) {
	testCases := []struct {
		desc     string
		body     string
		prepare  func(*core.MockExtractor)
		expected []string
	}{
		{
			desc: "keywords served",
			body: `{"text":"meet meets"}`,
			prepare: func(e *core.MockExtractor) {
				e.EXPECT().Extract(gomock.Any(), "meet meets").
					Return([]core.Keyword{{Stem: "meet", Terms: []string{"meet", "meets"}, Frequency: 2}}, nil)
			},
			expected: []string{"level=INFO", "method=POST", "path=/api/keywords", "status=200", "request_bytes=21"},
		},
		{
			desc: "indexer failure logged as warning",
			body: `{"text":"meet"}`,
			prepare: func(e *core.MockExtractor) {
				e.EXPECT().Extract(gomock.Any(), "meet").Return(nil, core.ErrServiceUnavailable)
			},
			expected: []string{"level=WARN", "status=503", "request_bytes=15"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			var buf bytes.Buffer
			log := slog.New(slog.NewTextHandler(&buf, nil))

			ctrl := gomock.NewController(t)
			extractor := core.NewMockExtractor(ctrl)
			tc.prepare(extractor)

			handler := middleware.Logging(rest.NewKeywordsHandler(slog.Default(), extractor), log)

			req := httptest.NewRequest(http.MethodPost, "/api/keywords", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			for _, part := range tc.expected {
				require.Contains(t, buf.String(), part)
			}
			require.Contains(t, buf.String(), "reply_bytes="+strconv.Itoa(w.Body.Len()))
		})
	}
}
