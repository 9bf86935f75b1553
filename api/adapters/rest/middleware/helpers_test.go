package middleware_test

import (
	"encoding/json"
	"keyword-index/api/core"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireErrorReply(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var reply core.ErrorReply
	require.NoError(t, json.NewDecoder(w.Body).Decode(&reply))
	require.Equal(t, http.StatusText(status), reply.Error)
}
