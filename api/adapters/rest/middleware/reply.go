package middleware

import (
	"encoding/json"
	"keyword-index/api/core"
	"net/http"
)

// writeStatus answers with the same JSON error body the gateway handlers use.
func writeStatus(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(core.ErrorReply{Error: http.StatusText(status)})
}
