package json

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Write serializes v as the JSON response body with the given status code.
// Encoding failures after the header is written can only be logged.
func Write(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding JSON response", "error", err)
	}
}
