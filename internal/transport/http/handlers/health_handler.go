package handlers

import (
	"net/http"
	"time"

	pkgjson "github.com/ankitkandwal-git/publication-Research-Journal/pkg/json"
)

type healthResponse struct {
	Message   string `json:"message"`
	Method    string `json:"method"`
	Timestamp string `json:"timestamp"`
}

// Health is the probe the SPA pings to check the API is reachable.
func (h *HTTPHandlers) Health(w http.ResponseWriter, r *http.Request) {
	pkgjson.Write(w, http.StatusOK, healthResponse{
		Message:   "API is working!",
		Method:    r.Method,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
