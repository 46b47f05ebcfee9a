package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
)

// apiResponse is the envelope rendered by every JSON endpoint. Code
// mirrors the business outcome and usually matches the HTTP status;
// the empty-catalog marker is the one exception.
type apiResponse struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeResponse(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, apiResponse{Code: status, Message: message, Data: data})
}

func writeError(w http.ResponseWriter, status int, message string, details ...string) {
	writeJSON(w, status, apiResponse{Code: status, Message: message, Errors: details})
}

func writeMethodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
