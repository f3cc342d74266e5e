// Package handlers provides the HTTP request handlers for the assistant
// API: the chat endpoint, catalog lookups, and health.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/peacematcher/assistant-api/logging"
)

// ErrorResponse is the uniform error body. Details is a list of field errors
// for validation failures and a plain string otherwise.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// RespondWithJSON writes a JSON response.
func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
	w.WriteHeader(code)
	if _, err := w.Write(data); err != nil {
		logging.Error("Failed to write response", "error", err)
	}
}

// RespondWithError writes a JSON error body.
func RespondWithError(w http.ResponseWriter, code int, message string, details any) {
	RespondWithJSON(w, code, ErrorResponse{Error: message, Details: details})
}
