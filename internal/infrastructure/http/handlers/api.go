// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apperrors "github.com/smartbundle/assistant/pkg/errors"
)

// validate checks request payloads against their struct tags
var validate = validator.New()

// errorResponse is the wire shape for all error replies
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError maps an application error onto its HTTP status and the
// single-field error body callers expect.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	appErr := apperrors.Wrap(err, "request failed")
	status := appErr.StatusCode()

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", zap.String("code", string(appErr.Code)), zap.Error(err))
	}

	// Caller errors carry their detail; server errors stay opaque.
	message := appErr.Message
	if status < http.StatusInternalServerError && appErr.Details != "" {
		message = appErr.Message + ": " + appErr.Details
	}

	writeJSON(w, status, errorResponse{Error: message})
}

// writeErrorMessage writes an error body with an explicit status and message
func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
