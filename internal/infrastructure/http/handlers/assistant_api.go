// Package handlers provides HTTP handlers for assistant API endpoints
package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/smartbundle/assistant/internal/ports/inbound"
)

// AssistantHandlers handles assistant API requests
type AssistantHandlers struct {
	service inbound.AssistantService
	logger  *zap.Logger
}

// NewAssistantHandlers creates a new assistant handlers instance
func NewAssistantHandlers(service inbound.AssistantService, logger *zap.Logger) *AssistantHandlers {
	return &AssistantHandlers{
		service: service,
		logger:  logger,
	}
}

// Query handles POST /api/v1/assistant/query
func (h *AssistantHandlers) Query(w http.ResponseWriter, r *http.Request) {
	var req inbound.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if err := validate.Struct(req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "query and user_id are required")
		return
	}

	result, err := h.service.Query(r.Context(), req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
