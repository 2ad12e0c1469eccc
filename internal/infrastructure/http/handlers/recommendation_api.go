package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/smartbundle/assistant/internal/ports/inbound"
)

// RecommendationHandlers handles recommendation history API requests
type RecommendationHandlers struct {
	service inbound.AssistantService
	logger  *zap.Logger
}

// NewRecommendationHandlers creates a new recommendation handlers instance
func NewRecommendationHandlers(service inbound.AssistantService, logger *zap.Logger) *RecommendationHandlers {
	return &RecommendationHandlers{
		service: service,
		logger:  logger,
	}
}

// RecommendationResponse represents a stored recommendation in API responses
type RecommendationResponse struct {
	ID              uuid.UUID `json:"id"`
	Query           string    `json:"query"`
	AIReasoning     string    `json:"ai_reasoning"`
	ConfidenceScore float64   `json:"confidence_score"`
	UserRating      *int      `json:"user_rating"`
	CreatedAt       time.Time `json:"created_at"`
}

// RateRequest is the rating payload
type RateRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

// History handles GET /api/v1/recommendations
func (h *RecommendationHandlers) History(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeErrorMessage(w, http.StatusBadRequest, "user_id is required")
		return
	}

	limit := parseLimit(r.URL.Query().Get("limit"), 20)

	recs, err := h.service.History(r.Context(), userID, limit)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	response := make([]RecommendationResponse, 0, len(recs))
	for _, rec := range recs {
		response = append(response, RecommendationResponse{
			ID:              rec.ID,
			Query:           rec.Query,
			AIReasoning:     rec.Reasoning,
			ConfidenceScore: rec.ConfidenceScore,
			UserRating:      rec.UserRating,
			CreatedAt:       rec.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, response)
}

// Rate handles POST /api/v1/recommendations/{id}/rating
func (h *RecommendationHandlers) Rate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "Invalid recommendation id")
		return
	}

	var req RateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if err := validate.Struct(req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	if err := h.service.Rate(r.Context(), id, req.Rating); err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
