package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/smartbundle/assistant/internal/domain/shoppinglist"
	"github.com/smartbundle/assistant/internal/ports/inbound"
)

// ListHandlers handles shopping list API requests
type ListHandlers struct {
	service inbound.AssistantService
	logger  *zap.Logger
}

// NewListHandlers creates a new list handlers instance
func NewListHandlers(service inbound.AssistantService, logger *zap.Logger) *ListHandlers {
	return &ListHandlers{
		service: service,
		logger:  logger,
	}
}

// ListResponse represents a shopping list in API responses
type ListResponse struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	ListType    string             `json:"list_type"`
	Description string             `json:"description,omitempty"`
	IsShared    bool               `json:"is_shared"`
	Items       []ListItemResponse `json:"items"`
	CreatedAt   time.Time          `json:"created_at"`
}

// ListItemResponse represents a shopping list item in API responses
type ListItemResponse struct {
	ID          uuid.UUID `json:"id"`
	CustomName  string    `json:"custom_name"`
	Quantity    int       `json:"quantity"`
	Priority    string    `json:"priority,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	IsCompleted bool      `json:"is_completed"`
}

// RecentLists handles GET /api/v1/lists
func (h *ListHandlers) RecentLists(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeErrorMessage(w, http.StatusBadRequest, "user_id is required")
		return
	}

	limit := parseLimit(r.URL.Query().Get("limit"), 20)

	lists, err := h.service.RecentLists(r.Context(), userID, limit)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	response := make([]ListResponse, 0, len(lists))
	for _, list := range lists {
		response = append(response, toListResponse(list))
	}

	writeJSON(w, http.StatusOK, response)
}

func toListResponse(list *shoppinglist.List) ListResponse {
	items := make([]ListItemResponse, 0, len(list.Items))
	for _, item := range list.Items {
		items = append(items, ListItemResponse{
			ID:          item.ID,
			CustomName:  item.CustomName,
			Quantity:    item.Quantity,
			Priority:    item.Priority,
			Notes:       item.Notes,
			IsCompleted: item.IsCompleted,
		})
	}
	return ListResponse{
		ID:          list.ID,
		Title:       list.Title,
		ListType:    list.ListType,
		Description: list.Description,
		IsShared:    list.IsShared,
		Items:       items,
		CreatedAt:   list.CreatedAt,
	}
}

// parseLimit parses a limit query parameter, falling back to a default
// and clamping nonsense values.
func parseLimit(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return fallback
	}
	if limit > 100 {
		return 100
	}
	return limit
}
