// Package inbound defines the interfaces for inbound ports (primary/driving
// adapters). HTTP handlers depend on these rather than on concrete services.
package inbound

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
	"github.com/smartbundle/assistant/internal/domain/recommendation"
	"github.com/smartbundle/assistant/internal/domain/shoppinglist"
)

// AssistantService is the application boundary for the shopping assistant.
type AssistantService interface {
	// Query runs the full assistant pipeline for one request.
	Query(ctx context.Context, req QueryRequest) (*QueryResult, error)

	// RecentLists returns the caller's shopping lists, newest first.
	RecentLists(ctx context.Context, userID string, limit int) ([]*shoppinglist.List, error)

	// History returns the caller's stored recommendations, newest first.
	History(ctx context.Context, userID string, limit int) ([]*recommendation.Recommendation, error)

	// Rate sets the user rating on a stored recommendation.
	Rate(ctx context.Context, id uuid.UUID, rating int) error
}

// QueryRequest is the assistant query payload. ContextTag names the UI
// surface that issued the request and is carried for observability only.
type QueryRequest struct {
	Query      string `json:"query" validate:"required"`
	UserID     string `json:"user_id" validate:"required"`
	ContextTag string `json:"context,omitempty"`
}

// QueryResult is returned to the caller: the generated recommendation text
// plus the context that informed it.
type QueryResult struct {
	Recommendation string      `json:"recommendation"`
	Context        UserContext `json:"context"`
}

// UserContext is the assembled per-user context handed to the prompt
// renderer and echoed back in the response.
type UserContext struct {
	BudgetLimit         BudgetLimit   `json:"budget_limit"`
	HouseholdSize       int           `json:"household_size"`
	DietaryRestrictions []string      `json:"dietary_restrictions"`
	HealthPreferences   []string      `json:"health_preferences"`
	RecentShopping      []ListSummary `json:"recent_shopping"`
}

// ListSummary is the subset of a shopping list surfaced to the assistant.
type ListSummary struct {
	Title    string        `json:"title"`
	ListType string        `json:"list_type"`
	Items    []ListItemRef `json:"list_items"`
}

// ListItemRef carries an item's display name.
type ListItemRef struct {
	CustomName string `json:"custom_name"`
}

// BudgetLimit is a currency amount that may be unspecified. It marshals as
// the stored number, or as the literal string "Not specified" when the
// profile has no budget.
type BudgetLimit struct {
	Amount float64
	Set    bool
}

// NotSpecified is the documented default rendered for a missing budget.
const NotSpecified = "Not specified"

// MarshalJSON implements json.Marshaler.
func (b BudgetLimit) MarshalJSON() ([]byte, error) {
	if !b.Set {
		return json.Marshal(NotSpecified)
	}
	return json.Marshal(b.Amount)
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *BudgetLimit) UnmarshalJSON(data []byte) error {
	var amount float64
	if err := json.Unmarshal(data, &amount); err == nil {
		b.Amount = amount
		b.Set = true
		return nil
	}
	b.Amount = 0
	b.Set = false
	return nil
}

// String renders the budget for prompt interpolation.
func (b BudgetLimit) String() string {
	if !b.Set {
		return NotSpecified
	}
	return strconv.FormatFloat(b.Amount, 'f', -1, 64)
}
