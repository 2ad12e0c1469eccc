// Package outbound defines the interfaces for outbound ports (secondary/driven
// adapters). These are the interfaces the application uses to reach the data
// store and the completion engine.
package outbound

import (
	"context"

	"github.com/google/uuid"
	"github.com/smartbundle/assistant/internal/domain/profile"
	"github.com/smartbundle/assistant/internal/domain/recommendation"
	"github.com/smartbundle/assistant/internal/domain/shoppinglist"
)

// ProfileRepository reads stored user profiles.
//
// FindByUserID distinguishes soft absence from genuine failure: a user with
// no profile row yields (nil, false, nil), never an error. A non-nil error
// means the store itself failed.
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*profile.Profile, bool, error)
}

// ShoppingListRepository reads stored shopping lists.
type ShoppingListRepository interface {
	// FindRecentByUserID returns up to limit lists for the user, ordered by
	// creation time descending, each with its nested items. A user with no
	// lists yields an empty slice, not an error.
	FindRecentByUserID(ctx context.Context, userID string, limit int) ([]*shoppinglist.List, error)
}

// RecommendationRepository persists assistant invocations.
type RecommendationRepository interface {
	Create(ctx context.Context, rec *recommendation.Recommendation) error
	FindRecentByUserID(ctx context.Context, userID string, limit int) ([]*recommendation.Recommendation, error)
	SetUserRating(ctx context.Context, id uuid.UUID, rating int) error
}

// CompletionEngine is the external text-generation service. Complete sends
// the rendered system instruction and the raw user query, and returns the
// engine's textual output verbatim.
type CompletionEngine interface {
	Complete(ctx context.Context, systemPrompt, userQuery string) (string, error)
}
