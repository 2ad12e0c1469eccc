// Package recommendation contains the recommendation entity produced by
// the assistant pipeline.
package recommendation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Domain validation errors
var (
	ErrMissingUser   = errors.New("recommendation requires a user identifier")
	ErrEmptyQuery    = errors.New("recommendation requires a non-empty query")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// DefaultConfidence is the placeholder confidence score assigned to new
// recommendations. The completion engine in use does not expose its own
// confidence, so the score is a fixed constant.
const DefaultConfidence = 0.85

// Recommendation is one assistant invocation: the user's query and the
// generated reasoning. Rows are written once and never updated by the
// pipeline; the user rating is set by separate product functionality.
type Recommendation struct {
	ID              uuid.UUID
	UserID          string
	Query           string
	Reasoning       string
	ConfidenceScore float64
	UserRating      *int
	CreatedAt       time.Time
}

// New creates a recommendation for a completed assistant invocation.
// A valid user identifier and a non-empty query are required before the
// store will accept the row.
func New(userID, query, reasoning string) (*Recommendation, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingUser
	}
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	return &Recommendation{
		ID:              uuid.New(),
		UserID:          userID,
		Query:           query,
		Reasoning:       reasoning,
		ConfidenceScore: DefaultConfidence,
	}, nil
}

// ValidateRating checks a user-supplied rating value.
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	return nil
}
