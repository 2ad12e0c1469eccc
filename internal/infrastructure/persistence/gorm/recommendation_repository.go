package gorm

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartbundle/assistant/internal/domain/recommendation"
	"github.com/smartbundle/assistant/internal/ports/outbound"
	apperrors "github.com/smartbundle/assistant/pkg/errors"
)

// RecommendationRepository implements outbound.RecommendationRepository using GORM
type RecommendationRepository struct {
	db *gorm.DB
}

// NewRecommendationRepository creates a new GORM-based recommendation repository
func NewRecommendationRepository(db *gorm.DB) outbound.RecommendationRepository {
	return &RecommendationRepository{db: db}
}

// Create stores a recommendation and backfills the generated ID and
// timestamp on the entity.
func (r *RecommendationRepository) Create(ctx context.Context, rec *recommendation.Recommendation) error {
	model := RecommendationToModel(rec)
	if result := r.db.WithContext(ctx).Create(model); result.Error != nil {
		return apperrors.NewPersistenceError("recommendation insert", result.Error)
	}
	rec.ID = model.ID
	rec.CreatedAt = model.CreatedAt
	return nil
}

// FindRecentByUserID returns the user's recommendation history, newest first.
func (r *RecommendationRepository) FindRecentByUserID(ctx context.Context, userID string, limit int) ([]*recommendation.Recommendation, error) {
	var models []RecommendationModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, apperrors.NewDependencyError("recommendation lookup", result.Error)
	}

	recs := make([]*recommendation.Recommendation, 0, len(models))
	for i := range models {
		recs = append(recs, ModelToRecommendation(&models[i]))
	}
	return recs, nil
}

// SetUserRating records the user's feedback on a recommendation.
func (r *RecommendationRepository) SetUserRating(ctx context.Context, id uuid.UUID, rating int) error {
	result := r.db.WithContext(ctx).
		Model(&RecommendationModel{}).
		Where("id = ?", id).
		Update("user_rating", rating)
	if result.Error != nil {
		return apperrors.NewDependencyError("recommendation rating update", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("recommendation")
	}
	return nil
}
