package gorm

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/smartbundle/assistant/internal/domain/profile"
	"github.com/smartbundle/assistant/internal/ports/outbound"
	apperrors "github.com/smartbundle/assistant/pkg/errors"
)

// ProfileRepository implements outbound.ProfileRepository using GORM
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new GORM-based profile repository
func NewProfileRepository(db *gorm.DB) outbound.ProfileRepository {
	return &ProfileRepository{db: db}
}

// FindByUserID loads a user's profile. A missing profile is not an
// error: callers fall back to defaults, so absence is reported through
// the boolean rather than a not-found error.
func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*profile.Profile, bool, error) {
	var model ProfileModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, apperrors.NewDependencyError("profile lookup", result.Error)
	}
	return ModelToProfile(&model), true, nil
}
