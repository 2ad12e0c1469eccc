package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/smartbundle/assistant/internal/domain/shoppinglist"
	"github.com/smartbundle/assistant/internal/ports/outbound"
	apperrors "github.com/smartbundle/assistant/pkg/errors"
)

// ShoppingListRepository implements outbound.ShoppingListRepository using GORM
type ShoppingListRepository struct {
	db *gorm.DB
}

// NewShoppingListRepository creates a new GORM-based shopping list repository
func NewShoppingListRepository(db *gorm.DB) outbound.ShoppingListRepository {
	return &ShoppingListRepository{db: db}
}

// FindRecentByUserID returns the user's most recent lists, newest
// first, with items preloaded. An empty result is a valid outcome.
func (r *ShoppingListRepository) FindRecentByUserID(ctx context.Context, userID string, limit int) ([]*shoppinglist.List, error) {
	var models []ListModel
	result := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, apperrors.NewDependencyError("shopping list lookup", result.Error)
	}

	lists := make([]*shoppinglist.List, 0, len(models))
	for i := range models {
		lists = append(lists, ModelToList(&models[i]))
	}
	return lists, nil
}
