package gorm

import (
	"github.com/smartbundle/assistant/internal/domain/profile"
	"github.com/smartbundle/assistant/internal/domain/recommendation"
	"github.com/smartbundle/assistant/internal/domain/shoppinglist"
)

// ModelToProfile converts a profile row to the domain entity
func ModelToProfile(m *ProfileModel) *profile.Profile {
	return &profile.Profile{
		UserID:              m.UserID,
		FullName:            m.FullName,
		BudgetLimit:         m.BudgetLimit,
		HouseholdSize:       m.HouseholdSize,
		DietaryRestrictions: m.DietaryRestrictions,
		HealthPreferences:   m.HealthPreferences,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// ModelToList converts a list row with its items to the domain entity
func ModelToList(m *ListModel) *shoppinglist.List {
	list := &shoppinglist.List{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		ListType:    m.ListType,
		Description: m.Description,
		IsShared:    m.IsShared,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	for _, item := range m.Items {
		list.Items = append(list.Items, shoppinglist.Item{
			ID:          item.ID,
			ListID:      item.ListID,
			CustomName:  item.CustomName,
			Quantity:    item.Quantity,
			Priority:    item.Priority,
			Notes:       item.Notes,
			IsCompleted: item.IsCompleted,
			CreatedAt:   item.CreatedAt,
		})
	}
	return list
}

// RecommendationToModel converts the domain entity to a row
func RecommendationToModel(rec *recommendation.Recommendation) *RecommendationModel {
	return &RecommendationModel{
		ID:              rec.ID,
		UserID:          rec.UserID,
		Query:           rec.Query,
		AIReasoning:     rec.Reasoning,
		ConfidenceScore: rec.ConfidenceScore,
		UserRating:      rec.UserRating,
	}
}

// ModelToRecommendation converts a row to the domain entity
func ModelToRecommendation(m *RecommendationModel) *recommendation.Recommendation {
	return &recommendation.Recommendation{
		ID:              m.ID,
		UserID:          m.UserID,
		Query:           m.Query,
		Reasoning:       m.AIReasoning,
		ConfidenceScore: m.ConfidenceScore,
		UserRating:      m.UserRating,
		CreatedAt:       m.CreatedAt,
	}
}
