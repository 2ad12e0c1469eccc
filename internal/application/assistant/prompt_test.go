package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smartbundle/assistant/internal/ports/inbound"
)

func TestBuildSystemPrompt(t *testing.T) {
	t.Run("FullContext_InterpolatesAllFields", func(t *testing.T) {
		uc := inbound.UserContext{
			BudgetLimit:         inbound.BudgetLimit{Amount: 400, Set: true},
			HouseholdSize:       3,
			DietaryRestrictions: []string{"vegetarian", "gluten-free"},
			HealthPreferences:   []string{"eco-friendly"},
			RecentShopping: []inbound.ListSummary{
				{
					Title:    "Weekly Groceries",
					ListType: "grocery",
					Items:    []inbound.ListItemRef{{CustomName: "Oat milk"}},
				},
			},
		}

		prompt := BuildSystemPrompt(uc)

		assert.Contains(t, prompt, "You are SmartBundle AI")
		assert.Contains(t, prompt, "Budget: 400")
		assert.Contains(t, prompt, "Household Size: 3")
		assert.Contains(t, prompt, "Dietary Restrictions: vegetarian, gluten-free")
		assert.Contains(t, prompt, "Health Preferences: eco-friendly")
		assert.Contains(t, prompt, `"title":"Weekly Groceries"`)
		assert.Contains(t, prompt, `"custom_name":"Oat milk"`)
		assert.Contains(t, prompt, "Bundle optimization for cost savings")
	})

	t.Run("EmptyContext_RendersDefaults", func(t *testing.T) {
		uc := inbound.UserContext{
			HouseholdSize:       1,
			DietaryRestrictions: []string{},
			HealthPreferences:   []string{},
			RecentShopping:      []inbound.ListSummary{},
		}

		prompt := BuildSystemPrompt(uc)

		assert.Contains(t, prompt, "Budget: Not specified")
		assert.Contains(t, prompt, "Household Size: 1")
		assert.Contains(t, prompt, "Dietary Restrictions: None")
		assert.Contains(t, prompt, "Health Preferences: None")
		assert.Contains(t, prompt, "Recent Shopping: []")
	})

	t.Run("FractionalBudget_RendersPlainNumber", func(t *testing.T) {
		uc := inbound.UserContext{
			BudgetLimit:    inbound.BudgetLimit{Amount: 99.5, Set: true},
			HouseholdSize:  2,
			RecentShopping: []inbound.ListSummary{},
		}

		prompt := BuildSystemPrompt(uc)

		assert.Contains(t, prompt, "Budget: 99.5")
	})

	t.Run("SameContext_SamePrompt", func(t *testing.T) {
		uc := inbound.UserContext{
			BudgetLimit:    inbound.BudgetLimit{Amount: 250, Set: true},
			HouseholdSize:  4,
			RecentShopping: []inbound.ListSummary{},
		}

		assert.Equal(t, BuildSystemPrompt(uc), BuildSystemPrompt(uc))
	})
}
