// Package assistant provides the application layer for the shopping
// assistant pipeline.
package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/smartbundle/assistant/internal/ports/inbound"
)

const systemPromptTemplate = `You are SmartBundle AI, an intelligent shopping assistant that helps users find the best deals and make smart shopping decisions.

User Context:
- Budget: %s
- Household Size: %d
- Dietary Restrictions: %s
- Health Preferences: %s
- Recent Shopping: %s

Your capabilities:
1. Product recommendations based on budget and preferences
2. Price comparison and deal finding
3. Bundle optimization for cost savings
4. Health and eco-friendly alternatives
5. Smart shopping list organization

Always provide:
- Specific product recommendations with estimated prices
- Money-saving tips and bundle deals
- Health/eco scores when relevant
- Reasoning for your recommendations
- Actionable next steps

Be helpful, concise, and focus on practical advice that saves money and time.`

// BuildSystemPrompt renders the fixed system instruction for the completion
// engine. It is a pure function of the assembled context: the same context
// always yields the same prompt.
func BuildSystemPrompt(uc inbound.UserContext) string {
	recentShopping, err := json.Marshal(uc.RecentShopping)
	if err != nil {
		// The context types only contain strings; marshaling cannot fail
		// for real inputs.
		recentShopping = []byte("[]")
	}

	return fmt.Sprintf(systemPromptTemplate,
		uc.BudgetLimit.String(),
		uc.HouseholdSize,
		joinOrNone(uc.DietaryRestrictions),
		joinOrNone(uc.HealthPreferences),
		recentShopping,
	)
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "None"
	}
	return strings.Join(values, ", ")
}
