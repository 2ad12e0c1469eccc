// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/smartbundle/assistant/internal/domain/profile"
	"github.com/smartbundle/assistant/internal/domain/recommendation"
	"github.com/smartbundle/assistant/internal/domain/shoppinglist"
)

// ProfileFactory provides methods to create test profiles
type ProfileFactory struct {
	faker *gofakeit.Faker
}

// NewProfileFactory creates a new profile factory with seeded faker
func NewProfileFactory(seed int64) *ProfileFactory {
	return &ProfileFactory{faker: gofakeit.New(seed)}
}

// CreateProfile creates a profile with realistic random data
func (f *ProfileFactory) CreateProfile() *profile.Profile {
	budget := f.faker.Price(50, 1000)
	return &profile.Profile{
		UserID:              uuid.NewString(),
		FullName:            f.faker.Name(),
		BudgetLimit:         &budget,
		HouseholdSize:       f.faker.Number(1, 6),
		DietaryRestrictions: f.dietarySample(),
		HealthPreferences:   f.healthSample(),
	}
}

// CreateBareProfile creates a profile with no budget, restrictions, or
// preferences, for exercising default handling.
func (f *ProfileFactory) CreateBareProfile() *profile.Profile {
	return &profile.Profile{
		UserID:        uuid.NewString(),
		FullName:      f.faker.Name(),
		HouseholdSize: profile.DefaultHouseholdSize,
	}
}

func (f *ProfileFactory) dietarySample() []string {
	options := []string{"vegetarian", "vegan", "gluten-free", "dairy-free", "halal", "kosher"}
	return f.pick(options, f.faker.Number(0, 2))
}

func (f *ProfileFactory) healthSample() []string {
	options := []string{"low-sodium", "low-sugar", "high-protein", "organic", "eco-friendly"}
	return f.pick(options, f.faker.Number(0, 2))
}

func (f *ProfileFactory) pick(options []string, n int) []string {
	picked := make([]string, 0, n)
	for i := 0; i < n && i < len(options); i++ {
		picked = append(picked, options[f.faker.Number(0, len(options)-1)])
	}
	return picked
}

// ListFactory provides methods to create test shopping lists
type ListFactory struct {
	faker *gofakeit.Faker
}

// NewListFactory creates a new list factory with seeded faker
func NewListFactory(seed int64) *ListFactory {
	return &ListFactory{faker: gofakeit.New(seed)}
}

// CreateList creates a shopping list owned by the given user with the
// requested number of items.
func (f *ListFactory) CreateList(userID string, itemCount int) *shoppinglist.List {
	list := &shoppinglist.List{
		ID:       uuid.New(),
		UserID:   userID,
		Title:    f.faker.ProductName(),
		ListType: "grocery",
	}
	for i := 0; i < itemCount; i++ {
		list.Items = append(list.Items, shoppinglist.Item{
			ID:         uuid.New(),
			ListID:     list.ID,
			CustomName: f.faker.Fruit(),
			Quantity:   f.faker.Number(1, 5),
			Priority:   f.priority(),
		})
	}
	return list
}

func (f *ListFactory) priority() string {
	priorities := []string{"low", "medium", "high"}
	return priorities[f.faker.Number(0, len(priorities)-1)]
}

// RecommendationFactory provides methods to create test recommendations
type RecommendationFactory struct {
	faker *gofakeit.Faker
}

// NewRecommendationFactory creates a new recommendation factory with seeded faker
func NewRecommendationFactory(seed int64) *RecommendationFactory {
	return &RecommendationFactory{faker: gofakeit.New(seed)}
}

// CreateRecommendation creates a stored recommendation for the given user
func (f *RecommendationFactory) CreateRecommendation(userID string) *recommendation.Recommendation {
	rec, _ := recommendation.New(userID, f.faker.Question(), f.faker.Paragraph(1, 3, 8, " "))
	return rec
}
