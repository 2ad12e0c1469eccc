// Package profile contains the user profile entity consumed by the
// assistant pipeline. Profiles are created at account setup and are
// read-only from this service's perspective.
package profile

import "time"

// Profile holds the shopping preferences stored for a user.
type Profile struct {
	UserID              string
	FullName            string
	BudgetLimit         *float64
	HouseholdSize       int
	DietaryRestrictions []string
	HealthPreferences   []string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DefaultHouseholdSize is assumed when a profile is missing or does not
// specify one.
const DefaultHouseholdSize = 1
