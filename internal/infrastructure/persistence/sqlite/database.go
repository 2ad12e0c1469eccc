// Package sqlite provides SQLite database setup and configuration
package sqlite

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gormModels "github.com/smartbundle/assistant/internal/infrastructure/persistence/gorm"
)

// SetupDatabase creates and configures the SQLite database
func SetupDatabase(dbPath string, logLevel logger.LogLevel) (*gorm.DB, error) {
	// Use in-memory database if no path provided
	if dbPath == "" {
		dbPath = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Run auto-migration
	err = db.AutoMigrate(
		&gormModels.ProfileModel{},
		&gormModels.ListModel{},
		&gormModels.ListItemModel{},
		&gormModels.RecommendationModel{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// SeedDatabase populates the database with initial data
func SeedDatabase(db *gorm.DB) error {
	// Check if data already exists
	var profileCount int64
	db.Model(&gormModels.ProfileModel{}).Count(&profileCount)
	if profileCount > 0 {
		return nil // Already seeded
	}

	budget := 400.0
	demoProfile := gormModels.ProfileModel{
		UserID:              "3f1c9d6a-8a7e-4c2b-9d54-1f0b6a2e8c11",
		FullName:            "Demo Shopper",
		BudgetLimit:         &budget,
		HouseholdSize:       3,
		DietaryRestrictions: []string{"vegetarian"},
		HealthPreferences:   []string{"low-sodium", "eco-friendly"},
	}
	if err := db.Create(&demoProfile).Error; err != nil {
		return fmt.Errorf("failed to seed profile: %w", err)
	}

	demoList := gormModels.ListModel{
		UserID:   demoProfile.UserID,
		Title:    "Weekly Groceries",
		ListType: "grocery",
		Items: []gormModels.ListItemModel{
			{CustomName: "Oat milk", Quantity: 2, Priority: "high"},
			{CustomName: "Tofu", Quantity: 1, Priority: "medium"},
			{CustomName: "Brown rice", Quantity: 1, Priority: "low"},
		},
	}
	if err := db.Create(&demoList).Error; err != nil {
		return fmt.Errorf("failed to seed list: %w", err)
	}

	return nil
}
