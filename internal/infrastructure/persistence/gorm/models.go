// Package gorm provides GORM model definitions and repository
// implementations for the application
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileModel represents the GORM model for user profiles
type ProfileModel struct {
	ID                  uuid.UUID   `gorm:"type:char(36);primaryKey"`
	UserID              string      `gorm:"type:char(36);uniqueIndex;not null"`
	FullName            string      `gorm:"type:varchar(255)"`
	AvatarURL           string      `gorm:"type:text"`
	BudgetLimit         *float64    `gorm:"type:numeric"`
	HouseholdSize       int         `gorm:"default:1"`
	DietaryRestrictions StringSlice `gorm:"type:json"`
	HealthPreferences   StringSlice `gorm:"type:json"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ListModel represents the GORM model for shopping lists
type ListModel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID      string    `gorm:"type:char(36);not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	ListType    string    `gorm:"type:varchar(50);index"`
	IsShared    bool      `gorm:"default:false"`
	SharedWith  StringSlice `gorm:"type:json"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time

	// Relationships
	Items []ListItemModel `gorm:"foreignKey:ListID"`
}

// ListItemModel represents the GORM model for shopping list items
type ListItemModel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	ListID      uuid.UUID `gorm:"type:char(36);not null;index"`
	CustomName  string    `gorm:"type:varchar(255)"`
	Quantity    int       `gorm:"default:1"`
	Priority    string    `gorm:"type:varchar(20)"`
	Notes       string    `gorm:"type:text"`
	IsCompleted bool      `gorm:"default:false"`
	AddedBy     string    `gorm:"type:char(36)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RecommendationModel represents the GORM model for assistant recommendations
type RecommendationModel struct {
	ID              uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID          string    `gorm:"type:char(36);not null;index"`
	Query           string    `gorm:"type:text;not null"`
	AIReasoning     string    `gorm:"column:ai_reasoning;type:text"`
	ConfidenceScore float64   `gorm:"default:0"`
	UserRating      *int
	CreatedAt       time.Time `gorm:"index"`
}

// StringSlice custom type for handling string slices in JSON
type StringSlice []string

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// BeforeCreate hook for ProfileModel
func (p *ProfileModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for ListModel
func (l *ListModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for ListItemModel
func (i *ListItemModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for RecommendationModel
func (r *RecommendationModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName methods for custom table names
func (ProfileModel) TableName() string {
	return "profiles"
}

func (ListModel) TableName() string {
	return "lists"
}

func (ListItemModel) TableName() string {
	return "list_items"
}

func (RecommendationModel) TableName() string {
	return "recommendations"
}
