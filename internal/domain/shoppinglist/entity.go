// Package shoppinglist contains the shopping list entity and its items.
package shoppinglist

import (
	"time"

	"github.com/google/uuid"
)

// List represents a user's shopping list with its items.
type List struct {
	ID          uuid.UUID
	UserID      string
	Title       string
	ListType    string
	Description string
	IsShared    bool
	Items       []Item
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Item represents a single entry on a shopping list. Items reference a
// catalog product or carry a free-text custom name.
type Item struct {
	ID          uuid.UUID
	ListID      uuid.UUID
	CustomName  string
	Quantity    int
	Priority    string
	Notes       string
	IsCompleted bool
	CreatedAt   time.Time
}

// ItemNames returns the display names of the list's items in order.
func (l *List) ItemNames() []string {
	names := make([]string, 0, len(l.Items))
	for _, item := range l.Items {
		names = append(names, item.CustomName)
	}
	return names
}
