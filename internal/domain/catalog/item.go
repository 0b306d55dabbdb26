package catalog

import (
	"fmt"
	"strings"
	"time"
)

// Item represents a requestable internal report or feature in the catalog.
// Items are immutable once created; only the active flag can change.
type Item struct {
	id          uint
	name        string
	description string
	category    string
	urlPath     string
	isActive    bool
	createdAt   time.Time
}

func NewItem(name, description, category, urlPath string) (*Item, error) {
	if len(strings.TrimSpace(name)) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("name exceeds maximum length of 200 characters")
	}
	if len(strings.TrimSpace(description)) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(strings.TrimSpace(category)) == 0 {
		return nil, fmt.Errorf("category is required")
	}

	return &Item{
		name:        name,
		description: description,
		category:    category,
		urlPath:     urlPath,
		isActive:    true,
		createdAt:   time.Now().UTC(),
	}, nil
}

// ReconstructItem reconstructs a catalog item from persistence.
func ReconstructItem(
	id uint,
	name string,
	description string,
	category string,
	urlPath string,
	isActive bool,
	createdAt time.Time,
) (*Item, error) {
	if id == 0 {
		return nil, fmt.Errorf("item ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Item{
		id:          id,
		name:        name,
		description: description,
		category:    category,
		urlPath:     urlPath,
		isActive:    isActive,
		createdAt:   createdAt,
	}, nil
}

func (i *Item) ID() uint {
	return i.id
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Description() string {
	return i.description
}

func (i *Item) Category() string {
	return i.category
}

func (i *Item) URLPath() string {
	return i.urlPath
}

func (i *Item) IsActive() bool {
	return i.isActive
}

func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

// SetID sets the item ID (only for persistence layer use)
func (i *Item) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("item ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("item ID cannot be zero")
	}
	i.id = id
	return nil
}

// Deactivate removes the item from the requestable set without deleting it.
func (i *Item) Deactivate() {
	i.isActive = false
}

// Activate returns the item to the requestable set.
func (i *Item) Activate() {
	i.isActive = true
}

// MatchesSearch reports whether the item matches a portal search term.
// The match is a case-insensitive substring check against name, description
// and category; an empty term matches everything.
func (i *Item) MatchesSearch(term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(i.name), needle) ||
		strings.Contains(strings.ToLower(i.description), needle) ||
		strings.Contains(strings.ToLower(i.category), needle)
}
